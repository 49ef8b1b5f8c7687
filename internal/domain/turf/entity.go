package turf

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"turfbook/internal/domain/booking"
	"turfbook/internal/pkg/errs"
)

// Turf is a bookable ground. It is immutable during a booking operation;
// turf management lives with an external collaborator.
type Turf struct {
	id         uuid.UUID
	name       string
	location   string
	hourlyRate decimal.Decimal
	sports     []string
	openTime   booking.TimeOfDay
	closeTime  booking.TimeOfDay
	createdAt  time.Time
	updatedAt  time.Time
}

func NewTurf(
	id uuid.UUID,
	name, location string,
	hourlyRate decimal.Decimal,
	sports []string,
	openTime, closeTime booking.TimeOfDay,
) (*Turf, error) {
	if id == uuid.Nil {
		return nil, errs.New("turf ID cannot be nil")
	}
	if name == "" {
		return nil, errs.New("turf name cannot be empty")
	}
	if hourlyRate.IsNegative() {
		return nil, errs.New("hourly rate cannot be negative")
	}
	if openTime >= closeTime {
		return nil, errs.New("operating hours must have open before close")
	}
	return &Turf{
		id:         id,
		name:       name,
		location:   location,
		hourlyRate: hourlyRate,
		sports:     sports,
		openTime:   openTime,
		closeTime:  closeTime,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	name, location string,
	hourlyRate decimal.Decimal,
	sports []string,
	openTime, closeTime booking.TimeOfDay,
	createdAt, updatedAt time.Time,
) *Turf {
	return &Turf{
		id:         id,
		name:       name,
		location:   location,
		hourlyRate: hourlyRate,
		sports:     sports,
		openTime:   openTime,
		closeTime:  closeTime,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (t *Turf) ID() uuid.UUID                { return t.id }
func (t *Turf) Name() string                 { return t.name }
func (t *Turf) Location() string             { return t.location }
func (t *Turf) HourlyRate() decimal.Decimal  { return t.hourlyRate }
func (t *Turf) Sports() []string             { return t.sports }
func (t *Turf) OpenTime() booking.TimeOfDay  { return t.openTime }
func (t *Turf) CloseTime() booking.TimeOfDay { return t.closeTime }
func (t *Turf) CreatedAt() time.Time         { return t.createdAt }
func (t *Turf) UpdatedAt() time.Time         { return t.updatedAt }

func (t *Turf) SupportsSport(sport string) bool {
	for _, s := range t.sports {
		if s == sport {
			return true
		}
	}
	return false
}

// WithinOperatingHours reports whether the slot fits inside [open, close).
func (t *Turf) WithinOperatingHours(slot booking.Slot) bool {
	return slot.Start() >= t.openTime && slot.End() <= t.closeTime
}
