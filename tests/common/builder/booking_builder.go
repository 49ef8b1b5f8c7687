//go:build unit || e2e

package builder

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"turfbook/internal/domain/booking"
	"turfbook/internal/domain/turf"
	reqdto "turfbook/internal/handler/dto/request"
	"turfbook/internal/usecase/queries"
)

// BookingBuilder assembles a booking on a mid-morning slot one week out,
// so derived tests stay in the future without pinning a calendar date.
type BookingBuilder struct {
	ID            uuid.UUID
	TurfID        uuid.UUID
	UserID        uuid.UUID
	Sport         string
	Date          time.Time
	Start         booking.TimeOfDay
	End           booking.TimeOfDay
	Price         booking.Money
	Status        booking.Status
	PaymentStatus booking.PaymentStatus
	CreatedAt     time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now()
	return &BookingBuilder{
		ID:            uuid.New(),
		TurfID:        uuid.New(),
		UserID:        uuid.New(),
		Sport:         "football",
		Date:          dateOnly(now.AddDate(0, 0, 7)),
		Start:         booking.TimeOfDay(10 * 60),
		End:           booking.TimeOfDay(12 * 60),
		Price:         2000,
		Status:        booking.StatusConfirmed,
		PaymentStatus: booking.PaymentPaid,
		CreatedAt:     now,
	}
}

func (b *BookingBuilder) WithStatus(status booking.Status) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) WithUserID(userID uuid.UUID) *BookingBuilder {
	b.UserID = userID
	return b
}

func (b *BookingBuilder) WithTurfID(turfID uuid.UUID) *BookingBuilder {
	b.TurfID = turfID
	return b
}

func (b *BookingBuilder) WithDate(date time.Time) *BookingBuilder {
	b.Date = dateOnly(date)
	return b
}

func (b *BookingBuilder) WithTimes(start, end booking.TimeOfDay) *BookingBuilder {
	b.Start = start
	b.End = end
	return b
}

func (b *BookingBuilder) WithPrice(price booking.Money) *BookingBuilder {
	b.Price = price
	return b
}

func (b *BookingBuilder) BuildSlot() booking.Slot {
	slot, err := booking.NewSlot(b.Date, b.Start, b.End)
	if err != nil {
		panic(err)
	}
	return slot
}

func (b *BookingBuilder) BuildDomain() *booking.Booking {
	return booking.Reconstruct(
		b.ID, b.TurfID, b.UserID, b.Sport,
		b.BuildSlot(), b.Price, b.Status, b.PaymentStatus,
		nil, nil, nil, nil,
		b.CreatedAt, b.CreatedAt,
	)
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:            b.ID,
		TurfID:        b.TurfID,
		TurfName:      "Test Turf",
		UserID:        b.UserID,
		Sport:         b.Sport,
		Date:          b.Date.Format(queries.DateFormat),
		StartTime:     b.Start.String(),
		EndTime:       b.End.String(),
		Price:         b.Price.Int64(),
		Status:        b.Status.String(),
		PaymentStatus: b.PaymentStatus.String(),
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		TurfID:    b.TurfID,
		Sport:     b.Sport,
		Date:      b.Date.Format(queries.DateFormat),
		StartTime: b.Start.String(),
		EndTime:   b.End.String(),
	}
}

// TurfBuilder assembles a turf the booking builder's defaults fit in.
type TurfBuilder struct {
	ID         uuid.UUID
	Name       string
	Location   string
	HourlyRate decimal.Decimal
	Sports     []string
	OpenTime   booking.TimeOfDay
	CloseTime  booking.TimeOfDay
}

func NewTurfBuilder() *TurfBuilder {
	return &TurfBuilder{
		ID:         uuid.New(),
		Name:       "Test Turf",
		Location:   "Sector 21",
		HourlyRate: decimal.NewFromInt(1000),
		Sports:     []string{"football", "cricket"},
		OpenTime:   booking.TimeOfDay(6 * 60),
		CloseTime:  booking.TimeOfDay(23 * 60),
	}
}

func (t *TurfBuilder) WithID(id uuid.UUID) *TurfBuilder {
	t.ID = id
	return t
}

func (t *TurfBuilder) WithHourlyRate(rate decimal.Decimal) *TurfBuilder {
	t.HourlyRate = rate
	return t
}

func (t *TurfBuilder) WithSports(sports ...string) *TurfBuilder {
	t.Sports = sports
	return t
}

func (t *TurfBuilder) WithHours(open, close booking.TimeOfDay) *TurfBuilder {
	t.OpenTime = open
	t.CloseTime = close
	return t
}

func (t *TurfBuilder) Build() *turf.Turf {
	now := time.Now()
	return turf.Reconstruct(
		t.ID, t.Name, t.Location, t.HourlyRate, t.Sports,
		t.OpenTime, t.CloseTime, now, now,
	)
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
