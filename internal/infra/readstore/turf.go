package readstore

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"turfbook/internal/domain/booking"
	"turfbook/internal/domain/turf"
	"turfbook/internal/infra"
	"turfbook/internal/pkg/errs"
)

type TurfReadStore struct {
	db infra.DBTX
}

func NewTurfReadStore(db infra.DBTX) *TurfReadStore {
	return &TurfReadStore{db: db}
}

const findTurfSQL = `
SELECT id, name, location, hourly_rate, sports, open_min, close_min, created_at, updated_at
FROM turfs
WHERE id = $1
`

func (s *TurfReadStore) FindByID(ctx context.Context, id uuid.UUID) (*turf.Turf, error) {
	var (
		turfID               uuid.UUID
		name, location       string
		hourlyRateRaw        string
		sports               []string
		openMin, closeMin    int32
		createdAt, updatedAt time.Time
	)
	err := s.db.QueryRow(ctx, findTurfSQL, id).Scan(
		&turfID, &name, &location, &hourlyRateRaw, &sports,
		&openMin, &closeMin, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find turf", err, errs.ErrTurfNotFound)
	}

	hourlyRate, err := decimal.NewFromString(hourlyRateRaw)
	if err != nil {
		return nil, errs.Wrap(err, "corrupt hourly rate in storage")
	}

	return turf.Reconstruct(
		turfID, name, location, hourlyRate, sports,
		booking.TimeOfDay(openMin), booking.TimeOfDay(closeMin),
		createdAt, updatedAt,
	), nil
}
