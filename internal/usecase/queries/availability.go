package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"turfbook/internal/domain/booking"
	"turfbook/internal/domain/turf"
)

type AvailabilityQueries interface {
	// GetAvailability lists the free and occupied wall-clock ranges for a
	// turf on a date, bounded by its operating hours.
	GetAvailability(ctx context.Context, turfID uuid.UUID, date time.Time) (*AvailabilityView, error)
}

type TurfViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*turf.Turf, error)
}

type OccupancyRepo interface {
	OccupiedSlots(ctx context.Context, turfID uuid.UUID, date time.Time) ([]booking.OccupiedSlot, error)
}

type availabilityQueriesImpl struct {
	turfs     TurfViewRepo
	occupancy OccupancyRepo
}

func NewAvailabilityQueries(turfs TurfViewRepo, occupancy OccupancyRepo) AvailabilityQueries {
	return &availabilityQueriesImpl{turfs: turfs, occupancy: occupancy}
}

func (q *availabilityQueriesImpl) GetAvailability(ctx context.Context, turfID uuid.UUID, date time.Time) (*AvailabilityView, error) {
	t, err := q.turfs.FindByID(ctx, turfID)
	if err != nil {
		return nil, err
	}

	occupied, err := q.occupancy.OccupiedSlots(ctx, turfID, date)
	if err != nil {
		return nil, err
	}

	free := booking.FreeRanges(occupied, t.OpenTime(), t.CloseTime())

	view := &AvailabilityView{
		TurfID:    turfID,
		Date:      date.Format(DateFormat),
		OpenTime:  t.OpenTime().String(),
		CloseTime: t.CloseTime().String(),
		Free:      make([]TimeRangeView, 0, len(free)),
		Occupied:  make([]TimeRangeView, 0, len(occupied)),
	}
	for _, r := range free {
		view.Free = append(view.Free, TimeRangeView{StartTime: r.Start.String(), EndTime: r.End.String()})
	}
	for _, occ := range occupied {
		if !occ.Status.Occupies() {
			continue
		}
		view.Occupied = append(view.Occupied, TimeRangeView{StartTime: occ.Start.String(), EndTime: occ.End.String()})
	}
	return view, nil
}
