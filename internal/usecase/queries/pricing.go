package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"turfbook/internal/domain/booking"
)

type PricingQueries interface {
	// QuoteDynamicPrice prices a slot with the full factor set (peak,
	// weekend, seasonal, demand) and returns the per-factor breakdown.
	QuoteDynamicPrice(ctx context.Context, turfID uuid.UUID, date time.Time, start, end booking.TimeOfDay) (*QuoteView, error)
}

type pricingQueriesImpl struct {
	turfs     TurfViewRepo
	occupancy OccupancyRepo
}

func NewPricingQueries(turfs TurfViewRepo, occupancy OccupancyRepo) PricingQueries {
	return &pricingQueriesImpl{turfs: turfs, occupancy: occupancy}
}

func (q *pricingQueriesImpl) QuoteDynamicPrice(ctx context.Context, turfID uuid.UUID, date time.Time, start, end booking.TimeOfDay) (*QuoteView, error) {
	t, err := q.turfs.FindByID(ctx, turfID)
	if err != nil {
		return nil, err
	}

	slot, err := booking.NewSlot(date, start, end)
	if err != nil {
		return nil, err
	}

	occupied, err := q.occupancy.OccupiedSlots(ctx, turfID, date)
	if err != nil {
		return nil, err
	}

	quote := booking.Price(t.HourlyRate(), slot, booking.PriceOptions{
		ApplySeasonal: true,
		DemandCount:   demandCount(occupied, start, end),
	})

	return &QuoteView{
		TurfID:     turfID,
		Date:       date.Format(DateFormat),
		StartTime:  start.String(),
		EndTime:    end.String(),
		BasePrice:  quote.BasePrice.Int64(),
		FinalPrice: quote.FinalPrice.Int64(),
		Factors:    quote.Factors,
	}, nil
}

// demandCount counts bookings occupying or immediately adjacent to the
// requested window; each one nudges the demand multiplier up by 5%.
func demandCount(occupied []booking.OccupiedSlot, start, end booking.TimeOfDay) int {
	count := 0
	for _, occ := range occupied {
		if !occ.Status.Occupies() {
			continue
		}
		overlaps := occ.Start < end && start < occ.End
		adjacent := occ.End == start || occ.Start == end
		if overlaps || adjacent {
			count++
		}
	}
	return count
}
