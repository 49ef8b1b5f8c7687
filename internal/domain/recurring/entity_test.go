//go:build unit

package recurring_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"turfbook/internal/domain/booking"
	"turfbook/internal/domain/recurring"
	"turfbook/internal/pkg/errs"
)

var (
	planStart = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)  // Monday
	planEnd   = time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC) // Sunday
)

func newPlan(t *testing.T, pattern recurring.Pattern, days []time.Weekday) *recurring.Plan {
	t.Helper()
	p, err := recurring.NewPlan(
		uuid.New(), uuid.New(), "football",
		planStart, planEnd,
		pattern, days,
		booking.TimeOfDay(18*60), booking.TimeOfDay(20*60),
		10,
	)
	require.NoError(t, err)
	return p
}

func TestNewPlan(t *testing.T) {
	t.Run("valid plan starts active", func(t *testing.T) {
		p := newPlan(t, recurring.PatternCustom, []time.Weekday{time.Monday})
		assert.NotEqual(t, uuid.Nil, p.ID())
		assert.Equal(t, recurring.StatusActive, p.Status())
		assert.Equal(t, 10.0, p.DiscountPercent())
	})

	t.Run("validation", func(t *testing.T) {
		mk := func(mutate func(*planParams)) error {
			params := planParams{
				startDate: planStart, endDate: planEnd,
				pattern: recurring.PatternWeekly, days: []time.Weekday{time.Monday},
				startTime: booking.TimeOfDay(18 * 60), endTime: booking.TimeOfDay(20 * 60),
				discount: 10,
			}
			mutate(&params)
			_, err := recurring.NewPlan(
				uuid.New(), uuid.New(), "football",
				params.startDate, params.endDate,
				params.pattern, params.days,
				params.startTime, params.endTime,
				params.discount,
			)
			return err
		}

		cases := []struct {
			name   string
			mutate func(*planParams)
			errIs  error
		}{
			{"unknown pattern", func(p *planParams) { p.pattern = "fortnightly" }, errs.ErrInvalidRecurrencePlan},
			{"end date before start date", func(p *planParams) { p.endDate = planStart.AddDate(0, 0, -1) }, errs.ErrInvalidRecurrencePlan},
			{"inverted time range", func(p *planParams) { p.startTime, p.endTime = p.endTime, p.startTime }, errs.ErrInvalidTimeRange},
			{"discount above 100", func(p *planParams) { p.discount = 101 }, errs.ErrInvalidRecurrencePlan},
			{"negative discount", func(p *planParams) { p.discount = -1 }, errs.ErrInvalidRecurrencePlan},
			{"weekly without weekdays", func(p *planParams) { p.days = nil }, errs.ErrInvalidRecurrencePlan},
			{"daily needs no weekdays", func(p *planParams) { p.pattern = recurring.PatternDaily; p.days = nil }, nil},
			{"single-day plan", func(p *planParams) { p.endDate = p.startDate }, nil},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				err := mk(tc.mutate)
				if tc.errIs == nil {
					assert.NoError(t, err)
				} else {
					assert.ErrorIs(t, err, tc.errIs)
				}
			})
		}
	})
}

type planParams struct {
	startDate, endDate time.Time
	pattern            recurring.Pattern
	days               []time.Weekday
	startTime, endTime booking.TimeOfDay
	discount           float64
}

func TestCandidateDates(t *testing.T) {
	t.Run("custom pattern picks matching weekdays", func(t *testing.T) {
		p := newPlan(t, recurring.PatternCustom, []time.Weekday{time.Monday, time.Wednesday})
		dates := p.CandidateDates()
		require.Len(t, dates, 4)
		assert.Equal(t, planStart, dates[0])                     // Mon Mar 2
		assert.Equal(t, planStart.AddDate(0, 0, 2), dates[1])    // Wed Mar 4
		assert.Equal(t, planStart.AddDate(0, 0, 7), dates[2])    // Mon Mar 9
		assert.Equal(t, planStart.AddDate(0, 0, 9), dates[3])    // Wed Mar 11
	})

	t.Run("daily pattern covers every date inclusive", func(t *testing.T) {
		p, err := recurring.NewPlan(
			uuid.New(), uuid.New(), "football",
			planStart, planStart.AddDate(0, 0, 2),
			recurring.PatternDaily, nil,
			booking.TimeOfDay(18*60), booking.TimeOfDay(20*60),
			0,
		)
		require.NoError(t, err)
		assert.Len(t, p.CandidateDates(), 3)
	})

	t.Run("weekly pattern", func(t *testing.T) {
		p := newPlan(t, recurring.PatternWeekly, []time.Weekday{time.Saturday})
		dates := p.CandidateDates()
		require.Len(t, dates, 2)
		assert.Equal(t, time.Saturday, dates[0].Weekday())
		assert.Equal(t, time.Saturday, dates[1].Weekday())
	})
}

func TestCandidateSlot(t *testing.T) {
	p := newPlan(t, recurring.PatternCustom, []time.Weekday{time.Monday})
	slot, err := p.CandidateSlot(planStart)
	require.NoError(t, err)
	assert.Equal(t, planStart, slot.Date())
	assert.Equal(t, booking.TimeOfDay(18*60), slot.Start())
	assert.Equal(t, booking.TimeOfDay(20*60), slot.End())
}

func TestAttachBooking(t *testing.T) {
	p := newPlan(t, recurring.PatternCustom, []time.Weekday{time.Monday})
	first, second := uuid.New(), uuid.New()
	p.AttachBooking(first)
	p.AttachBooking(second)
	assert.Equal(t, []uuid.UUID{first, second}, p.BookingIDs())
}
