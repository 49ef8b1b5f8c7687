package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"turfbook/internal/domain/booking"
	"turfbook/internal/domain/recurring"
	"turfbook/internal/domain/turf"
	"turfbook/internal/pkg/clock"
	"turfbook/internal/pkg/metrics"
	"turfbook/internal/usecase/queries"
	"turfbook/internal/usecase/shared"
)

type CreatePlanParams struct {
	TurfID          uuid.UUID
	UserID          uuid.UUID
	Sport           string
	StartDate       time.Time
	EndDate         time.Time
	Pattern         recurring.Pattern
	DaysOfWeek      []time.Weekday
	StartTime       booking.TimeOfDay
	EndTime         booking.TimeOfDay
	DiscountPercent float64
}

// PlanResult reports the expansion outcome. Created bookings are pending
// until payment confirms them; dates lost to conflicts or contention are
// listed in SkippedDates rather than failing the plan.
type PlanResult struct {
	Plan         *queries.PlanView
	Created      []*queries.BookingView
	SkippedDates []string
}

type RecurringCommands interface {
	CreatePlan(ctx context.Context, params CreatePlanParams) (*PlanResult, error)
}

type recurringCommandsImpl struct {
	*slotEngine
}

func NewRecurringCommands(
	uow shared.UnitOfWork,
	locker SlotLocker,
	clk clock.Clock,
	notifier Notifier,
	m *metrics.Metrics,
	logger *slog.Logger,
) RecurringCommands {
	return &recurringCommandsImpl{
		slotEngine: newSlotEngine(uow, locker, clk, notifier, m, logger),
	}
}

func (c *recurringCommandsImpl) CreatePlan(ctx context.Context, params CreatePlanParams) (*PlanResult, error) {
	t, err := c.uow.Reads().TurfByID(ctx, params.TurfID)
	if err != nil {
		return nil, err
	}

	plan, err := recurring.NewPlan(
		params.TurfID, params.UserID, params.Sport,
		params.StartDate, params.EndDate,
		params.Pattern, params.DaysOfWeek,
		params.StartTime, params.EndTime,
		params.DiscountPercent,
	)
	if err != nil {
		return nil, err
	}

	probe, err := plan.CandidateSlot(plan.StartDate())
	if err != nil {
		return nil, err
	}
	if err := c.validateSchedule(t, params.Sport, probe); err != nil {
		return nil, err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Plans().Create(ctx, plan)
	})
	if err != nil {
		return nil, err
	}

	now := c.clock.Now()
	result := &PlanResult{}

	// Each date books independently under its own lease and transaction,
	// so one contested date never blocks or reverts the others.
	for _, date := range plan.CandidateDates() {
		slot, err := plan.CandidateSlot(date)
		if err != nil {
			result.SkippedDates = append(result.SkippedDates, date.Format(queries.DateFormat))
			continue
		}
		if slot.StartDateTime().Before(now) {
			result.SkippedDates = append(result.SkippedDates, date.Format(queries.DateFormat))
			continue
		}

		var created *booking.Booking
		err = c.locker.WithLock(ctx, t.ID(), date, func(ctx context.Context) error {
			return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
				b, err := c.createInTx(ctx, tx, createParams{
					turf:   t,
					userID: params.UserID,
					sport:  params.Sport,
					slot:   slot,
					priceOpts: booking.PriceOptions{
						ApplySeasonal:   true,
						DiscountPercent: params.DiscountPercent,
					},
					initialStatus: booking.StatusPending,
					origin:        metrics.OriginRecurring,
				})
				if err != nil {
					return err
				}
				if err := tx.Plans().AttachBooking(ctx, plan.ID(), b.ID()); err != nil {
					return err
				}
				created = b
				return nil
			})
		})
		switch {
		case err == nil:
			plan.AttachBooking(created.ID())
			c.metrics.BookingsCreated.WithLabelValues(metrics.OriginRecurring).Inc()
			result.Created = append(result.Created, bookingToView(created, t.Name()))
		case errors.Is(err, ErrSlotConflict):
			c.metrics.SlotConflicts.Inc()
			result.SkippedDates = append(result.SkippedDates, date.Format(queries.DateFormat))
		case errors.Is(err, ErrResourceBusy):
			c.metrics.LockTimeouts.Inc()
			result.SkippedDates = append(result.SkippedDates, date.Format(queries.DateFormat))
		default:
			return nil, err
		}
	}

	result.Plan = planToView(plan)
	c.notifier.Notify(ctx, EventPlanCreated, map[string]any{
		"plan_id":       plan.ID().String(),
		"turf_id":       t.ID().String(),
		"user_id":       params.UserID.String(),
		"created_count": len(result.Created),
		"skipped_dates": result.SkippedDates,
	})
	return result, nil
}

// validateSchedule checks the plan's recurring slot shape against the turf.
// Unlike one-off requests the start date may be in the past; past expanded
// dates are simply skipped.
func (c *recurringCommandsImpl) validateSchedule(t *turf.Turf, sport string, slot booking.Slot) error {
	if !t.SupportsSport(sport) {
		return ErrUnsupportedSport
	}
	if !t.WithinOperatingHours(slot) {
		return ErrOutsideOperatingHours
	}
	return nil
}

func planToView(p *recurring.Plan) *queries.PlanView {
	view := &queries.PlanView{
		ID:              p.ID(),
		TurfID:          p.TurfID(),
		UserID:          p.UserID(),
		Sport:           p.Sport(),
		StartDate:       p.StartDate().Format(queries.DateFormat),
		EndDate:         p.EndDate().Format(queries.DateFormat),
		Pattern:         string(p.Pattern()),
		StartTime:       p.StartTime().String(),
		EndTime:         p.EndTime().String(),
		DiscountPercent: p.DiscountPercent(),
		Status:          string(p.Status()),
		BookingIDs:      p.BookingIDs(),
	}
	for _, d := range p.DaysOfWeek() {
		view.DaysOfWeek = append(view.DaysOfWeek, d.String())
	}
	return view
}
