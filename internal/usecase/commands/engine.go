package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"turfbook/internal/domain/booking"
	"turfbook/internal/domain/turf"
	"turfbook/internal/pkg/clock"
	"turfbook/internal/pkg/metrics"
	"turfbook/internal/usecase/queries"
	"turfbook/internal/usecase/shared"
)

// slotEngine is the shared allocation core behind the booking, waitlist and
// recurring command surfaces. All candidate reservations funnel through
// createInTx, so conflict and pricing logic exists exactly once.
type slotEngine struct {
	uow      shared.UnitOfWork
	locker   SlotLocker
	clock    clock.Clock
	notifier Notifier
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

func newSlotEngine(
	uow shared.UnitOfWork,
	locker SlotLocker,
	clk clock.Clock,
	notifier Notifier,
	m *metrics.Metrics,
	logger *slog.Logger,
) *slotEngine {
	return &slotEngine{
		uow:      uow,
		locker:   locker,
		clock:    clk,
		notifier: notifier,
		metrics:  m,
		logger:   logger,
	}
}

type createParams struct {
	turf          *turf.Turf
	userID        uuid.UUID
	sport         string
	slot          booking.Slot
	priceOpts     booking.PriceOptions
	initialStatus booking.Status
	origin        string
}

// validateRequest applies the synchronous, non-retryable checks every
// candidate reservation must pass before touching storage.
func (e *slotEngine) validateRequest(t *turf.Turf, sport string, slot booking.Slot) error {
	if !t.SupportsSport(sport) {
		return ErrUnsupportedSport
	}
	if !t.WithinOperatingHours(slot) {
		return ErrOutsideOperatingHours
	}
	if slot.StartDateTime().Before(e.clock.Now()) {
		return ErrInvalidTimeRange
	}
	return nil
}

// createInTx performs the conflict check and insert as one unit inside the
// caller's transaction. The caller must hold the slot lease for the
// (turf, date) key; together these close the check-then-act race.
func (e *slotEngine) createInTx(ctx context.Context, tx shared.Tx, p createParams) (*booking.Booking, error) {
	occupied, err := tx.Bookings().OccupiedSlots(ctx, p.turf.ID(), p.slot.Date())
	if err != nil {
		return nil, err
	}
	if booking.HasConflict(occupied, p.slot.Start(), p.slot.End(), uuid.Nil) {
		return nil, ErrSlotConflict
	}

	quote := booking.Price(p.turf.HourlyRate(), p.slot, p.priceOpts)

	b, err := booking.NewBooking(p.turf.ID(), p.userID, p.sport, p.slot, quote.FinalPrice, p.initialStatus)
	if err != nil {
		return nil, err
	}

	if err := tx.Bookings().Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// createLocked wraps createInTx in its own transaction, for callers that
// have nothing else to commit atomically with the insert.
func (e *slotEngine) createLocked(ctx context.Context, p createParams) (*booking.Booking, error) {
	var created *booking.Booking
	err := e.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := e.createInTx(ctx, tx, p)
		if err != nil {
			return err
		}
		created = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// applyLoyalty accrues points for a booking that reached confirmed. Runs
// after the reservation is durably committed; failures are logged and never
// roll the reservation back.
func (e *slotEngine) applyLoyalty(ctx context.Context, b *booking.Booking) {
	err := e.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		account, err := tx.Loyalty().FindOrCreateByUser(ctx, b.UserID())
		if err != nil {
			return err
		}
		result := account.ApplyBooking(b.ID(), b.Price(), e.clock.Now())
		earning := account.History()[len(account.History())-1]
		if err := tx.Loyalty().Save(ctx, account, earning); err != nil {
			return err
		}
		e.logger.Info("loyalty points accrued",
			"user_id", b.UserID().String(),
			"booking_id", b.ID().String(),
			"points_earned", result.PointsEarned,
			"tier", string(result.NewTier))
		return nil
	})
	if err != nil {
		e.logger.Error("loyalty ledger update failed",
			"user_id", b.UserID().String(),
			"booking_id", b.ID().String(),
			"error", err.Error())
	}
}

// reallocateLocked rescans pending waitlist entries for a turf and date
// after a cancellation freed capacity. The caller must still hold the slot
// lease. Entries are visited by priority descending then submission time
// ascending; the first whose slot is now free gets a confirmed booking
// through the shared create path.
func (e *slotEngine) reallocateLocked(ctx context.Context, turfID uuid.UUID, date time.Time) {
	var allocated *booking.Booking
	var allocatedUser uuid.UUID

	err := e.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entries, err := tx.Waitlist().PendingByTurfDate(ctx, turfID, date)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			return nil
		}

		occupied, err := tx.Bookings().OccupiedSlots(ctx, turfID, date)
		if err != nil {
			return err
		}

		for _, entry := range entries {
			slot := entry.Slot()
			if booking.HasConflict(occupied, slot.Start(), slot.End(), uuid.Nil) {
				continue
			}

			t, err := tx.Reads().TurfByID(ctx, turfID)
			if err != nil {
				return err
			}

			b, err := e.createInTx(ctx, tx, createParams{
				turf:          t,
				userID:        entry.UserID(),
				sport:         entry.Sport(),
				slot:          slot,
				priceOpts:     booking.PriceOptions{},
				initialStatus: booking.StatusConfirmed,
				origin:        metrics.OriginWaitlist,
			})
			if err != nil {
				return err
			}
			if err := entry.Allocate(b.ID()); err != nil {
				return err
			}
			if err := tx.Waitlist().Update(ctx, entry); err != nil {
				return err
			}
			allocated = b
			allocatedUser = entry.UserID()
			return nil
		}
		return nil
	})
	if err != nil {
		e.logger.Error("waitlist reallocation failed",
			"turf_id", turfID.String(),
			"date", date.Format(queries.DateFormat),
			"error", err.Error())
		return
	}
	if allocated == nil {
		return
	}

	e.metrics.BookingsCreated.WithLabelValues(metrics.OriginWaitlist).Inc()
	e.metrics.WaitlistAllocations.WithLabelValues(metrics.TriggerReallocation).Inc()
	e.applyLoyalty(ctx, allocated)
	e.notifier.Notify(ctx, EventWaitlistAllocated, map[string]any{
		"booking_id": allocated.ID().String(),
		"user_id":    allocatedUser.String(),
		"turf_id":    turfID.String(),
		"date":       date.Format(queries.DateFormat),
	})
}

func bookingToView(b *booking.Booking, turfName string) *queries.BookingView {
	view := &queries.BookingView{
		ID:            b.ID(),
		TurfID:        b.TurfID(),
		TurfName:      turfName,
		UserID:        b.UserID(),
		Sport:         b.Sport(),
		Date:          b.Slot().Date().Format(queries.DateFormat),
		StartTime:     b.Slot().Start().String(),
		EndTime:       b.Slot().End().String(),
		Price:         b.Price().Int64(),
		Status:        b.Status().String(),
		PaymentStatus: b.PaymentStatus().String(),
		CreatedAt:     b.CreatedAt(),
		UpdatedAt:     b.UpdatedAt(),
	}
	view.CancellationReason = b.CancellationReason()
	if fee := b.CancellationFee(); fee != nil {
		v := fee.Int64()
		view.CancellationFee = &v
	}
	if refund := b.RefundAmount(); refund != nil {
		v := refund.Int64()
		view.RefundAmount = &v
	}
	view.CancelledAt = b.CancelledAt()
	return view
}
