package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"turfbook/internal/domain/booking"
	"turfbook/internal/pkg/clock"
	"turfbook/internal/pkg/metrics"
	"turfbook/internal/usecase/queries"
	"turfbook/internal/usecase/shared"
)

type CreateBookingParams struct {
	TurfID    uuid.UUID
	UserID    uuid.UUID
	Sport     string
	Date      time.Time
	StartTime booking.TimeOfDay
	EndTime   booking.TimeOfDay
	// RequirePayment persists the booking as pending until the external
	// payment collaborator confirms it. The direct flow books confirmed.
	RequirePayment bool
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, params CreateBookingParams) (*queries.BookingView, error)
	CancelBooking(ctx context.Context, bookingID uuid.UUID, reason string) (*queries.RefundResultView, error)
	ConfirmBooking(ctx context.Context, bookingID uuid.UUID) error
	CompleteBooking(ctx context.Context, bookingID uuid.UUID) error
}

type bookingCommandsImpl struct {
	*slotEngine
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	locker SlotLocker,
	clk clock.Clock,
	notifier Notifier,
	m *metrics.Metrics,
	logger *slog.Logger,
) BookingCommands {
	return &bookingCommandsImpl{
		slotEngine: newSlotEngine(uow, locker, clk, notifier, m, logger),
	}
}

func (c *bookingCommandsImpl) CreateBooking(ctx context.Context, params CreateBookingParams) (*queries.BookingView, error) {
	t, err := c.uow.Reads().TurfByID(ctx, params.TurfID)
	if err != nil {
		return nil, err
	}

	slot, err := booking.NewSlot(params.Date, params.StartTime, params.EndTime)
	if err != nil {
		return nil, err
	}
	if err := c.validateRequest(t, params.Sport, slot); err != nil {
		return nil, err
	}

	status := booking.StatusConfirmed
	if params.RequirePayment {
		status = booking.StatusPending
	}

	var created *booking.Booking
	err = c.locker.WithLock(ctx, t.ID(), slot.Date(), func(ctx context.Context) error {
		b, err := c.createLocked(ctx, createParams{
			turf:          t,
			userID:        params.UserID,
			sport:         params.Sport,
			slot:          slot,
			priceOpts:     booking.PriceOptions{},
			initialStatus: status,
			origin:        metrics.OriginDirect,
		})
		if err != nil {
			return err
		}
		created = b
		return nil
	})
	if err != nil {
		c.countCreateFailure(err)
		return nil, err
	}

	c.metrics.BookingsCreated.WithLabelValues(metrics.OriginDirect).Inc()
	if created.Status() == booking.StatusConfirmed {
		c.applyLoyalty(ctx, created)
	}
	c.notifier.Notify(ctx, EventBookingCreated, map[string]any{
		"booking_id": created.ID().String(),
		"turf_id":    created.TurfID().String(),
		"user_id":    created.UserID().String(),
		"date":       created.Slot().Date().Format(queries.DateFormat),
		"start_time": created.Slot().Start().String(),
		"end_time":   created.Slot().End().String(),
		"price":      created.Price().Int64(),
	})

	return bookingToView(created, t.Name()), nil
}

func (c *bookingCommandsImpl) CancelBooking(ctx context.Context, bookingID uuid.UUID, reason string) (*queries.RefundResultView, error) {
	// First read resolves the serialization key. The authoritative row is
	// re-read inside the lease and transaction.
	existing, err := c.uow.Reads().BookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	turfID := existing.TurfID()
	date := existing.Slot().Date()

	var result *queries.RefundResultView
	err = c.locker.WithLock(ctx, turfID, date, func(ctx context.Context) error {
		err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			b, err := tx.Bookings().FindByID(ctx, bookingID)
			if err != nil {
				return err
			}

			now := c.clock.Now()
			assessment := booking.AssessRefund(b.Price(), b.Slot().StartDateTime(), now)
			if err := b.Cancel(reason, assessment, now); err != nil {
				return err
			}
			if err := tx.Bookings().Update(ctx, b); err != nil {
				return err
			}

			result = &queries.RefundResultView{
				BookingID:        b.ID(),
				RefundAmount:     assessment.RefundAmount.Int64(),
				CancellationFee:  assessment.Fee.Int64(),
				RefundPercentage: assessment.RefundPercentage,
			}
			return nil
		})
		if err != nil {
			return err
		}

		// Freed capacity: rescan the waitlist under the same lease so no
		// concurrent create can slip between cancel and reallocation.
		c.reallocateLocked(ctx, turfID, date)
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.metrics.BookingsCancelled.Inc()
	c.metrics.RefundAmount.Add(float64(result.RefundAmount))
	c.notifier.Notify(ctx, EventBookingCancelled, map[string]any{
		"booking_id":    bookingID.String(),
		"refund_amount": result.RefundAmount,
		"fee":           result.CancellationFee,
		"reason":        reason,
	})

	return result, nil
}

func (c *bookingCommandsImpl) ConfirmBooking(ctx context.Context, bookingID uuid.UUID) error {
	var confirmed *booking.Booking
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByID(ctx, bookingID)
		if err != nil {
			return err
		}
		wasPending := b.Status() == booking.StatusPending
		if err := b.Confirm(); err != nil {
			return err
		}
		if err := tx.Bookings().Update(ctx, b); err != nil {
			return err
		}
		if wasPending {
			confirmed = b
		}
		return nil
	})
	if err != nil {
		return err
	}

	if confirmed != nil {
		c.applyLoyalty(ctx, confirmed)
		c.notifier.Notify(ctx, EventBookingConfirmed, map[string]any{
			"booking_id": bookingID.String(),
		})
	}
	return nil
}

// CompleteBooking is driven by the external scheduler once the slot has
// elapsed. Idempotent: repeating it on a completed booking is a no-op.
func (c *bookingCommandsImpl) CompleteBooking(ctx context.Context, bookingID uuid.UUID) error {
	var transitioned bool
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByID(ctx, bookingID)
		if err != nil {
			return err
		}
		if b.Status() == booking.StatusCompleted {
			return nil
		}
		if err := b.Complete(); err != nil {
			return err
		}
		if err := tx.Bookings().Update(ctx, b); err != nil {
			return err
		}
		transitioned = true
		return nil
	})
	if err != nil {
		return err
	}

	if transitioned {
		c.notifier.Notify(ctx, EventBookingCompleted, map[string]any{
			"booking_id": bookingID.String(),
		})
	}
	return nil
}

func (c *bookingCommandsImpl) countCreateFailure(err error) {
	switch {
	case errors.Is(err, ErrSlotConflict):
		c.metrics.SlotConflicts.Inc()
	case errors.Is(err, ErrResourceBusy):
		c.metrics.LockTimeouts.Inc()
	}
}
