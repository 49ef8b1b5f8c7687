package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"turfbook/internal/domain/booking"
	"turfbook/internal/domain/waitlist"
	"turfbook/internal/pkg/clock"
	"turfbook/internal/pkg/metrics"
	"turfbook/internal/usecase/queries"
	"turfbook/internal/usecase/shared"
)

type JoinWaitlistParams struct {
	TurfID    uuid.UUID
	UserID    uuid.UUID
	Sport     string
	Date      time.Time
	StartTime booking.TimeOfDay
	EndTime   booking.TimeOfDay
	Priority  int
}

// JoinResult carries exactly one of Booking or Entry: a booking when the
// slot turned out to be free and was allocated immediately, an entry when
// the request was queued.
type JoinResult struct {
	Booking *queries.BookingView
	Entry   *queries.WaitlistEntryView
}

type WaitlistCommands interface {
	Join(ctx context.Context, params JoinWaitlistParams) (*JoinResult, error)
	CancelEntry(ctx context.Context, entryID uuid.UUID) error
}

type waitlistCommandsImpl struct {
	*slotEngine
}

func NewWaitlistCommands(
	uow shared.UnitOfWork,
	locker SlotLocker,
	clk clock.Clock,
	notifier Notifier,
	m *metrics.Metrics,
	logger *slog.Logger,
) WaitlistCommands {
	return &waitlistCommandsImpl{
		slotEngine: newSlotEngine(uow, locker, clk, notifier, m, logger),
	}
}

func (c *waitlistCommandsImpl) Join(ctx context.Context, params JoinWaitlistParams) (*JoinResult, error) {
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

	var result *JoinResult
	var allocated *booking.Booking
	err = c.locker.WithLock(ctx, t.ID(), slot.Date(), func(ctx context.Context) error {
		return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			dup, err := tx.Waitlist().HasPendingDuplicate(ctx, params.UserID, t.ID(), slot.Date(), slot.Start(), slot.End())
			if err != nil {
				return err
			}
			if dup {
				return ErrDuplicateWaitlistEntry
			}

			occupied, err := tx.Bookings().OccupiedSlots(ctx, t.ID(), slot.Date())
			if err != nil {
				return err
			}

			entry, err := waitlist.NewEntry(t.ID(), params.UserID, params.Sport, slot, params.Priority)
			if err != nil {
				return err
			}

			if !booking.HasConflict(occupied, slot.Start(), slot.End(), uuid.Nil) {
				// Slot is actually free: allocate on the spot. The entry
				// is kept as a record of how the booking came to be.
				b, err := c.createInTx(ctx, tx, createParams{
					turf:          t,
					userID:        params.UserID,
					sport:         params.Sport,
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
				if err := tx.Waitlist().Create(ctx, entry); err != nil {
					return err
				}
				allocated = b
				result = &JoinResult{Booking: bookingToView(b, t.Name())}
				return nil
			}

			if err := tx.Waitlist().Create(ctx, entry); err != nil {
				return err
			}
			result = &JoinResult{Entry: entryToView(entry)}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	if result.Booking != nil {
		c.metrics.BookingsCreated.WithLabelValues(metrics.OriginWaitlist).Inc()
		c.metrics.WaitlistAllocations.WithLabelValues(metrics.TriggerJoin).Inc()
		c.applyLoyalty(ctx, allocated)
		c.notifier.Notify(ctx, EventWaitlistAllocated, map[string]any{
			"booking_id": result.Booking.ID.String(),
			"user_id":    params.UserID.String(),
			"turf_id":    t.ID().String(),
			"date":       slot.Date().Format(queries.DateFormat),
		})
	} else {
		c.notifier.Notify(ctx, EventWaitlistQueued, map[string]any{
			"entry_id": result.Entry.ID.String(),
			"user_id":  params.UserID.String(),
			"turf_id":  t.ID().String(),
			"date":     slot.Date().Format(queries.DateFormat),
			"priority": params.Priority,
		})
	}

	return result, nil
}

func (c *waitlistCommandsImpl) CancelEntry(ctx context.Context, entryID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entry, err := tx.Waitlist().FindByID(ctx, entryID)
		if err != nil {
			return err
		}
		if err := entry.Cancel(); err != nil {
			return err
		}
		return tx.Waitlist().Update(ctx, entry)
	})
}

func entryToView(e *waitlist.Entry) *queries.WaitlistEntryView {
	return &queries.WaitlistEntryView{
		ID:               e.ID(),
		TurfID:           e.TurfID(),
		UserID:           e.UserID(),
		Sport:            e.Sport(),
		Date:             e.Slot().Date().Format(queries.DateFormat),
		StartTime:        e.Slot().Start().String(),
		EndTime:          e.Slot().End().String(),
		Priority:         e.Priority(),
		Status:           e.Status().String(),
		AllocatedBooking: e.AllocatedBooking(),
		CreatedAt:        e.CreatedAt(),
	}
}
