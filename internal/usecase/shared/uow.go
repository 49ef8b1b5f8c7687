package shared

import (
	"context"
	"time"

	"github.com/google/uuid"

	"turfbook/internal/domain/booking"
	"turfbook/internal/domain/loyalty"
	"turfbook/internal/domain/recurring"
	"turfbook/internal/domain/review"
	"turfbook/internal/domain/turf"
	"turfbook/internal/domain/waitlist"
)

// UnitOfWork scopes write operations to a single transaction. Within retries
// on serialization failures and deadlocks before surfacing StorageFailure.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// Reads: non-transactional command-side reads for validation
	Reads() CommandReads
}

// Tx hands out repositories bound to the running transaction.
type Tx interface {
	Bookings() BookingRepository
	Waitlist() WaitlistRepository
	Plans() PlanRepository
	Loyalty() LoyaltyRepository
	Reviews() ReviewRepository
	RatingStats() RatingStatsRepository
	Reads() CommandReads
}

type CommandReads interface {
	TurfByID(ctx context.Context, id uuid.UUID) (*turf.Turf, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	Update(ctx context.Context, b *booking.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	// OccupiedSlots returns every booking row on the turf and date,
	// including non-occupying statuses; the domain predicate filters.
	OccupiedSlots(ctx context.Context, turfID uuid.UUID, date time.Time) ([]booking.OccupiedSlot, error)
}

type WaitlistRepository interface {
	Create(ctx context.Context, e *waitlist.Entry) error
	Update(ctx context.Context, e *waitlist.Entry) error
	FindByID(ctx context.Context, id uuid.UUID) (*waitlist.Entry, error)
	HasPendingDuplicate(ctx context.Context, userID, turfID uuid.UUID, date time.Time, start, end booking.TimeOfDay) (bool, error)
	// PendingByTurfDate returns pending entries ordered by priority
	// descending, then submission time ascending.
	PendingByTurfDate(ctx context.Context, turfID uuid.UUID, date time.Time) ([]*waitlist.Entry, error)
}

type PlanRepository interface {
	Create(ctx context.Context, p *recurring.Plan) error
	FindByID(ctx context.Context, id uuid.UUID) (*recurring.Plan, error)
	AttachBooking(ctx context.Context, planID, bookingID uuid.UUID) error
}

type LoyaltyRepository interface {
	// FindOrCreateByUser returns the user's account, creating an empty
	// bronze account on first use.
	FindOrCreateByUser(ctx context.Context, userID uuid.UUID) (*loyalty.Account, error)
	Save(ctx context.Context, a *loyalty.Account, earning loyalty.Earning) error
}

type ReviewRepository interface {
	Create(ctx context.Context, r *review.Review) error
}

type RatingStatsRepository interface {
	RecalcTurfRatingStats(ctx context.Context, turfID uuid.UUID) error
}
