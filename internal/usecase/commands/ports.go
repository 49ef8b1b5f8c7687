package commands

import (
	"context"
	"time"

	"github.com/google/uuid"

	"turfbook/internal/pkg/errs"
)

// SlotLocker serializes conflicting operations on one (turf, date) key.
// Create, cancel and waitlist reallocation all go through the same key, so
// a cancellation's reallocation scan can never race a concurrent create for
// the slot it just freed. Acquisition waits a bounded time and surfaces
// ErrResourceBusy on timeout; fn runs while the lease is held.
type SlotLocker interface {
	WithLock(ctx context.Context, turfID uuid.UUID, date time.Time, fn func(ctx context.Context) error) error
}

// Notifier is the external notification dispatcher, invoked after a state
// transition commits. Implementations must never block the transition or
// surface failures; delivery problems are logged on their side.
type Notifier interface {
	Notify(ctx context.Context, event string, payload map[string]any)
}

// Notification events emitted at commit points.
const (
	EventBookingCreated    = "booking_created"
	EventBookingConfirmed  = "booking_confirmed"
	EventBookingCancelled  = "booking_cancelled"
	EventBookingCompleted  = "booking_completed"
	EventWaitlistQueued    = "waitlist_queued"
	EventWaitlistAllocated = "waitlist_allocated"
	EventPlanCreated       = "recurring_plan_created"
)

var (
	ErrTurfNotFound                = errs.ErrTurfNotFound
	ErrBookingNotFound             = errs.ErrBookingNotFound
	ErrUnsupportedSport            = errs.ErrUnsupportedSport
	ErrOutsideOperatingHours       = errs.ErrOutsideOperatingHours
	ErrInvalidTimeRange            = errs.ErrInvalidTimeRange
	ErrSlotConflict                = errs.ErrSlotConflict
	ErrAlreadyCancelled            = errs.ErrAlreadyCancelled
	ErrPastReservationCancellation = errs.ErrPastReservationCancellation
	ErrDuplicateWaitlistEntry      = errs.ErrDuplicateWaitlistEntry
	ErrInvalidRecurrencePlan       = errs.ErrInvalidRecurrencePlan
	ErrResourceBusy                = errs.ErrResourceBusy
	ErrStorageFailure              = errs.ErrStorageFailure

	ErrBookingNotEligibleForReview = errs.New("booking is not eligible for review")
)
