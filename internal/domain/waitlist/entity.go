package waitlist

import (
	"time"

	"github.com/google/uuid"

	"turfbook/internal/domain/booking"
	"turfbook/internal/pkg/errs"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusAllocated Status = "allocated"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// Entry is a queued request for a slot that was occupied at join time.
// Terminal once allocated or cancelled.
type Entry struct {
	id               uuid.UUID
	turfID           uuid.UUID
	userID           uuid.UUID
	sport            string
	slot             booking.Slot
	priority         int
	status           Status
	allocatedBooking *uuid.UUID
	createdAt        time.Time
	updatedAt        time.Time
}

func NewEntry(turfID, userID uuid.UUID, sport string, slot booking.Slot, priority int) (*Entry, error) {
	if priority < 0 {
		return nil, errs.New("waitlist priority cannot be negative")
	}
	return &Entry{
		id:       uuid.New(),
		turfID:   turfID,
		userID:   userID,
		sport:    sport,
		slot:     slot,
		priority: priority,
		status:   StatusPending,
	}, nil
}

func Reconstruct(
	id, turfID, userID uuid.UUID,
	sport string,
	slot booking.Slot,
	priority int,
	status Status,
	allocatedBooking *uuid.UUID,
	createdAt, updatedAt time.Time,
) *Entry {
	return &Entry{
		id:               id,
		turfID:           turfID,
		userID:           userID,
		sport:            sport,
		slot:             slot,
		priority:         priority,
		status:           status,
		allocatedBooking: allocatedBooking,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

func (e *Entry) ID() uuid.UUID                { return e.id }
func (e *Entry) TurfID() uuid.UUID            { return e.turfID }
func (e *Entry) UserID() uuid.UUID            { return e.userID }
func (e *Entry) Sport() string                { return e.sport }
func (e *Entry) Slot() booking.Slot           { return e.slot }
func (e *Entry) Priority() int                { return e.priority }
func (e *Entry) Status() Status               { return e.status }
func (e *Entry) AllocatedBooking() *uuid.UUID { return e.allocatedBooking }
func (e *Entry) CreatedAt() time.Time         { return e.createdAt }
func (e *Entry) UpdatedAt() time.Time         { return e.updatedAt }

func (e *Entry) IsPending() bool {
	return e.status == StatusPending
}

// Allocate marks the entry served, with a back-reference to the booking it
// produced. The booking itself is owned by the booking store and can
// outlive this entry.
func (e *Entry) Allocate(bookingID uuid.UUID) error {
	if e.status != StatusPending {
		return errs.ErrInvalidStatusTransition
	}
	e.status = StatusAllocated
	e.allocatedBooking = &bookingID
	return nil
}

func (e *Entry) Cancel() error {
	if e.status != StatusPending {
		return errs.ErrInvalidStatusTransition
	}
	e.status = StatusCancelled
	return nil
}
