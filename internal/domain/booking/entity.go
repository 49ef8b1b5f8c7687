package booking

import (
	"time"

	"github.com/google/uuid"

	"turfbook/internal/pkg/errs"
)

// Booking is a claim on a turf for one slot. The row is never deleted; a
// cancellation transitions status and records the refund split so the audit
// trail survives.
type Booking struct {
	id            uuid.UUID
	turfID        uuid.UUID
	userID        uuid.UUID
	sport         string
	slot          Slot
	price         Money
	status        Status
	paymentStatus PaymentStatus

	cancellationReason *string
	cancellationFee    *Money
	refundAmount       *Money
	cancelledAt        *time.Time

	createdAt time.Time
	updatedAt time.Time
}

func NewBooking(turfID, userID uuid.UUID, sport string, slot Slot, price Money, status Status) (*Booking, error) {
	if status != StatusPending && status != StatusConfirmed {
		return nil, errs.ErrInvalidStatusTransition
	}
	return &Booking{
		id:            uuid.New(),
		turfID:        turfID,
		userID:        userID,
		sport:         sport,
		slot:          slot,
		price:         price,
		status:        status,
		paymentStatus: PaymentPending,
	}, nil
}

func Reconstruct(
	id, turfID, userID uuid.UUID,
	sport string,
	slot Slot,
	price Money,
	status Status,
	paymentStatus PaymentStatus,
	cancellationReason *string,
	cancellationFee, refundAmount *Money,
	cancelledAt *time.Time,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:                 id,
		turfID:             turfID,
		userID:             userID,
		sport:              sport,
		slot:               slot,
		price:              price,
		status:             status,
		paymentStatus:      paymentStatus,
		cancellationReason: cancellationReason,
		cancellationFee:    cancellationFee,
		refundAmount:       refundAmount,
		cancelledAt:        cancelledAt,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
}

func (b *Booking) ID() uuid.UUID                { return b.id }
func (b *Booking) TurfID() uuid.UUID            { return b.turfID }
func (b *Booking) UserID() uuid.UUID            { return b.userID }
func (b *Booking) Sport() string                { return b.sport }
func (b *Booking) Slot() Slot                   { return b.slot }
func (b *Booking) Price() Money                 { return b.price }
func (b *Booking) Status() Status               { return b.status }
func (b *Booking) PaymentStatus() PaymentStatus { return b.paymentStatus }
func (b *Booking) CancellationReason() *string  { return b.cancellationReason }
func (b *Booking) CancellationFee() *Money      { return b.cancellationFee }
func (b *Booking) RefundAmount() *Money         { return b.refundAmount }
func (b *Booking) CancelledAt() *time.Time      { return b.cancelledAt }
func (b *Booking) CreatedAt() time.Time         { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time         { return b.updatedAt }

func (b *Booking) IsCancelled() bool {
	return b.status == StatusCancelled || b.status == StatusRefunded
}

// Cancel applies the refund assessment and moves the booking to cancelled.
// Second cancellation attempts fail with AlreadyCancelled; past bookings
// cannot be cancelled retroactively.
func (b *Booking) Cancel(reason string, assessment RefundAssessment, now time.Time) error {
	if b.IsCancelled() {
		return errs.ErrAlreadyCancelled
	}
	if !b.status.CanTransitionTo(StatusCancelled) {
		return errs.ErrInvalidStatusTransition
	}
	if now.After(b.slot.StartDateTime()) {
		return errs.ErrPastReservationCancellation
	}

	refund := assessment.RefundAmount
	fee := assessment.Fee
	b.status = StatusCancelled
	b.cancellationReason = &reason
	b.refundAmount = &refund
	b.cancellationFee = &fee
	b.cancelledAt = &now
	return nil
}

// MarkRefunded records that the external payment collaborator has paid the
// refund out.
func (b *Booking) MarkRefunded() error {
	if b.status == StatusRefunded {
		return nil
	}
	if !b.status.CanTransitionTo(StatusRefunded) {
		return errs.ErrInvalidStatusTransition
	}
	b.status = StatusRefunded
	b.paymentStatus = PaymentRefunded
	return nil
}

// Complete transitions confirmed -> completed. Idempotent: completing an
// already-completed booking is a no-op so the external scheduler can retry.
func (b *Booking) Complete() error {
	if b.status == StatusCompleted {
		return nil
	}
	if !b.status.CanTransitionTo(StatusCompleted) {
		return errs.ErrInvalidStatusTransition
	}
	b.status = StatusCompleted
	return nil
}

// Confirm transitions pending -> confirmed once external payment settles.
func (b *Booking) Confirm() error {
	if b.status == StatusConfirmed {
		return nil
	}
	if !b.status.CanTransitionTo(StatusConfirmed) {
		return errs.ErrInvalidStatusTransition
	}
	b.status = StatusConfirmed
	b.paymentStatus = PaymentPaid
	return nil
}
