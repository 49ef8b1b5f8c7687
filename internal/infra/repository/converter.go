package repository

import (
	"time"

	"github.com/google/uuid"

	"turfbook/internal/domain/booking"
	"turfbook/internal/domain/waitlist"
	"turfbook/internal/pkg/errs"
)

type bookingRow struct {
	ID                 uuid.UUID
	TurfID             uuid.UUID
	UserID             uuid.UUID
	Sport              string
	Date               time.Time
	StartMin           int32
	EndMin             int32
	Price              int64
	Status             string
	PaymentStatus      string
	CancellationReason *string
	CancellationFee    *int64
	RefundAmount       *int64
	CancelledAt        *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func bookingRowToEntity(row bookingRow) (*booking.Booking, error) {
	slot, err := booking.NewSlot(row.Date, booking.TimeOfDay(row.StartMin), booking.TimeOfDay(row.EndMin))
	if err != nil {
		return nil, errs.Wrap(err, "corrupt booking slot in storage")
	}

	var fee, refund *booking.Money
	if row.CancellationFee != nil {
		m := booking.Money(*row.CancellationFee)
		fee = &m
	}
	if row.RefundAmount != nil {
		m := booking.Money(*row.RefundAmount)
		refund = &m
	}

	return booking.Reconstruct(
		row.ID, row.TurfID, row.UserID,
		row.Sport, slot,
		booking.Money(row.Price),
		booking.Status(row.Status),
		booking.PaymentStatus(row.PaymentStatus),
		row.CancellationReason,
		fee, refund,
		row.CancelledAt,
		row.CreatedAt, row.UpdatedAt,
	), nil
}

type waitlistRow struct {
	ID               uuid.UUID
	TurfID           uuid.UUID
	UserID           uuid.UUID
	Sport            string
	Date             time.Time
	StartMin         int32
	EndMin           int32
	Priority         int32
	Status           string
	AllocatedBooking *uuid.UUID
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func waitlistRowToEntity(row waitlistRow) (*waitlist.Entry, error) {
	slot, err := booking.NewSlot(row.Date, booking.TimeOfDay(row.StartMin), booking.TimeOfDay(row.EndMin))
	if err != nil {
		return nil, errs.Wrap(err, "corrupt waitlist slot in storage")
	}
	return waitlist.Reconstruct(
		row.ID, row.TurfID, row.UserID,
		row.Sport, slot,
		int(row.Priority),
		waitlist.Status(row.Status),
		row.AllocatedBooking,
		row.CreatedAt, row.UpdatedAt,
	), nil
}
