//go:build unit

package booking_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"turfbook/internal/domain/booking"
	"turfbook/internal/pkg/errs"
	"turfbook/tests/common/builder"
)

func TestNewBooking(t *testing.T) {
	slot := builder.NewBookingBuilder().BuildSlot()

	t.Run("starts pending or confirmed with payment pending", func(t *testing.T) {
		for _, status := range []booking.Status{booking.StatusPending, booking.StatusConfirmed} {
			b, err := booking.NewBooking(uuid.New(), uuid.New(), "football", slot, 2000, status)
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, b.ID())
			assert.Equal(t, status, b.Status())
			assert.Equal(t, booking.PaymentPending, b.PaymentStatus())
		}
	})

	t.Run("rejects other initial statuses", func(t *testing.T) {
		for _, status := range []booking.Status{booking.StatusCompleted, booking.StatusCancelled, booking.StatusRefunded} {
			_, err := booking.NewBooking(uuid.New(), uuid.New(), "football", slot, 2000, status)
			assert.ErrorIs(t, err, errs.ErrInvalidStatusTransition)
		}
	})
}

func TestBookingCancel(t *testing.T) {
	assessment := booking.RefundAssessment{RefundAmount: 1500, Fee: 500, RefundPercentage: 75}

	t.Run("records the refund split", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithPrice(2000).BuildDomain()
		now := time.Now()

		require.NoError(t, b.Cancel("rained out", assessment, now))

		assert.Equal(t, booking.StatusCancelled, b.Status())
		assert.True(t, b.IsCancelled())
		require.NotNil(t, b.CancellationReason())
		assert.Equal(t, "rained out", *b.CancellationReason())
		require.NotNil(t, b.RefundAmount())
		assert.Equal(t, int64(1500), b.RefundAmount().Int64())
		require.NotNil(t, b.CancellationFee())
		assert.Equal(t, int64(500), b.CancellationFee().Int64())
		require.NotNil(t, b.CancelledAt())
		assert.Equal(t, now, *b.CancelledAt())
	})

	t.Run("second cancellation fails", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, b.Cancel("first", assessment, time.Now()))
		assert.ErrorIs(t, b.Cancel("second", assessment, time.Now()), errs.ErrAlreadyCancelled)
	})

	t.Run("completed bookings cannot be cancelled", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithStatus(booking.StatusCompleted).BuildDomain()
		assert.ErrorIs(t, b.Cancel("too late", assessment, time.Now()), errs.ErrInvalidStatusTransition)
	})

	t.Run("past reservations cannot be cancelled", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithDate(time.Now().AddDate(0, 0, -1)).BuildDomain()
		assert.ErrorIs(t, b.Cancel("retroactive", assessment, time.Now()), errs.ErrPastReservationCancellation)
	})
}

func TestBookingConfirm(t *testing.T) {
	t.Run("pending to confirmed settles payment", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithStatus(booking.StatusPending).BuildDomain()
		require.NoError(t, b.Confirm())
		assert.Equal(t, booking.StatusConfirmed, b.Status())
		assert.Equal(t, booking.PaymentPaid, b.PaymentStatus())
	})

	t.Run("confirming a confirmed booking is a no-op", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithStatus(booking.StatusConfirmed).BuildDomain()
		require.NoError(t, b.Confirm())
		assert.Equal(t, booking.StatusConfirmed, b.Status())
	})

	t.Run("cancelled bookings cannot be confirmed", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithStatus(booking.StatusCancelled).BuildDomain()
		assert.ErrorIs(t, b.Confirm(), errs.ErrInvalidStatusTransition)
	})
}

func TestBookingComplete(t *testing.T) {
	t.Run("confirmed to completed", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithStatus(booking.StatusConfirmed).BuildDomain()
		require.NoError(t, b.Complete())
		assert.Equal(t, booking.StatusCompleted, b.Status())
	})

	t.Run("completing twice is a no-op", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithStatus(booking.StatusCompleted).BuildDomain()
		require.NoError(t, b.Complete())
		assert.Equal(t, booking.StatusCompleted, b.Status())
	})

	t.Run("pending bookings cannot complete without confirmation", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithStatus(booking.StatusPending).BuildDomain()
		assert.ErrorIs(t, b.Complete(), errs.ErrInvalidStatusTransition)
	})
}

func TestBookingMarkRefunded(t *testing.T) {
	t.Run("cancelled to refunded flips payment status", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithStatus(booking.StatusCancelled).BuildDomain()
		require.NoError(t, b.MarkRefunded())
		assert.Equal(t, booking.StatusRefunded, b.Status())
		assert.Equal(t, booking.PaymentRefunded, b.PaymentStatus())
		assert.True(t, b.IsCancelled())
	})

	t.Run("only cancelled bookings can be refunded", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithStatus(booking.StatusConfirmed).BuildDomain()
		assert.ErrorIs(t, b.MarkRefunded(), errs.ErrInvalidStatusTransition)
	})
}

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to booking.Status
		want     bool
	}{
		{booking.StatusPending, booking.StatusConfirmed, true},
		{booking.StatusPending, booking.StatusCancelled, true},
		{booking.StatusPending, booking.StatusCompleted, false},
		{booking.StatusConfirmed, booking.StatusCompleted, true},
		{booking.StatusConfirmed, booking.StatusCancelled, true},
		{booking.StatusConfirmed, booking.StatusPending, false},
		{booking.StatusCancelled, booking.StatusRefunded, true},
		{booking.StatusCancelled, booking.StatusConfirmed, false},
		{booking.StatusCompleted, booking.StatusCancelled, false},
		{booking.StatusRefunded, booking.StatusPending, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}
