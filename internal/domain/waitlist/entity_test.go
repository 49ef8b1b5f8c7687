//go:build unit

package waitlist_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"turfbook/internal/domain/booking"
	"turfbook/internal/domain/waitlist"
	"turfbook/internal/pkg/errs"
)

func newEntry(t *testing.T, priority int) *waitlist.Entry {
	t.Helper()
	slot, err := booking.NewSlot(
		time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		booking.TimeOfDay(18*60), booking.TimeOfDay(20*60),
	)
	require.NoError(t, err)
	e, err := waitlist.NewEntry(uuid.New(), uuid.New(), "football", slot, priority)
	require.NoError(t, err)
	return e
}

func TestNewEntry(t *testing.T) {
	t.Run("starts pending without an allocation", func(t *testing.T) {
		e := newEntry(t, 3)
		assert.NotEqual(t, uuid.Nil, e.ID())
		assert.Equal(t, waitlist.StatusPending, e.Status())
		assert.True(t, e.IsPending())
		assert.Equal(t, 3, e.Priority())
		assert.Nil(t, e.AllocatedBooking())
	})

	t.Run("rejects negative priority", func(t *testing.T) {
		slot, err := booking.NewSlot(time.Now(), booking.TimeOfDay(600), booking.TimeOfDay(660))
		require.NoError(t, err)
		_, err = waitlist.NewEntry(uuid.New(), uuid.New(), "football", slot, -1)
		assert.Error(t, err)
	})
}

func TestEntryAllocate(t *testing.T) {
	t.Run("pending to allocated records the booking", func(t *testing.T) {
		e := newEntry(t, 0)
		bookingID := uuid.New()

		require.NoError(t, e.Allocate(bookingID))

		assert.Equal(t, waitlist.StatusAllocated, e.Status())
		assert.False(t, e.IsPending())
		require.NotNil(t, e.AllocatedBooking())
		assert.Equal(t, bookingID, *e.AllocatedBooking())
	})

	t.Run("allocated entries are terminal", func(t *testing.T) {
		e := newEntry(t, 0)
		require.NoError(t, e.Allocate(uuid.New()))
		assert.ErrorIs(t, e.Allocate(uuid.New()), errs.ErrInvalidStatusTransition)
		assert.ErrorIs(t, e.Cancel(), errs.ErrInvalidStatusTransition)
	})
}

func TestEntryCancel(t *testing.T) {
	t.Run("pending to cancelled", func(t *testing.T) {
		e := newEntry(t, 0)
		require.NoError(t, e.Cancel())
		assert.Equal(t, waitlist.StatusCancelled, e.Status())
	})

	t.Run("cancelled entries cannot be allocated", func(t *testing.T) {
		e := newEntry(t, 0)
		require.NoError(t, e.Cancel())
		assert.ErrorIs(t, e.Allocate(uuid.New()), errs.ErrInvalidStatusTransition)
	})
}
