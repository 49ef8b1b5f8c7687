//go:build unit

package loyalty_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"turfbook/internal/domain/loyalty"
)

func TestTierForSpend(t *testing.T) {
	cases := []struct {
		spend int64
		want  loyalty.Tier
	}{
		{0, loyalty.TierBronze},
		{4999, loyalty.TierBronze},
		{5000, loyalty.TierSilver},
		{14999, loyalty.TierSilver},
		{15000, loyalty.TierGold},
		{49999, loyalty.TierGold},
		{50000, loyalty.TierPlatinum},
		{1000000, loyalty.TierPlatinum},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, loyalty.TierForSpend(tc.spend), "spend %d", tc.spend)
	}
}

func TestApplyBooking(t *testing.T) {
	now := time.Now()

	t.Run("base rate on a fresh bronze account", func(t *testing.T) {
		a := loyalty.NewAccount(uuid.New())
		bookingID := uuid.New()

		res := a.ApplyBooking(bookingID, 3000, now)

		assert.Equal(t, int64(300), res.PointsEarned) // 3000/100 * 10
		assert.Equal(t, loyalty.TierBronze, res.NewTier)
		assert.Equal(t, int64(300), a.Points())
		assert.Equal(t, int64(3000), a.TotalSpend())
		require.Len(t, a.History(), 1)
		assert.Equal(t, bookingID, a.History()[0].BookingID)
		assert.Equal(t, int64(300), a.History()[0].PointsEarned)
	})

	t.Run("sub-100 remainder earns nothing extra", func(t *testing.T) {
		a := loyalty.NewAccount(uuid.New())
		res := a.ApplyBooking(uuid.New(), 199, now)
		assert.Equal(t, int64(19), res.PointsEarned)
	})

	t.Run("multiplier comes from the tier held before the booking", func(t *testing.T) {
		a := loyalty.NewAccount(uuid.New())

		// First booking crosses the silver threshold but still earns at 1x.
		res := a.ApplyBooking(uuid.New(), 5000, now)
		assert.Equal(t, int64(500), res.PointsEarned)
		assert.Equal(t, loyalty.TierSilver, res.NewTier)

		// Now silver: 1.2x on the next booking.
		res = a.ApplyBooking(uuid.New(), 1000, now)
		assert.Equal(t, int64(120), res.PointsEarned)
	})

	t.Run("tier walk through gold to platinum", func(t *testing.T) {
		a := loyalty.NewAccount(uuid.New())

		a.ApplyBooking(uuid.New(), 15000, now)
		assert.Equal(t, loyalty.TierGold, a.Tier())

		res := a.ApplyBooking(uuid.New(), 1000, now)
		assert.Equal(t, int64(150), res.PointsEarned) // gold 1.5x

		a.ApplyBooking(uuid.New(), 34000, now)
		assert.Equal(t, loyalty.TierPlatinum, a.Tier())

		res = a.ApplyBooking(uuid.New(), 1000, now)
		assert.Equal(t, int64(200), res.PointsEarned) // platinum 2x
	})

	t.Run("tier never downgrades", func(t *testing.T) {
		a := loyalty.Reconstruct(uuid.New(), 0, 0, loyalty.TierGold, nil, now, now)
		res := a.ApplyBooking(uuid.New(), 100, now)
		assert.Equal(t, loyalty.TierGold, res.NewTier)
		assert.Equal(t, loyalty.TierGold, a.Tier())
		assert.Equal(t, int64(15), res.PointsEarned) // still earns at the held tier
	})

	t.Run("running totals accumulate", func(t *testing.T) {
		a := loyalty.NewAccount(uuid.New())
		a.ApplyBooking(uuid.New(), 1000, now)
		res := a.ApplyBooking(uuid.New(), 2000, now)

		assert.Equal(t, int64(3000), a.TotalSpend())
		assert.Equal(t, int64(300), res.TotalPoints)
		assert.Len(t, a.History(), 2)
	})
}
