//go:build unit

package turf_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"turfbook/internal/domain/booking"
	"turfbook/internal/domain/turf"
)

func TestNewTurf(t *testing.T) {
	mk := func(mutate func(*params)) (*turf.Turf, error) {
		p := params{
			id:        uuid.New(),
			name:      "City Arena",
			rate:      decimal.NewFromInt(1200),
			openTime:  booking.TimeOfDay(6 * 60),
			closeTime: booking.TimeOfDay(23 * 60),
		}
		if mutate != nil {
			mutate(&p)
		}
		return turf.NewTurf(p.id, p.name, "Downtown", p.rate, []string{"football"}, p.openTime, p.closeTime)
	}

	t.Run("valid turf", func(t *testing.T) {
		tf, err := mk(nil)
		require.NoError(t, err)
		assert.Equal(t, "City Arena", tf.Name())
	})

	cases := []struct {
		name   string
		mutate func(*params)
	}{
		{"nil ID", func(p *params) { p.id = uuid.Nil }},
		{"empty name", func(p *params) { p.name = "" }},
		{"negative hourly rate", func(p *params) { p.rate = decimal.NewFromInt(-1) }},
		{"open at or after close", func(p *params) { p.openTime = p.closeTime }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := mk(tc.mutate)
			assert.Error(t, err)
		})
	}
}

type params struct {
	id        uuid.UUID
	name      string
	rate      decimal.Decimal
	openTime  booking.TimeOfDay
	closeTime booking.TimeOfDay
}

func TestSupportsSport(t *testing.T) {
	tf, err := turf.NewTurf(
		uuid.New(), "City Arena", "Downtown",
		decimal.NewFromInt(1000), []string{"football", "cricket"},
		booking.TimeOfDay(6*60), booking.TimeOfDay(23*60),
	)
	require.NoError(t, err)

	assert.True(t, tf.SupportsSport("football"))
	assert.True(t, tf.SupportsSport("cricket"))
	assert.False(t, tf.SupportsSport("tennis"))
	assert.False(t, tf.SupportsSport("Football"), "sport names are case sensitive")
}

func TestWithinOperatingHours(t *testing.T) {
	tf, err := turf.NewTurf(
		uuid.New(), "City Arena", "Downtown",
		decimal.NewFromInt(1000), []string{"football"},
		booking.TimeOfDay(6*60), booking.TimeOfDay(22*60),
	)
	require.NoError(t, err)

	date := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)
	mkSlot := func(startHour, endHour int) booking.Slot {
		slot, err := booking.NewSlot(date, booking.TimeOfDay(startHour*60), booking.TimeOfDay(endHour*60))
		require.NoError(t, err)
		return slot
	}

	assert.True(t, tf.WithinOperatingHours(mkSlot(6, 8)), "opening boundary is inclusive")
	assert.True(t, tf.WithinOperatingHours(mkSlot(20, 22)), "closing boundary is inclusive for the end")
	assert.False(t, tf.WithinOperatingHours(mkSlot(5, 7)))
	assert.False(t, tf.WithinOperatingHours(mkSlot(21, 23)))
}
