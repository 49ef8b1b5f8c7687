//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"turfbook/internal/domain/booking"
	"turfbook/internal/domain/recurring"
	"turfbook/internal/pkg/metrics"
	"turfbook/internal/usecase/commands"
	"turfbook/tests/common/builder"
)

func (d *commandDeps) newRecurringCommands() commands.RecurringCommands {
	return commands.NewRecurringCommands(d.uow, d.locker, d.clock, d.notifier, d.metrics, d.logger)
}

// Three weekdays following testNow.
var (
	planStart = time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	planMid   = time.Date(2026, time.March, 11, 0, 0, 0, 0, time.UTC)
	planEnd   = time.Date(2026, time.March, 12, 0, 0, 0, 0, time.UTC)
)

func planParamsFixture(turfID, userID uuid.UUID) commands.CreatePlanParams {
	return commands.CreatePlanParams{
		TurfID:          turfID,
		UserID:          userID,
		Sport:           "football",
		StartDate:       planStart,
		EndDate:         planEnd,
		Pattern:         recurring.PatternDaily,
		StartTime:       mustTOD("10:00"),
		EndTime:         mustTOD("12:00"),
		DiscountPercent: 10,
	}
}

func TestCreatePlan(t *testing.T) {
	t.Run("books every candidate date pending with the plan discount", func(t *testing.T) {
		d := newCommandDeps(t)
		d.passthroughTx()
		d.passthroughLock()
		trf := builder.NewTurfBuilder().Build()
		userID := uuid.New()
		params := planParamsFixture(trf.ID(), userID)

		d.reads.EXPECT().TurfByID(gomock.Any(), trf.ID()).Return(trf, nil)
		d.plans.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		d.bookings.EXPECT().OccupiedSlots(gomock.Any(), trf.ID(), gomock.Any()).Return([]booking.OccupiedSlot{}, nil).Times(3)
		d.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(3)
		d.plans.EXPECT().AttachBooking(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(3)
		d.notifier.EXPECT().Notify(gomock.Any(), commands.EventPlanCreated, gomock.Any())

		result, err := d.newRecurringCommands().CreatePlan(context.Background(), params)

		require.NoError(t, err)
		require.Len(t, result.Created, 3)
		assert.Empty(t, result.SkippedDates)
		assert.Equal(t, []string{"2026-03-10", "2026-03-11", "2026-03-12"},
			[]string{result.Created[0].Date, result.Created[1].Date, result.Created[2].Date})
		for _, v := range result.Created {
			assert.Equal(t, booking.StatusPending.String(), v.Status)
			assert.Equal(t, int64(1800), v.Price) // 2000 base less the 10% plan discount
		}
		assert.Equal(t, string(recurring.StatusActive), result.Plan.Status)
		assert.Len(t, result.Plan.BookingIDs, 3)
		assert.Equal(t, float64(3), testutil.ToFloat64(d.metrics.BookingsCreated.WithLabelValues(metrics.OriginRecurring)))
	})

	t.Run("conflicted date is skipped without failing the plan", func(t *testing.T) {
		d := newCommandDeps(t)
		d.passthroughTx()
		d.passthroughLock()
		trf := builder.NewTurfBuilder().Build()
		params := planParamsFixture(trf.ID(), uuid.New())

		d.reads.EXPECT().TurfByID(gomock.Any(), trf.ID()).Return(trf, nil)
		d.plans.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		d.bookings.EXPECT().OccupiedSlots(gomock.Any(), trf.ID(), planStart).Return([]booking.OccupiedSlot{}, nil)
		d.bookings.EXPECT().OccupiedSlots(gomock.Any(), trf.ID(), planMid).Return([]booking.OccupiedSlot{
			{BookingID: uuid.New(), Start: mustTOD("11:00"), End: mustTOD("13:00"), Status: booking.StatusConfirmed},
		}, nil)
		d.bookings.EXPECT().OccupiedSlots(gomock.Any(), trf.ID(), planEnd).Return([]booking.OccupiedSlot{}, nil)
		d.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(2)
		d.plans.EXPECT().AttachBooking(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
		d.notifier.EXPECT().Notify(gomock.Any(), commands.EventPlanCreated, gomock.Any())

		result, err := d.newRecurringCommands().CreatePlan(context.Background(), params)

		require.NoError(t, err)
		assert.Len(t, result.Created, 2)
		assert.Equal(t, []string{"2026-03-11"}, result.SkippedDates)
		assert.Equal(t, float64(1), testutil.ToFloat64(d.metrics.SlotConflicts))
	})

	t.Run("contested lease skips the date", func(t *testing.T) {
		d := newCommandDeps(t)
		d.passthroughTx()
		trf := builder.NewTurfBuilder().Build()
		params := planParamsFixture(trf.ID(), uuid.New())
		params.StartDate = planStart
		params.EndDate = planStart

		d.reads.EXPECT().TurfByID(gomock.Any(), trf.ID()).Return(trf, nil)
		d.plans.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		d.locker.EXPECT().WithLock(gomock.Any(), trf.ID(), planStart, gomock.Any()).Return(commands.ErrResourceBusy)
		d.notifier.EXPECT().Notify(gomock.Any(), commands.EventPlanCreated, gomock.Any())

		result, err := d.newRecurringCommands().CreatePlan(context.Background(), params)

		require.NoError(t, err)
		assert.Empty(t, result.Created)
		assert.Equal(t, []string{"2026-03-10"}, result.SkippedDates)
		assert.Equal(t, float64(1), testutil.ToFloat64(d.metrics.LockTimeouts))
	})

	t.Run("dates already in the past are skipped without locking", func(t *testing.T) {
		d := newCommandDeps(t)
		d.passthroughTx()
		trf := builder.NewTurfBuilder().Build()
		params := planParamsFixture(trf.ID(), uuid.New())
		params.StartDate = time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
		params.EndDate = time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC)

		d.reads.EXPECT().TurfByID(gomock.Any(), trf.ID()).Return(trf, nil)
		d.plans.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		d.notifier.EXPECT().Notify(gomock.Any(), commands.EventPlanCreated, gomock.Any())

		result, err := d.newRecurringCommands().CreatePlan(context.Background(), params)

		require.NoError(t, err)
		assert.Empty(t, result.Created)
		assert.Equal(t, []string{"2026-03-02", "2026-03-03", "2026-03-04"}, result.SkippedDates)
	})

	t.Run("invalid schedule is rejected before persisting", func(t *testing.T) {
		d := newCommandDeps(t)
		trf := builder.NewTurfBuilder().Build()
		params := planParamsFixture(trf.ID(), uuid.New())
		params.EndDate = params.StartDate.AddDate(0, 0, -1)

		d.reads.EXPECT().TurfByID(gomock.Any(), trf.ID()).Return(trf, nil)

		_, err := d.newRecurringCommands().CreatePlan(context.Background(), params)
		require.ErrorIs(t, err, commands.ErrInvalidRecurrencePlan)
	})

	t.Run("slot outside operating hours fails the whole plan", func(t *testing.T) {
		d := newCommandDeps(t)
		trf := builder.NewTurfBuilder().WithHours(mustTOD("09:00"), mustTOD("21:00")).Build()
		params := planParamsFixture(trf.ID(), uuid.New())
		params.StartTime = mustTOD("20:00")
		params.EndTime = mustTOD("22:00")

		d.reads.EXPECT().TurfByID(gomock.Any(), trf.ID()).Return(trf, nil)

		_, err := d.newRecurringCommands().CreatePlan(context.Background(), params)
		require.ErrorIs(t, err, commands.ErrOutsideOperatingHours)
	})
}
