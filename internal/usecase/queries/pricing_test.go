//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"turfbook/internal/domain/booking"
	"turfbook/internal/pkg/errs"
	"turfbook/internal/usecase/queries"
	"turfbook/tests/common/builder"
	queriesmock "turfbook/tests/mock/queries"
)

func newPricingQueries(ctrl *gomock.Controller) (queries.PricingQueries, *queriesmock.MockTurfViewRepo, *queriesmock.MockOccupancyRepo) {
	turfs := queriesmock.NewMockTurfViewRepo(ctrl)
	occupancy := queriesmock.NewMockOccupancyRepo(ctrl)
	return queries.NewPricingQueries(turfs, occupancy), turfs, occupancy
}

func TestQuoteDynamicPrice(t *testing.T) {
	t.Run("quiet weekday quotes the base price", func(t *testing.T) {
		q, turfs, occupancy := newPricingQueries(gomock.NewController(t))
		trf := builder.NewTurfBuilder().Build() // 1000 per hour

		turfs.EXPECT().FindByID(gomock.Any(), trf.ID()).Return(trf, nil)
		occupancy.EXPECT().OccupiedSlots(gomock.Any(), trf.ID(), queryDate).Return([]booking.OccupiedSlot{}, nil)

		view, err := q.QuoteDynamicPrice(context.Background(), trf.ID(), queryDate, mustTOD("10:00"), mustTOD("12:00"))

		require.NoError(t, err)
		assert.Equal(t, int64(2000), view.BasePrice)
		assert.Equal(t, int64(2000), view.FinalPrice)
		assert.Equal(t, booking.PriceFactors{Peak: 1, Weekend: 1, Seasonal: 1, Demand: 1, Discount: 1}, view.Factors)
	})

	t.Run("nearby bookings raise the demand factor", func(t *testing.T) {
		q, turfs, occupancy := newPricingQueries(gomock.NewController(t))
		trf := builder.NewTurfBuilder().Build()

		turfs.EXPECT().FindByID(gomock.Any(), trf.ID()).Return(trf, nil)
		occupancy.EXPECT().OccupiedSlots(gomock.Any(), trf.ID(), queryDate).Return([]booking.OccupiedSlot{
			// Adjacent before and overlapping after both count.
			{BookingID: uuid.New(), Start: mustTOD("08:00"), End: mustTOD("10:00"), Status: booking.StatusConfirmed},
			{BookingID: uuid.New(), Start: mustTOD("11:00"), End: mustTOD("13:00"), Status: booking.StatusPending},
			// Cancelled and distant bookings do not.
			{BookingID: uuid.New(), Start: mustTOD("10:00"), End: mustTOD("12:00"), Status: booking.StatusCancelled},
			{BookingID: uuid.New(), Start: mustTOD("20:00"), End: mustTOD("22:00"), Status: booking.StatusConfirmed},
		}, nil)

		view, err := q.QuoteDynamicPrice(context.Background(), trf.ID(), queryDate, mustTOD("10:00"), mustTOD("12:00"))

		require.NoError(t, err)
		assert.Equal(t, 1.1, view.Factors.Demand)
		assert.Equal(t, int64(2200), view.FinalPrice)
	})

	t.Run("peak weekend in high season stacks every factor", func(t *testing.T) {
		q, turfs, occupancy := newPricingQueries(gomock.NewController(t))
		trf := builder.NewTurfBuilder().Build()
		saturdayJuly := time.Date(2026, time.July, 4, 0, 0, 0, 0, time.UTC)

		turfs.EXPECT().FindByID(gomock.Any(), trf.ID()).Return(trf, nil)
		occupancy.EXPECT().OccupiedSlots(gomock.Any(), trf.ID(), saturdayJuly).Return([]booking.OccupiedSlot{}, nil)

		view, err := q.QuoteDynamicPrice(context.Background(), trf.ID(), saturdayJuly, mustTOD("18:00"), mustTOD("20:00"))

		require.NoError(t, err)
		assert.Equal(t, booking.PriceFactors{Peak: 1.2, Weekend: 1.1, Seasonal: 1.15, Demand: 1, Discount: 1}, view.Factors)
		// 2000 * 1.2 * 1.1 * 1.15, rounded half up once.
		assert.Equal(t, int64(3036), view.FinalPrice)
	})

	t.Run("inverted range is rejected", func(t *testing.T) {
		q, turfs, _ := newPricingQueries(gomock.NewController(t))
		trf := builder.NewTurfBuilder().Build()

		turfs.EXPECT().FindByID(gomock.Any(), trf.ID()).Return(trf, nil)

		_, err := q.QuoteDynamicPrice(context.Background(), trf.ID(), queryDate, mustTOD("12:00"), mustTOD("10:00"))
		require.ErrorIs(t, err, errs.ErrInvalidTimeRange)
	})
}
