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

var queryDate = time.Date(2026, time.March, 16, 0, 0, 0, 0, time.UTC)

func mustTOD(s string) booking.TimeOfDay {
	v, err := booking.ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestGetAvailability(t *testing.T) {
	t.Run("splits the day around occupying bookings", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		turfs := queriesmock.NewMockTurfViewRepo(ctrl)
		occupancy := queriesmock.NewMockOccupancyRepo(ctrl)
		trf := builder.NewTurfBuilder().Build() // open 06:00, close 23:00

		turfs.EXPECT().FindByID(gomock.Any(), trf.ID()).Return(trf, nil)
		occupancy.EXPECT().OccupiedSlots(gomock.Any(), trf.ID(), queryDate).Return([]booking.OccupiedSlot{
			{BookingID: uuid.New(), Start: mustTOD("10:00"), End: mustTOD("12:00"), Status: booking.StatusConfirmed},
			{BookingID: uuid.New(), Start: mustTOD("14:00"), End: mustTOD("16:00"), Status: booking.StatusPending},
			{BookingID: uuid.New(), Start: mustTOD("18:00"), End: mustTOD("20:00"), Status: booking.StatusCancelled},
		}, nil)

		view, err := queries.NewAvailabilityQueries(turfs, occupancy).GetAvailability(context.Background(), trf.ID(), queryDate)

		require.NoError(t, err)
		assert.Equal(t, "2026-03-16", view.Date)
		assert.Equal(t, "06:00", view.OpenTime)
		assert.Equal(t, "23:00", view.CloseTime)
		assert.Equal(t, []queries.TimeRangeView{
			{StartTime: "06:00", EndTime: "10:00"},
			{StartTime: "12:00", EndTime: "14:00"},
			{StartTime: "16:00", EndTime: "23:00"},
		}, view.Free)
		// The cancelled booking neither blocks nor shows up.
		assert.Equal(t, []queries.TimeRangeView{
			{StartTime: "10:00", EndTime: "12:00"},
			{StartTime: "14:00", EndTime: "16:00"},
		}, view.Occupied)
	})

	t.Run("empty day is one free range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		turfs := queriesmock.NewMockTurfViewRepo(ctrl)
		occupancy := queriesmock.NewMockOccupancyRepo(ctrl)
		trf := builder.NewTurfBuilder().Build()

		turfs.EXPECT().FindByID(gomock.Any(), trf.ID()).Return(trf, nil)
		occupancy.EXPECT().OccupiedSlots(gomock.Any(), trf.ID(), queryDate).Return([]booking.OccupiedSlot{}, nil)

		view, err := queries.NewAvailabilityQueries(turfs, occupancy).GetAvailability(context.Background(), trf.ID(), queryDate)

		require.NoError(t, err)
		assert.Equal(t, []queries.TimeRangeView{{StartTime: "06:00", EndTime: "23:00"}}, view.Free)
		assert.Empty(t, view.Occupied)
	})

	t.Run("unknown turf propagates not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		turfs := queriesmock.NewMockTurfViewRepo(ctrl)
		occupancy := queriesmock.NewMockOccupancyRepo(ctrl)
		turfID := uuid.New()

		turfs.EXPECT().FindByID(gomock.Any(), turfID).Return(nil, errs.ErrTurfNotFound)

		_, err := queries.NewAvailabilityQueries(turfs, occupancy).GetAvailability(context.Background(), turfID, queryDate)
		require.ErrorIs(t, err, errs.ErrTurfNotFound)
	})
}
