//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"turfbook/internal/handler/api"
	"turfbook/internal/handler/middleware"
	"turfbook/internal/pkg/errs"
	"turfbook/internal/usecase/commands"
	"turfbook/internal/usecase/queries"
	"turfbook/tests/common/builder"
	"turfbook/tests/common/httptest"
	commandsmock "turfbook/tests/mock/commands"
	queriesmock "turfbook/tests/mock/queries"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	userID       uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.userID = uuid.New()

	h := api.NewBookingHandler(s.mockCommands, s.mockQueries)
	group := s.router.Group("/bookings")
	group.Use(middleware.RequireUser())
	group.POST("", h.CreateBooking)
	group.GET("", h.ListUserBookings)
	group.GET("/:id", h.GetBooking)
	group.POST("/:id/cancel", h.CancelBooking)
	group.POST("/:id/confirm", h.ConfirmBooking)
	group.POST("/:id/complete", h.CompleteBooking)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	s.Run("valid request returns the created booking", func() {
		bld := builder.NewBookingBuilder().WithUserID(s.userID)
		req := bld.BuildCreateRequestDTO()
		view := bld.BuildView()

		s.mockCommands.EXPECT().
			CreateBooking(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, params commands.CreateBookingParams) (*queries.BookingView, error) {
				s.Equal(s.userID, params.UserID)
				s.Equal(req.TurfID, params.TurfID)
				s.Equal("football", params.Sport)
				return view, nil
			})

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", req, s.userID.String())

		var got queries.BookingView
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &got)
		s.Equal(view.ID, got.ID)
		s.Equal(view.Price, got.Price)
		s.Equal(view.Status, got.Status)
	})

	s.Run("missing identity header is unauthorized", func() {
		req := builder.NewBookingBuilder().BuildCreateRequestDTO()

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", req, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "User identity required")
	})

	s.Run("malformed date is a bad request", func() {
		req := builder.NewBookingBuilder().BuildCreateRequestDTO()
		req.Date = "16-03-2026"

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", req, s.userID.String())
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid date format")
	})

	s.Run("malformed time is a bad request", func() {
		req := builder.NewBookingBuilder().BuildCreateRequestDTO()
		req.StartTime = "10am"

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", req, s.userID.String())
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid time format")
	})

	s.Run("missing required fields is a bad request", func() {
		req := builder.NewBookingBuilder().BuildCreateRequestDTO()
		req.Sport = ""

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", req, s.userID.String())
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("slot conflict maps to 409", func() {
		req := builder.NewBookingBuilder().BuildCreateRequestDTO()

		s.mockCommands.EXPECT().
			CreateBooking(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrSlotConflict)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", req, s.userID.String())
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "Slot is already booked")
	})

	s.Run("unsupported sport maps to 422", func() {
		req := builder.NewBookingBuilder().BuildCreateRequestDTO()

		s.mockCommands.EXPECT().
			CreateBooking(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrUnsupportedSport)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", req, s.userID.String())
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "Sport not supported")
	})

	s.Run("contended slot maps to 503", func() {
		req := builder.NewBookingBuilder().BuildCreateRequestDTO()

		s.mockCommands.EXPECT().
			CreateBooking(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrResourceBusy)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", req, s.userID.String())
		httptest.AssertErrorResponse(s.T(), w, http.StatusServiceUnavailable, "retry shortly")
	})

	s.Run("unknown turf maps to 404", func() {
		req := builder.NewBookingBuilder().BuildCreateRequestDTO()

		s.mockCommands.EXPECT().
			CreateBooking(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrTurfNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", req, s.userID.String())
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Turf not found")
	})
}

func (s *BookingHandlerTestSuite) TestGetBooking() {
	s.Run("returns the booking", func() {
		view := builder.NewBookingBuilder().WithUserID(s.userID).BuildView()

		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+view.ID.String(), nil, s.userID.String())

		var got queries.BookingView
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
		s.Equal(view.ID, got.ID)
	})

	s.Run("malformed id is a bad request", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/not-a-uuid", nil, s.userID.String())
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid booking ID")
	})

	s.Run("unknown booking maps to 404", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(nil, commands.ErrBookingNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id.String(), nil, s.userID.String())
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Booking not found")
	})
}

func (s *BookingHandlerTestSuite) TestListUserBookings() {
	s.Run("lists the requester's bookings", func() {
		items := []*queries.BookingListItem{
			{ID: uuid.New(), TurfName: "Test Turf", Status: "confirmed"},
			{ID: uuid.New(), TurfName: "Test Turf", Status: "completed"},
		}
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID, 10).Return(items, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?limit=10", nil, s.userID.String())

		var got []*queries.BookingListItem
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
		s.Len(got, 2)
	})

	s.Run("non-numeric limit is a bad request", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?limit=ten", nil, s.userID.String())
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid limit")
	})
}

func (s *BookingHandlerTestSuite) TestCancelBooking() {
	s.Run("returns the refund breakdown", func() {
		id := uuid.New()
		result := &queries.RefundResultView{
			BookingID:        id,
			RefundAmount:     1500,
			CancellationFee:  500,
			RefundPercentage: 75,
		}
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), id, "rained out").Return(result, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+id.String()+"/cancel",
			map[string]any{"reason": "rained out"}, s.userID.String())

		var got queries.RefundResultView
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
		s.Equal(int64(1500), got.RefundAmount)
		s.Equal(75, got.RefundPercentage)
	})

	s.Run("double cancel maps to 409", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), id, gomock.Any()).Return(nil, commands.ErrAlreadyCancelled)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+id.String()+"/cancel",
			map[string]any{"reason": "again"}, s.userID.String())
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "already cancelled")
	})

	s.Run("past booking maps to 422", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), id, gomock.Any()).Return(nil, commands.ErrPastReservationCancellation)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+id.String()+"/cancel",
			map[string]any{"reason": "too late"}, s.userID.String())
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "Past bookings cannot be cancelled")
	})
}

func (s *BookingHandlerTestSuite) TestConfirmBooking() {
	s.Run("confirms a pending booking", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().ConfirmBooking(gomock.Any(), id).Return(nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+id.String()+"/confirm", nil, s.userID.String())
		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("cancelled booking maps to 409", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().ConfirmBooking(gomock.Any(), id).Return(errs.ErrInvalidStatusTransition)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+id.String()+"/confirm", nil, s.userID.String())
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "state does not allow")
	})
}

func (s *BookingHandlerTestSuite) TestCompleteBooking() {
	s.Run("completes a confirmed booking", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().CompleteBooking(gomock.Any(), id).Return(nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+id.String()+"/complete", nil, s.userID.String())
		s.Equal(http.StatusOK, w.Code)
	})
}
