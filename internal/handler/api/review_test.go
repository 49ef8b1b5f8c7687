//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"turfbook/internal/domain/review"
	"turfbook/internal/handler/api"
	"turfbook/internal/handler/middleware"
	"turfbook/internal/usecase/commands"
	"turfbook/internal/usecase/queries"
	"turfbook/tests/common/builder"
	"turfbook/tests/common/httptest"
	commandsmock "turfbook/tests/mock/commands"
)

type ReviewHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReviewCommands
	userID       uuid.UUID
}

func (s *ReviewHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReviewCommands(s.mockCtrl)
	s.userID = uuid.New()

	h := api.NewReviewHandler(s.mockCommands)
	group := s.router.Group("/reviews")
	group.Use(middleware.RequireUser())
	group.POST("", h.CreateReview)
}

func (s *ReviewHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReviewHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReviewHandlerTestSuite))
}

func (s *ReviewHandlerTestSuite) TestCreateReview() {
	s.Run("valid request returns the created review", func() {
		bld := builder.NewReviewBuilder().WithUserID(s.userID).WithRating(4)
		req := bld.BuildCreateRequestDTO()
		view := bld.BuildView()

		s.mockCommands.EXPECT().
			CreateReview(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, params commands.CreateReviewParams) (*queries.ReviewView, error) {
				s.Equal(s.userID, params.UserID)
				s.Equal(req.BookingID, params.BookingID)
				s.Equal(4, params.Rating)
				return view, nil
			})

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reviews", req, s.userID.String())

		var got queries.ReviewView
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &got)
		s.Equal(view.ID, got.ID)
		s.Equal(4, got.Rating)
	})

	s.Run("missing identity header is unauthorized", func() {
		req := builder.NewReviewBuilder().BuildCreateRequestDTO()

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reviews", req, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "User identity required")
	})

	s.Run("rating above five fails binding", func() {
		req := builder.NewReviewBuilder().WithRating(6).BuildCreateRequestDTO()

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reviews", req, s.userID.String())
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("empty comment fails binding", func() {
		req := builder.NewReviewBuilder().WithComment("").BuildCreateRequestDTO()

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reviews", req, s.userID.String())
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("ineligible booking maps to 422", func() {
		req := builder.NewReviewBuilder().BuildCreateRequestDTO()

		s.mockCommands.EXPECT().
			CreateReview(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrBookingNotEligibleForReview)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reviews", req, s.userID.String())
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "not eligible for review")
	})

	s.Run("second review for the same booking conflicts", func() {
		req := builder.NewReviewBuilder().BuildCreateRequestDTO()

		s.mockCommands.EXPECT().
			CreateReview(gomock.Any(), gomock.Any()).
			Return(nil, review.ErrReviewAlreadyExists)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reviews", req, s.userID.String())
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "Review already exists")
	})

	s.Run("whitespace comment surfaces the domain error", func() {
		req := builder.NewReviewBuilder().WithComment("   ").BuildCreateRequestDTO()

		s.mockCommands.EXPECT().
			CreateReview(gomock.Any(), gomock.Any()).
			Return(nil, review.ErrEmptyComment)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reviews", req, s.userID.String())
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "Comment must be")
	})
}
