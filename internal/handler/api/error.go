package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"turfbook/internal/domain/review"
	"turfbook/internal/handler/httperr"
	"turfbook/internal/pkg/errs"
	"turfbook/internal/usecase/commands"
)

// respondError maps domain sentinels to HTTP statuses with stable public
// messages. Anything unmapped is an internal error; the original stays on
// the context for the logging middleware.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrTurfNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Turf not found")
	case errors.Is(err, commands.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found")
	case errors.Is(err, errs.ErrWaitlistEntryNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Waitlist entry not found")
	case errors.Is(err, errs.ErrPlanNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Recurring plan not found")
	case errors.Is(err, errs.ErrLoyaltyAccountNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Loyalty account not found")
	case errors.Is(err, commands.ErrUnsupportedSport):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Sport not supported by this turf")
	case errors.Is(err, commands.ErrOutsideOperatingHours):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Slot is outside operating hours")
	case errors.Is(err, commands.ErrInvalidTimeRange):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid time range")
	case errors.Is(err, commands.ErrInvalidRecurrencePlan):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid recurrence plan")
	case errors.Is(err, commands.ErrSlotConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "Slot is already booked")
	case errors.Is(err, commands.ErrDuplicateWaitlistEntry):
		httperr.AbortWithError(c, http.StatusConflict, err, "Already waiting for this slot")
	case errors.Is(err, commands.ErrAlreadyCancelled):
		httperr.AbortWithError(c, http.StatusConflict, err, "Booking already cancelled")
	case errors.Is(err, commands.ErrPastReservationCancellation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Past bookings cannot be cancelled")
	case errors.Is(err, errs.ErrInvalidStatusTransition):
		httperr.AbortWithError(c, http.StatusConflict, err, "Booking state does not allow this operation")
	case errors.Is(err, commands.ErrBookingNotEligibleForReview):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Booking is not eligible for review")
	case errors.Is(err, review.ErrInvalidRating):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Rating must be between 1 and 5")
	case errors.Is(err, review.ErrEmptyComment), errors.Is(err, review.ErrCommentTooLong):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Comment must be between 1 and 1000 characters")
	case errors.Is(err, review.ErrReviewAlreadyExists):
		httperr.AbortWithError(c, http.StatusConflict, err, "Review already exists for this booking")
	case errors.Is(err, commands.ErrResourceBusy):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Slot is busy, retry shortly")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
	}
}
