package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	reqdto "turfbook/internal/handler/dto/request"
	"turfbook/internal/handler/httperr"
	"turfbook/internal/usecase/queries"
)

// TurfHandler serves the read side of a turf: open capacity, dynamic price
// quotes and the review feed.
type TurfHandler struct {
	availability queries.AvailabilityQueries
	pricing      queries.PricingQueries
	reviews      queries.ReviewQueries
}

func NewTurfHandler(availability queries.AvailabilityQueries, pricing queries.PricingQueries, reviews queries.ReviewQueries) *TurfHandler {
	return &TurfHandler{availability: availability, pricing: pricing, reviews: reviews}
}

func (h *TurfHandler) GetAvailability(c *gin.Context) {
	turfID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid turf ID format")
		return
	}

	date, err := reqdto.ParseDate(c.Query("date"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid or missing date")
		return
	}

	view, err := h.availability.GetAvailability(c.Request.Context(), turfID, date)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

func (h *TurfHandler) QuotePrice(c *gin.Context) {
	turfID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid turf ID format")
		return
	}

	date, err := reqdto.ParseDate(c.Query("date"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid or missing date")
		return
	}
	start, end, err := reqdto.ParseTimeRange(c.Query("start_time"), c.Query("end_time"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid or missing time range")
		return
	}

	quote, err := h.pricing.QuoteDynamicPrice(c.Request.Context(), turfID, date, start, end)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, quote)
}

func (h *TurfHandler) ListReviews(c *gin.Context) {
	turfID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid turf ID format")
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid limit")
			return
		}
		limit = parsed
	}

	reviews, err := h.reviews.ListByTurf(c.Request.Context(), turfID, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, reviews)
}

func (h *TurfHandler) GetRatingStats(c *gin.Context) {
	turfID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid turf ID format")
		return
	}

	stats, err := h.reviews.GetTurfRatingStats(c.Request.Context(), turfID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
