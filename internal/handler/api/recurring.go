package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"turfbook/internal/domain/recurring"
	reqdto "turfbook/internal/handler/dto/request"
	"turfbook/internal/handler/httperr"
	"turfbook/internal/handler/middleware"
	"turfbook/internal/pkg/errs"
	"turfbook/internal/usecase/commands"
)

type RecurringHandler struct {
	commands commands.RecurringCommands
}

func NewRecurringHandler(cmd commands.RecurringCommands) *RecurringHandler {
	return &RecurringHandler{commands: cmd}
}

func (h *RecurringHandler) CreatePlan(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("user identity missing"), "User identity required")
		return
	}

	var req reqdto.CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	startDate, err := reqdto.ParseDate(req.StartDate)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid start date format")
		return
	}
	endDate, err := reqdto.ParseDate(req.EndDate)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid end date format")
		return
	}
	start, end, err := reqdto.ParseTimeRange(req.StartTime, req.EndTime)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid time format")
		return
	}
	days, err := reqdto.ParseWeekdays(req.DaysOfWeek)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid days of week")
		return
	}

	result, err := h.commands.CreatePlan(c.Request.Context(), commands.CreatePlanParams{
		TurfID:          req.TurfID,
		UserID:          userID,
		Sport:           req.Sport,
		StartDate:       startDate,
		EndDate:         endDate,
		Pattern:         recurring.Pattern(req.Pattern),
		DaysOfWeek:      days,
		StartTime:       start,
		EndTime:         end,
		DiscountPercent: req.DiscountPercent,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"plan":          result.Plan,
		"bookings":      result.Created,
		"skipped_dates": result.SkippedDates,
	})
}
