package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	reqdto "turfbook/internal/handler/dto/request"
	"turfbook/internal/handler/httperr"
	"turfbook/internal/handler/middleware"
	"turfbook/internal/pkg/errs"
	"turfbook/internal/usecase/commands"
)

type WaitlistHandler struct {
	commands commands.WaitlistCommands
}

func NewWaitlistHandler(cmd commands.WaitlistCommands) *WaitlistHandler {
	return &WaitlistHandler{commands: cmd}
}

func (h *WaitlistHandler) Join(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("user identity missing"), "User identity required")
		return
	}

	var req reqdto.JoinWaitlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	date, err := reqdto.ParseDate(req.Date)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format")
		return
	}
	start, end, err := reqdto.ParseTimeRange(req.StartTime, req.EndTime)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid time format")
		return
	}

	result, err := h.commands.Join(c.Request.Context(), commands.JoinWaitlistParams{
		TurfID:    req.TurfID,
		UserID:    userID,
		Sport:     req.Sport,
		Date:      date,
		StartTime: start,
		EndTime:   end,
		Priority:  req.Priority,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	// Immediate allocation returns the booking; otherwise the queued entry.
	if result.Booking != nil {
		c.JSON(http.StatusCreated, gin.H{"allocated": true, "booking": result.Booking})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"allocated": false, "entry": result.Entry})
}

func (h *WaitlistHandler) CancelEntry(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid entry ID format")
		return
	}

	if err := h.commands.CancelEntry(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}
