package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	reqdto "turfbook/internal/handler/dto/request"
	"turfbook/internal/handler/httperr"
	"turfbook/internal/handler/middleware"
	"turfbook/internal/pkg/errs"
	"turfbook/internal/usecase/commands"
)

type ReviewHandler struct {
	commands commands.ReviewCommands
}

func NewReviewHandler(cmd commands.ReviewCommands) *ReviewHandler {
	return &ReviewHandler{commands: cmd}
}

func (h *ReviewHandler) CreateReview(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("user identity missing"), "User identity required")
		return
	}

	var req reqdto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	view, err := h.commands.CreateReview(c.Request.Context(), commands.CreateReviewParams{
		UserID:    userID,
		BookingID: req.BookingID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, view)
}
