package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"turfbook/internal/handler/httperr"
	"turfbook/internal/handler/middleware"
	"turfbook/internal/pkg/errs"
	"turfbook/internal/usecase/queries"
)

type LoyaltyHandler struct {
	queries queries.LoyaltyQueries
}

func NewLoyaltyHandler(q queries.LoyaltyQueries) *LoyaltyHandler {
	return &LoyaltyHandler{queries: q}
}

func (h *LoyaltyHandler) GetAccount(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("user identity missing"), "User identity required")
		return
	}

	account, err := h.queries.GetAccount(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, account)
}
