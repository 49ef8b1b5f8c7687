package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"turfbook/internal/handler/httperr"
	"turfbook/internal/pkg/errs"
)

const userIDKey = "user_id"

// RequireUser resolves the requester from the X-User-ID header set by the
// authenticating gateway. Requests without a usable identity are rejected
// before reaching a handler.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader("X-User-ID")
		if raw == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing X-User-ID header"), "User identity required")
			return
		}
		userID, err := uuid.Parse(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.Wrap(err, "invalid X-User-ID header"), "Invalid user identity")
			return
		}
		c.Set(userIDKey, userID)
		c.Next()
	}
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(userIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
