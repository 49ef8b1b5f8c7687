package request

import (
	"github.com/google/uuid"
)

type JoinWaitlistRequest struct {
	TurfID    uuid.UUID `json:"turf_id" binding:"required"`
	Sport     string    `json:"sport" binding:"required"`
	Date      string    `json:"date" binding:"required"`
	StartTime string    `json:"start_time" binding:"required"`
	EndTime   string    `json:"end_time" binding:"required"`
	Priority  int       `json:"priority" binding:"min=0"`
}
