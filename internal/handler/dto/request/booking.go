package request

import (
	"time"

	"github.com/google/uuid"

	"turfbook/internal/domain/booking"
	"turfbook/internal/pkg/errs"
	"turfbook/internal/usecase/queries"
)

type CreateBookingRequest struct {
	TurfID         uuid.UUID `json:"turf_id" binding:"required"`
	Sport          string    `json:"sport" binding:"required"`
	Date           string    `json:"date" binding:"required"`
	StartTime      string    `json:"start_time" binding:"required"`
	EndTime        string    `json:"end_time" binding:"required"`
	RequirePayment bool      `json:"require_payment"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason"`
}

// ParseDate accepts the wire date format used across the API.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(queries.DateFormat, s)
	if err != nil {
		return time.Time{}, errs.Wrap(err, "invalid date format")
	}
	return d, nil
}

func ParseTimeRange(start, end string) (booking.TimeOfDay, booking.TimeOfDay, error) {
	s, err := booking.ParseTimeOfDay(start)
	if err != nil {
		return 0, 0, err
	}
	e, err := booking.ParseTimeOfDay(end)
	if err != nil {
		return 0, 0, err
	}
	return s, e, nil
}
