package request

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"turfbook/internal/pkg/errs"
)

type CreatePlanRequest struct {
	TurfID          uuid.UUID `json:"turf_id" binding:"required"`
	Sport           string    `json:"sport" binding:"required"`
	StartDate       string    `json:"start_date" binding:"required"`
	EndDate         string    `json:"end_date" binding:"required"`
	Pattern         string    `json:"pattern" binding:"required"`
	DaysOfWeek      []string  `json:"days_of_week,omitempty"`
	StartTime       string    `json:"start_time" binding:"required"`
	EndTime         string    `json:"end_time" binding:"required"`
	DiscountPercent float64   `json:"discount_percent" binding:"min=0,max=100"`
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseWeekdays converts lowercase-insensitive day names to weekdays.
func ParseWeekdays(names []string) ([]time.Weekday, error) {
	out := make([]time.Weekday, 0, len(names))
	for _, name := range names {
		wd, ok := weekdayNames[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, errs.Newf("unknown weekday %q", name)
		}
		out = append(out, wd)
	}
	return out, nil
}
