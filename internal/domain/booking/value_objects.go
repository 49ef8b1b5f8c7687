package booking

import (
	"errors"
	"fmt"
	"time"

	"turfbook/internal/pkg/errs"
)

// TimeOfDay is a wall-clock time within a single day, in minutes from
// midnight. Bookings are always same-day, so this plus a calendar date fully
// identifies a slot boundary.
type TimeOfDay int

const minutesPerDay = 24 * 60

var ErrInvalidTimeOfDay = errors.New("invalid time of day")

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, ErrInvalidTimeOfDay
	}
	return TimeOfDay(hour*60 + minute), nil
}

// ParseTimeOfDay parses "15:04" formatted wall-clock times.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, ErrInvalidTimeOfDay
	}
	return TimeOfDay(t.Hour()*60 + t.Minute()), nil
}

func (t TimeOfDay) Hour() int   { return int(t) / 60 }
func (t TimeOfDay) Minute() int { return int(t) % 60 }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// Slot is a concrete (date, start, end) interval. The date carries no time
// component; slot boundaries are wall-clock within that date.
type Slot struct {
	date  time.Time
	start TimeOfDay
	end   TimeOfDay
}

func NewSlot(date time.Time, start, end TimeOfDay) (Slot, error) {
	if start >= end {
		return Slot{}, errs.ErrInvalidTimeRange
	}
	if start < 0 || int(end) > minutesPerDay {
		return Slot{}, errs.ErrInvalidTimeRange
	}
	return Slot{date: truncateToDate(date), start: start, end: end}, nil
}

func (s Slot) Date() time.Time  { return s.date }
func (s Slot) Start() TimeOfDay { return s.start }
func (s Slot) End() TimeOfDay   { return s.end }

// StartDateTime anchors the slot's start boundary to an absolute instant.
func (s Slot) StartDateTime() time.Time {
	return s.date.Add(time.Duration(s.start) * time.Minute)
}

func (s Slot) EndDateTime() time.Time {
	return s.date.Add(time.Duration(s.end) * time.Minute)
}

// DurationHours is the slot length in fractional hours (1.5 for 90 minutes).
func (s Slot) DurationHours() float64 {
	return float64(s.end-s.start) / 60.0
}

// Overlaps reports whether two half-open ranges [start,end) on the same
// date intersect. Slots on different dates never overlap.
func (s Slot) Overlaps(other Slot) bool {
	if !s.date.Equal(other.date) {
		return false
	}
	return s.start < other.end && other.start < s.end
}

func (s Slot) IsWeekend() bool {
	wd := s.date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Money is a whole-currency-unit amount. All pricing rounds half-up once at
// the end of multiplier composition, so fractional units never persist.
type Money int64

func (m Money) Int64() int64 { return int64(m) }
