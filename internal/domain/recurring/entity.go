package recurring

import (
	"time"

	"github.com/google/uuid"

	"turfbook/internal/domain/booking"
	"turfbook/internal/pkg/errs"
)

type Pattern string

const (
	PatternDaily  Pattern = "daily"
	PatternWeekly Pattern = "weekly"
	PatternCustom Pattern = "custom"
)

func (p Pattern) IsValid() bool {
	switch p {
	case PatternDaily, PatternWeekly, PatternCustom:
		return true
	default:
		return false
	}
}

type Status string

const (
	StatusActive    Status = "active"
	StatusPaused    Status = "paused"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Plan is a template producing multiple independent bookings. The bookings
// it spawns are owned by the booking store; the plan only holds references.
type Plan struct {
	id              uuid.UUID
	turfID          uuid.UUID
	userID          uuid.UUID
	sport           string
	startDate       time.Time
	endDate         time.Time
	pattern         Pattern
	daysOfWeek      []time.Weekday
	startTime       booking.TimeOfDay
	endTime         booking.TimeOfDay
	discountPercent float64
	status          Status
	bookingIDs      []uuid.UUID
	createdAt       time.Time
	updatedAt       time.Time
}

func NewPlan(
	turfID, userID uuid.UUID,
	sport string,
	startDate, endDate time.Time,
	pattern Pattern,
	daysOfWeek []time.Weekday,
	startTime, endTime booking.TimeOfDay,
	discountPercent float64,
) (*Plan, error) {
	if !pattern.IsValid() {
		return nil, errs.ErrInvalidRecurrencePlan
	}
	if endDate.Before(startDate) {
		return nil, errs.ErrInvalidRecurrencePlan
	}
	if startTime >= endTime {
		return nil, errs.ErrInvalidTimeRange
	}
	if discountPercent < 0 || discountPercent > 100 {
		return nil, errs.ErrInvalidRecurrencePlan
	}
	if pattern != PatternDaily && len(daysOfWeek) == 0 {
		return nil, errs.ErrInvalidRecurrencePlan
	}
	return &Plan{
		id:              uuid.New(),
		turfID:          turfID,
		userID:          userID,
		sport:           sport,
		startDate:       dateOnly(startDate),
		endDate:         dateOnly(endDate),
		pattern:         pattern,
		daysOfWeek:      daysOfWeek,
		startTime:       startTime,
		endTime:         endTime,
		discountPercent: discountPercent,
		status:          StatusActive,
	}, nil
}

func Reconstruct(
	id, turfID, userID uuid.UUID,
	sport string,
	startDate, endDate time.Time,
	pattern Pattern,
	daysOfWeek []time.Weekday,
	startTime, endTime booking.TimeOfDay,
	discountPercent float64,
	status Status,
	bookingIDs []uuid.UUID,
	createdAt, updatedAt time.Time,
) *Plan {
	return &Plan{
		id:              id,
		turfID:          turfID,
		userID:          userID,
		sport:           sport,
		startDate:       startDate,
		endDate:         endDate,
		pattern:         pattern,
		daysOfWeek:      daysOfWeek,
		startTime:       startTime,
		endTime:         endTime,
		discountPercent: discountPercent,
		status:          status,
		bookingIDs:      bookingIDs,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (p *Plan) ID() uuid.UUID                 { return p.id }
func (p *Plan) TurfID() uuid.UUID             { return p.turfID }
func (p *Plan) UserID() uuid.UUID             { return p.userID }
func (p *Plan) Sport() string                 { return p.sport }
func (p *Plan) StartDate() time.Time          { return p.startDate }
func (p *Plan) EndDate() time.Time            { return p.endDate }
func (p *Plan) Pattern() Pattern              { return p.pattern }
func (p *Plan) DaysOfWeek() []time.Weekday    { return p.daysOfWeek }
func (p *Plan) StartTime() booking.TimeOfDay  { return p.startTime }
func (p *Plan) EndTime() booking.TimeOfDay    { return p.endTime }
func (p *Plan) DiscountPercent() float64      { return p.discountPercent }
func (p *Plan) Status() Status                { return p.status }
func (p *Plan) BookingIDs() []uuid.UUID       { return p.bookingIDs }
func (p *Plan) CreatedAt() time.Time          { return p.createdAt }
func (p *Plan) UpdatedAt() time.Time          { return p.updatedAt }

// CandidateDates expands the plan into the concrete dates it covers, from
// startDate through endDate inclusive. Daily plans include every date;
// weekly and custom plans include only dates whose weekday matches.
func (p *Plan) CandidateDates() []time.Time {
	var dates []time.Time
	for d := p.startDate; !d.After(p.endDate); d = d.AddDate(0, 0, 1) {
		if p.pattern == PatternDaily || p.matchesWeekday(d.Weekday()) {
			dates = append(dates, d)
		}
	}
	return dates
}

// CandidateSlot builds the slot for one expanded date.
func (p *Plan) CandidateSlot(date time.Time) (booking.Slot, error) {
	return booking.NewSlot(date, p.startTime, p.endTime)
}

// AttachBooking records a reference to a booking the expansion created.
func (p *Plan) AttachBooking(bookingID uuid.UUID) {
	p.bookingIDs = append(p.bookingIDs, bookingID)
}

func (p *Plan) matchesWeekday(wd time.Weekday) bool {
	for _, d := range p.daysOfWeek {
		if d == wd {
			return true
		}
	}
	return false
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
