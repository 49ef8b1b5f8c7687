package queries

import (
	"time"

	"github.com/google/uuid"

	"turfbook/internal/domain/booking"
)

// Wire formats for dates and wall-clock times in read models.
const (
	DateFormat = "2006-01-02"
	TimeFormat = "15:04"
)

// Read models (DTO for read side)
type BookingView struct {
	ID                 uuid.UUID  `json:"id"`
	TurfID             uuid.UUID  `json:"turf_id"`
	TurfName           string     `json:"turf_name"`
	UserID             uuid.UUID  `json:"user_id"`
	Sport              string     `json:"sport"`
	Date               string     `json:"date"`
	StartTime          string     `json:"start_time"`
	EndTime            string     `json:"end_time"`
	Price              int64      `json:"price"`
	Status             string     `json:"status"`
	PaymentStatus      string     `json:"payment_status"`
	CancellationReason *string    `json:"cancellation_reason,omitempty"`
	CancellationFee    *int64     `json:"cancellation_fee,omitempty"`
	RefundAmount       *int64     `json:"refund_amount,omitempty"`
	CancelledAt        *time.Time `json:"cancelled_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

type BookingListItem struct {
	ID        uuid.UUID `json:"id"`
	TurfID    uuid.UUID `json:"turf_id"`
	TurfName  string    `json:"turf_name"`
	Sport     string    `json:"sport"`
	Date      string    `json:"date"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	Price     int64     `json:"price"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type WaitlistEntryView struct {
	ID               uuid.UUID  `json:"id"`
	TurfID           uuid.UUID  `json:"turf_id"`
	UserID           uuid.UUID  `json:"user_id"`
	Sport            string     `json:"sport"`
	Date             string     `json:"date"`
	StartTime        string     `json:"start_time"`
	EndTime          string     `json:"end_time"`
	Priority         int        `json:"priority"`
	Status           string     `json:"status"`
	AllocatedBooking *uuid.UUID `json:"allocated_booking,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

type PlanView struct {
	ID              uuid.UUID   `json:"id"`
	TurfID          uuid.UUID   `json:"turf_id"`
	UserID          uuid.UUID   `json:"user_id"`
	Sport           string      `json:"sport"`
	StartDate       string      `json:"start_date"`
	EndDate         string      `json:"end_date"`
	Pattern         string      `json:"pattern"`
	DaysOfWeek      []string    `json:"days_of_week,omitempty"`
	StartTime       string      `json:"start_time"`
	EndTime         string      `json:"end_time"`
	DiscountPercent float64     `json:"discount_percent"`
	Status          string      `json:"status"`
	BookingIDs      []uuid.UUID `json:"booking_ids"`
}

type RefundResultView struct {
	BookingID        uuid.UUID `json:"booking_id"`
	RefundAmount     int64     `json:"refund_amount"`
	CancellationFee  int64     `json:"cancellation_fee"`
	RefundPercentage int       `json:"refund_percentage"`
}

type TimeRangeView struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type AvailabilityView struct {
	TurfID   uuid.UUID       `json:"turf_id"`
	Date     string          `json:"date"`
	OpenTime string          `json:"open_time"`
	CloseTime string         `json:"close_time"`
	Free     []TimeRangeView `json:"free"`
	Occupied []TimeRangeView `json:"occupied"`
}

type QuoteView struct {
	TurfID     uuid.UUID            `json:"turf_id"`
	Date       string               `json:"date"`
	StartTime  string               `json:"start_time"`
	EndTime    string               `json:"end_time"`
	BasePrice  int64                `json:"base_price"`
	FinalPrice int64                `json:"final_price"`
	Factors    booking.PriceFactors `json:"factors"`
}

type LoyaltyEarningView struct {
	BookingID    uuid.UUID `json:"booking_id"`
	PointsEarned int64     `json:"points_earned"`
	EarnedAt     time.Time `json:"earned_at"`
}

type LoyaltyAccountView struct {
	UserID     uuid.UUID            `json:"user_id"`
	Points     int64                `json:"points"`
	TotalSpend int64                `json:"total_spend"`
	Tier       string               `json:"tier"`
	History    []LoyaltyEarningView `json:"history"`
}

type ReviewView struct {
	ID        uuid.UUID `json:"id"`
	TurfID    uuid.UUID `json:"turf_id"`
	UserID    uuid.UUID `json:"user_id"`
	BookingID uuid.UUID `json:"booking_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

type TurfRatingStatsView struct {
	TurfID        uuid.UUID `json:"turf_id"`
	AverageRating float64   `json:"average_rating"`
	ReviewCount   int64     `json:"review_count"`
}
