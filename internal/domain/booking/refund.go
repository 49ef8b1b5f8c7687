package booking

import (
	"time"

	"github.com/shopspring/decimal"
)

// RefundAssessment is the refund/fee split for a cancellation.
type RefundAssessment struct {
	RefundAmount     Money
	Fee              Money
	RefundPercentage int
}

// Cancellation tiers by time remaining before the reservation starts.
// Boundaries resolve to the lower refund tier: exactly 48h yields 75%,
// exactly 24h yields 50%, exactly 12h yields 0%.
const (
	fullRefundWindow = 48 * time.Hour
	highRefundWindow = 24 * time.Hour
	halfRefundWindow = 12 * time.Hour
)

// AssessRefund computes the refund for cancelling a booking of the given
// total price at cancelledAt, relative to the reservation's start instant.
func AssessRefund(totalPrice Money, reservationStart, cancelledAt time.Time) RefundAssessment {
	remaining := reservationStart.Sub(cancelledAt)

	var percentage int64
	switch {
	case remaining > fullRefundWindow:
		percentage = 100
	case remaining > highRefundWindow:
		percentage = 75
	case remaining > halfRefundWindow:
		percentage = 50
	default:
		percentage = 0
	}

	total := decimal.NewFromInt(int64(totalPrice))
	refund := roundHalfUp(total.Mul(decimal.NewFromInt(percentage)).Div(decimal.NewFromInt(100)))

	return RefundAssessment{
		RefundAmount:     refund,
		Fee:              totalPrice - refund,
		RefundPercentage: int(percentage),
	}
}
