package booking

import (
	"time"

	"github.com/shopspring/decimal"
)

// Pricing multipliers carried over from the production rate card.
var (
	peakMultiplier     = decimal.NewFromFloat(1.2)
	weekendMultiplier  = decimal.NewFromFloat(1.1)
	seasonalMultiplier = decimal.NewFromFloat(1.15)
	demandStep         = decimal.NewFromFloat(0.05)
)

const (
	peakStartHour = 17
	peakEndHour   = 21
)

// highSeasonMonths are the demand-heavy months that carry the seasonal
// premium on recurring and other long-horizon bookings.
var highSeasonMonths = map[time.Month]bool{
	time.June:     true,
	time.July:     true,
	time.August:   true,
	time.December: true,
}

// PriceOptions select the situational multipliers beyond peak and weekend,
// which always apply.
type PriceOptions struct {
	// Seasonal pricing applies only to recurring/long-horizon paths, not to
	// the base create path.
	ApplySeasonal bool
	// DemandCount is the number of existing bookings already occupying or
	// adjacent to the requested window. Zero on the base create path.
	DemandCount int
	// DiscountPercent in [0,100], applied after all multipliers. Used by
	// recurring plans.
	DiscountPercent float64
}

// Quote is a priced slot with its factor breakdown, as exposed by the
// dynamic-price endpoint.
type Quote struct {
	BasePrice  Money
	FinalPrice Money
	Factors    PriceFactors
}

type PriceFactors struct {
	Peak     float64 `json:"peak"`
	Weekend  float64 `json:"weekend"`
	Seasonal float64 `json:"seasonal"`
	Demand   float64 `json:"demand"`
	Discount float64 `json:"discount"`
}

// Price computes a slot's price from the turf's hourly rate.
// base = rate * duration; multipliers compose multiplicatively and the
// result is rounded half-up to a whole currency unit exactly once, so
// per-multiplier rounding error cannot compound.
func Price(hourlyRate decimal.Decimal, slot Slot, opts PriceOptions) Quote {
	duration := decimal.NewFromFloat(slot.DurationHours())
	base := hourlyRate.Mul(duration)

	factors := PriceFactors{Peak: 1, Weekend: 1, Seasonal: 1, Demand: 1, Discount: 1}
	price := base

	if hour := slot.Start().Hour(); hour >= peakStartHour && hour <= peakEndHour {
		price = price.Mul(peakMultiplier)
		factors.Peak, _ = peakMultiplier.Float64()
	}
	if slot.IsWeekend() {
		price = price.Mul(weekendMultiplier)
		factors.Weekend, _ = weekendMultiplier.Float64()
	}
	if opts.ApplySeasonal && highSeasonMonths[slot.Date().Month()] {
		price = price.Mul(seasonalMultiplier)
		factors.Seasonal, _ = seasonalMultiplier.Float64()
	}
	if opts.DemandCount > 0 {
		demand := decimal.NewFromInt(1).Add(demandStep.Mul(decimal.NewFromInt(int64(opts.DemandCount))))
		price = price.Mul(demand)
		factors.Demand, _ = demand.Float64()
	}
	if opts.DiscountPercent > 0 {
		discount := decimal.NewFromInt(1).Sub(decimal.NewFromFloat(opts.DiscountPercent).Div(decimal.NewFromInt(100)))
		price = price.Mul(discount)
		factors.Discount, _ = discount.Float64()
	}

	return Quote{
		BasePrice:  roundHalfUp(base),
		FinalPrice: roundHalfUp(price),
		Factors:    factors,
	}
}

// roundHalfUp rounds to the nearest whole currency unit, halves away from
// zero. Prices are never negative here so this is plain half-up.
func roundHalfUp(d decimal.Decimal) Money {
	return Money(d.Round(0).IntPart())
}
