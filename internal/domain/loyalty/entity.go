package loyalty

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"turfbook/internal/domain/booking"
)

type Tier string

const (
	TierBronze   Tier = "bronze"
	TierSilver   Tier = "silver"
	TierGold     Tier = "gold"
	TierPlatinum Tier = "platinum"
)

// Spend thresholds, cumulative whole currency units. A tier is held once the
// account's lifetime spend meets its threshold.
var tierThresholds = []struct {
	tier      Tier
	threshold int64
}{
	{TierPlatinum, 50000},
	{TierGold, 15000},
	{TierSilver, 5000},
	{TierBronze, 0},
}

var tierMultipliers = map[Tier]decimal.Decimal{
	TierBronze:   decimal.NewFromInt(1),
	TierSilver:   decimal.NewFromFloat(1.2),
	TierGold:     decimal.NewFromFloat(1.5),
	TierPlatinum: decimal.NewFromInt(2),
}

var tierRank = map[Tier]int{
	TierBronze:   0,
	TierSilver:   1,
	TierGold:     2,
	TierPlatinum: 3,
}

const basePointRate = 10 // points per 100 currency units spent

// TierForSpend returns the highest tier whose threshold the cumulative
// spend meets.
func TierForSpend(totalSpend int64) Tier {
	for _, t := range tierThresholds {
		if totalSpend >= t.threshold {
			return t.tier
		}
	}
	return TierBronze
}

// Earning records one point-earning event in the account history.
type Earning struct {
	BookingID    uuid.UUID
	PointsEarned int64
	EarnedAt     time.Time
}

// Account tracks a requester's points, lifetime spend and tier. Mutated only
// as a side effect of a booking reaching confirmed.
type Account struct {
	userID     uuid.UUID
	points     int64
	totalSpend int64
	tier       Tier
	history    []Earning
	createdAt  time.Time
	updatedAt  time.Time
}

func NewAccount(userID uuid.UUID) *Account {
	return &Account{
		userID: userID,
		tier:   TierBronze,
	}
}

func Reconstruct(userID uuid.UUID, points, totalSpend int64, tier Tier, history []Earning, createdAt, updatedAt time.Time) *Account {
	return &Account{
		userID:     userID,
		points:     points,
		totalSpend: totalSpend,
		tier:       tier,
		history:    history,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (a *Account) UserID() uuid.UUID    { return a.userID }
func (a *Account) Points() int64        { return a.points }
func (a *Account) TotalSpend() int64    { return a.totalSpend }
func (a *Account) Tier() Tier           { return a.tier }
func (a *Account) History() []Earning   { return a.history }
func (a *Account) CreatedAt() time.Time { return a.createdAt }
func (a *Account) UpdatedAt() time.Time { return a.updatedAt }

// ApplyResult reports what one booking earned the account.
type ApplyResult struct {
	PointsEarned int64
	NewTier      Tier
	TotalPoints  int64
}

// ApplyBooking accrues points and spend for a confirmed booking.
// points = round(floor(price/100 * basePointRate) * multiplier), where the
// multiplier is the tier held before this booking's points are added. The
// tier is then recomputed from the new lifetime spend and never downgrades.
func (a *Account) ApplyBooking(bookingID uuid.UUID, price booking.Money, now time.Time) ApplyResult {
	base := price.Int64() * basePointRate / 100
	earned := decimal.NewFromInt(base).
		Mul(tierMultipliers[a.tier]).
		Round(0).
		IntPart()

	a.totalSpend += price.Int64()
	a.points += earned

	if next := TierForSpend(a.totalSpend); tierRank[next] > tierRank[a.tier] {
		a.tier = next
	}

	a.history = append(a.history, Earning{
		BookingID:    bookingID,
		PointsEarned: earned,
		EarnedAt:     now,
	})

	return ApplyResult{
		PointsEarned: earned,
		NewTier:      a.tier,
		TotalPoints:  a.points,
	}
}
