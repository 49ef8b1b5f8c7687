package readstore

import (
	"context"

	"github.com/google/uuid"

	"turfbook/internal/infra"
	"turfbook/internal/pkg/errs"
	"turfbook/internal/usecase/queries"
)

type LoyaltyReadStore struct {
	db infra.DBTX
}

func NewLoyaltyReadStore(db infra.DBTX) *LoyaltyReadStore {
	return &LoyaltyReadStore{db: db}
}

const findLoyaltyAccountSQL = `
SELECT user_id, points, total_spend, tier
FROM loyalty_accounts
WHERE user_id = $1
`

const listLoyaltyEarningsSQL = `
SELECT booking_id, points_earned, earned_at
FROM loyalty_earnings
WHERE user_id = $1
ORDER BY earned_at DESC
`

func (s *LoyaltyReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) (*queries.LoyaltyAccountView, error) {
	var view queries.LoyaltyAccountView
	err := s.db.QueryRow(ctx, findLoyaltyAccountSQL, userID).Scan(
		&view.UserID, &view.Points, &view.TotalSpend, &view.Tier,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find loyalty account", err, errs.ErrLoyaltyAccountNotFound)
	}

	rows, err := s.db.Query(ctx, listLoyaltyEarningsSQL, userID)
	if err != nil {
		return nil, infra.WrapDBErr("failed to list loyalty earnings", err)
	}
	defer rows.Close()

	for rows.Next() {
		var e queries.LoyaltyEarningView
		if err := rows.Scan(&e.BookingID, &e.PointsEarned, &e.EarnedAt); err != nil {
			return nil, infra.WrapDBErr("failed to scan loyalty earning", err)
		}
		view.History = append(view.History, e)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapDBErr("failed to iterate loyalty earnings", err)
	}
	return &view, nil
}
