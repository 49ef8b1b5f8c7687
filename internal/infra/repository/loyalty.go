package repository

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"turfbook/internal/domain/loyalty"
	"turfbook/internal/infra"
	"turfbook/internal/pkg/errs"
	"turfbook/internal/usecase/shared"
)

type LoyaltyRepository struct {
	db infra.DBTX
}

func NewLoyaltyRepository(db infra.DBTX) *LoyaltyRepository {
	return &LoyaltyRepository{db: db}
}

func (r *LoyaltyRepository) FindOrCreateByUser(ctx context.Context, userID uuid.UUID) (*loyalty.Account, error) {
	insert, args, err := qb.Insert("loyalty_accounts").
		Columns("user_id", "points", "total_spend", "tier").
		Values(userID, 0, 0, string(loyalty.TierBronze)).
		Suffix("ON CONFLICT (user_id) DO NOTHING").
		ToSql()
	if err != nil {
		return nil, errs.Wrap(err, "failed to build loyalty account upsert")
	}
	if _, err := r.db.Exec(ctx, insert, args...); err != nil {
		return nil, infra.WrapDBErr("failed to ensure loyalty account", err)
	}

	// FOR UPDATE: concurrent accruals for the same user serialize on the
	// account row instead of overwriting each other's counters.
	query, args, err := qb.Select("user_id", "points", "total_spend", "tier", "created_at", "updated_at").
		From("loyalty_accounts").
		Where("user_id = ?", userID).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, errs.Wrap(err, "failed to build loyalty account select")
	}

	var (
		id                   uuid.UUID
		points, totalSpend   int64
		tier                 string
		createdAt, updatedAt time.Time
	)
	err = r.db.QueryRow(ctx, query, args...).Scan(&id, &points, &totalSpend, &tier, &createdAt, &updatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find loyalty account", err, errs.ErrLoyaltyAccountNotFound)
	}

	history, err := r.earnings(ctx, userID)
	if err != nil {
		return nil, err
	}

	return loyalty.Reconstruct(id, points, totalSpend, loyalty.Tier(tier), history, createdAt, updatedAt), nil
}

// Save persists the account counters and appends the earning that produced
// them. Caller runs both inside one transaction.
func (r *LoyaltyRepository) Save(ctx context.Context, a *loyalty.Account, earning loyalty.Earning) error {
	update, args, err := qb.Update("loyalty_accounts").
		Set("points", a.Points()).
		Set("total_spend", a.TotalSpend()).
		Set("tier", string(a.Tier())).
		Set("updated_at", squirrel.Expr("now()")).
		Where("user_id = ?", a.UserID()).
		ToSql()
	if err != nil {
		return errs.Wrap(err, "failed to build loyalty account update")
	}

	tag, err := r.db.Exec(ctx, update, args...)
	if err != nil {
		return infra.WrapDBErr("failed to update loyalty account", err)
	}
	if tag.RowsAffected() == 0 {
		return errs.Mark(errs.New("loyalty account missing on update"), errs.ErrLoyaltyAccountNotFound)
	}

	insert, args, err := qb.Insert("loyalty_earnings").
		Columns("user_id", "booking_id", "points_earned", "earned_at").
		Values(a.UserID(), earning.BookingID, earning.PointsEarned, earning.EarnedAt).
		ToSql()
	if err != nil {
		return errs.Wrap(err, "failed to build loyalty earning insert")
	}
	if _, err := r.db.Exec(ctx, insert, args...); err != nil {
		return infra.WrapDBErr("failed to record loyalty earning", err)
	}
	return nil
}

func (r *LoyaltyRepository) earnings(ctx context.Context, userID uuid.UUID) ([]loyalty.Earning, error) {
	query, args, err := qb.Select("booking_id", "points_earned", "earned_at").
		From("loyalty_earnings").
		Where("user_id = ?", userID).
		OrderBy("earned_at ASC").
		ToSql()
	if err != nil {
		return nil, errs.Wrap(err, "failed to build loyalty earnings select")
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapDBErr("failed to list loyalty earnings", err)
	}
	defer rows.Close()

	var out []loyalty.Earning
	for rows.Next() {
		var e loyalty.Earning
		if err := rows.Scan(&e.BookingID, &e.PointsEarned, &e.EarnedAt); err != nil {
			return nil, infra.WrapDBErr("failed to scan loyalty earning", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapDBErr("failed to iterate loyalty earnings", err)
	}
	return out, nil
}

var _ shared.LoyaltyRepository = (*LoyaltyRepository)(nil)
