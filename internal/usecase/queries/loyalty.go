package queries

import (
	"context"

	"github.com/google/uuid"
)

type LoyaltyQueries interface {
	GetAccount(ctx context.Context, userID uuid.UUID) (*LoyaltyAccountView, error)
}

type LoyaltyViewRepo interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*LoyaltyAccountView, error)
}

type loyaltyQueriesImpl struct {
	repo LoyaltyViewRepo
}

func NewLoyaltyQueries(repo LoyaltyViewRepo) LoyaltyQueries {
	return &loyaltyQueriesImpl{repo: repo}
}

func (q *loyaltyQueriesImpl) GetAccount(ctx context.Context, userID uuid.UUID) (*LoyaltyAccountView, error) {
	return q.repo.FindByUserID(ctx, userID)
}
