package queries

import (
	"context"

	"github.com/google/uuid"
)

type ReviewQueries interface {
	ListByTurf(ctx context.Context, turfID uuid.UUID, limit int) ([]*ReviewView, error)
	GetTurfRatingStats(ctx context.Context, turfID uuid.UUID) (*TurfRatingStatsView, error)
}

type ReviewViewRepo interface {
	FindByTurfID(ctx context.Context, turfID uuid.UUID, limit int32) ([]*ReviewView, error)
	FindRatingStats(ctx context.Context, turfID uuid.UUID) (*TurfRatingStatsView, error)
}

type reviewQueriesImpl struct {
	repo ReviewViewRepo
}

func NewReviewQueries(repo ReviewViewRepo) ReviewQueries {
	return &reviewQueriesImpl{repo: repo}
}

func (q *reviewQueriesImpl) ListByTurf(ctx context.Context, turfID uuid.UUID, limit int) ([]*ReviewView, error) {
	if limit <= 0 {
		limit = 50
	}
	return q.repo.FindByTurfID(ctx, turfID, int32(limit))
}

func (q *reviewQueriesImpl) GetTurfRatingStats(ctx context.Context, turfID uuid.UUID) (*TurfRatingStatsView, error) {
	return q.repo.FindRatingStats(ctx, turfID)
}
