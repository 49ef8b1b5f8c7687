package repository

import (
	"context"

	"github.com/google/uuid"

	"turfbook/internal/infra"
	"turfbook/internal/usecase/shared"
)

// recalcRatingStatsSQL recomputes a turf's aggregate from its reviews in one
// statement, so the aggregate can never drift from the source rows.
const recalcRatingStatsSQL = `
INSERT INTO turf_rating_stats (turf_id, average_rating, review_count, updated_at)
SELECT $1, COALESCE(AVG(rating), 0), COUNT(*), now()
FROM reviews
WHERE turf_id = $1
ON CONFLICT (turf_id) DO UPDATE
SET average_rating = EXCLUDED.average_rating,
    review_count   = EXCLUDED.review_count,
    updated_at     = EXCLUDED.updated_at
`

type RatingStatsRepository struct {
	db infra.DBTX
}

func NewRatingStatsRepository(db infra.DBTX) *RatingStatsRepository {
	return &RatingStatsRepository{db: db}
}

func (r *RatingStatsRepository) RecalcTurfRatingStats(ctx context.Context, turfID uuid.UUID) error {
	if _, err := r.db.Exec(ctx, recalcRatingStatsSQL, turfID); err != nil {
		return infra.WrapDBErr("failed to recalculate turf rating stats", err)
	}
	return nil
}

var _ shared.RatingStatsRepository = (*RatingStatsRepository)(nil)
