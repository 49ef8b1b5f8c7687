package readstore

import (
	"context"

	"github.com/google/uuid"

	"turfbook/internal/infra"
	"turfbook/internal/usecase/queries"
)

type ReviewReadStore struct {
	db infra.DBTX
}

func NewReviewReadStore(db infra.DBTX) *ReviewReadStore {
	return &ReviewReadStore{db: db}
}

const listReviewsByTurfSQL = `
SELECT id, turf_id, user_id, booking_id, rating, comment, created_at
FROM reviews
WHERE turf_id = $1
ORDER BY created_at DESC
LIMIT $2
`

func (s *ReviewReadStore) FindByTurfID(ctx context.Context, turfID uuid.UUID, limit int32) ([]*queries.ReviewView, error) {
	rows, err := s.db.Query(ctx, listReviewsByTurfSQL, turfID, limit)
	if err != nil {
		return nil, infra.WrapDBErr("failed to list reviews", err)
	}
	defer rows.Close()

	var out []*queries.ReviewView
	for rows.Next() {
		var v queries.ReviewView
		var rating int32
		if err := rows.Scan(&v.ID, &v.TurfID, &v.UserID, &v.BookingID, &rating, &v.Comment, &v.CreatedAt); err != nil {
			return nil, infra.WrapDBErr("failed to scan review", err)
		}
		v.Rating = int(rating)
		out = append(out, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapDBErr("failed to iterate reviews", err)
	}
	return out, nil
}

const findRatingStatsSQL = `
SELECT turf_id, average_rating, review_count
FROM turf_rating_stats
WHERE turf_id = $1
`

func (s *ReviewReadStore) FindRatingStats(ctx context.Context, turfID uuid.UUID) (*queries.TurfRatingStatsView, error) {
	var view queries.TurfRatingStatsView
	err := s.db.QueryRow(ctx, findRatingStatsSQL, turfID).Scan(
		&view.TurfID, &view.AverageRating, &view.ReviewCount,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			// No reviews yet: an empty aggregate, not an error.
			return &queries.TurfRatingStatsView{TurfID: turfID}, nil
		}
		return nil, infra.WrapDBErr("failed to find rating stats", err)
	}
	return &view, nil
}

var _ queries.ReviewViewRepo = (*ReviewReadStore)(nil)
var _ queries.LoyaltyViewRepo = (*LoyaltyReadStore)(nil)
var _ queries.BookingViewRepo = (*BookingReadStore)(nil)
var _ queries.OccupancyRepo = (*BookingReadStore)(nil)
var _ queries.TurfViewRepo = (*TurfReadStore)(nil)
