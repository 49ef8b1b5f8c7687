package repository

import (
	"context"

	"turfbook/internal/domain/review"
	"turfbook/internal/infra"
	"turfbook/internal/pkg/errs"
	"turfbook/internal/usecase/shared"
)

type ReviewRepository struct {
	db infra.DBTX
}

func NewReviewRepository(db infra.DBTX) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(ctx context.Context, rv *review.Review) error {
	query, args, err := qb.Insert("reviews").
		Columns("id", "user_id", "turf_id", "booking_id", "rating", "comment", "created_at", "updated_at").
		Values(
			rv.ID(), rv.UserID(), rv.TurfID(), rv.BookingID(),
			int32(rv.Rating().Value()), rv.Comment().String(),
			rv.CreatedAt(), rv.UpdatedAt(),
		).
		ToSql()
	if err != nil {
		return errs.Wrap(err, "failed to build review insert")
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		// One review per booking, enforced by the unique index.
		return infra.WrapRepoErrDup("failed to create review", err, errs.ErrStorageFailure, review.ErrReviewAlreadyExists)
	}
	return nil
}

var _ shared.ReviewRepository = (*ReviewRepository)(nil)
