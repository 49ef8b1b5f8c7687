package commands

import (
	"context"

	"github.com/google/uuid"

	"turfbook/internal/domain/booking"
	"turfbook/internal/domain/review"
	"turfbook/internal/pkg/clock"
	"turfbook/internal/usecase/queries"
	"turfbook/internal/usecase/shared"
)

type CreateReviewParams struct {
	UserID    uuid.UUID
	BookingID uuid.UUID
	Rating    int
	Comment   string
}

type ReviewCommands interface {
	CreateReview(ctx context.Context, params CreateReviewParams) (*queries.ReviewView, error)
}

type reviewCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReviewCommands(uow shared.UnitOfWork, clk clock.Clock) ReviewCommands {
	return &reviewCommandsImpl{uow: uow, clock: clk}
}

func (c *reviewCommandsImpl) CreateReview(ctx context.Context, params CreateReviewParams) (*queries.ReviewView, error) {
	var created *review.Review
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByID(ctx, params.BookingID)
		if err != nil {
			return err
		}
		if b.UserID() != params.UserID || b.Status() != booking.StatusCompleted {
			return ErrBookingNotEligibleForReview
		}

		r, err := review.NewReview(uuid.Nil, params.UserID, b.TurfID(), b.ID(), params.Rating, params.Comment, c.clock.Now())
		if err != nil {
			return err
		}
		if err := tx.Reviews().Create(ctx, r); err != nil {
			return err
		}
		if err := tx.RatingStats().RecalcTurfRatingStats(ctx, b.TurfID()); err != nil {
			return err
		}
		created = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &queries.ReviewView{
		ID:        created.ID(),
		TurfID:    created.TurfID(),
		UserID:    created.UserID(),
		BookingID: created.BookingID(),
		Rating:    created.Rating().Value(),
		Comment:   created.Comment().String(),
		CreatedAt: created.CreatedAt(),
	}, nil
}
