//go:build unit || e2e

package builder

import (
	"time"

	"github.com/google/uuid"

	domreview "turfbook/internal/domain/review"
	reqdto "turfbook/internal/handler/dto/request"
	"turfbook/internal/usecase/queries"
)

type ReviewBuilder struct {
	UserID    uuid.UUID
	TurfID    uuid.UUID
	BookingID uuid.UUID
	Rating    int
	Comment   string
	CreatedAt time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	return &ReviewBuilder{
		UserID:    uuid.New(),
		TurfID:    uuid.New(),
		BookingID: uuid.New(),
		Rating:    5,
		Comment:   "Great pitch, well maintained",
		CreatedAt: time.Now(),
	}
}

func (r *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(r)
	return r
}

func (r *ReviewBuilder) WithRating(rating int) *ReviewBuilder {
	r.Rating = rating
	return r
}

func (r *ReviewBuilder) WithComment(comment string) *ReviewBuilder {
	r.Comment = comment
	return r
}

func (r *ReviewBuilder) WithUserID(userID uuid.UUID) *ReviewBuilder {
	r.UserID = userID
	return r
}

func (r *ReviewBuilder) WithTurfID(turfID uuid.UUID) *ReviewBuilder {
	r.TurfID = turfID
	return r
}

func (r *ReviewBuilder) BuildDomain() (*domreview.Review, error) {
	return domreview.NewReview(uuid.Nil, r.UserID, r.TurfID, r.BookingID, r.Rating, r.Comment, r.CreatedAt)
}

func (r *ReviewBuilder) BuildCreateRequestDTO() reqdto.CreateReviewRequest {
	return reqdto.CreateReviewRequest{
		BookingID: r.BookingID,
		Rating:    r.Rating,
		Comment:   r.Comment,
	}
}

func (r *ReviewBuilder) BuildView() *queries.ReviewView {
	return &queries.ReviewView{
		ID:        uuid.New(),
		TurfID:    r.TurfID,
		UserID:    r.UserID,
		BookingID: r.BookingID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}
