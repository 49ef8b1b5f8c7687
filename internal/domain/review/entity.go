package review

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"turfbook/internal/pkg/errs"
)

var (
	ErrInvalidRating       = errs.New("rating must be between 1 and 5")
	ErrEmptyComment        = errs.New("comment cannot be empty")
	ErrCommentTooLong      = errs.New("comment exceeds maximum length")
	ErrReviewAlreadyExists = errs.New("review already exists for this booking")
)

const MaxCommentLength = 1000

type Rating struct {
	value int
}

func NewRating(v int) (Rating, error) {
	if v < 1 || v > 5 {
		return Rating{}, ErrInvalidRating
	}
	return Rating{value: v}, nil
}

func (r Rating) Value() int { return r.value }

type Comment struct {
	text string
}

func NewComment(s string) (Comment, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Comment{}, ErrEmptyComment
	}
	if len(t) > MaxCommentLength {
		return Comment{}, ErrCommentTooLong
	}
	return Comment{text: t}, nil
}

func (c Comment) String() string { return c.text }

// Review is a user's rating of a turf, tied to the booking that earned the
// right to leave it.
type Review struct {
	id        uuid.UUID
	userID    uuid.UUID
	turfID    uuid.UUID
	bookingID uuid.UUID
	rating    Rating
	comment   Comment
	createdAt time.Time
	updatedAt time.Time
}

func NewReview(id, userID, turfID, bookingID uuid.UUID, ratingValue int, commentText string, now time.Time) (*Review, error) {
	rating, err := NewRating(ratingValue)
	if err != nil {
		return nil, err
	}

	comment, err := NewComment(commentText)
	if err != nil {
		return nil, err
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Review{
		id:        id,
		userID:    userID,
		turfID:    turfID,
		bookingID: bookingID,
		rating:    rating,
		comment:   comment,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func (r *Review) ID() uuid.UUID        { return r.id }
func (r *Review) UserID() uuid.UUID    { return r.userID }
func (r *Review) TurfID() uuid.UUID    { return r.turfID }
func (r *Review) BookingID() uuid.UUID { return r.bookingID }
func (r *Review) Rating() Rating       { return r.rating }
func (r *Review) Comment() Comment     { return r.comment }
func (r *Review) CreatedAt() time.Time { return r.createdAt }
func (r *Review) UpdatedAt() time.Time { return r.updatedAt }
