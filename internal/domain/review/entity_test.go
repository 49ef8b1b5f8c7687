//go:build unit

package review_test

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"turfbook/internal/domain/review"
	"turfbook/tests/common/builder"
)

type testCase struct {
	name   string
	mutate func(*builder.ReviewBuilder)
	errIs  error
}

func TestReview(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewReviewBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
		assert.Equal(t, 5, actual.Rating().Value())
		assert.Equal(t, "Great pitch, well maintained", actual.Comment().String())
	})

	t.Run("rating validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "below minimum rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(0) },
				errIs:  review.ErrInvalidRating,
			},
			{
				name:   "minimum valid rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(1) },
			},
			{
				name:   "maximum valid rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(5) },
			},
			{
				name:   "above maximum rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(6) },
				errIs:  review.ErrInvalidRating,
			},
		})
	})

	t.Run("comment validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "single character comment",
				mutate: func(b *builder.ReviewBuilder) { b.WithComment("a") },
			},
			{
				name:   "maximum length comment",
				mutate: func(b *builder.ReviewBuilder) { b.WithComment(strings.Repeat("a", review.MaxCommentLength)) },
			},
			{
				name:   "empty comment",
				mutate: func(b *builder.ReviewBuilder) { b.WithComment("") },
				errIs:  review.ErrEmptyComment,
			},
			{
				name:   "whitespace only comment",
				mutate: func(b *builder.ReviewBuilder) { b.WithComment("   ") },
				errIs:  review.ErrEmptyComment,
			},
			{
				name:   "comment exceeds maximum length",
				mutate: func(b *builder.ReviewBuilder) { b.WithComment(strings.Repeat("a", review.MaxCommentLength+1)) },
				errIs:  review.ErrCommentTooLong,
			},
		})
	})

	t.Run("comment trimming", func(t *testing.T) {
		r, err := review.NewReview(uuid.Nil, uuid.New(), uuid.New(), uuid.New(), 4, "  trimmed  ", time.Now())
		require.NoError(t, err)
		assert.Equal(t, "trimmed", r.Comment().String())
	})

	t.Run("generates an ID when none is given", func(t *testing.T) {
		r1, err1 := builder.NewReviewBuilder().BuildDomain()
		r2, err2 := builder.NewReviewBuilder().BuildDomain()
		require.NoError(t, err1)
		require.NoError(t, err2)
		assert.NotEqual(t, r1.ID(), r2.ID())
	})

	t.Run("keeps an explicit ID", func(t *testing.T) {
		id := uuid.New()
		r, err := review.NewReview(id, uuid.New(), uuid.New(), uuid.New(), 4, "fine", time.Now())
		require.NoError(t, err)
		assert.Equal(t, id, r.ID())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewReviewBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
