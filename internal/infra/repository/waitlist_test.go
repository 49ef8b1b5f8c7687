//go:build unit

package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"turfbook/internal/domain/booking"
	"turfbook/internal/domain/waitlist"
	"turfbook/internal/infra"
	"turfbook/internal/infra/repository"
	"turfbook/internal/pkg/errs"
)

func TestWaitlistRepositoryCreate(t *testing.T) {
	start, err := booking.NewTimeOfDay(10, 0)
	require.NoError(t, err)
	end, err := booking.NewTimeOfDay(12, 0)
	require.NoError(t, err)
	slot, err := booking.NewSlot(time.Date(2026, time.March, 16, 0, 0, 0, 0, time.UTC), start, end)
	require.NoError(t, err)
	entry, err := waitlist.NewEntry(uuid.New(), uuid.New(), "football", slot, 1)
	require.NoError(t, err)

	t.Run("pending duplicate violation maps to the domain sentinel", func(t *testing.T) {
		db := &stubDB{execErr: &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}}
		err := repository.NewWaitlistRepository(db).Create(context.Background(), entry)

		require.ErrorIs(t, err, errs.ErrDuplicateWaitlistEntry)
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})
}
