package uow

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"turfbook/internal/domain/booking"
	"turfbook/internal/domain/turf"
	"turfbook/internal/infra"
	"turfbook/internal/infra/readstore"
	"turfbook/internal/infra/repository"
	"turfbook/internal/pkg/errs"
	"turfbook/internal/usecase/shared"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewPostgresUoW(pool *pgxpool.Pool, logger *slog.Logger) shared.UnitOfWork {
	return &PostgresUoW{pool: pool, logger: logger}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes; the
// per-slot lease already serializes conflicting allocations.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		err = fn(ctx, &pgTx{dbtx: pgxTx})
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		// No defer here: the retry loop would accumulate rollbacks and
		// leak connections.
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			u.logger.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
		}

		if !isRetryableError(err) || attempt == maxRetries {
			if attempt == maxRetries {
				u.logger.Error("transaction failed after max retries",
					"attempts", attempt+1, "error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		wait := backoff(attempt, base)
		u.logger.Warn("retrying transaction",
			"attempt", attempt+1,
			"wait_ms", wait.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}

	return errMaxRetriesExceeded
}

func (u *PostgresUoW) Reads() shared.CommandReads {
	return &commandReads{dbtx: u.pool}
}

func backoff(attempt int, base time.Duration) time.Duration {
	wait := time.Duration(1<<attempt) * base
	jitter := time.Duration(rand.Int63n(int64(wait / 5)))
	return wait + jitter
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

// pgTx hands out repositories bound to one running transaction. Lazy so a
// transaction touching two tables doesn't construct six repositories.
type pgTx struct {
	dbtx infra.DBTX

	bookingRepo     shared.BookingRepository
	waitlistRepo    shared.WaitlistRepository
	planRepo        shared.PlanRepository
	loyaltyRepo     shared.LoyaltyRepository
	reviewRepo      shared.ReviewRepository
	ratingStatsRepo shared.RatingStatsRepository
	reads           shared.CommandReads
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = repository.NewBookingRepository(t.dbtx)
	}
	return t.bookingRepo
}

func (t *pgTx) Waitlist() shared.WaitlistRepository {
	if t.waitlistRepo == nil {
		t.waitlistRepo = repository.NewWaitlistRepository(t.dbtx)
	}
	return t.waitlistRepo
}

func (t *pgTx) Plans() shared.PlanRepository {
	if t.planRepo == nil {
		t.planRepo = repository.NewPlanRepository(t.dbtx)
	}
	return t.planRepo
}

func (t *pgTx) Loyalty() shared.LoyaltyRepository {
	if t.loyaltyRepo == nil {
		t.loyaltyRepo = repository.NewLoyaltyRepository(t.dbtx)
	}
	return t.loyaltyRepo
}

func (t *pgTx) Reviews() shared.ReviewRepository {
	if t.reviewRepo == nil {
		t.reviewRepo = repository.NewReviewRepository(t.dbtx)
	}
	return t.reviewRepo
}

func (t *pgTx) RatingStats() shared.RatingStatsRepository {
	if t.ratingStatsRepo == nil {
		t.ratingStatsRepo = repository.NewRatingStatsRepository(t.dbtx)
	}
	return t.ratingStatsRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.reads == nil {
		t.reads = &commandReads{dbtx: t.dbtx}
	}
	return t.reads
}

// commandReads serves the command side's validation reads. Bound to the
// pool outside a transaction, or to the transaction inside one.
type commandReads struct {
	dbtx infra.DBTX

	turfStore   *readstore.TurfReadStore
	bookingRepo *repository.BookingRepository
}

func (r *commandReads) TurfByID(ctx context.Context, id uuid.UUID) (*turf.Turf, error) {
	if r.turfStore == nil {
		r.turfStore = readstore.NewTurfReadStore(r.dbtx)
	}
	return r.turfStore.FindByID(ctx, id)
}

func (r *commandReads) BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	if r.bookingRepo == nil {
		r.bookingRepo = repository.NewBookingRepository(r.dbtx)
	}
	return r.bookingRepo.FindByID(ctx, id)
}
