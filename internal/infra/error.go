package infra

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"turfbook/internal/pkg/errs"
)

// DBTX is the common surface of pgxpool.Pool and pgx.Tx. Repositories take
// it so the same code runs pooled or transaction-bound.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type RepositoryErrorKind string

const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
)

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

const pgErrCodeUniqueViolation = "23505"

func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// WrapRepoErr classifies a storage error and marks it with the domain
// sentinel callers match on: no rows becomes notFoundAs, unique violations
// DuplicateKey, everything else StorageFailure.
func WrapRepoErr(msg string, err error, notFoundAs error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		wrapped := RepositoryError{Kind: KindNotFound, msg: msg, err: errs.Wrap(err, msg)}
		return errs.Mark(wrapped, notFoundAs)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation {
		wrapped := RepositoryError{Kind: KindDuplicateKey, msg: msg, err: errs.Wrap(err, msg)}
		return errs.Mark(wrapped, errs.ErrStorageFailure)
	}

	wrapped := RepositoryError{Kind: KindDBFailure, msg: msg, err: errs.Wrap(err, msg)}
	return errs.Mark(wrapped, errs.ErrStorageFailure)
}

// WrapDBErr is WrapRepoErr for operations where no rows is still a plain
// storage failure.
func WrapDBErr(msg string, err error) error {
	return WrapRepoErr(msg, err, errs.ErrStorageFailure)
}

// WrapRepoErrDup is WrapRepoErr for inserts guarded by a unique index:
// violations are marked duplicateAs so callers can surface a conflict
// instead of a storage failure.
func WrapRepoErrDup(msg string, err error, notFoundAs, duplicateAs error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation {
		wrapped := RepositoryError{Kind: KindDuplicateKey, msg: msg, err: errs.Wrap(err, msg)}
		return errs.Mark(wrapped, duplicateAs)
	}
	return WrapRepoErr(msg, err, notFoundAs)
}
