package repository

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"turfbook/internal/domain/booking"
	"turfbook/internal/domain/waitlist"
	"turfbook/internal/infra"
	"turfbook/internal/pkg/errs"
	"turfbook/internal/usecase/shared"
)

var waitlistColumns = []string{
	"id", "turf_id", "user_id", "sport",
	"date", "start_min", "end_min",
	"priority", "status", "allocated_booking_id",
	"created_at", "updated_at",
}

type WaitlistRepository struct {
	db infra.DBTX
}

func NewWaitlistRepository(db infra.DBTX) *WaitlistRepository {
	return &WaitlistRepository{db: db}
}

func (r *WaitlistRepository) Create(ctx context.Context, e *waitlist.Entry) error {
	query, args, err := qb.Insert("waitlist_entries").
		Columns("id", "turf_id", "user_id", "sport", "date", "start_min", "end_min", "priority", "status", "allocated_booking_id").
		Values(
			e.ID(), e.TurfID(), e.UserID(), e.Sport(),
			e.Slot().Date(), int32(e.Slot().Start()), int32(e.Slot().End()),
			int32(e.Priority()), e.Status().String(), e.AllocatedBooking(),
		).
		ToSql()
	if err != nil {
		return errs.Wrap(err, "failed to build waitlist insert")
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		// The partial unique index on pending entries backs the duplicate
		// check against races between the select and this insert.
		return infra.WrapRepoErrDup("failed to create waitlist entry", err, errs.ErrStorageFailure, errs.ErrDuplicateWaitlistEntry)
	}
	return nil
}

func (r *WaitlistRepository) Update(ctx context.Context, e *waitlist.Entry) error {
	query, args, err := qb.Update("waitlist_entries").
		Set("status", e.Status().String()).
		Set("allocated_booking_id", e.AllocatedBooking()).
		Set("updated_at", squirrel.Expr("now()")).
		Where("id = ?", e.ID()).
		ToSql()
	if err != nil {
		return errs.Wrap(err, "failed to build waitlist update")
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapDBErr("failed to update waitlist entry", err)
	}
	if tag.RowsAffected() == 0 {
		return errs.Mark(errs.New("waitlist row missing on update"), errs.ErrWaitlistEntryNotFound)
	}
	return nil
}

func (r *WaitlistRepository) FindByID(ctx context.Context, id uuid.UUID) (*waitlist.Entry, error) {
	query, args, err := qb.Select(waitlistColumns...).
		From("waitlist_entries").
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return nil, errs.Wrap(err, "failed to build waitlist select")
	}

	row, err := scanWaitlistRow(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find waitlist entry", err, errs.ErrWaitlistEntryNotFound)
	}
	return waitlistRowToEntity(row)
}

func (r *WaitlistRepository) HasPendingDuplicate(ctx context.Context, userID, turfID uuid.UUID, date time.Time, start, end booking.TimeOfDay) (bool, error) {
	query, args, err := qb.Select("1").
		From("waitlist_entries").
		Where("user_id = ? AND turf_id = ? AND date = ? AND start_min = ? AND end_min = ? AND status = ?",
			userID, turfID, date, int32(start), int32(end), waitlist.StatusPending.String()).
		Limit(1).
		ToSql()
	if err != nil {
		return false, errs.Wrap(err, "failed to build duplicate check")
	}

	var one int
	err = r.db.QueryRow(ctx, query, args...).Scan(&one)
	if err != nil {
		if infra.IsNoRows(err) {
			return false, nil
		}
		return false, infra.WrapDBErr("failed to check duplicate waitlist entry", err)
	}
	return true, nil
}

func (r *WaitlistRepository) PendingByTurfDate(ctx context.Context, turfID uuid.UUID, date time.Time) ([]*waitlist.Entry, error) {
	query, args, err := qb.Select(waitlistColumns...).
		From("waitlist_entries").
		Where("turf_id = ? AND date = ? AND status = ?", turfID, date, waitlist.StatusPending.String()).
		OrderBy("priority DESC", "created_at ASC").
		ToSql()
	if err != nil {
		return nil, errs.Wrap(err, "failed to build pending entries select")
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapDBErr("failed to list pending waitlist entries", err)
	}
	defer rows.Close()

	var out []*waitlist.Entry
	for rows.Next() {
		row, err := scanWaitlistRow(rows)
		if err != nil {
			return nil, infra.WrapDBErr("failed to scan waitlist entry", err)
		}
		entry, err := waitlistRowToEntity(row)
		if err != nil {
			return nil, err
		}
		out = append(out, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapDBErr("failed to iterate waitlist entries", err)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanWaitlistRow(s rowScanner) (waitlistRow, error) {
	var row waitlistRow
	err := s.Scan(
		&row.ID, &row.TurfID, &row.UserID, &row.Sport,
		&row.Date, &row.StartMin, &row.EndMin,
		&row.Priority, &row.Status, &row.AllocatedBooking,
		&row.CreatedAt, &row.UpdatedAt,
	)
	return row, err
}

var _ shared.WaitlistRepository = (*WaitlistRepository)(nil)
