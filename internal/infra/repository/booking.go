package repository

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"turfbook/internal/domain/booking"
	"turfbook/internal/infra"
	"turfbook/internal/pkg/errs"
	"turfbook/internal/usecase/shared"
)

var bookingColumns = []string{
	"id", "turf_id", "user_id", "sport",
	"date", "start_min", "end_min",
	"price", "status", "payment_status",
	"cancellation_reason", "cancellation_fee", "refund_amount", "cancelled_at",
	"created_at", "updated_at",
}

type BookingRepository struct {
	db infra.DBTX
}

func NewBookingRepository(db infra.DBTX) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	query, args, err := qb.Insert("bookings").
		Columns("id", "turf_id", "user_id", "sport", "date", "start_min", "end_min", "price", "status", "payment_status").
		Values(
			b.ID(), b.TurfID(), b.UserID(), b.Sport(),
			b.Slot().Date(), int32(b.Slot().Start()), int32(b.Slot().End()),
			b.Price().Int64(), b.Status().String(), string(b.PaymentStatus()),
		).
		ToSql()
	if err != nil {
		return errs.Wrap(err, "failed to build booking insert")
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return infra.WrapDBErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	var fee, refund *int64
	if v := b.CancellationFee(); v != nil {
		i := v.Int64()
		fee = &i
	}
	if v := b.RefundAmount(); v != nil {
		i := v.Int64()
		refund = &i
	}

	query, args, err := qb.Update("bookings").
		Set("status", b.Status().String()).
		Set("payment_status", string(b.PaymentStatus())).
		Set("cancellation_reason", b.CancellationReason()).
		Set("cancellation_fee", fee).
		Set("refund_amount", refund).
		Set("cancelled_at", b.CancelledAt()).
		Set("updated_at", squirrel.Expr("now()")).
		Where("id = ?", b.ID()).
		ToSql()
	if err != nil {
		return errs.Wrap(err, "failed to build booking update")
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapDBErr("failed to update booking", err)
	}
	if tag.RowsAffected() == 0 {
		return errs.Mark(errs.New("booking row missing on update"), errs.ErrBookingNotFound)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	query, args, err := qb.Select(bookingColumns...).
		From("bookings").
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return nil, errs.Wrap(err, "failed to build booking select")
	}

	var row bookingRow
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&row.ID, &row.TurfID, &row.UserID, &row.Sport,
		&row.Date, &row.StartMin, &row.EndMin,
		&row.Price, &row.Status, &row.PaymentStatus,
		&row.CancellationReason, &row.CancellationFee, &row.RefundAmount, &row.CancelledAt,
		&row.CreatedAt, &row.UpdatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking", err, errs.ErrBookingNotFound)
	}
	return bookingRowToEntity(row)
}

func (r *BookingRepository) OccupiedSlots(ctx context.Context, turfID uuid.UUID, date time.Time) ([]booking.OccupiedSlot, error) {
	query, args, err := qb.Select("id", "start_min", "end_min", "status").
		From("bookings").
		Where("turf_id = ? AND date = ?", turfID, date).
		OrderBy("start_min ASC").
		ToSql()
	if err != nil {
		return nil, errs.Wrap(err, "failed to build occupied slots select")
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapDBErr("failed to list occupied slots", err)
	}
	defer rows.Close()

	var out []booking.OccupiedSlot
	for rows.Next() {
		var (
			id       uuid.UUID
			startMin int32
			endMin   int32
			status   string
		)
		if err := rows.Scan(&id, &startMin, &endMin, &status); err != nil {
			return nil, infra.WrapDBErr("failed to scan occupied slot", err)
		}
		out = append(out, booking.OccupiedSlot{
			BookingID: id,
			Start:     booking.TimeOfDay(startMin),
			End:       booking.TimeOfDay(endMin),
			Status:    booking.Status(status),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapDBErr("failed to iterate occupied slots", err)
	}
	return out, nil
}

var _ shared.BookingRepository = (*BookingRepository)(nil)
