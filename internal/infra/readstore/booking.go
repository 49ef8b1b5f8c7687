package readstore

import (
	"context"
	"time"

	"github.com/google/uuid"

	"turfbook/internal/domain/booking"
	"turfbook/internal/infra"
	"turfbook/internal/pkg/errs"
	"turfbook/internal/usecase/queries"
)

type BookingReadStore struct {
	db infra.DBTX
}

func NewBookingReadStore(db infra.DBTX) *BookingReadStore {
	return &BookingReadStore{db: db}
}

const findBookingViewSQL = `
SELECT b.id, b.turf_id, t.name, b.user_id, b.sport,
       b.date, b.start_min, b.end_min,
       b.price, b.status, b.payment_status,
       b.cancellation_reason, b.cancellation_fee, b.refund_amount, b.cancelled_at,
       b.created_at, b.updated_at
FROM bookings b
JOIN turfs t ON t.id = b.turf_id
WHERE b.id = $1
`

func (s *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	var (
		view             queries.BookingView
		date             time.Time
		startMin, endMin int32
	)
	err := s.db.QueryRow(ctx, findBookingViewSQL, id).Scan(
		&view.ID, &view.TurfID, &view.TurfName, &view.UserID, &view.Sport,
		&date, &startMin, &endMin,
		&view.Price, &view.Status, &view.PaymentStatus,
		&view.CancellationReason, &view.CancellationFee, &view.RefundAmount, &view.CancelledAt,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking view", err, errs.ErrBookingNotFound)
	}

	view.Date = date.Format(queries.DateFormat)
	view.StartTime = booking.TimeOfDay(startMin).String()
	view.EndTime = booking.TimeOfDay(endMin).String()
	return &view, nil
}

const listBookingsByUserSQL = `
SELECT b.id, b.turf_id, t.name, b.sport,
       b.date, b.start_min, b.end_min,
       b.price, b.status, b.created_at
FROM bookings b
JOIN turfs t ON t.id = b.turf_id
WHERE b.user_id = $1
ORDER BY b.date DESC, b.start_min DESC
LIMIT $2
`

func (s *BookingReadStore) FindByUserID(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	rows, err := s.db.Query(ctx, listBookingsByUserSQL, userID, limit)
	if err != nil {
		return nil, infra.WrapDBErr("failed to list bookings", err)
	}
	defer rows.Close()

	var out []*queries.BookingListItem
	for rows.Next() {
		var (
			item             queries.BookingListItem
			date             time.Time
			startMin, endMin int32
		)
		err := rows.Scan(
			&item.ID, &item.TurfID, &item.TurfName, &item.Sport,
			&date, &startMin, &endMin,
			&item.Price, &item.Status, &item.CreatedAt,
		)
		if err != nil {
			return nil, infra.WrapDBErr("failed to scan booking list item", err)
		}
		item.Date = date.Format(queries.DateFormat)
		item.StartTime = booking.TimeOfDay(startMin).String()
		item.EndTime = booking.TimeOfDay(endMin).String()
		out = append(out, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapDBErr("failed to iterate bookings", err)
	}
	return out, nil
}

const occupiedSlotsSQL = `
SELECT id, start_min, end_min, status
FROM bookings
WHERE turf_id = $1 AND date = $2
ORDER BY start_min ASC
`

// OccupiedSlots serves the availability and dynamic pricing read paths; the
// write side uses its transaction-bound equivalent.
func (s *BookingReadStore) OccupiedSlots(ctx context.Context, turfID uuid.UUID, date time.Time) ([]booking.OccupiedSlot, error) {
	rows, err := s.db.Query(ctx, occupiedSlotsSQL, turfID, date)
	if err != nil {
		return nil, infra.WrapDBErr("failed to list occupied slots", err)
	}
	defer rows.Close()

	var out []booking.OccupiedSlot
	for rows.Next() {
		var (
			id               uuid.UUID
			startMin, endMin int32
			status           string
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
