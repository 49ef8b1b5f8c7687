package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"turfbook/internal/domain/booking"
	"turfbook/internal/domain/recurring"
	"turfbook/internal/infra"
	"turfbook/internal/pkg/errs"
	"turfbook/internal/usecase/shared"
)

type PlanRepository struct {
	db infra.DBTX
}

func NewPlanRepository(db infra.DBTX) *PlanRepository {
	return &PlanRepository{db: db}
}

func (r *PlanRepository) Create(ctx context.Context, p *recurring.Plan) error {
	days := make([]int32, 0, len(p.DaysOfWeek()))
	for _, d := range p.DaysOfWeek() {
		days = append(days, int32(d))
	}

	query, args, err := qb.Insert("recurring_plans").
		Columns("id", "turf_id", "user_id", "sport", "start_date", "end_date", "pattern", "days_of_week", "start_min", "end_min", "discount_percent", "status").
		Values(
			p.ID(), p.TurfID(), p.UserID(), p.Sport(),
			p.StartDate(), p.EndDate(), string(p.Pattern()), days,
			int32(p.StartTime()), int32(p.EndTime()),
			p.DiscountPercent(), string(p.Status()),
		).
		ToSql()
	if err != nil {
		return errs.Wrap(err, "failed to build plan insert")
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return infra.WrapDBErr("failed to create recurring plan", err)
	}
	return nil
}

func (r *PlanRepository) FindByID(ctx context.Context, id uuid.UUID) (*recurring.Plan, error) {
	query, args, err := qb.Select(
		"id", "turf_id", "user_id", "sport",
		"start_date", "end_date", "pattern", "days_of_week",
		"start_min", "end_min", "discount_percent", "status",
		"created_at", "updated_at",
	).
		From("recurring_plans").
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return nil, errs.Wrap(err, "failed to build plan select")
	}

	var (
		planID, turfID, userID   uuid.UUID
		sport, pattern, status   string
		startDate, endDate       time.Time
		days                     []int32
		startMin, endMin         int32
		discountPercent          float64
		createdAt, updatedAt     time.Time
	)
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&planID, &turfID, &userID, &sport,
		&startDate, &endDate, &pattern, &days,
		&startMin, &endMin, &discountPercent, &status,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find recurring plan", err, errs.ErrPlanNotFound)
	}

	bookingIDs, err := r.bookingIDs(ctx, planID)
	if err != nil {
		return nil, err
	}

	weekdays := make([]time.Weekday, 0, len(days))
	for _, d := range days {
		weekdays = append(weekdays, time.Weekday(d))
	}

	return recurring.Reconstruct(
		planID, turfID, userID, sport,
		startDate, endDate,
		recurring.Pattern(pattern), weekdays,
		booking.TimeOfDay(startMin), booking.TimeOfDay(endMin),
		discountPercent,
		recurring.Status(status),
		bookingIDs,
		createdAt, updatedAt,
	), nil
}

func (r *PlanRepository) AttachBooking(ctx context.Context, planID, bookingID uuid.UUID) error {
	query, args, err := qb.Insert("recurring_plan_bookings").
		Columns("plan_id", "booking_id").
		Values(planID, bookingID).
		ToSql()
	if err != nil {
		return errs.Wrap(err, "failed to build plan booking insert")
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return infra.WrapDBErr("failed to attach booking to plan", err)
	}
	return nil
}

func (r *PlanRepository) bookingIDs(ctx context.Context, planID uuid.UUID) ([]uuid.UUID, error) {
	query, args, err := qb.Select("booking_id").
		From("recurring_plan_bookings").
		Where("plan_id = ?", planID).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, errs.Wrap(err, "failed to build plan bookings select")
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapDBErr("failed to list plan bookings", err)
	}
	defer rows.Close()

	var out []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapDBErr("failed to scan plan booking", err)
		}
		out = append(out, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapDBErr("failed to iterate plan bookings", err)
	}
	return out, nil
}

var _ shared.PlanRepository = (*PlanRepository)(nil)
