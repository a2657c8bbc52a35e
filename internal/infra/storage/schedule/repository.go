package schedule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/fadeline/booking-service/internal/domain"
	"github.com/fadeline/booking-service/pkg/dbmetrics"
	"github.com/fadeline/booking-service/pkg/psqlbuilder"
)

// Repository persists provider schedule policies. Open days are stored as
// a smallint[] of time.Weekday values (0=Sunday..6=Saturday).
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a schedule policy repository.
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByProviderID fetches the provider's policy. ErrPolicyNotFound means
// the provider never configured one.
func (r *Repository) GetByProviderID(ctx context.Context, providerID int64) (*domain.SchedulePolicy, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"provider_id",
		"open_days",
		"day_start",
		"day_end",
		"slot_step_minutes",
		"min_notice_minutes",
		"advance_booking_days",
		"created_at",
		"updated_at",
	).
		From("schedule_policies").
		Where(squirrel.Eq{"provider_id": providerID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByProviderID - build select query: %v", ErrBuildQuery, err)
	}

	var policy domain.SchedulePolicy
	var openDays []int64
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&policy.ID,
		&policy.ProviderID,
		pq.Array(&openDays),
		&policy.DayStart,
		&policy.DayEnd,
		&policy.SlotStepMinutes,
		&policy.MinNoticeMinutes,
		&policy.AdvanceBookingDays,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPolicyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProviderID - scan policy: %v", ErrScanRow, err)
	}

	policy.OpenDays = weekdaySetFromInts(openDays)
	policy.CreatedAt = createdAt.Time
	policy.UpdatedAt = updatedAt.Time

	return &policy, nil
}

// Upsert creates or replaces the provider's policy in one statement.
// There is exactly one policy row per provider.
func (r *Repository) Upsert(ctx context.Context, policy *domain.SchedulePolicy) (*domain.SchedulePolicy, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("schedule_policies").
		Columns(
			"provider_id",
			"open_days",
			"day_start",
			"day_end",
			"slot_step_minutes",
			"min_notice_minutes",
			"advance_booking_days",
		).
		Values(
			policy.ProviderID,
			pq.Array(weekdaySetToInts(policy.OpenDays)),
			policy.DayStart,
			policy.DayEnd,
			policy.SlotStepMinutes,
			policy.MinNoticeMinutes,
			policy.AdvanceBookingDays,
		).
		Suffix(`ON CONFLICT (provider_id) DO UPDATE SET
			open_days = EXCLUDED.open_days,
			day_start = EXCLUDED.day_start,
			day_end = EXCLUDED.day_end,
			slot_step_minutes = EXCLUDED.slot_step_minutes,
			min_notice_minutes = EXCLUDED.min_notice_minutes,
			advance_booking_days = EXCLUDED.advance_booking_days,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&policy.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	policy.CreatedAt = createdAt.Time
	policy.UpdatedAt = updatedAt.Time

	return policy, nil
}

func weekdaySetFromInts(days []int64) domain.WeekdaySet {
	set := make(domain.WeekdaySet, len(days))
	for _, d := range days {
		if d >= 0 && d <= 6 {
			set[time.Weekday(d)] = true
		}
	}
	return set
}

func weekdaySetToInts(set domain.WeekdaySet) []int64 {
	days := set.Days()
	out := make([]int64, len(days))
	for i, d := range days {
		out[i] = int64(d)
	}
	return out
}
