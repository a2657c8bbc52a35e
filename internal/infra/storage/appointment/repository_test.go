package appointment

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fadeline/booking-service/internal/domain"
	"github.com/fadeline/booking-service/pkg/ptr"
	"github.com/fadeline/booking-service/pkg/types"
)

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(db), mock
}

func TestRepository_Create(t *testing.T) {
	repo, mock := newMock(t)

	appt := &domain.Appointment{
		Reference:       uuid.New(),
		ProviderID:      7,
		ClientRef:       "client-42",
		Date:            time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		StartTime:       types.TimeString("10:00"),
		DurationMinutes: 30,
		Status:          domain.StatusConfirmed,
		Services:        []string{"haircut"},
	}

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO appointments")).
		WithArgs(
			appt.Reference,
			appt.ProviderID,
			appt.ClientRef,
			appt.Date,
			appt.StartTime,
			appt.DurationMinutes,
			appt.Status,
			pq.Array(appt.Services),
			appt.Notes,
		).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(int64(101), now, now))

	created, err := repo.Create(context.Background(), appt)
	require.NoError(t, err)
	assert.Equal(t, int64(101), created.ID)
	assert.Equal(t, now, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_OverlapMapsToSentinel(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO appointments")).
		WillReturnError(&pq.Error{Code: "23P01", Constraint: "appointments_no_overlap"})

	_, err := repo.Create(context.Background(), &domain.Appointment{
		Reference:       uuid.New(),
		ProviderID:      7,
		ClientRef:       "client-42",
		Date:            time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		StartTime:       types.TimeString("10:00"),
		DurationMinutes: 30,
		Status:          domain.StatusConfirmed,
		Services:        []string{"haircut"},
	})

	assert.ErrorIs(t, err, ErrAppointmentOverlap)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_OtherDBErrorIsNotOverlap(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO appointments")).
		WillReturnError(&pq.Error{Code: "23505"})

	_, err := repo.Create(context.Background(), &domain.Appointment{
		Reference: uuid.New(),
		Services:  []string{},
	})

	assert.ErrorIs(t, err, ErrExecQuery)
	assert.NotErrorIs(t, err, ErrAppointmentOverlap)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func appointmentRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "reference", "provider_id", "client_ref",
		"appointment_date", "start_time", "duration_minutes", "status",
		"services", "notes", "cancellation_reason", "cancelled_at",
		"created_at", "updated_at",
	})
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := newMock(t)

	ref := uuid.New()
	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, reference, provider_id, client_ref, appointment_date, start_time, duration_minutes, status, services, notes, cancellation_reason, cancelled_at, created_at, updated_at FROM appointments WHERE id = $1")).
		WithArgs(int64(101)).
		WillReturnRows(appointmentRows().AddRow(
			int64(101), ref, int64(7), "client-42",
			date, "10:00", 30, "confirmed",
			pq.Array([]string{"haircut", "beard trim"}), nil, nil, nil,
			now, now,
		))

	appt, err := repo.GetByID(context.Background(), 101)
	require.NoError(t, err)
	assert.Equal(t, ref, appt.Reference)
	assert.Equal(t, types.TimeString("10:00"), appt.StartTime)
	assert.Equal(t, []string{"haircut", "beard trim"}, appt.Services)
	assert.Nil(t, appt.Notes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("SELECT .* FROM appointments").
		WithArgs(int64(999)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByProviderWithFilter_DayExcludesInactive(t *testing.T) {
	repo, mock := newMock(t)

	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(
		"FROM appointments WHERE provider_id = $1 AND appointment_date = $2 AND status NOT IN ($3,$4,$5) ORDER BY start_time ASC",
	)).
		WithArgs(int64(7), date, "cancelled_by_client", "cancelled_by_provider", "no_show").
		WillReturnRows(appointmentRows().AddRow(
			int64(1), uuid.New(), int64(7), "client-1",
			date, "09:00", 30, "confirmed",
			pq.Array([]string{"haircut"}), nil, nil, nil,
			now, now,
		))

	appointments, err := repo.GetByProviderWithFilter(context.Background(), domain.ProviderAppointmentsFilter{
		ProviderID: 7,
		Date:       &date,
	})
	require.NoError(t, err)
	require.Len(t, appointments, 1)
	assert.Equal(t, types.TimeString("09:00"), appointments[0].StartTime)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByProviderWithFilter_StatusFilter(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"FROM appointments WHERE provider_id = $1 AND status = $2 ORDER BY appointment_date DESC, start_time DESC",
	)).
		WithArgs(int64(7), domain.StatusCancelledByClient).
		WillReturnRows(appointmentRows())

	appointments, err := repo.GetByProviderWithFilter(context.Background(), domain.ProviderAppointmentsFilter{
		ProviderID: 7,
		Status:     ptr.Ptr(domain.StatusCancelledByClient),
	})
	require.NoError(t, err)
	assert.Empty(t, appointments)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByClientRef(t *testing.T) {
	repo, mock := newMock(t)

	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	now := time.Now()
	cancelled := now.Add(-time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta(
		"FROM appointments WHERE client_ref = $1 ORDER BY appointment_date DESC, start_time DESC",
	)).
		WithArgs("client-42").
		WillReturnRows(appointmentRows().
			AddRow(
				int64(2), uuid.New(), int64(7), "client-42",
				date, "14:00", 60, "cancelled_by_client",
				pq.Array([]string{"coloring"}), "window seat please", "schedule change", cancelled,
				now, now,
			))

	appointments, err := repo.GetByClientRef(context.Background(), "client-42", nil)
	require.NoError(t, err)
	require.Len(t, appointments, 1)
	assert.Equal(t, domain.StatusCancelledByClient, appointments[0].Status)
	require.NotNil(t, appointments[0].Notes)
	assert.Equal(t, "window seat please", *appointments[0].Notes)
	require.NotNil(t, appointments[0].CancelledAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Cancel(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE appointments SET")).
		WithArgs(domain.StatusCancelledByClient, "running late", int64(101)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Cancel(context.Background(), 101, domain.StatusCancelledByClient, "running late")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Cancel_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE appointments SET")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Cancel(context.Background(), 999, domain.StatusCancelledByProvider, "")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatus_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE appointments SET")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), 999, domain.StatusCompleted)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIsExclusionViolation(t *testing.T) {
	assert.True(t, isExclusionViolation(&pq.Error{Code: "23P01"}))
	assert.False(t, isExclusionViolation(&pq.Error{Code: "23505"}))
	assert.False(t, isExclusionViolation(errors.New("plain error")))
}
