package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fadeline/booking-service/internal/domain"
	appointmentRepo "github.com/fadeline/booking-service/internal/infra/storage/appointment"
	directoryClient "github.com/fadeline/booking-service/internal/integrations/providerdirectory"
	"github.com/fadeline/booking-service/internal/service/appointments/models"
	"github.com/fadeline/booking-service/pkg/ptr"
	"github.com/fadeline/booking-service/pkg/types"
)

type stubRepo struct {
	appointments map[int64]*domain.Appointment

	cancelledID     int64
	cancelledStatus domain.AppointmentStatus
	cancelledReason string

	updatedID     int64
	updatedStatus domain.AppointmentStatus
}

func (s *stubRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	appt, ok := s.appointments[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	return appt, nil
}

func (s *stubRepo) GetByClientRef(_ context.Context, clientRef string, status *domain.AppointmentStatus) ([]*domain.Appointment, error) {
	var out []*domain.Appointment
	for _, appt := range s.appointments {
		if appt.ClientRef != clientRef {
			continue
		}
		if status != nil && appt.Status != *status {
			continue
		}
		out = append(out, appt)
	}
	return out, nil
}

func (s *stubRepo) GetByProviderWithFilter(_ context.Context, filter domain.ProviderAppointmentsFilter) ([]*domain.Appointment, error) {
	var out []*domain.Appointment
	for _, appt := range s.appointments {
		if appt.ProviderID != filter.ProviderID {
			continue
		}
		if filter.Status != nil && appt.Status != *filter.Status {
			continue
		}
		if filter.Status == nil && !filter.IncludeInactive && !appt.IsActive() {
			continue
		}
		out = append(out, appt)
	}
	return out, nil
}

func (s *stubRepo) UpdateStatus(_ context.Context, id int64, status domain.AppointmentStatus) error {
	if _, ok := s.appointments[id]; !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	s.updatedID = id
	s.updatedStatus = status
	return nil
}

func (s *stubRepo) Cancel(_ context.Context, id int64, status domain.AppointmentStatus, reason string) error {
	if _, ok := s.appointments[id]; !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	s.cancelledID = id
	s.cancelledStatus = status
	s.cancelledReason = reason
	return nil
}

type stubDirectory struct {
	providers map[int64]*directoryClient.Provider
}

func (s *stubDirectory) GetProvider(_ context.Context, providerID int64) (*directoryClient.Provider, error) {
	p, ok := s.providers[providerID]
	if !ok {
		return nil, directoryClient.ErrProviderNotFound
	}
	return p, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testAppointment(id int64, clientRef string, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:              id,
		Reference:       uuid.New(),
		ProviderID:      7,
		ClientRef:       clientRef,
		Date:            time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		StartTime:       types.TimeString("10:00"),
		DurationMinutes: 30,
		Status:          status,
		Services:        []string{"haircut"},
	}
}

func newService(repo *stubRepo, dir *stubDirectory) *Service {
	if dir == nil {
		dir = &stubDirectory{providers: map[int64]*directoryClient.Provider{
			7: {ID: 7, DisplayName: "Sam", Active: true},
		}}
	}
	return NewService(repo, dir, nopLogger{})
}

func TestService_GetByID_OwnerOnly(t *testing.T) {
	repo := &stubRepo{appointments: map[int64]*domain.Appointment{
		1: testAppointment(1, "client-a", domain.StatusConfirmed),
	}}
	svc := newService(repo, nil)

	resp, err := svc.GetByID(context.Background(), 1, "client-a")
	require.NoError(t, err)
	assert.Equal(t, "client-a", resp.ClientRef)
	assert.Equal(t, "10:00", resp.StartTime)

	_, err = svc.GetByID(context.Background(), 1, "client-b")
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.GetByID(context.Background(), 99, "client-a")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestService_Cancel(t *testing.T) {
	repo := &stubRepo{appointments: map[int64]*domain.Appointment{
		1: testAppointment(1, "client-a", domain.StatusConfirmed),
	}}
	svc := newService(repo, nil)

	err := svc.Cancel(context.Background(), 1, &models.CancelAppointmentRequest{
		ClientRef:          "client-a",
		CancellationReason: "running late",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelledByClient, repo.cancelledStatus)
	assert.Equal(t, "running late", repo.cancelledReason)
}

func TestService_Cancel_AccessDenied(t *testing.T) {
	repo := &stubRepo{appointments: map[int64]*domain.Appointment{
		1: testAppointment(1, "client-a", domain.StatusConfirmed),
	}}
	svc := newService(repo, nil)

	err := svc.Cancel(context.Background(), 1, &models.CancelAppointmentRequest{ClientRef: "client-b"})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestService_Cancel_AlreadyFinished(t *testing.T) {
	repo := &stubRepo{appointments: map[int64]*domain.Appointment{
		1: testAppointment(1, "client-a", domain.StatusCompleted),
	}}
	svc := newService(repo, nil)

	err := svc.Cancel(context.Background(), 1, &models.CancelAppointmentRequest{ClientRef: "client-a"})
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestService_CancelByProvider(t *testing.T) {
	repo := &stubRepo{appointments: map[int64]*domain.Appointment{
		1: testAppointment(1, "client-a", domain.StatusConfirmed),
	}}
	svc := newService(repo, nil)

	err := svc.CancelByProvider(context.Background(), 1, 7, "equipment failure")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelledByProvider, repo.cancelledStatus)

	err = svc.CancelByProvider(context.Background(), 1, 8, "")
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestService_GetClientAppointments_InvalidStatus(t *testing.T) {
	repo := &stubRepo{appointments: map[int64]*domain.Appointment{}}
	svc := newService(repo, nil)

	_, err := svc.GetClientAppointments(context.Background(), &models.GetClientAppointmentsRequest{
		ClientRef: "client-a",
		Status:    ptr.Ptr("nonsense"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_GetProviderAppointments(t *testing.T) {
	repo := &stubRepo{appointments: map[int64]*domain.Appointment{
		1: testAppointment(1, "client-a", domain.StatusConfirmed),
		2: testAppointment(2, "client-b", domain.StatusCancelledByClient),
	}}
	svc := newService(repo, nil)

	resp, err := svc.GetProviderAppointments(context.Background(), &models.GetProviderAppointmentsRequest{
		ProviderID: 7,
	})
	require.NoError(t, err)
	require.Len(t, resp.Appointments, 1)
	assert.Equal(t, "confirmed", resp.Appointments[0].Status)
}

func TestService_GetProviderAppointments_UnknownProvider(t *testing.T) {
	repo := &stubRepo{appointments: map[int64]*domain.Appointment{}}
	svc := newService(repo, &stubDirectory{providers: map[int64]*directoryClient.Provider{}})

	_, err := svc.GetProviderAppointments(context.Background(), &models.GetProviderAppointmentsRequest{
		ProviderID: 7,
	})
	assert.ErrorIs(t, err, ErrProviderNotFound)
}

func TestService_UpdateStatus(t *testing.T) {
	repo := &stubRepo{appointments: map[int64]*domain.Appointment{
		1: testAppointment(1, "client-a", domain.StatusConfirmed),
	}}
	svc := newService(repo, nil)

	err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
		ProviderID: 7,
		Status:     "no_show",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusNoShow, repo.updatedStatus)

	err = svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
		ProviderID: 7,
		Status:     "garbage",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
