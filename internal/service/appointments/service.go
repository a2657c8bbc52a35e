package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/fadeline/booking-service/internal/domain"
	appointmentRepo "github.com/fadeline/booking-service/internal/infra/storage/appointment"
	directoryClient "github.com/fadeline/booking-service/internal/integrations/providerdirectory"
	"github.com/fadeline/booking-service/internal/service/appointments/models"
)

// Service handles appointment reads and lifecycle transitions. Creation
// goes through the booking usecase; everything after commit lands here.
type Service struct {
	appointmentRepo AppointmentRepository
	directoryClient ProviderDirectoryClient
	logger          Logger
}

// NewService creates the appointments service.
func NewService(
	appointmentRepo AppointmentRepository,
	directoryClient ProviderDirectoryClient,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		directoryClient: directoryClient,
		logger:          logger,
	}
}

// GetByID fetches an appointment for the client who booked it. A client
// only ever sees their own appointments.
func (s *Service) GetByID(ctx context.Context, id int64, clientRef string) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d for client=%s", id, clientRef)

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if appt.ClientRef != clientRef {
		s.logger.Warn("GetByID: access denied for client=%s to appointment id=%d", clientRef, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainAppointment(appt), nil
}

// GetClientAppointments lists a client's appointment history, newest
// first. Optionally filtered by status.
func (s *Service) GetClientAppointments(ctx context.Context, req *models.GetClientAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetClientAppointments: fetching appointments for client=%s, status=%v", req.ClientRef, req.Status)

	var domainStatus *domain.AppointmentStatus
	if req.Status != nil {
		status, err := models.ToDomainAppointmentStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetClientAppointments: invalid status=%s for client=%s", *req.Status, req.ClientRef)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	appointments, err := s.appointmentRepo.GetByClientRef(ctx, req.ClientRef, domainStatus)
	if err != nil {
		s.logger.Error("GetClientAppointments: repository error for client=%s: %v", req.ClientRef, err)
		return nil, fmt.Errorf("%w: GetClientAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetClientAppointments: fetched %d appointments for client=%s", len(appointments), req.ClientRef)
	return models.FromDomainAppointmentList(appointments), nil
}

// GetProviderAppointments lists a provider's appointments. With a date
// filter the result is the day agenda in start-time order; cancelled and
// no-show rows are excluded unless explicitly requested.
func (s *Service) GetProviderAppointments(ctx context.Context, req *models.GetProviderAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetProviderAppointments: fetching appointments for provider=%d", req.ProviderID)

	if _, err := s.directoryClient.GetProvider(ctx, req.ProviderID); err != nil {
		if errors.Is(err, directoryClient.ErrProviderNotFound) {
			s.logger.Warn("GetProviderAppointments: provider id=%d not found", req.ProviderID)
			return nil, ErrProviderNotFound
		}
		s.logger.Error("GetProviderAppointments: directory error for provider=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: GetProviderAppointments - directory error: %v", ErrInternal, err)
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetProviderAppointments: invalid filter for provider=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	appointments, err := s.appointmentRepo.GetByProviderWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetProviderAppointments: repository error for provider=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: GetProviderAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetProviderAppointments: fetched %d appointments for provider=%d", len(appointments), req.ProviderID)
	return models.FromDomainAppointmentList(appointments), nil
}

// Cancel cancels an appointment on behalf of its client. Only the booking
// client may cancel through this path, and only while the appointment is
// still confirmed. The slot opens up immediately: cancelled rows never
// conflict with new bookings.
func (s *Service) Cancel(ctx context.Context, appointmentID int64, req *models.CancelAppointmentRequest) error {
	s.logger.Info("Cancel: cancelling appointment id=%d by client=%s", appointmentID, req.ClientRef)

	appt, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d not found", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if appt.ClientRef != req.ClientRef {
		s.logger.Warn("Cancel: access denied for client=%s to appointment id=%d", req.ClientRef, appointmentID)
		return ErrAccessDenied
	}

	if !appt.CanBeCancelled() {
		s.logger.Warn("Cancel: appointment id=%d cannot be cancelled, status=%s", appointmentID, appt.Status)
		return ErrCannotCancel
	}

	if err := s.appointmentRepo.Cancel(ctx, appointmentID, domain.StatusCancelledByClient, req.CancellationReason); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: cancelled appointment id=%d", appointmentID)
	return nil
}

// CancelByProvider cancels an appointment from the provider side.
func (s *Service) CancelByProvider(ctx context.Context, appointmentID, providerID int64, reason string) error {
	s.logger.Info("CancelByProvider: cancelling appointment id=%d by provider=%d", appointmentID, providerID)

	appt, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("CancelByProvider: appointment id=%d not found", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("CancelByProvider: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: CancelByProvider - repository error: %v", ErrInternal, err)
	}

	if appt.ProviderID != providerID {
		s.logger.Warn("CancelByProvider: appointment id=%d does not belong to provider=%d", appointmentID, providerID)
		return ErrAccessDenied
	}

	if !appt.CanBeCancelled() {
		s.logger.Warn("CancelByProvider: appointment id=%d cannot be cancelled, status=%s", appointmentID, appt.Status)
		return ErrCannotCancel
	}

	if err := s.appointmentRepo.Cancel(ctx, appointmentID, domain.StatusCancelledByProvider, reason); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		s.logger.Error("CancelByProvider: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: CancelByProvider - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CancelByProvider: cancelled appointment id=%d", appointmentID)
	return nil
}

// UpdateStatus moves an appointment to completed or no_show; provider-side
// bookkeeping after the visit.
func (s *Service) UpdateStatus(ctx context.Context, appointmentID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating appointment id=%d to status=%s by provider=%d",
		appointmentID, req.Status, req.ProviderID)

	appt, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: appointment id=%d not found", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if appt.ProviderID != req.ProviderID {
		s.logger.Warn("UpdateStatus: appointment id=%d does not belong to provider=%d", appointmentID, req.ProviderID)
		return ErrAccessDenied
	}

	newStatus, err := models.ToDomainAppointmentStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for appointment id=%d", req.Status, appointmentID)
		return fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, appointmentID, newStatus); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: updated appointment id=%d to status=%s", appointmentID, newStatus)
	return nil
}
