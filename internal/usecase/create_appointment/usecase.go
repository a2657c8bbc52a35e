package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/fadeline/booking-service/internal/domain"
	appointmentRepo "github.com/fadeline/booking-service/internal/infra/storage/appointment"
	scheduleRepo "github.com/fadeline/booking-service/internal/infra/storage/schedule"
	directoryClient "github.com/fadeline/booking-service/internal/integrations/providerdirectory"
	"github.com/fadeline/booking-service/internal/scheduling"
)

// UseCase commits a booking. The availability check and the insert run in
// one serializable transaction over a locked snapshot of the provider's
// day, and the no-overlap exclusion constraint backstops the insert, so
// of two racing requests for the same slot exactly one wins; the loser
// gets ErrSlotConflict.
type UseCase struct {
	appointmentRepo AppointmentRepository
	policyRepo      PolicyRepository
	directoryClient ProviderDirectoryClient
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase creates the usecase.
func NewUseCase(
	appointmentRepo AppointmentRepository,
	policyRepo PolicyRepository,
	directoryClient ProviderDirectoryClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		policyRepo:      policyRepo,
		directoryClient: directoryClient,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute creates the appointment.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: provider=%d, client=%s, date=%s, time=%s, duration=%d",
		req.ProviderID, req.ClientRef, req.Date.Format(domain.DateFormat), req.StartTime, req.DurationMinutes)

	// 1. Validate the request fields.
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Current time, fixed once for all checks in this request.
	now := uc.timeProvider.Now()

	// 3. Resolve the provider; inactive providers take no bookings.
	if _, err := uc.directoryClient.GetActiveProvider(ctx, req.ProviderID); err != nil {
		switch {
		case errors.Is(err, directoryClient.ErrProviderNotFound):
			uc.logger.Warn("CreateAppointment: provider id=%d not found", req.ProviderID)
			return nil, ErrProviderNotFound
		case errors.Is(err, directoryClient.ErrProviderInactive):
			uc.logger.Warn("CreateAppointment: provider id=%d is inactive", req.ProviderID)
			return nil, ErrProviderInactive
		default:
			uc.logger.Error("CreateAppointment: failed to get provider id=%d: %v", req.ProviderID, err)
			return nil, fmt.Errorf("%w: failed to get provider: %v", ErrInternal, err)
		}
	}

	var result *domain.Appointment

	// 4. Availability check and insert under one serializable transaction.
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Load the schedule policy, falling back to the default.
		policy, err := uc.policyRepo.GetByProviderID(txCtx, req.ProviderID)
		if err != nil {
			if !errors.Is(err, scheduleRepo.ErrPolicyNotFound) {
				uc.logger.Error("CreateAppointment: failed to get policy: %v", err)
				return fmt.Errorf("%w: failed to get policy: %v", ErrInternal, err)
			}
			policy = domain.DefaultSchedulePolicy(req.ProviderID)
			uc.logger.Info("CreateAppointment: using default policy for provider=%d", req.ProviderID)
		}

		// 4.2. Enforce the advance booking limit.
		if err := validateAdvanceLimit(req.Date, now, policy.AdvanceBookingDays); err != nil {
			uc.logger.Warn("CreateAppointment: date validation failed: %v", err)
			return err
		}

		// 4.3. Locked snapshot of the day's active appointments
		// (FOR UPDATE inside the transaction).
		filter := domain.ProviderAppointmentsFilter{
			ProviderID: req.ProviderID,
			Date:       &req.Date,
		}

		existing, err := uc.appointmentRepo.GetByProviderWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 4.4. Run the booking checks against the snapshot.
		bookingReq := scheduling.BookingRequest{
			ProviderID:      req.ProviderID,
			Date:            req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: req.DurationMinutes,
		}

		if err := scheduling.Validate(bookingReq, policy, existing, now); err != nil {
			uc.logger.Warn("CreateAppointment: booking rejected: %v", err)
			return mapValidationError(err)
		}

		// 4.5. Insert. The exclusion constraint catches the writer we
		// could not see; surfaced as the same conflict.
		appt := &domain.Appointment{
			Reference:       uuid.New(),
			ProviderID:      req.ProviderID,
			ClientRef:       req.ClientRef,
			Date:            req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: req.DurationMinutes,
			Status:          domain.StatusConfirmed,
			Services:        req.Services,
			Notes:           req.Notes,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentOverlap) {
				uc.logger.Warn("CreateAppointment: concurrent booking won the slot, provider=%d, date=%s, time=%s",
					req.ProviderID, req.Date.Format(domain.DateFormat), req.StartTime)
				return ErrSlotConflict
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: created appointment id=%d reference=%s", result.ID, result.Reference)

	return &Response{
		ID:              result.ID,
		Reference:       result.Reference.String(),
		ProviderID:      result.ProviderID,
		ClientRef:       result.ClientRef,
		Date:            result.Date,
		StartTime:       result.StartTime,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		Services:        result.Services,
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

// mapValidationError translates the scheduling engine's sentinels into
// this usecase's error surface.
func mapValidationError(err error) error {
	switch {
	case errors.Is(err, scheduling.ErrInvalidRequest):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	case errors.Is(err, scheduling.ErrShopClosed):
		return ErrShopClosed
	case errors.Is(err, scheduling.ErrOutsideBusinessHours):
		return ErrOutsideBusinessHours
	case errors.Is(err, scheduling.ErrSlotInPast):
		return ErrSlotInPast
	case errors.Is(err, scheduling.ErrTooSoon):
		return ErrTooSoon
	case errors.Is(err, scheduling.ErrSlotConflict):
		return ErrSlotConflict
	default:
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
