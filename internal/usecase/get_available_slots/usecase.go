package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/fadeline/booking-service/internal/domain"
	scheduleRepo "github.com/fadeline/booking-service/internal/infra/storage/schedule"
	directoryClient "github.com/fadeline/booking-service/internal/integrations/providerdirectory"
	"github.com/fadeline/booking-service/internal/scheduling"
	"github.com/fadeline/booking-service/pkg/types"
)

// UseCase answers "which start times are still open" for one provider,
// date and service duration. Read-only: the authoritative conflict check
// happens again inside the booking transaction, so a slot listed here can
// still be lost to a concurrent booking.
type UseCase struct {
	appointmentRepo AppointmentRepository
	policyRepo      PolicyRepository
	directoryClient ProviderDirectoryClient
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase creates the usecase.
func NewUseCase(
	appointmentRepo AppointmentRepository,
	policyRepo PolicyRepository,
	directoryClient ProviderDirectoryClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		policyRepo:      policyRepo,
		directoryClient: directoryClient,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute computes the available slots.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: provider=%d, date=%s, duration=%d",
		req.ProviderID, req.Date.Format(domain.DateFormat), req.DurationMinutes)

	// 1. Validate the request fields.
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Current time drives the today-filtering below.
	now := uc.timeProvider.Now()

	// 3. Resolve the provider; inactive providers take no bookings.
	if _, err := uc.directoryClient.GetActiveProvider(ctx, req.ProviderID); err != nil {
		switch {
		case errors.Is(err, directoryClient.ErrProviderNotFound):
			uc.logger.Warn("GetAvailableSlots: provider id=%d not found", req.ProviderID)
			return nil, ErrProviderNotFound
		case errors.Is(err, directoryClient.ErrProviderInactive):
			uc.logger.Warn("GetAvailableSlots: provider id=%d is inactive", req.ProviderID)
			return nil, ErrProviderInactive
		default:
			uc.logger.Error("GetAvailableSlots: failed to get provider id=%d: %v", req.ProviderID, err)
			return nil, fmt.Errorf("%w: failed to get provider: %v", ErrInternal, err)
		}
	}

	// 4. Load the schedule policy, falling back to the default.
	policy, err := uc.policyRepo.GetByProviderID(ctx, req.ProviderID)
	if err != nil {
		if !errors.Is(err, scheduleRepo.ErrPolicyNotFound) {
			uc.logger.Error("GetAvailableSlots: failed to get policy: %v", err)
			return nil, fmt.Errorf("%w: failed to get policy: %v", ErrInternal, err)
		}
		policy = domain.DefaultSchedulePolicy(req.ProviderID)
		uc.logger.Info("GetAvailableSlots: using default policy for provider=%d", req.ProviderID)
	}

	// 5. Enforce the advance booking limit. A past date is not an error
	// here: it simply yields no slots.
	if err := validateAdvanceLimit(req.Date, now, policy.AdvanceBookingDays); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 6. Generate the slot grid for the date.
	slots := scheduling.GenerateSlots(policy, req.Date, req.DurationMinutes, now)
	if len(slots) == 0 {
		uc.logger.Info("GetAvailableSlots: no slots for provider=%d on %s",
			req.ProviderID, req.Date.Format(domain.DateFormat))
		return uc.response(req, slots), nil
	}

	// 7. Load the day's active appointments.
	filter := domain.ProviderAppointmentsFilter{
		ProviderID: req.ProviderID,
		Date:       &req.Date,
	}

	appointments, err := uc.appointmentRepo.GetByProviderWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 8. Drop slots the requested duration would collide with.
	available := scheduling.FilterAvailable(slots, req.Date, req.DurationMinutes, appointments)

	uc.logger.Info("GetAvailableSlots: %d of %d slots available for provider=%d on %s",
		len(available), len(slots), req.ProviderID, req.Date.Format(domain.DateFormat))

	return uc.response(req, available), nil
}

func (uc *UseCase) response(req *Request, slots []types.TimeString) *Response {
	return &Response{
		ProviderID:      req.ProviderID,
		Date:            req.Date,
		DurationMinutes: req.DurationMinutes,
		Slots:           slots,
	}
}
