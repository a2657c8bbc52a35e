package create_appointment

import (
	"errors"
	"net/http"

	"github.com/fadeline/booking-service/internal/api/handlers"
	"github.com/fadeline/booking-service/internal/api/middleware"
	createAppointment "github.com/fadeline/booking-service/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody   = "invalid request body"
	msgInvalidStartTime     = "invalid startTime, expected an RFC 3339 timestamp"
	msgMissingClientRef     = "missing client reference"
	msgSlotTaken            = "this time was just taken, please pick another slot"
	msgProviderNotFound     = "provider not found"
	msgProviderInactive     = "provider is not taking bookings"
	msgShopClosed           = "provider is closed on this date"
	msgOutsideBusinessHours = "requested time is outside business hours"
	msgSlotInPast           = "requested time is in the past"
	msgTooSoon              = "requested time is too soon, book further ahead"
	msgDateTooFar           = "date is too far in the future"
	msgInvalidInput         = "invalid appointment data"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientRef, ok := middleware.GetClientRef(r.Context())
	if !ok {
		h.logger.Warn("POST /appointments - Missing client reference")
		handlers.RespondUnauthorized(w, msgMissingClientRef)
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(clientRef)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse start time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStartTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrSlotConflict):
			h.logger.Warn("POST /appointments - Slot conflict: provider_id=%d, client=%s, start=%s",
				req.ProviderID, clientRef, req.StartTime)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, createAppointment.ErrProviderNotFound):
			h.logger.Warn("POST /appointments - Provider not found: provider_id=%d", req.ProviderID)
			handlers.RespondNotFound(w, msgProviderNotFound)

		case errors.Is(err, createAppointment.ErrProviderInactive):
			h.logger.Warn("POST /appointments - Provider inactive: provider_id=%d", req.ProviderID)
			handlers.RespondNotFound(w, msgProviderInactive)

		case errors.Is(err, createAppointment.ErrShopClosed):
			h.logger.Warn("POST /appointments - Provider closed: provider_id=%d, start=%s", req.ProviderID, req.StartTime)
			handlers.RespondBadRequest(w, msgShopClosed)

		case errors.Is(err, createAppointment.ErrOutsideBusinessHours):
			h.logger.Warn("POST /appointments - Outside business hours: provider_id=%d, start=%s", req.ProviderID, req.StartTime)
			handlers.RespondBadRequest(w, msgOutsideBusinessHours)

		case errors.Is(err, createAppointment.ErrSlotInPast):
			h.logger.Warn("POST /appointments - Slot in past: provider_id=%d, start=%s", req.ProviderID, req.StartTime)
			handlers.RespondBadRequest(w, msgSlotInPast)

		case errors.Is(err, createAppointment.ErrTooSoon):
			h.logger.Warn("POST /appointments - Too soon: provider_id=%d, start=%s", req.ProviderID, req.StartTime)
			handlers.RespondBadRequest(w, msgTooSoon)

		case errors.Is(err, createAppointment.ErrDateTooFarInFuture):
			h.logger.Warn("POST /appointments - Date too far: provider_id=%d, start=%s", req.ProviderID, req.StartTime)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: provider_id=%d, error=%v", req.ProviderID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: provider_id=%d, client=%s, error=%v",
				req.ProviderID, clientRef, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created: appointment_id=%d, reference=%s, provider_id=%d, client=%s",
		result.ID, result.Reference, req.ProviderID, clientRef)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
