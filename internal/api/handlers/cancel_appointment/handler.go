package cancel_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/fadeline/booking-service/internal/api/handlers"
	"github.com/fadeline/booking-service/internal/api/middleware"
	"github.com/fadeline/booking-service/internal/service/appointments"
	"github.com/fadeline/booking-service/internal/service/appointments/models"
)

const (
	msgInvalidAppointmentID = "invalid appointment ID"
	msgInvalidRequestBody   = "invalid request body"
	msgNotFound             = "appointment not found"
	msgMissingClientRef     = "missing client reference"
	msgMissingProviderRef   = "missing provider reference"
	msgForbidden            = "access denied"
	msgCannotCancel         = "appointment can no longer be cancelled"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/appointments/{appointmentId}/cancel
// The authenticated client cancels their own appointment.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID, req, ok := h.parseRequest(w, r)
	if !ok {
		return
	}

	clientRef, ok := middleware.GetClientRef(r.Context())
	if !ok {
		h.logger.Warn("PATCH /appointments/{id}/cancel - Missing client reference")
		handlers.RespondUnauthorized(w, msgMissingClientRef)
		return
	}

	err := h.service.Cancel(r.Context(), appointmentID, &models.CancelAppointmentRequest{
		ClientRef:          clientRef,
		CancellationReason: req.CancellationReason,
	})
	if err != nil {
		h.respondError(w, appointmentID, err)
		return
	}

	h.logger.Info("PATCH /appointments/{id}/cancel - Cancelled by client: appointment_id=%d", appointmentID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

// HandleProvider PATCH /api/v1/appointments/{appointmentId}/cancel with an
// X-Provider-Ref header. The authenticated provider cancels an appointment
// in their own book; the service rejects a provider reference that does not
// own the appointment.
func (h *Handler) HandleProvider(w http.ResponseWriter, r *http.Request) {
	appointmentID, req, ok := h.parseRequest(w, r)
	if !ok {
		return
	}

	providerRef, ok := middleware.GetProviderRef(r.Context())
	if !ok {
		h.logger.Warn("PATCH /appointments/{id}/cancel - Missing provider reference")
		handlers.RespondUnauthorized(w, msgMissingProviderRef)
		return
	}

	if err := h.service.CancelByProvider(r.Context(), appointmentID, providerRef, req.CancellationReason); err != nil {
		h.respondError(w, appointmentID, err)
		return
	}

	h.logger.Info("PATCH /appointments/{id}/cancel - Cancelled by provider: appointment_id=%d, provider_id=%d",
		appointmentID, providerRef)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) parseRequest(w http.ResponseWriter, r *http.Request) (int64, *CancelAppointmentRequest, bool) {
	vars := mux.Vars(r)

	appointmentID, err := strconv.ParseInt(vars["appointmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /appointments/{id}/cancel - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return 0, nil, false
	}

	var req CancelAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments/{id}/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return 0, nil, false
	}

	return appointmentID, &req, true
}

func (h *Handler) respondError(w http.ResponseWriter, appointmentID int64, err error) {
	switch {
	case errors.Is(err, appointments.ErrAppointmentNotFound):
		h.logger.Warn("PATCH /appointments/{id}/cancel - Not found: appointment_id=%d", appointmentID)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, appointments.ErrAccessDenied):
		h.logger.Warn("PATCH /appointments/{id}/cancel - Access denied: appointment_id=%d", appointmentID)
		handlers.RespondForbidden(w, msgForbidden)

	case errors.Is(err, appointments.ErrCannotCancel):
		h.logger.Warn("PATCH /appointments/{id}/cancel - Cannot cancel: appointment_id=%d", appointmentID)
		handlers.RespondError(w, http.StatusConflict, msgCannotCancel)

	default:
		h.logger.Error("PATCH /appointments/{id}/cancel - Failed: appointment_id=%d, error=%v", appointmentID, err)
		handlers.RespondInternalError(w)
	}
}
