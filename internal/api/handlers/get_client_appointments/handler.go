package get_client_appointments

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/fadeline/booking-service/internal/api/handlers"
	"github.com/fadeline/booking-service/internal/api/middleware"
	"github.com/fadeline/booking-service/internal/service/appointments"
	"github.com/fadeline/booking-service/internal/service/appointments/models"
)

const (
	msgMissingClientRef = "missing client reference"
	msgForbidden        = "access denied"
	msgInvalidStatus    = "invalid status filter"
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

// Handle GET /api/v1/clients/{clientRef}/appointments
// Query params: status (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	clientRef := vars["clientRef"]

	// A client only sees their own history.
	callerRef, ok := middleware.GetClientRef(r.Context())
	if !ok {
		h.logger.Warn("GET /clients/{ref}/appointments - Missing client reference")
		handlers.RespondUnauthorized(w, msgMissingClientRef)
		return
	}
	if callerRef != clientRef {
		h.logger.Warn("GET /clients/{ref}/appointments - Access denied: caller=%s, requested=%s", callerRef, clientRef)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	req := &models.GetClientAppointmentsRequest{ClientRef: clientRef}
	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.service.GetClientAppointments(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /clients/{ref}/appointments - Invalid status: client=%s", clientRef)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /clients/{ref}/appointments - Failed: client=%s, error=%v", clientRef, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /clients/{ref}/appointments - Retrieved %d appointments: client=%s",
		len(result.Appointments), clientRef)
	handlers.RespondJSON(w, http.StatusOK, result)
}
