package get_provider_appointments

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/fadeline/booking-service/internal/api/handlers"
	"github.com/fadeline/booking-service/internal/domain"
	"github.com/fadeline/booking-service/internal/service/appointments"
	"github.com/fadeline/booking-service/internal/service/appointments/models"
)

const (
	msgInvalidProviderID = "invalid provider ID"
	msgInvalidDate       = "invalid date, expected YYYY-MM-DD"
	msgProviderNotFound  = "provider not found"
	msgInvalidStatus     = "invalid status filter"
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

// Handle GET /api/v1/providers/{providerId}/appointments
// Query params: date (optional, YYYY-MM-DD), status (optional),
// includeInactive (optional bool)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	providerID, err := strconv.ParseInt(vars["providerId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /providers/{id}/appointments - Invalid provider ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProviderID)
		return
	}

	req := &models.GetProviderAppointmentsRequest{ProviderID: providerID}

	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /providers/{id}/appointments - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = &date
	}

	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	req.IncludeInactive = r.URL.Query().Get("includeInactive") == "true"

	result, err := h.service.GetProviderAppointments(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrProviderNotFound):
			h.logger.Warn("GET /providers/{id}/appointments - Provider not found: provider_id=%d", providerID)
			handlers.RespondNotFound(w, msgProviderNotFound)

		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /providers/{id}/appointments - Invalid filter: provider_id=%d", providerID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /providers/{id}/appointments - Failed: provider_id=%d, error=%v", providerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /providers/{id}/appointments - Retrieved %d appointments: provider_id=%d",
		len(result.Appointments), providerID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
