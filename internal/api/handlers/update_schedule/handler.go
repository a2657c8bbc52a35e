package update_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/fadeline/booking-service/internal/api/handlers"
	"github.com/fadeline/booking-service/internal/api/middleware"
	"github.com/fadeline/booking-service/internal/service/schedule"
	"github.com/fadeline/booking-service/internal/service/schedule/models"
)

const (
	msgInvalidProviderID  = "invalid provider ID"
	msgInvalidRequestBody = "invalid request body"
	msgMissingProviderRef = "missing provider reference"
	msgForbidden          = "access denied"
	msgProviderNotFound   = "provider not found"
	msgInvalidPolicy      = "invalid schedule policy"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/providers/{providerId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	providerID, err := strconv.ParseInt(vars["providerId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /providers/{id}/schedule - Invalid provider ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProviderID)
		return
	}

	providerRef, ok := middleware.GetProviderRef(r.Context())
	if !ok {
		h.logger.Warn("PUT /providers/{id}/schedule - Missing provider reference")
		handlers.RespondUnauthorized(w, msgMissingProviderRef)
		return
	}
	if providerRef != providerID {
		h.logger.Warn("PUT /providers/{id}/schedule - Access denied: provider_id=%d, caller=%d", providerID, providerRef)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	var req models.UpdatePolicyRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /providers/{id}/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	policy, err := h.service.UpdatePolicy(r.Context(), providerID, &req)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrProviderNotFound):
			h.logger.Warn("PUT /providers/{id}/schedule - Provider not found: provider_id=%d", providerID)
			handlers.RespondNotFound(w, msgProviderNotFound)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("PUT /providers/{id}/schedule - Invalid policy: provider_id=%d, error=%v", providerID, err)
			handlers.RespondBadRequest(w, msgInvalidPolicy)

		default:
			h.logger.Error("PUT /providers/{id}/schedule - Failed: provider_id=%d, error=%v", providerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /providers/{id}/schedule - Updated: provider_id=%d", providerID)
	handlers.RespondJSON(w, http.StatusOK, policy)
}
