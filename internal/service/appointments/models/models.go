package models

import (
	"errors"
	"time"

	"github.com/fadeline/booking-service/internal/domain"
)

var (
	// ErrInvalidStatus is returned on an unknown status value.
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// Request models

// CancelAppointmentRequest cancels an appointment on behalf of the client
// identified by ClientRef.
type CancelAppointmentRequest struct {
	ClientRef          string `json:"clientRef"`
	CancellationReason string `json:"cancellationReason"`
}

// UpdateStatusRequest moves an appointment to a new status; provider-side
// only (completed, no_show).
type UpdateStatusRequest struct {
	ProviderID int64  `json:"providerId"`
	Status     string `json:"status"`
}

// GetClientAppointmentsRequest lists a client's appointment history.
type GetClientAppointmentsRequest struct {
	ClientRef string  `json:"clientRef"`
	Status    *string `json:"status,omitempty"`
}

// GetProviderAppointmentsRequest lists a provider's appointments. With a
// Date the result is the day agenda in start-time order.
type GetProviderAppointmentsRequest struct {
	ProviderID      int64      `json:"providerId"`
	Date            *time.Time `json:"date,omitempty"`
	Status          *string    `json:"status,omitempty"`
	IncludeInactive bool       `json:"includeInactive,omitempty"`
}

// ToDomainFilter converts the request into the repository filter.
func (r *GetProviderAppointmentsRequest) ToDomainFilter() (domain.ProviderAppointmentsFilter, error) {
	filter := domain.ProviderAppointmentsFilter{
		ProviderID:      r.ProviderID,
		Date:            r.Date,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainAppointmentStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response models

// AppointmentResponse is the appointment DTO.
type AppointmentResponse struct {
	ID              int64  `json:"id"`
	Reference       string `json:"reference"`
	ProviderID      int64  `json:"providerId"`
	ClientRef       string `json:"clientRef"`
	Date            string `json:"date"`      // "2025-10-15"
	StartTime       string `json:"startTime"` // "10:00"
	DurationMinutes int    `json:"durationMinutes"`
	Status          string `json:"status"`

	Services []string `json:"services"`
	Notes    *string  `json:"notes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentListResponse is a list of appointments.
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// FromDomainAppointment converts the domain model into the DTO.
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	resp := &AppointmentResponse{
		ID:                 a.ID,
		Reference:          a.Reference.String(),
		ProviderID:         a.ProviderID,
		ClientRef:          a.ClientRef,
		Date:               a.Date.Format(domain.DateFormat),
		StartTime:          a.StartTime.String(),
		DurationMinutes:    a.DurationMinutes,
		Status:             string(a.Status),
		Services:           a.Services,
		Notes:              a.Notes,
		CancellationReason: a.CancellationReason,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}

	if resp.Services == nil {
		resp.Services = []string{}
	}

	if a.CancelledAt != nil {
		cancelledStr := a.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainAppointmentList converts a list of domain models into the DTO.
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
	}

	for _, appt := range appointments {
		if apptResp := FromDomainAppointment(appt); apptResp != nil {
			resp.Appointments = append(resp.Appointments, *apptResp)
		}
	}

	return resp
}

// ToDomainAppointmentStatus converts a string into a validated status.
func ToDomainAppointmentStatus(status string) (domain.AppointmentStatus, error) {
	s := domain.AppointmentStatus(status)

	validStatuses := []domain.AppointmentStatus{
		domain.StatusConfirmed,
		domain.StatusCompleted,
		domain.StatusCancelledByClient,
		domain.StatusCancelledByProvider,
		domain.StatusNoShow,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
