package create_appointment

import (
	"time"

	"github.com/fadeline/booking-service/internal/domain"
	createAppointment "github.com/fadeline/booking-service/internal/usecase/create_appointment"
	"github.com/fadeline/booking-service/pkg/types"
)

// CreateAppointmentRequest is the HTTP request model. StartTime is an
// RFC 3339 timestamp; its calendar date and wall-clock time (in the
// timestamp's own offset) select the slot.
type CreateAppointmentRequest struct {
	ProviderID      int64    `json:"providerId"`
	StartTime       string   `json:"startTime"` // "2025-10-15T10:00:00+02:00"
	DurationMinutes int      `json:"durationMinutes"`
	Services        []string `json:"services"`
	Notes           *string  `json:"notes,omitempty"`
}

// AppointmentResponse is the HTTP response model.
type AppointmentResponse struct {
	ID              int64    `json:"id"`
	Reference       string   `json:"reference"`
	ProviderID      int64    `json:"providerId"`
	ClientRef       string   `json:"clientRef"`
	Date            string   `json:"date"`
	StartTime       string   `json:"startTime"`
	DurationMinutes int      `json:"durationMinutes"`
	Status          string   `json:"status"`
	Services        []string `json:"services"`
	Notes           *string  `json:"notes,omitempty"`
	CreatedAt       string   `json:"createdAt"`
	UpdatedAt       string   `json:"updatedAt"`
}

// ToUseCaseRequest parses the HTTP request into the usecase request.
// The client reference comes from the auth middleware, not the body.
func (r *CreateAppointmentRequest) ToUseCaseRequest(clientRef string) (*createAppointment.Request, error) {
	start, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, err
	}

	// Pure calendar date, anchored in UTC like stored appointment dates:
	// only the day components matter downstream.
	date := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)

	return &createAppointment.Request{
		ProviderID:      r.ProviderID,
		ClientRef:       clientRef,
		Date:            date,
		StartTime:       types.NewTimeString(start),
		DurationMinutes: r.DurationMinutes,
		Services:        r.Services,
		Notes:           r.Notes,
	}, nil
}

// FromUseCaseResponse converts the usecase response into the HTTP model.
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              resp.ID,
		Reference:       resp.Reference,
		ProviderID:      resp.ProviderID,
		ClientRef:       resp.ClientRef,
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		Services:        resp.Services,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
