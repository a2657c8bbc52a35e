package create_appointment

import (
	"time"

	"github.com/fadeline/booking-service/pkg/types"
)

// Request is a booking request for one provider, date and start time.
type Request struct {
	ProviderID      int64
	ClientRef       string
	Date            time.Time // calendar date, time component ignored
	StartTime       types.TimeString
	DurationMinutes int
	Services        []string
	Notes           *string
}

// Response is the confirmed appointment.
type Response struct {
	ID              int64
	Reference       string // externally visible booking id
	ProviderID      int64
	ClientRef       string
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          string
	Services        []string
	Notes           *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
