package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/fadeline/booking-service/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusConfirmed           AppointmentStatus = "confirmed"
	StatusCompleted           AppointmentStatus = "completed"
	StatusCancelledByClient   AppointmentStatus = "cancelled_by_client"
	StatusCancelledByProvider AppointmentStatus = "cancelled_by_provider"
	StatusNoShow              AppointmentStatus = "no_show"
)

// Appointment represents a confirmed (or historical) booking on a
// provider's calendar.
type Appointment struct {
	ID              int64
	Reference       uuid.UUID // externally visible booking id
	ProviderID      int64
	ClientRef       string
	Date            time.Time // calendar date, time component ignored
	StartTime       types.TimeString
	DurationMinutes int
	Status          AppointmentStatus

	// Denormalized for history: service names as booked, not FK-resolved.
	Services []string
	Notes    *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Interval returns the occupied interval [start, start+duration) anchored
// to the appointment's date.
func (a *Appointment) Interval() TimeInterval {
	return NewTimeInterval(a.StartTime.On(a.Date), a.DurationMinutes)
}

// IsActive reports whether the appointment still occupies its slot.
// Cancelled and no-show appointments never conflict with new bookings.
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelledByClient &&
		a.Status != StatusCancelledByProvider &&
		a.Status != StatusNoShow
}

// CanBeCancelled reports whether cancellation is still allowed.
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusConfirmed
}

// IsCancelled reports whether either side cancelled the appointment.
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelledByClient || a.Status == StatusCancelledByProvider
}

// ProviderAppointmentsFilter is the filter for listing a provider's
// appointments.
type ProviderAppointmentsFilter struct {
	ProviderID      int64
	Date            *time.Time // single calendar date; nil = no restriction
	Status          *AppointmentStatus
	IncludeInactive bool // include cancelled and no-show rows
}
