package domain

import "github.com/fadeline/booking-service/pkg/types"

// Default schedule policy values, applied when a provider has not stored a
// policy yet.
const (
	DefaultSlotStepMinutes    = 30
	DefaultMinNoticeMinutes   = 0 // bookable up to the slot start
	DefaultAdvanceBookingDays = 0 // 0 = unlimited
)

// Default daily window for providers without a stored policy.
const (
	DefaultDayStart = types.TimeString("09:00")
	DefaultDayEnd   = types.TimeString("18:00")
)

// Business validation bounds.
const (
	MinSlotStepMinutes          = 5
	MaxSlotStepMinutes          = 240   // 4 hours
	MinServiceDurationMinutes   = 5
	MaxServiceDurationMinutes   = 480   // 8 hours
	MaxMinNoticeMinutes         = 10080 // 1 week
	MaxAdvanceBookingDays       = 365
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxServicesPerAppointment   = 10
)

// Time format constants.
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses are the statuses that free the slot: they are skipped
// when computing availability and conflicts.
var InactiveStatuses = []AppointmentStatus{
	StatusCancelledByClient,
	StatusCancelledByProvider,
	StatusNoShow,
}

// ActiveStatuses are the statuses that occupy the slot.
var ActiveStatuses = []AppointmentStatus{
	StatusConfirmed,
	StatusCompleted,
}
