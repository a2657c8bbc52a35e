package appointments

import "errors"

var (
	// ErrAppointmentNotFound is returned when the appointment is not found.
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrProviderNotFound is returned when the provider is not found.
	ErrProviderNotFound = errors.New("provider not found")

	// ErrAccessDenied is returned when the caller has no access to the appointment.
	ErrAccessDenied = errors.New("access denied")

	// ErrCannotCancel is returned when the appointment can no longer be cancelled.
	ErrCannotCancel = errors.New("appointment cannot be cancelled")

	// ErrInvalidStatus is returned on an unknown status value.
	ErrInvalidStatus = errors.New("invalid appointment status")

	// ErrInvalidInput is returned on malformed input data.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service failures.
	ErrInternal = errors.New("service: internal error")
)
