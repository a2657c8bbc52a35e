package create_appointment

import "errors"

var (
	// ErrProviderNotFound is returned when the provider is not found.
	ErrProviderNotFound = errors.New("provider not found")

	// ErrProviderInactive is returned for deactivated providers.
	ErrProviderInactive = errors.New("provider is inactive")

	// ErrShopClosed is returned when the provider does not work on the
	// requested date.
	ErrShopClosed = errors.New("provider is closed on this date")

	// ErrOutsideBusinessHours is returned when the requested interval does
	// not fit inside the working window.
	ErrOutsideBusinessHours = errors.New("requested time is outside business hours")

	// ErrSlotInPast is returned when the requested start has already
	// elapsed.
	ErrSlotInPast = errors.New("requested time is in the past")

	// ErrTooSoon is returned when the request violates the provider's
	// minimum booking notice.
	ErrTooSoon = errors.New("requested time is too soon")

	// ErrSlotConflict is returned when the requested interval overlaps an
	// existing appointment. The client should re-query availability and
	// pick another slot.
	ErrSlotConflict = errors.New("slot is already taken")

	// ErrDateTooFarInFuture is returned when the date exceeds the
	// provider's advance booking limit.
	ErrDateTooFarInFuture = errors.New("date is too far in the future")

	// ErrInvalidInput is returned on malformed input data.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal usecase failures.
	ErrInternal = errors.New("usecase: internal error")
)
