package get_available_slots

import "errors"

var (
	// ErrProviderNotFound is returned when the provider is not found.
	ErrProviderNotFound = errors.New("provider not found")

	// ErrProviderInactive is returned for deactivated providers.
	ErrProviderInactive = errors.New("provider is inactive")

	// ErrDateTooFarInFuture is returned when the date exceeds the
	// provider's advance booking limit.
	ErrDateTooFarInFuture = errors.New("date is too far in the future")

	// ErrInvalidInput is returned on malformed input data.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal usecase failures.
	ErrInternal = errors.New("usecase: internal error")
)
