package schedule

import "errors"

var (
	// ErrPolicyNotFound is returned when no schedule policy exists and the
	// caller asked for a configured one explicitly.
	ErrPolicyNotFound = errors.New("schedule policy not found")

	// ErrProviderNotFound is returned when the provider is not found.
	ErrProviderNotFound = errors.New("provider not found")

	// ErrInvalidInput is returned on malformed policy data.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service failures.
	ErrInternal = errors.New("service: internal error")
)
