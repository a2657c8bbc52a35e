package providerdirectory

import "errors"

var (
	// ErrProviderNotFound is returned when the directory has no such provider.
	ErrProviderNotFound = errors.New("provider not found")

	// ErrProviderInactive is returned for deactivated provider profiles.
	ErrProviderInactive = errors.New("provider is inactive")

	// ErrInternal is returned on client-side failures.
	ErrInternal = errors.New("providerdirectory client: internal error")

	// ErrInvalidResponse is returned when the directory answers with an
	// unexpected status or body.
	ErrInvalidResponse = errors.New("providerdirectory client: invalid response")
)
