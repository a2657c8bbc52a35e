package scheduling

import "errors"

// Rejection reasons returned by Validate. These are expected business
// outcomes, not faults: callers map them to user-facing responses and the
// conflict case to a "refresh and retry" flow.
var (
	// ErrInvalidRequest means the request is malformed (missing fields,
	// non-positive duration). Fix the input; never retried.
	ErrInvalidRequest = errors.New("scheduling: invalid booking request")

	// ErrShopClosed means the provider does not work on the requested day.
	ErrShopClosed = errors.New("scheduling: provider is closed on this date")

	// ErrOutsideBusinessHours means the requested interval does not fit
	// inside the provider's business window for that day.
	ErrOutsideBusinessHours = errors.New("scheduling: slot is outside business hours")

	// ErrSlotInPast means the requested start time has already elapsed.
	ErrSlotInPast = errors.New("scheduling: slot is in the past")

	// ErrTooSoon means the slot starts within the policy's minimum
	// booking notice.
	ErrTooSoon = errors.New("scheduling: slot starts within the minimum booking notice")

	// ErrSlotConflict means the requested interval overlaps an existing
	// active appointment. Recoverable: refresh available slots and retry.
	ErrSlotConflict = errors.New("scheduling: slot conflicts with an existing appointment")
)
