package scheduling

import (
	"fmt"
	"time"

	"github.com/fadeline/booking-service/internal/domain"
	"github.com/fadeline/booking-service/pkg/types"
)

// BookingRequest is a prospective booking checked by Validate.
type BookingRequest struct {
	ProviderID      int64
	Date            time.Time // calendar date of the appointment
	StartTime       types.TimeString
	DurationMinutes int
}

// Validate accepts or rejects a single booking request against the policy
// and a snapshot of the provider's appointments for that date. The first
// failed check wins, in this order: invalid request, closed day, outside
// business hours, past start time (then minimum notice), slot conflict.
// A nil return means accepted.
//
// Validate is pure: the caller must fetch `existing` immediately before the
// call and perform the write under a serializable transaction or an
// exclusion constraint. Two racing requests can both pass this check; the
// persistence layer decides the winner.
func Validate(req BookingRequest, policy *domain.SchedulePolicy, existing []*domain.Appointment, now time.Time) error {
	// 1. Malformed input is a caller error, never retried.
	if req.ProviderID <= 0 {
		return fmt.Errorf("%w: provider id must be positive", ErrInvalidRequest)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidRequest)
	}
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: start time is required", ErrInvalidRequest)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	if req.DurationMinutes <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrInvalidRequest)
	}

	// 2. Closed day.
	window, open := policy.BusinessWindow(req.Date)
	if !open {
		return ErrShopClosed
	}

	// 3. The whole service must fit inside the business window; ending
	// exactly at closing time is allowed.
	requested := domain.NewTimeInterval(req.StartTime.On(req.Date), req.DurationMinutes)
	if !window.Contains(requested) {
		return ErrOutsideBusinessHours
	}

	// 4. Start times strictly before now are gone; starting exactly at
	// now is still bookable. Lead time compares calendar day plus wall
	// clock, so a request date anchored in one location and a clock read
	// in another cannot shift the boundary. Covers past dates as well.
	lead := minutesUntil(req.Date, req.StartTime, now)
	if lead < 0 {
		return ErrSlotInPast
	}
	if policy.MinNoticeMinutes > 0 && lead < policy.MinNoticeMinutes {
		return fmt.Errorf("%w: book at least %d minutes ahead", ErrTooSoon, policy.MinNoticeMinutes)
	}

	// 5. Overlap with the snapshot.
	if HasConflict(requested, existing) {
		return ErrSlotConflict
	}

	return nil
}
