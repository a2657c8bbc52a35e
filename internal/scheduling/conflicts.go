package scheduling

import (
	"time"

	"github.com/fadeline/booking-service/internal/domain"
	"github.com/fadeline/booking-service/pkg/types"
)

// HasConflict reports whether the interval overlaps any active appointment.
// Cancelled and no-show appointments do not occupy their slot.
func HasConflict(interval domain.TimeInterval, existing []*domain.Appointment) bool {
	for _, appt := range existing {
		if !appt.IsActive() {
			continue
		}
		if interval.Overlaps(appt.Interval()) {
			return true
		}
	}
	return false
}

// FilterAvailable keeps the candidate slots whose interval
// [start, start+duration) overlaps no existing active appointment. Order is
// preserved.
//
// Complexity is O(slots x existing), which is fine at a few tens of
// appointments per provider per day. A merge sweep over start-sorted
// intervals would drop this to O(n log n) if provider days ever grow far
// beyond that.
func FilterAvailable(slots []types.TimeString, date time.Time, durationMinutes int, existing []*domain.Appointment) []types.TimeString {
	available := make([]types.TimeString, 0, len(slots))

	for _, slot := range slots {
		candidate := domain.NewTimeInterval(slot.On(date), durationMinutes)
		if HasConflict(candidate, existing) {
			continue
		}
		available = append(available, slot)
	}

	return available
}
