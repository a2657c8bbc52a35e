// Package scheduling is the availability and conflict-resolution engine.
//
// It is the single authoritative implementation of the slot math: the
// read-side usecase (available slots for a picker) and the write-side
// usecase (booking creation) both call into this package, so estimated and
// enforced availability cannot diverge. Every function here is pure over a
// snapshot of (policy, appointments, now) — no clock reads, no storage, no
// caching between calls.
package scheduling

import (
	"time"

	"github.com/fadeline/booking-service/internal/domain"
	"github.com/fadeline/booking-service/pkg/types"
)

// GenerateSlots produces the ordered candidate start times for a service of
// the given duration on the given calendar date.
//
// Candidates run from the day's opening time on the policy's slot grid and
// a start time is only offered when the full duration fits before closing
// (a slot ending exactly at closing time is allowed). For today, slots that
// start before now — or within the policy's minimum booking notice — are
// dropped; future dates are unaffected by the clock. Closed days and past
// dates yield an empty, non-nil slice.
func GenerateSlots(policy *domain.SchedulePolicy, date time.Time, durationMinutes int, now time.Time) []types.TimeString {
	slots := make([]types.TimeString, 0)

	if durationMinutes <= 0 {
		return slots
	}
	if IsDateInPast(date, now) {
		return slots
	}
	if !policy.IsOpen(date) {
		return slots
	}

	openMin := policy.DayStart.Minutes()
	closeMin := policy.DayEnd.Minutes()
	if openMin < 0 || closeMin < 0 || openMin >= closeMin {
		return slots
	}

	step := policy.SlotStepMinutes
	if step <= 0 {
		return slots
	}

	// Lead time is measured on calendar day plus wall clock, never on
	// absolute instants: a date parsed in UTC and a clock read in the
	// server's zone must not shift the cutoff. A slot starting exactly
	// at now is not in the past and stays bookable; the policy's
	// minimum notice pushes the cutoff further out, across midnight
	// when needed.
	for t := openMin; t+durationMinutes <= closeMin; t += step {
		slot, err := types.NewTimeStringFromMinutes(t)
		if err != nil {
			break
		}
		if minutesUntil(date, slot, now) < policy.MinNoticeMinutes {
			continue
		}
		slots = append(slots, slot)
	}

	return slots
}
