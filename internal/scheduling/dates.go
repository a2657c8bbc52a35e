package scheduling

import (
	"time"

	"github.com/fadeline/booking-service/pkg/types"
)

const minutesPerDay = 24 * 60

// DaysBetween returns the number of calendar days from a's day to b's day
// as each value's own wall clock shows it (negative when b is earlier).
// Only the date components count, so values anchored in different
// locations compare the way their readers see them.
func DaysBetween(a, b time.Time) int {
	ad := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bd := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bd.Sub(ad).Hours() / 24)
}

// IsDateInPast reports whether date's calendar day is before now's.
func IsDateInPast(date, now time.Time) bool {
	return DaysBetween(now, date) < 0
}

// minutesUntil is the wall-clock lead time from now to the slot starting
// at start on date, in minutes; negative once the slot has begun. Both
// sides reduce to calendar day plus time of day, so a date anchored in
// one location and a clock read in another cannot shift the result.
func minutesUntil(date time.Time, start types.TimeString, now time.Time) int {
	nowMinutes := now.Hour()*60 + now.Minute()
	return DaysBetween(now, date)*minutesPerDay + start.Minutes() - nowMinutes
}
