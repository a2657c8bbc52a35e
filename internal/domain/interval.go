package domain

import "time"

// TimeInterval is a half-open interval [Start, End) in absolute time.
// Invariant: End is after Start.
//
// Every conflict decision in the service goes through Overlaps; the slot
// filter and the booking validator must never re-derive the comparison,
// otherwise client-estimated and server-enforced availability can diverge.
type TimeInterval struct {
	Start time.Time
	End   time.Time
}

// NewTimeInterval builds the interval [start, start+durationMinutes).
func NewTimeInterval(start time.Time, durationMinutes int) TimeInterval {
	return TimeInterval{
		Start: start,
		End:   start.Add(time.Duration(durationMinutes) * time.Minute),
	}
}

// IsValid reports whether the interval satisfies End > Start.
func (i TimeInterval) IsValid() bool {
	return i.End.After(i.Start)
}

// Overlaps reports whether the two half-open intervals intersect.
// Intervals that merely touch ([9:00,10:00) and [10:00,11:00)) do not
// overlap.
func (i TimeInterval) Overlaps(other TimeInterval) bool {
	return i.Start.Before(other.End) && i.End.After(other.Start)
}

// Contains reports whether other lies fully inside i.
func (i TimeInterval) Contains(other TimeInterval) bool {
	return !other.Start.Before(i.Start) && !other.End.After(i.End)
}

// Duration returns the interval length.
func (i TimeInterval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}
