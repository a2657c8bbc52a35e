package types

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// Layout is the textual form of a TimeString (24-hour, zero-padded).
const Layout = "15:04"

const minutesPerDay = 24 * 60

// TimeString represents a time of day with minute granularity ("09:00",
// "14:30"). It carries no date and no location: comparisons and arithmetic
// are local-clock operations, which is exactly what a shop's working-hours
// math needs.
type TimeString string

// NewTimeString builds a TimeString from the clock component of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(Layout))
}

// NewTimeStringFromString parses s ("HH:MM") into a TimeString.
func NewTimeStringFromString(s string) (TimeString, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return "", fmt.Errorf("invalid time string %q: expected HH:MM", s)
	}
	return NewTimeString(t), nil
}

// NewTimeStringFromMinutes builds a TimeString from minutes since midnight.
func NewTimeStringFromMinutes(m int) (TimeString, error) {
	if m < 0 || m >= minutesPerDay {
		return "", fmt.Errorf("minutes out of day range: %d", m)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", m/60, m%60)), nil
}

// IsZero reports whether the value is unset.
func (ts TimeString) IsZero() bool {
	return ts == ""
}

// Validate checks that the value is a well-formed HH:MM time.
func (ts TimeString) Validate() error {
	_, err := time.Parse(Layout, string(ts))
	if err != nil {
		return fmt.Errorf("invalid time string %q: expected HH:MM", string(ts))
	}
	return nil
}

// Minutes returns the value as minutes since midnight.
// Malformed values report -1; Validate first when the source is untrusted.
func (ts TimeString) Minutes() int {
	t, err := time.Parse(Layout, string(ts))
	if err != nil {
		return -1
	}
	return t.Hour()*60 + t.Minute()
}

// IsBefore reports whether ts is strictly earlier in the day than other.
func (ts TimeString) IsBefore(other TimeString) bool {
	return ts.Minutes() < other.Minutes()
}

// IsAfter reports whether ts is strictly later in the day than other.
func (ts TimeString) IsAfter(other TimeString) bool {
	return ts.Minutes() > other.Minutes()
}

// AddMinutes returns the time-of-day m minutes later.
// Results that leave the same day are an error: working-hours math here
// never crosses midnight.
func (ts TimeString) AddMinutes(m int) (TimeString, error) {
	base := ts.Minutes()
	if base < 0 {
		return "", fmt.Errorf("invalid time string %q: expected HH:MM", string(ts))
	}
	return NewTimeStringFromMinutes(base + m)
}

// On anchors the time-of-day to the given calendar date, in that date's
// location. Malformed values yield the date's midnight.
func (ts TimeString) On(date time.Time) time.Time {
	m := ts.Minutes()
	if m < 0 {
		m = 0
	}
	return time.Date(date.Year(), date.Month(), date.Day(), m/60, m%60, 0, 0, date.Location())
}

// String implements fmt.Stringer.
func (ts TimeString) String() string {
	return string(ts)
}

// Value implements driver.Valuer for TIME columns.
func (ts TimeString) Value() (driver.Value, error) {
	if err := ts.Validate(); err != nil {
		return nil, err
	}
	return string(ts), nil
}

// Scan implements sql.Scanner. Postgres TIME columns arrive as time.Time
// (lib/pq) or as text "HH:MM:SS" depending on the driver path.
func (ts *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*ts = ""
		return nil
	case time.Time:
		*ts = NewTimeString(v)
		return nil
	case []byte:
		return ts.scanString(string(v))
	case string:
		return ts.scanString(v)
	default:
		return fmt.Errorf("cannot scan %T into TimeString", src)
	}
}

func (ts *TimeString) scanString(s string) error {
	// Accept both HH:MM and HH:MM:SS, dropping seconds.
	if len(s) > len(Layout) {
		s = s[:len(Layout)]
	}
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*ts = parsed
	return nil
}
