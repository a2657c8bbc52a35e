package domain

import (
	"fmt"
	"time"

	"github.com/fadeline/booking-service/pkg/types"
)

// SchedulePolicy is a provider's recurring working-hours configuration:
// which weekdays the chair is open, the daily window, and the slot grid.
// It is owned by the provider settings and read-only to the scheduling
// engine; the only mutation path is the schedule-update operation.
type SchedulePolicy struct {
	ID              int64
	ProviderID      int64
	OpenDays        WeekdaySet
	DayStart        types.TimeString
	DayEnd          types.TimeString
	SlotStepMinutes int

	// MinNoticeMinutes pushes the earliest bookable slot this far past
	// "now" on the current day. 0 disables the rule.
	MinNoticeMinutes int

	// AdvanceBookingDays caps how far ahead a date may be booked.
	// 0 means unlimited.
	AdvanceBookingDays int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// WeekdaySet is the set of weekdays a provider works.
type WeekdaySet map[time.Weekday]bool

// NewWeekdaySet builds a set from the listed days.
func NewWeekdaySet(days ...time.Weekday) WeekdaySet {
	set := make(WeekdaySet, len(days))
	for _, d := range days {
		set[d] = true
	}
	return set
}

// Contains reports whether d is in the set.
func (s WeekdaySet) Contains(d time.Weekday) bool {
	return s[d]
}

// IsEmpty reports whether no day is open. An empty set is a valid policy:
// the provider is permanently closed.
func (s WeekdaySet) IsEmpty() bool {
	for _, open := range s {
		if open {
			return false
		}
	}
	return true
}

// Days returns the open days in Sunday-first order, matching time.Weekday.
func (s WeekdaySet) Days() []time.Weekday {
	days := make([]time.Weekday, 0, len(s))
	for d := time.Sunday; d <= time.Saturday; d++ {
		if s[d] {
			days = append(days, d)
		}
	}
	return days
}

// IsOpen reports whether the provider works on the date's weekday.
func (p *SchedulePolicy) IsOpen(date time.Time) bool {
	return p.OpenDays.Contains(date.Weekday())
}

// BusinessWindow returns the bookable interval of the given calendar date,
// [date@DayStart, date@DayEnd), in the date's location. ok is false when
// the provider is closed that day; callers must treat the window as empty.
func (p *SchedulePolicy) BusinessWindow(date time.Time) (TimeInterval, bool) {
	if !p.IsOpen(date) {
		return TimeInterval{}, false
	}
	return TimeInterval{
		Start: p.DayStart.On(date),
		End:   p.DayEnd.On(date),
	}, true
}

// Validate enforces the policy invariants: a well-formed daily window with
// DayStart < DayEnd, a positive slot step within bounds, and non-negative
// notice/advance limits.
func (p *SchedulePolicy) Validate() error {
	if err := p.DayStart.Validate(); err != nil {
		return fmt.Errorf("day start: %w", err)
	}
	if err := p.DayEnd.Validate(); err != nil {
		return fmt.Errorf("day end: %w", err)
	}
	if !p.DayStart.IsBefore(p.DayEnd) {
		return fmt.Errorf("day start %s must be before day end %s", p.DayStart, p.DayEnd)
	}
	if p.SlotStepMinutes < MinSlotStepMinutes || p.SlotStepMinutes > MaxSlotStepMinutes {
		return fmt.Errorf("slot step must be between %d and %d minutes, got %d",
			MinSlotStepMinutes, MaxSlotStepMinutes, p.SlotStepMinutes)
	}
	if p.MinNoticeMinutes < 0 || p.MinNoticeMinutes > MaxMinNoticeMinutes {
		return fmt.Errorf("min booking notice must be between 0 and %d minutes, got %d",
			MaxMinNoticeMinutes, p.MinNoticeMinutes)
	}
	if p.AdvanceBookingDays < 0 || p.AdvanceBookingDays > MaxAdvanceBookingDays {
		return fmt.Errorf("advance booking limit must be between 0 and %d days, got %d",
			MaxAdvanceBookingDays, p.AdvanceBookingDays)
	}
	return nil
}

// DefaultSchedulePolicy is the policy applied to providers that have not
// configured one yet.
func DefaultSchedulePolicy(providerID int64) *SchedulePolicy {
	return &SchedulePolicy{
		ProviderID: providerID,
		OpenDays: NewWeekdaySet(
			time.Monday, time.Tuesday, time.Wednesday,
			time.Thursday, time.Friday, time.Saturday,
		),
		DayStart:           DefaultDayStart,
		DayEnd:             DefaultDayEnd,
		SlotStepMinutes:    DefaultSlotStepMinutes,
		MinNoticeMinutes:   DefaultMinNoticeMinutes,
		AdvanceBookingDays: DefaultAdvanceBookingDays,
	}
}
