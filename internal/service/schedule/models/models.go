package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fadeline/booking-service/internal/domain"
	"github.com/fadeline/booking-service/pkg/types"
)

var (
	// ErrInvalidWeekday is returned on an unknown weekday name.
	ErrInvalidWeekday = errors.New("invalid weekday name")
)

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// UpdatePolicyRequest replaces the provider's schedule policy. An empty
// openDays list is valid and means the provider takes no bookings.
type UpdatePolicyRequest struct {
	OpenDays           []string `json:"openDays"`
	DayStart           string   `json:"dayStart"` // "09:00"
	DayEnd             string   `json:"dayEnd"`   // "18:00"
	SlotStepMinutes    int      `json:"slotStepMinutes"`
	MinNoticeMinutes   int      `json:"minNoticeMinutes"`
	AdvanceBookingDays int      `json:"advanceBookingDays"`
}

// ToDomainPolicy converts the request into a domain policy for the given
// provider. Weekday names are case-insensitive.
func (r *UpdatePolicyRequest) ToDomainPolicy(providerID int64) (*domain.SchedulePolicy, error) {
	openDays := make(domain.WeekdaySet, len(r.OpenDays))
	for _, name := range r.OpenDays {
		day, ok := weekdayNames[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidWeekday, name)
		}
		openDays[day] = true
	}

	return &domain.SchedulePolicy{
		ProviderID:         providerID,
		OpenDays:           openDays,
		DayStart:           types.TimeString(r.DayStart),
		DayEnd:             types.TimeString(r.DayEnd),
		SlotStepMinutes:    r.SlotStepMinutes,
		MinNoticeMinutes:   r.MinNoticeMinutes,
		AdvanceBookingDays: r.AdvanceBookingDays,
	}, nil
}

// PolicyResponse is the schedule policy DTO.
type PolicyResponse struct {
	ProviderID         int64    `json:"providerId"`
	OpenDays           []string `json:"openDays"`
	DayStart           string   `json:"dayStart"`
	DayEnd             string   `json:"dayEnd"`
	SlotStepMinutes    int      `json:"slotStepMinutes"`
	MinNoticeMinutes   int      `json:"minNoticeMinutes"`
	AdvanceBookingDays int      `json:"advanceBookingDays"`

	// Default reports that the provider has not configured a policy and
	// the standard working hours apply.
	Default bool `json:"default,omitempty"`
}

// FromDomainPolicy converts the domain policy into the DTO.
func FromDomainPolicy(p *domain.SchedulePolicy, isDefault bool) *PolicyResponse {
	if p == nil {
		return nil
	}

	days := p.OpenDays.Days()
	names := make([]string, len(days))
	for i, d := range days {
		names[i] = strings.ToLower(d.String())
	}

	return &PolicyResponse{
		ProviderID:         p.ProviderID,
		OpenDays:           names,
		DayStart:           p.DayStart.String(),
		DayEnd:             p.DayEnd.String(),
		SlotStepMinutes:    p.SlotStepMinutes,
		MinNoticeMinutes:   p.MinNoticeMinutes,
		AdvanceBookingDays: p.AdvanceBookingDays,
		Default:            isDefault,
	}
}
