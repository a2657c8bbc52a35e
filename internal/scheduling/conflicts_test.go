package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fadeline/booking-service/internal/domain"
	"github.com/fadeline/booking-service/pkg/types"
)

func appointment(start types.TimeString, durationMinutes int, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:              1,
		ProviderID:      1,
		Date:            wednesday,
		StartTime:       start,
		DurationMinutes: durationMinutes,
		Status:          status,
	}
}

func TestFilterAvailable_ExcludesExactlyTheBookedSlot(t *testing.T) {
	policy := testPolicy("09:00", "12:00", 30)
	now := clock(wednesday, 7, 0)
	slots := GenerateSlots(policy, wednesday, 30, now)
	require.Equal(t,
		[]types.TimeString{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"},
		slots)

	existing := []*domain.Appointment{
		appointment("10:00", 30, domain.StatusConfirmed),
	}

	available := FilterAvailable(slots, wednesday, 30, existing)

	assert.Equal(t,
		[]types.TimeString{"09:00", "09:30", "10:30", "11:00", "11:30"},
		available)
}

func TestFilterAvailable_LongServiceBlocksNeighbours(t *testing.T) {
	slots := []types.TimeString{"09:00", "09:30", "10:00", "10:30", "11:00"}
	existing := []*domain.Appointment{
		appointment("10:00", 30, domain.StatusConfirmed),
	}

	// A 60-minute candidate starting 09:30 would still be running at 10:00.
	available := FilterAvailable(slots, wednesday, 60, existing)

	assert.Equal(t, []types.TimeString{"09:00", "10:30", "11:00"}, available)
}

func TestFilterAvailable_CancelledAppointmentsFreeTheSlot(t *testing.T) {
	slots := []types.TimeString{"10:00", "10:30"}
	existing := []*domain.Appointment{
		appointment("10:00", 30, domain.StatusCancelledByClient),
		appointment("10:30", 30, domain.StatusNoShow),
	}

	available := FilterAvailable(slots, wednesday, 30, existing)

	assert.Equal(t, slots, available)
}

func TestFilterAvailable_NoExisting(t *testing.T) {
	slots := []types.TimeString{"09:00", "09:30"}
	assert.Equal(t, slots, FilterAvailable(slots, wednesday, 30, nil))
}

func TestHasConflict(t *testing.T) {
	existing := []*domain.Appointment{
		appointment("10:00", 30, domain.StatusConfirmed),
	}

	conflict := func(start types.TimeString, durationMinutes int) bool {
		interval := domain.NewTimeInterval(start.On(wednesday), durationMinutes)
		return HasConflict(interval, existing)
	}

	assert.True(t, conflict("10:00", 30))
	assert.True(t, conflict("10:15", 30))
	assert.True(t, conflict("09:45", 30))

	// Back-to-back intervals touch but do not overlap.
	assert.False(t, conflict("09:30", 30))
	assert.False(t, conflict("10:30", 30))

	assert.False(t, conflict("11:00", 30))
	assert.False(t, HasConflict(domain.NewTimeInterval(types.TimeString("10:00").On(wednesday), 30), nil))
}

func TestHasConflict_DifferentTimezonesSameInstant(t *testing.T) {
	// Appointment stored against a date in UTC; candidate built in a
	// fixed-offset zone pointing at the same instant still conflicts.
	offset := time.FixedZone("UTC+2", 2*3600)
	sameDay := time.Date(2025, 10, 15, 0, 0, 0, 0, offset)

	existing := []*domain.Appointment{
		appointment("10:00", 30, domain.StatusConfirmed),
	}
	candidate := domain.NewTimeInterval(types.TimeString("12:00").On(sameDay), 30)

	assert.True(t, HasConflict(candidate, existing))
}
