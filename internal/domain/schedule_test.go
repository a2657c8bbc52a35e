package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fadeline/booking-service/pkg/types"
)

func weekdayPolicy() *SchedulePolicy {
	return &SchedulePolicy{
		ProviderID:      1,
		OpenDays:        NewWeekdaySet(time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday),
		DayStart:        "09:00",
		DayEnd:          "18:00",
		SlotStepMinutes: 30,
	}
}

func TestSchedulePolicy_IsOpen(t *testing.T) {
	policy := weekdayPolicy()

	wednesday := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	saturday := time.Date(2025, 10, 18, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2025, 10, 19, 0, 0, 0, 0, time.UTC)

	assert.True(t, policy.IsOpen(wednesday))
	assert.False(t, policy.IsOpen(saturday))
	assert.False(t, policy.IsOpen(sunday))
}

func TestSchedulePolicy_EmptyOpenDaysIsPermanentlyClosed(t *testing.T) {
	policy := weekdayPolicy()
	policy.OpenDays = NewWeekdaySet()

	assert.True(t, policy.OpenDays.IsEmpty())
	for day := 0; day < 7; day++ {
		date := time.Date(2025, 10, 13+day, 0, 0, 0, 0, time.UTC)
		assert.False(t, policy.IsOpen(date), "day %d", day)
	}
}

func TestSchedulePolicy_BusinessWindow(t *testing.T) {
	policy := weekdayPolicy()
	wednesday := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

	window, ok := policy.BusinessWindow(wednesday)
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 10, 15, 9, 0, 0, 0, time.UTC), window.Start)
	assert.Equal(t, time.Date(2025, 10, 15, 18, 0, 0, 0, time.UTC), window.End)

	sunday := time.Date(2025, 10, 19, 0, 0, 0, 0, time.UTC)
	_, ok = policy.BusinessWindow(sunday)
	assert.False(t, ok)
}

func TestSchedulePolicy_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, weekdayPolicy().Validate())
	})

	t.Run("start not before end", func(t *testing.T) {
		policy := weekdayPolicy()
		policy.DayStart = "18:00"
		policy.DayEnd = "09:00"
		assert.Error(t, policy.Validate())
	})

	t.Run("equal start and end", func(t *testing.T) {
		policy := weekdayPolicy()
		policy.DayStart = "09:00"
		policy.DayEnd = "09:00"
		assert.Error(t, policy.Validate())
	})

	t.Run("malformed time", func(t *testing.T) {
		policy := weekdayPolicy()
		policy.DayStart = types.TimeString("9am")
		assert.Error(t, policy.Validate())
	})

	t.Run("zero slot step", func(t *testing.T) {
		policy := weekdayPolicy()
		policy.SlotStepMinutes = 0
		assert.Error(t, policy.Validate())
	})

	t.Run("negative notice", func(t *testing.T) {
		policy := weekdayPolicy()
		policy.MinNoticeMinutes = -1
		assert.Error(t, policy.Validate())
	})
}

func TestDefaultSchedulePolicy(t *testing.T) {
	policy := DefaultSchedulePolicy(42)

	require.NoError(t, policy.Validate())
	assert.Equal(t, int64(42), policy.ProviderID)
	assert.False(t, policy.OpenDays.Contains(time.Sunday))
	assert.True(t, policy.OpenDays.Contains(time.Saturday))
	assert.Equal(t, DefaultSlotStepMinutes, policy.SlotStepMinutes)
}

func TestWeekdaySet_Days(t *testing.T) {
	set := NewWeekdaySet(time.Friday, time.Monday, time.Sunday)
	assert.Equal(t, []time.Weekday{time.Sunday, time.Monday, time.Friday}, set.Days())
}
