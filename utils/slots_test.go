package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuildSlots(t *testing.T) {
	slots := BuildSlots("09:00", "11:00", 30)
	assert.Equal(t, []string{"09:00 AM", "09:30 AM", "10:00 AM", "10:30 AM"}, slots)
}

func TestBuildSlotsAfternoon(t *testing.T) {
	slots := BuildSlots("18:00", "19:00", 30)
	assert.Equal(t, []string{"06:00 PM", "06:30 PM"}, slots)
}

func TestBuildSlotsClosingTimeExcluded(t *testing.T) {
	slots := BuildSlots("09:00", "10:00", 60)
	assert.Equal(t, []string{"09:00 AM"}, slots)
}

func TestBuildSlotsBadInput(t *testing.T) {
	assert.Nil(t, BuildSlots("not-a-time", "11:00", 30))
	assert.Nil(t, BuildSlots("09:00", "oops", 30))
	assert.Nil(t, BuildSlots("09:00", "11:00", 0))
}

func TestWeekdayKey(t *testing.T) {
	// 2026-08-31 is a Monday
	monday := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "monday", WeekdayKey(monday))
	assert.Equal(t, "sunday", WeekdayKey(monday.AddDate(0, 0, 6)))
}

func TestDaysBetween(t *testing.T) {
	start := time.Date(2026, 8, 30, 23, 0, 0, 0, time.UTC)
	end := time.Date(2026, 9, 2, 1, 0, 0, 0, time.UTC)
	assert.Equal(t, 3, DaysBetween(start, end))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-08-30")
	assert.NoError(t, err)
	assert.Equal(t, 2026, d.Year())
	assert.Equal(t, time.August, d.Month())

	_, err = ParseDate("30/08/2026")
	assert.Error(t, err)
}
