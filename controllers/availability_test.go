package controllers

import (
	"salon-admin/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func settingsWith(hours models.JSONB, interval int) models.SalonSettings {
	return models.SalonSettings{WorkingHours: hours, SlotInterval: interval}
}

func TestSlotsForDayOpenWindow(t *testing.T) {
	settings := settingsWith(models.JSONB{
		"monday": map[string]interface{}{"open": "09:00", "close": "10:30", "closed": false},
	}, 30)

	slots := slotsForDay(settings, "monday")
	assert.Equal(t, []string{"09:00 AM", "09:30 AM", "10:00 AM"}, slots)
}

func TestSlotsForDayClosed(t *testing.T) {
	settings := settingsWith(models.JSONB{
		"sunday": map[string]interface{}{"open": "10:00", "close": "19:00", "closed": true},
	}, 30)

	assert.Nil(t, slotsForDay(settings, "sunday"))
}

func TestSlotsForDayMissingWeekday(t *testing.T) {
	settings := settingsWith(models.JSONB{}, 30)
	assert.Nil(t, slotsForDay(settings, "tuesday"))
}

func TestSlotsForDayDefaultInterval(t *testing.T) {
	settings := settingsWith(models.JSONB{
		"friday": map[string]interface{}{"open": "09:00", "close": "11:00", "closed": false},
	}, 0)

	// falls back to 30-minute slots
	assert.Len(t, slotsForDay(settings, "friday"), 4)
}

func TestSlotsForDayDefaultWorkingHours(t *testing.T) {
	settings := settingsWith(models.DefaultWorkingHours(), 30)

	// monday 09:00-20:00 at 30 minutes = 22 slots
	assert.Len(t, slotsForDay(settings, "monday"), 22)
	// sunday is seeded closed
	assert.Nil(t, slotsForDay(settings, "sunday"))
}
