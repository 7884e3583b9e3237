// utils/slots.go
package utils

import (
	"strings"
	"time"
)

// SlotLayout is how slot strings appear in the panel, e.g. "10:30 AM".
const SlotLayout = "03:04 PM"

// BuildSlots expands an open/close window ("09:00" .. "20:00", 24h clock)
// into slot strings at the given interval. The closing time itself is not
// a bookable slot. Bad input yields an empty grid rather than an error:
// a day with unparseable hours simply has nothing bookable.
func BuildSlots(open, close string, intervalMinutes int) []string {
	if intervalMinutes <= 0 {
		return nil
	}
	start, err := time.Parse("15:04", open)
	if err != nil {
		return nil
	}
	end, err := time.Parse("15:04", close)
	if err != nil {
		return nil
	}

	var slots []string
	for t := start; t.Before(end); t = t.Add(time.Duration(intervalMinutes) * time.Minute) {
		slots = append(slots, t.Format(SlotLayout))
	}
	return slots
}

// WeekdayKey returns the lowercase weekday name used as the working-hours
// JSONB key, e.g. "monday".
func WeekdayKey(t time.Time) string {
	return strings.ToLower(t.Weekday().String())
}
