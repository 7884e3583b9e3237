// utils/dates.go
package utils

import "time"

const DateLayout = "2006-01-02"

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func DaysBetween(start, end time.Time) int {
	start = BeginningOfDay(start)
	end = BeginningOfDay(end)
	return int(end.Sub(start).Hours() / 24)
}

// ParseDate parses a YYYY-MM-DD string from the panel.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
