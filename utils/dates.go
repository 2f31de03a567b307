// utils/dates.go
package utils

import "time"

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// StartOfISOWeek returns midnight of the Monday of t's week (ISO weeks run
// Monday through Sunday).
func StartOfISOWeek(t time.Time) time.Time {
	t = BeginningOfDay(t)
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7 // Sunday
	}
	return t.AddDate(0, 0, 1-wd)
}
