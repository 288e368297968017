package service

import "time"

// DateLayout is the ISO-8601 date format used for the date and week_start columns.
const DateLayout = "2006-01-02"

// WeekStart returns the ISO date of the Monday of the week containing d.
// ISO weekday numbering: Monday = 1 ... Sunday = 7; subtract (weekday - 1)
// days. Computed fresh per call so calendar boundaries are never cached.
func WeekStart(d time.Time) string {
	weekday := int(d.Weekday())
	if weekday == 0 { // time.Sunday
		weekday = 7
	}
	monday := d.AddDate(0, 0, -(weekday - 1))
	return monday.Format(DateLayout)
}
