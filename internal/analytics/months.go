package analytics

import "time"

// MonthsBetween counts whole calendar-month boundaries crossed between two
// instants, matching DATEDIFF(month, a, b): the day of month is ignored, so
// Jan 31 to Feb 1 is one month. Negative when b precedes a.
func MonthsBetween(a, b time.Time) int {
	return (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
}
