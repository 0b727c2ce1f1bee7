package priority

import "time"

// BusinessDaysBetween counts the weekdays (Monday through Friday)
// strictly after start up to and including end.
//
// The count is signed: when start is after end the function returns
// the negated count of the reverse walk, so an overdue due date yields
// a negative delta whose magnitude is the number of business days
// late. Identical dates always yield zero. The function is pure and
// never fails for any pair of valid dates.
func BusinessDaysBetween(start, end time.Time) int {
	start = dateOnly(start)
	end = dateOnly(end)

	if start.Equal(end) {
		return 0
	}
	if start.After(end) {
		return -BusinessDaysBetween(end, start)
	}

	days := 0
	for d := start.AddDate(0, 0, 1); !d.After(end); d = d.AddDate(0, 0, 1) {
		if isBusinessDay(d) {
			days++
		}
	}
	return days
}

// isBusinessDay reports whether d falls on a weekday.
func isBusinessDay(d time.Time) bool {
	wd := d.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// dateOnly strips the time-of-day and timezone components so that
// calendar arithmetic is unaffected by how the input was constructed.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
