package schedule

import "time"

// WeekdayCount is the number of dates in a week window (Monday through Friday).
const WeekdayCount = 5

// DeriveWeekWindow returns the five weekday dates (Monday to Friday) of the
// week containing ref, normalized to midnight in ref's location, ascending.
// Weeks always start on Monday. A Sunday reference belongs to the week that
// began the previous Monday, i.e. Sunday counts as day 7, not day 0.
func DeriveWeekWindow(ref time.Time) []time.Time {
	day := atMidnight(ref)

	offset := int(day.Weekday())
	if offset == 0 {
		offset = 7 // Sunday
	}
	monday := day.AddDate(0, 0, 1-offset)

	dates := make([]time.Time, WeekdayCount)
	for i := range dates {
		dates[i] = monday.AddDate(0, 0, i)
	}
	return dates
}

// atMidnight strips the clock part of t, keeping its location.
func atMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
