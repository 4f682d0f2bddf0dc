// Package analytics holds the pure building blocks of the reporting
// pipeline: calendar windows, concurrent query fan-out, lookup joins, and
// metric aggregation. Everything here is request-scoped and side-effect
// free apart from failure logging in the fan-out.
package analytics

import "time"

// Window is an inclusive [Start, End] span of time in the clock's location.
type Window struct {
	Start time.Time
	End   time.Time
}

// DayWindow returns the calendar day containing now: local midnight through
// 23:59:59.999.
func DayWindow(now time.Time) Window {
	y, m, d := now.Date()
	return Window{
		Start: time.Date(y, m, d, 0, 0, 0, 0, now.Location()),
		End:   time.Date(y, m, d, 23, 59, 59, 999e6, now.Location()),
	}
}

// WeekWindow returns the calendar week containing now. Weeks start on the
// local Sunday and end on Saturday 23:59:59.999; the dashboard consumers
// depend on Sunday-based weeks, not ISO ones.
func WeekWindow(now time.Time) Window {
	y, m, d := now.Date()
	offset := int(now.Weekday())
	return Window{
		Start: time.Date(y, m, d-offset, 0, 0, 0, 0, now.Location()),
		End:   time.Date(y, m, d-offset+6, 23, 59, 59, 999e6, now.Location()),
	}
}

// MonthWindow returns the calendar month containing now: day 1 at midnight
// through the last day at 23:59:59. The last day is day zero of the next
// month.
func MonthWindow(now time.Time) Window {
	y, m, _ := now.Date()
	return Window{
		Start: time.Date(y, m, 1, 0, 0, 0, 0, now.Location()),
		End:   time.Date(y, m+1, 0, 23, 59, 59, 0, now.Location()),
	}
}
