// Package calendar holds the ISO week arithmetic the planner is built
// around: weeks start Monday, week 1 contains the year's first
// Thursday, and the working week runs Monday through Saturday.
package calendar

import (
	"fmt"
	"time"
)

const taskDateLayout = "2006-01-02"

var dayNames = [6]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// CurrentWeek returns the ISO week-year and week number for today.
func CurrentWeek() (year, week int) {
	return time.Now().ISOWeek()
}

// WeekDates returns the six working days (Monday through Saturday) of
// the given ISO week. Sunday is intentionally excluded.
func WeekDates(year, week int) [6]time.Time {
	// January 4 is always inside ISO week 1.
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	monday := jan4.AddDate(0, 0, -mondayOffset(jan4)+(week-1)*7)

	var dates [6]time.Time
	for i := range dates {
		dates[i] = monday.AddDate(0, 0, i)
	}
	return dates
}

func mondayOffset(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 { // time.Sunday
		wd = 7
	}
	return wd - 1
}

// FormatWeekRange renders the week as "Jan 1 - Jan 6, 2024" using the
// first and last working days.
func FormatWeekRange(year, week int) string {
	dates := WeekDates(year, week)
	return fmt.Sprintf("%s - %s", dates[0].Format("Jan 2"), dates[5].Format("Jan 2, 2006"))
}

// DayName maps a working-day index (0 = Monday) to its name. Indexes
// outside 0..5 panic.
func DayName(dayIndex int) string {
	return dayNames[dayIndex]
}

// FormatTaskDate renders a date in the canonical YYYY-MM-DD form.
func FormatTaskDate(t time.Time) string {
	return t.Format(taskDateLayout)
}

// ParseTaskDate parses a canonical YYYY-MM-DD date. It round-trips
// with FormatTaskDate at day granularity.
func ParseTaskDate(s string) (time.Time, error) {
	return time.Parse(taskDateLayout, s)
}

// WeeksInYear returns the number of ISO weeks in the year, 52 or 53.
func WeeksInYear(year int) int {
	// December 28 is always inside the year's last ISO week.
	_, week := time.Date(year, time.December, 28, 0, 0, 0, 0, time.UTC).ISOWeek()
	return week
}

// PreviousWeek moves the (year, week) cursor back one week, rolling
// into the final ISO week of the prior year at the boundary.
func PreviousWeek(year, week int) (int, int) {
	week--
	if week < 1 {
		year--
		week = WeeksInYear(year)
	}
	return year, week
}

// NextWeek moves the (year, week) cursor forward one week, rolling
// into week 1 of the next year past the year's final ISO week.
func NextWeek(year, week int) (int, int) {
	week++
	if week > WeeksInYear(year) {
		year++
		week = 1
	}
	return year, week
}
