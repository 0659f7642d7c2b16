package tracker

import (
	"fmt"
	"time"
)

// DateLayout is the ISO date format used for date-bucketed completion keys.
const DateLayout = "2006-01-02"

// Weekdays lists day names Monday-first, matching the plan templates.
var Weekdays = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// DateKey builds an absolute-date completion key, e.g. "2024-05-01-water".
// The habit tracker and the diet tracker's daily/monthly views key this way.
func DateKey(date time.Time, itemID string) string {
	return fmt.Sprintf("%s-%s", date.Format(DateLayout), itemID)
}

// DayKey builds a recurring day-of-week key, e.g. "Monday-Breakfast".
// The diet weekly view and the workout tracker key this way; the week is a
// fixed 7-slot template, not an absolute date range.
func DayKey(day string, itemID string) string {
	return fmt.Sprintf("%s-%s", day, itemID)
}

// WeekdayName returns the Monday-first day name for a date.
func WeekdayName(t time.Time) string {
	return t.Weekday().String()
}

// MonthDates enumerates every calendar day of the month containing t.
func MonthDates(t time.Time) []time.Time {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	var days []time.Time
	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}
