package plan

import (
	"strconv"
	"time"

	"healthcoach/internal/tracker"
)

// Universe builders enumerate every valid completion key for a progress
// scope, independent of what has been checked. Progress is always computed
// against one of these, never by counting raw ledger entries.

// HabitUniverse is today's habit keys (absolute date bucket).
func HabitUniverse(date time.Time, habits []Habit) []string {
	keys := make([]string, 0, len(habits))
	for _, h := range habits {
		keys = append(keys, tracker.DateKey(date, h.ID))
	}
	return keys
}

// DietDailyUniverse is today's four meal slots, keyed by absolute date.
func DietDailyUniverse(date time.Time) []string {
	keys := make([]string, 0, len(MealTypes))
	for _, m := range MealTypes {
		keys = append(keys, tracker.DateKey(date, m))
	}
	return keys
}

// DietWeeklyUniverse is the fixed 7x4 day-name grid (28 keys).
func DietWeeklyUniverse() []string {
	keys := make([]string, 0, len(tracker.Weekdays)*len(MealTypes))
	for _, day := range tracker.Weekdays {
		for _, m := range MealTypes {
			keys = append(keys, tracker.DayKey(day, m))
		}
	}
	return keys
}

// DietMonthlyUniverse is every calendar day of the current month times the
// four meal slots, keyed by absolute date. The menu shown for each date
// comes from its weekday template, but the keys are per-date.
func DietMonthlyUniverse(date time.Time) []string {
	days := tracker.MonthDates(date)
	keys := make([]string, 0, len(days)*len(MealTypes))
	for _, d := range days {
		for _, m := range MealTypes {
			keys = append(keys, tracker.DateKey(d, m))
		}
	}
	return keys
}

// WorkoutUniverse is every exercise slot of the weekly plan, keyed by day
// name and exercise index.
func WorkoutUniverse(workouts WeeklyWorkout) []string {
	var keys []string
	for _, day := range tracker.Weekdays {
		for i := range workouts[day].Exercises {
			keys = append(keys, tracker.DayKey(day, strconv.Itoa(i)))
		}
	}
	return keys
}

// WorkoutDayUniverse is one day's exercise keys.
func WorkoutDayUniverse(day string, workouts WeeklyWorkout) []string {
	var keys []string
	for i := range workouts[day].Exercises {
		keys = append(keys, tracker.DayKey(day, strconv.Itoa(i)))
	}
	return keys
}

// DietDayUniverse is one day-name's meal keys (weekly view rows).
func DietDayUniverse(day string) []string {
	keys := make([]string, 0, len(MealTypes))
	for _, m := range MealTypes {
		keys = append(keys, tracker.DayKey(day, m))
	}
	return keys
}
