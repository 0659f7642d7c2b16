package plan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

func TestHabitUniverse(t *testing.T) {
	date := mustDate(t, "2024-05-01")
	keys := HabitUniverse(date, DefaultHabits())

	assert.Len(t, keys, 6)
	assert.Equal(t, "2024-05-01-water", keys[0])
	assert.Equal(t, "2024-05-01-reading", keys[5])
}

func TestDietUniverses(t *testing.T) {
	daily := DietDailyUniverse(mustDate(t, "2024-05-01"))
	assert.Len(t, daily, 4)
	assert.Contains(t, daily, "2024-05-01-Breakfast")

	weekly := DietWeeklyUniverse()
	assert.Len(t, weekly, 28)
	assert.Equal(t, "Monday-Breakfast", weekly[0])
	assert.Equal(t, "Sunday-Snack", weekly[27])
}

func TestDietMonthlyUniverseCoversEveryDay(t *testing.T) {
	// February 2024 is a leap month: 29 days x 4 meals.
	keys := DietMonthlyUniverse(mustDate(t, "2024-02-15"))
	assert.Len(t, keys, 29*4)
	assert.Contains(t, keys, "2024-02-01-Breakfast")
	assert.Contains(t, keys, "2024-02-29-Snack")

	keys = DietMonthlyUniverse(mustDate(t, "2024-04-10"))
	assert.Len(t, keys, 30*4)
}

func TestWorkoutUniverse(t *testing.T) {
	workouts := DefaultWorkouts()
	keys := WorkoutUniverse(workouts)

	assert.Len(t, keys, 25)
	assert.Contains(t, keys, "Monday-0")
	assert.Contains(t, keys, "Sunday-1")
	assert.NotContains(t, keys, "Sunday-2")

	day := WorkoutDayUniverse("Wednesday", workouts)
	assert.Len(t, day, len(workouts["Wednesday"].Exercises))
	assert.Equal(t, "Wednesday-0", day[0])
}

func TestDietDayUniverse(t *testing.T) {
	keys := DietDayUniverse("Friday")
	assert.Equal(t, []string{"Friday-Breakfast", "Friday-Lunch", "Friday-Dinner", "Friday-Snack"}, keys)
}
