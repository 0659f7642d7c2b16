package plan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePlans(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plans.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	set, err := Load("")
	require.NoError(t, err)
	assert.Len(t, set.Habits, 6)
	assert.Len(t, set.Menu, 7)
	assert.Len(t, set.Workouts, 7)

	set, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Len(t, set.Habits, 6)
}

func TestLoadOverridesHabits(t *testing.T) {
	path := writePlans(t, `
habits:
  - id: stretch
    name: Morning stretch
    points: 5
`)
	set, err := Load(path)
	require.NoError(t, err)

	require.Len(t, set.Habits, 1)
	assert.Equal(t, "stretch", set.Habits[0].ID)
	assert.Equal(t, 5, set.Habits[0].Points)
	// Sections absent from the file keep their defaults.
	assert.Len(t, set.Menu, 7)
	assert.Len(t, set.Workouts, 7)
}

func TestLoadRejectsInvalidHabit(t *testing.T) {
	path := writePlans(t, `
habits:
  - id: stretch
    name: Morning stretch
    points: 0
`)
	_, err := Load(path)
	assert.ErrorContains(t, err, "validate plans file")
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := writePlans(t, "habits: [broken")
	_, err := Load(path)
	assert.ErrorContains(t, err, "parse plans file")
}

func TestDefaultPlanShape(t *testing.T) {
	habits := DefaultHabits()
	total := 0
	for _, h := range habits {
		total += h.Points
	}
	assert.Equal(t, 70, total)

	h, ok := FindHabit(habits, "meditation")
	require.True(t, ok)
	assert.Equal(t, 10, h.Points)
	_, ok = FindHabit(habits, "nope")
	assert.False(t, ok)

	exercises := 0
	for _, day := range DefaultWorkouts() {
		exercises += len(day.Exercises)
	}
	assert.Equal(t, 25, exercises)

	for day, meals := range DefaultMenu() {
		assert.Len(t, meals, 4, "menu for %s", day)
	}
}
