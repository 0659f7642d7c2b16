package plan

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Set bundles the three active plans.
type Set struct {
	Habits   []Habit
	Menu     WeeklyMenu
	Workouts WeeklyWorkout
}

// Defaults returns the built-in plan set.
func Defaults() Set {
	return Set{
		Habits:   DefaultHabits(),
		Menu:     DefaultMenu(),
		Workouts: DefaultWorkouts(),
	}
}

// overrideFile is the optional user plans file. Each section independently
// replaces its default when present.
type overrideFile struct {
	Habits   []Habit       `yaml:"habits" validate:"omitempty,min=1,dive"`
	Menu     WeeklyMenu    `yaml:"menu" validate:"omitempty,len=7"`
	Workouts WeeklyWorkout `yaml:"workouts" validate:"omitempty,len=7,dive"`
}

// Load returns the plan set, applying overrides from path when it exists.
// An empty path or a missing file yields the defaults; a present but invalid
// file is an error so the user notices a broken plan instead of silently
// tracking against the wrong one.
func Load(path string) (Set, error) {
	set := Defaults()
	if path == "" {
		return set, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return set, nil
		}
		return Set{}, fmt.Errorf("read plans file: %w", err)
	}

	var f overrideFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return Set{}, fmt.Errorf("parse plans file: %w", err)
	}
	if err := validator.New().Struct(f); err != nil {
		return Set{}, fmt.Errorf("validate plans file: %w", err)
	}

	if len(f.Habits) > 0 {
		set.Habits = f.Habits
	}
	if len(f.Menu) > 0 {
		set.Menu = f.Menu
	}
	if len(f.Workouts) > 0 {
		set.Workouts = f.Workouts
	}
	return set, nil
}
