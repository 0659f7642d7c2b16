package plan

// Habit is one daily habit with its point value. Points apply symmetrically:
// checking awards them, unchecking takes them back.
type Habit struct {
	ID     string `yaml:"id" validate:"required"`
	Name   string `yaml:"name" validate:"required"`
	Desc   string `yaml:"desc"`
	Points int    `yaml:"points" validate:"gt=0"`
}

// DefaultHabits is the canonical daily habit list. Keep IDs stable: stored
// completion keys embed them.
func DefaultHabits() []Habit {
	return []Habit{
		{ID: "water", Name: "Drink 8 glasses of water", Points: 15, Desc: "Stay hydrated throughout the day"},
		{ID: "wakeup", Name: "Wake up before 7 AM", Points: 10, Desc: "Start your day early and energized"},
		{ID: "sleep", Name: "Sleep by 10 PM", Points: 10, Desc: "Get quality rest for recovery"},
		{ID: "steps", Name: "10,000 steps today", Points: 15, Desc: "Meet your daily step goal"},
		{ID: "meditation", Name: "5-min meditation", Points: 10, Desc: "Practice mindfulness and reduce stress"},
		{ID: "reading", Name: "Read for 20 minutes", Points: 10, Desc: "Learn something new every day"},
	}
}

// HabitIDs returns the IDs in plan order.
func HabitIDs(habits []Habit) []string {
	ids := make([]string, 0, len(habits))
	for _, h := range habits {
		ids = append(ids, h.ID)
	}
	return ids
}

// FindHabit looks a habit up by ID.
func FindHabit(habits []Habit, id string) (Habit, bool) {
	for _, h := range habits {
		if h.ID == id {
			return h, true
		}
	}
	return Habit{}, false
}
