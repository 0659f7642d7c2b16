package plan

// Exercise is one entry in a workout day. Sets/reps stay strings: the plan
// mixes counts, durations ("45s") and per-side notation ("10/leg").
type Exercise struct {
	Name string `yaml:"name" validate:"required"`
	Sets string `yaml:"sets"`
	Reps string `yaml:"reps"`
	Desc string `yaml:"desc"`
}

// WorkoutDay is one day's focus and exercise list.
type WorkoutDay struct {
	Focus     string     `yaml:"focus" validate:"required"`
	Exercises []Exercise `yaml:"exercises" validate:"min=1,dive"`
}

// WeeklyWorkout maps day name -> workout day. Like the menu, it repeats
// weekly; completion keys use day names plus the exercise index.
type WeeklyWorkout map[string]WorkoutDay

// DefaultWorkouts is the built-in 7-day workout plan.
func DefaultWorkouts() WeeklyWorkout {
	return WeeklyWorkout{
		"Monday": {
			Focus: "Chest & Triceps",
			Exercises: []Exercise{
				{Name: "Push-ups", Sets: "3", Reps: "12-15", Desc: "Keep core tight, chest to floor"},
				{Name: "Dumbbell Bench Press", Sets: "3", Reps: "10-12", Desc: "Control the weight down"},
				{Name: "Tricep Dips", Sets: "3", Reps: "12-15", Desc: "Use a chair or bench"},
				{Name: "Plank", Sets: "3", Reps: "45s", Desc: "Hold position, don't sag hips"},
			},
		},
		"Tuesday": {
			Focus: "Back & Biceps",
			Exercises: []Exercise{
				{Name: "Pull-ups (or Rows)", Sets: "3", Reps: "8-10", Desc: "Full range of motion"},
				{Name: "Dumbbell Rows", Sets: "3", Reps: "10-12", Desc: "Keep back flat"},
				{Name: "Bicep Curls", Sets: "3", Reps: "12-15", Desc: "Squeeze at the top"},
				{Name: "Superman", Sets: "3", Reps: "15", Desc: "Lift arms and legs simultaneously"},
			},
		},
		"Wednesday": {
			Focus: "Active Recovery",
			Exercises: []Exercise{
				{Name: "Light Jog/Walk", Sets: "1", Reps: "30m", Desc: "Keep heart rate moderate"},
				{Name: "Stretching Routine", Sets: "1", Reps: "15m", Desc: "Focus on tight areas"},
				{Name: "Yoga Flow", Sets: "1", Reps: "20m", Desc: "Basic sun salutations"},
			},
		},
		"Thursday": {
			Focus: "Legs & Shoulders",
			Exercises: []Exercise{
				{Name: "Squats", Sets: "4", Reps: "12-15", Desc: "Knees behind toes"},
				{Name: "Lunges", Sets: "3", Reps: "10/leg", Desc: "Keep torso upright"},
				{Name: "Shoulder Press", Sets: "3", Reps: "10-12", Desc: "Press straight up"},
				{Name: "Calf Raises", Sets: "3", Reps: "20", Desc: "Full extension"},
			},
		},
		"Friday": {
			Focus: "Full Body HIIT",
			Exercises: []Exercise{
				{Name: "Burpees", Sets: "3", Reps: "15", Desc: "Explosive movement"},
				{Name: "Mountain Climbers", Sets: "3", Reps: "40s", Desc: "Keep hips low"},
				{Name: "Jump Squats", Sets: "3", Reps: "15", Desc: "Soft landing"},
				{Name: "Russian Twists", Sets: "3", Reps: "20/side", Desc: "Feet off ground if possible"},
			},
		},
		"Saturday": {
			Focus: "Cardio & Core",
			Exercises: []Exercise{
				{Name: "Running/Cycling", Sets: "1", Reps: "45m", Desc: "Steady state cardio"},
				{Name: "Crunches", Sets: "3", Reps: "20", Desc: "Engage core"},
				{Name: "Leg Raises", Sets: "3", Reps: "15", Desc: "Control the descent"},
				{Name: "Bicycle Crunches", Sets: "3", Reps: "20/side", Desc: "Elbow to opposite knee"},
			},
		},
		"Sunday": {
			Focus: "Rest Day",
			Exercises: []Exercise{
				{Name: "Rest", Sets: "1", Reps: "0", Desc: "Take a break, you earned it!"},
				{Name: "Light Walk", Sets: "1", Reps: "20m", Desc: "Optional active recovery"},
			},
		},
	}
}
