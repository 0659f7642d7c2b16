package coach

import (
	"fmt"
	"strings"
)

func systemPrompt(stats Stats) string {
	var b strings.Builder
	b.WriteString("You are a friendly personal health coach inside a wellness tracker. ")
	b.WriteString("Answer questions about health, diet and workouts. Be concise and encouraging; ")
	b.WriteString("never give medical diagnoses.\n\n")
	b.WriteString("Today's user metrics:\n")
	fmt.Fprintf(&b, "- Steps: %d\n", stats.Steps)
	fmt.Fprintf(&b, "- Calories burned: %d kcal\n", stats.Calories)
	fmt.Fprintf(&b, "- Water intake: %.1f L\n", stats.WaterLiters)
	fmt.Fprintf(&b, "- Sleep: %s\n", stats.Sleep)
	return b.String()
}

func planPrompt(stats Stats) string {
	var b strings.Builder
	b.WriteString("Generate a 7-day workout plan and a matching weekly diet plan ")
	b.WriteString("for this user. Structure the answer day by day (Monday through Sunday) ")
	b.WriteString("with exercises (sets and reps) and four meals per day with rough calories.\n\n")
	fmt.Fprintf(&b, "User metrics: %d steps today, %d kcal burned, %.1f L water, %s sleep.\n",
		stats.Steps, stats.Calories, stats.WaterLiters, stats.Sleep)
	return b.String()
}
