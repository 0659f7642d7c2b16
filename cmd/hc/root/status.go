package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"healthcoach/internal/plan"
	"healthcoach/internal/ui"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the wellness dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			habits, err := a.habitsTracker(ctx)
			if err != nil {
				return err
			}
			diet, err := a.dietTracker(ctx)
			if err != nil {
				return err
			}
			workout, err := a.workoutTracker(ctx)
			if err != nil {
				return err
			}
			counter, err := a.stepCounter(ctx)
			if err != nil {
				return err
			}

			habitProgress := habits.Progress(plan.HabitUniverse(mustDate(habits.Today()), a.plans.Habits))
			dietProgress := diet.Progress(plan.DietWeeklyUniverse())
			workoutProgress := workout.Progress(plan.WorkoutUniverse(a.plans.Workouts))
			totalPoints := habits.Points() + diet.Points() + workout.Points()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "Health Coach Dashboard"))
			fmt.Fprintln(out, ui.LabelValue("Total Points", fmt.Sprintf("%d (habits %d · diet %d · workout %d)",
				totalPoints, habits.Points(), diet.Points(), workout.Points())))
			fmt.Fprintln(out, "")

			fmt.Fprintf(out, "%s %s %s\n", ui.IconSteps, ui.LabelValue("Steps", counter.Steps()),
				ui.Muted.Render(fmt.Sprintf("~%d kcal burned", counter.Calories())))
			fmt.Fprintf(out, "%s %s\n", ui.IconFlame, ui.LabelValue("Streak", fmt.Sprintf("%d consecutive days", habits.Streak())))
			fmt.Fprintln(out, "")

			fmt.Fprintf(out, "%s %s %s %d%% %s\n", ui.IconHabit, ui.Key.Render("Habits today:"),
				ui.ProgressBar(habitProgress.Completed, habitProgress.Total, 20), habitProgress.Percent,
				ui.Muted.Render(fmt.Sprintf("%d/%d", habitProgress.Completed, habitProgress.Total)))
			fmt.Fprintf(out, "%s %s %s %d%% %s\n", ui.IconMeal, ui.Key.Render("Diet (week):"),
				ui.ProgressBar(dietProgress.Completed, dietProgress.Total, 20), dietProgress.Percent,
				ui.Muted.Render(fmt.Sprintf("%d/%d", dietProgress.Completed, dietProgress.Total)))
			fmt.Fprintf(out, "%s %s %s %d%% %s\n", ui.IconWorkout, ui.Key.Render("Workout (week):"),
				ui.ProgressBar(workoutProgress.Completed, workoutProgress.Total, 20), workoutProgress.Percent,
				ui.Muted.Render(fmt.Sprintf("%d/%d", workoutProgress.Completed, workoutProgress.Total)))
			return nil
		},
	}
}
