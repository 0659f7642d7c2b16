package root

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"healthcoach/internal/plan"
	"healthcoach/internal/tracker"
	"healthcoach/internal/ui"
)

func newWorkoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workout",
		Short: "Show the weekly workout plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			t, err := a.workoutTracker(ctx)
			if err != nil {
				return err
			}

			progress := t.Progress(plan.WorkoutUniverse(a.plans.Workouts))
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconWorkout, "Workout Plan"))
			fmt.Fprintln(out, ui.LabelValue("Total Points", t.Points()))
			fmt.Fprintln(out, ui.LabelValue("Weekly Progress", fmt.Sprintf("%d/%d · %s %d%%",
				progress.Completed, progress.Total,
				ui.ProgressBar(progress.Completed, progress.Total, 20), progress.Percent)))
			fmt.Fprintln(out, "")

			for _, day := range tracker.Weekdays {
				dayPlan := a.plans.Workouts[day]
				dayProgress := t.Progress(plan.WorkoutDayUniverse(day, a.plans.Workouts))
				fmt.Fprintf(out, "%s %s %s\n", ui.H2.Render(day), ui.Key.Render(dayPlan.Focus),
					ui.Muted.Render(fmt.Sprintf("%d/%d exercises completed", dayProgress.Completed, dayProgress.Total)))
				for i, ex := range dayPlan.Exercises {
					key := tracker.DayKey(day, strconv.Itoa(i))
					name := ex.Name
					if t.IsSet(key) {
						name = ui.Checked.Render(name)
					}
					fmt.Fprintf(out, "  %s %d. %s %s\n", ui.Checkbox(t.IsSet(key)), i+1, name,
						ui.Muted.Render(fmt.Sprintf("%s sets × %s", ex.Sets, ex.Reps)))
					fmt.Fprintf(out, "         %s\n", ui.Muted.Render(ex.Desc))
				}
			}
			return nil
		},
	}

	cmd.AddCommand(newWorkoutCheckCmd(), newWorkoutResetCmd())
	return cmd
}

func newWorkoutCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <day> <n>",
		Short: "Toggle exercise n (1-based) of a day",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			day, ok := parseWeekday(args[0])
			if !ok {
				return fmt.Errorf("unknown day %q", args[0])
			}
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("exercise number must be an integer")
			}
			exercises := a.plans.Workouts[day].Exercises
			if n < 1 || n > len(exercises) {
				return fmt.Errorf("%s has exercises 1-%d", day, len(exercises))
			}

			t, err := a.workoutTracker(ctx)
			if err != nil {
				return err
			}

			ex := exercises[n-1]
			key := tracker.DayKey(day, strconv.Itoa(n-1))
			on, delta := t.Toggle(ctx, key)

			out := cmd.OutOrStdout()
			if on {
				fmt.Fprintf(out, "%s %s: %s %s\n", ui.Good.Render(ui.IconDone+" Checked"), day, ex.Name, ui.Muted.Render(fmt.Sprintf("(%+d pts)", delta)))
			} else {
				fmt.Fprintf(out, "%s %s: %s %s\n", ui.Warn.Render("Unchecked"), day, ex.Name, ui.Muted.Render(fmt.Sprintf("(%+d pts)", delta)))
			}
			fmt.Fprintln(out, ui.LabelValue("Total Points", t.Points()))
			return nil
		},
	}
}

func newWorkoutResetCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Clear all workout checkmarks and points",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if !yes && !confirm(cmd, "Reset all workout progress? This will clear all checkmarks and reset points to 0") {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Aborted."))
				return nil
			}

			t, err := a.workoutTracker(ctx)
			if err != nil {
				return err
			}
			t.Reset(ctx)
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render("Workout progress reset."))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}
