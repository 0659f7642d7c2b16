package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"healthcoach/internal/plan"
	"healthcoach/internal/tracker"
	"healthcoach/internal/ui"
)

func newHabitsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "habits",
		Short: "Show today's habits",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			t, err := a.habitsTracker(ctx)
			if err != nil {
				return err
			}

			today := mustDate(t.Today())
			progress := t.Progress(plan.HabitUniverse(today, a.plans.Habits))

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "Daily Habits"))
			fmt.Fprintln(out, ui.LabelValue("Total Points", t.Points()))
			fmt.Fprintln(out, ui.LabelValue("Today's Progress", fmt.Sprintf("%d/%d", progress.Completed, progress.Total)))
			fmt.Fprintln(out, ui.LabelValue("Completion Rate", fmt.Sprintf("%s %d%%", ui.ProgressBar(progress.Completed, progress.Total, 20), progress.Percent)))
			fmt.Fprintln(out, ui.LabelValue("Streak", fmt.Sprintf("%d %s consecutive days", t.Streak(), ui.IconFlame)))
			fmt.Fprintln(out, "")

			for _, h := range a.plans.Habits {
				key := tracker.DateKey(today, h.ID)
				name := h.Name
				if t.IsSet(key) {
					name = ui.Checked.Render(name)
				}
				fmt.Fprintf(out, "%s %s %s %s\n",
					ui.Checkbox(t.IsSet(key)),
					ui.Muted.Render(h.ID),
					name,
					ui.Key.Render(fmt.Sprintf("+%d pts", h.Points)),
				)
				fmt.Fprintf(out, "      %s\n", ui.Muted.Render(h.Desc))
			}

			if progress.Percent == 100 {
				fmt.Fprintln(out, "")
				fmt.Fprintln(out, ui.Gold.Render(ui.IconParty+" Amazing! You've completed all your habits today! Keep up the great work!"))
			}
			return nil
		},
	}

	cmd.AddCommand(newHabitsCheckCmd(), newHabitsResetCmd())
	return cmd
}

func newHabitsCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <habit-id>",
		Short: "Toggle a habit for today",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			h, ok := plan.FindHabit(a.plans.Habits, args[0])
			if !ok {
				return fmt.Errorf("unknown habit %q (known: %v)", args[0], plan.HabitIDs(a.plans.Habits))
			}

			t, err := a.habitsTracker(ctx)
			if err != nil {
				return err
			}

			key := tracker.DateKey(mustDate(t.Today()), h.ID)
			on, delta := t.ToggleWeighted(ctx, key, h.Points, h.Points)

			out := cmd.OutOrStdout()
			if on {
				fmt.Fprintf(out, "%s %s %s\n", ui.Good.Render(ui.IconDone+" Checked"), h.Name, ui.Muted.Render(fmt.Sprintf("(%+d pts)", delta)))
			} else {
				fmt.Fprintf(out, "%s %s %s\n", ui.Warn.Render("Unchecked"), h.Name, ui.Muted.Render(fmt.Sprintf("(%+d pts)", delta)))
			}
			fmt.Fprintln(out, ui.LabelValue("Total Points", t.Points()))
			return nil
		},
	}
}

func newHabitsResetCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Clear all habit checkmarks and points",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if !yes && !confirm(cmd, "Reset all habit progress? This clears all checkmarks and resets points to 0") {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Aborted."))
				return nil
			}

			t, err := a.habitsTracker(ctx)
			if err != nil {
				return err
			}
			t.Reset(ctx)
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render("Habit progress reset."),
				ui.Muted.Render(fmt.Sprintf("(streak kept at %d)", t.Streak())))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

func mustDate(s string) time.Time {
	d, err := time.Parse(tracker.DateLayout, s)
	if err != nil {
		return time.Now()
	}
	return d
}
