package root

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"healthcoach/internal/steps"
	"healthcoach/internal/ui"
)

func newStepsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "steps",
		Short: "Show today's step count",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			counter, err := a.stepCounter(ctx)
			if err != nil {
				return err
			}
			printSteps(cmd, counter)
			return nil
		},
	}

	cmd.AddCommand(newStepsAddCmd(), newStepsResetCmd(), newCheckInCmd())
	return cmd
}

func newStepsAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <n>",
		Short: "Record n more steps",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil || n <= 0 {
				return fmt.Errorf("step count must be a positive integer")
			}

			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			counter, err := a.stepCounter(ctx)
			if err != nil {
				return err
			}
			counter.Add(ctx, n)
			printSteps(cmd, counter)
			return nil
		},
	}
}

func newStepsResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Zero today's step count",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			counter, err := a.stepCounter(ctx)
			if err != nil {
				return err
			}
			counter.Reset(ctx)
			printSteps(cmd, counter)
			return nil
		},
	}
}

func newCheckInCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "checkin",
		Short: "Claim the daily check-in bonus",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			counter, err := a.stepCounter(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !counter.CheckIn(ctx) {
				fmt.Fprintln(out, ui.Muted.Render("Already checked in today."))
				return nil
			}
			fmt.Fprintf(out, "%s %s\n", ui.Good.Render(ui.IconDone+" Daily check-in completed!"),
				ui.Muted.Render(fmt.Sprintf("+%d steps", steps.CheckInBonus)))
			printSteps(cmd, counter)
			return nil
		},
	}
}

func printSteps(cmd *cobra.Command, counter *steps.Counter) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", ui.IconSteps,
		ui.LabelValue("Steps", counter.Steps()),
		ui.Muted.Render(fmt.Sprintf("~%d kcal burned", counter.Calories())))
}
