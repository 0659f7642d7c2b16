package root

import (
	"context"

	"github.com/spf13/cobra"

	"healthcoach/internal/tui"
)

func newBoardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Interactive checklist (TUI)",
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

			return tui.RunBoard(ctx, habits, diet, workout, a.plans, cmd.OutOrStdout())
		},
	}
}
