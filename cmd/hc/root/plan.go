package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"healthcoach/internal/coach"
	"healthcoach/internal/ui"
)

func newPlanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plan",
		Short: "Generate an AI workout and diet plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			if a.cfg.OpenAIKey == "" {
				fmt.Fprintln(out, ui.Warn.Render(ui.IconWarn+" "+coach.NotConfiguredMessage))
				return nil
			}

			provider, err := coach.NewOpenAIProvider(a.cfg.OpenAIKey, a.cfg.AIBaseURL, a.cfg.AIModel, a.log)
			if err != nil {
				return err
			}
			c := coach.New(provider, a.log)

			fmt.Fprintln(out, ui.Muted.Render("Generating plan…"))
			text, err := c.GeneratePlan(ctx, a.stats(ctx))
			if err != nil {
				fmt.Fprintln(out, ui.Warn.Render(ui.IconWarn+" Failed to generate a new plan. Please check your API key or try again."))
				return nil
			}

			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "Suggested Plan"))
			fmt.Fprintln(out, text)
			return nil
		},
	}
}
