package root

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"healthcoach/internal/coach"
	"healthcoach/internal/ui"
)

func newChatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Talk to the AI coach",
		Long:  "Interactive chat with the AI health coach. Type a message and press enter; \"quit\" or Ctrl-D ends the session.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconCoach, "AI Coach"))
			fmt.Fprintln(out, ui.Muted.Render("Ask me anything about your health, diet, or workouts."))
			fmt.Fprintln(out, "")
			fmt.Fprintln(out, coachLine(coach.Greeting))

			// Missing credentials short-circuit before any call is attempted.
			if a.cfg.OpenAIKey == "" {
				fmt.Fprintln(out, coachLine(ui.IconWarn+" "+coach.NotConfiguredMessage))
				return nil
			}

			provider, err := coach.NewOpenAIProvider(a.cfg.OpenAIKey, a.cfg.AIBaseURL, a.cfg.AIModel, a.log)
			if err != nil {
				return err
			}
			c := coach.New(provider, a.log)
			stats := a.stats(ctx)

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for {
				fmt.Fprint(out, ui.Key.Render("you> "))
				if !scanner.Scan() {
					break
				}
				text := strings.TrimSpace(scanner.Text())
				if text == "" {
					continue
				}
				if text == "quit" || text == "exit" {
					break
				}

				reply, err := c.Send(ctx, text, stats)
				if err != nil {
					// Degraded inline message; tracker state is unaffected.
					fmt.Fprintln(out, coachLine(ui.IconWarn+" "+coach.DegradedMessage))
					continue
				}
				fmt.Fprintln(out, coachLine(reply))
			}
			return scanner.Err()
		},
	}
}

func coachLine(text string) string {
	return ui.H2.Render("coach>") + " " + text
}
