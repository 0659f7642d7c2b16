package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"healthcoach/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "hc",
	Short:         "Health Coach — local-first wellness tracker",
	Long:          "Health Coach is a local-first CLI wellness tracker: daily habits, a weekly diet plan, a weekly workout plan and an AI coach.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newHabitsCmd(),
		newDietCmd(),
		newWorkoutCmd(),
		newStatusCmd(),
		newStepsCmd(),
		newChatCmd(),
		newPlanCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render("Error:"), err)
		os.Exit(1)
	}
}
