package root

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"healthcoach/internal/plan"
	"healthcoach/internal/tracker"
	"healthcoach/internal/ui"
)

func newDietCmd() *cobra.Command {
	var view string
	cmd := &cobra.Command{
		Use:   "diet",
		Short: "Show the meal plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			t, err := a.dietTracker(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconMeal, "Diet Plan"))

			switch view {
			case "daily":
				renderDietDaily(out, t, a.plans.Menu)
			case "weekly":
				renderDietWeekly(out, t, a.plans.Menu)
			case "monthly":
				renderDietMonthly(out, t)
			default:
				return fmt.Errorf("unknown view %q (daily, weekly or monthly)", view)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&view, "view", "weekly", "progress scope: daily, weekly or monthly")

	cmd.AddCommand(newDietCheckCmd(), newDietResetCmd())
	return cmd
}

func renderDietDaily(out io.Writer, t *tracker.Tracker, menu plan.WeeklyMenu) {
	today := mustDate(t.Today())
	dayName := tracker.WeekdayName(today)
	progress := t.Progress(plan.DietDailyUniverse(today))

	fmt.Fprintln(out, ui.LabelValue("Total Points", t.Points()))
	fmt.Fprintln(out, ui.LabelValue("Daily Progress", fmt.Sprintf("%d/%d · %d%%", progress.Completed, progress.Total, progress.Percent)))
	fmt.Fprintln(out, "")
	fmt.Fprintf(out, "%s %s\n", ui.H2.Render("Today's Meals —"), ui.H2.Render(dayName))

	for _, mealType := range plan.MealTypes {
		meal := menu[dayName][mealType]
		key := tracker.DateKey(today, mealType)
		printMealLine(out, t.IsSet(key), mealType, meal)
	}
}

func renderDietWeekly(out io.Writer, t *tracker.Tracker, menu plan.WeeklyMenu) {
	progress := t.Progress(plan.DietWeeklyUniverse())
	fmt.Fprintln(out, ui.LabelValue("Total Points", t.Points()))
	fmt.Fprintln(out, ui.LabelValue("Weekly Progress", fmt.Sprintf("%d/%d · %s %d%%",
		progress.Completed, progress.Total,
		ui.ProgressBar(progress.Completed, progress.Total, 20), progress.Percent)))
	fmt.Fprintln(out, "")

	for _, day := range tracker.Weekdays {
		dayProgress := t.Progress(plan.DietDayUniverse(day))
		fmt.Fprintf(out, "%s %s\n", ui.H2.Render(day), ui.Muted.Render(fmt.Sprintf("%d/%d meals", dayProgress.Completed, dayProgress.Total)))
		for _, mealType := range plan.MealTypes {
			meal := menu[day][mealType]
			key := tracker.DayKey(day, mealType)
			printMealLine(out, t.IsSet(key), mealType, meal)
		}
	}
}

func renderDietMonthly(out io.Writer, t *tracker.Tracker) {
	today := mustDate(t.Today())
	progress := t.Progress(plan.DietMonthlyUniverse(today))
	fmt.Fprintln(out, ui.LabelValue("Total Points", t.Points()))
	fmt.Fprintln(out, ui.LabelValue("Monthly Progress", fmt.Sprintf("%d/%d · %d%%", progress.Completed, progress.Total, progress.Percent)))
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, ui.H2.Render(today.Format("January 2006")+" Meal Plan"))

	for _, date := range tracker.MonthDates(today) {
		done := 0
		for _, mealType := range plan.MealTypes {
			if t.IsSet(tracker.DateKey(date, mealType)) {
				done++
			}
		}
		marker := " "
		if date.Equal(today) {
			marker = ui.Gold.Render("*")
		}
		fmt.Fprintf(out, "%s %s %-9s %d/%d\n", marker,
			date.Format(tracker.DateLayout), tracker.WeekdayName(date), done, len(plan.MealTypes))
	}
}

func printMealLine(out io.Writer, checked bool, mealType string, meal plan.Meal) {
	name := meal.Name
	if checked {
		name = ui.Checked.Render(name)
	}
	fmt.Fprintf(out, "  %s %-9s %s %s\n", ui.Checkbox(checked), mealType, name, ui.Muted.Render(meal.Calories))
	fmt.Fprintf(out, "      %s\n", ui.Muted.Render(meal.Desc))
}

func newDietCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <day|date|today> <meal>",
		Short: "Toggle a meal",
		Long: `Toggle a meal completion.

The first argument selects the bucket:
  a weekday name ("Monday")  -> the recurring weekly slot
  "today"                    -> today's date bucket (daily view)
  an ISO date ("2024-05-01") -> that date's bucket (monthly view)`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			t, err := a.dietTracker(ctx)
			if err != nil {
				return err
			}

			mealType, err := parseMealType(args[1])
			if err != nil {
				return err
			}
			key, err := dietKey(args[0], mealType, t.Today())
			if err != nil {
				return err
			}

			on, delta := t.Toggle(ctx, key)
			out := cmd.OutOrStdout()
			if on {
				fmt.Fprintf(out, "%s %s %s\n", ui.Good.Render(ui.IconDone+" Checked"), key, ui.Muted.Render(fmt.Sprintf("(%+d pts)", delta)))
			} else {
				fmt.Fprintf(out, "%s %s %s\n", ui.Warn.Render("Unchecked"), key, ui.Muted.Render(fmt.Sprintf("(%+d pts)", delta)))
			}
			fmt.Fprintln(out, ui.LabelValue("Total Points", t.Points()))
			return nil
		},
	}
}

func newDietResetCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Clear all meal checkmarks and points",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if !yes && !confirm(cmd, "Reset all progress? This will clear all checkmarks and reset points to 0") {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Aborted."))
				return nil
			}

			t, err := a.dietTracker(ctx)
			if err != nil {
				return err
			}
			t.Reset(ctx)
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render("Diet progress reset."))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

func parseMealType(s string) (string, error) {
	for _, m := range plan.MealTypes {
		if strings.EqualFold(m, s) {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown meal %q (known: %v)", s, plan.MealTypes)
}

func parseWeekday(s string) (string, bool) {
	for _, d := range tracker.Weekdays {
		if strings.EqualFold(d, s) {
			return d, true
		}
	}
	return "", false
}

func dietKey(bucket, mealType, today string) (string, error) {
	if strings.EqualFold(bucket, "today") {
		return tracker.DateKey(mustDate(today), mealType), nil
	}
	if day, ok := parseWeekday(bucket); ok {
		return tracker.DayKey(day, mealType), nil
	}
	date, err := time.Parse(tracker.DateLayout, bucket)
	if err != nil {
		return "", fmt.Errorf("%q is not a weekday, a date or \"today\"", bucket)
	}
	return tracker.DateKey(date, mealType), nil
}
