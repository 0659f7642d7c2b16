package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"healthcoach/internal/plan"
	"healthcoach/internal/tracker"
)

// RunBoard runs the interactive checklist over the three trackers.
func RunBoard(ctx context.Context, habits, diet, workout *tracker.Tracker, plans plan.Set, out io.Writer) error {
	m := newBoardModel(ctx, habits, diet, workout, plans)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
