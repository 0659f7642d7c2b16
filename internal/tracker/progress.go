package tracker

import "math"

// Progress is a derived view over a ledger and a key universe. It is never
// persisted; callers recompute it whenever they render.
type Progress struct {
	Completed int
	Total     int
	Percent   int
}

// ComputeProgress counts how many universe keys are checked in the ledger.
// Percent is rounded half-up and is 0 when the universe is empty.
func ComputeProgress(l Ledger, universe []string) Progress {
	completed := l.CountChecked(universe)
	total := len(universe)
	percent := 0
	if total > 0 {
		percent = int(math.Round(100 * float64(completed) / float64(total)))
	}
	return Progress{Completed: completed, Total: total, Percent: percent}
}
