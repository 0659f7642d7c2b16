package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"healthcoach/internal/plan"
	"healthcoach/internal/tracker"
	"healthcoach/internal/ui"
)

// Tab indexes.
const (
	tabHabits = iota
	tabDiet
	tabWorkout
	tabCount
)

var tabNames = [tabCount]string{"Habits", "Diet", "Workout"}

type boardModel struct {
	ctx context.Context

	habits  *tracker.Tracker
	diet    *tracker.Tracker
	workout *tracker.Tracker
	plans   plan.Set

	width  int
	height int

	tab      int
	selected int
	lastLog  string
}

// row is one rendered line of the active tab. Header rows (day names) carry
// no key and cannot be toggled.
type row struct {
	key     string
	label   string
	detail  string
	header  bool
	checked bool

	// habit rows carry their own point value; diet/workout use the
	// tracker's configured pair
	habitPoints int
}

func newBoardModel(ctx context.Context, habits, diet, workout *tracker.Tracker, plans plan.Set) boardModel {
	return boardModel{
		ctx:     ctx,
		habits:  habits,
		diet:    diet,
		workout: workout,
		plans:   plans,
		lastLog: "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return nil
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab", "l", "right":
			m.tab = (m.tab + 1) % tabCount
			m.selected = 0
			return m, nil
		case "shift+tab", "h", "left":
			m.tab = (m.tab + tabCount - 1) % tabCount
			m.selected = 0
			return m, nil
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			rows := m.rows()
			if m.selected < len(rows)-1 {
				m.selected++
			}
			return m, nil
		case " ", "enter", "c":
			return m.toggleSelected(), nil
		}
	}
	return m, nil
}

// toggleSelected flips the selected row on the active tracker. Mutations are
// synchronous: the engine writes through before returning.
func (m boardModel) toggleSelected() boardModel {
	rows := m.rows()
	if m.selected < 0 || m.selected >= len(rows) {
		return m
	}
	r := rows[m.selected]
	if r.header {
		m.lastLog = "Select an item, not a day header."
		return m
	}

	var on bool
	var delta int
	switch m.tab {
	case tabHabits:
		on, delta = m.habits.ToggleWeighted(m.ctx, r.key, r.habitPoints, r.habitPoints)
	case tabDiet:
		on, delta = m.diet.Toggle(m.ctx, r.key)
	case tabWorkout:
		on, delta = m.workout.Toggle(m.ctx, r.key)
	}

	verb := "Unchecked"
	if on {
		verb = "Checked"
	}
	m.lastLog = fmt.Sprintf("%s %s (%+d pts)", verb, r.label, delta)
	return m
}

func (m boardModel) rows() []row {
	switch m.tab {
	case tabHabits:
		return m.habitRows()
	case tabDiet:
		return m.dietRows()
	default:
		return m.workoutRows()
	}
}

func (m boardModel) habitRows() []row {
	today := m.habits.Today()
	var out []row
	for _, h := range m.plans.Habits {
		key := today + "-" + h.ID
		out = append(out, row{
			key:         key,
			label:       h.Name,
			detail:      fmt.Sprintf("+%d pts · %s", h.Points, h.Desc),
			checked:     m.habits.IsSet(key),
			habitPoints: h.Points,
		})
	}
	return out
}

func (m boardModel) dietRows() []row {
	var out []row
	for _, day := range tracker.Weekdays {
		progress := m.diet.Progress(plan.DietDayUniverse(day))
		out = append(out, row{
			header: true,
			label:  day,
			detail: fmt.Sprintf("%d/%d meals", progress.Completed, progress.Total),
		})
		for _, mealType := range plan.MealTypes {
			meal := m.plans.Menu[day][mealType]
			key := tracker.DayKey(day, mealType)
			out = append(out, row{
				key:     key,
				label:   fmt.Sprintf("%s — %s", mealType, meal.Name),
				detail:  fmt.Sprintf("%s · %s", meal.Calories, meal.Desc),
				checked: m.diet.IsSet(key),
			})
		}
	}
	return out
}

func (m boardModel) workoutRows() []row {
	var out []row
	for _, day := range tracker.Weekdays {
		dayPlan := m.plans.Workouts[day]
		progress := m.workout.Progress(plan.WorkoutDayUniverse(day, m.plans.Workouts))
		out = append(out, row{
			header: true,
			label:  fmt.Sprintf("%s · %s", day, dayPlan.Focus),
			detail: fmt.Sprintf("%d/%d exercises", progress.Completed, progress.Total),
		})
		for i, ex := range dayPlan.Exercises {
			key := tracker.DayKey(day, strconv.Itoa(i))
			out = append(out, row{
				key:     key,
				label:   ex.Name,
				detail:  fmt.Sprintf("%s sets × %s · %s", ex.Sets, ex.Reps, ex.Desc),
				checked: m.workout.IsSet(key),
			})
		}
	}
	return out
}

func (m boardModel) View() string {
	header := m.renderHeader()
	tabs := m.renderTabs()
	body := m.renderBody()
	footer := "\n" + ui.Muted.Render("space: toggle · tab: switch tracker · j/k: move · q: quit") +
		"\n" + m.lastLog
	return header + "\n" + tabs + "\n\n" + body + footer
}

func (m boardModel) renderHeader() string {
	habitProgress := m.habits.Progress(plan.HabitUniverse(mustToday(m.habits), m.plans.Habits))
	dietProgress := m.diet.Progress(plan.DietWeeklyUniverse())
	workoutProgress := m.workout.Progress(plan.WorkoutUniverse(m.plans.Workouts))

	points := m.habits.Points() + m.diet.Points() + m.workout.Points()

	return fmt.Sprintf("Health Coach | Points %d | Streak %d%s | Today %s %s | Week %s %s %s %s",
		points,
		m.habits.Streak(), ui.IconFlame,
		ui.ProgressBar(habitProgress.Completed, habitProgress.Total, 12),
		fmt.Sprintf("%d%%", habitProgress.Percent),
		ui.ProgressBar(dietProgress.Completed, dietProgress.Total, 12),
		fmt.Sprintf("%d%%", dietProgress.Percent),
		ui.ProgressBar(workoutProgress.Completed, workoutProgress.Total, 12),
		fmt.Sprintf("%d%%", workoutProgress.Percent),
	)
}

func (m boardModel) renderTabs() string {
	parts := make([]string, 0, tabCount)
	for i, name := range tabNames {
		if i == m.tab {
			parts = append(parts, ui.SelectedRow.Render("["+name+"]"))
		} else {
			parts = append(parts, ui.Muted.Render(" "+name+" "))
		}
	}
	return strings.Join(parts, " ")
}

func (m boardModel) renderBody() string {
	rows := m.rows()
	if len(rows) == 0 {
		return "(empty)"
	}
	sel := m.selected
	if sel >= len(rows) {
		sel = len(rows) - 1
	}

	var out []string
	for i, r := range rows {
		cursor := "  "
		if i == sel {
			cursor = "> "
		}
		if r.header {
			out = append(out, fmt.Sprintf("%s%s %s", cursor, ui.H2.Render(r.label), ui.Muted.Render(r.detail)))
			continue
		}
		label := r.label
		if r.checked {
			label = ui.Checked.Render(label)
		}
		out = append(out, fmt.Sprintf("%s  %s %s %s", cursor, ui.Checkbox(r.checked), label, ui.Muted.Render(r.detail)))
	}
	return strings.Join(out, "\n")
}

func mustToday(t *tracker.Tracker) time.Time {
	d, err := time.Parse(tracker.DateLayout, t.Today())
	if err != nil {
		return time.Now()
	}
	return d
}
