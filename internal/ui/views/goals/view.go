package goals

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	goaldto "flowcat/internal/modules/goal/dto"
	"flowcat/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type GoalPort interface {
	List(ctx context.Context) ([]goaldto.GoalOutput, error)
	ListToday(ctx context.Context, date string) ([]goaldto.GoalOutput, error)
	Delete(ctx context.Context, id string) error
	CompleteLevel(ctx context.Context, id string) (goaldto.CompleteLevelOutput, error)
	SetActive(ctx context.Context, id string) (goaldto.GoalOutput, error)
	ClearActive(ctx context.Context) error
	PickToday(ctx context.Context, date string) (goaldto.GoalOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type GoalsLoadedMsg struct {
	Goals []goaldto.GoalOutput
	Err   error
}

// ActionDoneMsg reports the outcome of a goal mutation made from this tab.
// The app model surfaces Status in the status bar and refreshes the timer
// tab's active-goal line.
type ActionDoneMsg struct {
	Status string
	Err    error
}

// ─── list item ───────────────────────────────────────────────────────────────

type goalItem struct {
	goal goaldto.GoalOutput
}

func (i goalItem) Title() string {
	title := i.goal.Name
	if i.goal.Active {
		title = "● " + title
	}
	return title + "  " + theme.DifficultyStyle(i.goal.Difficulty).Render(i.goal.Difficulty)
}

func (i goalItem) Description() string {
	desc := fmt.Sprintf("level %d/%d  %d/%d pomodoros  %s → %s",
		i.goal.Progress, i.goal.Levels,
		i.goal.CurrentPomodoros, i.goal.PomodorosPerLevel,
		i.goal.Start, i.goal.End)
	if i.goal.Completed {
		desc += "  ✓ done"
	}
	return desc
}

func (i goalItem) FilterValue() string { return i.goal.Name }

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port      GoalPort
	list      list.Model
	todayOnly bool
	width     int
	height    int
}

func New(port GoalPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Goals"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	return Model{port: port, list: l}
}

func (m Model) Init() tea.Cmd {
	return m.Reload()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(m.width, m.height-1)

	case GoalsLoadedMsg:
		if msg.Err != nil {
			m.list.Title = "Goals — " + msg.Err.Error()
			return m, nil
		}
		m.list.Title = "Goals"
		if m.todayOnly {
			m.list.Title = "Goals — today"
		}
		items := make([]list.Item, len(msg.Goals))
		for i, g := range msg.Goals {
			items[i] = goalItem{goal: g}
		}
		return m, m.list.SetItems(items)

	case tea.KeyMsg:
		if m.Filtering() {
			break
		}
		switch msg.String() {
		case "t":
			m.todayOnly = !m.todayOnly
			return m, m.Reload()
		case "enter":
			if goal, ok := m.Selected(); ok {
				return m, m.actionCmd(func(ctx context.Context) (string, error) {
					_, err := m.port.SetActive(ctx, goal.ID)
					return "Active goal: " + goal.Name, err
				})
			}
		case "esc":
			return m, m.actionCmd(func(ctx context.Context) (string, error) {
				return "Active goal cleared", m.port.ClearActive(ctx)
			})
		case "c":
			if goal, ok := m.Selected(); ok {
				return m, m.actionCmd(func(ctx context.Context) (string, error) {
					out, err := m.port.CompleteLevel(ctx, goal.ID)
					if err != nil {
						return "", err
					}
					if !out.Advanced {
						return goal.Name + " is already complete", nil
					}
					return fmt.Sprintf("%s advanced to level %d/%d", goal.Name, out.Goal.Progress, out.Goal.Levels), nil
				})
			}
		case "x":
			if goal, ok := m.Selected(); ok {
				return m, m.actionCmd(func(ctx context.Context) (string, error) {
					return "Deleted " + goal.Name, m.port.Delete(ctx, goal.ID)
				})
			}
		case "d":
			return m, m.actionCmd(func(ctx context.Context) (string, error) {
				goal, err := m.port.PickToday(ctx, "")
				if err != nil {
					return "", err
				}
				return "Picked " + goal.Name + " for today", nil
			})
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	hints := theme.Muted.Render("n: new  e: edit  enter: activate  esc: deactivate  c: complete level  x: delete  d: pick today  t: today filter")
	return m.list.View() + "\n" + hints
}

// Selected returns the highlighted goal, if any.
func (m Model) Selected() (goaldto.GoalOutput, bool) {
	if item, ok := m.list.SelectedItem().(goalItem); ok {
		return item.goal, true
	}
	return goaldto.GoalOutput{}, false
}

// Filtering reports whether the list's search filter is active, so the
// app model can keep global keys out of the way.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// Reload refetches the goal list respecting the today filter.
func (m Model) Reload() tea.Cmd {
	todayOnly := m.todayOnly
	return func() tea.Msg {
		var (
			goals []goaldto.GoalOutput
			err   error
		)
		if todayOnly {
			goals, err = m.port.ListToday(context.Background(), "")
		} else {
			goals, err = m.port.List(context.Background())
		}
		return GoalsLoadedMsg{Goals: goals, Err: err}
	}
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m Model) actionCmd(op func(ctx context.Context) (string, error)) tea.Cmd {
	return func() tea.Msg {
		status, err := op(context.Background())
		return ActionDoneMsg{Status: status, Err: err}
	}
}
