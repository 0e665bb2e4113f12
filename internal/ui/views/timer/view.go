package timer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	goaldto "flowcat/internal/modules/goal/dto"
	timerdto "flowcat/internal/modules/timer/dto"
	"flowcat/internal/ui/theme"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type TimerPort interface {
	Start(ctx context.Context) (timerdto.TimerOutput, error)
	Pause(ctx context.Context) (timerdto.TimerOutput, error)
	Reset(ctx context.Context) (timerdto.TimerOutput, error)
	Tick(ctx context.Context) (timerdto.TimerOutput, error)
	Skip(ctx context.Context) (timerdto.TimerOutput, error)
	Snapshot(ctx context.Context) (timerdto.TimerOutput, error)
	Stats(ctx context.Context, days int) ([]timerdto.DayStatsOutput, error)
}

type GoalPort interface {
	Active(ctx context.Context) (goaldto.GoalOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

// StateMsg carries a fresh timer snapshot. The app model watches it for a
// non-empty Message, which marks a phase transition worth announcing.
type StateMsg struct {
	State timerdto.TimerOutput
	Err   error
}

type StatsLoadedMsg struct {
	Stats []timerdto.DayStatsOutput
	Err   error
}

type ActiveGoalMsg struct {
	Goal goaldto.GoalOutput
	Has  bool
}

type tickMsg time.Time

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	timer     TimerPort
	goals     GoalPort
	state     timerdto.TimerOutput
	stats     []timerdto.DayStatsOutput
	active    goaldto.GoalOutput
	hasActive bool
	bar       progress.Model
	// ticking guards against stacking more than one tick chain when the
	// user mashes start.
	ticking bool
	width   int
	height  int
}

func New(timerPort TimerPort, goalPort GoalPort) Model {
	bar := progress.New(
		progress.WithGradient(string(theme.Lavender), string(theme.Sapphire)),
		progress.WithoutPercentage(),
	)
	return Model{timer: timerPort, goals: goalPort, bar: bar}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.snapshotCmd(), m.statsCmd(), m.RefreshGoal())
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		w := m.width / 2
		if w < 20 {
			w = 20
		}
		m.bar.Width = w

	case tea.KeyMsg:
		switch msg.String() {
		case "s":
			return m, m.portCmd(m.timer.Start)
		case "p":
			return m, m.portCmd(m.timer.Pause)
		case "k":
			return m, m.portCmd(m.timer.Skip)
		case "r":
			return m, m.portCmd(m.timer.Reset)
		}

	case StateMsg:
		if msg.Err != nil && msg.State.Clock == "" {
			return m, nil
		}
		completed := msg.State.Message != ""
		m.state = msg.State
		var cmds []tea.Cmd
		if m.state.Running && !m.ticking {
			m.ticking = true
			cmds = append(cmds, tickEvery())
		}
		if completed {
			// A work completion may have credited the active goal and
			// bumped the daily tally.
			cmds = append(cmds, m.statsCmd(), m.RefreshGoal())
		}
		return m, tea.Batch(cmds...)

	case tickMsg:
		if !m.state.Running {
			m.ticking = false
			return m, nil
		}
		return m, tea.Batch(m.portCmd(m.timer.Tick), tickEvery())

	case StatsLoadedMsg:
		if msg.Err == nil {
			m.stats = msg.Stats
		}

	case ActiveGoalMsg:
		m.active = msg.Goal
		m.hasActive = msg.Has
	}

	return m, nil
}

func (m Model) View() string {
	var sb strings.Builder

	phase := theme.Title.Render(m.state.PhaseLabel)
	if !m.state.Running {
		phase += theme.Muted.Render("  (paused)")
	}
	sb.WriteString(phase + "\n\n")
	sb.WriteString(theme.Hot.Render(bigClock(m.state.Clock)) + "\n\n")

	if m.state.PhaseTotal > 0 {
		done := float64(m.state.PhaseTotal-m.state.Remaining) / float64(m.state.PhaseTotal)
		sb.WriteString(m.bar.ViewAs(done) + "\n\n")
	}

	sb.WriteString(fmt.Sprintf("%s%d\n", theme.Muted.Render("sessions: "), m.state.Sessions))
	if m.hasActive {
		sb.WriteString(theme.Muted.Render("goal:     ") +
			m.active.Name +
			theme.Muted.Render(fmt.Sprintf("  %d/%d pomodoros  level %d/%d",
				m.active.CurrentPomodoros, m.active.PomodorosPerLevel,
				m.active.Progress, m.active.Levels)) + "\n")
	} else {
		sb.WriteString(theme.Muted.Render("goal:     none active") + "\n")
	}

	if len(m.stats) > 0 {
		sb.WriteString("\n" + theme.Title.Render("Recent days") + "\n")
		for _, d := range m.stats {
			sb.WriteString(fmt.Sprintf("%s  %s\n", theme.Muted.Render(d.Day), strings.Repeat("▪", d.Sessions)))
		}
	}

	sb.WriteString("\n" + theme.Muted.Render("s: start  p: pause  k: skip  r: reset"))

	pane := theme.Pane.Width(m.width - 4).Height(m.height - 2).Render(sb.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Top, pane)
}

// RefreshGoal reloads the active-goal line. The app model also calls this
// after goal actions taken from the goals tab.
func (m Model) RefreshGoal() tea.Cmd {
	return func() tea.Msg {
		goal, err := m.goals.Active(context.Background())
		if err != nil {
			return ActiveGoalMsg{}
		}
		return ActiveGoalMsg{Goal: goal, Has: true}
	}
}

// ─── private ─────────────────────────────────────────────────────────────────

func tickEvery() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) portCmd(op func(context.Context) (timerdto.TimerOutput, error)) tea.Cmd {
	return func() tea.Msg {
		out, err := op(context.Background())
		return StateMsg{State: out, Err: err}
	}
}

func (m Model) snapshotCmd() tea.Cmd {
	return m.portCmd(m.timer.Snapshot)
}

func (m Model) statsCmd() tea.Cmd {
	return func() tea.Msg {
		stats, err := m.timer.Stats(context.Background(), 7)
		return StatsLoadedMsg{Stats: stats, Err: err}
	}
}

// bigClock spaces the clock digits out so the countdown reads at a glance.
func bigClock(clock string) string {
	if clock == "" {
		clock = "00:00"
	}
	parts := make([]string, 0, len(clock))
	for _, r := range clock {
		parts = append(parts, string(r))
	}
	return strings.Join(parts, " ")
}
