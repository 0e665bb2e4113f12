package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	goaldto "flowcat/internal/modules/goal/dto"
	timerdto "flowcat/internal/modules/timer/dto"
	"flowcat/internal/platform/randgen"
	"flowcat/internal/ui/components"
	"flowcat/internal/ui/theme"
	goalsview "flowcat/internal/ui/views/goals"
	timerview "flowcat/internal/ui/views/timer"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface that this orchestration layer requires.
// Sub-view ports are defined in their own packages and narrowed further.

type goalPort interface {
	Create(ctx context.Context, input goaldto.GoalInput) (goaldto.GoalOutput, error)
	Update(ctx context.Context, id string, input goaldto.GoalInput) (goaldto.GoalOutput, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (goaldto.GoalOutput, error)
	List(ctx context.Context) ([]goaldto.GoalOutput, error)
	ListToday(ctx context.Context, date string) ([]goaldto.GoalOutput, error)
	CompleteLevel(ctx context.Context, id string) (goaldto.CompleteLevelOutput, error)
	SetActive(ctx context.Context, id string) (goaldto.GoalOutput, error)
	ClearActive(ctx context.Context) error
	Active(ctx context.Context) (goaldto.GoalOutput, error)
	PickToday(ctx context.Context, date string) (goaldto.GoalOutput, error)
}

type timerPort interface {
	Start(ctx context.Context) (timerdto.TimerOutput, error)
	Pause(ctx context.Context) (timerdto.TimerOutput, error)
	Reset(ctx context.Context) (timerdto.TimerOutput, error)
	Tick(ctx context.Context) (timerdto.TimerOutput, error)
	Skip(ctx context.Context) (timerdto.TimerOutput, error)
	Snapshot(ctx context.Context) (timerdto.TimerOutput, error)
	Stats(ctx context.Context, days int) ([]timerdto.DayStatsOutput, error)
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabTimer tabID = iota
	tabGoals
	tabCount
)

var tabLabels = [tabCount]string{"Timer", "Goals"}

// ─── async messages ───────────────────────────────────────────────────────────

type goalSavedMsg struct {
	goal goaldto.GoalOutput
	err  error
}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab      key.Binding
	Help     key.Binding
	Palette  key.Binding
	Quit     key.Binding
	New      key.Binding
	Edit     key.Binding
	StartKey key.Binding
	PauseKey key.Binding
	SkipKey  key.Binding
	ResetKey key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette:  key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		New:      key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new goal")),
		Edit:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit goal")),
		StartKey: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start timer")),
		PauseKey: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause timer")),
		SkipKey:  key.NewBinding(key.WithKeys("k"), key.WithHelp("k", "skip phase")),
		ResetKey: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset timer")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.StartKey, k.PauseKey, k.SkipKey, k.ResetKey},
		{k.New, k.Edit},
		{k.Tab, k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns tab routing, the help overlay,
// the command palette, and the goal form. All business logic is delegated to
// port interfaces; all rendering is delegated to sub-views.
type Model struct {
	goal goalPort

	timerView timerview.Model
	goalsView goalsview.Model

	activeTab  tabID
	keys       keyMap
	help       help.Model
	showHelp   bool
	palette    components.Palette
	form       components.Form
	activeGoal string
	status     string
	width      int
	height     int
}

// ─── constructor ─────────────────────────────────────────────────────────────

func NewModel(goal goalPort, timer timerPort) Model {
	return Model{
		goal:      goal,
		timerView: timerview.New(timerPortBridge{p: timer}, activeGoalBridge{p: goal}),
		goalsView: goalsview.New(goalsPortBridge{p: goal}),
		activeTab: tabTimer,
		keys:      defaultKeys(),
		help:      help.New(),
		palette:   components.NewPalette(),
		form:      components.NewForm(),
		status:    "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.timerView.Init(), m.goalsView.Init())
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Overlays intercept key input while open. Non-key messages still
	// reach the views below so a running timer keeps ticking.
	_, isKey := msg.(tea.KeyMsg)
	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		if isKey {
			return m, cmd
		}
		cmds = append(cmds, cmd)
	}
	if m.form.Visible() {
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		if isKey {
			return m, cmd
		}
		cmds = append(cmds, cmd)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.form.SetWidth(min(m.width-4, 60))
		m.help.Width = m.width
		m.propagateSize()
		return m, tea.Batch(cmds...)

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"
		return m, nil

	case components.FormSubmitMsg:
		return m.executeForm(msg)

	case components.FormCancelMsg:
		m.status = "ready"
		return m, nil

	case goalSavedMsg:
		if msg.err != nil {
			m.status = "goal save failed: " + msg.err.Error()
			return m, nil
		}
		m.status = "saved goal: " + msg.goal.Name
		return m, tea.Batch(m.goalsView.Reload(), m.timerView.RefreshGoal())

	case goalsview.ActionDoneMsg:
		if msg.Err != nil {
			m.status = msg.Err.Error()
		} else {
			m.status = msg.Status
		}
		return m, tea.Batch(m.goalsView.Reload(), m.timerView.RefreshGoal())

	case timerview.StateMsg:
		if msg.Err != nil {
			m.status = msg.Err.Error()
		} else if msg.State.Message != "" {
			m.status = msg.State.Message
			// A work completion may have advanced a goal.
			cmds = append(cmds, m.goalsView.Reload())
		}

	case timerview.ActiveGoalMsg:
		if msg.Has {
			m.activeGoal = msg.Goal.Name
		} else {
			m.activeGoal = ""
		}

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}
		if m.activeTab == tabGoals && m.goalsView.Filtering() {
			break
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.activeTab = (m.activeTab + 1) % tabCount
			return m, nil
		case "shift+tab":
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
			return m, nil
		case "?":
			m.showHelp = !m.showHelp
			return m, nil
		case ":":
			return m, m.palette.Open()
		case "n":
			if m.activeTab == tabGoals {
				return m, m.openGoalForm(goaldto.GoalOutput{}, false)
			}
		case "e":
			if m.activeTab == tabGoals {
				if goal, ok := m.goalsView.Selected(); ok {
					return m, m.openGoalForm(goal, true)
				}
			}
		}
	}

	// Key presses go to the focused tab only. Everything else reaches both
	// views so the timer keeps ticking while the Goals tab has focus.
	if isKey {
		var tabCmd tea.Cmd
		switch m.activeTab {
		case tabTimer:
			m.timerView, tabCmd = m.timerView.Update(msg)
		case tabGoals:
			m.goalsView, tabCmd = m.goalsView.Update(msg)
		}
		cmds = append(cmds, tabCmd)
	} else {
		var tCmd, gCmd tea.Cmd
		m.timerView, tCmd = m.timerView.Update(msg)
		m.goalsView, gCmd = m.goalsView.Update(msg)
		cmds = append(cmds, tCmd, gCmd)
	}

	return m, tea.Batch(cmds...)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	contentH := m.height - lipgloss.Height(tabBar) - lipgloss.Height(statusBar)
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	case m.form.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.form.View())
	default:
		content = m.activeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabTimer:
		return m.timerView.View()
	case tabGoals:
		return m.goalsView.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := "flowcat  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	if m.activeGoal != "" {
		left = theme.Hot.Render("● "+m.activeGoal) + "  " + left
	}
	right := theme.Muted.Render("?:help  tab:switch  :::palette  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(input) == "" {
		return m, nil
	}
	parts := strings.Fields(input)

	switch parts[0] {
	case "goal:new":
		m.activeTab = tabGoals
		return m, m.openGoalForm(goaldto.GoalOutput{}, false)

	case "goal:edit":
		m.activeTab = tabGoals
		if goal, ok := m.goalsView.Selected(); ok {
			return m, m.openGoalForm(goal, true)
		}
		m.status = "no goal selected"
		return m, nil

	case "goal:delete", "goal:complete", "goal:activate":
		m.activeTab = tabGoals
		goal, ok := m.goalsView.Selected()
		if !ok {
			m.status = "no goal selected"
			return m, nil
		}
		return m, m.goalActionCmd(parts[0], goal)

	case "goal:deactivate":
		return m, func() tea.Msg {
			return goalsview.ActionDoneMsg{Status: "Active goal cleared", Err: m.goal.ClearActive(context.Background())}
		}

	case "goal:pick":
		return m, func() tea.Msg {
			goal, err := m.goal.PickToday(context.Background(), "")
			if err != nil {
				return goalsview.ActionDoneMsg{Err: err}
			}
			return goalsview.ActionDoneMsg{Status: "Picked " + goal.Name + " for today"}
		}

	case "timer:start", "timer:pause", "timer:skip", "timer:reset":
		m.activeTab = tabTimer
		keyFor := map[string]string{
			"timer:start": "s", "timer:pause": "p", "timer:skip": "k", "timer:reset": "r",
		}
		var cmd tea.Cmd
		m.timerView, cmd = m.timerView.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(keyFor[parts[0]])})
		return m, cmd

	case "random":
		if len(parts) != 3 {
			return m, m.form.Open("random", "Random number", []components.FormField{
				{Label: "Min", Placeholder: "1"},
				{Label: "Max", Placeholder: "100"},
			})
		}
		m.status = m.rollRandom(parts[1], parts[2])
		return m, nil

	default:
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

func (m Model) goalActionCmd(action string, goal goaldto.GoalOutput) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		switch action {
		case "goal:delete":
			return goalsview.ActionDoneMsg{Status: "Deleted " + goal.Name, Err: m.goal.Delete(ctx, goal.ID)}
		case "goal:complete":
			out, err := m.goal.CompleteLevel(ctx, goal.ID)
			if err != nil {
				return goalsview.ActionDoneMsg{Err: err}
			}
			if !out.Advanced {
				return goalsview.ActionDoneMsg{Status: goal.Name + " is already complete"}
			}
			return goalsview.ActionDoneMsg{Status: fmt.Sprintf("%s advanced to level %d/%d", goal.Name, out.Goal.Progress, out.Goal.Levels)}
		case "goal:activate":
			_, err := m.goal.SetActive(ctx, goal.ID)
			return goalsview.ActionDoneMsg{Status: "Active goal: " + goal.Name, Err: err}
		}
		return nil
	}
}

// ─── form handling ────────────────────────────────────────────────────────────

func (m *Model) openGoalForm(goal goaldto.GoalOutput, edit bool) tea.Cmd {
	id := "goal:new"
	title := "New goal"
	if edit {
		id = "goal:edit:" + goal.ID
		title = "Edit goal"
	}
	levels, ppl := "", ""
	if edit {
		levels = strconv.Itoa(goal.Levels)
		ppl = strconv.Itoa(goal.PomodorosPerLevel)
	}
	return m.form.Open(id, title, []components.FormField{
		{Label: "Name", Placeholder: "Read that book", Value: goal.Name},
		{Label: "Difficulty (Easy/Medium/Hard)", Placeholder: "Medium", Value: goal.Difficulty},
		{Label: "Levels", Placeholder: "3", Value: levels},
		{Label: "Pomodoros per level", Placeholder: "2", Value: ppl},
		{Label: "Start (YYYY-MM-DD, empty = today)", Placeholder: "", Value: goal.Start},
		{Label: "End (YYYY-MM-DD, empty = a week out)", Placeholder: "", Value: goal.End},
	})
}

func (m Model) executeForm(msg components.FormSubmitMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.ID == "random":
		if len(msg.Values) != 2 {
			return m, nil
		}
		m.status = m.rollRandom(msg.Values[0], msg.Values[1])
		return m, nil

	case msg.ID == "goal:new" || strings.HasPrefix(msg.ID, "goal:edit:"):
		if len(msg.Values) != 6 {
			return m, nil
		}
		input, err := parseGoalForm(msg.Values)
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		editID := strings.TrimPrefix(msg.ID, "goal:edit:")
		isEdit := msg.ID != "goal:new"
		return m, func() tea.Msg {
			ctx := context.Background()
			var (
				goal goaldto.GoalOutput
				err  error
			)
			if isEdit {
				goal, err = m.goal.Update(ctx, editID, input)
			} else {
				goal, err = m.goal.Create(ctx, input)
			}
			return goalSavedMsg{goal: goal, err: err}
		}
	}
	return m, nil
}

func parseGoalForm(values []string) (goaldto.GoalInput, error) {
	levels, err := strconv.Atoi(values[2])
	if err != nil {
		return goaldto.GoalInput{}, fmt.Errorf("levels must be a number")
	}
	ppl, err := strconv.Atoi(values[3])
	if err != nil {
		return goaldto.GoalInput{}, fmt.Errorf("pomodoros per level must be a number")
	}
	return goaldto.GoalInput{
		Name:              values[0],
		Difficulty:        values[1],
		Levels:            levels,
		PomodorosPerLevel: ppl,
		Start:             values[4],
		End:               values[5],
	}, nil
}

func (m Model) rollRandom(minS, maxS string) string {
	lo, err1 := strconv.Atoi(minS)
	hi, err2 := strconv.Atoi(maxS)
	if err1 != nil || err2 != nil {
		return "usage: random <min> <max>"
	}
	n, err := randgen.IntBetween(randgen.MathRand{}, lo, hi)
	if err != nil {
		return err.Error()
	}
	return fmt.Sprintf("random [%d, %d] → %d", lo, hi, n)
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.timerView, _ = m.timerView.Update(sz)
	m.goalsView, _ = m.goalsView.Update(sz)
}

// ─── port bridges ─────────────────────────────────────────────────────────────
// Each bridge narrows a broad port interface to the minimal interface needed by
// a specific sub-view, keeping view packages free of knowledge about the wider
// port surface.

type timerPortBridge struct{ p timerPort }

func (b timerPortBridge) Start(ctx context.Context) (timerdto.TimerOutput, error) {
	return b.p.Start(ctx)
}
func (b timerPortBridge) Pause(ctx context.Context) (timerdto.TimerOutput, error) {
	return b.p.Pause(ctx)
}
func (b timerPortBridge) Reset(ctx context.Context) (timerdto.TimerOutput, error) {
	return b.p.Reset(ctx)
}
func (b timerPortBridge) Tick(ctx context.Context) (timerdto.TimerOutput, error) {
	return b.p.Tick(ctx)
}
func (b timerPortBridge) Skip(ctx context.Context) (timerdto.TimerOutput, error) {
	return b.p.Skip(ctx)
}
func (b timerPortBridge) Snapshot(ctx context.Context) (timerdto.TimerOutput, error) {
	return b.p.Snapshot(ctx)
}
func (b timerPortBridge) Stats(ctx context.Context, days int) ([]timerdto.DayStatsOutput, error) {
	return b.p.Stats(ctx, days)
}

type activeGoalBridge struct{ p goalPort }

func (b activeGoalBridge) Active(ctx context.Context) (goaldto.GoalOutput, error) {
	return b.p.Active(ctx)
}

type goalsPortBridge struct{ p goalPort }

func (b goalsPortBridge) List(ctx context.Context) ([]goaldto.GoalOutput, error) { return b.p.List(ctx) }
func (b goalsPortBridge) ListToday(ctx context.Context, date string) ([]goaldto.GoalOutput, error) {
	return b.p.ListToday(ctx, date)
}
func (b goalsPortBridge) Delete(ctx context.Context, id string) error { return b.p.Delete(ctx, id) }
func (b goalsPortBridge) CompleteLevel(ctx context.Context, id string) (goaldto.CompleteLevelOutput, error) {
	return b.p.CompleteLevel(ctx, id)
}
func (b goalsPortBridge) SetActive(ctx context.Context, id string) (goaldto.GoalOutput, error) {
	return b.p.SetActive(ctx, id)
}
func (b goalsPortBridge) ClearActive(ctx context.Context) error { return b.p.ClearActive(ctx) }
func (b goalsPortBridge) PickToday(ctx context.Context, date string) (goaldto.GoalOutput, error) {
	return b.p.PickToday(ctx, date)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
