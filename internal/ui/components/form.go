package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"flowcat/internal/ui/theme"
)

// FormField describes one input line of a form overlay.
type FormField struct {
	Label       string
	Placeholder string
	Value       string
}

// FormSubmitMsg carries the confirmed field values, in field order. ID
// identifies which form was open.
type FormSubmitMsg struct {
	ID     string
	Values []string
}

// FormCancelMsg is emitted when the user presses esc.
type FormCancelMsg struct{ ID string }

var (
	formStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Lavender).
			Background(theme.Mantle).
			Foreground(theme.Text).
			Padding(0, 1)

	formLabelStyle = lipgloss.NewStyle().Foreground(theme.Subtext0)
)

// Form is a modal stack of labelled text inputs. Tab and shift+tab move
// focus; enter on the last field (or ctrl+s anywhere) submits.
type Form struct {
	id      string
	title   string
	labels  []string
	inputs  []textinput.Model
	focus   int
	visible bool
	width   int
}

func NewForm() Form {
	return Form{}
}

func (f Form) Visible() bool { return f.visible }

func (f *Form) SetWidth(w int) { f.width = w }

// Open shows the form with the given fields and focuses the first one.
func (f *Form) Open(id, title string, fields []FormField) tea.Cmd {
	f.id = id
	f.title = title
	f.visible = true
	f.focus = 0
	f.labels = make([]string, len(fields))
	f.inputs = make([]textinput.Model, len(fields))
	for i, field := range fields {
		ti := textinput.New()
		ti.Placeholder = field.Placeholder
		ti.SetValue(field.Value)
		ti.CharLimit = 128
		f.labels[i] = field.Label
		f.inputs[i] = ti
	}
	if len(f.inputs) == 0 {
		f.visible = false
		return nil
	}
	return f.inputs[0].Focus()
}

func (f Form) Update(msg tea.Msg) (Form, tea.Cmd) {
	if !f.visible {
		return f, nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			id := f.id
			f.close()
			return f, func() tea.Msg { return FormCancelMsg{ID: id} }
		case "ctrl+s":
			return f.submit()
		case "tab", "down":
			return f.moveFocus(1)
		case "shift+tab", "up":
			return f.moveFocus(-1)
		case "enter":
			if f.focus == len(f.inputs)-1 {
				return f.submit()
			}
			return f.moveFocus(1)
		}
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f Form) View() string {
	if !f.visible {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(f.title) + "\n\n")
	for i := range f.inputs {
		sb.WriteString(formLabelStyle.Render(f.labels[i]) + "\n")
		sb.WriteString(f.inputs[i].View() + "\n")
	}
	sb.WriteString("\n" + formLabelStyle.Render("enter: next/save  ctrl+s: save  esc: cancel"))

	w := f.width
	if w < 20 {
		w = 56
	}
	return formStyle.Width(w - 2).Render(sb.String())
}

func (f Form) submit() (Form, tea.Cmd) {
	values := make([]string, len(f.inputs))
	for i := range f.inputs {
		values[i] = strings.TrimSpace(f.inputs[i].Value())
	}
	id := f.id
	f.close()
	return f, func() tea.Msg { return FormSubmitMsg{ID: id, Values: values} }
}

func (f *Form) close() {
	f.visible = false
	if len(f.inputs) > 0 {
		f.inputs[f.focus].Blur()
	}
	f.id = ""
}

func (f Form) moveFocus(delta int) (Form, tea.Cmd) {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + len(f.inputs)) % len(f.inputs)
	return f, f.inputs[f.focus].Focus()
}
