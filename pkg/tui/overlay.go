package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"github.com/grimportent/fronts/pkg/dialog"
)

// formOverlay renders a dialog's fields as stacked text inputs. A
// blank required field keeps the overlay open instead of submitting.
type formOverlay struct {
	d      dialog.Dialog
	inputs []textinput.Model
	focus  int
	errMsg string
}

func newFormOverlay(d dialog.Dialog) formOverlay {
	inputs := make([]textinput.Model, len(d.Fields))
	for i, f := range d.Fields {
		ti := textinput.New()
		ti.Placeholder = f.Label
		ti.CharLimit = 512
		ti.Prompt = "> "
		ti.SetValue(f.Value)
		if i == 0 {
			ti.Focus()
		}
		inputs[i] = ti
	}
	return formOverlay{d: d, inputs: inputs}
}

func (f *formOverlay) values() dialog.Values {
	v := dialog.Values{}
	for i, field := range f.d.Fields {
		v[field.Name] = f.inputs[i].Value()
	}
	return v
}

func (f *formOverlay) setFocus(i int) {
	for j := range f.inputs {
		if j == i {
			f.inputs[j].Focus()
		} else {
			f.inputs[j].Blur()
		}
	}
	f.focus = i
}

// handleKey returns done=true when the dialog resolved, either
// dismissed or with its save callback queued as a command.
func (f *formOverlay) handleKey(msg tea.KeyPressMsg, m *Model) (bool, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.status = "cancelled"
		return true, nil
	case "tab", "down":
		f.setFocus((f.focus + 1) % len(f.inputs))
		return false, nil
	case "shift+tab", "up":
		f.setFocus((f.focus + len(f.inputs) - 1) % len(f.inputs))
		return false, nil
	case "enter":
		if f.focus < len(f.inputs)-1 {
			f.setFocus(f.focus + 1)
			return false, nil
		}
		return f.submit(m)
	case "ctrl+s":
		return f.submit(m)
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	f.errMsg = ""
	return false, cmd
}

func (f *formOverlay) submit(m *Model) (bool, tea.Cmd) {
	values := f.values()
	if f.d.Incomplete(values) {
		f.errMsg = "required fields cannot be empty"
		return false, nil
	}
	if err := f.d.Validate(values); err != nil {
		f.errMsg = err.Error()
		return false, nil
	}
	var onSave dialog.Callback
	for _, b := range f.d.Buttons {
		if b.Name == "save" {
			onSave = b.OnPress
		}
	}
	if onSave == nil {
		return true, nil
	}
	m.busy = true
	m.status = "saving…"
	return true, m.mutateCmd("saved", func(ctx context.Context) error {
		return onSave(ctx, values)
	})
}

func (f *formOverlay) view(width int) string {
	title := lipgloss.NewStyle().Bold(true).Render(f.d.Title)
	parts := []string{title}
	for i, field := range f.d.Fields {
		parts = append(parts, faintStyle.Render(field.Label), f.inputs[i].View())
	}
	info := "Enter advances, ctrl+s saves, Esc cancels."
	infoStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	if f.errMsg != "" {
		info = f.errMsg
		infoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("204"))
	}
	parts = append(parts, infoStyle.Render(info))
	body := lipgloss.JoinVertical(lipgloss.Left, parts...)
	return panelStyle(width).Render(body)
}

// confirmOverlay is the yes/no gate shown before destructive entity
// deletes.
type confirmOverlay struct {
	dialog dialog.Dialog
	status string
	run    func(context.Context) error
}

func (c *confirmOverlay) view(width int) string {
	title := lipgloss.NewStyle().Bold(true).Render(c.dialog.Title)
	msg := wordwrap.String(c.dialog.Message, width-6)
	info := lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Render("y confirms, n cancels.")
	body := lipgloss.JoinVertical(lipgloss.Left, title, msg, info)
	return panelStyle(width).Render(body)
}

func panelStyle(width int) lipgloss.Style {
	w := width - 4
	if w < 20 {
		w = 20
	}
	if w > 72 {
		w = 72
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Width(w)
}
