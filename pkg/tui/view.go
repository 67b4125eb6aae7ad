package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("204"))
	dirtyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("178")).Bold(true)
)

const helpText = `j/k move · g/G jump · enter expand/collapse
x toggle portent or secret · r refresh

add:  f front · d danger · p portent · s secret
      c cast · S stake · h hook · l location
edit: i · delete: D · quit: q

press any key to close`

func (m Model) View() string {
	switch m.mode {
	case modeHelp:
		return m.helpView()
	case modeDialog:
		if m.form != nil {
			return m.chrome(m.form.view(m.width))
		}
	case modeConfirm:
		if m.confirm != nil {
			return m.chrome(m.confirm.view(m.width))
		}
	}
	return m.chrome(m.bodyView())
}

func (m Model) bodyView() string {
	if len(m.rows) == 0 {
		empty := "No fronts yet. Press f to create one."
		if m.view.Doc == nil {
			empty = "Loading…"
		}
		return statusStyle.Render(empty)
	}
	h := m.bodyHeight()
	top := m.svc.State.Scroll
	end := top + h
	if end > len(m.rows) {
		end = len(m.rows)
	}
	lines := make([]string, 0, end-top)
	for i := top; i < end; i++ {
		lines = append(lines, m.render(m.rows[i], i == m.cursor))
	}
	return strings.Join(lines, "\n")
}

// chrome wraps content with the title bar and status line.
func (m Model) chrome(content string) string {
	title := titleStyle.Render("Fronts")
	if m.view.Dirty {
		title += " " + dirtyStyle.Render("· unsaved")
	}
	status := m.status
	style := statusStyle
	if m.view.Err != "" {
		status = m.view.Err
		style = errStyle
	}
	if m.busy {
		status += " …"
	}
	w := m.width
	if w < 20 {
		w = 20
	}
	return title + "\n" + content + "\n" + style.Render(wordwrap.String(status, w)) + "\n" + statusStyle.Render("? for help")
}

func (m Model) helpView() string {
	return m.chrome(helpText)
}
