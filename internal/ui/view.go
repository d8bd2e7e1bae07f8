package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View satisfies the tea.Model interface
func (m *Model) View() string {
	if m.state == QUITTING {
		if m.exitMessage != "" {
			return m.exitMessage + "\n"
		}
		return ""
	}

	var base string
	switch m.state {
	case BIN_VIEW:
		base = m.binList.View()
	case CONFIRM_VIEW:
		if m.previous == BIN_VIEW {
			base = m.binList.View()
		} else {
			base = m.list.View()
		}
		dialog := m.styles.RenderDialog(m.confirm.View())
		return renderDialogOverBase(base, dialog)
	default:
		base = m.list.View()
	}

	if m.status != "" {
		base += "\n" + m.styles.Status.Render(m.status)
	}
	return base
}

// renderDialogOverBase centers the dialog box over the base view.
func renderDialogOverBase(base, dialog string) string {
	baseLines := strings.Split(base, "\n")
	dialogLines := strings.Split(dialog, "\n")

	height := len(baseLines)
	if height < len(dialogLines) {
		return dialog
	}

	width := 0
	for _, line := range baseLines {
		if w := lipgloss.Width(line); w > width {
			width = w
		}
	}

	start := (height - len(dialogLines)) / 2
	for i, dl := range dialogLines {
		pad := (width - lipgloss.Width(dl)) / 2
		if pad < 0 {
			pad = 0
		}
		baseLines[start+i] = strings.Repeat(" ", pad) + dl
	}
	return strings.Join(baseLines, "\n")
}
