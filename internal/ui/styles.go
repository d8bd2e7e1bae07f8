package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/sutego/sutego/internal/config"
)

const defaultWidth = 76

// Styles bundles the lipgloss styles derived from configuration.
type Styles struct {
	Cursor   lipgloss.Style
	Selected lipgloss.Style
	Dialog   lipgloss.Style
	Status   lipgloss.Style
	ErrText  lipgloss.Style
}

func newStyles(cfg config.UI) Styles {
	dialogColor := cfg.Style.DeletionDialog
	if dialogColor == "" {
		dialogColor = "#FF007F"
	}
	return Styles{
		Cursor:   lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Style.ListView.Cursor)),
		Selected: lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Style.ListView.Selected)),
		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(dialogColor)).
			Padding(1, 2),
		Status:  lipgloss.NewStyle().Faint(true),
		ErrText: lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5555")),
	}
}

// RenderDialog draws content inside the confirmation dialog frame.
func (s Styles) RenderDialog(content string) string {
	return s.Dialog.Render(content)
}
