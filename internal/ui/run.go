package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sutego/sutego/internal/config"
	"github.com/sutego/sutego/internal/deletion"
	"github.com/sutego/sutego/internal/recycle"
	"github.com/sutego/sutego/internal/task"
)

// Run starts the interactive task screen and blocks until the user quits.
func Run(c *deletion.Coordinator, store task.Store, bin *recycle.Bin, cfg config.Config) error {
	m := New(c, store, bin, cfg)
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
