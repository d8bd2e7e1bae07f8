package ui

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sutego/sutego/internal/ui/confirm"
)

// Confirm runs a standalone yes/no prompt outside the full-screen view.
// The countdown keeps the accept key disabled for that many seconds.
func Confirm(prompt string, countdown int) bool {
	w := &confirmProgram{inner: confirm.New(nil, false, countdown)}
	w.inner.Prompt = prompt

	if _, err := tea.NewProgram(w).Run(); err != nil {
		slog.Error("confirm failed", "error", err)
		return false
	}
	return w.inner.Selected().IsAccepted()
}

// confirmProgram adapts the confirm component into a runnable program.
type confirmProgram struct {
	inner confirm.Model
}

func (p *confirmProgram) Init() tea.Cmd {
	return p.inner.Init()
}

func (p *confirmProgram) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	p.inner, cmd = p.inner.Update(msg)
	if p.inner.Done() {
		return p, tea.Quit
	}
	return p, cmd
}

func (p *confirmProgram) View() string {
	if p.inner.Done() {
		return ""
	}
	return p.inner.View()
}
