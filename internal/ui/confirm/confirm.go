// Package confirm implements the deletion confirmation bubble: a single
// pending yes/no decision, optionally gated behind a once-per-second
// countdown during which only cancellation is available.
package confirm

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jimschubert/answer/colors"
)

// Decision is an enumeration of decisions available in the confirmation bubble
type Decision int

const (
	// Undecided indicates the state in which a user has not made a selection
	Undecided Decision = iota

	// Accepted indicates the user has provided a positive response
	Accepted

	// Denied indicates the user has provided a negative response
	Denied
)

// String satisfies the fmt.Stringer interface
func (d Decision) String() string {
	return [...]string{
		"undecided",
		"accepted",
		"denied",
	}[d]
}

// IsAccepted is a helper to indicate the positive confirmation state was selected
func (d Decision) IsAccepted() bool { return d == Accepted }

// IsDenied is a helper to indicate the negative confirmation state was selected
func (d Decision) IsDenied() bool { return d == Denied }

// TickMsg advances the countdown by one second. It is stamped with the
// generation of the prompt that scheduled it, so a tick left pending by a
// dismissed prompt cannot drive a later one.
type TickMsg struct {
	gen uint64
}

var promptGen atomic.Uint64

// Styles holds relevant styles used for rendering
type Styles struct {
	PromptPrefix lipgloss.Style
	Prompt       lipgloss.Style
	Countdown    lipgloss.Style
	Help         lipgloss.Style
}

// Model represents the bubble tea model for the confirm bubble
type Model struct {
	// PromptPrefix is a character or other indicator rendered before the prompt
	PromptPrefix string

	// Prompt is the question shown to the user
	Prompt string

	// Styles is the group of available styles
	Styles Styles

	gen       uint64
	remaining int
	selected  Decision
	done      bool
}

// New creates a confirmation bubble for the given targets. titles carry the
// display names of the tasks in question; countdown > 0 disables the accept
// action for that many seconds while cancellation stays available.
func New(titles []string, permanent bool, countdown int) Model {
	return Model{
		PromptPrefix: "? ",
		Prompt:       Message(titles, permanent),
		Styles: Styles{
			PromptPrefix: lipgloss.NewStyle().Foreground(lipgloss.Color(colors.PromptPrefix)),
			Countdown:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FF8800")),
			Help:         lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Placeholder)),
		},
		gen:       promptGen.Add(1),
		remaining: countdown,
	}
}

// Message builds the confirmation wording, differentiating singular vs
// plural target count and soft vs permanent deletion.
func Message(titles []string, permanent bool) string {
	verb := "delete"
	if permanent {
		verb = "completely delete"
	}
	switch len(titles) {
	case 1:
		return fmt.Sprintf("Are you sure you want to %s '%s'?", verb, titles[0])
	default:
		return fmt.Sprintf("Are you sure you want to %s %d tasks?", verb, len(titles))
	}
}

// Selected retrieves the user-selected Decision value
func (m Model) Selected() Decision { return m.selected }

// Done reports whether a decision has been produced.
func (m Model) Done() bool { return m.done }

// AcceptAvailable reports whether the accept action is currently enabled.
// It stays disabled until the countdown reaches zero.
func (m Model) AcceptAvailable() bool { return !m.done && m.remaining <= 0 }

func tick(gen uint64) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return TickMsg{gen: gen}
	})
}

// Init satisfies the tea.Model interface
func (m Model) Init() tea.Cmd {
	if m.remaining > 0 {
		return tick(m.gen)
	}
	return nil
}

// Update satisfies the tea.Model interface. Exactly one of accepted/denied
// is produced per prompt; every disposal other than an explicit accept is
// a denial.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.done {
		// Resolution already happened; late ticks and keys are no-ops.
		return m, nil
	}

	switch msg := msg.(type) {
	case TickMsg:
		if msg.gen != m.gen {
			// Tick from an earlier prompt; swallowing it keeps this
			// prompt's chain at one tick per second.
			return m, nil
		}
		if m.remaining > 0 {
			m.remaining--
		}
		if m.remaining > 0 {
			return m, tick(m.gen)
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "y", "Y", "enter":
			if !m.AcceptAvailable() {
				return m, nil
			}
			m.selected = Accepted
			m.done = true
			return m, nil
		case "n", "N", "esc", "q", "ctrl+c":
			m.selected = Denied
			m.done = true
			return m, nil
		}
	}

	return m, nil
}

// View satisfies the tea.Model interface
func (m Model) View() string {
	var b strings.Builder

	if m.PromptPrefix != "" {
		b.WriteString(m.Styles.PromptPrefix.Inline(true).Render(m.PromptPrefix))
		if !strings.HasSuffix(m.PromptPrefix, " ") {
			b.WriteString(" ")
		}
	}

	b.WriteString(m.Styles.Prompt.Inline(true).Render(m.Prompt))
	b.WriteString("\n\n")

	if m.remaining > 0 {
		b.WriteString(m.Styles.Countdown.Render(
			fmt.Sprintf("confirm available in %ds", m.remaining)))
		b.WriteString("\n")
		b.WriteString(m.Styles.Help.Render("(n/esc to cancel)"))
	} else {
		b.WriteString(m.Styles.Help.Render("(y/n)"))
	}

	return b.String()
}
