package confirm

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestMessageWording(t *testing.T) {
	testCases := []struct {
		name      string
		titles    []string
		permanent bool
		expected  string
	}{
		{
			name:     "singular soft",
			titles:   []string{"buy milk"},
			expected: "Are you sure you want to delete 'buy milk'?",
		},
		{
			name:      "singular permanent",
			titles:    []string{"buy milk"},
			permanent: true,
			expected:  "Are you sure you want to completely delete 'buy milk'?",
		},
		{
			name:     "plural soft",
			titles:   []string{"a", "b", "c"},
			expected: "Are you sure you want to delete 3 tasks?",
		},
		{
			name:      "plural permanent",
			titles:    []string{"a", "b"},
			permanent: true,
			expected:  "Are you sure you want to completely delete 2 tasks?",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Message(tc.titles, tc.permanent); got != tc.expected {
				t.Errorf("Message = %q, want %q", got, tc.expected)
			}
		})
	}
}

func TestImmediateConfirmWithoutCountdown(t *testing.T) {
	m := New([]string{"x"}, false, 0)

	if !m.AcceptAvailable() {
		t.Fatal("accept should be available when no countdown is configured")
	}
	m, _ = m.Update(keyMsg("y"))
	if !m.Done() || !m.Selected().IsAccepted() {
		t.Errorf("expected accepted decision, got done=%v selected=%v", m.Done(), m.Selected())
	}
}

func TestCountdownGatesConfirm(t *testing.T) {
	const countdown = 3
	m := New([]string{"x"}, true, countdown)

	// Accept is unavailable for the full countdown; pressing y is ignored.
	for i := 0; i < countdown; i++ {
		if m.AcceptAvailable() {
			t.Fatalf("accept available with %d ticks remaining", countdown-i)
		}
		m, _ = m.Update(keyMsg("y"))
		if m.Done() {
			t.Fatal("confirm must be disabled during the countdown")
		}
		m, _ = m.Update(TickMsg{gen: m.gen})
	}

	// Immediately after the countdown it is available.
	if !m.AcceptAvailable() {
		t.Fatal("accept should be available once the countdown reaches zero")
	}
	m, _ = m.Update(keyMsg("y"))
	if !m.Selected().IsAccepted() {
		t.Error("expected accept to resolve the prompt after the countdown")
	}
}

func TestCancelDuringCountdown(t *testing.T) {
	m := New([]string{"x"}, false, 5)

	m, _ = m.Update(TickMsg{gen: m.gen})
	m, _ = m.Update(keyMsg("esc"))

	if !m.Done() || !m.Selected().IsDenied() {
		t.Fatal("cancellation must be available at any point during the countdown")
	}

	// The pending countdown must never re-enable a confirm after
	// cancellation.
	for i := 0; i < 10; i++ {
		m, _ = m.Update(TickMsg{gen: m.gen})
	}
	m, _ = m.Update(keyMsg("y"))
	if !m.Selected().IsDenied() {
		t.Error("a confirm after cancellation must be impossible")
	}
}

func TestExactlyOneDecisionPerPrompt(t *testing.T) {
	m := New([]string{"x"}, false, 0)

	m, _ = m.Update(keyMsg("y"))
	first := m.Selected()
	m, _ = m.Update(keyMsg("n"))

	if m.Selected() != first {
		t.Error("a resolved prompt must not change its decision")
	}
}

func TestViewShowsCountdown(t *testing.T) {
	m := New([]string{"x"}, false, 2)

	if view := m.View(); !strings.Contains(view, "confirm available in 2s") {
		t.Errorf("view should show the countdown, got %q", view)
	}

	m, _ = m.Update(TickMsg{gen: m.gen})
	m, _ = m.Update(TickMsg{gen: m.gen})

	if view := m.View(); !strings.Contains(view, "(y/n)") {
		t.Errorf("view should offer y/n after the countdown, got %q", view)
	}
}

func TestStaleTickFromEarlierPromptIsIgnored(t *testing.T) {
	first := New([]string{"x"}, false, 3)
	stale := TickMsg{gen: first.gen}
	first, _ = first.Update(keyMsg("esc"))
	if !first.Done() {
		t.Fatal("first prompt should be cancelled")
	}

	second := New([]string{"y"}, false, 3)

	// A tick scheduled by the dismissed prompt arrives at the new one:
	// it must neither advance the countdown nor start a second tick chain.
	m, cmd := second.Update(stale)
	if cmd != nil {
		t.Error("stale tick must not re-arm the tick chain")
	}
	if m.remaining != 3 {
		t.Errorf("stale tick advanced the countdown: remaining = %d, want 3", m.remaining)
	}

	// The prompt's own ticks still count down normally.
	m, cmd = m.Update(TickMsg{gen: m.gen})
	if m.remaining != 2 {
		t.Errorf("own tick did not advance the countdown: remaining = %d, want 2", m.remaining)
	}
	if cmd == nil {
		t.Error("own tick should schedule the next one while the countdown runs")
	}
}
