package ui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sutego/sutego/internal/ui/confirm"
)

// Update handles all UI state updates based on incoming messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		slog.Debug("Key pressed", "key", msg.String())
		switch m.state {
		case LIST_VIEW:
			return m.updateListView(msg)
		case BIN_VIEW:
			return m.updateBinView(msg)
		case CONFIRM_VIEW:
			return m.updateConfirmView(msg)
		}

	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		m.binList.SetWidth(msg.Width)
		return m, nil

	case confirm.TickMsg:
		if m.state == CONFIRM_VIEW {
			var cmd tea.Cmd
			m.confirm, cmd = m.confirm.Update(msg)
			return m, cmd
		}
		return m, nil

	case tasksLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.list.SetItems(msg.items)
		return m, nil

	case binLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.binList.SetItems(msg.items)
		return m, nil

	case batchFinishedMsg:
		if msg.err != nil {
			m.status = m.styles.ErrText.Render(msg.err.Error())
		} else {
			m.status = m.batchStatus(msg.result)
		}
		m.selected = make(map[string]struct{})
		return m, tea.Batch(m.loadTasksCmd(), m.loadBinCmd())

	case restoreFinishedMsg:
		if msg.err != nil {
			m.status = m.styles.ErrText.Render(msg.err.Error())
		} else {
			m.status = "Restored."
		}
		return m, tea.Batch(m.loadTasksCmd(), m.loadBinCmd())

	case lifecycleEventMsg:
		slog.Debug("lifecycle event", "kind", msg.Kind.String(), "task", msg.TaskID)
		return m, tea.Batch(
			m.loadTasksCmd(),
			m.loadBinCmd(),
			waitForEventCmd(m.events),
		)

	case errorMsg:
		m.state = QUITTING
		m.err = msg
		return m, tea.Quit
	}

	var cmd tea.Cmd
	switch m.state {
	case BIN_VIEW:
		m.binList, cmd = m.binList.Update(msg)
	default:
		m.list, cmd = m.list.Update(msg)
	}
	return m, cmd
}

// updateListView handles updates specific to the task list view
func (m *Model) updateListView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Common.Quit):
		m.state = QUITTING
		return m, tea.Quit

	case key.Matches(msg, m.keyMap.List.Delete):
		if m.list.FilterState() == list.Filtering {
			break
		}
		ids, titles := m.deleteTargets()
		if len(ids) == 0 {
			return m, nil
		}
		if !m.confirmRequired() {
			return m, m.deleteCmd(ids, false)
		}
		return m, m.openConfirm(ids, titles, false)

	case m.keyMap.List.Permanent != nil && key.Matches(msg, *m.keyMap.List.Permanent):
		if m.list.FilterState() == list.Filtering {
			break
		}
		ids, titles := m.deleteTargets()
		if len(ids) == 0 {
			return m, nil
		}
		// Permanent delete is always prompted.
		return m, m.openConfirm(ids, titles, true)

	case key.Matches(msg, m.keyMap.List.ForceDel):
		if m.list.FilterState() == list.Filtering {
			break
		}
		ids, _ := m.deleteTargets()
		if len(ids) == 0 {
			return m, nil
		}
		return m, m.deleteCmd(ids, false)

	case key.Matches(msg, m.keyMap.List.Select):
		if m.list.FilterState() != list.Filtering {
			if item, ok := m.list.SelectedItem().(Item); ok {
				m.selected[item.task.ID] = struct{}{}
				m.list.CursorDown()
				return m, m.loadTasksCmd()
			}
		}
		return m, nil

	case key.Matches(msg, m.keyMap.List.DeSelect):
		if m.list.FilterState() != list.Filtering {
			if item, ok := m.list.SelectedItem().(Item); ok {
				delete(m.selected, item.task.ID)
				m.list.CursorUp()
				return m, m.loadTasksCmd()
			}
		}
		return m, nil

	case key.Matches(msg, m.keyMap.List.Done):
		if m.list.FilterState() != list.Filtering {
			if item, ok := m.list.SelectedItem().(Item); ok {
				t := item.task
				t.Done = !t.Done
				if err := m.store.Update(t); err != nil {
					m.status = m.styles.ErrText.Render(err.Error())
					return m, nil
				}
				return m, m.loadTasksCmd()
			}
		}
		return m, nil

	case key.Matches(msg, m.keyMap.List.BinView):
		if m.list.FilterState() != list.Filtering {
			m.state = BIN_VIEW
			return m, m.loadBinCmd()
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// updateBinView handles updates specific to the recycle bin view
func (m *Model) updateBinView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Common.Quit):
		m.state = QUITTING
		return m, tea.Quit

	case key.Matches(msg, m.keyMap.Bin.Esc):
		m.state = LIST_VIEW
		return m, m.loadTasksCmd()

	case key.Matches(msg, m.keyMap.Bin.Restore):
		if item, ok := m.binList.SelectedItem().(BinItem); ok {
			return m, m.restoreCmd(item.record.TaskID)
		}
		return m, nil

	case m.keyMap.Bin.Permanent != nil && key.Matches(msg, *m.keyMap.Bin.Permanent):
		if item, ok := m.binList.SelectedItem().(BinItem); ok {
			return m, m.openConfirm(
				[]string{item.record.TaskID},
				[]string{item.record.Snapshot.Title},
				true,
			)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.binList, cmd = m.binList.Update(msg)
	return m, cmd
}

// updateConfirmView feeds keys into the confirmation bubble and acts on
// its resolution. Dismissing the prompt in any way other than an explicit
// confirm cancels the pending request.
func (m *Model) updateConfirmView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.confirm, cmd = m.confirm.Update(msg)

	if !m.confirm.Done() {
		return m, cmd
	}

	ids, permanent := m.pendingIDs, m.pendingPermanent
	m.pendingIDs = nil
	m.state = m.previous

	if m.confirm.Selected().IsAccepted() {
		return m, m.deleteCmd(ids, permanent)
	}

	slog.Debug("confirmation cancelled", "targets", len(ids))
	m.status = "Cancelled."
	return m, nil
}

func (m *Model) confirmRequired() bool {
	return m.confirmCfg.Require
}
