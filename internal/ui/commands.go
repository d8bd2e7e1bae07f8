package ui

import (
	"context"
	"log/slog"
	"sort"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
	"github.com/sutego/sutego/internal/deletion"
	"github.com/sutego/sutego/internal/recycle"
)

// loadTasksCmd refreshes the live task list.
func (m Model) loadTasksCmd() tea.Cmd {
	return func() tea.Msg {
		tasks, err := m.store.List()
		if err != nil {
			return tasksLoadedMsg{err: err}
		}
		slog.Debug("loading task list", "len(tasks)", len(tasks))

		items := make([]list.Item, len(tasks))
		for i, t := range tasks {
			_, selected := m.selected[t.ID]
			items[i] = Item{task: t, selected: selected}
		}
		return tasksLoadedMsg{items: items}
	}
}

// loadBinCmd refreshes the recycle bin view, newest deletion first.
func (m Model) loadBinCmd() tea.Cmd {
	return func() tea.Msg {
		records := recycle.Filter(m.bin.List(), m.binCfg)

		sort.Slice(records, func(i, j int) bool {
			return records[i].DeletedAt.After(records[j].DeletedAt)
		})

		items := lo.Map(records, func(r recycle.Record, index int) list.Item {
			return BinItem{record: r}
		})
		return binLoadedMsg{items: items}
	}
}

// deleteCmd runs an already-confirmed delete request. Confirmation happened
// in the UI, so the coordinator-level prompt is bypassed.
func (m Model) deleteCmd(ids []string, permanent bool) tea.Cmd {
	return func() tea.Msg {
		result, err := m.coordinator.RequestDelete(context.Background(), ids, deletion.Options{
			Permanent:        permanent,
			SkipConfirmation: true,
		})
		return batchFinishedMsg{result: result, err: err}
	}
}

// restoreCmd restores one task from the recycle bin.
func (m Model) restoreCmd(taskID string) tea.Cmd {
	return func() tea.Msg {
		err := m.coordinator.Restore(context.Background(), taskID)
		return restoreFinishedMsg{taskID: taskID, err: err}
	}
}

// waitForEventCmd blocks on the lifecycle event subscription and forwards
// the next event into the update loop.
func waitForEventCmd(events <-chan deletion.Event) tea.Cmd {
	return func() tea.Msg {
		e, ok := <-events
		if !ok {
			return nil
		}
		return lifecycleEventMsg(e)
	}
}
