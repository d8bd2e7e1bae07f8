package ui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/sutego/sutego/internal/deletion"
)

// tasksLoadedMsg carries a refreshed set of live-task items.
type tasksLoadedMsg struct {
	items []list.Item
	err   error
}

// binLoadedMsg carries a refreshed set of recycle-bin items.
type binLoadedMsg struct {
	items []list.Item
	err   error
}

// batchFinishedMsg reports the aggregate outcome of a delete request.
type batchFinishedMsg struct {
	result *deletion.BatchResult
	err    error
}

// restoreFinishedMsg reports the outcome of a restore.
type restoreFinishedMsg struct {
	taskID string
	err    error
}

// lifecycleEventMsg forwards a published deletion event into the UI loop.
type lifecycleEventMsg deletion.Event

// errorMsg represents any error that occurred during UI operations
type errorMsg struct {
	err error
}

func (e errorMsg) Error() string { return e.err.Error() }
