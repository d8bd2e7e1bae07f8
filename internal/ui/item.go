package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/dustin/go-humanize"
	"github.com/sutego/sutego/internal/recycle"
	"github.com/sutego/sutego/internal/task"
)

// Item wraps a live task for the list view.
type Item struct {
	task     task.Task
	selected bool
}

var _ list.Item = (*Item)(nil)

func (i Item) Title() string {
	title := i.task.Title
	if i.task.Done {
		title = "✓ " + title
	}
	if i.selected {
		title = "● " + title
	}
	return title
}

func (i Item) Description() string {
	if i.task.Description != "" {
		return i.task.Description
	}
	return "created " + humanize.Time(i.task.CreatedAt)
}

func (i Item) FilterValue() string { return i.task.Title }

// BinItem wraps a recycle record for the bin view.
type BinItem struct {
	record recycle.Record
}

var _ list.Item = (*BinItem)(nil)

func (b BinItem) Title() string { return b.record.Snapshot.Title }

func (b BinItem) Description() string {
	return fmt.Sprintf("deleted %s, expires %s",
		humanize.Time(b.record.DeletedAt),
		humanize.Time(b.record.ExpiresAt),
	)
}

func (b BinItem) FilterValue() string { return b.record.Snapshot.Title }
