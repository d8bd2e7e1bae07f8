package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/samber/lo"
	"github.com/sutego/sutego/internal/task"
)

// AddTask creates a live task. Remaining positional args become the
// description.
func (c CLI) AddTask(title string, args []string) error {
	t := task.New(title, strings.Join(args, " "))
	if err := c.store.Create(t); err != nil {
		return fmt.Errorf("failed to add task: %w", err)
	}
	slog.Debug("task added", "id", t.ID, "title", t.Title)
	fmt.Printf("Added %q (%s)\n", t.Title, shortID(t.ID))
	return nil
}

// MarkDone marks a live task as done. The id may be a unique prefix of the
// full task id.
func (c CLI) MarkDone(id string) error {
	t, err := c.findByPrefix(id)
	if err != nil {
		return err
	}
	if t.Done {
		fmt.Printf("Already done: %s\n", t.Title)
		return nil
	}
	t.Done = true
	if err := c.store.Update(t); err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	slog.Debug("task marked done", "id", t.ID)
	fmt.Printf("Done: %s\n", t.Title)
	return nil
}

func (c CLI) findByPrefix(id string) (task.Task, error) {
	if t, ok := c.store.Find(id); ok {
		return t, nil
	}

	tasks, err := c.store.List()
	if err != nil {
		return task.Task{}, err
	}
	matches := lo.Filter(tasks, func(t task.Task, _ int) bool {
		return strings.HasPrefix(t.ID, id)
	})

	switch len(matches) {
	case 0:
		return task.Task{}, fmt.Errorf("no task with id %q: %w", id, task.ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return task.Task{}, errors.New("ambiguous id prefix: " + id)
	}
}
