// Package task defines the task model and the storage contract the rest of
// the application is built against.
package task

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common errors returned by Store implementations
var (
	ErrNotFound = errors.New("task not found")
	ErrExists   = errors.New("task already exists")
)

// Status represents whether a task is live or soft-deleted
type Status string

const (
	StatusLive    Status = "live"
	StatusDeleted Status = "deleted"
)

// Task is a single to-do item. Once the deletion layer captures a snapshot
// of a Task, that snapshot is treated as immutable.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Done        bool      `json:"done"`
	CreatedAt   time.Time `json:"created_at"`
}

// New creates a live task with a fresh ID.
func New(title, description string) Task {
	return Task{
		ID:          uuid.New().String(),
		Title:       title,
		Description: description,
		CreatedAt:   time.Now(),
	}
}

// Store is the system of record for tasks. Whether a task is live,
// soft-deleted, or gone is decided here, not by the callers.
type Store interface {
	// Find returns the live task with the given id.
	Find(id string) (Task, bool)

	// List returns all live tasks.
	List() ([]Task, error)

	// Create adds a new live task.
	Create(t Task) error

	// Update replaces the stored live task with the same id.
	Update(t Task) error

	// SoftDelete marks a live task as deleted while retaining its data.
	// Returns ErrNotFound if no live task with the id exists.
	SoftDelete(id string) error

	// HardDelete removes a task entirely, whether live or soft-deleted.
	// Returns ErrNotFound if the id is unknown.
	HardDelete(id string) error

	// Restore turns a soft-deleted task back into a live one.
	// Returns ErrNotFound if no soft-deleted task with the id exists.
	Restore(id string) error
}
