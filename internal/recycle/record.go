// Package recycle implements the recycle bin: the durable set of
// soft-deleted task snapshots with a bounded retention window.
package recycle

import (
	"time"

	"github.com/k0kubun/pp/v3"
	"github.com/sutego/sutego/internal/task"
)

// Record holds everything needed to bring a soft-deleted task back.
// Invariant: at most one Record per task id exists at any time, and
// ExpiresAt is strictly after DeletedAt.
type Record struct {
	TaskID    string    `json:"task_id"`
	Snapshot  task.Task `json:"snapshot"`
	DeletedAt time.Time `json:"deleted_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// NewRecord captures a snapshot of t and stamps its retention window.
func NewRecord(t task.Task, now time.Time, retention time.Duration) Record {
	return Record{
		TaskID:    t.ID,
		Snapshot:  t,
		DeletedAt: now,
		ExpiresAt: now.Add(retention),
	}
}

// Expired reports whether the record's retention window has passed.
func (r Record) Expired(now time.Time) bool {
	return !r.ExpiresAt.After(now)
}

func (r Record) String() string {
	p := pp.New()
	p.SetColoringEnabled(false)
	return p.Sprint(r)
}
