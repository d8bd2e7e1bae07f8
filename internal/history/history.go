// Package history keeps a bounded, append-only audit trail of deletion
// lifecycle transitions per task. It is advisory only: nothing consults it
// to decide whether a restore or permanent delete is correct.
package history

import (
	"sync"
	"time"
)

// DefaultMaxEntries caps the per-task log when no explicit cap is given.
const DefaultMaxEntries = 100

// Entry records one lifecycle transition of a task.
type Entry struct {
	TaskID    string
	Summary   string
	From      string
	To        string
	Timestamp time.Time
	Permanent bool
}

// Log is an in-memory, per-task bounded audit log. When a task's log
// exceeds the cap, the oldest entry is evicted first.
type Log struct {
	mu      sync.RWMutex
	max     int
	entries map[string][]Entry
}

// NewLog creates a Log keeping at most max entries per task.
func NewLog(max int) *Log {
	if max <= 0 {
		max = DefaultMaxEntries
	}
	return &Log{
		max:     max,
		entries: make(map[string][]Entry),
	}
}

// Append records an entry. It always succeeds.
func (l *Log) Append(e Entry) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entries := append(l.entries[e.TaskID], e)
	if len(entries) > l.max {
		entries = entries[len(entries)-l.max:]
	}
	l.entries[e.TaskID] = entries
}

// Get returns the ordered entries for taskID, oldest first.
func (l *Log) Get(taskID string) []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	entries := make([]Entry, len(l.entries[taskID]))
	copy(entries, l.entries[taskID])
	return entries
}
