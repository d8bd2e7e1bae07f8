package recycle

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/sutego/sutego/internal/fs"
)

const binVersion = 1

// ErrDuplicateRecord is returned when a record for the same task id is
// added twice. Callers must not soft-delete an already soft-deleted task.
var ErrDuplicateRecord = errors.New("recycle record already exists for task")

type binState struct {
	Version int      `json:"version"`
	Records []Record `json:"records"`
}

// Bin is the in-memory mirror of the persisted recycle bin. It is saved
// after every mutation; a failed save is logged and the in-memory state
// remains the authority until the next successful save.
type Bin struct {
	path string

	mu      sync.RWMutex
	records []Record
}

// Open loads the bin persisted at path. A missing, unreadable or corrupt
// file degrades to an empty bin: losing recycle records only makes tasks
// unrecoverable, it must never block startup.
func Open(path string) *Bin {
	b := &Bin{path: path}

	f, err := os.Open(path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("failed to open recycle bin, starting empty", "path", path, "error", err)
		}
		return b
	}
	defer f.Close()

	var state binState
	if err := json.NewDecoder(f).Decode(&state); err != nil {
		slog.Warn("recycle bin is corrupt, starting empty", "path", path, "error", err)
		return b
	}

	b.records = state.Records
	slog.Debug("recycle bin loaded", "path", path, "records", len(b.records))
	return b
}

// save must be called with b.mu held.
func (b *Bin) save() {
	state := binState{Version: binVersion, Records: b.records}
	err := fs.WriteAtomic(b.path, func(f *os.File) error {
		enc := json.NewEncoder(f)
		enc.SetIndent("", "  ")
		return enc.Encode(&state)
	})
	if err != nil {
		// In-memory state stays authoritative until the next save succeeds.
		slog.Error("failed to save recycle bin", "path", b.path, "error", err)
	}
}

func (b *Bin) index(taskID string) int {
	for i, r := range b.records {
		if r.TaskID == taskID {
			return i
		}
	}
	return -1
}

// Add stores a new record. Fails with ErrDuplicateRecord if a record for
// the same task id already exists.
func (b *Bin) Add(r Record) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.index(r.TaskID) >= 0 {
		return fmt.Errorf("add %s: %w", r.TaskID, ErrDuplicateRecord)
	}
	b.records = append(b.records, r)
	b.save()
	return nil
}

// Remove drops the record for taskID. It is idempotent; removing an
// absent record is a no-op.
func (b *Bin) Remove(taskID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	i := b.index(taskID)
	if i < 0 {
		return
	}
	b.records = append(b.records[:i], b.records[i+1:]...)
	b.save()
}

// Get returns the record for taskID, if any.
func (b *Bin) Get(taskID string) (Record, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if i := b.index(taskID); i >= 0 {
		return b.records[i], true
	}
	return Record{}, false
}

// List returns all records, oldest deletion first.
func (b *Bin) List() []Record {
	b.mu.RLock()
	defer b.mu.RUnlock()

	records := make([]Record, len(b.records))
	copy(records, b.records)
	return records
}

// Len returns the number of records currently held.
func (b *Bin) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.records)
}

// Expired returns the records whose retention window has passed at now.
// It does not remove them: eviction is the coordinator's job, after the
// underlying task has been hard-deleted.
func (b *Bin) Expired(now time.Time) []Record {
	b.mu.RLock()
	defer b.mu.RUnlock()

	var expired []Record
	for _, r := range b.records {
		if r.Expired(now) {
			expired = append(expired, r)
		}
	}
	return expired
}
