package task

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/sutego/sutego/internal/fs"
)

const storeVersion = 1

// record is the persisted form of a task. Soft-deleted tasks stay in the
// file with StatusDeleted until they are hard-deleted.
type record struct {
	Task   Task   `json:"task"`
	Status Status `json:"status"`
}

type fileState struct {
	Version int      `json:"version"`
	Tasks   []record `json:"tasks"`
}

// LocalStore is a JSON file backed Store. Every mutation is written back
// atomically so a crash never leaves a half-written task file behind.
type LocalStore struct {
	path string

	mu      sync.RWMutex
	records []record
}

// NewLocalStore loads (or initializes) the task file at path.
func NewLocalStore(path string) (*LocalStore, error) {
	s := &LocalStore{path: path}
	if err := s.load(); err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	return s, nil
}

func (s *LocalStore) load() error {
	f, err := os.Open(s.path)
	if err != nil {
		return err
	}
	defer f.Close()

	var state fileState
	if err := json.NewDecoder(f).Decode(&state); err != nil {
		return err
	}
	slog.Debug("task store loaded", "path", s.path, "tasks", len(state.Tasks))
	s.records = state.Tasks
	return nil
}

// save must be called with s.mu held.
func (s *LocalStore) save() error {
	state := fileState{Version: storeVersion, Tasks: s.records}
	return fs.WriteAtomic(s.path, func(f *os.File) error {
		enc := json.NewEncoder(f)
		enc.SetIndent("", "  ")
		return enc.Encode(&state)
	})
}

func (s *LocalStore) index(id string) int {
	for i, r := range s.records {
		if r.Task.ID == id {
			return i
		}
	}
	return -1
}

func (s *LocalStore) Find(id string) (Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.index(id); i >= 0 && s.records[i].Status == StatusLive {
		return s.records[i].Task, true
	}
	return Task{}, false
}

func (s *LocalStore) List() ([]Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var tasks []Task
	for _, r := range s.records {
		if r.Status == StatusLive {
			tasks = append(tasks, r.Task)
		}
	}
	return tasks, nil
}

func (s *LocalStore) Create(t Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.index(t.ID) >= 0 {
		return fmt.Errorf("create %s: %w", t.ID, ErrExists)
	}
	s.records = append(s.records, record{Task: t, Status: StatusLive})
	return s.save()
}

func (s *LocalStore) Update(t Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(t.ID)
	if i < 0 || s.records[i].Status != StatusLive {
		return fmt.Errorf("update %s: %w", t.ID, ErrNotFound)
	}
	s.records[i].Task = t
	return s.save()
}

func (s *LocalStore) SoftDelete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 || s.records[i].Status != StatusLive {
		return fmt.Errorf("soft-delete %s: %w", id, ErrNotFound)
	}
	s.records[i].Status = StatusDeleted
	return s.save()
}

func (s *LocalStore) HardDelete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return fmt.Errorf("hard-delete %s: %w", id, ErrNotFound)
	}
	s.records = append(s.records[:i], s.records[i+1:]...)
	return s.save()
}

func (s *LocalStore) Restore(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 || s.records[i].Status != StatusDeleted {
		return fmt.Errorf("restore %s: %w", id, ErrNotFound)
	}
	s.records[i].Status = StatusLive
	return s.save()
}
