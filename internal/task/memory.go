package task

import (
	"fmt"
	"sync"
)

// MemoryStore is an in-memory Store used by tests and non-persistent runs.
type MemoryStore struct {
	mu      sync.RWMutex
	tasks   map[string]Task
	status  map[string]Status
	ordered []string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		tasks:  make(map[string]Task),
		status: make(map[string]Status),
	}
}

func (s *MemoryStore) Find(id string) (Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.status[id] != StatusLive {
		return Task{}, false
	}
	return s.tasks[id], true
}

func (s *MemoryStore) List() ([]Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var tasks []Task
	for _, id := range s.ordered {
		if s.status[id] == StatusLive {
			tasks = append(tasks, s.tasks[id])
		}
	}
	return tasks, nil
}

func (s *MemoryStore) Create(t Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[t.ID]; ok {
		return fmt.Errorf("create %s: %w", t.ID, ErrExists)
	}
	s.tasks[t.ID] = t
	s.status[t.ID] = StatusLive
	s.ordered = append(s.ordered, t.ID)
	return nil
}

func (s *MemoryStore) Update(t Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status[t.ID] != StatusLive {
		return fmt.Errorf("update %s: %w", t.ID, ErrNotFound)
	}
	s.tasks[t.ID] = t
	return nil
}

func (s *MemoryStore) SoftDelete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status[id] != StatusLive {
		return fmt.Errorf("soft-delete %s: %w", id, ErrNotFound)
	}
	s.status[id] = StatusDeleted
	return nil
}

func (s *MemoryStore) HardDelete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[id]; !ok {
		return fmt.Errorf("hard-delete %s: %w", id, ErrNotFound)
	}
	delete(s.tasks, id)
	delete(s.status, id)
	for i, v := range s.ordered {
		if v == id {
			s.ordered = append(s.ordered[:i], s.ordered[i+1:]...)
			break
		}
	}
	return nil
}

func (s *MemoryStore) Restore(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status[id] != StatusDeleted {
		return fmt.Errorf("restore %s: %w", id, ErrNotFound)
	}
	s.status[id] = StatusLive
	return nil
}
