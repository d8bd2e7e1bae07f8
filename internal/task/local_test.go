package task

import (
	"errors"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) (*LocalStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tasks.json")
	s, err := NewLocalStore(path)
	if err != nil {
		t.Fatalf("NewLocalStore() error = %v", err)
	}
	return s, path
}

func TestLocalStoreLifecycle(t *testing.T) {
	s, _ := newTestStore(t)

	task := New("write report", "quarterly numbers")
	if err := s.Create(task); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, ok := s.Find(task.ID)
	if !ok {
		t.Fatal("Find() returned false for a live task")
	}
	if got.Title != "write report" {
		t.Errorf("Find() title = %q, want %q", got.Title, "write report")
	}

	if err := s.SoftDelete(task.ID); err != nil {
		t.Fatalf("SoftDelete() error = %v", err)
	}
	if _, ok := s.Find(task.ID); ok {
		t.Error("Find() returned true for a soft-deleted task")
	}
	tasks, err := s.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("List() after soft-delete = %d tasks, want 0", len(tasks))
	}

	if err := s.Restore(task.ID); err != nil {
		t.Fatalf("Restore() error = %v", err)
	}
	if _, ok := s.Find(task.ID); !ok {
		t.Error("Find() returned false after restore")
	}

	if err := s.HardDelete(task.ID); err != nil {
		t.Fatalf("HardDelete() error = %v", err)
	}
	if err := s.HardDelete(task.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second HardDelete() error = %v, want ErrNotFound", err)
	}
}

func TestLocalStoreCreateDuplicate(t *testing.T) {
	s, _ := newTestStore(t)

	task := New("dup", "")
	if err := s.Create(task); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := s.Create(task); !errors.Is(err, ErrExists) {
		t.Errorf("Create() duplicate error = %v, want ErrExists", err)
	}
}

func TestLocalStoreUpdateRequiresLive(t *testing.T) {
	s, _ := newTestStore(t)

	task := New("update me", "")
	if err := s.Create(task); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := s.SoftDelete(task.ID); err != nil {
		t.Fatalf("SoftDelete() error = %v", err)
	}

	task.Done = true
	if err := s.Update(task); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update() of soft-deleted task error = %v, want ErrNotFound", err)
	}
}

func TestLocalStorePersistsAcrossReopen(t *testing.T) {
	s, path := newTestStore(t)

	live := New("stays live", "")
	deleted := New("stays deleted", "")
	for _, task := range []Task{live, deleted} {
		if err := s.Create(task); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}
	if err := s.SoftDelete(deleted.ID); err != nil {
		t.Fatalf("SoftDelete() error = %v", err)
	}

	reopened, err := NewLocalStore(path)
	if err != nil {
		t.Fatalf("NewLocalStore() reopen error = %v", err)
	}

	if _, ok := reopened.Find(live.ID); !ok {
		t.Error("live task lost across reopen")
	}
	if _, ok := reopened.Find(deleted.ID); ok {
		t.Error("soft-deleted task came back live across reopen")
	}
	if err := reopened.Restore(deleted.ID); err != nil {
		t.Errorf("Restore() after reopen error = %v", err)
	}
}
