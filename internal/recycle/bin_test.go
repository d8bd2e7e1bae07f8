package recycle

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sutego/sutego/internal/task"
)

func newRecord(t *testing.T, title string, deletedAt time.Time) Record {
	t.Helper()
	return NewRecord(task.New(title, ""), deletedAt, 30*24*time.Hour)
}

func TestAddRejectsDuplicates(t *testing.T) {
	b := Open(filepath.Join(t.TempDir(), "recycle.json"))

	r := newRecord(t, "dup", time.Now())
	if err := b.Add(r); err != nil {
		t.Fatalf("first Add failed: %v", err)
	}
	if err := b.Add(r); !errors.Is(err, ErrDuplicateRecord) {
		t.Fatalf("second Add = %v, want ErrDuplicateRecord", err)
	}
	if b.Len() != 1 {
		t.Errorf("bin has %d records, want 1", b.Len())
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	b := Open(filepath.Join(t.TempDir(), "recycle.json"))

	r := newRecord(t, "gone", time.Now())
	if err := b.Add(r); err != nil {
		t.Fatal(err)
	}

	b.Remove(r.TaskID)
	b.Remove(r.TaskID) // absent: no-op
	b.Remove("never-existed")

	if b.Len() != 0 {
		t.Errorf("bin has %d records, want 0", b.Len())
	}
}

func TestExpired(t *testing.T) {
	b := Open(filepath.Join(t.TempDir(), "recycle.json"))
	now := time.Now()

	old := newRecord(t, "old", now.Add(-31*24*time.Hour))
	edge := newRecord(t, "edge", now.Add(-30*24*time.Hour))
	fresh := newRecord(t, "fresh", now)

	for _, r := range []Record{old, edge, fresh} {
		if err := b.Add(r); err != nil {
			t.Fatal(err)
		}
	}

	expired := b.Expired(now)
	if len(expired) != 2 {
		t.Fatalf("expected 2 expired records (ExpiresAt <= now), got %d", len(expired))
	}
	for _, r := range expired {
		if r.TaskID == fresh.TaskID {
			t.Error("fresh record reported as expired")
		}
	}
	if b.Len() != 3 {
		t.Error("Expired must not remove records itself")
	}
}

func TestPersistenceRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recycle.json")

	b := Open(path)
	r := newRecord(t, "survives restart", time.Now())
	if err := b.Add(r); err != nil {
		t.Fatal(err)
	}

	reopened := Open(path)
	got, ok := reopened.Get(r.TaskID)
	if !ok {
		t.Fatal("record did not survive reopen")
	}
	if got.Snapshot.Title != "survives restart" {
		t.Errorf("snapshot title = %q", got.Snapshot.Title)
	}
	if !got.ExpiresAt.Equal(r.ExpiresAt) {
		t.Errorf("ExpiresAt changed across restart: %v != %v", got.ExpiresAt, r.ExpiresAt)
	}
}

func TestCorruptFileDegradesToEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recycle.json")
	if err := os.WriteFile(path, []byte("{definitely not json"), 0600); err != nil {
		t.Fatal(err)
	}

	b := Open(path)
	if b.Len() != 0 {
		t.Errorf("corrupt bin should open empty, has %d records", b.Len())
	}

	// The bin must still be usable afterwards.
	if err := b.Add(newRecord(t, "fresh start", time.Now())); err != nil {
		t.Fatalf("Add after corrupt open failed: %v", err)
	}
}

func TestRecordInvariant(t *testing.T) {
	now := time.Now()
	r := NewRecord(task.New("x", ""), now, time.Hour)

	if !r.ExpiresAt.After(r.DeletedAt) {
		t.Error("ExpiresAt must be strictly after DeletedAt")
	}
	if r.Expired(now) {
		t.Error("record must not be expired before its window passes")
	}
	if !r.Expired(now.Add(time.Hour)) {
		t.Error("record must be expired once ExpiresAt <= now")
	}
}
