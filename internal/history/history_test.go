package history

import (
	"fmt"
	"testing"
	"time"
)

func TestAppendAndGet(t *testing.T) {
	l := NewLog(10)

	l.Append(Entry{TaskID: "a", From: "live", To: "deleting", Timestamp: time.Now()})
	l.Append(Entry{TaskID: "a", From: "deleting", To: "soft-deleted", Timestamp: time.Now()})
	l.Append(Entry{TaskID: "b", From: "live", To: "deleting", Timestamp: time.Now()})

	got := l.Get("a")
	if len(got) != 2 {
		t.Fatalf("expected 2 entries for task a, got %d", len(got))
	}
	if got[0].To != "deleting" || got[1].To != "soft-deleted" {
		t.Errorf("entries out of order: %+v", got)
	}
	if len(l.Get("b")) != 1 {
		t.Errorf("expected 1 entry for task b")
	}
	if len(l.Get("missing")) != 0 {
		t.Errorf("expected no entries for unknown task")
	}
}

func TestCapEvictsOldestFirst(t *testing.T) {
	const limit = 5
	l := NewLog(limit)

	for i := 0; i < limit+1; i++ {
		l.Append(Entry{TaskID: "a", Summary: fmt.Sprintf("entry-%d", i)})
	}

	got := l.Get("a")
	if len(got) != limit {
		t.Fatalf("expected log capped at %d, got %d", limit, len(got))
	}
	// After limit+1 appends, index 0 must be the second-ever appended entry.
	if got[0].Summary != "entry-1" {
		t.Errorf("expected oldest surviving entry to be entry-1, got %s", got[0].Summary)
	}
	if got[len(got)-1].Summary != fmt.Sprintf("entry-%d", limit) {
		t.Errorf("expected newest entry last, got %s", got[len(got)-1].Summary)
	}
}

func TestGetReturnsCopy(t *testing.T) {
	l := NewLog(10)
	l.Append(Entry{TaskID: "a", Summary: "original"})

	got := l.Get("a")
	got[0].Summary = "mutated"

	if l.Get("a")[0].Summary != "original" {
		t.Error("Get must return a copy, not the backing slice")
	}
}
