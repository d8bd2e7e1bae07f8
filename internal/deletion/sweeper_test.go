package deletion

import (
	"context"
	"testing"
	"time"
)

func TestSweeperRunsAtStartup(t *testing.T) {
	c, store := newTestCoordinator(t, WithRetention(time.Millisecond))
	tk := createTask(t, store, "expires instantly")

	if err := c.SoftDelete(context.Background(), tk.ID); err != nil {
		t.Fatal(err)
	}
	time.Sleep(5 * time.Millisecond)

	s := NewSweeper(c, time.Hour)
	s.Start(context.Background())
	defer s.Stop()

	deadline := time.After(time.Second)
	for c.bin.Len() != 0 {
		select {
		case <-deadline:
			t.Fatal("startup sweep did not evict the expired record")
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestSweeperStopIsIdempotent(t *testing.T) {
	c, _ := newTestCoordinator(t)

	s := NewSweeper(c, time.Hour)
	s.Start(context.Background())

	s.Stop()
	s.Stop() // must not panic or hang
}
