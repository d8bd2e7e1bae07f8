package deletion

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Sweeper periodically evicts expired recycle records. The sweep itself has
// no cancellation semantics: once a pass starts it runs to completion, and
// Stop only prevents further passes.
type Sweeper struct {
	coordinator *Coordinator
	interval    time.Duration

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// NewSweeper creates a sweeper driving c every interval.
func NewSweeper(c *Coordinator, interval time.Duration) *Sweeper {
	if interval <= 0 {
		interval = time.Hour
	}
	return &Sweeper{
		coordinator: c,
		interval:    interval,
		stop:        make(chan struct{}),
		done:        make(chan struct{}),
	}
}

// Start runs one immediate sweep, then keeps sweeping on the configured
// interval until Stop is called or ctx is cancelled.
func (s *Sweeper) Start(ctx context.Context) {
	go func() {
		defer close(s.done)

		s.coordinator.SweepExpired(ctx, time.Now())

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				slog.Debug("sweeper stopped", "reason", ctx.Err())
				return
			case <-s.stop:
				slog.Debug("sweeper stopped")
				return
			case now := <-ticker.C:
				s.coordinator.SweepExpired(ctx, now)
			}
		}
	}()
}

// Stop halts future sweeps and waits for the running pass, if any, to
// finish. Idempotent and race-free with the ticker's own firing.
func (s *Sweeper) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })
	<-s.done
}
