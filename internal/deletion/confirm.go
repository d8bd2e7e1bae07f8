package deletion

import (
	"context"
	"time"
)

// Decision is the outcome of one confirmation prompt. Exactly one decision
// is produced per prompt; any disposal other than an explicit confirm is a
// cancellation.
type Decision int

const (
	Cancelled Decision = iota
	Confirmed
)

func (d Decision) String() string {
	if d == Confirmed {
		return "confirmed"
	}
	return "cancelled"
}

// Request describes one pending user decision. It exists only for the
// duration of that decision and is never persisted.
type Request struct {
	TargetIDs []string
	Permanent bool
	Timeout   time.Duration
	CreatedAt time.Time
}

// NewRequest builds a Request stamped with the current time.
func NewRequest(targetIDs []string, permanent bool, timeout time.Duration) Request {
	return Request{
		TargetIDs: targetIDs,
		Permanent: permanent,
		Timeout:   timeout,
		CreatedAt: time.Now(),
	}
}

// Confirmer presents a single cancellable, time-gated confirm/deny decision
// to the user. Implementations must show at most one active prompt at a
// time and must keep cancellation available during any countdown.
type Confirmer interface {
	Confirm(ctx context.Context, req Request) (Decision, error)
}

// AutoConfirmer resolves every prompt with a fixed decision. Used in
// non-interactive contexts and tests.
type AutoConfirmer struct {
	Decision Decision
}

func (a AutoConfirmer) Confirm(ctx context.Context, req Request) (Decision, error) {
	select {
	case <-ctx.Done():
		return Cancelled, ctx.Err()
	default:
		return a.Decision, nil
	}
}
