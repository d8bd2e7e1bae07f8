package deletion

import (
	"log/slog"
	"sync"

	"github.com/sutego/sutego/internal/recycle"
	"github.com/sutego/sutego/internal/task"
)

// EventKind enumerates the lifecycle transitions published to subscribers.
type EventKind int

const (
	// TaskDeleted is published when a task completes a soft delete.
	TaskDeleted EventKind = iota

	// TaskPermanentlyDeleted is published when a task is gone for good,
	// whether by explicit request or by expiry sweep.
	TaskPermanentlyDeleted

	// TaskRestored is published when a soft-deleted task is live again.
	TaskRestored
)

func (k EventKind) String() string {
	switch k {
	case TaskDeleted:
		return "taskDeleted"
	case TaskPermanentlyDeleted:
		return "taskPermanentlyDeleted"
	case TaskRestored:
		return "taskRestored"
	default:
		return "unknown"
	}
}

// Event carries the payload of one completed transition.
type Event struct {
	Kind      EventKind
	TaskID    string
	Task      task.Task
	Record    *recycle.Record
	Permanent bool
}

// Notifier broadcasts events to all current subscribers. Delivery is
// fire-and-forget and serialized: a subscriber callback is never invoked
// on two goroutines at once, even when publishers are concurrent. A
// failing subscriber never affects the publisher's state or the other
// subscribers.
type Notifier struct {
	mu   sync.Mutex
	next int
	subs map[int]func(Event)

	// dispatch serializes the delivery loop. Kept separate from mu so a
	// subscriber may subscribe or unsubscribe from within its callback.
	dispatch sync.Mutex
}

func NewNotifier() *Notifier {
	return &Notifier{subs: make(map[int]func(Event))}
}

// Subscribe registers fn for all future events and returns a function that
// removes the subscription. Unsubscribing twice is harmless.
func (n *Notifier) Subscribe(fn func(Event)) func() {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.next
	n.next++
	n.subs[id] = fn

	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.subs, id)
	}
}

// Publish delivers e to every subscriber in turn. Concurrent publishers
// queue behind one another, so subscribers observe a serial stream. A
// panicking subscriber is logged and skipped.
func (n *Notifier) Publish(e Event) {
	n.mu.Lock()
	subs := make([]func(Event), 0, len(n.subs))
	for _, fn := range n.subs {
		subs = append(subs, fn)
	}
	n.mu.Unlock()

	n.dispatch.Lock()
	defer n.dispatch.Unlock()
	for _, fn := range subs {
		deliver(fn, e)
	}
}

func deliver(fn func(Event), e Event) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("event subscriber panicked", "event", e.Kind.String(), "panic", r)
		}
	}()
	fn(e)
}
