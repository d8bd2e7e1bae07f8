// Package deletion turns a delete gesture into a safely reversible,
// time-bounded, concurrency-guarded state transition backed by the recycle
// bin.
package deletion

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/samber/lo"
	"github.com/sutego/sutego/internal/history"
	"github.com/sutego/sutego/internal/recycle"
	"github.com/sutego/sutego/internal/task"
	"golang.org/x/sync/errgroup"
)

// DefaultRetention is how long a soft-deleted task stays recoverable when
// no retention is configured.
const DefaultRetention = 30 * 24 * time.Hour

// DefaultMaxBatchSize caps how many tasks one delete request may target.
const DefaultMaxBatchSize = 50

// State is a task's position in the deletion lifecycle.
//
//	Live → Deleting → SoftDeleted → {Restoring → Live | PermanentDeleting → Gone}
//
// Deleting, Restoring and PermanentDeleting are transient, and a task is
// never in two transient states at once: the in-flight guard serializes
// logically concurrent requests for the same id.
type State int

const (
	StateLive State = iota
	StateDeleting
	StateSoftDeleted
	StateRestoring
	StatePermanentDeleting
	StateGone
)

func (s State) String() string {
	switch s {
	case StateLive:
		return "live"
	case StateDeleting:
		return "deleting"
	case StateSoftDeleted:
		return "soft-deleted"
	case StateRestoring:
		return "restoring"
	case StatePermanentDeleting:
		return "permanent-deleting"
	case StateGone:
		return "gone"
	default:
		return "unknown"
	}
}

// Animator is the visual hook run as a task leaves the list. Failures are
// swallowed: presentation must never block the data-level transition.
type Animator interface {
	TaskRemoved(t task.Task) error
}

type noopAnimator struct{}

func (noopAnimator) TaskRemoved(task.Task) error { return nil }

// Options modifies how a delete request is carried out.
type Options struct {
	// Permanent skips the recycle bin and removes the tasks for good.
	Permanent bool

	// SkipConfirmation proceeds without prompting.
	SkipConfirmation bool
}

// BatchResult aggregates the outcome of a batch operation. A failing member
// never aborts its siblings, so all three slices may be populated at once.
type BatchResult struct {
	Succeeded []string
	Failed    []string
	Errors    []error

	cancelled bool
}

// Cancelled reports whether the request was resolved by the user declining.
func (r *BatchResult) Cancelled() bool {
	return r != nil && r.cancelled
}

// Coordinator owns the in-flight guard set and the recycle bin mirror, and
// orchestrates every deletion lifecycle transition. The storage collaborator
// stays the system of record for whether a task is live, soft-deleted, or
// gone.
type Coordinator struct {
	store          task.Store
	bin            *recycle.Bin
	log            *history.Log
	notifier       *Notifier
	confirmer      Confirmer
	confirmTimeout time.Duration
	animator       Animator
	retention      time.Duration
	maxBatch       int
	now            func() time.Time

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithConfirmer routes delete requests through the given prompt.
func WithConfirmer(c Confirmer) Option {
	return func(co *Coordinator) { co.confirmer = c }
}

// WithConfirmTimeout sets the countdown passed to the Confirmer with every
// prompt, during which the confirm action stays disabled.
func WithConfirmTimeout(d time.Duration) Option {
	return func(co *Coordinator) {
		if d > 0 {
			co.confirmTimeout = d
		}
	}
}

// WithAnimator installs the exit-animation hook.
func WithAnimator(a Animator) Option {
	return func(co *Coordinator) { co.animator = a }
}

// WithRetention overrides how long soft-deleted tasks stay recoverable.
func WithRetention(d time.Duration) Option {
	return func(co *Coordinator) {
		if d > 0 {
			co.retention = d
		}
	}
}

// WithMaxBatchSize overrides the batch request cap.
func WithMaxBatchSize(n int) Option {
	return func(co *Coordinator) {
		if n > 0 {
			co.maxBatch = n
		}
	}
}

// WithHistoryCap bounds the per-task audit log.
func WithHistoryCap(n int) Option {
	return func(co *Coordinator) { co.log = history.NewLog(n) }
}

// WithClock overrides the time source. Used in tests.
func WithClock(now func() time.Time) Option {
	return func(co *Coordinator) { co.now = now }
}

// NewCoordinator creates a coordinator over the given store and bin.
func NewCoordinator(store task.Store, bin *recycle.Bin, opts ...Option) *Coordinator {
	c := &Coordinator{
		store:     store,
		bin:       bin,
		log:       history.NewLog(history.DefaultMaxEntries),
		notifier:  NewNotifier(),
		animator:  noopAnimator{},
		retention: DefaultRetention,
		maxBatch:  DefaultMaxBatchSize,
		now:       time.Now,
		inFlight:  make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Events exposes the lifecycle event stream.
func (c *Coordinator) Events() *Notifier { return c.notifier }

// History exposes the audit log.
func (c *Coordinator) History() *history.Log { return c.log }

// Retention returns the configured retention period.
func (c *Coordinator) Retention() time.Duration { return c.retention }

// acquire marks id as in flight. It reports false when a delete or
// permanent delete for the same id is already underway; such duplicate
// requests are suppressed, not failed.
func (c *Coordinator) acquire(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, busy := c.inFlight[id]; busy {
		return false
	}
	c.inFlight[id] = struct{}{}
	return true
}

func (c *Coordinator) release(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.inFlight, id)
}

// RequestDelete handles a delete gesture over one or more tasks. Unless
// skipped, it routes through the confirmation prompt and proceeds only on
// approval; denial or timeout resolves without error and without any state
// change.
func (c *Coordinator) RequestDelete(ctx context.Context, taskIDs []string, opts Options) (*BatchResult, error) {
	taskIDs = lo.Uniq(taskIDs)

	if len(taskIDs) > c.maxBatch {
		return nil, fmt.Errorf("%w: %d targets (max %d)", ErrBatchTooLarge, len(taskIDs), c.maxBatch)
	}
	if len(taskIDs) == 0 {
		return &BatchResult{}, nil
	}

	if !opts.SkipConfirmation && c.confirmer != nil {
		req := NewRequest(taskIDs, opts.Permanent, c.confirmTimeout)
		decision, err := c.confirmer.Confirm(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("confirmation failed: %w", err)
		}
		if decision != Confirmed {
			slog.Debug("delete request cancelled", "targets", len(taskIDs))
			return &BatchResult{cancelled: true}, nil
		}
	}

	if opts.Permanent {
		return c.PermanentDeleteAll(ctx, taskIDs), nil
	}
	return c.SoftDeleteAll(ctx, taskIDs), nil
}

// SoftDeleteAll soft-deletes every task concurrently. Member failures are
// captured per task and never abort siblings.
func (c *Coordinator) SoftDeleteAll(ctx context.Context, taskIDs []string) *BatchResult {
	return c.batch(ctx, taskIDs, c.SoftDelete)
}

// PermanentDeleteAll permanently deletes every task concurrently, with the
// same independent-failure semantics as SoftDeleteAll.
func (c *Coordinator) PermanentDeleteAll(ctx context.Context, taskIDs []string) *BatchResult {
	return c.batch(ctx, taskIDs, c.PermanentDelete)
}

func (c *Coordinator) batch(ctx context.Context, taskIDs []string, op func(context.Context, string) error) *BatchResult {
	var (
		mu     sync.Mutex
		result BatchResult
	)

	var eg errgroup.Group
	for _, id := range taskIDs {
		eg.Go(func() error {
			err := op(ctx, id)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Failed = append(result.Failed, id)
				result.Errors = append(result.Errors, err)
				return nil
			}
			result.Succeeded = append(result.Succeeded, id)
			return nil
		})
	}
	_ = eg.Wait()

	slog.Debug("batch finished",
		"requested", len(taskIDs),
		"succeeded", len(result.Succeeded),
		"failed", len(result.Failed),
	)
	return &result
}

// SoftDelete moves one live task to the recycle bin. A duplicate request
// for a task already in flight is a no-op. The in-flight guard is released
// on every exit path; a failed deletion never leaves the task locked.
func (c *Coordinator) SoftDelete(ctx context.Context, id string) error {
	if !c.acquire(id) {
		slog.Debug("soft-delete suppressed, already in flight", "task", id)
		return nil
	}
	defer c.release(id)

	t, ok := c.store.Find(id)
	if !ok {
		return fmt.Errorf("soft-delete %s: %w", id, ErrTaskNotFound)
	}

	slog.Debug("soft-delete started", "task", id, "title", t.Title)

	// Presentation only. A failing animation must not block the
	// data-level transition.
	if err := c.animator.TaskRemoved(t); err != nil {
		slog.Warn("exit animation failed", "task", id, "error", err)
	}

	snapshot := t
	if err := c.store.SoftDelete(id); err != nil {
		if errors.Is(err, task.ErrNotFound) {
			return fmt.Errorf("soft-delete %s: %w", id, ErrTaskNotFound)
		}
		return NewStorageError("soft-delete", id, err)
	}

	record := recycle.NewRecord(snapshot, c.now(), c.retention)
	if err := c.bin.Add(record); err != nil {
		// The store transition already happened; surface the broken
		// invariant instead of hiding it.
		return fmt.Errorf("soft-delete %s: %w", id, err)
	}

	c.log.Append(history.Entry{
		TaskID:    id,
		Summary:   snapshot.Title,
		From:      StateLive.String(),
		To:        StateSoftDeleted.String(),
		Timestamp: c.now(),
	})

	c.notifier.Publish(Event{
		Kind:   TaskDeleted,
		TaskID: id,
		Task:   snapshot,
		Record: &record,
	})

	slog.Info("task soft-deleted", "task", id, "expires_at", record.ExpiresAt)
	return nil
}

// PermanentDelete removes a task for good. It is legal on a soft-deleted
// task, and also directly on a live task, which bypasses the recycle bin.
// Irreversible: no compensating operation exists.
func (c *Coordinator) PermanentDelete(ctx context.Context, id string) error {
	if !c.acquire(id) {
		slog.Debug("permanent-delete suppressed, already in flight", "task", id)
		return nil
	}
	defer c.release(id)

	return c.permanentDeleteLocked(id)
}

// permanentDeleteLocked requires the caller to hold the in-flight guard
// for id.
func (c *Coordinator) permanentDeleteLocked(id string) error {
	record, inBin := c.bin.Get(id)
	live, isLive := c.store.Find(id)

	if !inBin && !isLive {
		return fmt.Errorf("permanent-delete %s: %w", id, ErrTaskNotFound)
	}

	snapshot := live
	from := StateLive
	if inBin {
		snapshot = record.Snapshot
		from = StateSoftDeleted
	}

	if err := c.store.HardDelete(id); err != nil && !errors.Is(err, task.ErrNotFound) {
		return NewStorageError("hard-delete", id, err)
	}
	c.bin.Remove(id)

	c.log.Append(history.Entry{
		TaskID:    id,
		Summary:   snapshot.Title,
		From:      from.String(),
		To:        StateGone.String(),
		Timestamp: c.now(),
		Permanent: true,
	})

	event := Event{
		Kind:      TaskPermanentlyDeleted,
		TaskID:    id,
		Task:      snapshot,
		Permanent: true,
	}
	if inBin {
		event.Record = &record
	}
	c.notifier.Publish(event)

	slog.Info("task permanently deleted", "task", id, "from", from.String())
	return nil
}

// Restore brings a soft-deleted task back to life and drops its recycle
// record. Guarded symmetrically with delete, so a restore racing an
// in-flight delete on the same id is suppressed.
func (c *Coordinator) Restore(ctx context.Context, id string) error {
	if !c.acquire(id) {
		slog.Debug("restore suppressed, delete in flight", "task", id)
		return nil
	}
	defer c.release(id)

	record, ok := c.bin.Get(id)
	if !ok {
		return fmt.Errorf("restore %s: %w", id, ErrNotInRecycleBin)
	}

	if err := c.store.Restore(id); err != nil {
		return NewStorageError("restore", id, err)
	}
	c.bin.Remove(id)

	c.log.Append(history.Entry{
		TaskID:    id,
		Summary:   record.Snapshot.Title,
		From:      StateSoftDeleted.String(),
		To:        StateLive.String(),
		Timestamp: c.now(),
	})

	c.notifier.Publish(Event{
		Kind:   TaskRestored,
		TaskID: id,
		Task:   record.Snapshot,
		Record: &record,
	})

	slog.Info("task restored", "task", id, "title", record.Snapshot.Title)
	return nil
}

// SweepExpired evicts every recycle record whose retention window has
// passed at now, hard-deleting the underlying task exactly once per record.
// Safe to run repeatedly; records busy with another operation are skipped
// and picked up by the next sweep.
func (c *Coordinator) SweepExpired(ctx context.Context, now time.Time) []recycle.Record {
	expired := c.bin.Expired(now)
	if len(expired) == 0 {
		return nil
	}

	slog.Debug("sweeping expired recycle records", "count", len(expired))

	var evicted []recycle.Record
	for _, record := range expired {
		if !c.acquire(record.TaskID) {
			slog.Debug("sweep skipped busy task", "task", record.TaskID)
			continue
		}
		if err := c.permanentDeleteLocked(record.TaskID); err != nil {
			slog.Error("failed to evict expired record", "task", record.TaskID, "error", err)
		} else {
			evicted = append(evicted, record)
		}
		c.release(record.TaskID)
	}

	if len(evicted) > 0 {
		slog.Info("expired recycle records evicted", "count", len(evicted))
	}
	return evicted
}
