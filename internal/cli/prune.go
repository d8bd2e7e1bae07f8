package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/samber/lo"
	"github.com/sutego/sutego/internal/recycle"
	"github.com/sutego/sutego/internal/ui"
	"github.com/sutego/sutego/internal/utils/duration"
)

var ErrInvalidArgument = errors.New(`prune requires an argument ("expired" or a duration like 30d)`)

// PruneFunc represents a single pruning operation
type PruneFunc func() error

// Prune permanently deletes recycle bin contents. It accepts "expired" to
// evict records past their retention, and durations ("30d", "2 weeks") to
// evict records deleted longer ago than that.
func (c CLI) Prune(args []string) error {
	slog.Debug("pruning recycle bin started")
	defer slog.Debug("pruning recycle bin finished")

	if len(args) == 0 {
		return ErrInvalidArgument
	}

	var spans []time.Duration
	var pruneFuncs []PruneFunc

	for _, arg := range args {
		switch arg {
		case "expired":
			pruneFuncs = append(pruneFuncs, c.pruneExpired)
		case "":
			return ErrInvalidArgument
		default:
			d, err := duration.Parse(arg)
			if err != nil {
				slog.Error("failed to parse duration", "error", err)
				return fmt.Errorf("unknown prune argument: %s", arg)
			}
			slog.Debug("parse duration", "duration", d, "arg", arg)
			spans = append(spans, d)
		}
	}

	if len(spans) > 0 {
		pruneFuncs = append(pruneFuncs, func() error {
			return c.pruneOlderThan(spans)
		})
	}

	for _, fn := range pruneFuncs {
		if err := fn(); err != nil {
			return err
		}
	}

	return nil
}

// pruneExpired evicts every record past its retention deadline.
func (c CLI) pruneExpired() error {
	evicted := c.coordinator.SweepExpired(context.Background(), time.Now())
	if len(evicted) == 0 {
		fmt.Println("No expired tasks in the recycle bin.")
		return nil
	}
	fmt.Printf("Permanently deleted %d expired task(s).\n", len(evicted))
	return nil
}

// pruneOlderThan evicts records deleted longer ago than the shortest of the
// given spans, after showing them and asking for confirmation.
func (c CLI) pruneOlderThan(spans []time.Duration) error {
	cutoff := time.Now().Add(-lo.Min(spans))
	slog.Debug("duration-based pruning", "cutoff", cutoff, "span_count", len(spans))

	candidates := lo.Filter(c.bin.List(), func(r recycle.Record, _ int) bool {
		return r.DeletedAt.Before(cutoff)
	})
	if len(candidates) == 0 {
		fmt.Println("Nothing old enough to prune.")
		return nil
	}

	renderBinTable(os.Stdout, candidates)

	prompt := fmt.Sprintf("Are you sure you want to permanently delete %d task(s)?", len(candidates))
	if !ui.Confirm(prompt, c.config.Confirm.CountdownSeconds) {
		fmt.Println("Pruning cancelled.")
		return nil
	}

	ids := lo.Map(candidates, func(r recycle.Record, _ int) string { return r.TaskID })
	result := c.coordinator.PermanentDeleteAll(context.Background(), ids)

	if len(result.Failed) > 0 {
		fmt.Printf("Failed to delete %d task(s):\n", len(result.Failed))
		for _, id := range result.Failed {
			fmt.Println(shortID(id))
		}
		return fmt.Errorf("some tasks could not be pruned")
	}

	fmt.Printf("Permanently deleted %d task(s).\n", len(result.Succeeded))
	return nil
}
