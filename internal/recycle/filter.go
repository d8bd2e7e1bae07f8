package recycle

import (
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"time"

	"github.com/gobwas/glob"
	"github.com/k1LoW/duration"
	"github.com/samber/lo"
	"github.com/sutego/sutego/internal/config"
)

// Filter narrows records down for listing based on configuration.
// It never mutates the bin itself: excluded records stay recoverable,
// they are just hidden from the view.
func Filter(records []Record, cfg config.Bin) []Record {
	records = lo.Reject(records, func(r Record, index int) bool {
		return slices.Contains(cfg.Exclude.Titles, r.Snapshot.Title)
	})
	records = lo.Reject(records, func(r Record, index int) bool {
		for _, pat := range cfg.Exclude.Patterns {
			re, err := regexp.Compile(pat)
			if err != nil {
				slog.Error("invalid exclude pattern", "pattern", pat, "error", err)
				continue
			}
			if re.MatchString(r.Snapshot.Title) {
				return true
			}
		}
		for _, g := range cfg.Exclude.Globs {
			matcher, err := glob.Compile(g)
			if err != nil {
				slog.Error("invalid exclude glob", "glob", g, "error", err)
				continue
			}
			if matcher.Match(r.Snapshot.Title) {
				return true
			}
		}
		return false
	})
	if period := cfg.Include.Period; period > 0 {
		d, err := duration.Parse(fmt.Sprintf("%d days", period))
		if err != nil {
			slog.Error("parsing duration failed", "error", err)
			return records
		}
		records = lo.Filter(records, func(r Record, index int) bool {
			return time.Since(r.DeletedAt) < d
		})
	}
	return records
}
