package recycle

import (
	"testing"
	"time"

	"github.com/sutego/sutego/internal/config"
	"github.com/sutego/sutego/internal/task"
)

func createFilterRecords(t *testing.T) []Record {
	t.Helper()
	now := time.Now()
	retention := 90 * 24 * time.Hour
	return []Record{
		NewRecord(task.Task{ID: "1", Title: "buy milk"}, now.Add(-24*time.Hour), retention),
		NewRecord(task.Task{ID: "2", Title: "scratch.tmp"}, now.Add(-48*time.Hour), retention),
		NewRecord(task.Task{ID: "3", Title: "weekly report"}, now.Add(-10*24*time.Hour), retention),
		NewRecord(task.Task{ID: "4", Title: "ancient chore"}, now.Add(-40*24*time.Hour), retention),
	}
}

func TestFilter(t *testing.T) {
	testCases := []struct {
		name     string
		cfg      config.Bin
		expected []string
	}{
		{
			name:     "no filters",
			cfg:      config.Bin{},
			expected: []string{"1", "2", "3", "4"},
		},
		{
			name: "exclude by title",
			cfg: config.Bin{
				Exclude: config.ExcludeConfig{Titles: []string{"buy milk"}},
			},
			expected: []string{"2", "3", "4"},
		},
		{
			name: "exclude by pattern",
			cfg: config.Bin{
				Exclude: config.ExcludeConfig{Patterns: []string{`\.tmp$`}},
			},
			expected: []string{"1", "3", "4"},
		},
		{
			name: "exclude by glob",
			cfg: config.Bin{
				Exclude: config.ExcludeConfig{Globs: []string{"weekly *"}},
			},
			expected: []string{"1", "2", "4"},
		},
		{
			name: "include within period",
			cfg: config.Bin{
				Include: config.IncludeConfig{Period: 30},
			},
			expected: []string{"1", "2", "3"},
		},
		{
			name: "invalid pattern is skipped",
			cfg: config.Bin{
				Exclude: config.ExcludeConfig{Patterns: []string{"("}},
			},
			expected: []string{"1", "2", "3", "4"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Filter(createFilterRecords(t), tc.cfg)
			if len(got) != len(tc.expected) {
				t.Fatalf("got %d records, want %d", len(got), len(tc.expected))
			}
			for i, r := range got {
				if r.TaskID != tc.expected[i] {
					t.Errorf("record[%d] = %s, want %s", i, r.TaskID, tc.expected[i])
				}
			}
		})
	}
}
