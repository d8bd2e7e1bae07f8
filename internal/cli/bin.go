package cli

import (
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"
	"github.com/sutego/sutego/internal/recycle"
)

// ListBin prints the recycle bin as a table, newest deletions first.
func (c CLI) ListBin() error {
	slog.Debug("listing recycle bin started")
	defer slog.Debug("listing recycle bin finished")

	records := recycle.Filter(c.bin.List(), c.config.Bin)
	if len(records) == 0 {
		fmt.Println("Recycle bin is empty.")
		return nil
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].DeletedAt.After(records[j].DeletedAt)
	})

	renderBinTable(os.Stdout, records)
	return nil
}

func renderBinTable(w *os.File, records []recycle.Record) {
	if !isatty.IsTerminal(w.Fd()) {
		color.NoColor = true
	}
	green := color.New(color.FgHiGreen).SprintFunc()

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Title", "Deleted", "Expires"})
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for _, r := range records {
		table.Append([]string{
			green(shortID(r.TaskID)),
			r.Snapshot.Title,
			humanize.Time(r.DeletedAt),
			humanize.Time(r.ExpiresAt),
		})
	}
	table.Render()
}

// shortID trims a UUID down to its first group, enough to disambiguate
// within a single bin.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
