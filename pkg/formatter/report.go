package formatter

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
	"github.com/jedib0t/go-pretty/v6/table"
)

// printSummary prints a one line processing summary.
func printSummary(results []FileResult) {
	failed := 0
	changed := 0
	for _, result := range results {
		if result.Err != nil {
			failed++
		} else if result.Changed {
			changed++
		}
	}

	summary := fmt.Sprintf("\nProcessed %s", english.Plural(len(results), "file", ""))
	if changed > 0 {
		summary += fmt.Sprintf(", %s with unorganized imports", english.Plural(changed, "file", ""))
	}
	if failed > 0 {
		summary += fmt.Sprintf(", %s failed", english.Plural(failed, "file", ""))
	}
	fmt.Println(summary)
}

// printCheckReport renders a per file status table for check mode.
func printCheckReport(results []FileResult) {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false
	tbl.Style().Options.SeparateColumns = false
	tbl.Style().Options.DrawBorder = false
	tbl.Style().Options.SeparateHeader = false

	tbl.AppendHeader(table.Row{"FILE", "STATUS", "SIZE"})
	for _, result := range results {
		status := "organized"
		switch {
		case result.Err != nil:
			status = "error"
		case result.Changed:
			status = "unorganized"
		}
		tbl.AppendRow(table.Row{result.Path, status, humanize.Bytes(uint64(result.Size))})
	}
	fmt.Println(tbl.Render())
}
