package formatter

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// printDiff writes a colored line diff between the original and organized
// source to stdout.
func printDiff(path, original, organized string) {
	dmp := diffmatchpatch.New()
	src, dst, lineArray := dmp.DiffLinesToRunes(original, organized)
	diffs := dmp.DiffMainRunes(src, dst, false)
	diffs = dmp.DiffCleanupMerge(dmp.DiffCleanupSemanticLossless(diffs))
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	color.New(color.Bold).Fprintf(os.Stdout, "--- a/%s\n+++ b/%s\n", path, path)
	for _, diff := range diffs {
		for _, line := range diffTextLines(diff.Text) {
			switch diff.Type {
			case diffmatchpatch.DiffDelete:
				color.New(color.FgRed).Fprintf(os.Stdout, "-%s\n", line)
			case diffmatchpatch.DiffInsert:
				color.New(color.FgGreen).Fprintf(os.Stdout, "+%s\n", line)
			default:
				fmt.Fprintf(os.Stdout, " %s\n", line)
			}
		}
	}
}

// diffTextLines splits diff text into lines, dropping the empty segment a
// trailing newline produces.
func diffTextLines(text string) []string {
	lines := strings.Split(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
