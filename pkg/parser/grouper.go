// Package parser turns raw Python source lines into import statement
// records. The pipeline runs in three stages: the grouper collects the
// physical lines of each logical import statement, the tokenizer flattens a
// group into a token sequence, and the statement parser interprets the
// tokens into normalized records.
package parser

import "strings"

// Line is one physical source line paired with its 1-based line number.
type Line struct {
	Number int
	Text   string
}

// NumberLines pairs source lines with their 1-based line numbers. The lines
// must already be stripped of trailing line terminators.
func NumberLines(lines []string) []Line {
	numbered := make([]Line, 0, len(lines))
	for i, text := range lines {
		numbered = append(numbered, Line{Number: i + 1, Text: text})
	}
	return numbered
}

// LineGroup is the run of physical lines forming one logical import
// statement, with the parallel list of original line numbers.
type LineGroup struct {
	Lines   []string
	Numbers []int
}

func (g *LineGroup) push(line Line) {
	g.Lines = append(g.Lines, line.Text)
	g.Numbers = append(g.Numbers, line.Number)
}

func (g *LineGroup) last() string {
	return g.Lines[len(g.Lines)-1]
}

// Grouper scans numbered source lines for import statements, collecting the
// lines of each parenthesized or backslash-continued statement into one
// group and skipping triple-quoted comment blocks. The scan is forward-only
// and stops quietly when the input ends inside a continuation or comment
// block, since a truncated tail is indistinguishable from the end of the
// relevant content.
type Grouper struct {
	lines []Line
	pos   int
	group LineGroup
}

// NewGrouper returns a Grouper reading from lines.
func NewGrouper(lines []Line) *Grouper {
	return &Grouper{lines: lines}
}

func (g *Grouper) next() (Line, bool) {
	if g.pos >= len(g.lines) {
		return Line{}, false
	}
	line := g.lines[g.pos]
	g.pos++
	return line, true
}

// Next advances to the next import statement, returning false when no more
// remain. The collected lines are available from Group until the following
// call to Next.
func (g *Grouper) Next() bool {
	for {
		line, ok := g.next()
		if !ok {
			return false
		}

		// Skip a comment block that opens without closing on the same
		// line. The line ending the block is discarded as well, and
		// scanning resumes on the line after it.
		if opensCommentBlock(line.Text) {
			for closed := false; !closed; {
				line, ok = g.next()
				if !ok {
					return false
				}
				closed = strings.HasSuffix(line.Text, `"""`)
			}
			line, ok = g.next()
			if !ok {
				return false
			}
		}

		if !strings.HasPrefix(line.Text, "import ") && !strings.HasPrefix(line.Text, "from ") {
			continue
		}

		group := LineGroup{}
		group.push(line)

		// A parenthesis left open on the first line collects lines until
		// one contains the closing parenthesis.
		if strings.Contains(line.Text, "(") && !strings.Contains(line.Text, ")") {
			for !strings.Contains(group.last(), ")") {
				line, ok = g.next()
				if !ok {
					return false
				}
				group.push(line)
			}
		}

		// Backslash continuation is checked after parenthesis handling,
		// against whichever line is now last.
		for strings.HasSuffix(group.last(), `\`) {
			line, ok = g.next()
			if !ok {
				return false
			}
			group.push(line)
		}

		g.group = group
		return true
	}
}

// Group returns the group found by the last successful call to Next.
func (g *Grouper) Group() LineGroup {
	return g.group
}

// Groups collects every import statement group of lines in source order.
func Groups(lines []Line) []LineGroup {
	grouper := NewGrouper(lines)
	var groups []LineGroup
	for grouper.Next() {
		groups = append(groups, grouper.Group())
	}
	return groups
}

// opensCommentBlock reports whether line starts a triple-quoted block that
// does not close on the same line.
func opensCommentBlock(line string) bool {
	open := strings.Index(line, `"""`)
	return open >= 0 && !strings.Contains(line[open+3:], `"""`)
}
