// Package statements defines the records produced by import parsing: the
// token, leaf and statement types, their normalization rules and their
// rendering back into source form.
package statements

import (
	"regexp"
	"slices"
	"sort"
	"strings"
)

// leafIndent is the indentation of wrapped from-import leafs.
const leafIndent = "    "

// dots matches a relative-import stem: the leading dot run, then the rest.
var dots = regexp.MustCompile(`^(\.+)(.*)$`)

// SplitDots splits a relative stem into its leading-dot prefix and the
// remaining path. A stem without leading dots is returned unchanged with an
// empty prefix.
func SplitDots(stem string) (prefix, rest string) {
	match := dots.FindStringSubmatch(stem)
	if match == nil {
		return "", stem
	}
	return match[1], match[2]
}

// StatementKind distinguishes the two import grammars.
type StatementKind int

const (
	// PlainImport is the "import a.b" form; the stem may carry an alias.
	PlainImport StatementKind = iota
	// FromImport is the "from a.b import c, d as e" form.
	FromImport
)

// ImportStatement is one normalized import statement: the module path
// ("stem"), the imported leafs (empty for the plain form, where the stem
// itself may carry an alias), the comments attached to the statement rather
// than to a leaf, and the original file line numbers the statement spans.
//
// A statement is immutable once constructed; Merge returns a new record.
type ImportStatement struct {
	LineNumbers []int
	Kind        StatementKind
	Stem        string
	AsName      string // alias of a plain-import stem, empty otherwise
	Leafs       []*ImportLeaf
	Comments    []Token
}

// NewImportStatement builds a statement record. With no leafs the stem's
// " as " clause, if any, is split into the statement alias, and a redundant
// self-alias ("foo as foo") is dropped. A statement with leafs is the
// from-import form regardless of the source spelling that produced it.
func NewImportStatement(lineNumbers []int, stem string, leafs []*ImportLeaf, comments ...Token) *ImportStatement {
	asName := ""
	if len(leafs) == 0 {
		if before, after, found := strings.Cut(stem, " as "); found {
			stem = strings.TrimSpace(before)
			asName = strings.TrimSpace(after)
			if asName == stem {
				asName = ""
			}
		}
	}
	kind := PlainImport
	if len(leafs) > 0 {
		kind = FromImport
	}
	return &ImportStatement{
		LineNumbers: slices.Clone(lineNumbers),
		Kind:        kind,
		Stem:        stem,
		AsName:      asName,
		Leafs:       slices.Clone(leafs),
		Comments:    slices.Clone(comments),
	}
}

// SameTarget reports whether other imports through the same stem in the
// same form, so the two statements can be merged into one.
func (s *ImportStatement) SameTarget(other *ImportStatement) bool {
	return s.Kind == other.Kind && s.Stem == other.Stem && s.AsName == other.AsName
}

// Merge returns a new statement combining the leafs, comments and line
// numbers of s and other. The caller guarantees s.SameTarget(other).
func (s *ImportStatement) Merge(other *ImportStatement) *ImportStatement {
	numbers := append(slices.Clone(s.LineNumbers), other.LineNumbers...)
	sort.Ints(numbers)
	numbers = slices.Compact(numbers)

	return &ImportStatement{
		LineNumbers: numbers,
		Kind:        s.Kind,
		Stem:        s.Stem,
		AsName:      s.AsName,
		Leafs:       dedupLeafs(append(slices.Clone(s.Leafs), other.Leafs...)),
		Comments:    append(slices.Clone(s.Comments), other.Comments...),
	}
}

// Less orders statements for rendering: by stem, then the plain import
// before the from-import of the same stem, then by alias and leaf text.
func (s *ImportStatement) Less(other *ImportStatement) bool {
	if s.Stem != other.Stem {
		return s.Stem < other.Stem
	}
	if s.Kind != other.Kind {
		return s.Kind == PlainImport
	}
	if s.AsName != other.AsName {
		return s.AsName < other.AsName
	}
	return s.leafsText() < other.leafsText()
}

// String renders the normalized single-line form without comments.
func (s *ImportStatement) String() string {
	if s.Kind == PlainImport {
		if s.AsName != "" {
			return "import " + s.Stem + " as " + s.AsName
		}
		return "import " + s.Stem
	}
	return "from " + s.Stem + " import " + s.leafsText()
}

// Render returns the formatted source lines for the statement. A
// from-import is wrapped into the parenthesized one-leaf-per-line form when
// its single line would exceed lineLength or when leaf comments cannot be
// kept inline. lineLength <= 0 disables length-based wrapping.
func (s *ImportStatement) Render(lineLength int) []string {
	oneLine := s.String()

	if s.Kind == PlainImport {
		// A single comment stays inline; several stack above.
		if len(s.Comments) == 1 {
			inline := oneLine + "  " + s.Comments[0].CommentText()
			if lineLength <= 0 || len(inline) <= lineLength {
				return []string{inline}
			}
		}
		return append(s.commentLines(), oneLine)
	}

	// Statement comments of a from-import always render above so they stay
	// put when the output is organized again.
	lines := s.commentLines()
	leafs := sortedLeafs(s.Leafs)

	commentCount := 0
	lastCommented := -1
	for i, leaf := range leafs {
		if len(leaf.Comments) > 0 {
			commentCount += len(leaf.Comments)
			lastCommented = i
		}
	}

	fits := lineLength <= 0 || len(oneLine) <= lineLength
	if commentCount == 0 && fits {
		return append(lines, oneLine)
	}
	if commentCount == 1 && lastCommented == len(leafs)-1 {
		inline := oneLine + "  " + leafs[lastCommented].Comments[0].CommentText()
		if lineLength <= 0 || len(inline) <= lineLength {
			return append(lines, inline)
		}
	}

	lines = append(lines, "from "+s.Stem+" import (")
	for _, leaf := range leafs {
		if len(leaf.Comments) == 1 {
			lines = append(lines, leafIndent+leaf.String()+",  "+leaf.Comments[0].CommentText())
			continue
		}
		for _, comment := range leaf.Comments {
			lines = append(lines, leafIndent+comment.CommentText())
		}
		lines = append(lines, leafIndent+leaf.String()+",")
	}
	return append(lines, ")")
}

func (s *ImportStatement) commentLines() []string {
	var lines []string
	for _, comment := range s.Comments {
		lines = append(lines, comment.CommentText())
	}
	return lines
}

func (s *ImportStatement) leafsText() string {
	leafs := sortedLeafs(s.Leafs)
	parts := make([]string, 0, len(leafs))
	for _, leaf := range leafs {
		parts = append(parts, leaf.String())
	}
	return strings.Join(parts, ", ")
}

// dedupLeafs removes duplicate name/alias pairs, combining their comments.
// Input leafs are cloned, never mutated; first-seen order is kept.
func dedupLeafs(leafs []*ImportLeaf) []*ImportLeaf {
	var out []*ImportLeaf
	for _, leaf := range leafs {
		merged := false
		for _, kept := range out {
			if kept.equal(leaf) {
				kept.Comments = append(kept.Comments, leaf.Comments...)
				merged = true
				break
			}
		}
		if !merged {
			out = append(out, &ImportLeaf{
				Name:     leaf.Name,
				AsName:   leaf.AsName,
				Comments: slices.Clone(leaf.Comments),
			})
		}
	}
	return out
}

// sortedLeafs is the deduplicated, ordered leaf view used for rendering.
func sortedLeafs(leafs []*ImportLeaf) []*ImportLeaf {
	out := dedupLeafs(leafs)
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}
