package statements

import "strings"

// ImportLeaf is one imported name within a from-import, with an optional
// alias and the comment tokens attached to it.
type ImportLeaf struct {
	Name     string
	AsName   string // empty when the leaf has no alias
	Comments []Token
}

// NewImportLeaf parses name, which may carry an " as " clause, into a leaf.
// A redundant self-alias ("b as b") is dropped so the normalized form never
// aliases a name to itself.
func NewImportLeaf(name string, comments ...Token) *ImportLeaf {
	asName := ""
	if before, after, found := strings.Cut(name, " as "); found {
		name = strings.TrimSpace(before)
		asName = strings.TrimSpace(after)
	} else {
		name = strings.TrimSpace(name)
	}
	if asName == name {
		asName = ""
	}
	return &ImportLeaf{Name: name, AsName: asName, Comments: comments}
}

// String renders the leaf as it appears in a from-import: "name" or
// "name as alias".
func (l *ImportLeaf) String() string {
	if l.AsName == "" {
		return l.Name
	}
	return l.Name + " as " + l.AsName
}

// Less orders leafs by name, then by alias.
func (l *ImportLeaf) Less(other *ImportLeaf) bool {
	if l.Name != other.Name {
		return l.Name < other.Name
	}
	return l.AsName < other.AsName
}

// equal reports whether two leafs import the same name under the same
// alias. Comments do not participate.
func (l *ImportLeaf) equal(other *ImportLeaf) bool {
	return l.Name == other.Name && l.AsName == other.AsName
}
