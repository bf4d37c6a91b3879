package parser

import (
	"fmt"
	"strings"

	"github.com/purpleP/importanize/pkg/errors"
	"github.com/purpleP/importanize/pkg/statements"
	"github.com/purpleP/importanize/pkg/utils"
)

// ParseError reports a line group whose tokens match neither import
// grammar. It carries the original line numbers of the offending group so
// the caller can point at the source.
type ParseError struct {
	LineNumbers []int
	Reason      string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at lines %v", e.Reason, e.LineNumbers)
}

// ParseStatements parses every line group into statement records, in source
// order. On a grammar failure the statements parsed from earlier groups are
// returned together with the error for the offending group; the caller
// decides whether to drop the file or keep the partial result.
func ParseStatements(groups []LineGroup) ([]*statements.ImportStatement, error) {
	var parsed []*statements.ImportStatement
	for _, group := range groups {
		fromGroup, err := ParseGroup(group)
		if err != nil {
			return parsed, err
		}
		parsed = append(parsed, fromGroup...)
	}
	return parsed, nil
}

// ParseGroup parses the tokens of one line group. A plain import
// contributes one statement per comma-separated stem; a from-import
// contributes exactly one statement carrying all its leafs. A group whose
// tokens fit neither grammar is rejected whole.
func ParseGroup(group LineGroup) ([]*statements.ImportStatement, error) {
	tokens := Tokenize(group.Lines)
	if len(tokens) == 0 {
		return nil, &ParseError{LineNumbers: group.Numbers, Reason: errors.ErrMsgEmptyStatement}
	}
	if tokens[0] == importKeyword {
		return parsePlain(tokens[1:], group.Numbers)
	}
	return parseFrom(tokens[1:], group.Numbers)
}

func parsePlain(tokens []statements.Token, lineNumbers []int) ([]*statements.ImportStatement, error) {
	var parsed []*statements.ImportStatement
	for _, segment := range utils.SplitOn(tokens, commaToken) {
		stem, comments := splitComments(segment)
		if stem == "" {
			return nil, &ParseError{LineNumbers: lineNumbers, Reason: errors.ErrMsgMissingStem}
		}
		parsed = append(parsed, ParseImportStatement(stem, lineNumbers, comments...))
	}
	return parsed, nil
}

func parseFrom(tokens []statements.Token, lineNumbers []int) ([]*statements.ImportStatement, error) {
	parts := utils.SplitOn(tokens, importKeyword)
	if len(parts) != 2 {
		// A trailing separator leaves a single part: the keyword is
		// there, the names are not.
		reason := errors.ErrMsgMissingSeparator
		if len(parts) == 1 && tokens[len(tokens)-1] == importKeyword {
			reason = errors.ErrMsgMissingLeaf
		}
		return nil, &ParseError{LineNumbers: lineNumbers, Reason: reason}
	}

	stem, stemComments := splitComments(parts[0])
	if stem == "" {
		return nil, &ParseError{LineNumbers: lineNumbers, Reason: errors.ErrMsgMissingStem}
	}

	var leafs []*statements.ImportLeaf
	for _, segment := range utils.SplitOn(parts[1], commaToken) {
		name, comments := splitComments(segment)
		if name == "" {
			return nil, &ParseError{LineNumbers: lineNumbers, Reason: errors.ErrMsgMissingLeaf}
		}
		leafs = append(leafs, statements.NewImportLeaf(name, comments...))
	}
	if len(leafs) == 0 {
		return nil, &ParseError{LineNumbers: lineNumbers, Reason: errors.ErrMsgMissingLeaf}
	}

	return []*statements.ImportStatement{
		statements.NewImportStatement(lineNumbers, stem, leafs, stemComments...),
	}, nil
}

// ParseImportStatement normalizes one plain-import stem into a statement
// record. A relative stem has its leading dots split off and the last path
// segment folded into an implicit leaf, so ".foo.bar" becomes stem ".foo"
// with leaf "bar". A dotted stem carrying an alias clause likewise moves
// its last segment into a leaf, so "a.b as c" becomes stem "a" with leaf
// "b as c". The dot fold runs before alias handling; redundant self-aliases
// are dropped by the leaf and statement constructors.
func ParseImportStatement(stem string, lineNumbers []int, comments ...statements.Token) *statements.ImportStatement {
	var leafs []*statements.ImportLeaf

	if strings.HasPrefix(stem, ".") {
		prefix, rest := statements.SplitDots(stem)
		stem = prefix
		leafName := rest
		if i := strings.LastIndex(rest, "."); i >= 0 {
			stem += rest[:i]
			leafName = rest[i+1:]
		}
		leafs = append(leafs, statements.NewImportLeaf(leafName))
	} else if i := strings.LastIndex(stem, "."); i >= 0 && strings.Contains(stem, " as ") {
		leafName := stem[i+1:]
		stem = stem[:i]
		leafs = append(leafs, statements.NewImportLeaf(leafName))
	}

	return statements.NewImportStatement(lineNumbers, stem, leafs, comments...)
}

// splitComments separates a token segment into its space-joined word text
// and its comment tokens. Joining keeps multi-word clauses such as "b as c"
// intact.
func splitComments(segment []statements.Token) (string, []statements.Token) {
	var words []string
	var comments []statements.Token
	for _, token := range segment {
		if token.IsComment() {
			comments = append(comments, token)
			continue
		}
		words = append(words, string(token))
	}
	return strings.Join(words, " "), comments
}
