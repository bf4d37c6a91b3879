package parser

import (
	"strings"

	"github.com/purpleP/importanize/pkg/statements"
	"github.com/purpleP/importanize/pkg/utils"
)

const (
	commaToken    = statements.Token(",")
	escapeToken   = statements.Token(`\`)
	importKeyword = statements.Token("import")
)

// Tokenize flattens the physical lines of one import statement into a token
// sequence of words, commas, continuation markers and comments. Each line
// is scanned and has its trailing comment re-associated independently, then
// backslash-broken names are joined back together across lines.
func Tokenize(lines []string) []statements.Token {
	var tokens []statements.Token
	for _, line := range lines {
		tokens = append(tokens, reassociateComment(scanLine(line))...)
	}
	return rejoinEscapedLines(tokens)
}

// scanLine splits one physical line into tokens. Runs of spaces and tabs
// separate words and are dropped, as are parentheses; commas and
// backslashes stand alone; "#" starts a comment that runs to the end of the
// line.
func scanLine(line string) []statements.Token {
	var tokens []statements.Token
	var word strings.Builder

	flush := func() {
		if word.Len() > 0 {
			tokens = append(tokens, statements.Token(word.String()))
			word.Reset()
		}
	}

	for i := 0; i < len(line); i++ {
		switch c := line[i]; c {
		case ' ', '\t', '(', ')':
			flush()
		case ',':
			flush()
			tokens = append(tokens, commaToken)
		case '\\':
			flush()
			tokens = append(tokens, escapeToken)
		case '#':
			flush()
			return append(tokens, statements.Token(line[i:]))
		default:
			word.WriteByte(c)
		}
	}
	flush()
	return tokens
}

// reassociateComment moves a comment that directly follows a comma in front
// of that comma. A trailing same-line comment belongs to the import item
// before the comma, but raw token order would hand it to the item after.
func reassociateComment(tokens []statements.Token) []statements.Token {
	out := make([]statements.Token, 0, len(tokens))
	for _, token := range tokens {
		if token.IsComment() && len(out) > 0 && out[len(out)-1] == commaToken {
			out = append(out[:len(out)-1], token, commaToken)
			continue
		}
		out = append(out, token)
	}
	return out
}

// rejoinEscapedLines removes backslash continuation markers, concatenating
// the tokens on either side of each marker so that a dotted path broken
// across a continuation becomes a single token again. A comma next to a
// marker stays a separate token: the join is for names split across lines,
// not for list breaks.
func rejoinEscapedLines(tokens []statements.Token) []statements.Token {
	segments := utils.SplitOn(tokens, escapeToken)

	var out []statements.Token
	for _, segment := range segments {
		if len(segment) == 0 {
			continue
		}
		if len(out) > 0 && out[len(out)-1] != commaToken && segment[0] != commaToken {
			out[len(out)-1] += segment[0]
			segment = segment[1:]
		}
		out = append(out, segment...)
	}
	return out
}
