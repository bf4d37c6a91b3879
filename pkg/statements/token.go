package statements

import "strings"

// Token is a single lexical unit of an import statement: a keyword, a
// dotted path, a punctuation mark or a comment. The original text is
// preserved exactly.
type Token string

// IsComment reports whether the token is a comment token.
func (t Token) IsComment() bool {
	return strings.HasPrefix(string(t), "#")
}

// CommentText returns the token text normalized to the "# ..." comment
// form: the leading hash run, one space, then the trimmed comment body.
// Non-comment tokens are returned unchanged.
func (t Token) CommentText() string {
	if !t.IsComment() {
		return string(t)
	}
	text := strings.TrimSpace(string(t))
	body := strings.TrimLeft(text, "#")
	hashes := text[:len(text)-len(body)]
	body = strings.TrimSpace(body)
	if body == "" {
		return hashes
	}
	return hashes + " " + body
}
