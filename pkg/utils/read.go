package utils

import "strings"

// DetectLineEnding returns the line ending used by source, defaulting to
// "\n" when the source has no newline or mixes endings.
func DetectLineEnding(source string) string {
	if i := strings.Index(source, "\n"); i > 0 && source[i-1] == '\r' {
		return "\r\n"
	}
	return "\n"
}

// SplitLines splits source into lines regardless of the line ending. The
// split keeps the final empty line of a newline-terminated source, so
// joining the result with the detected ending reproduces the input.
func SplitLines(source string) []string {
	normalized := strings.ReplaceAll(source, "\r\n", "\n")
	return strings.Split(normalized, "\n")
}
