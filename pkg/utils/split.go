package utils

// SplitOn splits items into segments around every occurrence of sep. Empty
// segments before or between separators are kept, while the empty segment
// after a trailing separator is dropped, so a separator-free input yields
// one segment and an empty input yields none.
func SplitOn[T comparable](items []T, sep T) [][]T {
	segments := [][]T{{}}

	for _, item := range items {
		if item == sep {
			segments = append(segments, []T{})
			continue
		}
		last := len(segments) - 1
		segments[last] = append(segments[last], item)
	}

	if len(segments[len(segments)-1]) == 0 {
		segments = segments[:len(segments)-1]
	}
	return segments
}
