package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitOn(t *testing.T) {
	tests := []struct {
		name     string
		items    []string
		expected [][]string
	}{
		{
			name:     "no separator",
			items:    []string{"a", "b"},
			expected: [][]string{{"a", "b"}},
		},
		{
			name:     "single split",
			items:    []string{"a", ",", "b"},
			expected: [][]string{{"a"}, {"b"}},
		},
		{
			name:     "leading separator keeps empty segment",
			items:    []string{",", "a"},
			expected: [][]string{{}, {"a"}},
		},
		{
			name:     "adjacent separators keep empty segment",
			items:    []string{"a", ",", ",", "b"},
			expected: [][]string{{"a"}, {}, {"b"}},
		},
		{
			name:     "trailing separator drops empty segment",
			items:    []string{"a", ","},
			expected: [][]string{{"a"}},
		},
		{
			name:     "only separator",
			items:    []string{","},
			expected: [][]string{{}},
		},
		{
			name:     "empty input",
			items:    nil,
			expected: [][]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.New(t).Equal(tt.expected, SplitOn(tt.items, ","))
		})
	}
}
