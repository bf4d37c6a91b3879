package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDetectLineEnding(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		expected string
	}{
		{name: "unix", source: "import os\nimport sys\n", expected: "\n"},
		{name: "windows", source: "import os\r\nimport sys\r\n", expected: "\r\n"},
		{name: "no newline", source: "import os", expected: "\n"},
		{name: "empty", source: "", expected: "\n"},
		{name: "mixed defaults to first", source: "import os\r\nimport sys\n", expected: "\r\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.New(t).Equal(tt.expected, DetectLineEnding(tt.source))
		})
	}
}

func TestSplitLines(t *testing.T) {
	req := require.New(t)

	req.Equal([]string{"import os", "import sys", ""}, SplitLines("import os\nimport sys\n"))
	req.Equal([]string{"import os", "import sys", ""}, SplitLines("import os\r\nimport sys\r\n"))
	req.Equal([]string{"import os"}, SplitLines("import os"))
	req.Equal([]string{""}, SplitLines(""))
}

func TestSplitLinesRoundTrip(t *testing.T) {
	req := require.New(t)

	for _, source := range []string{
		"import os\nimport sys\n",
		"import os\r\nimport sys\r\n",
		"import os",
	} {
		lines := SplitLines(source)
		sep := DetectLineEnding(source)
		req.Equal(source, strings.Join(lines, sep), "source %q does not round-trip", source)
	}
}
