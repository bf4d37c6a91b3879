package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsPythonFile(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		expected bool
	}{
		{
			name:     "regular python file",
			filename: "main.py",
			expected: true,
		},
		{
			name:     "python file with path",
			filename: "pkg/module/api.py",
			expected: true,
		},
		{
			name:     "test file should be included",
			filename: "test_api.py",
			expected: true,
		},
		{
			name:     "dunder init",
			filename: "__init__.py",
			expected: true,
		},
		{
			name:     "non-python file",
			filename: "README.md",
			expected: false,
		},
		{
			name:     "file with .py in middle",
			filename: "file.py.txt",
			expected: false,
		},
		{
			name:     "compiled file",
			filename: "module.pyc",
			expected: false,
		},
		{
			name:     "empty string",
			filename: "",
			expected: false,
		},
		{
			name:     "hidden python file",
			filename: ".hidden.py",
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			result := IsPythonFile(tt.filename)
			req.Equal(tt.expected, result, "IsPythonFile(%q) = %v, want %v", tt.filename, result, tt.expected)
		})
	}
}

func TestIsDirectory(t *testing.T) {
	req := require.New(t)
	tempDir := t.TempDir()

	tempFile := filepath.Join(tempDir, "test.txt")
	err := os.WriteFile(tempFile, []byte("test"), 0644)
	req.NoError(err, "Failed to create temp file: %v", err)

	tests := []struct {
		name      string
		path      string
		expected  bool
		expectErr bool
	}{
		{
			name:      "existing directory",
			path:      tempDir,
			expected:  true,
			expectErr: false,
		},
		{
			name:      "existing file",
			path:      tempFile,
			expected:  false,
			expectErr: false,
		},
		{
			name:      "non-existent path",
			path:      "/non/existent/path",
			expected:  false,
			expectErr: true,
		},
		{
			name:      "current directory",
			path:      ".",
			expected:  true,
			expectErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			result, err := IsDirectory(tt.path)

			if tt.expectErr {
				req.Error(err, "IsDirectory(%q) expected error, got nil", tt.path)
			} else {
				req.NoError(err, "IsDirectory(%q) unexpected error: %v", tt.path, err)
				req.Equal(tt.expected, result, "IsDirectory(%q) = %v, want %v", tt.path, result, tt.expected)
			}
		})
	}
}

func TestFindPythonFiles(t *testing.T) {
	req := require.New(t)
	tempDir := t.TempDir()

	dirs := []string{
		"pkg/api",
		"tests",
		"__pycache__",
		"venv/lib",
		".git",
		".hidden",
	}

	for _, dir := range dirs {
		err := os.MkdirAll(filepath.Join(tempDir, dir), 0755)
		req.NoError(err, "Failed to create directory %s: %v", dir, err)
	}

	files := map[string]string{
		"main.py":                  "import os",
		"pkg/__init__.py":          "",
		"pkg/api/client.py":        "import requests",
		"tests/test_client.py":     "import pytest", // Should be included
		"__pycache__/client.pyc":   "",              // Should be excluded (cache dir)
		"venv/lib/site.py":         "import sys",    // Should be excluded (virtualenv)
		".git/config":              "config",        // Should be excluded (hidden dir)
		".hidden/secret.py":        "import os",     // Should be excluded (hidden dir)
		"README.md":                "# README",      // Should be excluded (not .py)
		"setup.cfg":                "[metadata]",    // Should be excluded (not .py)
	}

	for filePath, content := range files {
		fullPath := filepath.Join(tempDir, filePath)
		err := os.WriteFile(fullPath, []byte(content), 0644)
		req.NoError(err, "Failed to create file %s: %v", filePath, err)
	}

	tests := []struct {
		name          string
		root          string
		expectedFiles []string
		expectErr     bool
	}{
		{
			name: "find python files in temp directory",
			root: tempDir,
			expectedFiles: []string{
				filepath.Join(tempDir, "main.py"),
				filepath.Join(tempDir, "pkg/__init__.py"),
				filepath.Join(tempDir, "pkg/api/client.py"),
				filepath.Join(tempDir, "tests/test_client.py"),
			},
			expectErr: false,
		},
		{
			name:      "non-existent directory",
			root:      "/non/existent/path",
			expectErr: true,
		},
		{
			name:          "empty directory",
			root:          filepath.Join(tempDir, "empty"),
			expectedFiles: nil,
			expectErr:     false,
		},
	}

	err := os.Mkdir(filepath.Join(tempDir, "empty"), 0755)
	req.NoError(err, "Failed to create empty directory: %v", err)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			result, err := FindPythonFiles(tt.root)

			if tt.expectErr {
				req.Error(err, "FindPythonFiles(%q) expected error, got nil", tt.root)
				return
			}

			req.NoError(err, "FindPythonFiles(%q) unexpected error: %v", tt.root, err)
			req.ElementsMatch(tt.expectedFiles, result, "FindPythonFiles(%q) returned unexpected files", tt.root)
		})
	}
}
