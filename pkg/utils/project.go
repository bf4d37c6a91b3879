package utils

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Walk-up cap when looking for project metadata
const maxParentDirs = 20

var packageName = regexp.MustCompile(`^\s*name\s*=\s*["']?([A-Za-z0-9._-]+)["']?`)

// GetProjectPackage resolves the top-level package name for a Python file by
// walking parent directories for project metadata. pyproject.toml and
// setup.cfg are scanned for a name assignment; a bare setup.py falls back to
// its directory name. Distribution names are normalized to import form, so
// "my-project" becomes "my_project". Returns "" when no project root is
// found.
func GetProjectPackage(filePath string) string {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return ""
	}

	dir := filepath.Dir(absPath)
	for i := 0; i < maxParentDirs; i++ {
		for _, metadata := range []string{"pyproject.toml", "setup.cfg"} {
			if name := packageNameFrom(filepath.Join(dir, metadata)); name != "" {
				return normalizePackage(name)
			}
		}
		if _, err := os.Stat(filepath.Join(dir, "setup.py")); err == nil {
			return normalizePackage(filepath.Base(dir))
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}

func packageNameFrom(path string) string {
	content, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	for _, line := range strings.Split(string(content), "\n") {
		if match := packageName.FindStringSubmatch(line); match != nil {
			return match[1]
		}
	}
	return ""
}

func normalizePackage(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}
