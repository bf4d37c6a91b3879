package main

import (
	"os"
	"runtime/debug"

	"github.com/purpleP/importanize/pkg/cmd"
	"github.com/purpleP/importanize/pkg/version"
)

func main() {
	// Binaries installed with "go install" have no ldflags version; fall
	// back to the module version from build info.
	if info, ok := debug.ReadBuildInfo(); ok && version.Version == "dev" {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			version.Version = v
		}
	}
	if err := cmd.Execute(version.Get().String()); err != nil {
		os.Exit(1)
	}
}
