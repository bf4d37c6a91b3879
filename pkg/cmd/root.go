package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/purpleP/importanize/pkg/config"
	"github.com/purpleP/importanize/pkg/errors"
	"github.com/purpleP/importanize/pkg/formatter"
)

const (
	UseDescription   = "importanize [flags] PATH..."
	ShortDescription = "Python import organizer - a tool to group and sort Python imports"
	LongDescription  = `importanize is a command-line tool that organizes Python import statements.

It groups imports into sections:
1. Python standard library
2. Third-party packages
3. Local packages (configurable, the project package is detected automatically)
4. Relative imports

Within each section imports are sorted, duplicate imports are merged and
from-imports that exceed the line length are wrapped into the parenthesized
one-name-per-line form.

PATH can be a single Python file or a directory. When a directory is
specified, all Python source files in the directory and subdirectories are
processed recursively.`
)

var (
	configPath   string
	locals       []string
	localProject string
	lineLength   int
	exclude      []string
	inPlace      bool
	showDiff     bool
	ciMode       bool
	noColor      bool
	verbose      bool
	showVersion  bool
	versionStr   string
)

var rootCmd = &cobra.Command{
	Use:          UseDescription,
	Short:        ShortDescription,
	Long:         LongDescription,
	Args:         validateArgs,
	RunE:         run,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to the configuration file (default searches .importanize.yaml in the working directory and home)")
	rootCmd.PersistentFlags().StringSliceVar(&locals, "locals", []string{}, "Comma-separated list of local package prefixes (e.g., myapp,shared)")
	rootCmd.PersistentFlags().StringVar(&localProject, "local-project", "", "Project package name, overriding detection from packaging metadata")
	rootCmd.PersistentFlags().IntVarP(&lineLength, "line-length", "l", config.DefaultLineLength, "Maximum line length before a from-import is wrapped (0 disables wrapping)")
	rootCmd.PersistentFlags().StringSliceVar(&exclude, "exclude", []string{}, "Glob patterns for files to skip")
	rootCmd.PersistentFlags().BoolVarP(&inPlace, "in-place", "i", false, "Modify files in place instead of printing to stdout")
	rootCmd.PersistentFlags().BoolVarP(&showDiff, "diff", "d", false, "Print a diff of the changes instead of the organized file")
	rootCmd.PersistentFlags().BoolVar(&ciMode, "ci", false, "Check whether imports are organized without modifying anything")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&showVersion, "version", "v", false, "Show version information")
}

func validateArgs(cmd *cobra.Command, args []string) error {
	// If version flag is set, we don't need path arguments
	if showVersion {
		return nil
	}
	return cobra.MinimumNArgs(1)(cmd, args)
}

func run(cmd *cobra.Command, args []string) error {
	// Handle version flag
	if showVersion {
		fmt.Println(versionStr)
		return nil
	}

	if noColor {
		color.NoColor = true
	}
	if verbose {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToLoadConfig, err)
	}
	// Flags set explicitly on the command line win over the config file.
	if cmd.Flags().Changed("locals") {
		cfg.Locals = locals
	}
	if cmd.Flags().Changed("line-length") {
		cfg.LineLength = lineLength
	}
	if cmd.Flags().Changed("exclude") {
		cfg.Exclude = exclude
	}

	g := formatter.New(formatter.FormatterConfig{
		Locals:       cfg.Locals,
		LocalProject: localProject,
		LineLength:   cfg.LineLength,
		InPlace:      inPlace,
		ShowDiff:     showDiff,
		Check:        ciMode,
		Exclude:      cfg.Exclude,
	})

	for _, path := range args {
		if err := g.ProcessPath(path); err != nil {
			return err
		}
	}
	return nil
}

func Execute(version string) error {
	versionStr = version
	return rootCmd.Execute()
}
