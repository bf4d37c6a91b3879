// Package formatter organizes import statements in Python source files.
// It groups imports into standard library, third party, local and relative
// sections, sorts and merges statements within each group, and rewrites the
// import block at the position of the first import in the file.
package formatter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/purpleP/importanize/pkg/errors"
	"github.com/purpleP/importanize/pkg/parser"
	"github.com/purpleP/importanize/pkg/statements"
	"github.com/purpleP/importanize/pkg/std"
	"github.com/purpleP/importanize/pkg/utils"
)

// FormatterConfig holds configuration for the import formatter
type FormatterConfig struct {
	// FilePath is the path of the Python file being processed
	FilePath string
	// Locals lists package prefixes that belong to the local group
	Locals []string
	// LocalProject overrides the project package detected from packaging
	// metadata next to the file
	LocalProject string
	// LineLength is the maximum rendered line length, 0 disables wrapping
	LineLength int
	// InPlace rewrites files instead of printing to stdout
	InPlace bool
	// ShowDiff prints a diff between the original and organized source
	ShowDiff bool
	// Check reports files with unorganized imports without modifying them
	Check bool
	// Exclude lists glob patterns for paths that should be skipped
	Exclude []string
}

// FileResult records the outcome of organizing a single file.
type FileResult struct {
	Path    string
	Changed bool
	Size    int
	Err     error
}

type formatter struct {
	config FormatterConfig
	logger *slog.Logger
}

// New creates a new formatter with the given configuration
func New(config FormatterConfig) *formatter {
	return &formatter{
		config: config,
		logger: slog.Default(),
	}
}

func (g *formatter) getFilePath() string {
	return g.config.FilePath
}

func (g *formatter) getLocals() []string {
	return g.config.Locals
}

func (g *formatter) getLineLength() int {
	return g.config.LineLength
}

func (g *formatter) getInPlace() bool {
	return g.config.InPlace
}

func (g *formatter) getShowDiff() bool {
	return g.config.ShowDiff
}

func (g *formatter) getCheck() bool {
	return g.config.Check
}

func (g *formatter) getExclude() []string {
	return g.config.Exclude
}

// getLocalProject resolves the package name of the project the current file
// belongs to. An explicit LocalProject wins over detection from packaging
// metadata in parent directories.
func (g *formatter) getLocalProject() string {
	if g.config.LocalProject != "" {
		return g.config.LocalProject
	}
	if g.getFilePath() == "" {
		return ""
	}
	return utils.GetProjectPackage(g.getFilePath())
}

// getLocalPackages returns the configured local packages with the project
// package, when known, prepended.
func (g *formatter) getLocalPackages() []string {
	locals := g.getLocals()
	project := g.getLocalProject()
	if project == "" {
		return locals
	}
	for _, local := range locals {
		if local == project {
			return locals
		}
	}
	return append([]string{project}, locals...)
}

// OrganizeSource organizes all import statements in the given Python source
// and returns the rewritten source. Sources without imports are returned
// unchanged. Line endings of the input are preserved.
func (g *formatter) OrganizeSource(source string) (string, error) {
	lineEnding := utils.DetectLineEnding(source)
	lines := utils.SplitLines(source)

	groups := parser.Groups(parser.NumberLines(lines))
	if len(groups) == 0 {
		return source, nil
	}

	parsed, err := parser.ParseStatements(groups)
	if err != nil {
		return "", fmt.Errorf("%s: %w", errors.ErrMsgFailedToParseFile, err)
	}

	merged := mergeStatements(parsed)
	if len(merged) == 0 {
		return source, nil
	}

	block := renderGroups(g.groupStatements(merged), g.getLineLength())
	out := spliceBlock(lines, groups, block)
	return strings.Join(out, lineEnding), nil
}

// mergeStatements combines statements that import the same target, keeping
// the order in which targets first appeared.
func mergeStatements(parsed []*statements.ImportStatement) []*statements.ImportStatement {
	var merged []*statements.ImportStatement
	for _, statement := range parsed {
		combined := false
		for i, existing := range merged {
			if existing.SameTarget(statement) {
				merged[i] = existing.Merge(statement)
				combined = true
				break
			}
		}
		if !combined {
			merged = append(merged, statement)
		}
	}
	return merged
}

// classifyStem determines which group an import stem belongs to.
func (g *formatter) classifyStem(stem string) ImportGroup {
	if strings.HasPrefix(stem, ".") {
		return RelativeGroup
	}
	if std.IsStandardModule(stem) {
		return StdGroup
	}
	for i, local := range g.getLocalPackages() {
		if stem == local || strings.HasPrefix(stem, local+".") {
			return LocalGroupBase + ImportGroup(i)
		}
	}
	return ThirdPartyGroup
}

// groupStatements buckets statements by group and sorts each bucket.
func (g *formatter) groupStatements(merged []*statements.ImportStatement) map[ImportGroup][]*statements.ImportStatement {
	grouped := make(map[ImportGroup][]*statements.ImportStatement)
	for _, statement := range merged {
		group := g.classifyStem(statement.Stem)
		grouped[group] = append(grouped[group], statement)
	}
	for _, bucket := range grouped {
		sortStatements(bucket)
	}
	return grouped
}

func sortStatements(bucket []*statements.ImportStatement) {
	sort.SliceStable(bucket, func(i, j int) bool {
		return bucket[i].Less(bucket[j])
	})
}

// renderGroups renders each group in ascending group order, separated by a
// single blank line.
func renderGroups(grouped map[ImportGroup][]*statements.ImportStatement, lineLength int) []string {
	order := make([]ImportGroup, 0, len(grouped))
	for group := range grouped {
		order = append(order, group)
	}
	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })

	var block []string
	for i, group := range order {
		if i > 0 {
			block = append(block, "")
		}
		for _, statement := range grouped[group] {
			block = append(block, statement.Render(lineLength)...)
		}
	}
	return block
}

// spliceBlock replaces the original import lines with the rendered block at
// the position of the first import. Blank lines between the block and any
// code that follows are normalized to two.
func spliceBlock(lines []string, groups []parser.LineGroup, block []string) []string {
	owned := make(map[int]bool)
	for _, group := range groups {
		for _, number := range group.Numbers {
			owned[number] = true
		}
	}
	first := groups[0].Numbers[0]

	var prefix, suffix []string
	for i, line := range lines {
		number := i + 1
		if owned[number] {
			continue
		}
		if number < first {
			prefix = append(prefix, line)
		} else {
			suffix = append(suffix, line)
		}
	}
	for len(suffix) > 0 && suffix[0] == "" {
		suffix = suffix[1:]
	}

	out := append(prefix, block...)
	if len(suffix) == 0 {
		return append(out, "")
	}
	out = append(out, "", "")
	return append(out, suffix...)
}

// ProcessFileWithOutput organizes imports in a single Python file and applies
// the configured output mode. With verbose enabled the organized source is
// printed to stdout when no other output mode is selected.
func (g *formatter) ProcessFileWithOutput(verbose bool) FileResult {
	filePath := g.getFilePath()
	result := FileResult{Path: filePath}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.Err = fmt.Errorf("%s: %w", errors.ErrMsgFailedToReadFile, err)
		return result
	}
	result.Size = len(data)

	source := string(data)
	organized, err := g.OrganizeSource(source)
	if err != nil {
		result.Err = err
		return result
	}
	result.Changed = organized != source

	if verbose {
		g.logger.Debug("organized file",
			"path", filePath,
			"changed", result.Changed,
			"locals", g.getLocalPackages())
	}

	switch {
	case g.getCheck():
		// Check mode never writes or prints file contents.
	case g.getShowDiff():
		if result.Changed {
			printDiff(filePath, source, organized)
		}
	case g.getInPlace():
		if result.Changed {
			if err := os.WriteFile(filePath, []byte(organized), 0o644); err != nil {
				result.Err = fmt.Errorf("%s: %w", errors.ErrMsgFailedToWriteFile, err)
				return result
			}
		}
	default:
		if verbose {
			fmt.Print(organized)
		}
	}
	return result
}

// ProcessFile processes a single Python file and organizes its imports
func (g *formatter) ProcessFile() error {
	result := g.ProcessFileWithOutput(true)
	if result.Err != nil {
		return result.Err
	}
	if g.getCheck() && result.Changed {
		printCheckReport([]FileResult{result})
		return fmt.Errorf(errors.ErrMsgFilesNotOrganized, 1)
	}
	return nil
}

// ProcessFiles processes multiple Python files and reports a summary. In
// check mode a table of unorganized files is printed and an error is
// returned when any file needs organizing.
func (g *formatter) ProcessFiles(filePaths []string) error {
	results := make([]FileResult, 0, len(filePaths))
	for _, filePath := range filePaths {
		g.config.FilePath = filePath
		result := g.ProcessFileWithOutput(false)
		if result.Err != nil {
			fmt.Printf(errors.InfoMsgErrorProcessing+"\n", filePath, result.Err)
		} else if g.getInPlace() && result.Changed {
			fmt.Printf(errors.InfoMsgProcessedFiles+"\n", filePath)
		}
		results = append(results, result)
	}

	printSummary(results)

	failed := 0
	changed := 0
	for _, result := range results {
		if result.Err != nil {
			failed++
		} else if result.Changed {
			changed++
		}
	}
	if failed > 0 {
		return fmt.Errorf(errors.ErrMsgFilesFailedToProcess, failed)
	}
	if g.getCheck() && changed > 0 {
		printCheckReport(results)
		return fmt.Errorf(errors.ErrMsgFilesNotOrganized, changed)
	}
	return nil
}

// ProcessPath processes a file or all Python files under a directory
func (g *formatter) ProcessPath(targetPath string) error {
	isDir, err := utils.IsDirectory(targetPath)
	if err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToCheckPath, err)
	}

	if !isDir {
		g.config.FilePath = targetPath
		return g.ProcessFile()
	}

	files, err := utils.FindPythonFiles(targetPath)
	if err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToFindPythonFiles, err)
	}

	included := make([]string, 0, len(files))
	for _, file := range files {
		if g.isExcluded(file) {
			continue
		}
		included = append(included, file)
	}

	if len(included) == 0 {
		fmt.Printf(errors.InfoMsgNoPythonFilesFound+"\n", targetPath)
		return nil
	}

	fmt.Printf(errors.InfoMsgFoundPythonFiles+"\n", len(included), targetPath)

	// Project detection for the informational line is anchored at the
	// first file found.
	g.config.FilePath = included[0]
	if locals := g.getLocalPackages(); len(locals) > 0 {
		fmt.Printf(errors.InfoMsgLocalPackages+"\n", strings.Join(locals, ", "))
	}
	return g.ProcessFiles(included)
}

// isExcluded reports whether the path matches any configured exclude
// pattern. Patterns are matched against the full path and the base name.
func (g *formatter) isExcluded(path string) bool {
	for _, pattern := range g.getExclude() {
		if matched, err := filepath.Match(pattern, path); err == nil && matched {
			return true
		}
		if matched, err := filepath.Match(pattern, filepath.Base(path)); err == nil && matched {
			return true
		}
	}
	return false
}
