package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"pyfieldlint/internal/diag"
	"pyfieldlint/internal/diagfmt"
	"pyfieldlint/internal/driver"
	"pyfieldlint/internal/project"
	"pyfieldlint/internal/source"
	"pyfieldlint/internal/ui"
	"pyfieldlint/internal/version"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [path ...]",
	Short: "Check Python files for undocumented model fields",
	Long: `Check parses the given Python files or directories and reports model
fields that are not documented through Field(description=...). With no
path arguments the paths come from pyfieldlint.toml.`,
	Args: cobra.ArbitraryArgs,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("format", "", "output format (pretty|short|json|sarif)")
	checkCmd.Flags().Int("jobs", 0, "parallel workers for directory checks (0 = all CPUs)")
	checkCmd.Flags().StringSlice("exclude", nil, "glob patterns of paths to skip")
	checkCmd.Flags().Bool("no-warnings", false, "report only errors")
	checkCmd.Flags().Bool("warnings-as-errors", false, "treat findings as errors for the exit code and severity")
	checkCmd.Flags().Bool("fullpath", false, "print absolute file paths")
	checkCmd.Flags().Bool("disk-cache", false, "reuse cached results for unchanged files")
	checkCmd.Flags().Bool("progress", false, "show live progress (pretty format on a terminal only)")
}

// checkSettings is the manifest config with flag overrides applied.
type checkSettings struct {
	paths          []string
	exclude        []string
	format         string
	jobs           int
	maxDiagnostics int
	noWarnings     bool
	warningsAsErr  bool
	fullPath       bool
	diskCache      bool
	progress       bool
	quiet          bool
}

func runCheck(cmd *cobra.Command, args []string) error {
	st, err := resolveSettings(cmd, args)
	if err != nil {
		return err
	}
	if len(st.paths) == 0 {
		return fmt.Errorf("no input paths: pass files or directories, or add [check].paths to %s", project.ManifestName)
	}

	files, err := expandPaths(st.paths, st.exclude)
	if err != nil {
		return err
	}

	var cache *driver.DiskCache
	if st.diskCache {
		cache, err = driver.OpenDiskCache("pyfieldlint")
		if err != nil {
			return fmt.Errorf("open disk cache: %w", err)
		}
	}

	opts := driver.DirOptions{
		MaxDiagnostics: st.maxDiagnostics,
		Jobs:           st.jobs,
		Cache:          cache,
	}

	var (
		fileSet *source.FileSet
		results []driver.FileResult
	)
	if st.progress && st.format == "pretty" && isTerminal(os.Stdout) {
		fileSet, results, err = runWithProgress(cmd.Context(), files, opts)
	} else {
		fileSet, results, err = driver.CheckFiles(cmd.Context(), ".", files, opts)
	}
	if err != nil {
		return err
	}

	bag := driver.MergeBags(results)
	bag = applySeverityPolicy(bag, st)
	bag.Sort()

	if err := renderBag(cmd, bag, fileSet, st); err != nil {
		return err
	}

	findings := bag.CountFieldRules()
	errorsSeen := bag.HasErrors()
	if !st.quiet && (st.format == "pretty" || st.format == "short") {
		fmt.Fprintf(os.Stderr, "checked %d files: %d findings\n", len(files), findings)
	}
	if errorsSeen || findings > 0 {
		// Non-zero exit without cobra noise: the diagnostics are the report.
		cmd.SilenceErrors = true
		return fmt.Errorf("found %d problems", bag.Len())
	}
	return nil
}

func resolveSettings(cmd *cobra.Command, args []string) (checkSettings, error) {
	st := checkSettings{format: "pretty"}

	manifest, found, err := project.Load(".")
	if err != nil {
		return st, err
	}
	if found {
		cc := manifest.Config.Check
		st.exclude = cc.Exclude
		st.jobs = cc.Jobs
		st.noWarnings = cc.NoWarnings
		st.diskCache = cc.DiskCache
		if cc.Format != "" {
			st.format = cc.Format
		}
		if cc.MaxDiagnostics > 0 {
			st.maxDiagnostics = cc.MaxDiagnostics
		}
		if len(args) == 0 {
			st.paths = manifest.ResolvePaths()
		}
	}
	if len(args) > 0 {
		st.paths = args
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		st.format, _ = flags.GetString("format")
	}
	if flags.Changed("jobs") {
		st.jobs, _ = flags.GetInt("jobs")
	}
	if flags.Changed("exclude") {
		st.exclude, _ = flags.GetStringSlice("exclude")
	}
	if flags.Changed("no-warnings") {
		st.noWarnings, _ = flags.GetBool("no-warnings")
	}
	if flags.Changed("disk-cache") {
		st.diskCache, _ = flags.GetBool("disk-cache")
	}
	st.warningsAsErr, _ = flags.GetBool("warnings-as-errors")
	st.fullPath, _ = flags.GetBool("fullpath")
	st.progress, _ = flags.GetBool("progress")
	st.quiet, _ = cmd.Root().PersistentFlags().GetBool("quiet")

	if st.maxDiagnostics == 0 || cmd.Root().PersistentFlags().Changed("max-diagnostics") {
		st.maxDiagnostics, _ = cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	}

	switch st.format {
	case "pretty", "short", "json", "sarif":
	default:
		return st, fmt.Errorf("unknown format %q (must be pretty, short, json, or sarif)", st.format)
	}
	return st, nil
}

// expandPaths resolves directories to their *.py files and keeps plain
// files as-is.
func expandPaths(paths, exclude []string) ([]string, error) {
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", p, err)
		}
		if info.IsDir() {
			dirFiles, err := driver.ListPyFiles(p, exclude)
			if err != nil {
				return nil, err
			}
			files = append(files, dirFiles...)
			continue
		}
		if !strings.HasSuffix(p, ".py") {
			return nil, fmt.Errorf("%s: not a Python file", p)
		}
		files = append(files, p)
	}
	return files, nil
}

func runWithProgress(ctx context.Context, files []string, opts driver.DirOptions) (*source.FileSet, []driver.FileResult, error) {
	events := make(chan driver.Event, len(files))
	opts.Events = events

	var (
		fileSet *source.FileSet
		results []driver.FileResult
		err     error
	)
	go func() {
		fileSet, results, err = driver.CheckFiles(ctx, ".", files, opts)
		close(events)
	}()

	model := ui.NewProgressModel("pyfieldlint check", files, events)
	if _, uiErr := tea.NewProgram(model).Run(); uiErr != nil {
		// Drain so the checker goroutine can finish.
		for range events {
		}
	}
	return fileSet, results, err
}

// applySeverityPolicy drops or escalates diagnostics per the flags.
func applySeverityPolicy(bag *diag.Bag, st checkSettings) *diag.Bag {
	if !st.noWarnings && !st.warningsAsErr {
		return bag
	}
	out := diag.NewBag(bag.Len())
	for _, d := range bag.Items() {
		if st.noWarnings && d.Severity < diag.SevError {
			continue
		}
		if st.warningsAsErr && d.Severity == diag.SevWarning {
			d.Severity = diag.SevError
		}
		out.Add(d)
	}
	return out
}

func renderBag(cmd *cobra.Command, bag *diag.Bag, fileSet *source.FileSet, st checkSettings) error {
	pathMode := diagfmt.PathModeRelative
	if st.fullPath {
		pathMode = diagfmt.PathModeAbsolute
	}

	switch st.format {
	case "pretty":
		diagfmt.Pretty(os.Stdout, bag, fileSet, diagfmt.PrettyOpts{
			Color:     useColor(cmd, os.Stdout),
			PathMode:  pathMode,
			ShowNotes: true,
		})
		return nil
	case "short":
		diagfmt.Short(os.Stdout, bag, fileSet)
		return nil
	case "json":
		return diagfmt.JSON(os.Stdout, bag, fileSet, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         pathMode,
			IncludeNotes:     true,
		})
	case "sarif":
		return diagfmt.Sarif(os.Stdout, bag, fileSet, diagfmt.SarifRunMeta{
			ToolName:    "pyfieldlint",
			ToolVersion: version.Version,
		})
	}
	return nil
}
