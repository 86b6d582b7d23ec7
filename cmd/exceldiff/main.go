// Package main provides the CLI entry point for exceldiff-go.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/exceldiff-go/internal/logging"
	"github.com/ukaji3/exceldiff-go/pkg/exceldiff"
	"github.com/ukaji3/exceldiff-go/pkg/exceldiff/models"
	"github.com/ukaji3/exceldiff-go/pkg/exceldiff/output"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "local"

type cliOptions struct {
	outputPath       string
	sheet1           string
	sheet2           string
	rangeRef         string
	diffOnly         bool
	noHeader         bool
	ignoreWhitespace bool
	jsonPath         string
	pretty           bool
	logLevel         string
	logFormat        string
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &cliOptions{}

	rootCmd := &cobra.Command{
		Use:   "exceldiff FILE1 FILE2",
		Short: "Compare two Excel worksheets and highlight differences",
		Long: `exceldiff compares a worksheet of FILE1 (baseline) with a worksheet of
FILE2 and writes a color-coded workbook: modified cells in red with
"old → new" values, removed rows in yellow and added rows in orange.`,
		Version:      version,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts, args[0], args[1], stdout, stderr)
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.outputPath, "output", "o", "diff_output.xlsx", "Output file path")
	flags.StringVar(&opts.sheet1, "sheet1", "", "Sheet name in first file (default: first sheet)")
	flags.StringVar(&opts.sheet2, "sheet2", "", "Sheet name in second file (default: first sheet)")
	flags.StringVar(&opts.rangeRef, "range", "", "Only compare cells within this range, e.g. A1:F200")
	flags.BoolVar(&opts.diffOnly, "diff-only", false, "Only output rows with differences (exclude identical rows)")
	flags.BoolVar(&opts.noHeader, "no-header", false, "Do not include header row when using --diff-only")
	flags.BoolVar(&opts.ignoreWhitespace, "ignore-whitespace", false, "Ignore whitespace differences (trim and collapse whitespace in string values)")
	flags.StringVar(&opts.jsonPath, "json", "", "Also write a JSON report to this path (- for stdout)")
	flags.BoolVar(&opts.pretty, "pretty", false, "Pretty-print the JSON report")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	flags.StringVar(&opts.logFormat, "log-format", "text", "Log format: text, json")

	return rootCmd
}

func run(opts *cliOptions, file1, file2 string, stdout, stderr io.Writer) error {
	logging.Setup(stderr, opts.logLevel, opts.logFormat)

	// Keep stdout clean when the JSON report goes there.
	progress := stdout
	if opts.jsonPath == "-" {
		progress = stderr
	}

	// Validate file formats
	for _, path := range []string{file1, file2} {
		if !exceldiff.Supports(path) {
			return fmt.Errorf("%s is not a .xlsx file", path)
		}
	}

	// Show which sheets are used by default
	if err := reportDefaultSheet(progress, file1, opts.sheet1); err != nil {
		return err
	}
	if err := reportDefaultSheet(progress, file2, opts.sheet2); err != nil {
		return err
	}

	compareOpts := exceldiff.DefaultOptions()
	compareOpts.Sheet1 = opts.sheet1
	compareOpts.Sheet2 = opts.sheet2
	compareOpts.Range = opts.rangeRef
	compareOpts.IgnoreWhitespace = opts.ignoreWhitespace

	// ReadSheet errors already name the workbook.
	fmt.Fprintf(progress, "\nReading %s...\n", file1)
	sheet1, err := exceldiff.ReadSheet(file1, compareOpts.FirstReadOptions())
	if err != nil {
		return err
	}
	fmt.Fprintf(progress, "  Loaded %d rows\n", len(sheet1.Rows))

	fmt.Fprintf(progress, "Reading %s...\n", file2)
	sheet2, err := exceldiff.ReadSheet(file2, compareOpts.SecondReadOptions())
	if err != nil {
		return err
	}
	fmt.Fprintf(progress, "  Loaded %d rows\n", len(sheet2.Rows))

	fmt.Fprintln(progress, "\nComparing worksheets...")
	if opts.ignoreWhitespace {
		fmt.Fprintln(progress, "  Ignoring whitespace differences")
	}
	result := exceldiff.CompareSheets(sheet1, sheet2, compareOpts.DiffOptions())
	printSummary(progress, result.Summary)

	writeOpts := output.WriteOptions{
		DiffOnly:      opts.diffOnly,
		IncludeHeader: opts.diffOnly && !opts.noHeader,
	}
	fmt.Fprintf(progress, "\nWriting diff to %s...\n", opts.outputPath)
	if err := output.WriteXLSX(result.Diffs, opts.outputPath, writeOpts); err != nil {
		return fmt.Errorf("failed to write output to %s: %w", opts.outputPath, err)
	}
	slog.Info("diff written", "path", opts.outputPath, "rows", output.RowCount(result.Diffs, writeOpts))

	if opts.jsonPath != "" {
		if err := writeReport(opts, result, stdout); err != nil {
			return err
		}
	}

	if opts.diffOnly {
		fmt.Fprintf(progress, "\nDone! Diff written to %s (%d rows)\n", opts.outputPath, output.RowCount(result.Diffs, writeOpts))
	} else {
		fmt.Fprintf(progress, "\nDone! Diff written to %s\n", opts.outputPath)
	}

	return nil
}

func reportDefaultSheet(w io.Writer, path, sheet string) error {
	if sheet != "" {
		return nil
	}
	sheets, err := exceldiff.SheetNames(path)
	if err != nil {
		return err
	}
	if len(sheets) > 0 {
		fmt.Fprintf(w, "Reading first sheet from %s: '%s'\n", path, sheets[0])
	}
	return nil
}

func printSummary(w io.Writer, s models.Summary) {
	fmt.Fprintln(w, "\nDiff Summary:")
	fmt.Fprintf(w, "  Identical rows: %d\n", s.Identical)
	fmt.Fprintf(w, "  Modified rows:  %d\n", s.Modified)
	fmt.Fprintf(w, "  Removed rows:   %d\n", s.Removed)
	fmt.Fprintf(w, "  Added rows:     %d\n", s.Added)
}

func writeReport(opts *cliOptions, result *exceldiff.Result, stdout io.Writer) error {
	report := output.NewReport(result.Sheet1, result.Sheet2, result.Diffs, opts.diffOnly)
	report.IgnoreWhitespace = opts.ignoreWhitespace

	jsonData, err := output.ToJSON(report, opts.pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if opts.jsonPath == "-" {
		fmt.Fprintln(stdout, string(jsonData))
		return nil
	}
	if err := os.WriteFile(opts.jsonPath, jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write JSON report: %w", err)
	}
	return nil
}
