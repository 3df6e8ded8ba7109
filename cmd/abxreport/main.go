// Package main provides the CLI entry point for abxreport-go.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/openvetlab/abxreport-go/pkg/abxreport"
)

// inputExt is the analyzer export extension recognized during discovery.
const inputExt = ".xml"

var (
	outputPath string
	verbose    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "abxreport [paths...]",
		Short: "Generate an xlsx report from analyzer XML exports",
		Long: `abxreport-go converts hematology analyzer XML exports into a single
xlsx report: one worksheet per run with per-parameter pass/fail tables and a
histogram chart per parameter family. Directory arguments expand to their
direct .xml entries; without arguments the current directory is searched.`,
		Args: cobra.ArbitraryArgs,
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", abxreport.DefaultOutput, "Output workbook path")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	searched := args
	if len(searched) == 0 {
		searched = []string{"."}
	}

	paths, err := discover(searched)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("%w in %s", abxreport.ErrNoInput, strings.Join(searched, ", "))
	}

	fmt.Printf("Found %d document(s):\n", len(paths))
	for _, p := range paths {
		fmt.Printf("  %s\n", p)
	}

	report, err := abxreport.Generate(paths, abxreport.Options{OutputPath: outputPath})
	if err != nil {
		return err
	}

	for _, out := range report.Outcomes {
		switch {
		case out.Err != nil:
			color.Red("failed  %s: %v", out.Path, out.Err)
		case out.Skipped:
			color.Yellow("skipped %s", out.Path)
		default:
			color.Green("wrote   %s -> %s", out.Path, out.Sheet)
		}
	}
	fmt.Printf("Report written to %s\n", report.OutputPath)
	return nil
}

// discover expands the given paths into the de-duplicated input list:
// directories contribute their direct (non-recursive) .xml entries, files
// are taken only when their extension matches.
func discover(args []string) ([]string, error) {
	seen := make(map[string]bool)
	var paths []string

	add := func(p string) {
		abs, err := filepath.Abs(p)
		if err != nil {
			abs = p
		}
		if !seen[abs] {
			seen[abs] = true
			paths = append(paths, abs)
		}
	}

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("cannot access %s: %w", arg, err)
		}
		if !info.IsDir() {
			if strings.EqualFold(filepath.Ext(arg), inputExt) {
				add(arg)
			}
			continue
		}
		entries, err := os.ReadDir(arg)
		if err != nil {
			return nil, fmt.Errorf("cannot read directory %s: %w", arg, err)
		}
		for _, e := range entries {
			if !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), inputExt) {
				add(filepath.Join(arg, e.Name()))
			}
		}
	}
	return paths, nil
}
