package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/funicular/funicular"
	"github.com/funicular/funicular/internal/report"
)

// errLintFailed signals a failing lint run whose issues were already printed
var errLintFailed = errors.New("lint failed")

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Check class usage against the precomputed stylesheet",
	Long: `Report unknown utilities (warning), utilities missing from the stylesheet
(error) and stylesheet rules no source uses (warning).`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return runLint()
	},
}

func init() {
	f := lintCmd.Flags()
	f.StringSlice("paths", defaultScanPaths, "File patterns to scan for class references")
	f.String("stylesheet", defaultOutput, "Precomputed stylesheet to check")
	f.StringSlice("ignore", nil, "Token patterns never reported as unknown")
	f.Bool("strict", false, "Exit 1 on any issue (CI mode)")
	f.String("output-format", "", "Output format: issues|summary|json")
	f.Int("max-issues-per-linter", 0, "Max issues to show per linter (0=unlimited)")
	f.Int("max-same-issues", 0, "Max repeated issues to show (0=unlimited)")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-linter-name", true, "Show (linter) suffix on issues")
}

// runLint is shared between `funicular lint` and `funicular generate --lint`.
func runLint() error {
	lintConfig := buildLintConfig()

	quiet := getBoolWithFallback("quiet", "quiet", false)
	format, err := funicular.DetermineOutputFormat(
		getStringWithFallback("output-format", "lint.output-format", ""), quiet)
	if err != nil {
		return err
	}

	result, err := funicular.Lint(lintConfig)
	if err != nil {
		return fmt.Errorf("lint failed: %w", err)
	}

	if !quiet {
		err := report.Write(os.Stdout, result, format, report.Options{
			PrintLines:      lintConfig.PrintIssuedLines,
			PrintLinterName: lintConfig.PrintLinterName,
			ForceColors:     lintConfig.UseColors,
		})
		if err != nil {
			return err
		}
	}

	// Default mode fails on errors only; strict fails on any issue
	if result.Failed(lintConfig.Strict) {
		return errLintFailed
	}
	return nil
}
