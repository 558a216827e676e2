package report

import (
	"fmt"
	"io"

	"github.com/funicular/funicular"
)

// Write renders result in the given format
func Write(w io.Writer, result *funicular.LintResult, format funicular.OutputFormat, opts Options) error {
	switch format {
	case funicular.OutputSummary:
		summary := NewSummaryReporter(w, shouldUseColors(opts.ForceColors))
		summary.PrintStatistics(result)
		summary.PrintCoverage(result)
		summary.PrintWarnings(result)
		return nil

	case funicular.OutputJSON:
		return funicular.WriteJSON(w, result)

	case funicular.OutputIssues, "":
		reporter := NewReporter(w, opts)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(result)
		return nil
	}
	return fmt.Errorf("unknown output format %q", format)
}
