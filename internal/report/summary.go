package report

import (
	"fmt"
	"io"

	"github.com/funicular/funicular"
)

// SummaryReporter writes counts without individual issues
type SummaryReporter struct {
	w         io.Writer
	useColors bool
}

// NewSummaryReporter creates a summary reporter
func NewSummaryReporter(w io.Writer, useColors bool) *SummaryReporter {
	return &SummaryReporter{w: w, useColors: useColors}
}

// PrintStatistics writes scan and stylesheet counts
func (r *SummaryReporter) PrintStatistics(result *funicular.LintResult) {
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Utility Lint Statistics", r.useColors))
	fmt.Fprintln(r.w, "-----------------------")

	fmt.Fprintf(r.w, "Files Scanned:       %d\n", result.FilesScanned)
	fmt.Fprintf(r.w, "Class References:    %d\n", result.References)
	fmt.Fprintf(r.w, "Tokens Checked:      %d\n", result.TokensChecked)
	fmt.Fprintf(r.w, "Stylesheet Rules:    %d\n", result.RulesInSheet)
	fmt.Fprintf(r.w, "Unknown Utilities:   %d\n", result.UnknownCount)
	fmt.Fprintf(r.w, "Missing Rules:       %d\n", result.MissingCount)
	fmt.Fprintf(r.w, "Orphan Rules:        %d\n", result.OrphanCount)
}

// PrintCoverage shows the share of stylesheet rules still in use
func (r *SummaryReporter) PrintCoverage(result *funicular.LintResult) {
	if result.RulesInSheet == 0 {
		return
	}
	used := result.RulesInSheet - result.OrphanCount
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Stylesheet Usage", r.useColors))
	fmt.Fprintln(r.w, "----------------")
	printProgressBar(r.w, float64(used)/float64(result.RulesInSheet)*100)
}

// PrintWarnings writes scanner warnings
func (r *SummaryReporter) PrintWarnings(result *funicular.LintResult) {
	if len(result.Warnings) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleYellow, "Warnings", r.useColors))
	fmt.Fprintln(r.w, "--------")

	for _, warning := range result.Warnings {
		fmt.Fprintf(r.w, "• %s\n", warning)
	}
}

func printProgressBar(w io.Writer, percentage float64) {
	const barWidth = 20
	filled := int(percentage / 100 * barWidth)

	fmt.Fprint(w, "[")
	for i := 0; i < barWidth; i++ {
		if i < filled {
			fmt.Fprint(w, "█")
		} else {
			fmt.Fprint(w, "░")
		}
	}
	fmt.Fprintf(w, "] %.1f%%\n", percentage)
}
