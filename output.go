package funicular

import "fmt"

// OutputFormat selects how lint results are written
type OutputFormat string

// Output formats
const (
	OutputIssues  OutputFormat = "issues"  // golangci-lint style issue lines plus a summary
	OutputSummary OutputFormat = "summary" // Counts only
	OutputJSON    OutputFormat = "json"    // Machine-readable export
)

// DetermineOutputFormat selects the output format from the flag value.
// Quiet runs still pick a format; callers suppress the writing.
func DetermineOutputFormat(formatFlag string, quiet bool) (OutputFormat, error) {
	if quiet || formatFlag == "" {
		return OutputIssues, nil
	}

	switch OutputFormat(formatFlag) {
	case OutputIssues, OutputSummary, OutputJSON:
		return OutputFormat(formatFlag), nil
	}
	return "", fmt.Errorf("unknown output format %q (want issues, summary or json)", formatFlag)
}
