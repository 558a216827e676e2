package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/funicular/funicular"
)

func TestBuildCaretIndicator(t *testing.T) {
	tests := []struct {
		name       string
		sourceLine string
		column     int
		want       string
	}{
		{
			name:       "spaces only",
			sourceLine: "  <div class=\"flex\">",
			column:     15,
			want:       "              ^",
		},
		{
			name:       "tabs and spaces",
			sourceLine: "\t\tmarkup.Class(\"p-4\")",
			column:     17,
			want:       "\t\t              ^",
		},
		{
			name:       "start of line",
			sourceLine: "class=\"flex\"",
			column:     1,
			want:       "^",
		},
		{
			name:       "column 0 fallback",
			sourceLine: "some line",
			column:     0,
			want:       "^",
		},
		{
			name:       "column beyond line length",
			sourceLine: "short",
			column:     100,
			want:       "     ^",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, buildCaretIndicator(tt.sourceLine, tt.column))
		})
	}
}

func sampleResult() *funicular.LintResult {
	return &funicular.LintResult{
		Issues: []funicular.Issue{
			{
				FromLinter: funicular.LinterOrphan,
				Text:       "rule .grid is not used by any scanned source",
				Severity:   funicular.SeverityWarning,
				Pos:        funicular.IssuePos{Filename: "site.css", Line: 9, Column: 1},
			},
			{
				FromLinter:  funicular.LinterUtility,
				Text:        `unknown utility "bogus"`,
				Severity:    funicular.SeverityWarning,
				SourceLines: []string{"\t<div class=\"bogus\">"},
				Pos:         funicular.IssuePos{Filename: "views.html", Line: 3, Column: 14},
			},
			{
				FromLinter: funicular.LinterStylesheet,
				Text:       `utility "p-4" has no rule in site.css`,
				Severity:   funicular.SeverityError,
				Pos:        funicular.IssuePos{Filename: "views.html", Line: 2, Column: 5},
			},
		},
		FilesScanned: 2,
		RulesInSheet: 4,
		OrphanCount:  1,
		ErrorCount:   1,
		WarningCount: 2,
	}
}

func TestPrintIssues(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	reporter := NewReporter(&buf, Options{PrintLines: true, PrintLinterName: true})
	require.False(t, reporter.UseColors())

	reporter.PrintIssues(sampleResult().Issues)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Equal(t, []string{
		"site.css:9:1: rule .grid is not used by any scanned source (orphan)",
		`views.html:2:5: utility "p-4" has no rule in site.css (stylesheet)`,
		`views.html:3:14: unknown utility "bogus" (utility)`,
		"\t\t<div class=\"bogus\">",
		"\t\t            ^",
	}, lines)
}

func TestPrintIssuesWithoutLinterName(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	NewReporter(&buf, Options{}).PrintIssues(sampleResult().Issues[:1])
	require.Equal(t, "site.css:9:1: rule .grid is not used by any scanned source\n", buf.String())
}

func TestPrintSummary(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	NewReporter(&buf, Options{}).PrintSummary(sampleResult())

	out := buf.String()
	require.Contains(t, out, "3 issues (1 error, 2 warnings):\n")
	require.Contains(t, out, "* orphan: 1\n* stylesheet: 1\n* utility: 1\n")
}

func TestPrintSummaryClean(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	NewReporter(&buf, Options{}).PrintSummary(&funicular.LintResult{})
	require.Equal(t, "\n0 issues.\n", buf.String())
}

func TestWriteFormats(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	tests := []struct {
		format funicular.OutputFormat
		want   string
	}{
		{format: funicular.OutputIssues, want: "(stylesheet)"},
		{format: funicular.OutputSummary, want: "Orphan Rules:        1"},
		{format: funicular.OutputJSON, want: `"total_issues": 3`},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Write(&buf, sampleResult(), tt.format, Options{PrintLinterName: true}))
			require.Contains(t, buf.String(), tt.want)
		})
	}

	require.Error(t, Write(&bytes.Buffer{}, sampleResult(), "markdown", Options{}))
}

func TestSummaryCoverage(t *testing.T) {
	var buf bytes.Buffer
	NewSummaryReporter(&buf, false).PrintCoverage(sampleResult())
	require.Contains(t, buf.String(), "] 75.0%")
}
