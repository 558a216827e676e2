// Package report writes lint results to terminals in golangci-lint style.
package report

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/funicular/funicular"
)

// Options controls issue output
type Options struct {
	PrintLines      bool
	PrintLinterName bool
	ForceColors     bool
}

// Reporter formats lint issues
type Reporter struct {
	w               io.Writer
	useColors       bool
	printLines      bool
	printLinterName bool
}

// NewReporter creates a reporter writing to w
func NewReporter(w io.Writer, opts Options) *Reporter {
	return &Reporter{
		w:               w,
		useColors:       shouldUseColors(opts.ForceColors),
		printLines:      opts.PrintLines,
		printLinterName: opts.PrintLinterName,
	}
}

// shouldUseColors honours an explicit flag, CI hints, then a TTY stdout
func shouldUseColors(force bool) bool {
	if force {
		return true
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}
	if fileInfo, err := os.Stdout.Stat(); err == nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}
	return false
}

// UseColors returns whether colors are enabled
func (r *Reporter) UseColors() bool {
	return r.useColors
}

// PrintIssues writes issues sorted by position
func (r *Reporter) PrintIssues(issues []funicular.Issue) {
	funicular.SortIssues(issues)
	for _, issue := range issues {
		r.printIssue(issue)
	}
}

// printIssue writes file:line:col: message (linter), then the source line
// and a caret under the column
func (r *Reporter) printIssue(issue funicular.Issue) {
	location := fmt.Sprintf("%s:%d:%d:", funicular.GetRelativePath(issue.Pos.Filename), issue.Pos.Line, issue.Pos.Column)

	linterSuffix := ""
	if r.printLinterName {
		linterSuffix = fmt.Sprintf(" (%s)", issue.FromLinter)
	}

	text := issue.Text
	if issue.Severity == funicular.SeverityError {
		text = RenderStyle(StyleRed, text, r.useColors)
	}

	fmt.Fprintf(r.w, "%s %s%s\n",
		RenderStyle(StyleCyan, location, r.useColors),
		text,
		RenderStyle(StyleGray, linterSuffix, r.useColors))

	if r.printLines && len(issue.SourceLines) > 0 {
		for _, line := range issue.SourceLines {
			fmt.Fprintf(r.w, "\t%s\n", line)
		}
		caret := buildCaretIndicator(issue.SourceLines[0], issue.Pos.Column)
		fmt.Fprintf(r.w, "\t%s\n", RenderStyle(StyleYellow, caret, r.useColors))
	}
}

// buildCaretIndicator pads to column, copying tabs so the caret lines up
func buildCaretIndicator(sourceLine string, column int) string {
	if column <= 0 {
		return "^"
	}

	prefixLen := column - 1
	if prefixLen > len(sourceLine) {
		prefixLen = len(sourceLine)
	}

	var padding strings.Builder
	for _, ch := range sourceLine[:prefixLen] {
		if ch == '\t' {
			padding.WriteRune('\t')
		} else {
			padding.WriteRune(' ')
		}
	}

	return padding.String() + "^"
}

// PrintSummary writes the issue count line and the per-linter breakdown
func (r *Reporter) PrintSummary(result *funicular.LintResult) {
	total := len(result.Issues)

	fmt.Fprintln(r.w, "")
	if total == 0 && result.TruncatedCount == 0 {
		fmt.Fprintln(r.w, RenderStyle(StyleGreen, "0 issues.", r.useColors))
		return
	}

	var details []string
	if result.ErrorCount > 0 && result.WarningCount > 0 {
		details = append(details,
			pluralizeCount(result.ErrorCount, "error", "errors"),
			pluralizeCount(result.WarningCount, "warning", "warnings"))
	}
	if result.TruncatedCount > 0 {
		details = append(details, pluralizeCount(result.TruncatedCount, "issue", "issues")+" truncated")
	}

	if len(details) > 0 {
		fmt.Fprintf(r.w, "%s (%s):\n", pluralizeCount(total, "issue", "issues"), strings.Join(details, ", "))
	} else {
		fmt.Fprintf(r.w, "%s:\n", pluralizeCount(total, "issue", "issues"))
	}

	linterCounts := make(map[string]int)
	for _, issue := range result.Issues {
		linterCounts[issue.FromLinter]++
	}
	linters := make([]string, 0, len(linterCounts))
	for linter := range linterCounts {
		linters = append(linters, linter)
	}
	sort.Strings(linters)
	for _, linter := range linters {
		fmt.Fprintf(r.w, "* %s: %d\n", linter, linterCounts[linter])
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleGray, "Hint: run `funicular generate` to refresh the stylesheet", r.useColors))
}

func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
