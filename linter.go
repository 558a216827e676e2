package funicular

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/funicular/funicular/internal/stylesheet"
	"github.com/funicular/funicular/internal/utility"
)

// LintConfig holds linting configuration
type LintConfig struct {
	ScanPaths  []string // Patterns to scan (e.g., "internal/**/*.go")
	Stylesheet string   // Precomputed stylesheet to check against
	Ignore     []string // Token patterns never reported as unknown
	Dark       utility.DarkMode
	Strict     bool // Any issue fails the run, not just errors

	MaxIssuesPerLinter int  // 0 = unlimited
	MaxSameIssues      int  // 0 = unlimited
	PrintIssuedLines   bool // Show source lines with issues
	PrintLinterName    bool // Show (linter) suffix
	UseColors          bool // Force color output
}

// LintResult contains linting analysis results
type LintResult struct {
	Issues []Issue

	FilesScanned   int
	References     int // Class strings found
	TokensChecked  int // Distinct tokens seen in class contexts
	RulesInSheet   int
	UnknownCount   int
	MissingCount   int
	OrphanCount    int
	ErrorCount     int
	WarningCount   int
	TruncatedCount int // Issues removed due to limits

	Warnings []string
}

// Failed reports whether the result should fail the run
func (r *LintResult) Failed(strict bool) bool {
	if strict {
		return len(r.Issues) > 0 || r.TruncatedCount > 0
	}
	return r.ErrorCount > 0
}

// sheetIndex is the precomputed stylesheet keyed by class and media query
type sheetIndex struct {
	path    string
	content string
	rules   []stylesheet.ParsedRule
	keys    map[string]bool
}

func ruleKey(class, media string) string {
	return class + "\x00" + strings.Join(strings.Fields(media), " ")
}

// Lint checks scanned class references against the utility table and the
// precomputed stylesheet:
//
//   - unknown utility in a class context: warning
//   - utility that resolves but has no rule in the stylesheet: error
//   - stylesheet rule no scanned source uses: warning
func Lint(config LintConfig) (*LintResult, error) {
	index, err := loadSheet(config.Stylesheet)
	if err != nil {
		return nil, err
	}

	refs, stats, err := ScanFiles(config.ScanPaths)
	if err != nil {
		return nil, fmt.Errorf("failed to scan files: %w", err)
	}

	resolver := utility.NewResolver(nil, config.Dark)
	result := &LintResult{
		FilesScanned: stats.FilesScanned,
		References:   len(refs),
		RulesInSheet: len(index.rules),
	}
	if stats.FilesSkipped > 0 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("skipped %d generated or ignored files", stats.FilesSkipped))
	}

	used := make(map[string]bool)
	checked := make(map[string]bool)
	for _, ref := range refs {
		tokens := ref.Tokens()
		classLike := ref.Explicit || allKnown(resolver, tokens)

		for _, raw := range tokens {
			tok, ok := utility.Parse(raw)
			if !ok {
				continue
			}
			rule, known := resolver.Resolve(tok)
			if known {
				used[raw] = true
			}
			if !classLike {
				continue
			}
			if ref.Explicit {
				checked[raw] = true
			}

			switch {
			case !known && ref.Explicit && !ignored(config.Ignore, raw):
				result.Issues = append(result.Issues, referenceIssue(ref, raw,
					LinterUtility, SeverityWarning, fmt.Sprintf(IssueUnknownUtility, raw)))
				result.UnknownCount++
			case known && !index.keys[ruleKey(raw, rule.MediaQuery)]:
				result.Issues = append(result.Issues, referenceIssue(ref, raw,
					LinterStylesheet, SeverityError, fmt.Sprintf(IssueMissingRule, raw, index.path)))
				result.MissingCount++
			}
		}
	}
	result.TokensChecked = len(checked)

	orphans := findOrphans(index, used)
	result.Issues = append(result.Issues, orphans...)
	result.OrphanCount = len(orphans)

	if config.MaxIssuesPerLinter > 0 || config.MaxSameIssues > 0 {
		result.Issues, result.TruncatedCount = limitIssues(result.Issues, config)
	}
	for _, issue := range result.Issues {
		switch issue.Severity {
		case SeverityError:
			result.ErrorCount++
		case SeverityWarning:
			result.WarningCount++
		}
	}

	return result, nil
}

func loadSheet(path string) (*sheetIndex, error) {
	if path == "" {
		return nil, fmt.Errorf("no stylesheet configured")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read stylesheet: %w", err)
	}
	rules, err := stylesheet.ParseString(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse stylesheet %s: %w", path, err)
	}

	index := &sheetIndex{
		path:    path,
		content: string(data),
		rules:   rules,
		keys:    make(map[string]bool),
	}
	for _, rule := range rules {
		for _, class := range rule.Classes {
			index.keys[ruleKey(class, rule.MediaQuery)] = true
		}
	}
	return index, nil
}

// findOrphans reports rules none of whose classes appear in used.
// The "dark" ancestor class of the class strategy never counts.
func findOrphans(index *sheetIndex, used map[string]bool) []Issue {
	var issues []Issue
	for _, rule := range index.rules {
		referenced := false
		for _, class := range rule.Classes {
			if class != "dark" && used[class] {
				referenced = true
				break
			}
		}
		if referenced {
			continue
		}

		line, col, text := locate(index.content, rule.Selector)
		issue := Issue{
			FromLinter: LinterOrphan,
			Text:       fmt.Sprintf(IssueOrphanRule, rule.Selector),
			Severity:   SeverityWarning,
			Pos: IssuePos{
				Filename: index.path,
				Line:     line,
				Column:   col,
			},
		}
		if text != "" {
			issue.SourceLines = []string{text}
		}
		issues = append(issues, issue)
	}
	return issues
}

// locate finds the 1-based line and column of needle in content.
// Minified stylesheets put everything on line 1; only the column is useful then.
func locate(content, needle string) (line, col int, text string) {
	idx := -1
	for _, candidate := range []string{needle + " {", needle + "{", needle} {
		if idx = strings.Index(content, candidate); idx != -1 {
			break
		}
	}
	if idx == -1 {
		return 0, 0, ""
	}
	start := strings.LastIndexByte(content[:idx], '\n') + 1
	end := strings.IndexByte(content[idx:], '\n')
	if end == -1 {
		end = len(content)
	} else {
		end += idx
	}
	text = content[start:end]
	if len(text) > 200 {
		// Long minified lines are not worth printing
		text = ""
	}
	return strings.Count(content[:idx], "\n") + 1, idx - start + 1, text
}

func referenceIssue(ref ClassReference, raw, linter, severity, msg string) Issue {
	col := ref.Location.Column
	if idx := tokenColumn(ref.Location.Text, raw, col); idx > 0 {
		col = idx
	}
	return Issue{
		FromLinter:  linter,
		Text:        msg,
		Severity:    severity,
		SourceLines: []string{ref.Location.Text},
		Pos: IssuePos{
			Filename: ref.Location.File,
			Line:     ref.Location.Line,
			Column:   col,
		},
	}
}

// tokenColumn finds raw as a whole token at or after the reference column
func tokenColumn(line, raw string, from int) int {
	offset := from - 1
	if offset < 0 || offset > len(line) {
		offset = 0
	}
	for offset <= len(line)-len(raw) {
		idx := strings.Index(line[offset:], raw)
		if idx == -1 {
			return 0
		}
		pos := offset + idx
		end := pos + len(raw)
		if (pos == 0 || isTokenBoundary(line[pos-1])) && (end == len(line) || isTokenBoundary(line[end])) {
			return pos + 1
		}
		offset = pos + 1
	}
	return 0
}

func isTokenBoundary(c byte) bool {
	switch c {
	case ' ', '\t', '"', '\'', '`':
		return true
	}
	return false
}

func allKnown(r *utility.Resolver, tokens []string) bool {
	if len(tokens) == 0 {
		return false
	}
	for _, t := range tokens {
		if !r.Known(t) {
			return false
		}
	}
	return true
}

func ignored(patterns []string, token string) bool {
	for _, p := range patterns {
		if ok, _ := doublestar.Match(p, token); ok {
			return true
		}
	}
	return false
}

// limitIssues applies max-issues-per-linter and max-same-issues
func limitIssues(issues []Issue, config LintConfig) ([]Issue, int) {
	originalCount := len(issues)

	if config.MaxIssuesPerLinter > 0 {
		perLinter := make(map[string]int)
		var kept []Issue
		for _, issue := range issues {
			if perLinter[issue.FromLinter] < config.MaxIssuesPerLinter {
				kept = append(kept, issue)
				perLinter[issue.FromLinter]++
			}
		}
		issues = kept
	}

	if config.MaxSameIssues > 0 {
		issues = deduplicateSameIssues(issues, config.MaxSameIssues)
	}

	return issues, originalCount - len(issues)
}

// deduplicateSameIssues limits how many times the same message appears
func deduplicateSameIssues(issues []Issue, maxSame int) []Issue {
	messageCounts := make(map[string]int)
	var filtered []Issue

	for _, issue := range issues {
		if messageCounts[issue.Text] < maxSame {
			filtered = append(filtered, issue)
			messageCounts[issue.Text]++
		}
	}

	return filtered
}

// SortIssues orders issues by file, line, then column
func SortIssues(issues []Issue) {
	sort.SliceStable(issues, func(i, j int) bool {
		if issues[i].Pos.Filename != issues[j].Pos.Filename {
			return issues[i].Pos.Filename < issues[j].Pos.Filename
		}
		if issues[i].Pos.Line != issues[j].Pos.Line {
			return issues[i].Pos.Line < issues[j].Pos.Line
		}
		return issues[i].Pos.Column < issues[j].Pos.Column
	})
}
