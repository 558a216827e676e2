package funicular

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput is the structured lint export
type JSONOutput struct {
	Version   string      `json:"version"`
	Timestamp string      `json:"timestamp"`
	Summary   JSONSummary `json:"summary"`
	Issues    []JSONIssue `json:"issues"`
}

// JSONSummary contains high-level counts
type JSONSummary struct {
	TotalIssues   int `json:"total_issues"`
	Errors        int `json:"errors"`
	Warnings      int `json:"warnings"`
	Truncated     int `json:"truncated"`
	FilesScanned  int `json:"files_scanned"`
	References    int `json:"references"`
	TokensChecked int `json:"tokens_checked"`
	RulesInSheet  int `json:"rules_in_stylesheet"`
	Unknown       int `json:"unknown"`
	Missing       int `json:"missing"`
	Orphans       int `json:"orphans"`
}

// JSONIssue is a single lint issue
type JSONIssue struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Linter   string `json:"linter"`
	Source   string `json:"source,omitempty"`
}

// WriteJSON writes the lint result as indented JSON
func WriteJSON(w io.Writer, result *LintResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildJSONOutput(result, time.Now()))
}

func buildJSONOutput(result *LintResult, now time.Time) JSONOutput {
	issues := make([]JSONIssue, len(result.Issues))
	for i, issue := range result.Issues {
		source := ""
		if len(issue.SourceLines) > 0 {
			source = issue.SourceLines[0]
		}
		issues[i] = JSONIssue{
			File:     issue.Pos.Filename,
			Line:     issue.Pos.Line,
			Column:   issue.Pos.Column,
			Severity: issue.Severity,
			Message:  issue.Text,
			Linter:   issue.FromLinter,
			Source:   source,
		}
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: now.Format(time.RFC3339),
		Summary: JSONSummary{
			TotalIssues:   len(result.Issues),
			Errors:        result.ErrorCount,
			Warnings:      result.WarningCount,
			Truncated:     result.TruncatedCount,
			FilesScanned:  result.FilesScanned,
			References:    result.References,
			TokensChecked: result.TokensChecked,
			RulesInSheet:  result.RulesInSheet,
			Unknown:       result.UnknownCount,
			Missing:       result.MissingCount,
			Orphans:       result.OrphanCount,
		},
		Issues: issues,
	}
}
