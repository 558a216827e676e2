package funicular

// Issue is a single lint finding in golangci-lint form
type Issue struct {
	FromLinter  string   `json:"FromLinter"`  // "utility", "stylesheet" or "orphan"
	Text        string   `json:"Text"`        // "unknown utility \"p-13\""
	Severity    string   `json:"Severity"`    // "warning" or "error"
	SourceLines []string `json:"SourceLines"` // Lines of code with the issue
	Pos         IssuePos `json:"Pos"`
}

// IssuePos specifies the exact location of an issue
type IssuePos struct {
	Filename string `json:"Filename"` // "internal/catalog/views.go"
	Line     int    `json:"Line"`     // 35
	Column   int    `json:"Column"`   // 1-based start of the token
}

// Issue severities
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Linter names
const (
	LinterUtility    = "utility"
	LinterStylesheet = "stylesheet"
	LinterOrphan     = "orphan"
)

// Issue messages
const (
	IssueUnknownUtility = "unknown utility %q"
	IssueMissingRule    = "utility %q has no rule in %s"
	IssueOrphanRule     = "rule %s is not used by any scanned source"
)
