package funicular

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/funicular/funicular/internal/stylesheet"
	"github.com/funicular/funicular/internal/utility"
)

// Config holds stylesheet generation settings
type Config struct {
	ScanPaths []string // Doublestar patterns of sources to scan
	Output    string   // Stylesheet file to write
	Dark      utility.DarkMode
	Minify    bool
}

// GenerateResult summarises one generation run
type GenerateResult struct {
	Stats        ScanStats
	References   int // Class strings found
	Tokens       int // Distinct tokens seen
	RulesWritten int
	BytesWritten int64
	Unresolved   []string // Tokens from class contexts that produce no rule
}

// Generate scans the configured sources and writes the stylesheet for every
// utility they reference, in first-seen order
func Generate(config Config) (*GenerateResult, error) {
	if config.Output == "" {
		return nil, fmt.Errorf("no output file configured")
	}

	refs, stats, err := ScanFiles(config.ScanPaths)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}

	synth := stylesheet.NewSynthesizer(utility.NewResolver(nil, config.Dark))
	classes, explicit := collectTokens(refs)
	sheet := synth.Synthesize(classes)

	if dir := filepath.Dir(config.Output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create output dir: %w", err)
		}
	}
	f, err := os.Create(config.Output)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", config.Output, err)
	}
	n, err := sheet.Write(f, stylesheet.Format{Minify: config.Minify})
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return nil, fmt.Errorf("write %s: %w", config.Output, err)
	}

	return &GenerateResult{
		Stats:        stats,
		References:   len(refs),
		Tokens:       len(classes),
		RulesWritten: sheet.Len(),
		BytesWritten: n,
		Unresolved:   synth.Unresolved(explicit),
	}, nil
}

// collectTokens flattens references into distinct tokens in first-seen order.
// The second list holds only tokens found in explicit class contexts.
func collectTokens(refs []ClassReference) (all, explicit stylesheet.ClassList) {
	seen := make(map[string]bool)
	seenExplicit := make(map[string]bool)
	for _, ref := range refs {
		for _, tok := range ref.Tokens() {
			if !seen[tok] {
				seen[tok] = true
				all = append(all, tok)
			}
			if ref.Explicit && !seenExplicit[tok] {
				seenExplicit[tok] = true
				explicit = append(explicit, tok)
			}
		}
	}
	return all, explicit
}
