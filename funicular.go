// Package funicular provides the offline tooling around the on-demand
// utility stylesheet: scanning sources for class strings, writing a
// precomputed stylesheet, and linting sources against it.
//
// # Generation
//
//	result, err := funicular.Generate(funicular.Config{
//		ScanPaths: []string{"internal/**/*.go"},
//		Output:    "site.css",
//	})
//
// # Linting
//
//	result, err := funicular.Lint(funicular.LintConfig{
//		ScanPaths:  []string{"internal/**/*.go"},
//		Stylesheet: "site.css",
//	})
//
// Unknown utilities in class contexts are warnings, utilities missing
// from the stylesheet are errors, and stylesheet rules nothing uses are
// warnings.
//
// The HTTP application lives under internal/ and is started with
// `funicular serve`.
package funicular
