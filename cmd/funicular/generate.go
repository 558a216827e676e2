package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/funicular/funicular"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Write the precomputed stylesheet",
	Long: `Scan source files for utility class strings and write a stylesheet with
one rule per utility, in first-seen order. Serve it with --style-mode linked.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.StringSlice("paths", defaultScanPaths, "File patterns to scan for class strings")
	f.String("output", defaultOutput, "Stylesheet file to write")
	f.Bool("minify", false, "Write minified CSS")
	f.Bool("lint", false, "Run linter after generation")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	config := buildGenerateConfig()

	result, err := funicular.Generate(config)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	if !quiet {
		fmt.Printf("Generated %s\n", config.Output)
		fmt.Printf("  Files scanned: %d\n", result.Stats.FilesScanned)
		fmt.Printf("  Tokens seen: %d\n", result.Tokens)
		fmt.Printf("  Rules written: %d (%d bytes)\n", result.RulesWritten, result.BytesWritten)

		if getBoolWithFallback("verbose", "verbose", false) {
			if result.Stats.FilesSkipped > 0 {
				fmt.Printf("  Skipped %d generated/ignored files\n", result.Stats.FilesSkipped)
			}
			for _, tok := range result.Unresolved {
				fmt.Fprintf(os.Stderr, "  Unresolved: %s\n", tok)
			}
		}
	}

	lint, _ := cmd.Flags().GetBool("lint")
	if lint {
		return runLint()
	}

	return nil
}
