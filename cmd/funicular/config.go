package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"

	"github.com/funicular/funicular"
	"github.com/funicular/funicular/internal/database"
	"github.com/funicular/funicular/internal/logging"
	"github.com/funicular/funicular/internal/server"
	"github.com/funicular/funicular/internal/utility"
)

const defaultConfigPath = ".funicular.yaml"

var k = koanf.New(".")

var (
	defaultScanPaths = []string{"internal/**/*.go", "web/**/*.html"}
	defaultOutput    = "site.css"
)

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// Only flags that were explicitly set
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads the config file and environment variables
func loadConfigFromPath(configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// DATABASE_URL is honoured below the prefixed variables
	if err := k.Load(env.Provider("DATABASE_URL", ".", func(s string) string {
		if s != "DATABASE_URL" {
			return ""
		}
		return "database.url"
	}), nil); err != nil {
		return fmt.Errorf("loading DATABASE_URL: %w", err)
	}

	if err := k.Load(env.Provider("FUNICULAR_", ".", func(s string) string {
		// FUNICULAR_SERVER_ADDR -> server.addr
		// FUNICULAR_LINT_STRICT -> lint.strict
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "FUNICULAR_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// serveConfig is the validated configuration of `funicular serve`
type serveConfig struct {
	Addr           string
	DatabaseURL    string
	MaxConns       int
	AcquireTimeout time.Duration
	CreateSchema   bool
	StyleMode      string
	StylePath      string
	Dark           string
	Minify         bool
	LogLevel       string
	LogFormat      string
}

func buildServeConfig() serveConfig {
	db := database.DefaultConfig()
	logLevel := getStringWithFallback("log-level", "log.level", "info")
	if getBoolWithFallback("verbose", "verbose", false) {
		logLevel = "debug"
	}
	return serveConfig{
		Addr:           getStringWithFallback("addr", "server.addr", server.DefaultAddr),
		DatabaseURL:    getStringWithFallback("database-url", "database.url", db.URL),
		MaxConns:       getIntWithFallback("max-conns", "database.max-conns", db.MaxConns),
		AcquireTimeout: getDurationWithFallback("acquire-timeout", "database.acquire-timeout", db.AcquireTimeout),
		CreateSchema:   getBoolWithFallback("create-schema", "database.create-schema", false),
		StyleMode:      getStringWithFallback("style-mode", "style.mode", "inline"),
		StylePath:      getStringWithFallback("style-path", "style.path", "/site.css"),
		Dark:           getStringWithFallback("dark", "style.dark", string(utility.DarkMedia)),
		Minify:         getBoolWithFallback("minify", "style.minify", false),
		LogLevel:       logLevel,
		LogFormat:      getStringWithFallback("log-format", "log.format", "console"),
	}
}

// Validate checks the serve configuration before anything is opened
func (c serveConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Addr, validation.Required),
		validation.Field(&c.DatabaseURL, validation.Required, validation.By(supportedURL)),
		validation.Field(&c.MaxConns, validation.Required, validation.Min(1)),
		validation.Field(&c.AcquireTimeout, validation.Required, validation.Min(time.Millisecond)),
		validation.Field(&c.StyleMode, validation.In("inline", "linked")),
		validation.Field(&c.StylePath, validation.Required, validation.By(absolutePath)),
		validation.Field(&c.Dark, validation.In(string(utility.DarkMedia), string(utility.DarkClass))),
		validation.Field(&c.LogLevel, validation.In(toAny(logging.Levels)...)),
		validation.Field(&c.LogFormat, validation.In("console", "json", "pretty")),
	)
}

func supportedURL(value any) error {
	url, _ := value.(string)
	if _, _, err := database.Resolve(url); err != nil {
		return validation.NewError("validation_database_url", "is not a postgres or sqlite URL")
	}
	return nil
}

func absolutePath(value any) error {
	path, _ := value.(string)
	if !strings.HasPrefix(path, "/") {
		return validation.NewError("validation_style_path", "must start with /")
	}
	return nil
}

func toAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

// buildGenerateConfig constructs the generator config from koanf state
func buildGenerateConfig() funicular.Config {
	return funicular.Config{
		ScanPaths: getStringsWithFallback("paths", "generate.paths", defaultScanPaths),
		Output:    getStringWithFallback("output", "generate.output", defaultOutput),
		Dark:      utility.DarkMode(getStringWithFallback("dark", "style.dark", string(utility.DarkMedia))),
		Minify:    getBoolWithFallback("minify", "style.minify", false),
	}
}

// buildLintConfig constructs the linter config from koanf state
func buildLintConfig() funicular.LintConfig {
	return funicular.LintConfig{
		ScanPaths:          getStringsWithFallback("paths", "lint.paths", defaultScanPaths),
		Stylesheet:         getStringWithFallback("stylesheet", "lint.stylesheet", getStringWithFallback("output", "generate.output", defaultOutput)),
		Ignore:             getStringsWithFallback("ignore", "lint.ignore", nil),
		Dark:               utility.DarkMode(getStringWithFallback("dark", "style.dark", string(utility.DarkMedia))),
		Strict:             getBoolWithFallback("strict", "lint.strict", false),
		MaxIssuesPerLinter: getIntWithFallback("max-issues-per-linter", "lint.max-issues-per-linter", 0),
		MaxSameIssues:      getIntWithFallback("max-same-issues", "lint.max-same-issues", 0),
		PrintIssuedLines:   getBoolWithFallback("print-lines", "lint.print-lines", true),
		PrintLinterName:    getBoolWithFallback("print-linter-name", "lint.print-linter-name", true),
		UseColors:          getBoolWithFallback("color", "color", false),
	}
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getIntWithFallback checks the flag key first, then the config file key, then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}

// getDurationWithFallback checks the flag key first, then the config file key, then returns the default.
func getDurationWithFallback(flagKey, configKey string, defaultVal time.Duration) time.Duration {
	if k.Exists(flagKey) {
		return k.Duration(flagKey)
	}
	if k.Exists(configKey) {
		return k.Duration(configKey)
	}
	return defaultVal
}

// getStringsWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringsWithFallback(flagKey, configKey string, defaultVal []string) []string {
	if v := k.Strings(flagKey); len(v) > 0 {
		return v
	}
	if v := k.Strings(configKey); len(v) > 0 {
		return v
	}
	return defaultVal
}
