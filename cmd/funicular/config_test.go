package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funicular/funicular/internal/database"
	"github.com/funicular/funicular/internal/utility"
)

// resetKoanf creates a fresh koanf instance for each test.
func resetKoanf() {
	k = koanf.New(".")
}

func TestConfigFileLoading(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".funicular.yaml")
	configContent := `
verbose: true

server:
  addr: 127.0.0.1:8080

database:
  url: sqlite://games.db
  max-conns: 2
  acquire-timeout: 500ms

style:
  mode: linked
  dark: class

lint:
  strict: true
  paths:
    - "custom/**/*.go"
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0o644))
	require.NoError(t, loadConfigFromPath(configPath))

	cfg := buildServeConfig()
	assert.Equal(t, "127.0.0.1:8080", cfg.Addr)
	assert.Equal(t, "sqlite://games.db", cfg.DatabaseURL)
	assert.Equal(t, 2, cfg.MaxConns)
	assert.Equal(t, 500*time.Millisecond, cfg.AcquireTimeout)
	assert.Equal(t, "linked", cfg.StyleMode)
	assert.Equal(t, "class", cfg.Dark)
	assert.Equal(t, "debug", cfg.LogLevel, "verbose raises the log level")
	require.NoError(t, cfg.Validate())

	lint := buildLintConfig()
	assert.True(t, lint.Strict)
	assert.Equal(t, []string{"custom/**/*.go"}, lint.ScanPaths)
	assert.Equal(t, utility.DarkClass, lint.Dark)
}

func TestConfigFileNotFound_UsesDefaults(t *testing.T) {
	resetKoanf()

	// A missing config file is not an error
	require.NoError(t, loadConfigFromPath("/nonexistent/.funicular.yaml"))

	cfg := buildServeConfig()
	assert.Equal(t, "0.0.0.0:1111", cfg.Addr)
	assert.Equal(t, database.DefaultURL, cfg.DatabaseURL)
	assert.Equal(t, 5, cfg.MaxConns)
	assert.Equal(t, 3*time.Second, cfg.AcquireTimeout)
	assert.Equal(t, "inline", cfg.StyleMode)
	assert.Equal(t, "/site.css", cfg.StylePath)
	assert.Equal(t, "media", cfg.Dark)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.False(t, cfg.CreateSchema)
	require.NoError(t, cfg.Validate())
}

func TestEnvVarOverridesConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".funicular.yaml")
	configContent := `
server:
  addr: from-file:1
lint:
  strict: false
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0o644))

	t.Setenv("FUNICULAR_SERVER_ADDR", "from-env:2")
	t.Setenv("FUNICULAR_LINT_STRICT", "true")

	require.NoError(t, loadConfigFromPath(configPath))

	assert.Equal(t, "from-env:2", k.String("server.addr"))
	assert.True(t, k.Bool("lint.strict"))
}

func TestDatabaseURLAlias(t *testing.T) {
	t.Run("plain DATABASE_URL", func(t *testing.T) {
		resetKoanf()
		t.Setenv("DATABASE_URL", "postgres://app@db:5432/games")

		require.NoError(t, loadConfigFromPath("/nonexistent/.funicular.yaml"))
		assert.Equal(t, "postgres://app@db:5432/games", buildServeConfig().DatabaseURL)
	})

	t.Run("prefixed variable wins", func(t *testing.T) {
		resetKoanf()
		t.Setenv("DATABASE_URL", "postgres://app@db:5432/games")
		t.Setenv("FUNICULAR_DATABASE_URL", "sqlite://local.db")

		require.NoError(t, loadConfigFromPath("/nonexistent/.funicular.yaml"))
		assert.Equal(t, "sqlite://local.db", buildServeConfig().DatabaseURL)
	})
}

func TestServeConfigValidate(t *testing.T) {
	valid := func() serveConfig {
		resetKoanf()
		return buildServeConfig()
	}

	tests := []struct {
		name   string
		modify func(*serveConfig)
	}{
		{"empty addr", func(c *serveConfig) { c.Addr = "" }},
		{"unsupported database", func(c *serveConfig) { c.DatabaseURL = "mysql://root@localhost/games" }},
		{"zero connections", func(c *serveConfig) { c.MaxConns = 0 }},
		{"unknown style mode", func(c *serveConfig) { c.StyleMode = "external" }},
		{"relative style path", func(c *serveConfig) { c.StylePath = "site.css" }},
		{"unknown dark mode", func(c *serveConfig) { c.Dark = "auto" }},
		{"unknown log level", func(c *serveConfig) { c.LogLevel = "loud" }},
		{"unknown log format", func(c *serveConfig) { c.LogFormat = "xml" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			require.NoError(t, cfg.Validate())
			tt.modify(&cfg)
			require.Error(t, cfg.Validate())
		})
	}
}

func TestBuildGenerateConfig(t *testing.T) {
	resetKoanf()

	config := buildGenerateConfig()
	assert.Equal(t, defaultScanPaths, config.ScanPaths)
	assert.Equal(t, "site.css", config.Output)
	assert.Equal(t, utility.DarkMedia, config.Dark)
	assert.False(t, config.Minify)

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".funicular.yaml")
	configContent := `
style:
  minify: true
generate:
  output: public/app.css
  paths:
    - "views/**/*.html"
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0o644))
	require.NoError(t, loadConfigFromPath(configPath))

	config = buildGenerateConfig()
	assert.Equal(t, []string{"views/**/*.html"}, config.ScanPaths)
	assert.Equal(t, "public/app.css", config.Output)
	assert.True(t, config.Minify)

	// lint reads the generated file unless told otherwise
	assert.Equal(t, "public/app.css", buildLintConfig().Stylesheet)
}

func TestBuildLintConfig_Defaults(t *testing.T) {
	resetKoanf()

	config := buildLintConfig()
	assert.Equal(t, "site.css", config.Stylesheet)
	assert.Equal(t, defaultScanPaths, config.ScanPaths)
	assert.Empty(t, config.Ignore)
	assert.False(t, config.Strict)
	assert.Equal(t, 0, config.MaxIssuesPerLinter)
	assert.True(t, config.PrintIssuedLines)
	assert.True(t, config.PrintLinterName)
}

func TestBuildLintConfig_FromConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".funicular.yaml")
	configContent := `
lint:
  stylesheet: dist/site.css
  ignore:
    - "js-*"
  max-issues-per-linter: 10
  print-lines: false
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0o644))
	require.NoError(t, loadConfigFromPath(configPath))

	config := buildLintConfig()
	assert.Equal(t, "dist/site.css", config.Stylesheet)
	assert.Equal(t, []string{"js-*"}, config.Ignore)
	assert.Equal(t, 10, config.MaxIssuesPerLinter)
	assert.False(t, config.PrintIssuedLines)
}

func chdirTemp(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})
}

func TestInitCommand_CreatesConfigFile(t *testing.T) {
	chdirTemp(t)

	cmd := rootCmd
	cmd.SetArgs([]string{"init"})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(".funicular.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "server:")
	assert.Contains(t, string(data), "generate:")
	assert.Contains(t, string(data), "lint:")

	// The written file loads and validates
	resetKoanf()
	require.NoError(t, loadConfigFromPath(".funicular.yaml"))
	require.NoError(t, buildServeConfig().Validate())
}

func TestInitCommand_RefusesOverwrite(t *testing.T) {
	chdirTemp(t)
	require.NoError(t, os.WriteFile(".funicular.yaml", []byte("existing"), 0o644))

	cmd := rootCmd
	cmd.SetArgs([]string{"init"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestInitCommand_ForceOverwrite(t *testing.T) {
	chdirTemp(t)
	require.NoError(t, os.WriteFile(".funicular.yaml", []byte("existing"), 0o644))

	cmd := rootCmd
	cmd.SetArgs([]string{"init", "--force"})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(".funicular.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "database:")
}

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	cmd := rootCmd
	cmd.SetOut(&buf)
	t.Cleanup(func() { cmd.SetOut(nil) })
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "funicular dev\n", buf.String())
}

func TestGetStringWithFallback(t *testing.T) {
	resetKoanf()

	// No keys set - should return default
	assert.Equal(t, "default", getStringWithFallback("flag-key", "config.key", "default"))
}

func TestGetBoolWithFallback(t *testing.T) {
	resetKoanf()

	assert.False(t, getBoolWithFallback("flag-key", "config.key", false))
	assert.True(t, getBoolWithFallback("flag-key", "config.key", true))
}

func TestGetIntWithFallback(t *testing.T) {
	resetKoanf()

	assert.Equal(t, 42, getIntWithFallback("flag-key", "config.key", 42))
}

func TestGetDurationWithFallback(t *testing.T) {
	resetKoanf()

	assert.Equal(t, time.Second, getDurationWithFallback("flag-key", "config.key", time.Second))
}
