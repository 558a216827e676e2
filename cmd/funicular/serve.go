package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/funicular/funicular/internal/catalog"
	"github.com/funicular/funicular/internal/database"
	"github.com/funicular/funicular/internal/logging"
	"github.com/funicular/funicular/internal/page"
	"github.com/funicular/funicular/internal/server"
	"github.com/funicular/funicular/internal/stylesheet"
	"github.com/funicular/funicular/internal/utility"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	Long: `Serve the home page and the games catalog. Pages embed their synthesized
stylesheet inline, or link the precomputed one with --style-mode linked.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runServe,
}

func init() {
	f := serveCmd.Flags()
	f.String("addr", server.DefaultAddr, "Listen address")
	f.String("database-url", database.DefaultURL, "Database URL (postgres:// or sqlite://)")
	f.Int("max-conns", 5, "Maximum open database connections")
	f.Duration("acquire-timeout", database.DefaultConfig().AcquireTimeout, "Per-statement database deadline")
	f.Bool("create-schema", false, "Create the game table if it does not exist")
	f.String("style-mode", string(page.StyleInline), "Stylesheet delivery: inline|linked")
	f.String("style-path", "/site.css", "URL of the linked stylesheet")
	f.Bool("minify", false, "Minify synthesized CSS")
	f.String("log-level", "info", "Log level: trace|debug|info|warn|error|fatal")
	f.String("log-format", "console", "Log format: console|json|pretty")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := buildServeConfig()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	provider, err := logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	log := provider.GetLogger("funicular")

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(ctx, database.Config{
		URL:            cfg.DatabaseURL,
		MaxConns:       cfg.MaxConns,
		AcquireTimeout: cfg.AcquireTimeout,
	})
	if err != nil {
		return err
	}
	defer db.Close()
	log.Info("database connected", "url", database.Redact(cfg.DatabaseURL), "max_conns", cfg.MaxConns)

	repo := catalog.NewBunRepository(db, cfg.AcquireTimeout)
	if cfg.CreateSchema {
		if err := repo.CreateSchema(ctx); err != nil {
			return err
		}
		log.Info("schema ready")
	}

	composer, err := newComposer(cfg.Dark, cfg.StyleMode, cfg.StylePath, cfg.Minify)
	if err != nil {
		return err
	}

	svc := catalog.NewService(repo, provider.GetLogger("catalog"))
	srv := server.New(server.Config{Addr: cfg.Addr}, composer, svc, provider.GetLogger("server"))
	return srv.Listen(ctx)
}

// newComposer wires the resolver, synthesizer and composer from string settings
func newComposer(dark, mode, stylePath string, minify bool) (*page.Composer, error) {
	darkMode, err := utility.ParseDarkMode(dark)
	if err != nil {
		return nil, err
	}
	styleMode, err := page.ParseStyleMode(mode)
	if err != nil {
		return nil, err
	}
	synth := stylesheet.NewSynthesizer(utility.NewResolver(nil, darkMode))
	return page.NewComposer(synth, page.Options{
		Mode:      styleMode,
		StylePath: stylePath,
		Minify:    minify,
	}), nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
