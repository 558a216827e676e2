// Package server exposes the site over HTTP with fiber.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/funicular/funicular/internal/catalog"
	"github.com/funicular/funicular/internal/logging"
	"github.com/funicular/funicular/internal/page"
)

// DefaultAddr is the listen address used when none is configured
const DefaultAddr = "0.0.0.0:1111"

// stylesheetMaxAge is the Cache-Control max-age of the linked stylesheet, thirty days
const stylesheetMaxAge = "max-age=2592000"

// Config configures the HTTP server
type Config struct {
	Addr string
}

// Server serves the pages and the precomputed stylesheet
type Server struct {
	cfg      Config
	app      *fiber.App
	composer *page.Composer
	catalog  *catalog.Service
	log      logging.Logger
	siteCSS  string
}

// New builds the fiber app and precomputes the linked stylesheet
func New(cfg Config, composer *page.Composer, svc *catalog.Service, log logging.Logger) *Server {
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	s := &Server{
		cfg:      cfg,
		composer: composer,
		catalog:  svc,
		log:      logging.OrNoOp(log),
	}

	docs := append([]page.Fragments{{Content: page.Home()}}, catalog.Documents()...)
	sheet := composer.Precompute(docs...)
	s.siteCSS = sheet.Render(composer.Format())
	s.log.Debug("stylesheet precomputed", "rules", sheet.Len(), "bytes", len(s.siteCSS))

	s.app = fiber.New(fiber.Config{
		AppName:               "funicular",
		DisableStartupMessage: true,
		ErrorHandler:          s.handleError,
	})
	s.app.Use(recover.New())
	s.app.Use(s.logRequests)
	s.routes()
	return s
}

func (s *Server) routes() {
	s.app.Get("/", s.index)
	s.app.Get(s.composer.StylePath(), s.stylesheet)
	s.app.Get("/games", s.listGames)
	s.app.Post("/games", s.submitGames)
	s.app.Get("/games/:slug", s.showGame)
}

// App exposes the fiber app, mainly for tests
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Listen(ctx context.Context) error {
	errc := make(chan error, 1)
	go func() {
		s.log.Info("listening", "addr", s.cfg.Addr, "style", string(s.composer.Mode()))
		errc <- s.app.Listen(s.cfg.Addr)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.app.ShutdownWithContext(shutdownCtx)
}

func (s *Server) logRequests(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	s.log.Info("request",
		"method", c.Method(),
		"path", c.Path(),
		"status", c.Response().StatusCode(),
		"duration", time.Since(start).String(),
	)
	return err
}

// handleError maps unavailable storage to 503; everything else keeps its
// fiber status or becomes a 500
func (s *Server) handleError(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	switch {
	case errors.Is(err, catalog.ErrUnavailable):
		code = fiber.StatusServiceUnavailable
	case errors.As(err, &fe):
		code = fe.Code
	}
	if code >= fiber.StatusInternalServerError {
		s.log.Error("request failed", "path", c.Path(), "status", code, "error", err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.Status(code).SendString(http.StatusText(code))
}
