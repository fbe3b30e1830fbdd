// Package api serves the layout engine over HTTP.
//
// Every route takes and returns JSON. Layout operations go through a
// [pipeline.Runner], so the service shares the CLI's validation and cache
// behavior; a Redis-backed runner lets several instances share results.
//
//	POST /v1/compact   {"layout": [...], "vertical_compact": true}
//	POST /v1/bounds    {"layout": [...], "cols": 12}
//	POST /v1/move      {"layout": [...], "id": "a", "x": 2, "y": 0, "options": {...}}
//	POST /v1/resize    {"layout": [...], "id": "a", "w": 4, "h": 2, "options": {...}}
//	POST /v1/resolve   {"layout": [...], "responsive": {...}, "width": 900}
//	GET  /healthz
//
// Errors are written as {"code": "...", "message": "..."}. Invalid input maps
// to 400, unknown items and breakpoints to 404, a runaway move cascade to
// 422, and anything else to 500.
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/gridpack/pkg/config"
	"github.com/matzehuels/gridpack/pkg/pipeline"
)

const (
	// maxBodyBytes bounds request bodies.
	maxBodyBytes = 4 << 20

	shutdownTimeout = 10 * time.Second
)

// Server holds the HTTP service state.
type Server struct {
	runner *pipeline.Runner
	cfg    *config.Config
	logger *log.Logger
	router chi.Router
}

// New creates a server. A nil cfg uses config.Default; a nil logger uses
// log.Default.
func New(runner *pipeline.Runner, cfg *config.Config, logger *log.Logger) *Server {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{runner: runner, cfg: cfg, logger: logger}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/compact", s.handleCompact)
		r.Post("/bounds", s.handleBounds)
		r.Post("/move", s.handleMove)
		r.Post("/resize", s.handleResize)
		r.Post("/resolve", s.handleResolve)
	})
	return r
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return ctx.Err()
}
