// Package server exposes a sim.State over HTTP: one HTML page and three JSON endpoints.
package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/happiness-sim/happiness-sim/sim"
)

//go:embed web/index.html
var webFS embed.FS

var indexTemplate = template.Must(template.ParseFS(webFS, "web/index.html"))

const shutdownTimeout = 5 * time.Second

// Server owns the simulation and serializes every access to it.
type Server struct {
	mu    sync.Mutex
	state *sim.State
	clock Clock
}

// Option customizes a Server.
type Option func(*Server)

// WithClock overrides the clock used for current_date.
func WithClock(c Clock) Option {
	return func(s *Server) { s.clock = c }
}

// New wraps state. The Server takes ownership; callers must not touch state afterwards.
func New(state *sim.State, opts ...Option) *Server {
	s := &Server{state: state, clock: RealClock{}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the routed handler with request id, recovery and access logging.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(WithRequestID, WithRecover, WithAccessLog)

	r.Get("/", s.handleIndex)
	r.Route("/api", func(r chi.Router) {
		r.Get("/status", s.handleStatus)
		r.Get("/advance", s.handleAdvance)
		r.Get("/reset", s.handleReset)
	})
	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logrus.Infof("HTTP server listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen on %s: %w", addr, err)
	case <-ctx.Done():
	}

	logrus.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
