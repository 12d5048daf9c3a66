// Package api serves graph operations and saved graphs over HTTP.
//
// # Routes
//
//	GET  /health               liveness probe
//	GET  /transform/{set}      {"available": [...]} operation names in "class" or "function"
//	POST /transform/{set}      run an operation; body {graphData?, transformName, params}
//	GET  /graphs               all saved graphs, oldest first
//	GET  /graphs/{id}          one saved graph
//	POST /graphs/create        save a graph; 201 {"message", "graph"}
//	PUT  /graphs/{id}          replace name, description and graph data
//	DELETE /graphs/{id}        remove a saved graph
//
// Errors are written by httputil.Error, which maps error codes from
// pkg/errors onto HTTP statuses.
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-playground/validator/v10"

	"github.com/matzehuels/graphcanvas/pkg/ops"
	"github.com/matzehuels/graphcanvas/pkg/store"
)

// ShutdownTimeout bounds how long ListenAndServe waits for in-flight
// requests after its context is cancelled.
const ShutdownTimeout = 10 * time.Second

// Server holds the dependencies shared by all handlers.
type Server struct {
	runner   *ops.Runner
	store    store.Store
	logger   *log.Logger
	origins  []string
	validate *validator.Validate
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// WithCORSOrigins sets the origins allowed by the CORS middleware.
func WithCORSOrigins(origins ...string) Option {
	return func(s *Server) { s.origins = origins }
}

// New creates a server. A nil runner uses an uncached ops.Runner.
func New(runner *ops.Runner, st store.Store, opts ...Option) *Server {
	s := &Server{
		runner:   runner,
		store:    st,
		logger:   log.Default(),
		origins:  []string{"*"},
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.runner == nil {
		s.runner = ops.NewRunner(nil, nil, s.logger)
	}
	return s
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
