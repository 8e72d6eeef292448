// Package api serves lanparty analyses over HTTP.
//
// # Routes
//
//	POST /v1/analyze?prefix=t&driver=per-node&workers=4   edge list in, Report JSON out
//	POST /v1/render?format=svg&mark=t                      edge list in, diagram out
//	GET  /healthz                                          "ok"
//	GET  /metrics                                          Prometheus exposition
//
// Every response carries an X-Request-ID header. A client-supplied UUID is
// echoed back; anything else is replaced with a fresh one. Errors are JSON:
//
//	{"code": "INVALID_EDGE", "error": "line 3: \"a-b-c\": ...", "request_id": "..."}
package api

import (
	"context"
	stderrors "errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/nbourre/lanparty/pkg/metrics"
	"github.com/nbourre/lanparty/pkg/pipeline"
)

const (
	// DefaultAddr is the listen address when none is configured.
	DefaultAddr = ":8080"

	// DefaultMaxBodyBytes bounds uploaded edge lists.
	DefaultMaxBodyBytes = 8 << 20

	shutdownTimeout = 10 * time.Second
)

// Server is the HTTP front end of a [pipeline.Runner].
type Server struct {
	runner   *pipeline.Runner
	logger   *log.Logger
	metrics  http.Handler
	defaults pipeline.Options
	maxBody  int64
	router   chi.Router
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger. Default: log.Default().
func WithLogger(l *log.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetricsHandler sets the handler mounted at /metrics.
// Default: the handler of metrics.DefaultRegistry().
func WithMetricsHandler(h http.Handler) Option {
	return func(s *Server) {
		if h != nil {
			s.metrics = h
		}
	}
}

// WithDefaults sets the analysis options used when a request omits them.
func WithDefaults(opts pipeline.Options) Option {
	return func(s *Server) { s.defaults = opts }
}

// WithMaxBodyBytes bounds the request body size.
func WithMaxBodyBytes(n int64) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxBody = n
		}
	}
}

// NewServer creates a server backed by runner. A nil runner gets an
// uncached one.
func NewServer(runner *pipeline.Runner, opts ...Option) *Server {
	s := &Server{
		runner:   runner,
		logger:   log.Default(),
		defaults: pipeline.Options{Prefix: pipeline.DefaultPrefix},
		maxBody:  DefaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.runner == nil {
		s.runner = pipeline.NewRunner(nil, nil, s.logger)
	}
	if s.metrics == nil {
		s.metrics = metrics.DefaultRegistry().Handler()
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestID)
	r.Use(s.observe)

	r.Get("/healthz", handleHealth)
	r.Method(http.MethodGet, "/metrics", s.metrics)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/analyze", s.handleAnalyze)
		r.Post("/render", s.handleRender)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusNotFound, fmt.Errorf("no route for %s %s", r.Method, r.URL.Path))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusMethodNotAllowed, fmt.Errorf("method %s not allowed", r.Method))
	})
	return r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is canceled, then shuts down
// gracefully. A clean shutdown returns nil.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	if addr == "" {
		addr = DefaultAddr
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
