// Package server implements the HTTP API for the deadlock analyzer.
//
// The server is a thin transport shell around pkg/rag/analyze: it decodes
// and validates request bodies, invokes the pure analysis functions, and
// serializes the result objects back to the caller. Responses for identical
// request bodies are served from an optional cache.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/aryaneelshivam/deadpanda/pkg/cache"
)

// Server holds the handler dependencies.
type Server struct {
	log        *log.Logger
	cache      cache.Cache
	cacheTTL   time.Duration
	corsOrigin string
	version    string
	start      time.Time
}

// Options configures a Server.
type Options struct {
	// CORSOrigin is the Access-Control-Allow-Origin value. Empty means "*".
	CORSOrigin string

	// Cache stores serialized responses keyed by request-body hash.
	// Nil disables caching.
	Cache cache.Cache

	// CacheTTL bounds how long a cached response is served.
	CacheTTL time.Duration

	// Version is reported by the index endpoint.
	Version string
}

// New creates a Server. The logger must not be nil.
func New(logger *log.Logger, opts Options) *Server {
	if opts.Cache == nil {
		opts.Cache = cache.NewNullCache()
	}
	if opts.CORSOrigin == "" {
		opts.CORSOrigin = "*"
	}
	if opts.Version == "" {
		opts.Version = "dev"
	}
	return &Server{
		log:        logger,
		cache:      opts.Cache,
		cacheTTL:   opts.CacheTTL,
		corsOrigin: opts.CORSOrigin,
		version:    opts.Version,
		start:      time.Now(),
	}
}

// Router builds the chi route tree with all middleware attached.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(requestID)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(corsHeaders(s.corsOrigin))

	r.Get("/", s.handleIndex)
	r.Get("/api/health", s.handleHealth)
	r.Post("/api/analyze-deadlock", s.handleAnalyzeDeadlock)
	r.Post("/api/safe-sequence", s.handleSafeSequence)
	r.Post("/api/simulate-allocation", s.handleSimulateAllocation)

	return r
}

// Run serves the API on addr until the context is cancelled, then drains
// in-flight requests for up to five seconds.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Info("server starting", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.log.Info("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
