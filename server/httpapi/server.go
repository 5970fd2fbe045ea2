// Package httpapi is the browser UI for the sampling service: an
// upload form, a preview page with charts, and the three downloads.
package httpapi

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/kasuganosora/covidsample/pkg/api"
	"github.com/kasuganosora/covidsample/pkg/config"
	"github.com/kasuganosora/covidsample/pkg/dataset"
)

// Server serves the browser UI over the orchestration service.
type Server struct {
	svc        *api.Service
	cfg        *config.Config
	logger     api.Logger
	httpServer *http.Server

	// One current table per process: each load replaces it whole, and
	// export reads whatever the last load produced. There is no
	// multi-user state by design.
	mu         sync.Mutex
	current    *dataset.Table
	percent    int
	sourceName string
	builtin    bool
}

// NewServer creates the UI server.
func NewServer(svc *api.Service, cfg *config.Config, logger api.Logger) *Server {
	if logger == nil {
		logger = api.NewNoOpLogger()
	}
	return &Server{
		svc:     svc,
		cfg:     cfg,
		logger:  logger,
		percent: cfg.Sample.DefaultPercent,
	}
}

// Handler builds the routed handler with the middleware chain applied:
// Recovery, then CORS, then Logging.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/v1/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, HealthResponse{
			Status:  "ok",
			Version: "1.0.0",
		})
	})

	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/load", s.handleLoad)
	mux.HandleFunc("/download/", s.handleDownload)

	return RecoveryMiddleware(s.logger)(CORSMiddleware(LoggingMiddleware(s.logger)(mux)))
}

// Start starts the HTTP server (blocking).
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:         s.cfg.GetListenAddress(),
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	s.logger.Info("listening on %s", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

// setCurrent replaces the current table.
func (s *Server) setCurrent(table *dataset.Table, percent int, sourceName string, builtin bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = table
	s.percent = percent
	s.sourceName = sourceName
	s.builtin = builtin
}

// getCurrent reads the current table state.
func (s *Server) getCurrent() (*dataset.Table, int, string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current, s.percent, s.sourceName, s.builtin
}
