package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/complyview/complyview/internal/history"
	"github.com/complyview/complyview/internal/search"
	"github.com/complyview/complyview/internal/stats"
	"github.com/complyview/complyview/internal/store"
)

// Server serves the report engine over HTTP.
type Server struct {
	store     *store.Store
	collector *history.Collector
	logger    *slog.Logger
	addr      string
	http      *http.Server
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger used for request and error logging.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithAddr sets the listen address, e.g. ":8080".
func WithAddr(addr string) Option {
	return func(s *Server) {
		s.addr = addr
	}
}

// WithCollector sets the history collector. Without one, history is
// collected sequentially through a default collector.
func WithCollector(c *history.Collector) Option {
	return func(s *Server) {
		s.collector = c
	}
}

// New creates a Server backed by the given report store.
func New(st *store.Store, opts ...Option) *Server {
	s := &Server{
		store:  st,
		logger: slog.Default(),
		addr:   ":8080",
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.collector == nil {
		s.collector = history.NewCollector(st, history.WithLogger(s.logger))
	}

	return s
}

// Handler returns the HTTP handler serving all API routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/reports", s.handleReports)
	mux.HandleFunc("GET /api/report/{filename}", s.handleReport)
	mux.HandleFunc("GET /api/latest", s.handleLatest)
	mux.HandleFunc("GET /api/summary", s.handleSummary)
	mux.HandleFunc("GET /api/stats", s.handleStats)
	mux.HandleFunc("GET /api/search", s.handleSearch)
	mux.HandleFunc("GET /api/history", s.handleHistory)

	return s.logRequests(mux)
}

// ListenAndServe starts the HTTP server and blocks until ctx is
// cancelled or the listener fails.
func (s *Server) ListenAndServe(ctx context.Context) error {
	s.http = &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.http.ListenAndServe()
	}()

	s.logger.Info("server listening", "addr", s.addr, "reports_dir", s.store.Dir())

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.http.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// handleReports serves the snapshot listing.
func (s *Server) handleReports(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.store.List())
}

// handleReport serves a single report by filename.
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	report, err := s.store.Get(r.PathValue("filename"))
	if err != nil {
		s.writeStoreError(w, r, err, "Report not found")
		return
	}
	s.writeJSON(w, http.StatusOK, report)
}

// handleLatest serves the most recently written report.
func (s *Server) handleLatest(w http.ResponseWriter, r *http.Request) {
	report, err := s.store.Latest()
	if err != nil {
		s.writeStoreError(w, r, err, "No reports found")
		return
	}
	s.writeJSON(w, http.StatusOK, report)
}

// handleSummary serves headline statistics for the latest report.
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	report, err := s.store.Latest()
	if err != nil {
		s.writeStoreError(w, r, err, "No reports found")
		return
	}
	s.writeJSON(w, http.StatusOK, stats.Summarize(report))
}

// handleStats serves extended statistics for the latest report.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	report, err := s.store.Latest()
	if err != nil {
		s.writeStoreError(w, r, err, "No reports found")
		return
	}
	s.writeJSON(w, http.StatusOK, stats.Compute(report))
}

// handleSearch serves findings from the latest report matching the q
// and status query parameters. A missing report yields an empty result
// rather than an error.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	report, err := s.store.Latest()
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.writeJSON(w, http.StatusOK, []struct{}{})
			return
		}
		s.writeStoreError(w, r, err, "No reports found")
		return
	}

	filter := search.Filter{
		Query:  r.URL.Query().Get("q"),
		Status: r.URL.Query().Get("status"),
	}
	s.writeJSON(w, http.StatusOK, search.Findings(report, filter))
}

// handleHistory serves per-snapshot summaries across all reports.
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	entries, err := s.collector.Collect(r.Context())
	if err != nil {
		s.logger.Error("history collection failed", "err", err)
		s.writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	s.writeJSON(w, http.StatusOK, entries)
}

// writeStoreError maps store errors to HTTP responses: a missing
// report is a client-visible 404, a malformed file is a 500.
func (s *Server) writeStoreError(w http.ResponseWriter, r *http.Request, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		s.writeError(w, http.StatusNotFound, notFoundMsg)
	default:
		s.logger.Error("report load failed", "path", r.URL.Path, "err", err)
		s.writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// writeJSON writes v as a JSON response with the given status code.
func (s *Server) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encoding failed", "err", err)
	}
}

// writeError writes a JSON error payload.
func (s *Server) writeError(w http.ResponseWriter, code int, msg string) {
	s.writeJSON(w, code, map[string]string{"error": msg})
}

// logRequests logs each request with its method, path, and duration.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("request handled",
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start),
		)
	})
}
