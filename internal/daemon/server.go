package daemon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/studentcoach/alpsbench/internal/benchmark"
	"github.com/studentcoach/alpsbench/internal/config"
	"github.com/studentcoach/alpsbench/internal/domain"
	"github.com/studentcoach/alpsbench/internal/profile"
	"github.com/studentcoach/alpsbench/internal/tables"
)

// maxRequestBody caps benchmark and profile request payloads.
const maxRequestBody = 1 << 20

// Server represents the alpsbench daemon HTTP server
type Server struct {
	cfg    *config.LocalConfig
	server *http.Server
	router *http.ServeMux

	// Services
	store      *tables.Store
	benchmarks *benchmark.Service
	summarizer *profile.Summarizer
	validation *tables.Report
}

// ServerConfig holds configuration for creating a new server
type ServerConfig struct {
	Config *config.LocalConfig
}

// NewServer creates a new daemon server. Tables load from the configured
// directory override or the embedded set; validation errors are fatal since
// a store with broken band geometry cannot serve correct benchmarks.
func NewServer(ctx context.Context, cfg ServerConfig) (*Server, error) {
	s := &Server{
		cfg:    cfg.Config,
		router: http.NewServeMux(),
	}

	var store *tables.Store
	var err error
	if dir := cfg.Config.Tables.Dir; dir != "" {
		store, err = tables.LoadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("load tables from %s: %w", dir, err)
		}
		slog.Info("loaded benchmark tables", "source", dir)
	} else {
		store, err = tables.Load()
		if err != nil {
			return nil, fmt.Errorf("load embedded tables: %w", err)
		}
		slog.Info("loaded benchmark tables", "source", "embedded")
	}

	report := tables.NewValidator().Validate(store)
	for _, w := range report.Warnings {
		slog.Warn("table validation", "warning", w)
	}
	if !report.Valid {
		for _, e := range report.Errors {
			slog.Error("table validation", "error", e)
		}
		return nil, fmt.Errorf("benchmark tables failed validation with %d errors", len(report.Errors))
	}

	s.store = store
	s.benchmarks = benchmark.New(store)
	s.summarizer = profile.NewSummarizer(store, slog.Default())
	s.validation = report

	s.setupRoutes()

	addr := fmt.Sprintf("%s:%d", cfg.Config.Daemon.Bind, cfg.Config.Daemon.Port)
	handler := recoveryMiddleware(correlationIDMiddleware(loggingMiddleware(rateLimitMiddleware(cfg.Config.Daemon.RatePerSecond, s.router))))
	s.server = &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return s, nil
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() {
	// Health & status
	s.router.HandleFunc("GET /v1/health", s.handleHealth)
	s.router.HandleFunc("GET /v1/status", s.handleStatus)

	// Config
	s.router.HandleFunc("GET /v1/config", s.handleGetConfig)

	// Benchmarks
	s.router.HandleFunc("POST /v1/benchmarks/resolve", s.handleResolveBenchmark)
	s.router.HandleFunc("GET /v1/bands/alevel", s.handleALevelBands)
	s.router.HandleFunc("GET /v1/factors", s.handleFactors)
	s.router.HandleFunc("GET /v1/grades/points", s.handleGradePoints)

	// Profiles
	s.router.HandleFunc("POST /v1/profile/summary", s.handleProfileSummary)

	// Tables
	s.router.HandleFunc("GET /v1/tables/validation", s.handleTableValidation)
}

// Start starts the HTTP server
func (s *Server) Start() error {
	slog.Info("starting alpsbench daemon", "addr", s.server.Addr)
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	slog.Info("shutting down daemon...")
	return s.server.Shutdown(ctx)
}

// Handler returns the full middleware-wrapped handler, for tests.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Handler implementations

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"status":         "running",
		"version":        "0.1.0",
		"table_warnings": len(s.validation.Warnings),
		"percentiles":    domain.AllPercentiles(),
	})
}

func (s *Server) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"daemon": s.cfg.Daemon,
		"tables": s.cfg.Tables,
	})
}

func (s *Server) handleResolveBenchmark(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Label      string  `json:"label"`
		Score      float64 `json:"score"`
		Percentile int     `json:"percentile"`
	}

	if err := json.NewDecoder(io.LimitReader(r.Body, maxRequestBody)).Decode(&req); err != nil {
		s.jsonError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if req.Label == "" {
		s.jsonError(w, http.StatusBadRequest, "label is required", nil)
		return
	}
	percentile := domain.Percentile(req.Percentile)
	if req.Percentile == 0 {
		percentile = domain.StandardPercentile
	}

	result, err := s.benchmarks.Resolve(req.Label, req.Score, percentile)
	if err != nil {
		s.benchmarkError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"label":      req.Label,
		"score":      req.Score,
		"percentile": percentile,
		"benchmark":  result,
	})
}

func (s *Server) handleALevelBands(w http.ResponseWriter, r *http.Request) {
	percentile, ok := s.queryPercentile(w, r)
	if !ok {
		return
	}

	// With a score, answer the single matching band; without, the full table.
	if raw := r.URL.Query().Get("score"); raw != "" {
		score, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			s.jsonError(w, http.StatusBadRequest, "invalid score", err)
			return
		}
		details, err := s.benchmarks.Engine().AlpsBandDetails(score, percentile)
		if err != nil {
			s.benchmarkError(w, err)
			return
		}
		if details == nil {
			s.jsonError(w, http.StatusBadRequest, "invalid score", nil)
			return
		}
		s.jsonResponse(w, http.StatusOK, map[string]interface{}{
			"percentile": percentile,
			"score":      score,
			"band":       details,
		})
		return
	}

	bands, err := s.store.ALevelBands(percentile)
	if err != nil {
		s.benchmarkError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"percentile": percentile,
		"bands":      bands,
	})
}

func (s *Server) handleFactors(w http.ResponseWriter, r *http.Request) {
	percentile, ok := s.queryPercentile(w, r)
	if !ok {
		return
	}

	if label := r.URL.Query().Get("label"); label != "" {
		factor, err := s.benchmarks.SubjectFactor(label, percentile)
		if err != nil {
			s.benchmarkError(w, err)
			return
		}
		s.jsonResponse(w, http.StatusOK, map[string]interface{}{
			"percentile": percentile,
			"label":      label,
			"factor":     factor,
		})
		return
	}

	factors, err := s.store.SubjectFactors(percentile)
	if err != nil {
		s.benchmarkError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"percentile": percentile,
		"factors":    factors,
	})
}

func (s *Server) handleGradePoints(w http.ResponseWriter, r *http.Request) {
	scope := r.URL.Query().Get("scope")
	grade := r.URL.Query().Get("grade")
	if scope == "" || grade == "" {
		s.jsonError(w, http.StatusBadRequest, "scope and grade are required", nil)
		return
	}

	points, err := s.benchmarks.GradePoints(scope, grade)
	if err != nil {
		s.benchmarkError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"scope":  scope,
		"grade":  grade,
		"points": points,
	})
}

func (s *Server) handleProfileSummary(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBody))
	if err != nil {
		s.jsonError(w, http.StatusBadRequest, "read request body", err)
		return
	}

	rec, err := profile.ParseStudentRecord(body)
	if err != nil {
		s.jsonError(w, http.StatusBadRequest, "invalid student record", err)
		return
	}

	// Optional prior attainment override for records whose score is stale
	// or missing in the CRM.
	if raw := r.URL.Query().Get("pa"); raw != "" {
		pa, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			s.jsonError(w, http.StatusBadRequest, "invalid prior attainment override", err)
			return
		}
		rec.PriorAttainment = &pa
	}

	s.jsonResponse(w, http.StatusOK, s.summarizer.BuildSummary(rec))
}

func (s *Server) handleTableValidation(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.validation)
}

// Helper methods

// queryPercentile reads the optional "percentile" query parameter,
// defaulting to the standard benchmarking percentile.
func (s *Server) queryPercentile(w http.ResponseWriter, r *http.Request) (domain.Percentile, bool) {
	raw := r.URL.Query().Get("percentile")
	if raw == "" {
		return domain.StandardPercentile, true
	}
	p, err := domain.ParsePercentile(raw)
	if err != nil {
		s.jsonError(w, http.StatusBadRequest, "invalid percentile", err)
		return 0, false
	}
	return p, true
}

// benchmarkError maps domain errors onto HTTP statuses: bad input is the
// caller's fault, missing table entries are not found, anything else is a
// server-side data problem.
func (s *Server) benchmarkError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidScore),
		errors.Is(err, domain.ErrInvalidPercentile),
		errors.Is(err, domain.ErrInvalidSizeOrLevel),
		errors.Is(err, domain.ErrUnrecognizedQualification):
		s.jsonError(w, http.StatusBadRequest, "invalid benchmark request", err)
	case errors.Is(err, domain.ErrUnknownSubjectFactor),
		errors.Is(err, domain.ErrMissingGradePoints),
		errors.Is(err, domain.ErrTableNotFound):
		s.jsonError(w, http.StatusNotFound, "benchmark unavailable", err)
	default:
		s.jsonError(w, http.StatusInternalServerError, "benchmark resolution failed", err)
	}
}

func (s *Server) jsonResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (s *Server) jsonError(w http.ResponseWriter, status int, message string, err error) {
	response := map[string]interface{}{
		"error":  message,
		"status": status,
	}
	if err != nil {
		response["details"] = err.Error()
	}
	s.jsonResponse(w, status, response)
}
