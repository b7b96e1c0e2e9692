package mcp

import (
	"context"
	"fmt"

	mcp "github.com/felixgeelhaar/mcp-go"
	"github.com/felixgeelhaar/mcp-go/server"
	"github.com/studentcoach/alpsbench/internal/benchmark"
	"github.com/studentcoach/alpsbench/internal/domain"
	"github.com/studentcoach/alpsbench/internal/profile"
	"github.com/studentcoach/alpsbench/internal/tables"
)

// Server wraps the MCP server with alpsbench functionality
type Server struct {
	mcpServer  *server.Server
	store      *tables.Store
	benchmarks *benchmark.Service
	summarizer *profile.Summarizer
}

// Config contains configuration for the MCP server
type Config struct {
	Store      *tables.Store
	Benchmarks *benchmark.Service
	Summarizer *profile.Summarizer
}

// NewServer creates a new MCP server exposing the benchmark engine
func NewServer(cfg Config) *Server {
	s := &Server{
		store:      cfg.Store,
		benchmarks: cfg.Benchmarks,
		summarizer: cfg.Summarizer,
	}

	s.mcpServer = server.New(server.Info{
		Name:    "alpsbench",
		Version: "0.1.0",
	}, server.WithInstructions(`
alpsbench resolves ALPS minimum expected grades (MEGs) and expected point
benchmarks from GCSE prior attainment scores.

Available tools:
- alps_resolve_benchmark: Resolve a subject label and score to a benchmark
- alps_band: Look up the A-Level attainment band for a score
- alps_subject_factor: Look up a subject value-added factor
- alps_grade_points: Convert a BTEC 2010 grade string to points
- alps_profile_summary: Build a full academic summary for a student record
- alps_validate_tables: Run consistency checks over the loaded tables

Percentiles: 60, 75 (standard), 90, 100. When omitted, tools use the 75th.
Labels follow the ALPS convention, e.g. "A - Biology", "IB HL - Mathematics",
"BTEC Dip - Business (2010)".
`))

	s.registerTools()

	return s
}

// registerTools registers all alpsbench MCP tools
func (s *Server) registerTools() {
	s.mcpServer.Tool("alps_resolve_benchmark").
		Description("Resolve a subject label and GCSE prior attainment score to an ALPS benchmark (expected points, MEG aspiration, band).").
		Handler(s.handleResolveBenchmark)

	s.mcpServer.Tool("alps_band").
		Description("Look up the A-Level attainment band details for a GCSE score.").
		Handler(s.handleBand)

	s.mcpServer.Tool("alps_subject_factor").
		Description("Look up the value-added factor for a subject label.").
		Handler(s.handleSubjectFactor)

	s.mcpServer.Tool("alps_grade_points").
		Description("Convert a BTEC 2010 grade string to UCAS-style points under a size scope.").
		Handler(s.handleGradePoints)

	s.mcpServer.Tool("alps_profile_summary").
		Description("Build a full academic MEG summary from a student record JSON payload.").
		Handler(s.handleProfileSummary)

	s.mcpServer.Tool("alps_validate_tables").
		Description("Run band geometry and codec consistency checks over the loaded benchmark tables.").
		Handler(s.handleValidateTables)
}

// Input/Output types for tools

type ResolveInput struct {
	Label      string  `json:"label" jsonschema:"description=Subject label such as 'A - Biology' or 'IB HL - Mathematics'"`
	Score      float64 `json:"score" jsonschema:"description=GCSE prior attainment score (0-9)"`
	Percentile int     `json:"percentile,omitempty" jsonschema:"description=Benchmark percentile: 60 75 90 or 100 (default: 75),enum=60,enum=75,enum=90,enum=100"`
}

type ResolveOutput struct {
	Label          string   `json:"label"`
	Percentile     int      `json:"percentile"`
	ExpectedPoints *float64 `json:"expected_points,omitempty"`
	MEGAspiration  string   `json:"meg_aspiration"`
	Band           int      `json:"band"`
}

type BandInput struct {
	Score      float64 `json:"score" jsonschema:"description=GCSE prior attainment score (0-9)"`
	Percentile int     `json:"percentile,omitempty" jsonschema:"description=Benchmark percentile: 60 75 90 or 100 (default: 75),enum=60,enum=75,enum=90,enum=100"`
}

type BandOutput struct {
	Band              int     `json:"band"`
	MinExpectedPoints float64 `json:"min_expected_points"`
	MEGAspiration     string  `json:"meg_aspiration"`
}

type FactorInput struct {
	Label      string `json:"label" jsonschema:"description=Subject label such as 'A - Biology'"`
	Percentile int    `json:"percentile,omitempty" jsonschema:"description=Benchmark percentile: 60 75 90 or 100 (default: 75),enum=60,enum=75,enum=90,enum=100"`
}

type FactorOutput struct {
	Label  string  `json:"label"`
	Factor float64 `json:"factor"`
}

type GradePointsInput struct {
	Scope string `json:"scope" jsonschema:"description=BTEC 2010 size scope: CERT SUBDIP NINETY_CR DIP or EXTDIP,enum=CERT,enum=SUBDIP,enum=NINETY_CR,enum=DIP,enum=EXTDIP"`
	Grade string `json:"grade" jsonschema:"description=Grade string such as 'D*D*' or 'MM'"`
}

type GradePointsOutput struct {
	Scope  string  `json:"scope"`
	Grade  string  `json:"grade"`
	Points float64 `json:"points"`
}

type ProfileSummaryInput struct {
	Record string `json:"record" jsonschema:"description=Student record JSON as exported from the CRM"`
}

type ValidateInput struct{}

type ValidateOutput struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// Tool handlers

func (s *Server) toolPercentile(raw int) (domain.Percentile, error) {
	if raw == 0 {
		return domain.StandardPercentile, nil
	}
	p := domain.Percentile(raw)
	if !p.Valid() {
		return 0, fmt.Errorf("%w: %d", domain.ErrInvalidPercentile, raw)
	}
	return p, nil
}

func (s *Server) handleResolveBenchmark(ctx context.Context, input ResolveInput) (ResolveOutput, error) {
	percentile, err := s.toolPercentile(input.Percentile)
	if err != nil {
		return ResolveOutput{}, err
	}

	result, err := s.benchmarks.Resolve(input.Label, input.Score, percentile)
	if err != nil {
		return ResolveOutput{}, fmt.Errorf("resolve benchmark: %w", err)
	}

	return ResolveOutput{
		Label:          input.Label,
		Percentile:     int(percentile),
		ExpectedPoints: result.ExpectedPoints,
		MEGAspiration:  result.MEGAspiration,
		Band:           result.Band,
	}, nil
}

func (s *Server) handleBand(ctx context.Context, input BandInput) (BandOutput, error) {
	percentile, err := s.toolPercentile(input.Percentile)
	if err != nil {
		return BandOutput{}, err
	}

	details, err := s.benchmarks.Engine().AlpsBandDetails(input.Score, percentile)
	if err != nil {
		return BandOutput{}, fmt.Errorf("band lookup: %w", err)
	}
	if details == nil {
		return BandOutput{}, fmt.Errorf("%w: %v", domain.ErrInvalidScore, input.Score)
	}

	return BandOutput{
		Band:              details.AlpsBand,
		MinExpectedPoints: details.MinExpectedPoints,
		MEGAspiration:     details.MEGAspiration,
	}, nil
}

func (s *Server) handleSubjectFactor(ctx context.Context, input FactorInput) (FactorOutput, error) {
	percentile, err := s.toolPercentile(input.Percentile)
	if err != nil {
		return FactorOutput{}, err
	}

	factor, err := s.benchmarks.SubjectFactor(input.Label, percentile)
	if err != nil {
		return FactorOutput{}, fmt.Errorf("subject factor: %w", err)
	}

	return FactorOutput{Label: input.Label, Factor: factor}, nil
}

func (s *Server) handleGradePoints(ctx context.Context, input GradePointsInput) (GradePointsOutput, error) {
	points, err := s.benchmarks.GradePoints(input.Scope, input.Grade)
	if err != nil {
		return GradePointsOutput{}, fmt.Errorf("grade points: %w", err)
	}

	return GradePointsOutput{
		Scope:  input.Scope,
		Grade:  input.Grade,
		Points: points,
	}, nil
}

func (s *Server) handleProfileSummary(ctx context.Context, input ProfileSummaryInput) (*profile.Summary, error) {
	rec, err := profile.ParseStudentRecord([]byte(input.Record))
	if err != nil {
		return nil, fmt.Errorf("parse student record: %w", err)
	}

	return s.summarizer.BuildSummary(rec), nil
}

func (s *Server) handleValidateTables(ctx context.Context, input ValidateInput) (ValidateOutput, error) {
	report := tables.NewValidator().Validate(s.store)
	return ValidateOutput{
		Valid:    report.Valid,
		Errors:   report.Errors,
		Warnings: report.Warnings,
	}, nil
}

// ServeStdio starts the MCP server on stdio (for editor integration)
func (s *Server) ServeStdio(ctx context.Context) error {
	return mcp.ServeStdio(ctx, s.mcpServer)
}

// ServeHTTP starts the MCP server on HTTP (alternative transport)
func (s *Server) ServeHTTP(ctx context.Context, addr string) error {
	return mcp.ServeHTTP(ctx, s.mcpServer, addr)
}

// GetMCPServer returns the underlying MCP server (for testing)
func (s *Server) GetMCPServer() *server.Server {
	return s.mcpServer
}
