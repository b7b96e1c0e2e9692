package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/studentcoach/alpsbench/internal/benchmark"
	"github.com/studentcoach/alpsbench/internal/domain"
	"github.com/studentcoach/alpsbench/internal/profile"
	"github.com/studentcoach/alpsbench/internal/tables"
)

// setupTestServer creates a test MCP server over the embedded tables
func setupTestServer(t *testing.T) *Server {
	t.Helper()

	store, err := tables.Load()
	if err != nil {
		t.Fatalf("load embedded tables: %v", err)
	}

	return NewServer(Config{
		Store:      store,
		Benchmarks: benchmark.New(store),
		Summarizer: profile.NewSummarizer(store, nil),
	})
}

func TestNewServer(t *testing.T) {
	server := setupTestServer(t)

	if server == nil {
		t.Fatal("expected non-nil server")
	}
	if server.mcpServer == nil {
		t.Fatal("expected non-nil MCP server")
	}
	if server.benchmarks == nil {
		t.Fatal("expected non-nil benchmark service")
	}
	if server.summarizer == nil {
		t.Fatal("expected non-nil summarizer")
	}
}

func TestGetMCPServer(t *testing.T) {
	server := setupTestServer(t)

	if server.GetMCPServer() == nil {
		t.Fatal("expected non-nil underlying MCP server")
	}
}

func TestHandleResolveBenchmark(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()

	out, err := server.handleResolveBenchmark(ctx, ResolveInput{
		Label:      "A - Biology",
		Score:      7.75,
		Percentile: 75,
	})
	if err != nil {
		t.Fatalf("handleResolveBenchmark error: %v", err)
	}
	if out.ExpectedPoints == nil || *out.ExpectedPoints != 111.60 {
		t.Errorf("ExpectedPoints = %v, want 111.60", out.ExpectedPoints)
	}
	if out.MEGAspiration != "A+" || out.Band != 1 {
		t.Errorf("got %q band %d, want A+ band 1", out.MEGAspiration, out.Band)
	}
}

func TestHandleResolveBenchmarkDefaultsPercentile(t *testing.T) {
	server := setupTestServer(t)

	out, err := server.handleResolveBenchmark(context.Background(), ResolveInput{
		Label: "IB HL - Mathematics",
		Score: 8.4,
	})
	if err != nil {
		t.Fatalf("handleResolveBenchmark error: %v", err)
	}
	if out.Percentile != 75 {
		t.Errorf("Percentile = %d, want 75", out.Percentile)
	}
	if out.MEGAspiration != "7" {
		t.Errorf("MEGAspiration = %q, want 7", out.MEGAspiration)
	}
}

func TestHandleResolveBenchmarkErrors(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()

	if _, err := server.handleResolveBenchmark(ctx, ResolveInput{
		Label: "A - Biology", Score: 7.0, Percentile: 80,
	}); !errors.Is(err, domain.ErrInvalidPercentile) {
		t.Errorf("bad percentile error = %v, want ErrInvalidPercentile", err)
	}

	if _, err := server.handleResolveBenchmark(ctx, ResolveInput{
		Label: "GCSE - Maths", Score: 7.0,
	}); !errors.Is(err, domain.ErrUnrecognizedQualification) {
		t.Errorf("unknown label error = %v, want ErrUnrecognizedQualification", err)
	}
}

func TestHandleBand(t *testing.T) {
	server := setupTestServer(t)

	out, err := server.handleBand(context.Background(), BandInput{Score: 7.75})
	if err != nil {
		t.Fatalf("handleBand error: %v", err)
	}
	if out.Band != 1 || out.MinExpectedPoints != 124.00 || out.MEGAspiration != "A+" {
		t.Errorf("got %+v, want band 1 / 124.00 / A+", out)
	}

	if _, err := server.handleBand(context.Background(), BandInput{Score: -1}); !errors.Is(err, domain.ErrInvalidScore) {
		t.Errorf("negative score error = %v, want ErrInvalidScore", err)
	}
}

func TestHandleSubjectFactor(t *testing.T) {
	server := setupTestServer(t)

	out, err := server.handleSubjectFactor(context.Background(), FactorInput{Label: "A - Biology"})
	if err != nil {
		t.Fatalf("handleSubjectFactor error: %v", err)
	}
	if out.Factor != 0.90 {
		t.Errorf("Factor = %v, want 0.90", out.Factor)
	}

	if _, err := server.handleSubjectFactor(context.Background(), FactorInput{Label: "A - Alchemy"}); !errors.Is(err, domain.ErrUnknownSubjectFactor) {
		t.Errorf("unknown label error = %v, want ErrUnknownSubjectFactor", err)
	}
}

func TestHandleGradePoints(t *testing.T) {
	server := setupTestServer(t)

	out, err := server.handleGradePoints(context.Background(), GradePointsInput{Scope: "DIP", Grade: "D*D*"})
	if err != nil {
		t.Fatalf("handleGradePoints error: %v", err)
	}
	if out.Points != 280 {
		t.Errorf("Points = %v, want 280", out.Points)
	}

	if _, err := server.handleGradePoints(context.Background(), GradePointsInput{Scope: "MEGADIP", Grade: "D*"}); !errors.Is(err, domain.ErrInvalidSizeOrLevel) {
		t.Errorf("bad scope error = %v, want ErrInvalidSizeOrLevel", err)
	}
}

func TestHandleProfileSummary(t *testing.T) {
	server := setupTestServer(t)

	summary, err := server.handleProfileSummary(context.Background(), ProfileSummaryInput{
		Record: `{
			"name": "Jordan",
			"prior_attainment_score": 7.75,
			"subjects": [{"subject": "Biology", "currentGrade": "B", "examType": "A Level"}]
		}`,
	})
	if err != nil {
		t.Fatalf("handleProfileSummary error: %v", err)
	}
	if summary.StudentName != "Jordan" {
		t.Errorf("StudentName = %q, want Jordan", summary.StudentName)
	}
	if summary.AcademicMEGs.ALevelMEGGrade75th != "A+" {
		t.Errorf("75th MEG = %q, want A+", summary.AcademicMEGs.ALevelMEGGrade75th)
	}

	if _, err := server.handleProfileSummary(context.Background(), ProfileSummaryInput{Record: "not json"}); err == nil {
		t.Error("invalid record should fail")
	}
}

func TestHandleValidateTables(t *testing.T) {
	server := setupTestServer(t)

	out, err := server.handleValidateTables(context.Background(), ValidateInput{})
	if err != nil {
		t.Fatalf("handleValidateTables error: %v", err)
	}
	if !out.Valid {
		t.Errorf("embedded tables should validate, errors: %v", out.Errors)
	}
}
