// Package benchmark combines the per-family resolvers into the final
// per-subject benchmark. The label's qualification family decides the
// combination rule: A-Level-rooted subjects multiply the baseline band
// points by a subject value-added factor, while vocational and IB families
// read their own band tables directly.
package benchmark

import (
	"fmt"
	"math"

	"github.com/studentcoach/alpsbench/internal/codec"
	"github.com/studentcoach/alpsbench/internal/domain"
	"github.com/studentcoach/alpsbench/internal/resolve"
	"github.com/studentcoach/alpsbench/internal/tables"
)

// Service resolves subject benchmarks against a loaded table store.
type Service struct {
	tables *tables.Store
	engine *resolve.Engine
}

// New creates a benchmark service over a validated table store.
func New(store *tables.Store) *Service {
	return &Service{
		tables: store,
		engine: resolve.New(store),
	}
}

// Engine exposes the underlying per-family resolvers for callers that need
// family-specific result shapes.
func (s *Service) Engine() *resolve.Engine { return s.engine }

// Resolve produces the benchmark for a subject-qualification label at a
// percentile. Input failures and table gaps surface as named errors; the
// caller renders those as "benchmark unavailable", never as zero.
func (s *Service) Resolve(label string, score float64, percentile domain.Percentile) (*domain.BenchmarkResult, error) {
	if !percentile.Valid() {
		return nil, fmt.Errorf("%d: %w", int(percentile), domain.ErrInvalidPercentile)
	}
	if math.IsNaN(score) || math.IsInf(score, 0) || score < 0 {
		return nil, fmt.Errorf("%v: %w", score, domain.ErrInvalidScore)
	}

	parsed, err := domain.ParseSubjectLabel(label)
	if err != nil {
		return nil, err
	}

	if parsed.Family.ALevelRooted() {
		return s.resolveALevelRooted(parsed, score, percentile)
	}
	return s.resolveFamily(parsed, score)
}

// resolveALevelRooted benchmarks subjects on the A-Level point scale:
// baseline band points times the subject's value-added factor at the same
// percentile. A missing factor is a data-integrity failure, never a silent
// multiply-by-one.
func (s *Service) resolveALevelRooted(parsed domain.SubjectLabel, score float64, percentile domain.Percentile) (*domain.BenchmarkResult, error) {
	base, err := s.engine.AlpsBandDetails(score, percentile)
	if err != nil {
		return nil, err
	}
	if base == nil {
		return nil, fmt.Errorf("%v: %w", score, domain.ErrInvalidScore)
	}

	factor, err := s.tables.SubjectFactor(percentile, parsed.Raw)
	if err != nil {
		return nil, err
	}

	expected := round2(base.MinExpectedPoints * factor)
	return &domain.BenchmarkResult{
		ExpectedPoints: &expected,
		MEGAspiration:  base.MEGAspiration,
		Band:           base.AlpsBand,
	}, nil
}

// resolveFamily benchmarks subjects whose family carries its own band
// table. The table's band already encodes the qualification-specific
// expectation, so no value-added factor is applied.
func (s *Service) resolveFamily(parsed domain.SubjectLabel, score float64) (*domain.BenchmarkResult, error) {
	badSize := func() error {
		return fmt.Errorf("%s %q: %w", parsed.Family, parsed.SizeOrLevel, domain.ErrInvalidSizeOrLevel)
	}

	switch parsed.Family {
	case domain.FamilyIB:
		level, ok := domain.ParseIBLevel(parsed.SizeOrLevel)
		if !ok {
			return nil, badSize()
		}
		d, err := s.engine.IBExpectedPointsDetails(score, level)
		if err != nil || d == nil {
			return nil, err
		}
		return pointsResult(d.ExpectedPoints, d.MEGAspiration, d.IBAlpsBand), nil

	case domain.FamilyPreU:
		course, ok := domain.ParsePreUCourse(parsed.SizeOrLevel)
		if !ok {
			return nil, badSize()
		}
		d, err := s.engine.PreUExpectedPointsDetails(score, course)
		if err != nil || d == nil {
			return nil, err
		}
		return pointsResult(d.ExpectedPoints, d.MEGAspiration, d.Band), nil

	case domain.FamilyBtec2016:
		size, ok := domain.ParseBtec2016Size(parsed.SizeOrLevel)
		if !ok {
			return nil, badSize()
		}
		d, err := s.engine.Btec2016MainDetails(score, size)
		if err != nil || d == nil {
			return nil, err
		}
		return pointsResult(d.ExpectedPoints, d.MEGAspiration, d.Band), nil

	case domain.FamilyBtec2016OneYear:
		size, ok := domain.ParseBtec2016OneYearSize(parsed.SizeOrLevel)
		if !ok {
			return nil, badSize()
		}
		d, err := s.engine.Btec2016OneYearDetails(score, size)
		if err != nil || d == nil {
			return nil, err
		}
		return pointsResult(d.ExpectedPoints, d.MEGAspiration, d.Band), nil

	case domain.FamilyBtec2010:
		size, ok := domain.ParseBtec2010Size(parsed.SizeOrLevel)
		if !ok {
			return nil, badSize()
		}
		return s.resolveBtec2010(score, size)

	case domain.FamilyUAL:
		size, ok := domain.ParseUALSize(parsed.SizeOrLevel)
		if !ok {
			return nil, badSize()
		}
		d, err := s.engine.UALExpectedPointsDetails(score, size)
		if err != nil || d == nil {
			return nil, err
		}
		return pointsResult(d.ExpectedPoints, d.MEGAspiration, d.Band), nil

	case domain.FamilyWJEC:
		size, ok := domain.ParseWJECSize(parsed.SizeOrLevel)
		if !ok {
			return nil, badSize()
		}
		d, err := s.engine.WJECL3ExpectedPointsDetails(score, size)
		if err != nil || d == nil {
			return nil, err
		}
		return pointsResult(d.ExpectedPoints, d.MEGAspiration, d.Band), nil

	case domain.FamilyCache:
		size, ok := domain.ParseCacheSize(parsed.SizeOrLevel)
		if !ok {
			return nil, badSize()
		}
		d, err := s.engine.CacheExpectedPointsDetails(score, size)
		if err != nil || d == nil {
			return nil, err
		}
		return pointsResult(d.ExpectedPoints, d.MEGAspiration, d.Band), nil
	}

	return nil, fmt.Errorf("%w: %q", domain.ErrUnrecognizedQualification, parsed.Raw)
}

// resolveBtec2010 derives points from the MEG grade string through the
// grade codec under the same size scope. A grade with no codec entry leaves
// ExpectedPoints nil; the aspiration and band still stand.
func (s *Service) resolveBtec2010(score float64, size domain.Btec2010Size) (*domain.BenchmarkResult, error) {
	d, err := s.engine.Btec2010MEGDetails(score, size)
	if err != nil || d == nil {
		return nil, err
	}

	result := &domain.BenchmarkResult{
		MEGAspiration: d.MEGAspiration,
		Band:          d.BtecAlpsBand,
	}
	scope, ok := codec.ParseSizeScope(string(size))
	if !ok {
		return result, nil
	}
	if pts, ok := s.tables.Btec2010GradeCodec().Points(scope, d.MEGAspiration); ok {
		result.ExpectedPoints = &pts
	}
	return result, nil
}

// SubjectFactor looks up a subject's value-added factor at a percentile.
func (s *Service) SubjectFactor(label string, percentile domain.Percentile) (float64, error) {
	if !percentile.Valid() {
		return 0, fmt.Errorf("%d: %w", int(percentile), domain.ErrInvalidPercentile)
	}
	return s.tables.SubjectFactor(percentile, label)
}

// GradePoints converts a size-scoped grade string to points.
func (s *Service) GradePoints(scope, grade string) (float64, error) {
	sc, ok := codec.ParseSizeScope(scope)
	if !ok {
		return 0, fmt.Errorf("%q: %w", scope, domain.ErrInvalidSizeOrLevel)
	}
	pts, ok := s.tables.Btec2010GradeCodec().Points(sc, grade)
	if !ok {
		return 0, fmt.Errorf("%s %q: %w", sc, grade, domain.ErrMissingGradePoints)
	}
	return pts, nil
}

func pointsResult(points float64, meg string, band int) *domain.BenchmarkResult {
	return &domain.BenchmarkResult{
		ExpectedPoints: &points,
		MEGAspiration:  meg,
		Band:           band,
	}
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
