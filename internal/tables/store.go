package tables

import (
	"fmt"

	"github.com/studentcoach/alpsbench/internal/codec"
	"github.com/studentcoach/alpsbench/internal/domain"
)

// Store holds every loaded table. It is built once at startup and read-only
// afterwards, so concurrent readers need no locking.
type Store struct {
	alevel  map[domain.Percentile][]ALevelBand
	factors map[domain.Percentile]map[string]float64

	ib              []IBBand
	preU            []PreUBand
	btec2016Main    []Btec2016Band
	btec2016OneYear []Btec2016OneYearBand
	btec2010        []Btec2010Band
	ual             []UALBand
	wjec            []WJECBand
	cache           []CacheBand

	btec2010Codec codec.Table
	gradePoints   codec.GradeTable
}

// ALevelBands returns the A-Level baseline band table for a percentile.
func (s *Store) ALevelBands(p domain.Percentile) ([]ALevelBand, error) {
	bands, ok := s.alevel[p]
	if !ok {
		return nil, fmt.Errorf("a-level bands for %s percentile: %w", p, domain.ErrTableNotFound)
	}
	return bands, nil
}

// SubjectFactors returns the full value-added factor dictionary for a
// percentile.
func (s *Store) SubjectFactors(p domain.Percentile) (map[string]float64, error) {
	factors, ok := s.factors[p]
	if !ok {
		return nil, fmt.Errorf("subject factors for %s percentile: %w", p, domain.ErrTableNotFound)
	}
	return factors, nil
}

// SubjectFactor looks up one subject's value-added factor.
func (s *Store) SubjectFactor(p domain.Percentile, label string) (float64, error) {
	factors, err := s.SubjectFactors(p)
	if err != nil {
		return 0, err
	}
	f, ok := factors[label]
	if !ok {
		return 0, fmt.Errorf("%q: %w", label, domain.ErrUnknownSubjectFactor)
	}
	return f, nil
}

// The family band tables do not vary by percentile; only the A-Level
// baseline and the factor dictionaries do.

func (s *Store) IBBands() []IBBand                           { return s.ib }
func (s *Store) PreUBands() []PreUBand                       { return s.preU }
func (s *Store) Btec2016MainBands() []Btec2016Band           { return s.btec2016Main }
func (s *Store) Btec2016OneYearBands() []Btec2016OneYearBand { return s.btec2016OneYear }
func (s *Store) Btec2010Bands() []Btec2010Band               { return s.btec2010 }
func (s *Store) UALBands() []UALBand                         { return s.ual }
func (s *Store) WJECBands() []WJECBand                       { return s.wjec }
func (s *Store) CacheBands() []CacheBand                     { return s.cache }

// Btec2010GradeCodec returns the size-scoped grade/points table used to
// translate 2010-suite MEG strings into points.
func (s *Store) Btec2010GradeCodec() codec.Table { return s.btec2010Codec }

// GradePoints returns the per-qualification grade/points scales.
func (s *Store) GradePoints() codec.GradeTable { return s.gradePoints }

// QualificationGradePoints returns one qualification's grade scale.
func (s *Store) QualificationGradePoints(qualType string) (map[string]float64, error) {
	scale, ok := s.gradePoints[qualType]
	if !ok {
		return nil, fmt.Errorf("grade points for %q: %w", qualType, domain.ErrMissingGradePoints)
	}
	return scale, nil
}
