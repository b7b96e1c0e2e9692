// Package resolve implements the per-family band resolvers. Each resolver
// takes a GCSE prior attainment score, finds the matching half-open band and
// returns the band's outcome for the requested size or level.
//
// Invalid input (a non-finite or negative score, an unknown size or level)
// yields a nil result with a nil error. A valid score that matches no band
// is a table-coverage defect and returns ErrNoBandMatch.
package resolve

import (
	"fmt"
	"math"

	"github.com/studentcoach/alpsbench/internal/domain"
	"github.com/studentcoach/alpsbench/internal/tables"
)

// Engine resolves benchmarks against a loaded table store.
type Engine struct {
	tables *tables.Store
}

// New creates an engine over a validated table store.
func New(store *tables.Store) *Engine {
	return &Engine{tables: store}
}

func validScore(score float64) bool {
	return !math.IsNaN(score) && !math.IsInf(score, 0) && score >= 0
}

// AlpsBandDetails resolves the A-Level baseline band for a score at a
// percentile. Unlike the family resolvers, the baseline varies per
// percentile, so an unsupported percentile is an error rather than a nil
// result.
func (e *Engine) AlpsBandDetails(score float64, percentile domain.Percentile) (*domain.AlpsBandDetails, error) {
	if !validScore(score) {
		return nil, nil
	}
	bands, err := e.tables.ALevelBands(percentile)
	if err != nil {
		return nil, err
	}
	for _, b := range bands {
		if b.Contains(score) {
			return &domain.AlpsBandDetails{
				AlpsBand:          b.Band,
				MinExpectedPoints: b.MinExpectedPoints,
				MEGAspiration:     b.MEG,
			}, nil
		}
	}
	return nil, fmt.Errorf("a-level score %.4f: %w", score, domain.ErrNoBandMatch)
}

// IBExpectedPointsDetails resolves an IB benchmark for a level.
func (e *Engine) IBExpectedPointsDetails(score float64, level domain.IBLevel) (*domain.IBDetails, error) {
	if !validScore(score) {
		return nil, nil
	}
	if level != domain.IBHigherLevel && level != domain.IBStandardLevel {
		return nil, nil
	}
	for _, b := range e.tables.IBBands() {
		if !b.Contains(score) {
			continue
		}
		d := &domain.IBDetails{IBAlpsBand: b.Band}
		if level == domain.IBHigherLevel {
			d.ExpectedPoints, d.MEGAspiration = b.HLPoints, b.HLMEG
		} else {
			d.ExpectedPoints, d.MEGAspiration = b.SLPoints, b.SLMEG
		}
		return d, nil
	}
	return nil, fmt.Errorf("ib score %.4f: %w", score, domain.ErrNoBandMatch)
}

// PreUExpectedPointsDetails resolves a Pre-U benchmark for a course length.
func (e *Engine) PreUExpectedPointsDetails(score float64, course domain.PreUCourse) (*domain.ExpectedPointsDetails, error) {
	if !validScore(score) {
		return nil, nil
	}
	if course != domain.PreUFull && course != domain.PreUShortCourse {
		return nil, nil
	}
	for _, b := range e.tables.PreUBands() {
		if !b.Contains(score) {
			continue
		}
		d := &domain.ExpectedPointsDetails{Band: b.Band}
		if course == domain.PreUFull {
			d.ExpectedPoints, d.MEGAspiration = b.FullPoints, b.FullMEG
		} else {
			d.ExpectedPoints, d.MEGAspiration = b.SCPoints, b.SCMEG
		}
		return d, nil
	}
	return nil, fmt.Errorf("pre-u score %.4f: %w", score, domain.ErrNoBandMatch)
}

// Btec2016MainDetails resolves a two-year 2016-suite BTEC benchmark.
func (e *Engine) Btec2016MainDetails(score float64, size domain.Btec2016Size) (*domain.ExpectedPointsDetails, error) {
	if !validScore(score) {
		return nil, nil
	}
	for _, b := range e.tables.Btec2016MainBands() {
		if !b.Contains(score) {
			continue
		}
		d := &domain.ExpectedPointsDetails{Band: b.Band}
		switch size {
		case domain.Btec2016ExtCert:
			d.ExpectedPoints, d.MEGAspiration = b.ExtCertPoints, b.ExtCertMEG
		case domain.Btec2016Dip:
			d.ExpectedPoints, d.MEGAspiration = b.DipPoints, b.DipMEG
		case domain.Btec2016ExtDip:
			d.ExpectedPoints, d.MEGAspiration = b.ExtDipPoints, b.ExtDipMEG
		default:
			return nil, nil
		}
		return d, nil
	}
	return nil, fmt.Errorf("btec 2016 score %.4f: %w", score, domain.ErrNoBandMatch)
}

// Btec2016OneYearDetails resolves a one-year 2016-suite BTEC benchmark. The
// result always carries the CamTech Foundation Diploma aspiration alongside
// the requested size's outcome.
func (e *Engine) Btec2016OneYearDetails(score float64, size domain.Btec2016OneYearSize) (*domain.Btec2016OneYearDetails, error) {
	if !validScore(score) {
		return nil, nil
	}
	for _, b := range e.tables.Btec2016OneYearBands() {
		if !b.Contains(score) {
			continue
		}
		d := &domain.Btec2016OneYearDetails{
			Band:               b.Band,
			CamTechFoundDipMEG: b.CamTechFoundDipMEG,
		}
		switch size {
		case domain.Btec2016Cert:
			d.ExpectedPoints, d.MEGAspiration = b.CertPoints, b.CertMEG
		case domain.Btec2016FoundDip:
			d.ExpectedPoints, d.MEGAspiration = b.FoundDipPoints, b.FoundDipMEG
		default:
			return nil, nil
		}
		return d, nil
	}
	return nil, fmt.Errorf("btec 2016 one-year score %.4f: %w", score, domain.ErrNoBandMatch)
}

// Btec2010MEGDetails resolves a 2010-suite BTEC benchmark. The outcome is a
// MEG grade string and band only; points come from the grade codec under
// the same size scope.
func (e *Engine) Btec2010MEGDetails(score float64, size domain.Btec2010Size) (*domain.Btec2010Details, error) {
	if !validScore(score) {
		return nil, nil
	}
	for _, b := range e.tables.Btec2010Bands() {
		if !b.Contains(score) {
			continue
		}
		d := &domain.Btec2010Details{BtecAlpsBand: b.Band}
		switch size {
		case domain.Btec2010Cert:
			d.MEGAspiration = b.CertMEG
		case domain.Btec2010SubDip:
			d.MEGAspiration = b.SubDipMEG
		case domain.Btec2010NinetyCr:
			d.MEGAspiration = b.NinetyCrMEG
		case domain.Btec2010Dip:
			d.MEGAspiration = b.DipMEG
		case domain.Btec2010ExtDip:
			d.MEGAspiration = b.ExtDipMEG
		default:
			return nil, nil
		}
		return d, nil
	}
	return nil, fmt.Errorf("btec 2010 score %.4f: %w", score, domain.ErrNoBandMatch)
}

// UALExpectedPointsDetails resolves a UAL Level 3 benchmark.
func (e *Engine) UALExpectedPointsDetails(score float64, size domain.UALSize) (*domain.ExpectedPointsDetails, error) {
	if !validScore(score) {
		return nil, nil
	}
	for _, b := range e.tables.UALBands() {
		if !b.Contains(score) {
			continue
		}
		d := &domain.ExpectedPointsDetails{Band: b.Band}
		switch size {
		case domain.UALDip:
			d.ExpectedPoints, d.MEGAspiration = b.DipPoints, b.DipMEG
		case domain.UALExtDip:
			d.ExpectedPoints, d.MEGAspiration = b.ExtDipPoints, b.ExtDipMEG
		default:
			return nil, nil
		}
		return d, nil
	}
	return nil, fmt.Errorf("ual score %.4f: %w", score, domain.ErrNoBandMatch)
}

// WJECL3ExpectedPointsDetails resolves a WJEC Level 3 benchmark.
func (e *Engine) WJECL3ExpectedPointsDetails(score float64, size domain.WJECSize) (*domain.ExpectedPointsDetails, error) {
	if !validScore(score) {
		return nil, nil
	}
	for _, b := range e.tables.WJECBands() {
		if !b.Contains(score) {
			continue
		}
		d := &domain.ExpectedPointsDetails{Band: b.Band}
		switch size {
		case domain.WJECCert:
			d.ExpectedPoints, d.MEGAspiration = b.CertPoints, b.CertMEG
		case domain.WJECDip:
			d.ExpectedPoints, d.MEGAspiration = b.DipPoints, b.DipMEG
		default:
			return nil, nil
		}
		return d, nil
	}
	return nil, fmt.Errorf("wjec score %.4f: %w", score, domain.ErrNoBandMatch)
}

// CacheExpectedPointsDetails resolves a CACHE Level 3 benchmark.
func (e *Engine) CacheExpectedPointsDetails(score float64, size domain.CacheSize) (*domain.ExpectedPointsDetails, error) {
	if !validScore(score) {
		return nil, nil
	}
	for _, b := range e.tables.CacheBands() {
		if !b.Contains(score) {
			continue
		}
		d := &domain.ExpectedPointsDetails{Band: b.Band}
		switch size {
		case domain.CacheAward:
			d.ExpectedPoints, d.MEGAspiration = b.AwardPoints, b.AwardMEG
		case domain.CacheCert:
			d.ExpectedPoints, d.MEGAspiration = b.CertPoints, b.CertMEG
		case domain.CacheDip:
			d.ExpectedPoints, d.MEGAspiration = b.DipPoints, b.DipMEG
		case domain.CacheExtDip:
			d.ExpectedPoints, d.MEGAspiration = b.ExtDipPoints, b.ExtDipMEG
		default:
			return nil, nil
		}
		return d, nil
	}
	return nil, fmt.Errorf("cache score %.4f: %w", score, domain.ErrNoBandMatch)
}
