package tables

import (
	"fmt"

	"github.com/studentcoach/alpsbench/internal/codec"
	"github.com/studentcoach/alpsbench/internal/domain"
)

// Report is the outcome of a table validation run. Errors make the store
// unusable; warnings flag known anomalies carried over from the published
// tables.
type Report struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// Validator checks band coverage, ordering and cross-table consistency
type Validator struct{}

// NewValidator creates a new validator
func NewValidator() *Validator {
	return &Validator{}
}

// Validate performs comprehensive validation on a loaded store
func (v *Validator) Validate(s *Store) *Report {
	report := &Report{
		Valid:    true,
		Errors:   []string{},
		Warnings: []string{},
	}

	v.checkALevelBands(s, report)
	v.checkSubjectFactors(s, report)
	v.checkFamilyBands(s, report)
	v.checkBtec2010Codec(s, report)
	v.checkGradeScales(s, report)

	return report
}

func (v *Validator) checkALevelBands(s *Store, report *Report) {
	for _, p := range domain.AllPercentiles() {
		bands, ok := s.alevel[p]
		if !ok || len(bands) == 0 {
			report.Errors = append(report.Errors,
				fmt.Sprintf("a-level %s: no bands loaded", p))
			report.Valid = false
			continue
		}

		name := fmt.Sprintf("a-level %s", p)
		v.checkBandGeometry(name, bandEdges(bands), report)

		// Expected points should fall as bands descend. The published
		// 90th and 100th tables break this at the bottom band; keep the
		// values but flag them.
		for i := 1; i < len(bands); i++ {
			if bands[i].MinExpectedPoints > bands[i-1].MinExpectedPoints {
				report.Warnings = append(report.Warnings,
					fmt.Sprintf("%s: band %d expected points %.2f exceed band %d's %.2f",
						name, bands[i].Band, bands[i].MinExpectedPoints,
						bands[i-1].Band, bands[i-1].MinExpectedPoints))
			}
			if bands[i].MEG == "" {
				report.Errors = append(report.Errors,
					fmt.Sprintf("%s: band %d has no aspiration grade", name, bands[i].Band))
				report.Valid = false
			}
		}
	}
}

func (v *Validator) checkSubjectFactors(s *Store, report *Report) {
	base, ok := s.factors[domain.StandardPercentile]
	if !ok || len(base) == 0 {
		report.Errors = append(report.Errors, "subject factors: standard percentile dictionary missing")
		report.Valid = false
		return
	}

	for _, p := range domain.AllPercentiles() {
		factors, ok := s.factors[p]
		if !ok {
			report.Errors = append(report.Errors,
				fmt.Sprintf("subject factors %s: dictionary missing", p))
			report.Valid = false
			continue
		}

		// Every percentile carries the same label set.
		for label := range base {
			if _, ok := factors[label]; !ok {
				report.Errors = append(report.Errors,
					fmt.Sprintf("subject factors %s: missing label %q", p, label))
				report.Valid = false
			}
		}
		for label, f := range factors {
			if _, ok := base[label]; !ok {
				report.Errors = append(report.Errors,
					fmt.Sprintf("subject factors %s: label %q absent at standard percentile", p, label))
				report.Valid = false
			}
			if f <= 0 {
				report.Errors = append(report.Errors,
					fmt.Sprintf("subject factors %s: %q has non-positive factor %.2f", p, label, f))
				report.Valid = false
			}
		}
	}

	// Factors usually rise with ambition. A handful of published entries
	// dip between adjacent percentiles; those are warnings, not errors.
	ordered := domain.AllPercentiles()
	for label := range base {
		for i := 1; i < len(ordered); i++ {
			lo, hi := s.factors[ordered[i-1]][label], s.factors[ordered[i]][label]
			if hi < lo {
				report.Warnings = append(report.Warnings,
					fmt.Sprintf("subject factors: %q falls from %.2f at %s to %.2f at %s",
						label, lo, ordered[i-1], hi, ordered[i]))
			}
		}
	}
}

func (v *Validator) checkFamilyBands(s *Store, report *Report) {
	families := []struct {
		name  string
		edges []bandEdge
	}{
		{"ib", bandEdges(s.ib)},
		{"pre-u", bandEdges(s.preU)},
		{"btec2016 main", bandEdges(s.btec2016Main)},
		{"btec2016 one-year", bandEdges(s.btec2016OneYear)},
		{"btec2010", bandEdges(s.btec2010)},
		{"ual", bandEdges(s.ual)},
		{"wjec", bandEdges(s.wjec)},
		{"cache", bandEdges(s.cache)},
	}

	for _, fam := range families {
		if len(fam.edges) == 0 {
			report.Errors = append(report.Errors,
				fmt.Sprintf("%s: no bands loaded", fam.name))
			report.Valid = false
			continue
		}
		v.checkBandGeometry(fam.name, fam.edges, report)
	}
}

// checkBandGeometry enforces the half-open band layout: bands numbered from
// 1, strictly descending minimums, each band's maximum equal to the previous
// band's minimum, the top band unbounded and the bottom band anchored at 0.
func (v *Validator) checkBandGeometry(name string, edges []bandEdge, report *Report) {
	fail := func(format string, args ...any) {
		report.Errors = append(report.Errors, fmt.Sprintf("%s: %s", name, fmt.Sprintf(format, args...)))
		report.Valid = false
	}

	if edges[0].max != nil {
		fail("band %d should be unbounded above", edges[0].band)
	}
	if last := edges[len(edges)-1]; last.min != 0 {
		fail("band %d should be anchored at 0, has minimum %.2f", last.band, last.min)
	}

	for i, e := range edges {
		if e.band != i+1 {
			fail("band at position %d numbered %d", i+1, e.band)
		}
		if i == 0 {
			continue
		}
		prev := edges[i-1]
		if e.min >= prev.min {
			fail("band %d minimum %.2f not below band %d minimum %.2f", e.band, e.min, prev.band, prev.min)
		}
		if e.max == nil {
			fail("band %d missing upper bound", e.band)
		} else if *e.max != prev.min {
			fail("band %d upper bound %.2f does not meet band %d minimum %.2f", e.band, *e.max, prev.band, prev.min)
		}
	}
}

func (v *Validator) checkBtec2010Codec(s *Store, report *Report) {
	for _, scope := range []codec.SizeScope{codec.ScopeCert, codec.ScopeSubDip, codec.ScopeNinetyCr, codec.ScopeDip, codec.ScopeExtDip} {
		if _, ok := s.btec2010Codec[scope]; !ok {
			report.Errors = append(report.Errors,
				fmt.Sprintf("btec2010 codec: missing %s scope", scope))
			report.Valid = false
		}
	}

	// Every aspiration grade in the 2010 band table must be convertible to
	// points, or the resolver would silently degrade it.
	check := func(band int, scope codec.SizeScope, meg string) {
		if _, ok := s.btec2010Codec.Points(scope, meg); !ok {
			report.Errors = append(report.Errors,
				fmt.Sprintf("btec2010 band %d: %s aspiration %q not in grade codec", band, scope, meg))
			report.Valid = false
		}
	}
	for _, b := range s.btec2010 {
		check(b.Band, codec.ScopeCert, b.CertMEG)
		check(b.Band, codec.ScopeSubDip, b.SubDipMEG)
		check(b.Band, codec.ScopeNinetyCr, b.NinetyCrMEG)
		check(b.Band, codec.ScopeDip, b.DipMEG)
		check(b.Band, codec.ScopeExtDip, b.ExtDipMEG)
	}
}

func (v *Validator) checkGradeScales(s *Store, report *Report) {
	for qual, scale := range s.gradePoints {
		if _, ok := scale["U"]; !ok {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("grade scale %q has no unclassified entry", qual))
		}
	}
}

// bandEdge is the geometry common to every band table.
type bandEdge struct {
	band int
	min  float64
	max  *float64
}

type edged interface {
	ALevelBand | IBBand | PreUBand | Btec2016Band | Btec2016OneYearBand | Btec2010Band | UALBand | WJECBand | CacheBand
}

func bandEdges[T edged](bands []T) []bandEdge {
	edges := make([]bandEdge, 0, len(bands))
	for _, b := range bands {
		switch x := any(b).(type) {
		case ALevelBand:
			edges = append(edges, bandEdge{x.Band, x.MinGCSE, x.MaxGCSE})
		case IBBand:
			edges = append(edges, bandEdge{x.Band, x.MinGCSE, x.MaxGCSE})
		case PreUBand:
			edges = append(edges, bandEdge{x.Band, x.MinGCSE, x.MaxGCSE})
		case Btec2016Band:
			edges = append(edges, bandEdge{x.Band, x.MinGCSE, x.MaxGCSE})
		case Btec2016OneYearBand:
			edges = append(edges, bandEdge{x.Band, x.MinGCSE, x.MaxGCSE})
		case Btec2010Band:
			edges = append(edges, bandEdge{x.Band, x.MinGCSE, x.MaxGCSE})
		case UALBand:
			edges = append(edges, bandEdge{x.Band, x.MinGCSE, x.MaxGCSE})
		case WJECBand:
			edges = append(edges, bandEdge{x.Band, x.MinGCSE, x.MaxGCSE})
		case CacheBand:
			edges = append(edges, bandEdge{x.Band, x.MinGCSE, x.MaxGCSE})
		}
	}
	return edges
}
