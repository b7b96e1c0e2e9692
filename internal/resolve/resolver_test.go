package resolve

import (
	"errors"
	"math"
	"testing"

	"github.com/studentcoach/alpsbench/internal/domain"
	"github.com/studentcoach/alpsbench/internal/tables"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	store, err := tables.Load()
	if err != nil {
		t.Fatalf("tables.Load() error: %v", err)
	}
	return New(store)
}

func TestAlpsBandDetails(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		name       string
		score      float64
		percentile domain.Percentile
		band       int
		points     float64
		meg        string
	}{
		{name: "top band edge", score: 7.75, percentile: domain.Percentile75, band: 1, points: 124.00, meg: "A+"},
		{name: "just below edge", score: 7.749999, percentile: domain.Percentile75, band: 2, points: 117.33, meg: "A"},
		{name: "mid table", score: 5.50, percentile: domain.Percentile75, band: 7, points: 84.00, meg: "C+"},
		{name: "zero score", score: 0, percentile: domain.Percentile75, band: 11, points: 57.33, meg: "D"},
		{name: "max gcse", score: 9, percentile: domain.Percentile75, band: 1, points: 124.00, meg: "A+"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.AlpsBandDetails(tt.score, tt.percentile)
			if err != nil {
				t.Fatalf("AlpsBandDetails(%v, %v) error: %v", tt.score, tt.percentile, err)
			}
			if got == nil {
				t.Fatalf("AlpsBandDetails(%v, %v) = nil", tt.score, tt.percentile)
			}
			if got.AlpsBand != tt.band || got.MinExpectedPoints != tt.points || got.MEGAspiration != tt.meg {
				t.Errorf("got {%d %.2f %q}, want {%d %.2f %q}",
					got.AlpsBand, got.MinExpectedPoints, got.MEGAspiration, tt.band, tt.points, tt.meg)
			}
		})
	}
}

func TestAlpsBandDetailsInvalidInput(t *testing.T) {
	e := newTestEngine(t)

	for _, score := range []float64{math.NaN(), math.Inf(1), math.Inf(-1), -0.5} {
		got, err := e.AlpsBandDetails(score, domain.Percentile75)
		if got != nil || err != nil {
			t.Errorf("AlpsBandDetails(%v) = %v, %v, want nil, nil", score, got, err)
		}
	}

	if _, err := e.AlpsBandDetails(7.0, domain.Percentile(50)); !errors.Is(err, domain.ErrTableNotFound) {
		t.Errorf("unsupported percentile error = %v, want ErrTableNotFound", err)
	}
}

func TestAlpsBandExactlyOneMatch(t *testing.T) {
	e := newTestEngine(t)

	// Every score in [0, 9] resolves to exactly one band at every
	// percentile; the half-open edges leave no gaps or overlaps.
	for _, p := range domain.AllPercentiles() {
		for score := 0.0; score <= 9.0; score += 0.01 {
			got, err := e.AlpsBandDetails(score, p)
			if err != nil || got == nil {
				t.Fatalf("AlpsBandDetails(%.2f, %v) = %v, %v", score, p, got, err)
			}
		}
	}
}

func TestIBExpectedPointsDetails(t *testing.T) {
	e := newTestEngine(t)

	hl, err := e.IBExpectedPointsDetails(8.40, domain.IBHigherLevel)
	if err != nil || hl == nil {
		t.Fatalf("HL resolve error: %v, %v", hl, err)
	}
	if hl.ExpectedPoints != 6.58 || hl.MEGAspiration != "7" || hl.IBAlpsBand != 1 {
		t.Errorf("HL 8.40 = %+v, want {6.58 7 1}", hl)
	}

	sl, err := e.IBExpectedPointsDetails(8.40, domain.IBStandardLevel)
	if err != nil || sl == nil {
		t.Fatalf("SL resolve error: %v, %v", sl, err)
	}
	if sl.ExpectedPoints != 6.40 || sl.MEGAspiration != "7" {
		t.Errorf("SL 8.40 = %+v, want {6.40 7 1}", sl)
	}

	if got, err := e.IBExpectedPointsDetails(8.40, domain.IBLevel("XL")); got != nil || err != nil {
		t.Errorf("bad level = %v, %v, want nil, nil", got, err)
	}
}

func TestBtec2010MEGDetails(t *testing.T) {
	e := newTestEngine(t)

	got, err := e.Btec2010MEGDetails(7.0, domain.Btec2010Dip)
	if err != nil || got == nil {
		t.Fatalf("resolve error: %v, %v", got, err)
	}
	if got.MEGAspiration != "D*D*" || got.BtecAlpsBand != 1 {
		t.Errorf("DIP 7.0 = %+v, want {D*D* 1}", got)
	}

	got, err = e.Btec2010MEGDetails(4.3, domain.Btec2010NinetyCr)
	if err != nil || got == nil {
		t.Fatalf("resolve error: %v, %v", got, err)
	}
	if got.MEGAspiration != "MM/MP" || got.BtecAlpsBand != 8 {
		t.Errorf("NINETY_CR 4.3 = %+v, want {MM/MP 8}", got)
	}

	if got, err := e.Btec2010MEGDetails(7.0, domain.Btec2010Size("HUGE")); got != nil || err != nil {
		t.Errorf("bad size = %v, %v, want nil, nil", got, err)
	}
}

func TestBtec2016OneYearCarriesCamTech(t *testing.T) {
	e := newTestEngine(t)

	got, err := e.Btec2016OneYearDetails(6.7, domain.Btec2016Cert)
	if err != nil || got == nil {
		t.Fatalf("resolve error: %v, %v", got, err)
	}
	if got.Band != 2 || got.MEGAspiration != "D" || got.CamTechFoundDipMEG != "D*/D" {
		t.Errorf("CERT 6.7 = %+v, want band 2 aspiration D camtech D*/D", got)
	}
}

func TestFamilyResolversAtBounds(t *testing.T) {
	e := newTestEngine(t)

	t.Run("pre-u short course", func(t *testing.T) {
		got, err := e.PreUExpectedPointsDetails(8.10, domain.PreUShortCourse)
		if err != nil || got == nil {
			t.Fatalf("resolve error: %v, %v", got, err)
		}
		if got.Band != 1 || got.ExpectedPoints != 65.00 || got.MEGAspiration != "D2" {
			t.Errorf("SC 8.10 = %+v, want {65.00 D2 1}", got)
		}
	})

	t.Run("btec2016 ext dip bottom band", func(t *testing.T) {
		got, err := e.Btec2016MainDetails(0, domain.Btec2016ExtDip)
		if err != nil || got == nil {
			t.Fatalf("resolve error: %v, %v", got, err)
		}
		if got.Band != 10 || got.ExpectedPoints != 162.00 || got.MEGAspiration != "MPP" {
			t.Errorf("EXTDIP 0 = %+v, want {162.00 MPP 10}", got)
		}
	})

	t.Run("ual dip", func(t *testing.T) {
		got, err := e.UALExpectedPointsDetails(6.70, domain.UALDip)
		if err != nil || got == nil {
			t.Fatalf("resolve error: %v, %v", got, err)
		}
		if got.Band != 1 || got.ExpectedPoints != 84.00 || got.MEGAspiration != "D" {
			t.Errorf("DIP 6.70 = %+v, want {84.00 D 1}", got)
		}
	})

	t.Run("wjec cert", func(t *testing.T) {
		got, err := e.WJECL3ExpectedPointsDetails(6.95, domain.WJECCert)
		if err != nil || got == nil {
			t.Fatalf("resolve error: %v, %v", got, err)
		}
		if got.Band != 2 || got.MEGAspiration != "A" {
			t.Errorf("CERT 6.95 = %+v, want band 2 aspiration A", got)
		}
	})

	t.Run("cache award", func(t *testing.T) {
		got, err := e.CacheExpectedPointsDetails(6.80, domain.CacheAward)
		if err != nil || got == nil {
			t.Fatalf("resolve error: %v, %v", got, err)
		}
		if got.Band != 1 || got.ExpectedPoints != 67.00 || got.MEGAspiration != "A*" {
			t.Errorf("AWARD 6.80 = %+v, want {67.00 A* 1}", got)
		}
	})
}
