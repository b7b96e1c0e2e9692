package tables

import (
	"testing"

	"github.com/studentcoach/alpsbench/internal/codec"
	"github.com/studentcoach/alpsbench/internal/domain"
)

func TestLoadEmbedded(t *testing.T) {
	s, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	for _, p := range domain.AllPercentiles() {
		bands, err := s.ALevelBands(p)
		if err != nil {
			t.Fatalf("ALevelBands(%v) error: %v", p, err)
		}
		if len(bands) != 11 {
			t.Errorf("ALevelBands(%v) has %d bands, want 11", p, len(bands))
		}
		if _, err := s.SubjectFactors(p); err != nil {
			t.Fatalf("SubjectFactors(%v) error: %v", p, err)
		}
	}
}

func TestLoadStandardPercentileValues(t *testing.T) {
	s, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	bands, err := s.ALevelBands(domain.StandardPercentile)
	if err != nil {
		t.Fatalf("ALevelBands error: %v", err)
	}

	top := bands[0]
	if top.Band != 1 || top.MinGCSE != 7.75 || top.MaxGCSE != nil {
		t.Errorf("top band = %+v, want band 1 from 7.75 unbounded", top)
	}
	if top.MinExpectedPoints != 124.00 || top.MEG != "A+" {
		t.Errorf("top band outcome = %.2f %q, want 124.00 A+", top.MinExpectedPoints, top.MEG)
	}

	bottom := bands[len(bands)-1]
	if bottom.Band != 11 || bottom.MinGCSE != 0 {
		t.Errorf("bottom band = %+v, want band 11 anchored at 0", bottom)
	}
}

func TestLoadFamilyAndGradeTables(t *testing.T) {
	s, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	ib := s.IBBands()
	if len(ib) != 9 {
		t.Fatalf("IBBands has %d bands, want 9", len(ib))
	}
	if ib[0].MinGCSE != 8.40 || ib[0].HLPoints != 6.58 || ib[0].HLMEG != "7" {
		t.Errorf("IB top band = %+v, want min 8.40 HL 6.58 aspiration 7", ib[0])
	}

	if got := len(s.Btec2010Bands()); got != 10 {
		t.Errorf("Btec2010Bands has %d bands, want 10", got)
	}
	for _, b := range s.Btec2016OneYearBands() {
		if b.CamTechFoundDipMEG == "" {
			t.Errorf("one-year band %d missing CamTech aspiration", b.Band)
		}
	}

	if pts, ok := s.Btec2010GradeCodec().Points(codec.ScopeDip, "D*D*"); !ok || pts != 280 {
		t.Errorf("DIP D*D* = %v, %v, want 280, true", pts, ok)
	}
	if pts, ok := s.Btec2010GradeCodec().Points(codec.ScopeCert, "D*"); !ok || pts != 140 {
		t.Errorf("CERT D* = %v, %v, want 140, true", pts, ok)
	}

	if pts, ok := s.GradePoints().Points("A Level", "A*"); !ok || pts != 140 {
		t.Errorf("A Level A* = %v, %v, want 140, true", pts, ok)
	}
	if _, err := s.QualificationGradePoints("BTEC Level 3 90 Credit Diploma"); err != nil {
		t.Errorf("QualificationGradePoints(90 Credit Diploma) error: %v", err)
	}
}

func TestStoreUnknownLookups(t *testing.T) {
	s, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if _, err := s.ALevelBands(domain.Percentile(50)); err == nil {
		t.Error("ALevelBands(50) should fail")
	}
	if _, err := s.SubjectFactor(domain.StandardPercentile, "A - Alchemy"); err == nil {
		t.Error("SubjectFactor for unknown subject should fail")
	}
	if _, err := s.QualificationGradePoints("GCSE"); err == nil {
		t.Error("QualificationGradePoints(GCSE) should fail")
	}
}
