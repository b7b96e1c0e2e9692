package tables

import (
	"strings"
	"testing"

	"github.com/studentcoach/alpsbench/internal/domain"
)

func TestValidateEmbeddedTables(t *testing.T) {
	s, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	report := NewValidator().Validate(s)
	if !report.Valid {
		t.Fatalf("embedded tables invalid: %v", report.Errors)
	}

	// The published 90th and 100th tables carry a bottom band whose
	// expected points exceed the band above. The validator keeps the
	// values and surfaces them as warnings.
	var pointsAnomalies int
	for _, w := range report.Warnings {
		if strings.Contains(w, "expected points") {
			pointsAnomalies++
		}
	}
	if pointsAnomalies < 2 {
		t.Errorf("got %d expected-points warnings, want the 90th and 100th anomalies flagged", pointsAnomalies)
	}
}

func TestValidateBandGeometryErrors(t *testing.T) {
	s, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	// Open a gap between bands 1 and 2 at the standard percentile.
	bands := make([]ALevelBand, len(s.alevel[domain.StandardPercentile]))
	copy(bands, s.alevel[domain.StandardPercentile])
	gap := 7.50
	bands[1].MaxGCSE = &gap
	s.alevel[domain.StandardPercentile] = bands

	report := NewValidator().Validate(s)
	if report.Valid {
		t.Fatal("report should be invalid for a band gap")
	}
	found := false
	for _, e := range report.Errors {
		if strings.Contains(e, "does not meet") {
			found = true
		}
	}
	if !found {
		t.Errorf("errors %v should mention the broken upper bound", report.Errors)
	}
}

func TestValidateMissingCodecEntry(t *testing.T) {
	s, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	bands := make([]Btec2010Band, len(s.btec2010))
	copy(bands, s.btec2010)
	bands[0].DipMEG = "D*D*D*D*"
	s.btec2010 = bands

	report := NewValidator().Validate(s)
	if report.Valid {
		t.Fatal("report should be invalid when an aspiration grade has no codec entry")
	}
	found := false
	for _, e := range report.Errors {
		if strings.Contains(e, "not in grade codec") {
			found = true
		}
	}
	if !found {
		t.Errorf("errors %v should mention the missing codec entry", report.Errors)
	}
}
