package domain

import "testing"

func TestNormalizeExamType(t *testing.T) {
	tests := []struct {
		raw         string
		normalized  string
		family      QualificationFamily
		sizeOrLevel string
	}{
		{"A Level", "A Level", FamilyALevel, ""},
		{"A-Level (AQA)", "A Level", FamilyALevel, ""},
		{"AS Level", "AS Level", FamilyASLevel, ""},
		{"", "A Level", FamilyALevel, ""},
		{"GCE Advanced Thing", "A Level", FamilyALevel, ""},
		{"BTEC L3 Extended Diploma (2016)", "BTEC Level 3 Extended Diploma", FamilyBtec2016, "EXTDIP"},
		{"BTEC Level 3 Diploma", "BTEC Level 3 Diploma", FamilyBtec2016, "DIP"},
		{"BTEC Subsidiary Diploma 2010", "BTEC Level 3 Subsidiary Diploma", FamilyBtec2010, "SUBDIP"},
		{"BTEC 90 Credit Diploma", "BTEC Level 3 90 Credit Diploma", FamilyBtec2010, "NINETY_CR"},
		{"BTEC Foundation Diploma", "BTEC Level 3 Foundation Diploma", FamilyBtec2016OneYear, "FOUNDDIP"},
		{"BTEC National Extended Certificate", "BTEC Level 3 Extended Certificate", FamilyBtec2016, "EXTCERT"},
		{"BTEC Certificate 2010", "BTEC Level 3 Extended Certificate", FamilyBtec2010, "CERT"},
		{"IB HL", "IB HL", FamilyIB, "HL"},
		{"IB Standard Level", "IB SL", FamilyIB, "SL"},
		{"IB", "IB HL", FamilyIB, "HL"},
		{"Pre-U Principal Subject", "Pre-U Principal Subject", FamilyPreU, "FULL"},
		{"Pre-U Short Course", "Pre-U Short Course", FamilyPreU, "SC"},
		{"UAL Extended Diploma", "UAL Level 3 Extended Diploma", FamilyUAL, "EXTDIP"},
		{"UAL L3 Diploma", "UAL Level 3 Diploma", FamilyUAL, "DIP"},
		{"WJEC Level 3 Diploma", "WJEC Level 3 Diploma", FamilyWJEC, "DIP"},
		{"WJEC Applied Certificate", "WJEC Level 3 Certificate", FamilyWJEC, "CERT"},
		{"CACHE Level 3 Extended Diploma", "CACHE Level 3 Extended Diploma", FamilyCache, "EXTDIP"},
		{"CACHE Award", "CACHE Level 3 Award", FamilyCache, "AWARD"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := NormalizeExamType(tt.raw)
			if got.Normalized != tt.normalized {
				t.Errorf("Normalized = %q, want %q", got.Normalized, tt.normalized)
			}
			if got.Family != tt.family {
				t.Errorf("Family = %v, want %v", got.Family, tt.family)
			}
			if got.SizeOrLevel != tt.sizeOrLevel {
				t.Errorf("SizeOrLevel = %q, want %q", got.SizeOrLevel, tt.sizeOrLevel)
			}
		})
	}
}
