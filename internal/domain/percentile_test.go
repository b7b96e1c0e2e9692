package domain

import (
	"errors"
	"testing"
)

func TestParsePercentile(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Percentile
		wantErr bool
	}{
		{name: "plain 75", input: "75", want: Percentile75},
		{name: "suffixed 90th", input: "90th", want: Percentile90},
		{name: "whitespace", input: " 100 ", want: Percentile100},
		{name: "sixty", input: "60", want: Percentile60},
		{name: "unsupported percentile", input: "80", wantErr: true},
		{name: "not a number", input: "seventy-five", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePercentile(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidPercentile) {
					t.Fatalf("ParsePercentile(%q) error = %v, want ErrInvalidPercentile", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePercentile(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParsePercentile(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestPercentileValid(t *testing.T) {
	for _, p := range AllPercentiles() {
		if !p.Valid() {
			t.Errorf("%v should be valid", p)
		}
	}
	if Percentile(50).Valid() {
		t.Error("50 should not be a valid percentile")
	}
}

func TestSizeParsersCaseInsensitive(t *testing.T) {
	if lvl, ok := ParseIBLevel("hl"); !ok || lvl != IBHigherLevel {
		t.Errorf("ParseIBLevel(hl) = %v, %v, want HL, true", lvl, ok)
	}
	if _, ok := ParseIBLevel("higher"); ok {
		t.Error("ParseIBLevel(higher) should not parse")
	}
	if size, ok := ParseBtec2010Size("ninety_cr"); !ok || size != Btec2010NinetyCr {
		t.Errorf("ParseBtec2010Size(ninety_cr) = %v, %v, want NINETY_CR, true", size, ok)
	}
	if size, ok := ParseBtec2010Size("90cr"); !ok || size != Btec2010NinetyCr {
		t.Errorf("ParseBtec2010Size(90cr) = %v, %v, want NINETY_CR, true", size, ok)
	}
	if _, ok := ParseCacheSize("INVALID"); ok {
		t.Error("ParseCacheSize(INVALID) should not parse")
	}
	if size, ok := ParseWJECSize(" dip "); !ok || size != WJECDip {
		t.Errorf("ParseWJECSize(' dip ') = %v, %v, want DIP, true", size, ok)
	}
}
