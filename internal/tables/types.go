// Package tables loads and validates the benchmark band tables, subject
// value-added factors and grade/points scales that drive resolution. Tables
// ship embedded in the binary; a directory override supports updated
// releases without a rebuild.
package tables

// ALevelBand is one prior attainment band of the A-Level baseline table.
// Bands are half-open: a score matches when score >= MinGCSE and either
// MaxGCSE is nil (top band) or score < MaxGCSE.
type ALevelBand struct {
	Band              int      `yaml:"band" json:"band"`
	MinGCSE           float64  `yaml:"min_gcse" json:"minGcse"`
	MaxGCSE           *float64 `yaml:"max_gcse" json:"maxGcse,omitempty"`
	MinExpectedPoints float64  `yaml:"min_expected_points" json:"minExpectedPoints"`
	MEG               string   `yaml:"meg" json:"meg"`
}

// Contains reports whether a prior attainment score falls inside the band.
func (b ALevelBand) Contains(score float64) bool {
	return score >= b.MinGCSE && (b.MaxGCSE == nil || score < *b.MaxGCSE)
}

// IBBand carries Higher and Standard Level outcomes for one band.
type IBBand struct {
	Band     int      `yaml:"band"`
	MinGCSE  float64  `yaml:"min_gcse"`
	MaxGCSE  *float64 `yaml:"max_gcse"`
	HLPoints float64  `yaml:"hl_points"`
	HLMEG    string   `yaml:"hl_meg"`
	SLPoints float64  `yaml:"sl_points"`
	SLMEG    string   `yaml:"sl_meg"`
}

func (b IBBand) Contains(score float64) bool {
	return score >= b.MinGCSE && (b.MaxGCSE == nil || score < *b.MaxGCSE)
}

// PreUBand carries Principal Subject and Short Course outcomes.
type PreUBand struct {
	Band       int      `yaml:"band"`
	MinGCSE    float64  `yaml:"min_gcse"`
	MaxGCSE    *float64 `yaml:"max_gcse"`
	FullPoints float64  `yaml:"full_points"`
	FullMEG    string   `yaml:"full_meg"`
	SCPoints   float64  `yaml:"sc_points"`
	SCMEG      string   `yaml:"sc_meg"`
}

func (b PreUBand) Contains(score float64) bool {
	return score >= b.MinGCSE && (b.MaxGCSE == nil || score < *b.MaxGCSE)
}

// Btec2016Band covers the two-year 2016 suite sizes.
type Btec2016Band struct {
	Band          int      `yaml:"band"`
	MinGCSE       float64  `yaml:"min_gcse"`
	MaxGCSE       *float64 `yaml:"max_gcse"`
	ExtCertPoints float64  `yaml:"ext_cert_points"`
	ExtCertMEG    string   `yaml:"ext_cert_meg"`
	DipPoints     float64  `yaml:"dip_points"`
	DipMEG        string   `yaml:"dip_meg"`
	ExtDipPoints  float64  `yaml:"ext_dip_points"`
	ExtDipMEG     string   `yaml:"ext_dip_meg"`
}

func (b Btec2016Band) Contains(score float64) bool {
	return score >= b.MinGCSE && (b.MaxGCSE == nil || score < *b.MaxGCSE)
}

// Btec2016OneYearBand covers the one-year 2016 suite sizes. Every band also
// carries the CamTech Foundation Diploma aspiration alongside the BTEC one.
type Btec2016OneYearBand struct {
	Band               int      `yaml:"band"`
	MinGCSE            float64  `yaml:"min_gcse"`
	MaxGCSE            *float64 `yaml:"max_gcse"`
	CertPoints         float64  `yaml:"cert_points"`
	CertMEG            string   `yaml:"cert_meg"`
	FoundDipPoints     float64  `yaml:"found_dip_points"`
	FoundDipMEG        string   `yaml:"found_dip_meg"`
	CamTechFoundDipMEG string   `yaml:"camtech_found_dip_meg"`
}

func (b Btec2016OneYearBand) Contains(score float64) bool {
	return score >= b.MinGCSE && (b.MaxGCSE == nil || score < *b.MaxGCSE)
}

// Btec2010Band carries MEG grade strings only; point values come from the
// size-scoped grade codec.
type Btec2010Band struct {
	Band        int      `yaml:"band"`
	MinGCSE     float64  `yaml:"min_gcse"`
	MaxGCSE     *float64 `yaml:"max_gcse"`
	CertMEG     string   `yaml:"cert_meg"`
	SubDipMEG   string   `yaml:"sub_dip_meg"`
	NinetyCrMEG string   `yaml:"ninety_cr_meg"`
	DipMEG      string   `yaml:"dip_meg"`
	ExtDipMEG   string   `yaml:"ext_dip_meg"`
}

func (b Btec2010Band) Contains(score float64) bool {
	return score >= b.MinGCSE && (b.MaxGCSE == nil || score < *b.MaxGCSE)
}

// UALBand covers the UAL Level 3 Diploma and Extended Diploma.
type UALBand struct {
	Band         int      `yaml:"band"`
	MinGCSE      float64  `yaml:"min_gcse"`
	MaxGCSE      *float64 `yaml:"max_gcse"`
	DipPoints    float64  `yaml:"dip_points"`
	DipMEG       string   `yaml:"dip_meg"`
	ExtDipPoints float64  `yaml:"ext_dip_points"`
	ExtDipMEG    string   `yaml:"ext_dip_meg"`
}

func (b UALBand) Contains(score float64) bool {
	return score >= b.MinGCSE && (b.MaxGCSE == nil || score < *b.MaxGCSE)
}

// WJECBand covers the WJEC Level 3 Certificate and Diploma.
type WJECBand struct {
	Band       int      `yaml:"band"`
	MinGCSE    float64  `yaml:"min_gcse"`
	MaxGCSE    *float64 `yaml:"max_gcse"`
	CertPoints float64  `yaml:"cert_points"`
	CertMEG    string   `yaml:"cert_meg"`
	DipPoints  float64  `yaml:"dip_points"`
	DipMEG     string   `yaml:"dip_meg"`
}

func (b WJECBand) Contains(score float64) bool {
	return score >= b.MinGCSE && (b.MaxGCSE == nil || score < *b.MaxGCSE)
}

// CacheBand covers the four CACHE Level 3 sizes.
type CacheBand struct {
	Band         int      `yaml:"band"`
	MinGCSE      float64  `yaml:"min_gcse"`
	MaxGCSE      *float64 `yaml:"max_gcse"`
	AwardPoints  float64  `yaml:"award_points"`
	AwardMEG     string   `yaml:"award_meg"`
	CertPoints   float64  `yaml:"cert_points"`
	CertMEG      string   `yaml:"cert_meg"`
	DipPoints    float64  `yaml:"dip_points"`
	DipMEG       string   `yaml:"dip_meg"`
	ExtDipPoints float64  `yaml:"ext_dip_points"`
	ExtDipMEG    string   `yaml:"ext_dip_meg"`
}

func (b CacheBand) Contains(score float64) bool {
	return score >= b.MinGCSE && (b.MaxGCSE == nil || score < *b.MaxGCSE)
}
