package domain

// AlpsBandDetails is the A-Level baseline band lookup result.
type AlpsBandDetails struct {
	AlpsBand          int     `json:"alpsBand"`
	MinExpectedPoints float64 `json:"minExpectedPoints"`
	MEGAspiration     string  `json:"megAspiration"`
}

// BenchmarkResult is the aggregated per-subject benchmark. ExpectedPoints is
// nil only when a BTEC-2010 MEG grade string has no grade/points entry;
// callers treat that as "benchmark unavailable", never as zero.
type BenchmarkResult struct {
	ExpectedPoints *float64 `json:"expectedPoints"`
	MEGAspiration  string   `json:"megAspiration"`
	Band           int      `json:"band"`
}

// ExpectedPointsDetails is the band lookup result shared by the Pre-U,
// BTEC-2016-main, UAL, WJEC and CACHE resolvers.
type ExpectedPointsDetails struct {
	ExpectedPoints float64 `json:"expectedPoints"`
	MEGAspiration  string  `json:"megAspiration"`
	Band           int     `json:"band"`
}

// IBDetails is the IB resolver result for a single level (HL or SL).
type IBDetails struct {
	ExpectedPoints float64 `json:"expectedPoints"`
	MEGAspiration  string  `json:"megAspiration"`
	IBAlpsBand     int     `json:"ibAlpsBand"`
}

// Btec2016OneYearDetails is the one-year BTEC 2016 resolver result.
// CamTechFoundDipMEG is populated for every requested size; callers needing
// the Cambridge Technicals Foundation Diploma variant read it from any
// result rather than asking for a separate size.
type Btec2016OneYearDetails struct {
	ExpectedPoints     float64 `json:"expectedPoints"`
	MEGAspiration      string  `json:"megAspiration"`
	CamTechFoundDipMEG string  `json:"camTechFoundDipMeg"`
	Band               int     `json:"band"`
}

// Btec2010Details is the BTEC 2010 resolver result: a MEG grade string and
// band only. Points are derived separately through the grade/points codec
// under the same size scope.
type Btec2010Details struct {
	MEGAspiration string `json:"megAspiration"`
	BtecAlpsBand  int    `json:"btecAlpsBand"`
}
