package domain

import "strings"

// QualificationFamily identifies which band table (or the A-Level baseline
// plus a subject factor) resolves a benchmark.
type QualificationFamily string

const (
	FamilyALevel          QualificationFamily = "a_level"
	FamilyASLevel         QualificationFamily = "as_level"
	FamilyEPQ             QualificationFamily = "epq"
	FamilyCoreMaths       QualificationFamily = "core_maths"
	FamilyLIBF            QualificationFamily = "libf"
	FamilyIB              QualificationFamily = "ib"
	FamilyPreU            QualificationFamily = "pre_u"
	FamilyBtec2016        QualificationFamily = "btec_2016"
	FamilyBtec2016OneYear QualificationFamily = "btec_2016_one_year"
	FamilyBtec2010        QualificationFamily = "btec_2010"
	FamilyUAL             QualificationFamily = "ual"
	FamilyWJEC            QualificationFamily = "wjec"
	FamilyCache           QualificationFamily = "cache"
)

// ALevelRooted reports whether the family shares the A-Level point scale and
// is benchmarked as A-Level baseline points times a subject value-added
// factor, rather than through a dedicated family band table.
func (f QualificationFamily) ALevelRooted() bool {
	switch f {
	case FamilyALevel, FamilyASLevel, FamilyEPQ, FamilyCoreMaths, FamilyLIBF:
		return true
	}
	return false
}

// -----------------------------------------------------------------------------
// Size / level discriminators. Each family accepts a closed whitelist, parsed
// case-insensitively. Parsers return false rather than panicking so resolvers
// can treat bad input as a nil-result precondition failure.
// -----------------------------------------------------------------------------

// IBLevel selects Higher or Standard Level fields from an IB band row.
type IBLevel string

const (
	IBHigherLevel   IBLevel = "HL"
	IBStandardLevel IBLevel = "SL"
)

// ParseIBLevel parses "HL"/"SL" case-insensitively.
func ParseIBLevel(s string) (IBLevel, bool) {
	switch canon(s) {
	case "HL":
		return IBHigherLevel, true
	case "SL":
		return IBStandardLevel, true
	}
	return "", false
}

// PreUCourse selects full Principal Subject or Short Course columns. The two
// are tabulated independently; Short Course values are never derived from the
// full-course values.
type PreUCourse string

const (
	PreUFull        PreUCourse = "FULL"
	PreUShortCourse PreUCourse = "SC"
)

func ParsePreUCourse(s string) (PreUCourse, bool) {
	switch canon(s) {
	case "FULL":
		return PreUFull, true
	case "SC":
		return PreUShortCourse, true
	}
	return "", false
}

// Btec2016Size covers the two-year 2016-suite sizes.
type Btec2016Size string

const (
	Btec2016ExtCert Btec2016Size = "EXTCERT"
	Btec2016Dip     Btec2016Size = "DIP"
	Btec2016ExtDip  Btec2016Size = "EXTDIP"
)

func ParseBtec2016Size(s string) (Btec2016Size, bool) {
	switch canon(s) {
	case "EXTCERT":
		return Btec2016ExtCert, true
	case "DIP":
		return Btec2016Dip, true
	case "EXTDIP":
		return Btec2016ExtDip, true
	}
	return "", false
}

// Btec2016OneYearSize covers the one-year 2016-suite sizes.
type Btec2016OneYearSize string

const (
	Btec2016Cert     Btec2016OneYearSize = "CERT"
	Btec2016FoundDip Btec2016OneYearSize = "FOUNDDIP"
)

func ParseBtec2016OneYearSize(s string) (Btec2016OneYearSize, bool) {
	switch canon(s) {
	case "CERT":
		return Btec2016Cert, true
	case "FOUNDDIP":
		return Btec2016FoundDip, true
	}
	return "", false
}

// Btec2010Size covers the QCF 2010-suite sizes. The same values key the
// grade/points codec scopes.
type Btec2010Size string

const (
	Btec2010Cert     Btec2010Size = "CERT"
	Btec2010SubDip   Btec2010Size = "SUBDIP"
	Btec2010NinetyCr Btec2010Size = "NINETY_CR"
	Btec2010Dip      Btec2010Size = "DIP"
	Btec2010ExtDip   Btec2010Size = "EXTDIP"
)

func ParseBtec2010Size(s string) (Btec2010Size, bool) {
	switch canon(s) {
	case "CERT":
		return Btec2010Cert, true
	case "SUBDIP":
		return Btec2010SubDip, true
	case "NINETY_CR", "90CR":
		return Btec2010NinetyCr, true
	case "DIP":
		return Btec2010Dip, true
	case "EXTDIP":
		return Btec2010ExtDip, true
	}
	return "", false
}

// UALSize covers UAL Level 3 sizes.
type UALSize string

const (
	UALDip    UALSize = "DIP"
	UALExtDip UALSize = "EXTDIP"
)

func ParseUALSize(s string) (UALSize, bool) {
	switch canon(s) {
	case "DIP":
		return UALDip, true
	case "EXTDIP":
		return UALExtDip, true
	}
	return "", false
}

// WJECSize covers WJEC Level 3 sizes.
type WJECSize string

const (
	WJECCert WJECSize = "CERT"
	WJECDip  WJECSize = "DIP"
)

func ParseWJECSize(s string) (WJECSize, bool) {
	switch canon(s) {
	case "CERT":
		return WJECCert, true
	case "DIP":
		return WJECDip, true
	}
	return "", false
}

// CacheSize covers CACHE Level 3 sizes.
type CacheSize string

const (
	CacheAward  CacheSize = "AWARD"
	CacheCert   CacheSize = "CERT"
	CacheDip    CacheSize = "DIP"
	CacheExtDip CacheSize = "EXTDIP"
)

func ParseCacheSize(s string) (CacheSize, bool) {
	switch canon(s) {
	case "AWARD":
		return CacheAward, true
	case "CERT":
		return CacheCert, true
	case "DIP":
		return CacheDip, true
	case "EXTDIP":
		return CacheExtDip, true
	}
	return "", false
}

func canon(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
