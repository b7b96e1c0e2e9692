package domain

import "strings"

// ExamType is the normalized form of a free-text CRM qualification string
// such as "BTEC L3 Ext Dip (2016)" or "IB Higher". Normalized matches the
// grade/points mapping keys; SizeOrLevel carries the resolver discriminator.
type ExamType struct {
	Raw         string
	Normalized  string
	Family      QualificationFamily
	SizeOrLevel string
}

// NormalizeExamType maps a raw CRM exam-type string onto a known
// qualification. Unknown or empty input defaults to A Level; BTECs default
// to the 2016 suite, IB to Higher Level and WJEC to Certificate, matching
// the upstream record conventions.
func NormalizeExamType(raw string) ExamType {
	lower := strings.ToLower(strings.TrimSpace(raw))
	et := ExamType{Raw: raw}

	switch {
	case lower == "" || strings.Contains(lower, "a level") || strings.Contains(lower, "alevel") || strings.Contains(lower, "a-level"):
		et.Normalized, et.Family = "A Level", FamilyALevel
	case strings.Contains(lower, "as level") || strings.Contains(lower, "aslevel"):
		et.Normalized, et.Family = "AS Level", FamilyASLevel
	case strings.Contains(lower, "btec"):
		normalizeBtec(lower, &et)
	case strings.Contains(lower, "wjec"):
		if strings.Contains(lower, "dip") {
			et.Normalized, et.Family, et.SizeOrLevel = "WJEC Level 3 Diploma", FamilyWJEC, "DIP"
		} else {
			et.Normalized, et.Family, et.SizeOrLevel = "WJEC Level 3 Certificate", FamilyWJEC, "CERT"
		}
	case strings.Contains(lower, "cache"):
		normalizeCache(lower, &et)
	case strings.Contains(lower, "ual"):
		if strings.Contains(lower, "extended diploma") || strings.Contains(lower, "ext dip") {
			et.Normalized, et.Family, et.SizeOrLevel = "UAL Level 3 Extended Diploma", FamilyUAL, "EXTDIP"
		} else {
			et.Normalized, et.Family, et.SizeOrLevel = "UAL Level 3 Diploma", FamilyUAL, "DIP"
		}
	case strings.Contains(lower, "ib"):
		if strings.Contains(lower, "sl") || strings.Contains(lower, "standard") {
			et.Normalized, et.Family, et.SizeOrLevel = "IB SL", FamilyIB, "SL"
		} else {
			et.Normalized, et.Family, et.SizeOrLevel = "IB HL", FamilyIB, "HL"
		}
	case strings.Contains(lower, "pre-u") || strings.Contains(lower, "preu"):
		if strings.Contains(lower, "short course") || strings.Contains(lower, "sc") {
			et.Normalized, et.Family, et.SizeOrLevel = "Pre-U Short Course", FamilyPreU, "SC"
		} else {
			et.Normalized, et.Family, et.SizeOrLevel = "Pre-U Principal Subject", FamilyPreU, "FULL"
		}
	default:
		et.Normalized, et.Family = "A Level", FamilyALevel
	}

	return et
}

func normalizeBtec(lower string, et *ExamType) {
	year := "2016"
	if strings.Contains(lower, "2010") {
		year = "2010"
	}

	switch {
	case strings.Contains(lower, "extended diploma") || strings.Contains(lower, "ext dip"):
		et.Normalized, et.SizeOrLevel = "BTEC Level 3 Extended Diploma", "EXTDIP"
	case strings.Contains(lower, "subsidiary diploma") || strings.Contains(lower, "sub dip"):
		et.Normalized, et.SizeOrLevel = "BTEC Level 3 Subsidiary Diploma", "SUBDIP"
	case strings.Contains(lower, "foundation diploma") || strings.Contains(lower, "found dip"):
		et.Normalized, et.SizeOrLevel = "BTEC Level 3 Foundation Diploma", "FOUNDDIP"
	case strings.Contains(lower, "90 credit") || strings.Contains(lower, "90cr"):
		et.Normalized, et.SizeOrLevel = "BTEC Level 3 90 Credit Diploma", "NINETY_CR"
	case strings.Contains(lower, "diploma"):
		et.Normalized, et.SizeOrLevel = "BTEC Level 3 Diploma", "DIP"
	default:
		// Extended Certificate under the 2016 suite; the nearest 2010
		// equivalent is the Certificate.
		if year == "2010" {
			et.Normalized, et.SizeOrLevel = "BTEC Level 3 Extended Certificate", "CERT"
		} else {
			et.Normalized, et.SizeOrLevel = "BTEC Level 3 Extended Certificate", "EXTCERT"
		}
	}

	switch {
	case year == "2010":
		et.Family = FamilyBtec2010
	case et.SizeOrLevel == "FOUNDDIP":
		et.Family = FamilyBtec2016OneYear
	case et.SizeOrLevel == "SUBDIP" || et.SizeOrLevel == "NINETY_CR":
		// Sizes that only exist in the QCF suite.
		et.Family = FamilyBtec2010
	default:
		et.Family = FamilyBtec2016
	}
}

func normalizeCache(lower string, et *ExamType) {
	et.Family = FamilyCache
	switch {
	case strings.Contains(lower, "extended diploma") || strings.Contains(lower, "ext dip"):
		et.Normalized, et.SizeOrLevel = "CACHE Level 3 Extended Diploma", "EXTDIP"
	case strings.Contains(lower, "diploma"):
		et.Normalized, et.SizeOrLevel = "CACHE Level 3 Diploma", "DIP"
	case strings.Contains(lower, "award"):
		et.Normalized, et.SizeOrLevel = "CACHE Level 3 Award", "AWARD"
	default:
		et.Normalized, et.SizeOrLevel = "CACHE Level 3 Certificate", "CERT"
	}
}
