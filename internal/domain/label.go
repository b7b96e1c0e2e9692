package domain

import (
	"fmt"
	"strings"
)

// SubjectLabel is a parsed subject-qualification label such as
// "A - Biology", "IB HL - Mathematics" or "BTEC Dip - Business (2010)".
// SizeOrLevel carries the canonical discriminator the family resolver
// expects ("HL", "DIP", "NINETY_CR", ...); empty for A-Level-rooted labels.
type SubjectLabel struct {
	Raw         string
	Family      QualificationFamily
	SizeOrLevel string
	Subject     string
}

// labelRule maps a label prefix to a family and resolver discriminator.
// Checked in order; longer prefixes come before their shorter relatives
// ("BTEC ExtDip" before "BTEC Dip" would not matter, but "UAL L3 ExtDip"
// must precede "UAL L3 Dip").
type labelRule struct {
	prefix      string
	family      QualificationFamily
	sizeOrLevel string
}

var labelRules = []labelRule{
	{"A - ", FamilyALevel, ""},
	{"AS - ", FamilyASLevel, ""},
	{"EPQ - ", FamilyEPQ, ""},
	{"EPQ", FamilyEPQ, ""},
	{"L3 - Core Mathematics", FamilyCoreMaths, ""},
	{"LIBF Dip - ", FamilyLIBF, ""},
	{"LIBF Dip", FamilyLIBF, ""},
	{"IB HL - ", FamilyIB, "HL"},
	{"IB SL - ", FamilyIB, "SL"},
	{"Pre-U SC - ", FamilyPreU, "SC"},
	{"Pre-U - ", FamilyPreU, "FULL"},
	{"BTEC ExtCert - ", FamilyBtec2016, "EXTCERT"},
	{"BTEC ExtDip - ", FamilyBtec2016, "EXTDIP"},
	{"BTEC Dip - ", FamilyBtec2016, "DIP"},
	{"BTEC Cert - ", FamilyBtec2016OneYear, "CERT"},
	{"BTEC FoundDip - ", FamilyBtec2016OneYear, "FOUNDDIP"},
	{"BTEC SubDip - ", FamilyBtec2010, "SUBDIP"},
	{"BTEC 90Cr - ", FamilyBtec2010, "NINETY_CR"},
	{"UAL L3 ExtDip - ", FamilyUAL, "EXTDIP"},
	{"UAL L3 Dip - ", FamilyUAL, "DIP"},
	{"WJEC L3 Cert - ", FamilyWJEC, "CERT"},
	{"WJEC L3 Dip - ", FamilyWJEC, "DIP"},
	{"CACHE Award - ", FamilyCache, "AWARD"},
	{"CACHE Cert - ", FamilyCache, "CERT"},
	{"CACHE Dip - ", FamilyCache, "DIP"},
	{"CACHE ExtDip - ", FamilyCache, "EXTDIP"},
}

// ParseSubjectLabel resolves a label to its qualification family and size
// discriminator. BTEC labels default to the 2016 suite; a "(2010)" suffix
// moves the matching sizes onto the 2010 tables, where the label's size
// token keys the QCF table instead.
func ParseSubjectLabel(label string) (SubjectLabel, error) {
	trimmed := strings.TrimSpace(label)
	if trimmed == "" {
		return SubjectLabel{}, fmt.Errorf("%w: empty label", ErrUnrecognizedQualification)
	}

	for _, rule := range labelRules {
		if !strings.HasPrefix(trimmed, rule.prefix) {
			continue
		}
		parsed := SubjectLabel{
			Raw:         trimmed,
			Family:      rule.family,
			SizeOrLevel: rule.sizeOrLevel,
			Subject:     subjectPart(trimmed, rule.prefix),
		}
		if strings.HasPrefix(trimmed, "BTEC ") {
			applyBtecYear(&parsed, trimmed)
		}
		return parsed, nil
	}

	return SubjectLabel{}, fmt.Errorf("%w: %q", ErrUnrecognizedQualification, label)
}

// applyBtecYear rebinds 2016-suite BTEC labels onto the 2010 family when the
// label carries a "(2010)" suffix. Size tokens that only exist in one suite
// (SUBDIP, NINETY_CR, FOUNDDIP, EXTCERT) keep their parsed family.
func applyBtecYear(parsed *SubjectLabel, label string) {
	if !strings.Contains(label, "(2010)") {
		return
	}
	switch parsed.SizeOrLevel {
	case "CERT":
		parsed.Family = FamilyBtec2010
	case "DIP", "EXTDIP":
		if parsed.Family == FamilyBtec2016 {
			parsed.Family = FamilyBtec2010
		}
	}
}

func subjectPart(label, prefix string) string {
	s := strings.TrimPrefix(label, prefix)
	// Strip a trailing year tag like "(2010)" or "(2016)".
	if i := strings.LastIndex(s, " ("); i >= 0 && strings.HasSuffix(s, ")") {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
