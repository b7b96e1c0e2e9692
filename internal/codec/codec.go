// Package codec converts qualification-scoped letter-grade strings to point
// values. Lookups are exact: grade strings must match table entries
// character-for-character (asterisks and slashes included), and unknown
// strings yield a missing result rather than an error.
package codec

import "strings"

// SizeScope scopes a grade string to a qualification size. The same string
// means different points under different scopes ("D*D*" is 280 under DIP but
// 210 under NINETY_CR).
type SizeScope string

const (
	ScopeCert     SizeScope = "CERT"
	ScopeSubDip   SizeScope = "SUBDIP"
	ScopeNinetyCr SizeScope = "NINETY_CR"
	ScopeDip      SizeScope = "DIP"
	ScopeExtDip   SizeScope = "EXTDIP"
)

// ParseSizeScope parses a size scope case-insensitively.
func ParseSizeScope(s string) (SizeScope, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "CERT":
		return ScopeCert, true
	case "SUBDIP":
		return ScopeSubDip, true
	case "NINETY_CR", "90CR":
		return ScopeNinetyCr, true
	case "DIP":
		return ScopeDip, true
	case "EXTDIP":
		return ScopeExtDip, true
	}
	return "", false
}

// Table is the size-scoped grade/points lookup.
type Table map[SizeScope]map[string]float64

// Points resolves a grade string under a size scope. The second return is
// false when either the scope or the exact grade string is unknown.
func (t Table) Points(scope SizeScope, grade string) (float64, bool) {
	grades, ok := t[scope]
	if !ok {
		return 0, false
	}
	pts, ok := grades[grade]
	return pts, ok
}

// GradeTable maps a normalized qualification type ("A Level", "IB HL", ...)
// to its grade/points scale. Used for current-grade and MEG-grade point
// conversion in profile summaries.
type GradeTable map[string]map[string]float64

// wordGradeAliases maps spelled-out vocational grades onto their letter
// forms, as the upstream records sometimes carry them.
var wordGradeAliases = map[string]string{
	"Dist*": "D*",
	"Dist":  "D",
	"Merit": "M",
	"Pass":  "P",
}

// Points resolves a grade under a qualification type. An empty grade is
// treated as unclassified ("U"); spelled-out grades fall back to their
// letter aliases. Unknown qualification types or grades return false.
func (t GradeTable) Points(qualType, grade string) (float64, bool) {
	scale, ok := t[qualType]
	if !ok {
		return 0, false
	}

	grade = strings.TrimSpace(grade)
	if grade == "" {
		grade = "U"
	}
	if pts, ok := scale[grade]; ok {
		return pts, true
	}
	if alias, ok := wordGradeAliases[grade]; ok {
		if pts, ok := scale[alias]; ok {
			return pts, true
		}
	}
	return 0, false
}
