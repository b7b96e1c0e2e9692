package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Percentile selects which parallel benchmark table set is active for a
// calculation. A single calculation must use the same percentile for the
// attainment band lookup and the subject value-added factor; mixing
// percentiles across the two stages is an invariant violation.
type Percentile int

const (
	Percentile60  Percentile = 60
	Percentile75  Percentile = 75
	Percentile90  Percentile = 90
	Percentile100 Percentile = 100
)

// StandardPercentile is the percentile used for standard MEGs (the 75th,
// matching the national top-quartile benchmark).
const StandardPercentile = Percentile75

// AllPercentiles returns the four supported percentiles in ascending order.
func AllPercentiles() []Percentile {
	return []Percentile{Percentile60, Percentile75, Percentile90, Percentile100}
}

// Valid reports whether p is one of the four supported percentiles.
func (p Percentile) Valid() bool {
	switch p {
	case Percentile60, Percentile75, Percentile90, Percentile100:
		return true
	}
	return false
}

func (p Percentile) String() string {
	return strconv.Itoa(int(p)) + "th"
}

// ParsePercentile parses "60", "75th", "90", "100th" into a Percentile.
func ParsePercentile(s string) (Percentile, error) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "th")
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPercentile, s)
	}
	p := Percentile(n)
	if !p.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidPercentile, n)
	}
	return p, nil
}
