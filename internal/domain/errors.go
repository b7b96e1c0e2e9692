package domain

import "errors"

// -----------------------------------------------------------------------------
// Domain Errors
// These errors represent benchmark-resolution failures and are used by the
// resolvers and the aggregator to communicate data-integrity conditions.
// -----------------------------------------------------------------------------

// Input validation errors
var (
	ErrInvalidScore       = errors.New("invalid prior attainment score")
	ErrInvalidPercentile  = errors.New("invalid percentile")
	ErrInvalidSizeOrLevel = errors.New("invalid qualification size or level")
)

// Resolution errors
var (
	// ErrNoBandMatch means a finite, non-negative score matched no band of a
	// table that should cover [0, inf). A covering table makes this
	// unreachable; hitting it is a data bug, not a caller mistake.
	ErrNoBandMatch = errors.New("no attainment band matched score")

	ErrUnrecognizedQualification = errors.New("unrecognized qualification label")
	ErrUnknownSubjectFactor      = errors.New("no subject value-added factor for label")
	ErrMissingGradePoints        = errors.New("no grade points entry for MEG grade")
)

// Table errors
var (
	ErrTableNotFound = errors.New("benchmark table not found")
)
