/*
errors.go - Centralized error types for the attainment engine

PURPOSE:
  All error types in one place for consistency and discoverability.
  The engine favors total functions: a zero target is a defined
  0-attainment outcome, an empty filter result is an empty slice.
  The only errors worth signaling are malformed inputs crossing the
  boundary into the engine - unparseable dates, out-of-range
  adjustment fields, reversed custom ranges.

USAGE:
  Callers classify with errors.Is:

    if errors.Is(err, attain.ErrMalformedDate) {
        // 400, not 500
    }

SEE ALSO:
  - date.go: ParseDate returns DateParseError
  - factory/targets.go: Validates adjustments and returns AdjustmentError
*/
package attain

import (
	"errors"
	"fmt"
	"time"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrMalformedDate is returned when a date string is not a valid
	// "YYYY-MM-DD" calendar date.
	ErrMalformedDate = errors.New("malformed date")

	// ErrInvalidAdjustment is returned when a monthly adjustment carries an
	// out-of-range month, day or negative override.
	ErrInvalidAdjustment = errors.New("invalid monthly adjustment")

	// ErrDuplicateAdjustment is returned when two adjustments cover the same
	// (year, month). The resolver assumes at most one per month.
	ErrDuplicateAdjustment = errors.New("duplicate monthly adjustment")

	// ErrInvalidRange is returned for a custom time frame with a missing
	// bound or with start after end.
	ErrInvalidRange = errors.New("invalid date range")

	// ErrUnknownTimeFrame is returned when a selector string does not name
	// one of the supported time frames.
	ErrUnknownTimeFrame = errors.New("unknown time frame")

	// ErrNegativeRevenue is returned when a revenue record carries a
	// negative figure for either location.
	ErrNegativeRevenue = errors.New("negative revenue")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// DateParseError reports why a date string was rejected.
type DateParseError struct {
	Input  string
	Reason string
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("malformed date %q: %s", e.Input, e.Reason)
}

func (e *DateParseError) Unwrap() error { return ErrMalformedDate }

// AdjustmentError reports which monthly adjustment failed validation and why.
type AdjustmentError struct {
	Year   int
	Month  time.Month
	Reason string
}

func (e *AdjustmentError) Error() string {
	return fmt.Sprintf("adjustment %s %d: %s", e.Month, e.Year, e.Reason)
}

func (e *AdjustmentError) Unwrap() error { return ErrInvalidAdjustment }

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid caller input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrMalformedDate) ||
		errors.Is(err, ErrInvalidAdjustment) ||
		errors.Is(err, ErrDuplicateAdjustment) ||
		errors.Is(err, ErrInvalidRange) ||
		errors.Is(err, ErrUnknownTimeFrame) ||
		errors.Is(err, ErrNegativeRevenue)
}
