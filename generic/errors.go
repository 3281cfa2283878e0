/*
errors.go - Centralized error types for the generic algebra

PURPOSE:
  All error types in one place for consistency and discoverability.
  Domain packages (recurrence, accrual, factory) wrap these errors with
  additional context.

ERROR CATEGORIES:
  1. Construction errors - Malformed intervals, zero denominators, bad part counts
  2. Argument errors - Absent operands handed to combinators
  3. Rounding errors - An exact result was demanded but does not exist

ABSENCE IS NOT AN ERROR:
  A key not covered by an IntervalMap, or a specification without a match
  in a period, is reported as (zero, false). Nothing in this file is used
  for those outcomes.

USAGE:
  if errors.Is(err, generic.ErrZeroDenominator) {
      ...
  }

SEE ALSO:
  - interval.go: Uses ErrInvalidInterval / ErrEmptyInterval
  - ratio.go: Uses ErrZeroDenominator / ErrRoundingNecessary
  - proration.go: Uses ErrInvalidPartCount
*/
package generic

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidInterval is returned when the lower limit of an interval is
	// greater than its upper limit.
	ErrInvalidInterval = errors.New("invalid interval: lower limit above upper limit")

	// ErrEmptyInterval is returned when a non-empty interval was requested but
	// the limits are equal and at least one of them is excluded.
	ErrEmptyInterval = errors.New("interval is empty")

	// ErrZeroDenominator is returned when constructing a Ratio over zero.
	ErrZeroDenominator = errors.New("ratio denominator is zero")

	// ErrRoundingNecessary is returned when RoundingUnnecessary is requested
	// but the exact result cannot be represented at the requested scale.
	ErrRoundingNecessary = errors.New("rounding necessary")

	// ErrInvalidPartCount is returned when dividing into fewer than one part.
	ErrInvalidPartCount = errors.New("part count must be positive")

	// ErrInvalidArgument is returned (or panicked with) when a required
	// argument is absent.
	ErrInvalidArgument = errors.New("invalid argument")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// IntervalError provides the limits of an interval that failed construction.
type IntervalError struct {
	Lower string
	Upper string
	Err   error
}

func (e *IntervalError) Error() string {
	return fmt.Sprintf("%v: lower %s, upper %s", e.Err, e.Lower, e.Upper)
}

func (e *IntervalError) Unwrap() error {
	return e.Err
}

// RoundingError provides the operands of a quotient that could not be
// represented exactly.
type RoundingError struct {
	Numerator   string
	Denominator string
	Scale       int32
}

func (e *RoundingError) Error() string {
	return fmt.Sprintf("rounding necessary: %s/%s at scale %d", e.Numerator, e.Denominator, e.Scale)
}

func (e *RoundingError) Unwrap() error {
	return ErrRoundingNecessary
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsConstructionError returns true if the error was raised while building a
// value (interval, ratio, part split) from bad input.
func IsConstructionError(err error) bool {
	return errors.Is(err, ErrInvalidInterval) ||
		errors.Is(err, ErrEmptyInterval) ||
		errors.Is(err, ErrZeroDenominator) ||
		errors.Is(err, ErrInvalidPartCount)
}
