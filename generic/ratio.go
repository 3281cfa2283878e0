package generic

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// =============================================================================
// ROUNDING MODE
// =============================================================================

// RoundingMode selects how a quotient is brought to a fixed scale. There is
// no default: every operation that rounds takes one explicitly.
type RoundingMode int

const (
	RoundingUp          RoundingMode = iota + 1 // away from zero
	RoundingDown                                // toward zero
	RoundingCeiling                             // toward +∞
	RoundingFloor                               // toward -∞
	RoundingHalfUp                              // nearest, ties away from zero
	RoundingHalfDown                            // nearest, ties toward zero
	RoundingHalfEven                            // nearest, ties to the even neighbour
	RoundingUnnecessary                         // exact results only
)

func (m RoundingMode) String() string {
	switch m {
	case RoundingUp:
		return "up"
	case RoundingDown:
		return "down"
	case RoundingCeiling:
		return "ceiling"
	case RoundingFloor:
		return "floor"
	case RoundingHalfUp:
		return "half_up"
	case RoundingHalfDown:
		return "half_down"
	case RoundingHalfEven:
		return "half_even"
	case RoundingUnnecessary:
		return "unnecessary"
	default:
		return fmt.Sprintf("rounding(%d)", int(m))
	}
}

// ParseRoundingMode is the inverse of RoundingMode.String.
func ParseRoundingMode(s string) (RoundingMode, error) {
	for m := RoundingUp; m <= RoundingUnnecessary; m++ {
		if m.String() == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown rounding mode %q", ErrInvalidArgument, s)
}

// Quotient returns numerator/denominator at the given scale (digits after the
// decimal point), rounded by mode.
func Quotient(numerator, denominator decimal.Decimal, scale int32, mode RoundingMode) (decimal.Decimal, error) {
	if denominator.IsZero() {
		return decimal.Zero, ErrZeroDenominator
	}
	// numerator = denominator*q + r, with q truncated toward zero at scale.
	q, r := numerator.QuoRem(denominator, scale)
	if r.IsZero() {
		return q, nil
	}

	sign := int64(numerator.Sign() * denominator.Sign())
	step := decimal.New(sign, -scale)
	awayFromZero := q.Add(step)

	switch mode {
	case RoundingDown:
		return q, nil
	case RoundingUp:
		return awayFromZero, nil
	case RoundingCeiling:
		if sign > 0 {
			return awayFromZero, nil
		}
		return q, nil
	case RoundingFloor:
		if sign < 0 {
			return awayFromZero, nil
		}
		return q, nil
	case RoundingHalfUp, RoundingHalfDown, RoundingHalfEven:
		// Compare the discarded fraction of one step with one half.
		twice := r.Abs().Mul(decimal.NewFromInt(2))
		unit := denominator.Abs().Shift(-scale)
		switch c := twice.Cmp(unit); {
		case c > 0:
			return awayFromZero, nil
		case c < 0:
			return q, nil
		}
		switch mode {
		case RoundingHalfUp:
			return awayFromZero, nil
		case RoundingHalfDown:
			return q, nil
		default:
			if q.Shift(scale).Mod(decimal.NewFromInt(2)).IsZero() {
				return q, nil
			}
			return awayFromZero, nil
		}
	case RoundingUnnecessary:
		return decimal.Zero, &RoundingError{
			Numerator:   numerator.String(),
			Denominator: denominator.String(),
			Scale:       scale,
		}
	default:
		return decimal.Zero, fmt.Errorf("%w: rounding mode %v", ErrInvalidArgument, mode)
	}
}

// =============================================================================
// RATIO - Exact fraction of two decimals
// =============================================================================

// Ratio is an immutable numerator/denominator pair. Equality is structural:
// 2/4 and 1/2 evaluate to the same value but are not Equal.
type Ratio struct {
	numerator   decimal.Decimal
	denominator decimal.Decimal
}

// NewRatio fails with ErrZeroDenominator when denominator is zero.
func NewRatio(numerator, denominator decimal.Decimal) (Ratio, error) {
	if denominator.IsZero() {
		return Ratio{}, fmt.Errorf("%w: %s/%s", ErrZeroDenominator, numerator, denominator)
	}
	return Ratio{numerator: numerator, denominator: denominator}, nil
}

// RatioOf is NewRatio over integers.
func RatioOf(numerator, denominator int64) (Ratio, error) {
	return NewRatio(decimal.NewFromInt(numerator), decimal.NewFromInt(denominator))
}

// RatioFromDecimal returns fractional/1.
func RatioFromDecimal(fractional decimal.Decimal) Ratio {
	return Ratio{numerator: fractional, denominator: decimal.NewFromInt(1)}
}

// MustRatio panics if err is non-nil. For literals known to be valid.
func MustRatio(r Ratio, err error) Ratio {
	if err != nil {
		panic(err)
	}
	return r
}

func (r Ratio) Numerator() decimal.Decimal   { return r.numerator }
func (r Ratio) Denominator() decimal.Decimal { return r.denominator }

// DecimalValue evaluates the ratio at scale digits, rounded by mode.
func (r Ratio) DecimalValue(scale int32, mode RoundingMode) (decimal.Decimal, error) {
	return Quotient(r.numerator, r.denominator, scale, mode)
}

// Times scales the numerator by multiplier.
func (r Ratio) Times(multiplier decimal.Decimal) Ratio {
	return Ratio{numerator: r.numerator.Mul(multiplier), denominator: r.denominator}
}

// TimesRatio multiplies two ratios without reducing.
func (r Ratio) TimesRatio(other Ratio) Ratio {
	return Ratio{
		numerator:   r.numerator.Mul(other.numerator),
		denominator: r.denominator.Mul(other.denominator),
	}
}

// Equal compares numerator with numerator and denominator with denominator.
func (r Ratio) Equal(other Ratio) bool {
	return r.numerator.Equal(other.numerator) && r.denominator.Equal(other.denominator)
}

func (r Ratio) String() string {
	return r.numerator.String() + "/" + r.denominator.String()
}
