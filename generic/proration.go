/*
proration.go - Exact distribution of a quantity into parts

PURPOSE:
  Splits a decimal quantity into parts that sum back EXACTLY to the
  original. Rounding never loses or invents a unit: each part gets the
  share floored at the working scale, and the leftover is handed out one
  smallest unit (10^-scale) at a time to the leading parts. Floor keeps the
  leftover non-negative, so a negative total also puts its larger parts
  first: -10 into 3 is [-3, -3, -4].

REPRODUCIBILITY:
  The same (total, n) always yields the same parts in the same order. The
  larger parts always occupy the lowest indices.

EXAMPLE:
  parts, _ := generic.DividedEvenlyIntoParts(decimal.RequireFromString("100.00"), 3)
  // [33.34, 33.33, 33.33]

  third := generic.MustRatio(generic.RatioOf(1, 3))
  share, _ := generic.PartOfWhole(decimal.NewFromInt(100), third, 2, generic.RoundingHalfUp)
  // 33.33

SEE ALSO:
  - ratio.go: Ratio and Quotient rounding
  - accrual/yearly.go: Monthly accrual amounts from an annual figure
*/
package generic

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ScaleOf returns the number of digits after the decimal point in d as
// written: 80000.00 has scale 2, 80000 has scale 0.
func ScaleOf(d decimal.Decimal) int32 {
	if exp := d.Exponent(); exp < 0 {
		return -exp
	}
	return 0
}

// DividedEvenlyIntoParts splits total into n parts at the scale of total.
func DividedEvenlyIntoParts(total decimal.Decimal, n int) ([]decimal.Decimal, error) {
	return DividedEvenlyIntoPartsAtScale(total, n, ScaleOf(total))
}

// DividedEvenlyIntoPartsAtScale splits total into n parts of scale digits.
// total must itself be representable at scale.
func DividedEvenlyIntoPartsAtScale(total decimal.Decimal, n int, scale int32) ([]decimal.Decimal, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPartCount, n)
	}
	if err := requireScale(total, scale); err != nil {
		return nil, err
	}
	share, err := Quotient(total, decimal.NewFromInt(int64(n)), scale, RoundingFloor)
	if err != nil {
		return nil, err
	}
	parts := make([]decimal.Decimal, n)
	for i := range parts {
		parts[i] = share
	}
	return distributeRemainder(parts, total, scale), nil
}

// ProratedOver splits total in proportion to weights. Parts are floored at
// the scale of total and the remainder is distributed over the leading parts.
func ProratedOver(total decimal.Decimal, weights []decimal.Decimal) ([]decimal.Decimal, error) {
	if len(weights) == 0 {
		return nil, fmt.Errorf("%w: no weights", ErrInvalidPartCount)
	}
	whole := Sum(weights)
	if whole.IsZero() {
		return nil, fmt.Errorf("%w: weights sum to zero", ErrZeroDenominator)
	}
	scale := ScaleOf(total)
	parts := make([]decimal.Decimal, len(weights))
	for i, w := range weights {
		part, err := Quotient(total.Mul(w), whole, scale, RoundingFloor)
		if err != nil {
			return nil, err
		}
		parts[i] = part
	}
	return distributeRemainder(parts, total, scale), nil
}

// PartOfWhole returns total scaled by ratio at scale digits, rounded by mode.
func PartOfWhole(total decimal.Decimal, ratio Ratio, scale int32, mode RoundingMode) (decimal.Decimal, error) {
	return Quotient(total.Mul(ratio.numerator), ratio.denominator, scale, mode)
}

// PartOfWholeOf is PartOfWhole with the ratio portion/whole.
func PartOfWholeOf(total decimal.Decimal, portion, whole int64, scale int32, mode RoundingMode) (decimal.Decimal, error) {
	ratio, err := RatioOf(portion, whole)
	if err != nil {
		return decimal.Zero, err
	}
	return PartOfWhole(total, ratio, scale, mode)
}

// Sum adds up values.
func Sum(values []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}

// distributeRemainder adds one smallest unit to each leading part until the
// parts sum to total. Parts are floored, so the remainder is never negative
// and always fewer units than parts.
func distributeRemainder(parts []decimal.Decimal, total decimal.Decimal, scale int32) []decimal.Decimal {
	remainder := total.Sub(Sum(parts))
	if !remainder.IsPositive() {
		return parts
	}
	unit := decimal.New(1, -scale)
	count := remainder.Div(unit).IntPart()
	for i := int64(0); i < count && i < int64(len(parts)); i++ {
		parts[i] = parts[i].Add(unit)
	}
	return parts
}

func requireScale(total decimal.Decimal, scale int32) error {
	if total.Equal(total.Truncate(scale)) {
		return nil
	}
	return &RoundingError{Numerator: total.String(), Denominator: "1", Scale: scale}
}
