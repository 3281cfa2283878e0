/*
Package generic provides the domain-agnostic algebra of the engine.

PURPOSE:
  This package contains the types and algorithms every other package is
  built on: intervals over any ordered value, interval-keyed maps, exact
  ratios, and proration that never leaks a unit to rounding. Calendar
  dates, recurrence rules and accrual schedules live in their own
  packages and only consume what is defined here.

KEY CONCEPTS IN THIS FILE (types.go):
  - Amount: A quantity with a unit (e.g., 5 days, 7.5 hours)

DESIGN PRINCIPLES:
  1. Immutability: Every value type is immutable after construction
  2. Precision: Uses decimal.Decimal to avoid floating-point errors
  3. Explicit rounding: Nothing rounds without a caller-supplied mode
  4. Absence is not failure: lookups return (value, ok)

USAGE:
  amount := generic.NewAmountFromInt(20, generic.UnitDays)
  monthly, _ := amount.DividedEvenlyIntoParts(12, 2)

SEE ALSO:
  - interval.go: Interval algebra
  - interval_map.go: IntervalMap
  - ratio.go: Ratio and rounding modes
  - proration.go: Exact distribution
*/
package generic

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// AMOUNT - Quantity with unit
// =============================================================================

type Amount struct {
	Value decimal.Decimal
	Unit  Unit
}

type Unit string

const (
	UnitDays  Unit = "days"
	UnitHours Unit = "hours"
)

func NewAmountFromInt(value int, unit Unit) Amount {
	return Amount{Value: decimal.NewFromInt(int64(value)), Unit: unit}
}

func NewAmountFromDecimal(value decimal.Decimal, unit Unit) Amount {
	return Amount{Value: value, Unit: unit}
}

func (a Amount) Zero() Amount        { return Amount{Value: decimal.Zero, Unit: a.Unit} }
func (a Amount) Add(b Amount) Amount { return Amount{Value: a.Value.Add(b.Value), Unit: a.Unit} }
func (a Amount) Equal(b Amount) bool { return a.Unit == b.Unit && a.Value.Equal(b.Value) }

func (a Amount) String() string {
	return a.Value.String() + " " + string(a.Unit)
}

// DividedEvenlyIntoParts splits the amount into n parts of scale digits that
// sum exactly to the amount.
func (a Amount) DividedEvenlyIntoParts(n int, scale int32) ([]Amount, error) {
	values, err := DividedEvenlyIntoPartsAtScale(a.Value, n, scale)
	if err != nil {
		return nil, err
	}
	parts := make([]Amount, len(values))
	for i, v := range values {
		parts[i] = Amount{Value: v, Unit: a.Unit}
	}
	return parts, nil
}

// PartOfWhole returns the amount scaled by ratio.
func (a Amount) PartOfWhole(ratio Ratio, scale int32, mode RoundingMode) (Amount, error) {
	v, err := PartOfWhole(a.Value, ratio, scale, mode)
	if err != nil {
		return Amount{}, err
	}
	return Amount{Value: v, Unit: a.Unit}, nil
}
