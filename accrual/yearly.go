package accrual

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/warp/calendar-algebra/calendar"
	"github.com/warp/calendar-algebra/generic"
	"github.com/warp/calendar-algebra/recurrence"
)

var (
	januaryFirst = recurrence.Must(recurrence.Annual(time.January, 1))
	firstOfMonth = recurrence.Must(recurrence.Cron("1 * *"))
)

// =============================================================================
// YEARLY ACCRUAL
// =============================================================================

// YearlyAccrual implements Schedule for "X days per year".
type YearlyAccrual struct {
	AnnualDays decimal.Decimal
	Frequency  Frequency
}

func (ya *YearlyAccrual) GenerateAccruals(p calendar.Period) ([]Event, error) {
	if ya.AnnualDays.IsNegative() {
		return nil, fmt.Errorf("%w: negative annual days %s", ErrInvalidSchedule, ya.AnnualDays)
	}
	switch ya.Frequency {
	case FreqUpfront:
		return ya.upfront(p), nil
	case FreqMonthly, "":
		return monthly(p, func(calendar.Date) (decimal.Decimal, bool) { return ya.AnnualDays, true }, "monthly accrual")
	default:
		return nil, fmt.Errorf("%w: unknown frequency %q", ErrInvalidSchedule, ya.Frequency)
	}
}

// IsDeterministic returns true - yearly accruals are predictable.
func (ya *YearlyAccrual) IsDeterministic() bool {
	return true
}

func (ya *YearlyAccrual) upfront(p calendar.Period) []Event {
	var events []Event
	for d := range januaryFirst.IterateOver(p) {
		events = append(events, Event{
			At:     d,
			Amount: generic.NewAmountFromDecimal(ya.AnnualDays, generic.UnitDays),
			Reason: "annual grant",
		})
	}
	return events
}

// monthly grants on the 1st of each month in p. annualFor returns the annual
// figure in force on a grant date; the month's share is its part of the
// twelve-way exact split, so twelve consecutive grants of one figure always
// add up to that figure.
func monthly(p calendar.Period, annualFor func(calendar.Date) (decimal.Decimal, bool), reason string) ([]Event, error) {
	var events []Event
	splits := make(map[string][]decimal.Decimal)
	for d := range firstOfMonth.IterateOver(p) {
		annual, ok := annualFor(d)
		if !ok {
			continue
		}
		key := annual.String()
		parts, cached := splits[key]
		if !cached {
			var err error
			parts, err = generic.DividedEvenlyIntoPartsAtScale(annual, 12, Scale)
			if err != nil {
				return nil, fmt.Errorf("splitting %s days: %w", annual, err)
			}
			splits[key] = parts
		}
		events = append(events, Event{
			At:     d,
			Amount: generic.NewAmountFromDecimal(parts[d.Month()-1], generic.UnitDays),
			Reason: reason,
		})
	}
	return events, nil
}

// =============================================================================
// FIRST-YEAR PRORATION
// =============================================================================

// RemainingMonths returns the whole months of the hire year left after the
// hire date. A hire on the 1st counts its own month.
func RemainingMonths(hireDate calendar.Date) int {
	months := int(time.December - hireDate.Month())
	if hireDate.Day() == 1 {
		months++
	}
	return months
}

// ProrateFirstYear returns the share of annual earned in the hire year:
// annual * RemainingMonths / 12, rounded by mode at Scale.
func ProrateFirstYear(annual decimal.Decimal, hireDate calendar.Date, mode generic.RoundingMode) (decimal.Decimal, error) {
	return generic.PartOfWholeOf(annual, int64(RemainingMonths(hireDate)), 12, Scale, mode)
}
