package calendar

import (
	"errors"
	"fmt"
	"time"

	"github.com/warp/calendar-algebra/generic"
)

// ErrInvalidPeriod is returned when a period is malformed (end before start).
var ErrInvalidPeriod = errors.New("invalid period: end before start")

// =============================================================================
// PERIOD - Finite, inclusive run of days
// =============================================================================

// Period is the inclusive range [Start, End]. It is the finite bound every
// enumeration of dates runs over.
//
// Examples:
//   - Calendar year 2025: Jan 1 - Dec 31
//   - Fiscal year 2025: Apr 1 - Mar 31
//   - Anniversary year: Hire date + 1 year
type Period struct {
	Start Date
	End   Date
}

// NewPeriod fails with ErrInvalidPeriod when end is before start.
func NewPeriod(start, end Date) (Period, error) {
	if end.Before(start) {
		return Period{}, fmt.Errorf("%w: %s > %s", ErrInvalidPeriod, start, end)
	}
	return Period{Start: start, End: end}, nil
}

func YearPeriod(year int) Period {
	return Period{Start: StartOfYear(year), End: EndOfYear(year)}
}

func MonthPeriod(year int, month time.Month) Period {
	return Period{Start: StartOfMonth(year, month), End: EndOfMonth(year, month)}
}

// PeriodOf converts a bounded interval of dates to the period of days it
// includes. ok is false if either side is unbounded or no day is included.
func PeriodOf(iv generic.Interval[Date]) (Period, bool) {
	lower, lowerBounded := iv.LowerLimit()
	upper, upperBounded := iv.UpperLimit()
	if !lowerBounded || !upperBounded || iv.IsEmpty() {
		return Period{}, false
	}
	if !iv.IncludesLowerLimit() {
		lower = lower.AddDays(1)
	}
	if !iv.IncludesUpperLimit() {
		upper = upper.AddDays(-1)
	}
	if upper.Before(lower) {
		return Period{}, false
	}
	return Period{Start: lower, End: upper}, true
}

// Contains returns true if the date is within the period [Start, End]
func (p Period) Contains(d Date) bool {
	return d.AfterOrEqual(p.Start) && d.BeforeOrEqual(p.End)
}

// IsEmpty reports whether End is before Start.
func (p Period) IsEmpty() bool {
	return p.End.Before(p.Start)
}

// Length returns the number of days in the period.
func (p Period) Length() int {
	if p.IsEmpty() {
		return 0
	}
	return DaysBetween(p.Start, p.End) + 1
}

// Interval returns the period as the closed interval [Start, End].
func (p Period) Interval() generic.Interval[Date] {
	if p.IsEmpty() {
		return Dates.Empty()
	}
	return Dates.Closed(p.Start, p.End)
}

// Days returns all days in the period.
func (p Period) Days() []Date {
	var days []Date
	for current := p.Start; current.BeforeOrEqual(p.End); current = current.AddDays(1) {
		days = append(days, current)
	}
	return days
}

// String returns a string representation of the period.
func (p Period) String() string {
	return "[" + p.Start.String() + ", " + p.End.String() + "]"
}

// NextPeriod returns the period of the same length starting the day after p
// ends.
func (p Period) NextPeriod() Period {
	return p.shift(p.Length())
}

// PreviousPeriod returns the period of the same length ending the day before
// p starts.
func (p Period) PreviousPeriod() Period {
	return p.shift(-p.Length())
}

func (p Period) shift(days int) Period {
	return Period{Start: p.Start.AddDays(days), End: p.End.AddDays(days)}
}

// =============================================================================
// PERIOD CONFIG - Which period a date falls into
// =============================================================================

// PeriodType selects how PeriodConfig cuts the calendar into periods.
type PeriodType string

const (
	PeriodCalendarYear PeriodType = "calendar_year" // 1 Jan to 31 Dec
	PeriodFiscalYear   PeriodType = "fiscal_year"   // twelve months from FiscalYearStartMonth
	PeriodAnniversary  PeriodType = "anniversary"   // twelve months from each anniversary of AnchorDate
	PeriodRolling      PeriodType = "rolling"       // twelve months ending on the date itself
)

// PeriodConfig maps a date to the year-long period containing it.
type PeriodConfig struct {
	Type PeriodType

	FiscalYearStartMonth time.Month // fiscal_year; out of range means January
	AnchorDate           *Date      // anniversary; nil falls back to the calendar year
}

// PeriodFor returns the period that contains date.
func (pc PeriodConfig) PeriodFor(date Date) Period {
	switch pc.Type {
	case PeriodFiscalYear:
		month := pc.FiscalYearStartMonth
		if month < time.January || month > time.December {
			month = time.January
		}
		return yearFrom(date, month, 1)
	case PeriodAnniversary:
		if pc.AnchorDate == nil {
			return YearPeriod(date.Year())
		}
		return yearFrom(date, pc.AnchorDate.Month(), pc.AnchorDate.Day())
	case PeriodRolling:
		return Period{Start: date.AddYears(-1).AddDays(1), End: date}
	default:
		return YearPeriod(date.Year())
	}
}

// yearFrom returns the year-long period containing date that starts on the
// latest month/day not after it.
func yearFrom(date Date, month time.Month, day int) Period {
	start := NewDate(date.Year(), month, day)
	if date.Before(start) {
		start = NewDate(date.Year()-1, month, day)
	}
	return Period{Start: start, End: start.AddYears(1).AddDays(-1)}
}
