/*
Package calendar provides the day-level calendar date the rest of the
engine reasons about.

PURPOSE:
  A Date is a calendar day with no time of day and no timezone. It
  supports exactly what the recurrence algebra needs: ordering, day of
  week, day/month/year arithmetic, month boundaries and locating the n-th
  weekday of a month.

KEY CONCEPTS:
  - Date: one calendar day, stored as UTC midnight
  - Dates: the generic.Domain that builds intervals of Date
  - Period: inclusive [Start, End] run of days (period.go)
  - Clock: explicit source of "today" (no global time state)

TIMEZONES:
  None. FromTime keeps the calendar day of the time value as it is
  expressed in its own location; it never converts between zones.

SEE ALSO:
  - period.go: Period and PeriodConfig
  - recurrence/spec.go: Predicates over Date
*/
package calendar

import (
	"fmt"
	"time"

	"github.com/warp/calendar-algebra/generic"
)

// =============================================================================
// DATE - One calendar day
// =============================================================================

const layout = "2006-01-02"

type Date struct {
	t time.Time
}

// Dates builds intervals of Date.
var Dates = generic.Comparing[Date]()

// NewDate returns the given day. Out-of-range values normalize the way
// time.Date does (February 30 is March 2).
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// FromTime returns the calendar day of t in t's own location.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

// ParseDate parses YYYY-MM-DD.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(layout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{t: t}, nil
}

// MustParseDate panics on malformed input. For literals.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Comparison
func (d Date) Compare(other Date) int        { return d.t.Compare(other.t) }
func (d Date) Before(other Date) bool        { return d.t.Before(other.t) }
func (d Date) After(other Date) bool         { return d.t.After(other.t) }
func (d Date) Equal(other Date) bool         { return d.t.Equal(other.t) }
func (d Date) BeforeOrEqual(other Date) bool { return !d.After(other) }
func (d Date) AfterOrEqual(other Date) bool  { return !d.Before(other) }

// Arithmetic
func (d Date) AddDays(n int) Date   { return Date{t: d.t.AddDate(0, 0, n)} }
func (d Date) AddMonths(n int) Date { return Date{t: d.t.AddDate(0, n, 0)} }
func (d Date) AddYears(n int) Date  { return Date{t: d.t.AddDate(n, 0, 0)} }

// Properties
func (d Date) Year() int             { return d.t.Year() }
func (d Date) Month() time.Month     { return d.t.Month() }
func (d Date) Day() int              { return d.t.Day() }
func (d Date) Weekday() time.Weekday { return d.t.Weekday() }
func (d Date) IsWeekend() bool       { wd := d.Weekday(); return wd == time.Saturday || wd == time.Sunday }
func (d Date) IsWorkday() bool       { return !d.IsWeekend() }
func (d Date) IsZero() bool          { return d.t.IsZero() }
func (d Date) Time() time.Time       { return d.t }

// WeekdayOccurrence returns which occurrence of its weekday d is within its
// month: 1 for the first Monday, 2 for the second, and so on.
func (d Date) WeekdayOccurrence() int {
	return (d.Day()-1)/7 + 1
}

func (d Date) StartOfMonth() Date { return StartOfMonth(d.Year(), d.Month()) }
func (d Date) EndOfMonth() Date   { return EndOfMonth(d.Year(), d.Month()) }

func (d Date) String() string {
	return d.t.Format(layout)
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// =============================================================================
// MONTH UTILITIES
// =============================================================================

func DaysBetween(from, to Date) int                { return int(to.t.Sub(from.t).Hours() / 24) }
func StartOfYear(year int) Date                    { return NewDate(year, time.January, 1) }
func EndOfYear(year int) Date                      { return NewDate(year, time.December, 31) }
func StartOfMonth(year int, month time.Month) Date { return NewDate(year, month, 1) }
func EndOfMonth(year int, month time.Month) Date {
	return NewDate(year, month+1, 1).AddDays(-1)
}

// DaysInMonth returns 28 to 31.
func DaysInMonth(year int, month time.Month) int {
	return EndOfMonth(year, month).Day()
}

// NthWeekdayOfMonth returns the n-th (1-based) given weekday of the month.
// ok is false when the month has fewer than n such weekdays; the search never
// spills into the next month.
func NthWeekdayOfMonth(year int, month time.Month, weekday time.Weekday, n int) (Date, bool) {
	if n < 1 {
		return Date{}, false
	}
	first := StartOfMonth(year, month)
	offset := (int(weekday) - int(first.Weekday()) + 7) % 7
	day := 1 + offset + (n-1)*7
	if day > DaysInMonth(year, month) {
		return Date{}, false
	}
	return NewDate(year, month, day), true
}

// =============================================================================
// CLOCK - Explicit source of the current day
// =============================================================================

// Clock supplies the current time. Pass one wherever "today" matters so
// tests can substitute a fixed day.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always reports the same instant.
type FixedClock time.Time

func (c FixedClock) Now() time.Time { return time.Time(c) }

// Today returns the current calendar day according to c.
func Today(c Clock) Date {
	return FromTime(c.Now())
}
