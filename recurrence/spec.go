/*
Package recurrence provides composable predicates over calendar dates.

PURPOSE:
  A Spec answers "does this date satisfy the rule?" for rules such as
  "every Monday/Wednesday/Friday in October, except the 12th". Leaves test
  a date directly; And/Or/Not combine leaves into a tree. Enumeration of
  matching dates is always bounded by a calendar.Period.

REPRESENTATION:
  Spec is a tagged union: one struct with a Kind tag and the fields that
  kind uses. IsSatisfiedBy is a single switch over the tag. Composition
  builds new Spec values and never touches its operands, so any Spec can
  be reused in as many trees as needed.

VARIANTS:
  Fixed(date)                       exactly that date
  Annual(month, day)                that day every year
  DaysOfWeek(days...)               weekday membership
  NthWeekdayOfMonth(month, wd, n)   e.g. 4th Thursday of November
  Within(interval)                  membership in a date interval
  Cron(expr)                        day-of-month / month / day-of-week cron fields
  And(a, b), Or(a, b), Not(a)       boolean composition

EXAMPLE:
  mwf := recurrence.DaysOfWeek(time.Monday, time.Wednesday, time.Friday)
  october := recurrence.Must(recurrence.Cron("* 10 *"))
  the12th := recurrence.Fixed(calendar.NewDate(2025, time.October, 12))
  rule := mwf.And(october).And(the12th.Not())

  for d := range rule.IterateOver(calendar.YearPeriod(2025)) {
      fmt.Println(d)
  }

SEE ALSO:
  - iterate.go: FirstOccurrenceIn / IterateOver
  - holidays.go: Named specifications as a holiday calendar
*/
package recurrence

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/warp/calendar-algebra/calendar"
	"github.com/warp/calendar-algebra/generic"
)

// ErrInvalidSpecification is returned when a leaf is built from parameters
// that cannot describe any rule (month 13, n = 0, malformed cron fields).
var ErrInvalidSpecification = errors.New("invalid date specification")

// =============================================================================
// SPEC - Tagged union of date predicates
// =============================================================================

// Kind tags the variant held by a Spec.
type Kind uint8

const (
	KindAbsent Kind = iota
	KindFixed
	KindAnnual
	KindDaysOfWeek
	KindNthWeekday
	KindWithin
	KindCron
	KindAnd
	KindOr
	KindNot
)

var kindNames = [...]string{"absent", "fixed", "annual", "days_of_week", "nth_weekday", "within", "cron", "and", "or", "not"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

type weekdaySet uint8

func (s weekdaySet) has(wd time.Weekday) bool {
	return wd >= time.Sunday && wd <= time.Saturday && s&(1<<uint(wd)) != 0
}

// Spec is an immutable date predicate. The zero Spec is absent: it matches
// nothing and is rejected as an operand of And, Or and Not.
type Spec struct {
	kind Kind

	date     calendar.Date                   // KindFixed
	month    time.Month                      // KindAnnual, KindNthWeekday
	day      int                             // KindAnnual
	weekdays weekdaySet                      // KindDaysOfWeek
	weekday  time.Weekday                    // KindNthWeekday
	n        int                             // KindNthWeekday
	bound    generic.Interval[calendar.Date] // KindWithin
	schedule cron.Schedule                   // KindCron
	expr     string                          // KindCron

	operands []Spec // KindAnd, KindOr (two), KindNot (one)
}

// =============================================================================
// LEAVES
// =============================================================================

// Fixed matches exactly date.
func Fixed(date calendar.Date) Spec {
	return Spec{kind: KindFixed, date: date}
}

// Annual matches the given month and day in every year. February 29 only
// matches in leap years.
func Annual(month time.Month, day int) (Spec, error) {
	if month < time.January || month > time.December {
		return Spec{}, fmt.Errorf("%w: month %d", ErrInvalidSpecification, month)
	}
	// 2000 is a leap year, so February 29 is accepted here.
	if day < 1 || day > calendar.DaysInMonth(2000, month) {
		return Spec{}, fmt.Errorf("%w: day %d of %s", ErrInvalidSpecification, day, month)
	}
	return Spec{kind: KindAnnual, month: month, day: day}, nil
}

// DaysOfWeek matches dates falling on any of days. With no days it matches
// nothing.
func DaysOfWeek(days ...time.Weekday) Spec {
	var set weekdaySet
	for _, wd := range days {
		if wd >= time.Sunday && wd <= time.Saturday {
			set |= 1 << uint(wd)
		}
	}
	return Spec{kind: KindDaysOfWeek, weekdays: set}
}

// Weekdays matches Monday through Friday.
func Weekdays() Spec {
	return DaysOfWeek(time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday)
}

// Weekends matches Saturday and Sunday.
func Weekends() Spec {
	return DaysOfWeek(time.Saturday, time.Sunday)
}

// Never matches nothing.
func Never() Spec {
	return DaysOfWeek()
}

// NthWeekdayOfMonth matches the n-th occurrence of weekday in month, every
// year. A month with fewer than n such weekdays has no match.
func NthWeekdayOfMonth(month time.Month, weekday time.Weekday, n int) (Spec, error) {
	switch {
	case month < time.January || month > time.December:
		return Spec{}, fmt.Errorf("%w: month %d", ErrInvalidSpecification, month)
	case weekday < time.Sunday || weekday > time.Saturday:
		return Spec{}, fmt.Errorf("%w: weekday %d", ErrInvalidSpecification, weekday)
	case n < 1:
		return Spec{}, fmt.Errorf("%w: occurrence %d", ErrInvalidSpecification, n)
	}
	return Spec{kind: KindNthWeekday, month: month, weekday: weekday, n: n}, nil
}

// Within matches dates included by interval.
func Within(interval generic.Interval[calendar.Date]) Spec {
	return Spec{kind: KindWithin, bound: interval}
}

// Must panics if err is non-nil. For rules written as literals.
func Must(s Spec, err error) Spec {
	if err != nil {
		panic(err)
	}
	return s
}

// =============================================================================
// COMPOSITION
// =============================================================================

// And matches dates satisfying both a and b. It panics with an error wrapping
// generic.ErrInvalidArgument if either operand is absent.
func And(a, b Spec) Spec {
	requirePresent("and", a, b)
	return Spec{kind: KindAnd, operands: []Spec{a, b}}
}

// Or matches dates satisfying a or b. It panics like And on absent operands.
func Or(a, b Spec) Spec {
	requirePresent("or", a, b)
	return Spec{kind: KindOr, operands: []Spec{a, b}}
}

// Not matches dates that do not satisfy a. It panics like And on an absent
// operand.
func Not(a Spec) Spec {
	requirePresent("not", a)
	return Spec{kind: KindNot, operands: []Spec{a}}
}

func (s Spec) And(other Spec) Spec { return And(s, other) }
func (s Spec) Or(other Spec) Spec  { return Or(s, other) }
func (s Spec) Not() Spec           { return Not(s) }

func requirePresent(op string, operands ...Spec) {
	for i, o := range operands {
		if o.kind == KindAbsent {
			panic(fmt.Errorf("%w: %s operand %d is absent", generic.ErrInvalidArgument, op, i))
		}
	}
}

// =============================================================================
// EVALUATION
// =============================================================================

func (s Spec) Kind() Kind     { return s.kind }
func (s Spec) IsAbsent() bool { return s.kind == KindAbsent }

// IsSatisfiedBy reports whether d satisfies the specification. Composite
// nodes always evaluate every operand.
func (s Spec) IsSatisfiedBy(d calendar.Date) bool {
	switch s.kind {
	case KindFixed:
		return d.Equal(s.date)
	case KindAnnual:
		return d.Month() == s.month && d.Day() == s.day
	case KindDaysOfWeek:
		return s.weekdays.has(d.Weekday())
	case KindNthWeekday:
		return d.Month() == s.month && d.Weekday() == s.weekday && d.WeekdayOccurrence() == s.n
	case KindWithin:
		return s.bound.Includes(d)
	case KindCron:
		return cronMatches(s.schedule, d)
	case KindAnd:
		left, right := s.operands[0].IsSatisfiedBy(d), s.operands[1].IsSatisfiedBy(d)
		return left && right
	case KindOr:
		left, right := s.operands[0].IsSatisfiedBy(d), s.operands[1].IsSatisfiedBy(d)
		return left || right
	case KindNot:
		return !s.operands[0].IsSatisfiedBy(d)
	default:
		return false
	}
}

func (s Spec) String() string {
	switch s.kind {
	case KindFixed:
		return "fixed(" + s.date.String() + ")"
	case KindAnnual:
		return fmt.Sprintf("annual(%s %d)", s.month, s.day)
	case KindDaysOfWeek:
		var days []string
		for wd := time.Sunday; wd <= time.Saturday; wd++ {
			if s.weekdays.has(wd) {
				days = append(days, wd.String())
			}
		}
		return "days_of_week(" + strings.Join(days, ", ") + ")"
	case KindNthWeekday:
		return fmt.Sprintf("nth_weekday(%d %s of %s)", s.n, s.weekday, s.month)
	case KindWithin:
		return "within(" + s.bound.String() + ")"
	case KindCron:
		return "cron(" + s.expr + ")"
	case KindAnd, KindOr, KindNot:
		parts := make([]string, len(s.operands))
		for i, o := range s.operands {
			parts[i] = o.String()
		}
		return s.kind.String() + "(" + strings.Join(parts, ", ") + ")"
	default:
		return "absent"
	}
}
