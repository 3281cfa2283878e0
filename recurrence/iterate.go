package recurrence

import (
	"iter"
	"slices"
	"time"

	"github.com/warp/calendar-algebra/calendar"
)

// =============================================================================
// ENUMERATION - Matching dates within a finite period
// =============================================================================
// The reference semantics is a forward scan from p.Start, one day at a time,
// testing IsSatisfiedBy. Leaves whose matches can be computed directly jump
// between candidates instead; the dates produced are identical.

// IterateOver returns the dates in p satisfying s, ascending. Each call to
// the returned sequence starts a fresh enumeration.
func (s Spec) IterateOver(p calendar.Period) iter.Seq[calendar.Date] {
	return func(yield func(calendar.Date) bool) {
		if p.IsEmpty() || s.kind == KindAbsent {
			return
		}
		switch s.kind {
		case KindFixed:
			if p.Contains(s.date) {
				yield(s.date)
			}
		case KindAnnual:
			for year := p.Start.Year(); year <= p.End.Year(); year++ {
				d := calendar.NewDate(year, s.month, s.day)
				if d.Month() != s.month || !p.Contains(d) {
					continue
				}
				if !yield(d) {
					return
				}
			}
		case KindNthWeekday:
			for year := p.Start.Year(); year <= p.End.Year(); year++ {
				d, ok := calendar.NthWeekdayOfMonth(year, s.month, s.weekday, s.n)
				if !ok || !p.Contains(d) {
					continue
				}
				if !yield(d) {
					return
				}
			}
		case KindDaysOfWeek:
			if s.weekdays == 0 {
				return
			}
			for d := p.Start; !d.After(p.End); d = d.AddDays(s.daysToNextWeekday(d.Weekday())) {
				if s.weekdays.has(d.Weekday()) && !yield(d) {
					return
				}
			}
		default:
			for d := p.Start; !d.After(p.End); d = d.AddDays(1) {
				if s.IsSatisfiedBy(d) && !yield(d) {
					return
				}
			}
		}
	}
}

// daysToNextWeekday returns how far ahead of a day falling on from the next
// member of the weekday set lies (1 to 7).
func (s Spec) daysToNextWeekday(from time.Weekday) int {
	for step := 1; step <= 7; step++ {
		if s.weekdays.has(time.Weekday((int(from) + step) % 7)) {
			return step
		}
	}
	return 7
}

// FirstOccurrenceIn returns the earliest date in p satisfying s; ok is false
// when there is none.
func (s Spec) FirstOccurrenceIn(p calendar.Period) (first calendar.Date, ok bool) {
	for d := range s.IterateOver(p) {
		return d, true
	}
	return first, false
}

// OccurrencesIn collects IterateOver(p).
func (s Spec) OccurrencesIn(p calendar.Period) []calendar.Date {
	return slices.Collect(s.IterateOver(p))
}

// CountIn returns the number of dates in p satisfying s.
func (s Spec) CountIn(p calendar.Period) int {
	count := 0
	for range s.IterateOver(p) {
		count++
	}
	return count
}
