package recurrence

import (
	"sort"
	"time"

	"github.com/warp/calendar-algebra/calendar"
)

// =============================================================================
// HOLIDAY CALENDAR - Named specifications
// =============================================================================

// Holiday is one dated occurrence of a named rule.
type Holiday struct {
	Name string
	Date calendar.Date
}

// HolidayRule names a specification, e.g. "Thanksgiving" for the fourth
// Thursday of November.
type HolidayRule struct {
	Name string
	Spec Spec
}

// HolidayCalendar is an immutable list of holiday rules.
type HolidayCalendar struct {
	rules []HolidayRule
}

// NewHolidayCalendar returns a calendar of the given rules. Rules with an
// absent Spec are dropped.
func NewHolidayCalendar(rules ...HolidayRule) HolidayCalendar {
	kept := make([]HolidayRule, 0, len(rules))
	for _, r := range rules {
		if !r.Spec.IsAbsent() {
			kept = append(kept, r)
		}
	}
	return HolidayCalendar{rules: kept}
}

// With returns a copy of the calendar with one more rule.
func (c HolidayCalendar) With(name string, spec Spec) HolidayCalendar {
	rules := make([]HolidayRule, 0, len(c.rules)+1)
	rules = append(rules, c.rules...)
	return NewHolidayCalendar(append(rules, HolidayRule{Name: name, Spec: spec})...)
}

// Rules returns the calendar's rules in insertion order.
func (c HolidayCalendar) Rules() []HolidayRule {
	return append([]HolidayRule(nil), c.rules...)
}

// IsHoliday checks whether any rule matches the date.
func (c HolidayCalendar) IsHoliday(date calendar.Date) bool {
	_, ok := c.HolidayName(date)
	return ok
}

// HolidayName returns the name of the first rule matching the date.
func (c HolidayCalendar) HolidayName(date calendar.Date) (string, bool) {
	for _, r := range c.rules {
		if r.Spec.IsSatisfiedBy(date) {
			return r.Name, true
		}
	}
	return "", false
}

// IsWorkday checks if a date is a working day: not a weekend, not a holiday.
func (c HolidayCalendar) IsWorkday(date calendar.Date) bool {
	return date.IsWorkday() && !c.IsHoliday(date)
}

// HolidaysIn returns every holiday in the period ordered by date, then by
// rule order.
func (c HolidayCalendar) HolidaysIn(p calendar.Period) []Holiday {
	var holidays []Holiday
	for _, r := range c.rules {
		for d := range r.Spec.IterateOver(p) {
			holidays = append(holidays, Holiday{Name: r.Name, Date: d})
		}
	}
	sort.SliceStable(holidays, func(i, j int) bool {
		return holidays[i].Date.Before(holidays[j].Date)
	})
	return holidays
}

// Spec returns a specification matching any holiday of the calendar, so it
// can be composed: Weekdays().And(cal.Spec().Not()).
func (c HolidayCalendar) Spec() Spec {
	if len(c.rules) == 0 {
		return Never()
	}
	s := c.rules[0].Spec
	for _, r := range c.rules[1:] {
		s = s.Or(r.Spec)
	}
	return s
}

// Workdays returns a specification matching weekdays that are not holidays.
func (c HolidayCalendar) Workdays() Spec {
	return Weekdays().And(c.Spec().Not())
}

// USFederalHolidays returns the eleven US federal holidays on their actual
// dates (no weekend observance shifting).
func USFederalHolidays() HolidayCalendar {
	return NewHolidayCalendar(
		HolidayRule{"New Year's Day", Must(Annual(time.January, 1))},
		HolidayRule{"Martin Luther King Jr. Day", Must(NthWeekdayOfMonth(time.January, time.Monday, 3))},
		HolidayRule{"Washington's Birthday", Must(NthWeekdayOfMonth(time.February, time.Monday, 3))},
		// Last Monday of May: the only Monday among May 25-31.
		HolidayRule{"Memorial Day", Must(Cron("25-31 5 *")).And(DaysOfWeek(time.Monday))},
		HolidayRule{"Juneteenth", Must(Annual(time.June, 19))},
		HolidayRule{"Independence Day", Must(Annual(time.July, 4))},
		HolidayRule{"Labor Day", Must(NthWeekdayOfMonth(time.September, time.Monday, 1))},
		HolidayRule{"Columbus Day", Must(NthWeekdayOfMonth(time.October, time.Monday, 2))},
		HolidayRule{"Veterans Day", Must(Annual(time.November, 11))},
		HolidayRule{"Thanksgiving Day", Must(NthWeekdayOfMonth(time.November, time.Thursday, 4))},
		HolidayRule{"Christmas Day", Must(Annual(time.December, 25))},
	)
}
