/*
Package factory provides YAML/JSON to Go schedule conversion.

PURPOSE:
  Converts schedule documents into recurrence.Spec trees and
  accrual.Schedule values. Rules can then be written, reviewed and versioned
  as data instead of code.

WHY YAML?
  - Nested boolean rules read naturally as indented lists
  - JSON documents are valid YAML, so both formats are accepted
  - Comments are allowed next to non-obvious rules

DOCUMENT SCHEMA:
  id: standup
  name: Team standup
  rule:
    and:
      - days_of_week: [monday, wednesday, friday]
      - cron: "* 10 *"             # October
      - not:
          fixed: 2025-10-12
  accrual:
    type: yearly                   # yearly | tenure
    annual_days: 20
    frequency: monthly             # upfront | monthly

RULE NODES (exactly one key per node):
  fixed:        2025-10-12
  annual:       {month: december, day: 25}
  days_of_week: [monday, friday]
  nth_weekday:  {month: november, weekday: thursday, n: 4}
  between:      {from: 2025-01-01, to: 2025-12-31, exclude_from: false, exclude_to: false}
  cron:         "1 * *"
  holidays:     us_federal
  and:          [node, node, ...]
  or:           [node, node, ...]
  not:          node

USAGE:
  factory := NewScheduleFactory()
  schedule, err := factory.ParseSchedule(data)
  for d := range schedule.Rule.IterateOver(calendar.YearPeriod(2025)) { ... }

SEE ALSO:
  - recurrence/spec.go: Spec variants
  - accrual/: Accrual schedule implementations
*/
package factory

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/warp/calendar-algebra/accrual"
	"github.com/warp/calendar-algebra/calendar"
	"github.com/warp/calendar-algebra/generic"
	"github.com/warp/calendar-algebra/recurrence"
)

// ErrInvalidSchedule is returned for documents that do not describe a
// schedule. It wraps the underlying cause.
var ErrInvalidSchedule = errors.New("invalid schedule document")

// =============================================================================
// DOCUMENT TYPES
// =============================================================================

// ScheduleDoc is the document representation of a schedule.
type ScheduleDoc struct {
	ID      string      `yaml:"id"`
	Name    string      `yaml:"name"`
	Rule    *RuleDoc    `yaml:"rule"`
	Accrual *AccrualDoc `yaml:"accrual,omitempty"`
}

// RuleDoc is one node of a rule tree. Exactly one field must be set.
type RuleDoc struct {
	Fixed      string         `yaml:"fixed,omitempty"`
	Annual     *AnnualDoc     `yaml:"annual,omitempty"`
	DaysOfWeek []string       `yaml:"days_of_week,omitempty"`
	NthWeekday *NthWeekdayDoc `yaml:"nth_weekday,omitempty"`
	Between    *BetweenDoc    `yaml:"between,omitempty"`
	Cron       string         `yaml:"cron,omitempty"`
	Holidays   string         `yaml:"holidays,omitempty"`
	And        []RuleDoc      `yaml:"and,omitempty"`
	Or         []RuleDoc      `yaml:"or,omitempty"`
	Not        *RuleDoc       `yaml:"not,omitempty"`
}

type AnnualDoc struct {
	Month string `yaml:"month"`
	Day   int    `yaml:"day"`
}

type NthWeekdayDoc struct {
	Month   string `yaml:"month"`
	Weekday string `yaml:"weekday"`
	N       int    `yaml:"n"`
}

// BetweenDoc bounds dates; an omitted side is unbounded.
type BetweenDoc struct {
	From        string `yaml:"from,omitempty"`
	To          string `yaml:"to,omitempty"`
	ExcludeFrom bool   `yaml:"exclude_from,omitempty"`
	ExcludeTo   bool   `yaml:"exclude_to,omitempty"`
}

// AccrualDoc represents accrual configuration.
type AccrualDoc struct {
	Type       string          `yaml:"type"` // yearly, tenure
	AnnualDays Quantity        `yaml:"annual_days,omitempty"`
	Frequency  string          `yaml:"frequency,omitempty"`
	HireDate   string          `yaml:"hire_date,omitempty"`
	Tiers      []TenureTierDoc `yaml:"tiers,omitempty"`
}

// TenureTierDoc represents a tenure-based accrual tier.
type TenureTierDoc struct {
	AfterYears int      `yaml:"after_years"`
	AnnualDays Quantity `yaml:"annual_days"`
}

// Quantity decodes a scalar such as 20 or "1538.46" straight into a decimal,
// never through float64.
type Quantity struct {
	decimal.Decimal
}

func (q *Quantity) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: quantity must be a scalar", node.Line)
	}
	d, err := decimal.NewFromString(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: invalid quantity %q: %w", node.Line, node.Value, err)
	}
	q.Decimal = d
	return nil
}

// Schedule is a parsed schedule document.
type Schedule struct {
	ID      string
	Name    string
	Rule    recurrence.Spec
	Accrual accrual.Schedule // nil when the document has no accrual
}

// =============================================================================
// SCHEDULE FACTORY
// =============================================================================

// ScheduleFactory converts documents to schedules. Holiday calendars are
// looked up by name for `holidays:` nodes.
type ScheduleFactory struct {
	holidays map[string]recurrence.HolidayCalendar
}

// NewScheduleFactory creates a factory that knows the "us_federal" calendar.
func NewScheduleFactory() *ScheduleFactory {
	return &ScheduleFactory{
		holidays: map[string]recurrence.HolidayCalendar{
			"us_federal": recurrence.USFederalHolidays(),
		},
	}
}

// RegisterHolidays makes a holiday calendar available to `holidays:` nodes.
func (f *ScheduleFactory) RegisterHolidays(name string, cal recurrence.HolidayCalendar) {
	f.holidays[name] = cal
}

// ParseSchedule parses a YAML or JSON schedule document.
func (f *ScheduleFactory) ParseSchedule(data []byte) (*Schedule, error) {
	var doc ScheduleDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
	}
	return f.FromDoc(doc)
}

// ParseRule parses a document holding a single rule node.
func (f *ScheduleFactory) ParseRule(data []byte) (recurrence.Spec, error) {
	var doc RuleDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return recurrence.Spec{}, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
	}
	return f.BuildRule(doc)
}

// FromDoc converts a ScheduleDoc into a Schedule.
func (f *ScheduleFactory) FromDoc(doc ScheduleDoc) (*Schedule, error) {
	if doc.Rule == nil {
		return nil, fmt.Errorf("%w: schedule %q has no rule", ErrInvalidSchedule, doc.ID)
	}
	rule, err := f.BuildRule(*doc.Rule)
	if err != nil {
		return nil, fmt.Errorf("schedule %q: %w", doc.ID, err)
	}
	schedule := &Schedule{ID: doc.ID, Name: doc.Name, Rule: rule}

	if doc.Accrual != nil {
		schedule.Accrual, err = parseAccrual(*doc.Accrual)
		if err != nil {
			return nil, fmt.Errorf("schedule %q: %w", doc.ID, err)
		}
	}
	return schedule, nil
}

// BuildRule converts one rule node (and its children) into a Spec.
func (f *ScheduleFactory) BuildRule(doc RuleDoc) (recurrence.Spec, error) {
	if n := doc.keyCount(); n != 1 {
		return recurrence.Spec{}, fmt.Errorf("%w: rule node has %d keys, want exactly 1", ErrInvalidSchedule, n)
	}

	switch {
	case doc.Fixed != "":
		d, err := calendar.ParseDate(doc.Fixed)
		if err != nil {
			return recurrence.Spec{}, fmt.Errorf("%w: fixed: %v", ErrInvalidSchedule, err)
		}
		return recurrence.Fixed(d), nil

	case doc.Annual != nil:
		month, err := parseMonth(doc.Annual.Month)
		if err != nil {
			return recurrence.Spec{}, err
		}
		return wrapLeaf(recurrence.Annual(month, doc.Annual.Day))

	case doc.DaysOfWeek != nil:
		days := make([]time.Weekday, 0, len(doc.DaysOfWeek))
		for _, name := range doc.DaysOfWeek {
			wd, err := parseWeekday(name)
			if err != nil {
				return recurrence.Spec{}, err
			}
			days = append(days, wd)
		}
		return recurrence.DaysOfWeek(days...), nil

	case doc.NthWeekday != nil:
		month, err := parseMonth(doc.NthWeekday.Month)
		if err != nil {
			return recurrence.Spec{}, err
		}
		wd, err := parseWeekday(doc.NthWeekday.Weekday)
		if err != nil {
			return recurrence.Spec{}, err
		}
		return wrapLeaf(recurrence.NthWeekdayOfMonth(month, wd, doc.NthWeekday.N))

	case doc.Between != nil:
		iv, err := parseBetween(*doc.Between)
		if err != nil {
			return recurrence.Spec{}, err
		}
		return recurrence.Within(iv), nil

	case doc.Cron != "":
		return wrapLeaf(recurrence.Cron(doc.Cron))

	case doc.Holidays != "":
		cal, ok := f.holidays[doc.Holidays]
		if !ok {
			return recurrence.Spec{}, fmt.Errorf("%w: unknown holiday calendar %q", ErrInvalidSchedule, doc.Holidays)
		}
		return cal.Spec(), nil

	case doc.And != nil:
		return f.fold(doc.And, "and", recurrence.And)

	case doc.Or != nil:
		return f.fold(doc.Or, "or", recurrence.Or)

	default:
		operand, err := f.BuildRule(*doc.Not)
		if err != nil {
			return recurrence.Spec{}, err
		}
		return recurrence.Not(operand), nil
	}
}

// fold combines children left to right: and: [a, b, c] is And(And(a, b), c).
func (f *ScheduleFactory) fold(children []RuleDoc, op string, combine func(a, b recurrence.Spec) recurrence.Spec) (recurrence.Spec, error) {
	if len(children) == 0 {
		return recurrence.Spec{}, fmt.Errorf("%w: empty %s", ErrInvalidSchedule, op)
	}
	result, err := f.BuildRule(children[0])
	if err != nil {
		return recurrence.Spec{}, err
	}
	for _, child := range children[1:] {
		next, err := f.BuildRule(child)
		if err != nil {
			return recurrence.Spec{}, err
		}
		result = combine(result, next)
	}
	return result, nil
}

func (doc RuleDoc) keyCount() int {
	n := 0
	for _, set := range []bool{
		doc.Fixed != "",
		doc.Annual != nil,
		doc.DaysOfWeek != nil,
		doc.NthWeekday != nil,
		doc.Between != nil,
		doc.Cron != "",
		doc.Holidays != "",
		doc.And != nil,
		doc.Or != nil,
		doc.Not != nil,
	} {
		if set {
			n++
		}
	}
	return n
}

// =============================================================================
// PARSING HELPERS
// =============================================================================

func wrapLeaf(s recurrence.Spec, err error) (recurrence.Spec, error) {
	if err != nil {
		return recurrence.Spec{}, fmt.Errorf("%w: %w", ErrInvalidSchedule, err)
	}
	return s, nil
}

func parseMonth(s string) (time.Month, error) {
	if n, err := strconv.Atoi(s); err == nil && n >= 1 && n <= 12 {
		return time.Month(n), nil
	}
	name := strings.ToLower(strings.TrimSpace(s))
	for m := time.January; m <= time.December; m++ {
		full := strings.ToLower(m.String())
		if name == full || (len(name) == 3 && name == full[:3]) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown month %q", ErrInvalidSchedule, s)
}

func parseWeekday(s string) (time.Weekday, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		full := strings.ToLower(wd.String())
		if name == full || (len(name) == 3 && name == full[:3]) {
			return wd, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown weekday %q", ErrInvalidSchedule, s)
}

func parseBetween(b BetweenDoc) (generic.Interval[calendar.Date], error) {
	lower, upper := generic.Unbounded[calendar.Date](), generic.Unbounded[calendar.Date]()
	if b.From != "" {
		d, err := calendar.ParseDate(b.From)
		if err != nil {
			return generic.Interval[calendar.Date]{}, fmt.Errorf("%w: between.from: %v", ErrInvalidSchedule, err)
		}
		lower = generic.At(d)
	}
	if b.To != "" {
		d, err := calendar.ParseDate(b.To)
		if err != nil {
			return generic.Interval[calendar.Date]{}, fmt.Errorf("%w: between.to: %v", ErrInvalidSchedule, err)
		}
		upper = generic.At(d)
	}
	iv, err := calendar.Dates.New(lower, !b.ExcludeFrom, upper, !b.ExcludeTo)
	if err != nil {
		return generic.Interval[calendar.Date]{}, fmt.Errorf("%w: between: %w", ErrInvalidSchedule, err)
	}
	return iv, nil
}

func parseAccrual(doc AccrualDoc) (accrual.Schedule, error) {
	switch doc.Type {
	case "yearly":
		return &accrual.YearlyAccrual{
			AnnualDays: doc.AnnualDays.Decimal,
			Frequency:  accrual.Frequency(doc.Frequency),
		}, nil

	case "tenure":
		if doc.HireDate == "" {
			return nil, fmt.Errorf("%w: tenure accrual requires hire_date", ErrInvalidSchedule)
		}
		hireDate, err := calendar.ParseDate(doc.HireDate)
		if err != nil {
			return nil, fmt.Errorf("%w: hire_date: %v", ErrInvalidSchedule, err)
		}
		tiers := make([]accrual.TenureTier, 0, len(doc.Tiers))
		for _, t := range doc.Tiers {
			tiers = append(tiers, accrual.TenureTier{AfterYears: t.AfterYears, AnnualDays: t.AnnualDays.Decimal})
		}
		tenure, err := accrual.NewTenureAccrual(hireDate, tiers...)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidSchedule, err)
		}
		return tenure, nil

	default:
		return nil, fmt.Errorf("%w: unknown accrual type %q", ErrInvalidSchedule, doc.Type)
	}
}
