/*
Package accrual implements schedules that grant time-based amounts on
recurring dates.

PURPOSE:
  An accrual schedule answers "what is granted, and when, inside this
  period?". Grant dates come from recurrence specifications, amounts are
  split with exact proration so a full year always adds up to the annual
  figure, and tenure tiers are an IntervalMap keyed by years of service.

ACCRUAL TYPES:
  YearlyAccrual:
    - "20 days per year" with different distribution frequencies
    - FreqUpfront: All 20 days on January 1
    - FreqMonthly: 12 parts on the 1st of each month, summing to exactly 20

  TenureAccrual:
    - Annual rate increases with completed years of service
    - Example: 15 days for 0-2 years, 20 days for 3-4 years, 25 days for 5+

PRORATION:
  For mid-year hires:
  - Hired June 15 with 20 days/year
  - 6 full months remaining = 20 * 6/12 = 10 days
  - ProrateFirstYear computes this with an explicit rounding mode

EXAMPLE:
  accrual := &YearlyAccrual{
      AnnualDays: decimal.NewFromInt(20),
      Frequency:  FreqMonthly,
  }
  events, _ := accrual.GenerateAccruals(calendar.YearPeriod(2025))
  // 12 events: 1.67 x 8, 1.66 x 4

SEE ALSO:
  - yearly.go, tenure.go: Implementations
  - generic/proration.go: Exact splitting
  - recurrence/spec.go: Grant dates
*/
package accrual

import (
	"errors"

	"github.com/warp/calendar-algebra/calendar"
	"github.com/warp/calendar-algebra/generic"
)

// ErrInvalidSchedule is returned when a schedule cannot produce accruals
// (unknown frequency, negative rate, no tiers).
var ErrInvalidSchedule = errors.New("invalid accrual schedule")

// =============================================================================
// ACCRUAL SCHEDULE - Interface for how resources accumulate
// =============================================================================

// Schedule generates accrual events for a period.
type Schedule interface {
	// GenerateAccruals returns accrual events in the period, ascending.
	GenerateAccruals(p calendar.Period) ([]Event, error)

	// IsDeterministic returns true if future accruals can be predicted.
	IsDeterministic() bool
}

// Event represents a single accrual occurrence.
type Event struct {
	At     calendar.Date
	Amount generic.Amount
	Reason string
}

// Total adds up the amounts of events. Events are assumed to share a unit.
func Total(events []Event) generic.Amount {
	total := generic.Amount{Unit: generic.UnitDays}
	for i, e := range events {
		if i == 0 {
			total = e.Amount.Zero()
		}
		total = total.Add(e.Amount)
	}
	return total
}

// Frequency is how often a yearly figure is granted.
type Frequency string

const (
	FreqUpfront Frequency = "upfront"
	FreqMonthly Frequency = "monthly"
)

// Scale is the number of decimal places accrual amounts are split at.
const Scale = 2
