package accrual

import (
	"fmt"
	"iter"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/warp/calendar-algebra/calendar"
	"github.com/warp/calendar-algebra/generic"
)

// =============================================================================
// TENURE-BASED ACCRUAL
// =============================================================================

// TenureTier grants AnnualDays per year once AfterYears of service are
// completed.
type TenureTier struct {
	AfterYears int
	AnnualDays decimal.Decimal
}

// TenureAccrual adjusts the monthly accrual rate based on tenure. Tiers are
// kept in an IntervalMap over completed years of service.
type TenureAccrual struct {
	HireDate calendar.Date
	tiers    *generic.IntervalMap[int, decimal.Decimal]
}

// NewTenureAccrual builds the tier map. Each tier applies from AfterYears
// onwards until a later tier takes over; the order tiers are passed in does
// not matter.
func NewTenureAccrual(hireDate calendar.Date, tiers ...TenureTier) (*TenureAccrual, error) {
	if len(tiers) == 0 {
		return nil, fmt.Errorf("%w: no tenure tiers", ErrInvalidSchedule)
	}
	sorted := append([]TenureTier(nil), tiers...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].AfterYears < sorted[j].AfterYears })

	m := generic.NewOrderedIntervalMap[int, decimal.Decimal]()
	for _, t := range sorted {
		if t.AfterYears < 0 || t.AnnualDays.IsNegative() {
			return nil, fmt.Errorf("%w: tier after %d years with %s days", ErrInvalidSchedule, t.AfterYears, t.AnnualDays)
		}
		// Open-ended: the next tier overwrites everything from its own start.
		m.Put(generic.AtLeast(t.AfterYears), t.AnnualDays)
	}
	return &TenureAccrual{HireDate: hireDate, tiers: m}, nil
}

// YearsOfService returns the completed years of service on the given date.
// It is negative before the hire date.
func (ta *TenureAccrual) YearsOfService(at calendar.Date) int {
	years := at.Year() - ta.HireDate.Year()
	if at.Month() < ta.HireDate.Month() ||
		(at.Month() == ta.HireDate.Month() && at.Day() < ta.HireDate.Day()) {
		years--
	}
	return years
}

// AnnualDaysAt returns the annual figure in force on the given date.
func (ta *TenureAccrual) AnnualDaysAt(at calendar.Date) (decimal.Decimal, bool) {
	if at.Before(ta.HireDate) {
		return decimal.Zero, false
	}
	return ta.tiers.Get(ta.YearsOfService(at))
}

// Bands yields the resolved tiers as year-of-service intervals.
func (ta *TenureAccrual) Bands() iter.Seq2[generic.Interval[int], decimal.Decimal] {
	return ta.tiers.All()
}

func (ta *TenureAccrual) GenerateAccruals(p calendar.Period) ([]Event, error) {
	return monthly(p, ta.AnnualDaysAt, "tenure-based accrual")
}

// IsDeterministic returns true - tenure progression is predictable.
func (ta *TenureAccrual) IsDeterministic() bool {
	return true
}
