package calendar_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/calendar-algebra/calendar"
)

func TestNewPeriod_EndBeforeStart_Rejected(t *testing.T) {
	_, err := calendar.NewPeriod(calendar.NewDate(2025, time.March, 2), calendar.NewDate(2025, time.March, 1))

	assert.ErrorIs(t, err, calendar.ErrInvalidPeriod)
}

func TestPeriod_LengthAndDays(t *testing.T) {
	p := calendar.MonthPeriod(2024, time.February)

	assert.Equal(t, 29, p.Length())
	days := p.Days()
	require.Len(t, days, 29)
	assert.Equal(t, "2024-02-01", days[0].String())
	assert.Equal(t, "2024-02-29", days[28].String())
	assert.Equal(t, 366, calendar.YearPeriod(2024).Length())
}

func TestPeriod_Contains_IsInclusive(t *testing.T) {
	p := calendar.YearPeriod(2025)

	assert.True(t, p.Contains(calendar.NewDate(2025, time.January, 1)))
	assert.True(t, p.Contains(calendar.NewDate(2025, time.December, 31)))
	assert.False(t, p.Contains(calendar.NewDate(2026, time.January, 1)))
}

func TestPeriod_IntervalRoundTrip(t *testing.T) {
	p := calendar.MonthPeriod(2025, time.June)

	iv := p.Interval()
	assert.True(t, iv.IsClosed())

	back, ok := calendar.PeriodOf(iv)
	require.True(t, ok)
	assert.Equal(t, p, back)
}

func TestPeriodOf_ExcludedLimitsShrinkToWholeDays(t *testing.T) {
	// GIVEN: The open interval (Jan 1, Jan 5)
	// WHEN: Converting to a period of days
	// THEN: Jan 2 through Jan 4

	iv := calendar.Dates.Open(calendar.NewDate(2025, time.January, 1), calendar.NewDate(2025, time.January, 5))

	p, ok := calendar.PeriodOf(iv)

	require.True(t, ok)
	assert.Equal(t, "[2025-01-02, 2025-01-04]", p.String())
}

func TestPeriodOf_UnboundedOrEmpty(t *testing.T) {
	d := calendar.NewDate(2025, time.January, 1)

	_, ok := calendar.PeriodOf(calendar.Dates.AtLeast(d))
	assert.False(t, ok)

	_, ok = calendar.PeriodOf(calendar.Dates.Open(d, d.AddDays(1)))
	assert.False(t, ok, "no whole day strictly between consecutive days")

	_, ok = calendar.PeriodOf(calendar.Dates.Empty())
	assert.False(t, ok)
}

func TestPeriod_NextAndPrevious(t *testing.T) {
	p := calendar.Period{Start: calendar.NewDate(2025, time.January, 1), End: calendar.NewDate(2025, time.January, 10)}

	assert.Equal(t, "[2025-01-11, 2025-01-20]", p.NextPeriod().String())
	assert.Equal(t, "[2024-12-22, 2024-12-31]", p.PreviousPeriod().String())
}

// =============================================================================
// PERIOD CONFIG
// =============================================================================

func TestPeriodConfig_CalendarYear(t *testing.T) {
	config := calendar.PeriodConfig{Type: calendar.PeriodCalendarYear}

	p := config.PeriodFor(calendar.NewDate(2025, time.June, 15))

	assert.Equal(t, calendar.YearPeriod(2025), p)
}

func TestPeriodConfig_FiscalYear_April(t *testing.T) {
	config := calendar.PeriodConfig{Type: calendar.PeriodFiscalYear, FiscalYearStartMonth: time.April}

	assert.Equal(t, "[2025-04-01, 2026-03-31]", config.PeriodFor(calendar.NewDate(2025, time.June, 15)).String())
	assert.Equal(t, "[2024-04-01, 2025-03-31]", config.PeriodFor(calendar.NewDate(2025, time.February, 15)).String())
}

func TestPeriodConfig_Anniversary(t *testing.T) {
	hire := calendar.NewDate(2020, time.March, 15)
	config := calendar.PeriodConfig{Type: calendar.PeriodAnniversary, AnchorDate: &hire}

	assert.Equal(t, "[2025-03-15, 2026-03-14]", config.PeriodFor(calendar.NewDate(2025, time.June, 1)).String())
	assert.Equal(t, "[2024-03-15, 2025-03-14]", config.PeriodFor(calendar.NewDate(2025, time.January, 1)).String())
}

func TestPeriodConfig_Rolling(t *testing.T) {
	config := calendar.PeriodConfig{Type: calendar.PeriodRolling}

	assert.Equal(t, "[2024-06-16, 2025-06-15]", config.PeriodFor(calendar.NewDate(2025, time.June, 15)).String())
}
