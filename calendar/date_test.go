package calendar_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/calendar-algebra/calendar"
)

func TestDate_ParseAndString(t *testing.T) {
	d, err := calendar.ParseDate("2025-02-28")

	require.NoError(t, err)
	assert.Equal(t, 2025, d.Year())
	assert.Equal(t, time.February, d.Month())
	assert.Equal(t, 28, d.Day())
	assert.Equal(t, "2025-02-28", d.String())
}

func TestDate_ParseRejectsMalformedInput(t *testing.T) {
	for _, s := range []string{"", "2025-13-01", "2025-02-30", "28/02/2025"} {
		_, err := calendar.ParseDate(s)
		assert.Error(t, err, s)
	}
}

func TestDate_FromTime_KeepsLocalCalendarDay(t *testing.T) {
	// GIVEN: 23:30 on March 9 in a zone behind UTC (already March 10 in UTC)
	// WHEN: Taking its calendar day
	// THEN: March 9, as written in its own zone

	loc := time.FixedZone("UTC-5", -5*60*60)
	tm := time.Date(2025, time.March, 9, 23, 30, 0, 0, loc)

	assert.Equal(t, calendar.NewDate(2025, time.March, 9), calendar.FromTime(tm))
}

func TestDate_Arithmetic(t *testing.T) {
	d := calendar.NewDate(2024, time.January, 31)

	assert.Equal(t, "2024-02-01", d.AddDays(1).String())
	assert.Equal(t, "2024-03-02", d.AddMonths(1).String()) // normalized like time.AddDate
	assert.Equal(t, "2025-01-31", d.AddYears(1).String())
	assert.Equal(t, 366, calendar.DaysBetween(calendar.StartOfYear(2024), calendar.StartOfYear(2025)))
}

func TestDate_Comparison(t *testing.T) {
	a := calendar.NewDate(2025, time.March, 1)
	b := calendar.NewDate(2025, time.March, 2)

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.Equal(t, -1, a.Compare(b))
	assert.True(t, a.BeforeOrEqual(a))
	assert.True(t, a.AfterOrEqual(a))
	assert.True(t, a.Equal(calendar.MustParseDate("2025-03-01")))
}

func TestDate_WeekdayHelpers(t *testing.T) {
	saturday := calendar.NewDate(2025, time.March, 8)
	monday := calendar.NewDate(2025, time.March, 10)

	assert.Equal(t, time.Saturday, saturday.Weekday())
	assert.True(t, saturday.IsWeekend())
	assert.True(t, monday.IsWorkday())
	assert.Equal(t, 2, monday.WeekdayOccurrence())
}

func TestDate_MonthBoundaries(t *testing.T) {
	assert.Equal(t, 29, calendar.DaysInMonth(2024, time.February))
	assert.Equal(t, 28, calendar.DaysInMonth(2025, time.February))
	assert.Equal(t, "2025-12-31", calendar.EndOfMonth(2025, time.December).String())

	d := calendar.NewDate(2025, time.April, 17)
	assert.Equal(t, "2025-04-01", d.StartOfMonth().String())
	assert.Equal(t, "2025-04-30", d.EndOfMonth().String())
}

func TestNthWeekdayOfMonth(t *testing.T) {
	tests := []struct {
		name    string
		year    int
		month   time.Month
		weekday time.Weekday
		n       int
		want    string
		wantOK  bool
	}{
		{"thanksgiving 2005", 2005, time.November, time.Thursday, 4, "2005-11-24", true},
		{"first day is the weekday", 2025, time.September, time.Monday, 1, "2025-09-01", true},
		{"fifth monday exists", 2025, time.March, time.Monday, 5, "2025-03-31", true},
		{"fifth monday missing", 2025, time.February, time.Monday, 5, "", false},
		{"zero occurrence", 2025, time.March, time.Monday, 0, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := calendar.NthWeekdayOfMonth(tt.year, tt.month, tt.weekday, tt.n)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got.String())
			}
		})
	}
}

func TestDate_TextRoundTrip(t *testing.T) {
	d := calendar.NewDate(2025, time.July, 4)

	text, err := d.MarshalText()
	require.NoError(t, err)

	var parsed calendar.Date
	require.NoError(t, parsed.UnmarshalText(text))
	assert.True(t, d.Equal(parsed))
}

func TestToday_UsesClock(t *testing.T) {
	clock := calendar.FixedClock(time.Date(2025, time.June, 15, 18, 0, 0, 0, time.UTC))

	assert.Equal(t, "2025-06-15", calendar.Today(clock).String())
}

func TestDates_IntervalOfDates(t *testing.T) {
	q1 := calendar.Dates.ClosedOpen(calendar.NewDate(2025, time.January, 1), calendar.NewDate(2025, time.April, 1))

	assert.True(t, q1.Includes(calendar.NewDate(2025, time.March, 31)))
	assert.False(t, q1.Includes(calendar.NewDate(2025, time.April, 1)))
	assert.Equal(t, "[2025-01-01, 2025-04-01)", q1.String())
}
