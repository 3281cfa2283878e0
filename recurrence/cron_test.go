package recurrence_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/calendar-algebra/calendar"
	"github.com/warp/calendar-algebra/recurrence"
)

func TestCron_FirstOfEveryMonth(t *testing.T) {
	s, err := recurrence.Cron("1 * *")
	require.NoError(t, err)

	got := s.OccurrencesIn(calendar.YearPeriod(2025))

	require.Len(t, got, 12)
	for i, d := range got {
		assert.Equal(t, 1, d.Day())
		assert.Equal(t, time.Month(i+1), d.Month())
	}
}

func TestCron_NamedWeekdaysAndMonths(t *testing.T) {
	s := recurrence.Must(recurrence.Cron("* OCT MON,WED,FRI"))

	assert.Equal(t, 14, s.CountIn(calendar.YearPeriod(2025)))
	assert.False(t, s.IsSatisfiedBy(date("2025-10-12")))
	assert.True(t, s.IsSatisfiedBy(date("2025-10-13")))
}

func TestCron_Descriptor(t *testing.T) {
	yearly := recurrence.Must(recurrence.Cron("@yearly"))

	assert.True(t, yearly.IsSatisfiedBy(date("2030-01-01")))
	assert.Equal(t, 1, yearly.CountIn(calendar.YearPeriod(2030)))
}

func TestCron_DayOfMonthOrDayOfWeek(t *testing.T) {
	// GIVEN: Both day-of-month and day-of-week restricted
	// WHEN: Evaluating dates that match only one field
	// THEN: Either field is enough, as in standard cron

	s := recurrence.Must(recurrence.Cron("13 * FRI"))

	assert.True(t, s.IsSatisfiedBy(date("2025-06-13")), "friday the 13th")
	assert.True(t, s.IsSatisfiedBy(date("2025-06-06")), "a friday")
	assert.True(t, s.IsSatisfiedBy(date("2025-05-13")), "a tuesday the 13th")
	assert.False(t, s.IsSatisfiedBy(date("2025-06-07")))

	fridayThe13th := recurrence.Must(recurrence.Cron("13 * *")).And(recurrence.DaysOfWeek(time.Friday))
	assert.Equal(t, []string{"2025-06-13"}, formatDates(fridayThe13th.OccurrencesIn(calendar.YearPeriod(2025))))
}

func TestCron_Invalid(t *testing.T) {
	for _, expr := range []string{"", "32 * *", "0 0 1 * *", "* 13 *", "@every 1h"} {
		_, err := recurrence.Cron(expr)
		assert.ErrorIs(t, err, recurrence.ErrInvalidSpecification, expr)
	}
}

func TestCron_String(t *testing.T) {
	assert.Equal(t, "cron(1 * *)", recurrence.Must(recurrence.Cron("1 * *")).String())
}
