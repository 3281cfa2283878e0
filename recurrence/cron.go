package recurrence

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/warp/calendar-algebra/calendar"
)

// Only the day-level fields are accepted; seconds, minutes and hours are
// fixed at midnight.
var cronParser = cron.NewParser(cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// Cron matches dates selected by the day-of-month, month and day-of-week
// fields of a cron expression, e.g. "1 * *" (first of every month) or
// "* 10 MON,WED,FRI". Descriptors such as "@monthly" are accepted; "@every"
// is not.
//
// Standard cron semantics apply: when both day-of-month and day-of-week are
// restricted, a date matching either one is selected. Combine two Cron
// leaves with And to require both.
func Cron(expr string) (Spec, error) {
	schedule, err := cronParser.Parse("CRON_TZ=UTC " + expr)
	if err != nil {
		return Spec{}, fmt.Errorf("%w: cron %q: %v", ErrInvalidSpecification, expr, err)
	}
	if _, ok := schedule.(*cron.SpecSchedule); !ok {
		return Spec{}, fmt.Errorf("%w: cron %q is not a calendar schedule", ErrInvalidSpecification, expr)
	}
	return Spec{kind: KindCron, schedule: schedule, expr: expr}, nil
}

// cronMatches asks the schedule for its first activation at or after
// midnight of d.
func cronMatches(schedule cron.Schedule, d calendar.Date) bool {
	midnight := d.Time()
	return schedule.Next(midnight.Add(-time.Second)).Equal(midnight)
}
