/*
main.go - Command line entry point

PURPOSE:
  Evaluates schedule documents from the command line. Lists the dates a
  rule matches, the accruals a schedule grants, the holidays of a year, or
  an exact split of an amount into parts.

MODES:
  1. --file      Parse a schedule document and list matching dates
                 (with --accruals, list accrual events instead)
  2. --holidays  List US federal holidays for --year
  3. --prorate   Divide an amount evenly into --parts parts

COMMAND-LINE FLAGS:
  -f, --file      Schedule document (YAML or JSON)
      --from      First day of the range (YYYY-MM-DD)
      --to        Last day of the range (YYYY-MM-DD)
  -y, --year      Calendar year to use instead of --from/--to
                  (default: the period containing today)
      --fiscal-start  Month (1-12) starting the fiscal year; today's
                      fiscal year becomes the default period
      --anniversary   Anchor date; the default period runs from one
                      anniversary to the day before the next
      --rolling       Default period is the twelve months ending today
      --offset    Shift the period by N periods of the same length
  -a, --accruals  Print accrual events instead of matching dates
      --holidays  Print the US federal holidays of the year
      --prorate   Amount to divide
  -n, --parts     Number of parts for --prorate (default: 12)
      --scale     Decimal places of each part (default: scale of the amount)
  -v, --verbose   Debug logging on stderr

EXAMPLES:
  # Standup days in October 2025
  ./occurrences -f standup.yaml --from 2025-10-01 --to 2025-10-31

  # Accrual events for 2025
  ./occurrences -f pto.yaml -y 2025 --accruals

  # Holidays of last fiscal year, fiscal years starting in April
  ./occurrences --holidays --fiscal-start 4 --offset -1

  # Weekly share of an annual salary
  ./occurrences --prorate 80000.00 --parts 52

OUTPUT:
  One result per line on stdout. Diagnostics go to stderr.

SEE ALSO:
  - factory/schedule.go: Document schema
  - generic/proration.go: Exact division
*/
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"

	"github.com/warp/calendar-algebra/accrual"
	"github.com/warp/calendar-algebra/calendar"
	"github.com/warp/calendar-algebra/factory"
	"github.com/warp/calendar-algebra/generic"
	"github.com/warp/calendar-algebra/recurrence"
)

var errUsage = errors.New("usage")

type options struct {
	file     string
	from     string
	to       string
	year     int
	accruals bool
	holidays bool
	prorate  string
	parts    int
	scale    int32
	verbose  bool

	fiscalStart int
	anniversary string
	rolling     bool
	offset      int
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr, calendar.SystemClock{}); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer, clock calendar.Clock) error {
	var opts options
	flags := pflag.NewFlagSet("occurrences", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintln(stderr, "usage: occurrences (--file FILE [PERIOD] [--accruals] | --holidays [PERIOD] | --prorate TOTAL [--parts N])\nPERIOD: --from D --to D | --year Y | --fiscal-start M | --anniversary D | --rolling, then [--offset N]")
		flags.PrintDefaults()
	}
	flags.StringVarP(&opts.file, "file", "f", "", "schedule document (YAML or JSON)")
	flags.StringVar(&opts.from, "from", "", "first day of the range (YYYY-MM-DD)")
	flags.StringVar(&opts.to, "to", "", "last day of the range (YYYY-MM-DD)")
	flags.IntVarP(&opts.year, "year", "y", 0, "calendar year (default: current year)")
	flags.BoolVarP(&opts.accruals, "accruals", "a", false, "print accrual events instead of matching dates")
	flags.BoolVar(&opts.holidays, "holidays", false, "print the US federal holidays of the year")
	flags.StringVar(&opts.prorate, "prorate", "", "amount to divide evenly")
	flags.IntVarP(&opts.parts, "parts", "n", 12, "number of parts for --prorate")
	flags.Int32Var(&opts.scale, "scale", -1, "decimal places of each part (default: scale of the amount)")
	flags.IntVar(&opts.fiscalStart, "fiscal-start", 0, "month (1-12) starting the fiscal year")
	flags.StringVar(&opts.anniversary, "anniversary", "", "anchor date of anniversary periods (YYYY-MM-DD)")
	flags.BoolVar(&opts.rolling, "rolling", false, "use the twelve months ending today")
	flags.IntVar(&opts.offset, "offset", 0, "shift the period by N periods of the same length")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")
	if err := flags.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	switch {
	case opts.prorate != "":
		return prorate(opts, stdout, logger)
	case opts.holidays:
		period, err := resolvePeriod(opts, clock)
		if err != nil {
			return err
		}
		return listHolidays(period, stdout, logger)
	case opts.file != "":
		period, err := resolvePeriod(opts, clock)
		if err != nil {
			return err
		}
		return evaluate(opts, period, stdout, logger)
	default:
		flags.Usage()
		return fmt.Errorf("%w: one of --file, --holidays or --prorate is required", errUsage)
	}
}

// resolvePeriod turns --from/--to, --year or the period flags into a period
// and applies --offset. With no range or year, the period containing today
// according to clock is used.
func resolvePeriod(opts options, clock calendar.Clock) (calendar.Period, error) {
	period, err := basePeriod(opts, clock)
	if err != nil {
		return calendar.Period{}, err
	}
	for ; opts.offset > 0; opts.offset-- {
		period = period.NextPeriod()
	}
	for ; opts.offset < 0; opts.offset++ {
		period = period.PreviousPeriod()
	}
	return period, nil
}

func basePeriod(opts options, clock calendar.Clock) (calendar.Period, error) {
	config, err := periodConfig(opts)
	if err != nil {
		return calendar.Period{}, err
	}
	explicit := opts.year != 0 || opts.from != "" || opts.to != ""
	if explicit && config.Type != calendar.PeriodCalendarYear {
		return calendar.Period{}, fmt.Errorf("%w: --fiscal-start, --anniversary and --rolling replace --year and --from/--to", errUsage)
	}
	if opts.from == "" && opts.to == "" {
		if opts.year != 0 {
			return calendar.YearPeriod(opts.year), nil
		}
		return config.PeriodFor(calendar.Today(clock)), nil
	}
	if opts.from == "" || opts.to == "" {
		return calendar.Period{}, fmt.Errorf("%w: --from and --to go together", errUsage)
	}
	if opts.year != 0 {
		return calendar.Period{}, fmt.Errorf("%w: --year cannot be combined with --from/--to", errUsage)
	}
	from, err := calendar.ParseDate(opts.from)
	if err != nil {
		return calendar.Period{}, err
	}
	to, err := calendar.ParseDate(opts.to)
	if err != nil {
		return calendar.Period{}, err
	}
	return calendar.NewPeriod(from, to)
}

// periodConfig reads the mutually exclusive period flags.
func periodConfig(opts options) (calendar.PeriodConfig, error) {
	config := calendar.PeriodConfig{Type: calendar.PeriodCalendarYear}
	set := 0
	if opts.fiscalStart != 0 {
		if opts.fiscalStart < 1 || opts.fiscalStart > 12 {
			return config, fmt.Errorf("%w: --fiscal-start %d is not a month", errUsage, opts.fiscalStart)
		}
		config = calendar.PeriodConfig{Type: calendar.PeriodFiscalYear, FiscalYearStartMonth: time.Month(opts.fiscalStart)}
		set++
	}
	if opts.anniversary != "" {
		anchor, err := calendar.ParseDate(opts.anniversary)
		if err != nil {
			return config, err
		}
		config = calendar.PeriodConfig{Type: calendar.PeriodAnniversary, AnchorDate: &anchor}
		set++
	}
	if opts.rolling {
		config = calendar.PeriodConfig{Type: calendar.PeriodRolling}
		set++
	}
	if set > 1 {
		return config, fmt.Errorf("%w: choose one of --fiscal-start, --anniversary and --rolling", errUsage)
	}
	return config, nil
}

func evaluate(opts options, period calendar.Period, stdout io.Writer, logger *slog.Logger) error {
	data, err := os.ReadFile(opts.file)
	if err != nil {
		return fmt.Errorf("read schedule: %w", err)
	}
	schedule, err := factory.NewScheduleFactory().ParseSchedule(data)
	if err != nil {
		return err
	}
	logger.Debug("schedule loaded", "id", schedule.ID, "rule", schedule.Rule.String(), "period", period.String())

	if opts.accruals {
		if schedule.Accrual == nil {
			return fmt.Errorf("%w: schedule %q has no accrual section", errUsage, schedule.ID)
		}
		events, err := schedule.Accrual.GenerateAccruals(period)
		if err != nil {
			return err
		}
		for _, e := range events {
			fmt.Fprintf(stdout, "%s\t%s\t%s\n", e.At, e.Amount, e.Reason)
		}
		logger.Info("accruals listed", "schedule", schedule.ID, "count", len(events), "total", accrual.Total(events).String())
		return nil
	}

	count := 0
	for d := range schedule.Rule.IterateOver(period) {
		fmt.Fprintln(stdout, d)
		count++
	}
	logger.Info("occurrences listed", "schedule", schedule.ID, "count", count)
	return nil
}

func listHolidays(period calendar.Period, stdout io.Writer, logger *slog.Logger) error {
	holidays := recurrence.USFederalHolidays().HolidaysIn(period)
	for _, h := range holidays {
		fmt.Fprintf(stdout, "%s\t%s\t%s\n", h.Date, h.Date.Weekday(), h.Name)
	}
	logger.Debug("holidays listed", "period", period.String(), "count", len(holidays))
	return nil
}

func prorate(opts options, stdout io.Writer, logger *slog.Logger) error {
	total, err := decimal.NewFromString(opts.prorate)
	if err != nil {
		return fmt.Errorf("%w: invalid amount %q", generic.ErrInvalidArgument, opts.prorate)
	}
	scale := opts.scale
	if scale < 0 {
		scale = generic.ScaleOf(total)
	}
	parts, err := generic.DividedEvenlyIntoPartsAtScale(total, opts.parts, scale)
	if err != nil {
		return err
	}
	for _, p := range parts {
		fmt.Fprintln(stdout, p.StringFixed(scale))
	}
	logger.Debug("amount divided", "total", total.String(), "parts", len(parts), "sum", generic.Sum(parts).String())
	return nil
}
