package calendar

import (
	"time"
)

// fields are the calendar date parts of an instant.
type fields struct {
	era, year, month, day, dayOfYear int
}

// system is the arithmetic of one calendar family. Callers have already checked
// that instants lie in [minSupported, maxSupported]; year, month and era
// arguments are validated by the system itself.
type system interface {
	minSupported() Instant
	maxSupported() Instant
	eras() []int
	// yearRange bounds the years of the current era.
	yearRange() (minYear, maxYear int)
	defaultTwoDigitYearMax() int
	// daysInYearBeforeMin is the length of the calendar year preceding the
	// first supported year.
	daysInYearBeforeMin() int

	date(t Instant) (fields, error)
	daysInMonth(year, month, era int) (int, error)
	daysInYear(year, era int) (int, error)
	monthsInYear(year, era int) (int, error)
	isLeapYear(year, era int) (bool, error)
	leapMonth(year, era int) (int, error)
	// isLeapDay is only called with a validated date.
	isLeapDay(year, month, day, era int) bool
	// toDays is only called with a validated date.
	toDays(year, month, day, era int) (int, error)
	addMonths(t Instant, months int) (Instant, error)
	addYears(t Instant, years int) (Instant, error)
}

const (
	maxMonthsDelta = 120_000
	maxYearsDelta  = 10_000
)

// Calendar converts instants to and from the dates of one calendar system.
// A Calendar is immutable once built and safe for concurrent use.
type Calendar struct {
	opts options
	sys  system

	twoDigit memo[int]
	adjust   memo[int]
}

// Fields are the date and time parts of an instant in a calendar.
type Fields struct {
	Era         int
	Year        int
	Month       int
	Day         int
	Hour        int
	Minute      int
	Second      int
	Millisecond int
}

func (c *Calendar) Kind() Kind { return c.opts.kind }

// MinSupported is the first instant the calendar can represent.
func (c *Calendar) MinSupported() Instant { return c.sys.minSupported() }

// MaxSupported is the last instant the calendar can represent.
func (c *Calendar) MaxSupported() Instant { return c.sys.maxSupported() }

// Eras lists the calendar's era identifiers, newest first.
func (c *Calendar) Eras() []int {
	return append([]int(nil), c.sys.eras()...)
}

// EraInfos returns the era table of era-partitioned calendars, newest first,
// and nil for the others.
func (c *Calendar) EraInfos() []EraInfo {
	if e, ok := c.sys.(interface{ eraInfos() []EraInfo }); ok {
		return e.eraInfos()
	}
	return nil
}

// GregorianType is the localized flavor of a Gregorian calendar, zero for
// other kinds.
func (c *Calendar) GregorianType() GregorianType { return c.opts.gregorianType }

// EnforcesEraYearRanges reports whether era years past an era's end are rejected.
func (c *Calendar) EnforcesEraYearRanges() bool { return c.opts.enforceEraYearRanges }

// TwoDigitYearMax is the last year of the window two-digit years expand into.
// Without an explicit setting the locale defaults are consulted once, then the
// calendar's built-in default applies.
func (c *Calendar) TwoDigitYearMax() int {
	return c.twoDigit.get(func() int {
		if c.opts.twoDigitYearMax != 0 {
			return c.opts.twoDigitYearMax
		}
		if d := c.opts.defaults; d != nil {
			_, maxYear := c.sys.yearRange()
			if v, ok := d.TwoDigitYearMax(c.opts.kind); ok && v >= minTwoDigitYearMax && v <= max(maxYear, minTwoDigitYearMax) {
				return v
			}
		}
		return c.sys.defaultTwoDigitYearMax()
	})
}

// HijriAdjustment is the day offset applied by a Hijri calendar.
func (c *Calendar) HijriAdjustment() (int, error) {
	if c.opts.kind != Hijri {
		return 0, &Error{Op: "HijriAdjustment", Err: ErrUnsupported}
	}
	return c.hijriAdjustment(), nil
}

func (c *Calendar) hijriAdjustment() int {
	return c.adjust.get(func() int {
		if c.opts.hasHijriAdjustment {
			return c.opts.hijriAdjustment
		}
		if d := c.opts.defaults; d != nil {
			if v, ok := d.HijriAdjustment(); ok && v >= minHijriAdjustment && v <= maxHijriAdjustment {
				return v
			}
		}
		return 0
	})
}

// -----------------------------------------------------------------------------
// Arithmetic
// -----------------------------------------------------------------------------

// AddMonths moves t by whole calendar months, clamping the day to the length of
// the destination month and keeping the time of day.
func (c *Calendar) AddMonths(t Instant, months int) (Instant, error) {
	const op = "AddMonths"
	if months < -maxMonthsDelta || months > maxMonthsDelta {
		return 0, rangeError(op, "months", int64(months))
	}
	if err := c.checkInstant(op, t); err != nil {
		return 0, err
	}
	r, err := c.sys.addMonths(t, months)
	return r, withOp(op, err)
}

// AddYears moves t by whole calendar years, clamping the day like AddMonths.
func (c *Calendar) AddYears(t Instant, years int) (Instant, error) {
	const op = "AddYears"
	if years < -maxYearsDelta || years > maxYearsDelta {
		return 0, rangeError(op, "years", int64(years))
	}
	if err := c.checkInstant(op, t); err != nil {
		return 0, err
	}
	r, err := c.sys.addYears(t, years)
	return r, withOp(op, err)
}

func (c *Calendar) AddDays(t Instant, days int) (Instant, error) {
	return c.add("AddDays", t, float64(days), millisPerDay)
}

func (c *Calendar) AddHours(t Instant, hours int) (Instant, error) {
	return c.add("AddHours", t, float64(hours), millisPerHour)
}

func (c *Calendar) AddMinutes(t Instant, minutes int) (Instant, error) {
	return c.add("AddMinutes", t, float64(minutes), millisPerMinute)
}

func (c *Calendar) AddSeconds(t Instant, seconds int) (Instant, error) {
	return c.add("AddSeconds", t, float64(seconds), millisPerSecond)
}

// AddMilliseconds accepts fractional values; the scaled amount is rounded half
// away from zero to whole milliseconds.
func (c *Calendar) AddMilliseconds(t Instant, milliseconds float64) (Instant, error) {
	return c.add("AddMilliseconds", t, milliseconds, 1)
}

func (c *Calendar) add(op string, t Instant, value float64, scale int64) (Instant, error) {
	half := 0.5
	if value < 0 {
		half = -0.5
	}
	millis := value*float64(scale) + half
	// Written as a negated conjunction so that NaN fails too.
	if !(millis > -float64(maxMillis) && millis < float64(maxMillis)) {
		return 0, &Error{Op: op, Param: "value", Value: int64(value), Err: ErrOutOfRange}
	}
	r, err := checkAddResult(int64(t)+int64(millis)*TicksPerMillisecond, c.sys.minSupported(), c.sys.maxSupported())
	return r, withOp(op, err)
}

// -----------------------------------------------------------------------------
// Field Extraction
// -----------------------------------------------------------------------------

func (c *Calendar) checkInstant(op string, t Instant) error {
	if t < c.sys.minSupported() || t > c.sys.maxSupported() {
		return rangeError(op, "time", int64(t))
	}
	return nil
}

func (c *Calendar) date(op string, t Instant) (fields, error) {
	if err := c.checkInstant(op, t); err != nil {
		return fields{}, err
	}
	f, err := c.sys.date(t)
	return f, withOp(op, err)
}

func (c *Calendar) Era(t Instant) (int, error) {
	f, err := c.date("Era", t)
	return f.era, err
}

func (c *Calendar) Year(t Instant) (int, error) {
	f, err := c.date("Year", t)
	return f.year, err
}

func (c *Calendar) Month(t Instant) (int, error) {
	f, err := c.date("Month", t)
	return f.month, err
}

func (c *Calendar) DayOfMonth(t Instant) (int, error) {
	f, err := c.date("DayOfMonth", t)
	return f.day, err
}

// DayOfYear is 1-based.
func (c *Calendar) DayOfYear(t Instant) (int, error) {
	f, err := c.date("DayOfYear", t)
	return f.dayOfYear, err
}

// DayOfWeek does not depend on the calendar but still requires a supported instant.
func (c *Calendar) DayOfWeek(t Instant) (time.Weekday, error) {
	if err := c.checkInstant("DayOfWeek", t); err != nil {
		return 0, err
	}
	return t.DayOfWeek(), nil
}

// Fields returns every date and time part of t at once.
func (c *Calendar) Fields(t Instant) (Fields, error) {
	f, err := c.date("Fields", t)
	if err != nil {
		return Fields{}, err
	}
	tod := t.TimeOfDay()
	return Fields{
		Era:         f.era,
		Year:        f.year,
		Month:       f.month,
		Day:         f.day,
		Hour:        int(tod / TicksPerHour),
		Minute:      int(tod % TicksPerHour / TicksPerMinute),
		Second:      int(tod % TicksPerMinute / TicksPerSecond),
		Millisecond: int(tod % TicksPerSecond / TicksPerMillisecond),
	}, nil
}

// -----------------------------------------------------------------------------
// Calendar Structure
// -----------------------------------------------------------------------------

func (c *Calendar) DaysInMonth(year, month, era int) (int, error) {
	n, err := c.sys.daysInMonth(year, month, era)
	return n, withOp("DaysInMonth", err)
}

func (c *Calendar) DaysInYear(year, era int) (int, error) {
	n, err := c.sys.daysInYear(year, era)
	return n, withOp("DaysInYear", err)
}

func (c *Calendar) MonthsInYear(year, era int) (int, error) {
	n, err := c.sys.monthsInYear(year, era)
	return n, withOp("MonthsInYear", err)
}

func (c *Calendar) IsLeapYear(year, era int) (bool, error) {
	leap, err := c.sys.isLeapYear(year, era)
	return leap, withOp("IsLeapYear", err)
}

// LeapMonth is the 1-based index of the year's leap month, 0 when it has none.
func (c *Calendar) LeapMonth(year, era int) (int, error) {
	m, err := c.sys.leapMonth(year, era)
	return m, withOp("LeapMonth", err)
}

func (c *Calendar) IsLeapMonth(year, month, era int) (bool, error) {
	const op = "IsLeapMonth"
	n, err := c.sys.monthsInYear(year, era)
	if err != nil {
		return false, withOp(op, err)
	}
	if month < 1 || month > n {
		return false, rangeError(op, "month", int64(month))
	}
	leap, err := c.sys.leapMonth(year, era)
	if err != nil {
		return false, withOp(op, err)
	}
	return leap != 0 && month == leap, nil
}

func (c *Calendar) IsLeapDay(year, month, day, era int) (bool, error) {
	const op = "IsLeapDay"
	n, err := c.sys.daysInMonth(year, month, era)
	if err != nil {
		return false, withOp(op, err)
	}
	if day < 1 || day > n {
		return false, rangeError(op, "day", int64(day))
	}
	return c.sys.isLeapDay(year, month, day, era), nil
}

// ToInstant composes a date and time of day into an instant.
func (c *Calendar) ToInstant(year, month, day, hour, minute, second, millisecond, era int) (Instant, error) {
	const op = "ToInstant"
	tod, err := timeToTicks(hour, minute, second, millisecond)
	if err != nil {
		return 0, withOp(op, err)
	}
	days, err := c.dateToDays(year, month, day, era)
	if err != nil {
		return 0, withOp(op, err)
	}
	ticks := fromDays(days, tod)
	if ticks < int64(c.sys.minSupported()) || ticks > int64(c.sys.maxSupported()) {
		return 0, rangeError(op, "date", ticks)
	}
	return Instant(ticks), nil
}

// FromFields is ToInstant taking its arguments from f.
func (c *Calendar) FromFields(f Fields) (Instant, error) {
	return c.ToInstant(f.Year, f.Month, f.Day, f.Hour, f.Minute, f.Second, f.Millisecond, f.Era)
}

func (c *Calendar) dateToDays(year, month, day, era int) (int, error) {
	n, err := c.sys.daysInMonth(year, month, era)
	if err != nil {
		return 0, err
	}
	if day < 1 || day > n {
		return 0, rangeError("", "day", int64(day))
	}
	return c.sys.toDays(year, month, day, era)
}

func (c *Calendar) IsValidYear(year, era int) bool {
	_, err := c.sys.daysInYear(year, era)
	return err == nil
}

func (c *Calendar) IsValidMonth(year, month, era int) bool {
	n, err := c.sys.monthsInYear(year, era)
	return err == nil && month >= 1 && month <= n
}

// IsValidDay also requires the date to lie in the supported range.
func (c *Calendar) IsValidDay(year, month, day, era int) bool {
	_, err := c.ToInstant(year, month, day, 0, 0, 0, 0, era)
	return err == nil
}

// ToFourDigitYear expands a two-digit year into the 100-year window ending at
// TwoDigitYearMax. Larger years are returned unchanged when valid.
func (c *Calendar) ToFourDigitYear(year int) (int, error) {
	const op = "ToFourDigitYear"
	if year < 0 {
		return 0, rangeError(op, "year", int64(year))
	}
	if year < 100 {
		limit := c.TwoDigitYearMax()
		century := limit / 100
		if year > limit%100 {
			century--
		}
		return century*100 + year, nil
	}
	if minYear, maxYear := c.sys.yearRange(); year < minYear || year > maxYear {
		return 0, rangeError(op, "year", int64(year))
	}
	return year, nil
}
