package calendar

import (
	"fmt"
	"time"
)

// -----------------------------------------------------------------------------
// Tick Arithmetic
// -----------------------------------------------------------------------------

// Tick scales. A tick is 100 nanoseconds.
const (
	TicksPerMillisecond int64 = 10_000
	TicksPerSecond            = TicksPerMillisecond * 1000
	TicksPerMinute            = TicksPerSecond * 60
	TicksPerHour              = TicksPerMinute * 60
	TicksPerDay               = TicksPerHour * 24
)

const (
	millisPerSecond int64 = 1000
	millisPerMinute       = millisPerSecond * 60
	millisPerHour         = millisPerMinute * 60
	millisPerDay          = millisPerHour * 24

	daysPerYear     = 365
	daysPer4Years   = daysPerYear*4 + 1
	daysPer100Years = daysPer4Years*25 - 1
	daysPer400Years = daysPer100Years*4 + 1

	// daysTo10000 is the number of days from 0001-01-01 to 10000-01-01.
	daysTo10000 = daysPer400Years*25 - 366

	// maxMillis bounds any scaled addition before it is turned into ticks.
	maxMillis = int64(daysTo10000) * millisPerDay

	maxGregorianYear = 9999
)

// Instant is a point in time expressed as the number of 100ns ticks elapsed since
// 0001-01-01T00:00:00 in the proleptic Gregorian calendar. Instants carry no time
// zone; callers resolve zones before converting.
type Instant int64

// Bounds of the representable range.
const (
	MinInstant Instant = 0
	MaxInstant Instant = Instant(int64(daysTo10000)*TicksPerDay - 1)
)

// FromTime converts t, taken in UTC, to an Instant.
func FromTime(t time.Time) (Instant, error) {
	t = t.UTC()
	if y := t.Year(); y < 1 || y > maxGregorianYear {
		return 0, rangeError("FromTime", "year", int64(y))
	}
	days := absoluteDays(t.Year(), int(t.Month()), t.Day())
	tod := int64(t.Hour())*TicksPerHour +
		int64(t.Minute())*TicksPerMinute +
		int64(t.Second())*TicksPerSecond +
		int64(t.Nanosecond())/100
	return Instant(int64(days)*TicksPerDay + tod), nil
}

// GregorianDate returns the Instant at midnight of a proleptic Gregorian date.
func GregorianDate(year, month, day int) (Instant, error) {
	if year < 1 || year > maxGregorianYear {
		return 0, rangeError("GregorianDate", "year", int64(year))
	}
	if month < 1 || month > 12 {
		return 0, rangeError("GregorianDate", "month", int64(month))
	}
	if day < 1 || day > gregorianDaysInMonth(year, month) {
		return 0, rangeError("GregorianDate", "day", int64(day))
	}
	return Instant(int64(absoluteDays(year, month, day)) * TicksPerDay), nil
}

// Time returns the instant as a UTC time.Time. The result is undefined for
// instants outside [MinInstant, MaxInstant].
func (i Instant) Time() time.Time {
	y, m, d, _ := gregorianFromDays(i.days())
	tod := i.TimeOfDay()
	return time.Date(y, time.Month(m), d,
		int(tod/TicksPerHour),
		int(tod%TicksPerHour/TicksPerMinute),
		int(tod%TicksPerMinute/TicksPerSecond),
		int(tod%TicksPerSecond)*100,
		time.UTC)
}

// DayOfWeek is independent of the calendar: 0001-01-01 was a Monday.
func (i Instant) DayOfWeek() time.Weekday {
	return time.Weekday((int64(i)/TicksPerDay + 1) % 7)
}

// TimeOfDay returns the ticks elapsed since midnight.
func (i Instant) TimeOfDay() int64 {
	return int64(i) % TicksPerDay
}

// Valid reports whether i lies in [MinInstant, MaxInstant].
func (i Instant) Valid() bool {
	return i >= MinInstant && i <= MaxInstant
}

func (i Instant) String() string {
	if !i.Valid() {
		return fmt.Sprintf("Instant(%d)", int64(i))
	}
	return i.Time().Format("2006-01-02T15:04:05.0000000")
}

func (i Instant) days() int {
	return int(int64(i) / TicksPerDay)
}

func fromDays(days int, timeOfDay int64) int64 {
	return int64(days)*TicksPerDay + timeOfDay
}

// timeToTicks validates a time of day and converts it to ticks.
func timeToTicks(hour, minute, second, millisecond int) (int64, error) {
	switch {
	case hour < 0 || hour > 23:
		return 0, rangeError("", "hour", int64(hour))
	case minute < 0 || minute > 59:
		return 0, rangeError("", "minute", int64(minute))
	case second < 0 || second > 59:
		return 0, rangeError("", "second", int64(second))
	case millisecond < 0 || millisecond >= int(millisPerSecond):
		return 0, rangeError("", "millisecond", int64(millisecond))
	}
	return int64(hour)*TicksPerHour +
		int64(minute)*TicksPerMinute +
		int64(second)*TicksPerSecond +
		int64(millisecond)*TicksPerMillisecond, nil
}

// checkAddResult verifies that an addition landed inside the calendar's range.
func checkAddResult(ticks int64, min, max Instant) (Instant, error) {
	if ticks < int64(min) || ticks > int64(max) {
		return 0, &Error{Param: "result", Value: ticks, Err: ErrOutOfRange}
	}
	return Instant(ticks), nil
}

// -----------------------------------------------------------------------------
// Proleptic Gregorian Day Arithmetic
// -----------------------------------------------------------------------------

var (
	daysToMonth365 = [13]int{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334, 365}
	daysToMonth366 = [13]int{0, 31, 60, 91, 121, 152, 182, 213, 244, 274, 305, 335, 366}
)

// gregorianDate is a plain proleptic Gregorian date used by the static tables.
type gregorianDate struct {
	year, month, day int
}

func (g gregorianDate) days() int {
	return absoluteDays(g.year, g.month, g.day)
}

func isGregorianLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func gregorianDaysToMonth(year int) *[13]int {
	if isGregorianLeap(year) {
		return &daysToMonth366
	}
	return &daysToMonth365
}

func gregorianDaysInMonth(year, month int) int {
	days := gregorianDaysToMonth(year)
	return days[month] - days[month-1]
}

// absoluteDays returns the number of days from 0001-01-01 to the given date.
// Arguments must already be valid.
func absoluteDays(year, month, day int) int {
	days := gregorianDaysToMonth(year)
	y := year - 1
	return y*365 + y/4 - y/100 + y/400 + days[month-1] + day - 1
}

// gregorianFromDays decomposes a day number into year, month, day and 1-based
// day of year by peeling off 400-, 100-, 4- and 1-year periods.
func gregorianFromDays(n int) (year, month, day, dayOfYear int) {
	y400 := n / daysPer400Years
	n -= y400 * daysPer400Years

	y100 := n / daysPer100Years
	// The last day of a 400-year period belongs to its fourth century.
	if y100 == 4 {
		y100 = 3
	}
	n -= y100 * daysPer100Years

	y4 := n / daysPer4Years
	n -= y4 * daysPer4Years

	y1 := n / daysPerYear
	if y1 == 4 {
		y1 = 3
	}
	year = y400*400 + y100*100 + y4*4 + y1 + 1
	n -= y1 * daysPerYear
	dayOfYear = n + 1

	leap := y1 == 3 && (y4 != 24 || y100 == 3)
	days := &daysToMonth365
	if leap {
		days = &daysToMonth366
	}
	// n>>5 is never past the target month since no month is shorter than 28 days.
	month = n>>5 + 1
	for n >= days[month] {
		month++
	}
	day = n - days[month-1] + 1
	return year, month, day, dayOfYear
}
