package calendar

import "math/bits"

// umAlQura is the Saudi observational Hijri calendar, entirely table driven.
type umAlQura struct{}

type umAlQuraRow struct {
	mask       uint16
	year       int16
	month, day uint8
}

const (
	umAlQuraEra      = 1
	umAlQuraMinYear  = 1318
	umAlQuraMaxYear  = umAlQuraMinYear + len(umAlQuraYears) - 1
	umAlQuraYearSpan = 355
)

// umAlQuraStarts[i] is the day number of 1 Muharram of year umAlQuraMinYear+i;
// the extra last entry closes the final year.
var umAlQuraStarts = decodeUmAlQura()

var (
	umAlQuraMin = Instant(fromDays(umAlQuraStarts[0], 0))
	umAlQuraMax = Instant(fromDays(umAlQuraStarts[len(umAlQuraStarts)-1], 0) - 1)
)

func decodeUmAlQura() []int {
	starts := make([]int, len(umAlQuraYears)+1)
	for i, r := range umAlQuraYears {
		starts[i] = absoluteDays(int(r.year), int(r.month), int(r.day))
	}
	last := len(umAlQuraYears) - 1
	starts[last+1] = starts[last] + umAlQuraYearLength(umAlQuraYears[last].mask)
	return starts
}

func umAlQuraYearLength(mask uint16) int {
	return 12*29 + bits.OnesCount16(mask)
}

func umAlQuraMonthLength(mask uint16, month int) int {
	return 29 + int(mask>>(month-1)&1)
}

func (umAlQura) minSupported() Instant { return umAlQuraMin }
func (umAlQura) maxSupported() Instant { return umAlQuraMax }
func (umAlQura) eras() []int { return []int{umAlQuraEra} }
func (umAlQura) yearRange() (int, int) { return umAlQuraMinYear, umAlQuraMaxYear }
func (umAlQura) defaultTwoDigitYearMax() int { return 1451 }
func (umAlQura) daysInYearBeforeMin() int { return 355 }

func (umAlQura) checkYear(year, era int) error {
	if err := checkSingleEra(era); err != nil {
		return err
	}
	if year < umAlQuraMinYear || year > umAlQuraMaxYear {
		return rangeError("", "year", int64(year))
	}
	return nil
}

func (u umAlQura) checkMonth(year, month, era int) error {
	if err := u.checkYear(year, era); err != nil {
		return err
	}
	if month < 1 || month > 12 {
		return rangeError("", "month", int64(month))
	}
	return nil
}

func (u umAlQura) daysInMonth(year, month, era int) (int, error) {
	if err := u.checkMonth(year, month, era); err != nil {
		return 0, err
	}
	return umAlQuraMonthLength(umAlQuraYears[year-umAlQuraMinYear].mask, month), nil
}

func (u umAlQura) daysInYear(year, era int) (int, error) {
	if err := u.checkYear(year, era); err != nil {
		return 0, err
	}
	return umAlQuraYearLength(umAlQuraYears[year-umAlQuraMinYear].mask), nil
}

func (u umAlQura) monthsInYear(year, era int) (int, error) {
	return 12, u.checkYear(year, era)
}

func (u umAlQura) isLeapYear(year, era int) (bool, error) {
	n, err := u.daysInYear(year, era)
	return n == 355, err
}

func (u umAlQura) leapMonth(year, era int) (int, error) {
	return 0, u.checkYear(year, era)
}

func (umAlQura) isLeapDay(_, _, _, _ int) bool { return false }

func (umAlQura) toDays(year, month, day, _ int) (int, error) {
	i := year - umAlQuraMinYear
	days := umAlQuraStarts[i]
	mask := umAlQuraYears[i].mask
	for m := 1; m < month; m++ {
		days += umAlQuraMonthLength(mask, m)
	}
	return days + day - 1, nil
}

func (umAlQura) date(t Instant) (fields, error) {
	n := t.days()
	// Every year is at most umAlQuraYearSpan days long, so the estimate never
	// lands past the target year.
	i := (n - umAlQuraStarts[0]) / umAlQuraYearSpan
	for n >= umAlQuraStarts[i+1] {
		i++
	}

	mask := umAlQuraYears[i].mask
	rem := n - umAlQuraStarts[i]
	month := 1
	for l := umAlQuraMonthLength(mask, month); rem >= l; l = umAlQuraMonthLength(mask, month) {
		rem -= l
		month++
	}
	return fields{
		era:       umAlQuraEra,
		year:      umAlQuraMinYear + i,
		month:     month,
		day:       rem + 1,
		dayOfYear: n - umAlQuraStarts[i] + 1,
	}, nil
}

func (u umAlQura) addMonths(t Instant, months int) (Instant, error) {
	f, err := u.date(t)
	if err != nil {
		return 0, err
	}
	y, m := addTwelveMonths(f.year, f.month, months)
	dim, err := u.daysInMonth(y, m, umAlQuraEra)
	if err != nil {
		return 0, err
	}
	days, err := u.toDays(y, m, min(f.day, dim), umAlQuraEra)
	if err != nil {
		return 0, err
	}
	return checkAddResult(fromDays(days, t.TimeOfDay()), umAlQuraMin, umAlQuraMax)
}

func (u umAlQura) addYears(t Instant, years int) (Instant, error) {
	return u.addMonths(t, years*12)
}
