package calendar

import (
	"math"

	"github.com/tartampluch/go-calendar/internal/astro"
)

// persian is the astronomical Solar Hijri calendar: each year starts on the day
// whose Tehran noon follows the vernal equinox. Months 1-6 have 31 days,
// months 7-11 have 30 and Esfand has 29, or 30 in leap years.
type persian struct{}

const (
	persianEra      = 1
	persianMaxYear  = 9378
	persianMaxMonth = 10
	persianMaxDay   = 13
)

// persianDaysToMonth[m] is the number of days before month m+1.
var persianDaysToMonth = [13]int{0, 31, 62, 93, 124, 155, 186, 216, 246, 276, 306, 336, 366}

var (
	persianEpoch = absoluteDays(622, 3, 22)
	persianMin   = Instant(fromDays(persianEpoch, 0))
)

func (persian) minSupported() Instant { return persianMin }
func (persian) maxSupported() Instant { return MaxInstant }
func (persian) eras() []int { return []int{persianEra} }
func (persian) yearRange() (int, int) { return 1, persianMaxYear }
func (persian) defaultTwoDigitYearMax() int { return 1410 }
func (persian) daysInYearBeforeMin() int { return 365 }

// persianYearStart is the day number of 1 Farvardin of year.
func persianYearStart(year int) int {
	approx := int(astro.MeanTropicalYearInDays * float64(year-1))
	return astro.PersianNewYearOnOrBefore(persianEpoch + approx + 180)
}

func isPersianLeap(year int) bool {
	if year == persianMaxYear {
		return false
	}
	return persianYearStart(year+1)-persianYearStart(year) == 366
}

func (persian) checkYear(year, era int) error {
	if err := checkSingleEra(era); err != nil {
		return err
	}
	if year < 1 || year > persianMaxYear {
		return rangeError("", "year", int64(year))
	}
	return nil
}

func (p persian) checkMonth(year, month, era int) error {
	if err := p.checkYear(year, era); err != nil {
		return err
	}
	if year == persianMaxYear && month > persianMaxMonth {
		return rangeError("", "month", int64(month))
	}
	if month < 1 || month > 12 {
		return rangeError("", "month", int64(month))
	}
	return nil
}

func persianDaysInMonth(year, month int) int {
	if year == persianMaxYear && month == persianMaxMonth {
		return persianMaxDay
	}
	n := persianDaysToMonth[month] - persianDaysToMonth[month-1]
	if month == 12 && !isPersianLeap(year) {
		n--
	}
	return n
}

func (p persian) daysInMonth(year, month, era int) (int, error) {
	if err := p.checkMonth(year, month, era); err != nil {
		return 0, err
	}
	return persianDaysInMonth(year, month), nil
}

func (p persian) daysInYear(year, era int) (int, error) {
	if err := p.checkYear(year, era); err != nil {
		return 0, err
	}
	if year == persianMaxYear {
		return persianDaysToMonth[persianMaxMonth-1] + persianMaxDay, nil
	}
	if isPersianLeap(year) {
		return 366, nil
	}
	return 365, nil
}

func (p persian) monthsInYear(year, era int) (int, error) {
	if err := p.checkYear(year, era); err != nil {
		return 0, err
	}
	if year == persianMaxYear {
		return persianMaxMonth, nil
	}
	return 12, nil
}

func (p persian) isLeapYear(year, era int) (bool, error) {
	if err := p.checkYear(year, era); err != nil {
		return false, err
	}
	return isPersianLeap(year), nil
}

func (p persian) leapMonth(year, era int) (int, error) {
	return 0, p.checkYear(year, era)
}

func (persian) isLeapDay(year, month, day, _ int) bool {
	return month == 12 && day == 30 && isPersianLeap(year)
}

func (persian) toDays(year, month, day, _ int) (int, error) {
	return persianYearStart(year) + persianDaysToMonth[month-1] + day - 1, nil
}

func (persian) date(t Instant) (fields, error) {
	numDays := t.days() + 1
	yearStart := astro.PersianNewYearOnOrBefore(numDays)
	year := int(math.Floor(float64(yearStart-persianEpoch)/astro.MeanTropicalYearInDays+0.5)) + 1

	dayOfYear := numDays - persianYearStart(year)
	month := 1
	for month < 12 && dayOfYear > persianDaysToMonth[month] {
		month++
	}
	return fields{
		era:       persianEra,
		year:      year,
		month:     month,
		day:       dayOfYear - persianDaysToMonth[month-1],
		dayOfYear: dayOfYear,
	}, nil
}

func (p persian) addMonths(t Instant, months int) (Instant, error) {
	f, err := p.date(t)
	if err != nil {
		return 0, err
	}
	y, m := addTwelveMonths(f.year, f.month, months)
	dim, err := p.daysInMonth(y, m, persianEra)
	if err != nil {
		return 0, err
	}
	days, err := p.toDays(y, m, min(f.day, dim), persianEra)
	if err != nil {
		return 0, err
	}
	return checkAddResult(fromDays(days, t.TimeOfDay()), persianMin, MaxInstant)
}

func (p persian) addYears(t Instant, years int) (Instant, error) {
	return p.addMonths(t, years*12)
}
