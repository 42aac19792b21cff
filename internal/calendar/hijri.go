package calendar

// hijri is the arithmetic (civil) Islamic calendar: 30-year cycles with 11 leap
// years, months alternating 30 and 29 days. The adjustment shifts every date by
// up to two days to follow local moon sighting.
type hijri struct {
	adjustment func() int
}

const (
	hijriEra      = 1
	hijriMaxYear  = 9666
	hijriMaxMonth = 4

	// hijriEpochDays is the day number of 1 Muharram 1 AH (0622-07-18).
	hijriEpochDays = 227013
)

// hijriMonthDays[m] is the number of days before month m+1.
var hijriMonthDays = [13]int{0, 30, 59, 89, 118, 148, 177, 207, 236, 266, 295, 325, 355}

var hijriMin = Instant(fromDays(hijriEpochDays, 0))

// minSupported moves past the epoch by a negative adjustment so that the first
// supported day is still 1 Muharram 1.
func (h *hijri) minSupported() Instant {
	if adj := h.adjustment(); adj < 0 {
		return Instant(fromDays(hijriEpochDays-adj, 0))
	}
	return hijriMin
}
func (h *hijri) maxSupported() Instant { return MaxInstant }
func (h *hijri) eras() []int { return []int{hijriEra} }
func (h *hijri) yearRange() (int, int) { return 1, hijriMaxYear }
func (h *hijri) defaultTwoDigitYearMax() int { return 1451 }
func (h *hijri) daysInYearBeforeMin() int { return 354 }

func isHijriLeap(year int) bool {
	return (year*11+14)%30 < 11
}

// daysUpToHijriYear is the day number of 1 Muharram of year.
func daysUpToHijriYear(year int) int {
	n30 := ((year - 1) / 30) * 30
	left := year - n30 - 1
	days := n30*10631/30 + hijriEpochDays
	for ; left > 0; left-- {
		days += 354
		if isHijriLeap(left) {
			days++
		}
	}
	return days
}

func checkSingleEra(era int) error {
	if era != CurrentEra && era != 1 {
		return eraError(era)
	}
	return nil
}

func (h *hijri) checkYear(year, era int) error {
	if err := checkSingleEra(era); err != nil {
		return err
	}
	if year < 1 || year > hijriMaxYear {
		return rangeError("", "year", int64(year))
	}
	return nil
}

func (h *hijri) checkMonth(year, month, era int) error {
	if err := h.checkYear(year, era); err != nil {
		return err
	}
	if year == hijriMaxYear && month > hijriMaxMonth {
		return rangeError("", "month", int64(month))
	}
	if month < 1 || month > 12 {
		return rangeError("", "month", int64(month))
	}
	return nil
}

func hijriDaysInMonth(year, month int) int {
	if month == 12 {
		if isHijriLeap(year) {
			return 30
		}
		return 29
	}
	if month%2 == 1 {
		return 30
	}
	return 29
}

func (h *hijri) daysInMonth(year, month, era int) (int, error) {
	if err := h.checkMonth(year, month, era); err != nil {
		return 0, err
	}
	return hijriDaysInMonth(year, month), nil
}

func (h *hijri) daysInYear(year, era int) (int, error) {
	if err := h.checkYear(year, era); err != nil {
		return 0, err
	}
	if isHijriLeap(year) {
		return 355, nil
	}
	return 354, nil
}

func (h *hijri) monthsInYear(year, era int) (int, error) {
	return 12, h.checkYear(year, era)
}

func (h *hijri) isLeapYear(year, era int) (bool, error) {
	if err := h.checkYear(year, era); err != nil {
		return false, err
	}
	return isHijriLeap(year), nil
}

func (h *hijri) leapMonth(year, era int) (int, error) {
	return 0, h.checkYear(year, era)
}

func (h *hijri) isLeapDay(year, month, day, _ int) bool {
	return isHijriLeap(year) && month == 12 && day == 30
}

func (h *hijri) toDays(year, month, day, _ int) (int, error) {
	days := daysUpToHijriYear(year) + hijriMonthDays[month-1] + day - 1 - h.adjustment()
	if days < 0 {
		return 0, rangeError("", "day", int64(day))
	}
	return days, nil
}

func (h *hijri) date(t Instant) (fields, error) {
	numDays := t.days() + 1 + h.adjustment()

	year := (numDays-hijriEpochDays)*30/10631 + 1
	daysToYear := daysUpToHijriYear(year)
	daysInYear := 354
	if isHijriLeap(year) {
		daysInYear = 355
	}
	if numDays < daysToYear {
		year--
		daysToYear = daysUpToHijriYear(year)
	} else if numDays == daysToYear {
		year--
		daysToYear -= 354
		if isHijriLeap(year) {
			daysToYear--
		}
	} else if numDays > daysToYear+daysInYear {
		daysToYear += daysInYear
		year++
	}
	if year < 1 {
		return fields{}, rangeError("", "time", int64(t))
	}

	dayOfYear := numDays - daysToYear
	month := 1
	for month <= 12 && dayOfYear > hijriMonthDays[month-1] {
		month++
	}
	month--
	return fields{
		era:       hijriEra,
		year:      year,
		month:     month,
		day:       dayOfYear - hijriMonthDays[month-1],
		dayOfYear: dayOfYear,
	}, nil
}

func (h *hijri) addMonths(t Instant, months int) (Instant, error) {
	f, err := h.date(t)
	if err != nil {
		return 0, err
	}
	y, m := addTwelveMonths(f.year, f.month, months)
	dim, err := h.daysInMonth(y, m, hijriEra)
	if err != nil {
		return 0, err
	}
	days, err := h.toDays(y, m, min(f.day, dim), hijriEra)
	if err != nil {
		return 0, err
	}
	return checkAddResult(fromDays(days, t.TimeOfDay()), h.minSupported(), MaxInstant)
}

func (h *hijri) addYears(t Instant, years int) (Instant, error) {
	return h.addMonths(t, years*12)
}
