package calendar

// hebrew is the table-driven Hebrew calendar. Month 1 is Tishri; leap years
// insert Adar I as month 6 and Adar II as month 7.
type hebrew struct{}

type hebrewRow struct {
	month, day uint8 // Gregorian date of 1 Tishri
	kind       uint8 // 1-3 common deficient/regular/complete, 4-6 leap
}

const (
	hebrewEra        = 1
	hebrewTableFirst = 5342
	hebrewMinYear    = 5343
	hebrewMaxYear    = hebrewTableFirst + len(hebrewYears) - 1
	hebrewLeapMonth  = 7

	// Hebrew year y starts in Gregorian year y-hebrewYearOffset.
	hebrewYearOffset = 3761
)

// hebrewMonthLengths[kind] lists month lengths from Tishri; common years have
// no thirteenth month.
var hebrewMonthLengths = [7][14]int{
	{},
	{0, 30, 29, 29, 29, 30, 29, 30, 29, 30, 29, 30, 29, 0},
	{0, 30, 29, 30, 29, 30, 29, 30, 29, 30, 29, 30, 29, 0},
	{0, 30, 30, 30, 29, 30, 29, 30, 29, 30, 29, 30, 29, 0},
	{0, 30, 29, 29, 29, 30, 30, 29, 30, 29, 30, 29, 30, 29},
	{0, 30, 29, 30, 29, 30, 30, 29, 30, 29, 30, 29, 30, 29},
	{0, 30, 30, 30, 29, 30, 30, 29, 30, 29, 30, 29, 30, 29},
}

var hebrewYearLengths = [7]int{0, 353, 354, 355, 383, 384, 385}

// hebrewStarts[i] is the day number of 1 Tishri of hebrewTableFirst+i; the
// extra last entry is 1 Tishri of the year after the table.
var hebrewStarts = decodeHebrew()

var (
	hebrewMin = mustDate(1583, 1, 1)
	hebrewMax = Instant(fromDays(hebrewStarts[len(hebrewStarts)-1], 0) - 1)
)

func decodeHebrew() []int {
	starts := make([]int, len(hebrewYears)+1)
	for i, r := range hebrewYears {
		year := hebrewTableFirst + i - hebrewYearOffset
		starts[i] = absoluteDays(year, int(r.month), int(r.day))
	}
	starts[len(hebrewYears)] = hebrewEndOfTable.days()
	return starts
}

func isHebrewLeap(year int) bool {
	return (7*year+1)%19 < 7
}

func (hebrew) minSupported() Instant { return hebrewMin }
func (hebrew) maxSupported() Instant { return hebrewMax }
func (hebrew) eras() []int { return []int{hebrewEra} }
func (hebrew) yearRange() (int, int) { return hebrewMinYear, hebrewMaxYear }
func (hebrew) defaultTwoDigitYearMax() int { return 5790 }

func (hebrew) daysInYearBeforeMin() int {
	return hebrewYearLengths[hebrewYears[hebrewMinYear-1-hebrewTableFirst].kind]
}

func (hebrew) checkYear(year, era int) error {
	if err := checkSingleEra(era); err != nil {
		return err
	}
	if year < hebrewMinYear || year > hebrewMaxYear {
		return rangeError("", "year", int64(year))
	}
	return nil
}

func hebrewMonths(year int) int {
	if isHebrewLeap(year) {
		return 13
	}
	return 12
}

func hebrewKind(year int) uint8 {
	return hebrewYears[year-hebrewTableFirst].kind
}

func (h hebrew) daysInMonth(year, month, era int) (int, error) {
	if err := h.checkYear(year, era); err != nil {
		return 0, err
	}
	if month < 1 || month > hebrewMonths(year) {
		return 0, rangeError("", "month", int64(month))
	}
	return hebrewMonthLengths[hebrewKind(year)][month], nil
}

func (h hebrew) daysInYear(year, era int) (int, error) {
	if err := h.checkYear(year, era); err != nil {
		return 0, err
	}
	return hebrewYearLengths[hebrewKind(year)], nil
}

func (h hebrew) monthsInYear(year, era int) (int, error) {
	if err := h.checkYear(year, era); err != nil {
		return 0, err
	}
	return hebrewMonths(year), nil
}

func (h hebrew) isLeapYear(year, era int) (bool, error) {
	if err := h.checkYear(year, era); err != nil {
		return false, err
	}
	return isHebrewLeap(year), nil
}

func (h hebrew) leapMonth(year, era int) (int, error) {
	if err := h.checkYear(year, era); err != nil {
		return 0, err
	}
	if isHebrewLeap(year) {
		return hebrewLeapMonth, nil
	}
	return 0, nil
}

// isLeapDay covers the whole inserted month and the 30th of Adar I.
func (hebrew) isLeapDay(year, month, day, _ int) bool {
	if !isHebrewLeap(year) {
		return false
	}
	return month == hebrewLeapMonth || (month == hebrewLeapMonth-1 && day == 30)
}

func (hebrew) toDays(year, month, day, _ int) (int, error) {
	return hebrewDays(year, month, day), nil
}

func hebrewDays(year, month, day int) int {
	days := hebrewStarts[year-hebrewTableFirst]
	lengths := &hebrewMonthLengths[hebrewKind(year)]
	for m := 1; m < month; m++ {
		days += lengths[m]
	}
	return days + day - 1
}

func (hebrew) date(t Instant) (fields, error) {
	n := t.days()
	// Years are at least 353 days long; walk forward from the estimate.
	i := (n - hebrewStarts[0]) / 386
	for n >= hebrewStarts[i+1] {
		i++
	}
	year := hebrewTableFirst + i
	lengths := &hebrewMonthLengths[hebrewYears[i].kind]

	rem := n - hebrewStarts[i]
	month := 1
	for rem >= lengths[month] {
		rem -= lengths[month]
		month++
	}
	return fields{
		era:       hebrewEra,
		year:      year,
		month:     month,
		day:       rem + 1,
		dayOfYear: n - hebrewStarts[i] + 1,
	}, nil
}

func (h hebrew) addMonths(t Instant, months int) (Instant, error) {
	f, err := h.date(t)
	if err != nil {
		return 0, err
	}
	y, i := f.year, f.month+months
	if months >= 0 {
		for y <= hebrewMaxYear && i > hebrewMonths(y) {
			i -= hebrewMonths(y)
			y++
		}
	} else if i <= 0 {
		rest := -months - f.month
		y--
		for y >= hebrewMinYear && rest >= hebrewMonths(y) {
			rest -= hebrewMonths(y)
			y--
		}
		i = hebrewMonths(y) - rest
	}
	dim, err := h.daysInMonth(y, i, hebrewEra)
	if err != nil {
		return 0, err
	}
	return checkAddResult(fromDays(hebrewDays(y, i, min(f.day, dim)), t.TimeOfDay()), hebrewMin, hebrewMax)
}

// addYears keeps the month number, clamping it to the destination year's month
// count and the day to the month's length.
func (h hebrew) addYears(t Instant, years int) (Instant, error) {
	f, err := h.date(t)
	if err != nil {
		return 0, err
	}
	y := f.year + years
	if err := h.checkYear(y, hebrewEra); err != nil {
		return 0, err
	}
	m := min(f.month, hebrewMonths(y))
	d := min(f.day, hebrewMonthLengths[hebrewKind(y)][m])
	return checkAddResult(fromDays(hebrewDays(y, m, d), t.TimeOfDay()), hebrewMin, hebrewMax)
}
