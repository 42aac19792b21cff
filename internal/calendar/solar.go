package calendar

// solar is the arithmetic Gregorian calendar, optionally renumbered by an era
// table. Gregorian, Japanese, Taiwan, Korean and Thai Buddhist calendars share
// it and differ only in their eras.
type solar struct {
	eraTab          *eraTable
	min             Instant
	twoDigitYearMax int
}

func mustDate(year, month, day int) Instant {
	return Instant(fromDays(absoluteDays(year, month, day), 0))
}

var (
	gregorianEras = []EraInfo{
		{Era: 1, Start: MinInstant, YearOffset: 0, MinEraYear: 1, MaxEraYear: maxGregorianYear},
	}
	japaneseEras = []EraInfo{
		{Era: 5, Start: mustDate(2019, 5, 1), YearOffset: 2018, MinEraYear: 1, MaxEraYear: maxGregorianYear - 2018},
		{Era: 4, Start: mustDate(1989, 1, 8), YearOffset: 1988, MinEraYear: 1, MaxEraYear: 31},
		{Era: 3, Start: mustDate(1926, 12, 25), YearOffset: 1925, MinEraYear: 1, MaxEraYear: 64},
		{Era: 2, Start: mustDate(1912, 7, 30), YearOffset: 1911, MinEraYear: 1, MaxEraYear: 15},
		{Era: 1, Start: mustDate(1868, 1, 1), YearOffset: 1867, MinEraYear: 1, MaxEraYear: 45},
	}
	taiwanEras = []EraInfo{
		{Era: 1, Start: mustDate(1912, 1, 1), YearOffset: 1911, MinEraYear: 1, MaxEraYear: maxGregorianYear - 1911},
	}
	koreanEras = []EraInfo{
		{Era: 1, Start: MinInstant, YearOffset: -2333, MinEraYear: 2334, MaxEraYear: maxGregorianYear + 2333},
	}
	thaiEras = []EraInfo{
		{Era: 1, Start: MinInstant, YearOffset: -543, MinEraYear: 544, MaxEraYear: maxGregorianYear + 543},
	}
)

// Japanese era names, indexed by era identifier.
var japaneseEraNames = [...]string{"", "Meiji", "Taisho", "Showa", "Heisei", "Reiwa"}

// JapaneseEraName returns the romanized name of a Japanese era, or "" when era
// is not one.
func JapaneseEraName(era int) string {
	if era < 1 || era >= len(japaneseEraNames) {
		return ""
	}
	return japaneseEraNames[era]
}

func newSolar(k Kind, enforce bool) *solar {
	switch k {
	case Japanese:
		return &solar{eraTab: newEraTable(japaneseEras, enforce), min: mustDate(1868, 9, 8), twoDigitYearMax: 99}
	case Taiwan:
		return &solar{eraTab: newEraTable(taiwanEras, enforce), min: taiwanEras[0].Start, twoDigitYearMax: 99}
	case Korean:
		return &solar{eraTab: newEraTable(koreanEras, enforce), min: MinInstant, twoDigitYearMax: 4362}
	case ThaiBuddhist:
		return &solar{eraTab: newEraTable(thaiEras, enforce), min: MinInstant, twoDigitYearMax: 2572}
	}
	return &solar{eraTab: newEraTable(gregorianEras, enforce), min: MinInstant, twoDigitYearMax: 2049}
}

func (s *solar) minSupported() Instant { return s.min }
func (s *solar) maxSupported() Instant { return MaxInstant }
func (s *solar) eras() []int { return s.eraTab.ids() }
func (s *solar) yearRange() (int, int) { return s.eraTab.yearRange() }
func (s *solar) defaultTwoDigitYearMax() int { return s.twoDigitYearMax }
func (s *solar) daysInYearBeforeMin() int { return daysPerYear }
func (s *solar) eraInfos() []EraInfo { return append([]EraInfo(nil), s.eraTab.rows...) }
func (s *solar) gregorianYear(year, era int) (int, error) { return s.eraTab.gregorianYear(year, era) }

func (s *solar) date(t Instant) (fields, error) {
	year, month, day, dayOfYear := gregorianFromDays(t.days())
	e := s.eraTab.at(t)
	return fields{era: e.Era, year: year - e.YearOffset, month: month, day: day, dayOfYear: dayOfYear}, nil
}

func (s *solar) checkMonth(year, month, era int) (int, error) {
	y, err := s.gregorianYear(year, era)
	if err != nil {
		return 0, err
	}
	if month < 1 || month > 12 {
		return 0, rangeError("", "month", int64(month))
	}
	return y, nil
}

func (s *solar) daysInMonth(year, month, era int) (int, error) {
	y, err := s.checkMonth(year, month, era)
	if err != nil {
		return 0, err
	}
	return gregorianDaysInMonth(y, month), nil
}

func (s *solar) daysInYear(year, era int) (int, error) {
	y, err := s.gregorianYear(year, era)
	if err != nil {
		return 0, err
	}
	if isGregorianLeap(y) {
		return 366, nil
	}
	return 365, nil
}

func (s *solar) monthsInYear(year, era int) (int, error) {
	if _, err := s.gregorianYear(year, era); err != nil {
		return 0, err
	}
	return 12, nil
}

func (s *solar) isLeapYear(year, era int) (bool, error) {
	y, err := s.gregorianYear(year, era)
	if err != nil {
		return false, err
	}
	return isGregorianLeap(y), nil
}

func (s *solar) leapMonth(year, era int) (int, error) {
	_, err := s.gregorianYear(year, era)
	return 0, err
}

func (s *solar) isLeapDay(year, month, day, era int) bool {
	y, err := s.gregorianYear(year, era)
	return err == nil && month == 2 && day == 29 && isGregorianLeap(y)
}

func (s *solar) toDays(year, month, day, era int) (int, error) {
	y, err := s.gregorianYear(year, era)
	if err != nil {
		return 0, err
	}
	if y < 1 || y > maxGregorianYear {
		return 0, rangeError("", "year", int64(year))
	}
	return absoluteDays(y, month, day), nil
}

// addTwelveMonths steps a year/month pair of a 12-month calendar.
func addTwelveMonths(year, month, months int) (int, int) {
	i := month - 1 + months
	if i >= 0 {
		return year + i/12, i%12 + 1
	}
	return year + (i-11)/12, 12 + (i+1)%12
}

func (s *solar) addMonths(t Instant, months int) (Instant, error) {
	year, month, day, _ := gregorianFromDays(t.days())
	y, m := addTwelveMonths(year, month, months)
	if y < 1 || y > maxGregorianYear {
		return 0, rangeError("", "months", int64(months))
	}
	d := min(day, gregorianDaysInMonth(y, m))
	return checkAddResult(fromDays(absoluteDays(y, m, d), t.TimeOfDay()), s.min, MaxInstant)
}

func (s *solar) addYears(t Instant, years int) (Instant, error) {
	return s.addMonths(t, years*12)
}
