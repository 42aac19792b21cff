package calendar

// lunarYearRow is one row of a lunisolar table as declared in the data files.
type lunarYearRow struct {
	leapMonth    uint8 // regular month the leap month follows, 0 for none
	newYearMonth uint8
	newYearDay   uint8
	monthMask    uint16 // bit 15-i set when month i+1 has 30 days
}

type lunarTable struct {
	firstYear int
	rows      []lunarYearRow
}

// lunarYear is a decoded table row.
type lunarYear struct {
	start     int // day number of the first day of the year
	leapMonth int // 1-based index of the leap month, 0 for none
	months    int
	mask      uint16
}

func (y lunarYear) monthLength(month int) int {
	if y.mask&(0x8000>>(month-1)) != 0 {
		return 30
	}
	return 29
}

// monthDay splits a 0-based day of the year into month and day.
func (y lunarYear) monthDay(dayOfYear int) (int, int) {
	month := 1
	for ml := y.monthLength(month); dayOfYear >= ml; ml = y.monthLength(month) {
		dayOfYear -= ml
		month++
	}
	return month, dayOfYear + 1
}

func (y lunarYear) length() int {
	n := 0
	for m := 1; m <= y.months; m++ {
		n += y.monthLength(m)
	}
	return n
}

// decodedLunar is a table with absolute anchors; years[i] is lunar year first+i.
type decodedLunar struct {
	first int
	years []lunarYear
	end   int // day number following the last year
}

func decodeLunar(t lunarTable, from, to int) *decodedLunar {
	d := &decodedLunar{first: from, years: make([]lunarYear, 0, to-from+1)}
	for y := from; y <= to; y++ {
		r := t.rows[y-t.firstYear]
		ly := lunarYear{
			start:  absoluteDays(y, int(r.newYearMonth), int(r.newYearDay)),
			mask:   r.monthMask,
			months: 12,
		}
		if r.leapMonth != 0 {
			ly.leapMonth = int(r.leapMonth) + 1
			ly.months = 13
		}
		d.years = append(d.years, ly)
	}
	last := d.years[len(d.years)-1]
	d.end = last.start + last.length()
	return d
}

func (d *decodedLunar) last() int { return d.first + len(d.years) - 1 }

var (
	chineseLunar  = decodeLunar(chineseYears, 1901, 2100)
	taiwanLunar   = decodeLunar(chineseYears, 1912, 2050)
	koreanLunar   = decodeLunar(koreanYears, 918, 2050)
	japaneseLunar = decodeLunar(japaneseYears, 1960, 2049)
)

var (
	taiwanLunisolarEras = []EraInfo{
		{Era: 1, Start: mustDate(1912, 1, 1), YearOffset: 1911, MinEraYear: 1, MaxEraYear: 2050 - 1911},
	}
	japaneseLunisolarEras = []EraInfo{
		{Era: 5, Start: mustDate(2019, 5, 1), YearOffset: 2018, MinEraYear: 1, MaxEraYear: 2049 - 2018},
		{Era: 4, Start: mustDate(1989, 1, 8), YearOffset: 1988, MinEraYear: 1, MaxEraYear: 31},
		{Era: 3, Start: mustDate(1926, 12, 25), YearOffset: 1925, MinEraYear: 1, MaxEraYear: 64},
	}
)

// lunisolar is the East-Asian table-driven calendar. Years are numbered like
// the Gregorian year in which they start, optionally renumbered by eras.
type lunisolar struct {
	table  *decodedLunar
	eraTab *eraTable // nil when years are not era relative
}

func newLunisolar(k Kind, enforce bool) *lunisolar {
	switch k {
	case TaiwanLunisolar:
		return &lunisolar{table: taiwanLunar, eraTab: newEraTable(taiwanLunisolarEras, enforce)}
	case KoreanLunisolar:
		return &lunisolar{table: koreanLunar}
	case JapaneseLunisolar:
		return &lunisolar{table: japaneseLunar, eraTab: newEraTable(japaneseLunisolarEras, enforce)}
	}
	return &lunisolar{table: chineseLunar}
}

func (l *lunisolar) minSupported() Instant {
	return Instant(fromDays(l.table.years[0].start, 0))
}

func (l *lunisolar) maxSupported() Instant {
	return Instant(fromDays(l.table.end, 0) - 1)
}

func (l *lunisolar) eras() []int {
	if l.eraTab == nil {
		return []int{1}
	}
	return l.eraTab.ids()
}

func (l *lunisolar) eraInfos() []EraInfo {
	if l.eraTab == nil {
		return nil
	}
	return append([]EraInfo(nil), l.eraTab.rows...)
}

func (l *lunisolar) yearRange() (int, int) {
	if l.eraTab == nil {
		return l.table.first, l.table.last()
	}
	cur := l.eraTab.rows[0]
	return max(cur.MinEraYear, l.table.first-cur.YearOffset), l.table.last() - cur.YearOffset
}

// defaultTwoDigitYearMax follows the year that contains 2049-01-01, or 99 for
// era-relative numbering.
func (l *lunisolar) defaultTwoDigitYearMax() int {
	if l.eraTab != nil {
		return 99
	}
	t := mustDate(2049, 1, 1)
	if t > l.maxSupported() {
		return l.table.last()
	}
	f, err := l.date(t)
	if err != nil {
		return l.table.last()
	}
	return f.year
}

func (l *lunisolar) daysInYearBeforeMin() int { return 384 }

// lunarYear converts an era-relative year to the table's numbering and checks
// that the table covers it.
func (l *lunisolar) lunarYear(year, era int) (lunarYear, error) {
	y := year
	if l.eraTab == nil {
		if err := checkSingleEra(era); err != nil {
			return lunarYear{}, err
		}
	} else {
		var err error
		if y, err = l.eraTab.gregorianYear(year, era); err != nil {
			return lunarYear{}, err
		}
	}
	if y < l.table.first || y > l.table.last() {
		return lunarYear{}, rangeError("", "year", int64(year))
	}
	return l.table.years[y-l.table.first], nil
}

func (l *lunisolar) checkMonth(year, month, era int) (lunarYear, error) {
	ly, err := l.lunarYear(year, era)
	if err != nil {
		return lunarYear{}, err
	}
	if month < 1 || month > ly.months {
		return lunarYear{}, rangeError("", "month", int64(month))
	}
	return ly, nil
}

func (l *lunisolar) daysInMonth(year, month, era int) (int, error) {
	ly, err := l.checkMonth(year, month, era)
	if err != nil {
		return 0, err
	}
	return ly.monthLength(month), nil
}

func (l *lunisolar) daysInYear(year, era int) (int, error) {
	ly, err := l.lunarYear(year, era)
	if err != nil {
		return 0, err
	}
	return ly.length(), nil
}

func (l *lunisolar) monthsInYear(year, era int) (int, error) {
	ly, err := l.lunarYear(year, era)
	return ly.months, err
}

func (l *lunisolar) isLeapYear(year, era int) (bool, error) {
	ly, err := l.lunarYear(year, era)
	return ly.leapMonth != 0, err
}

func (l *lunisolar) leapMonth(year, era int) (int, error) {
	ly, err := l.lunarYear(year, era)
	return ly.leapMonth, err
}

// isLeapDay is true for every day of the leap month.
func (l *lunisolar) isLeapDay(year, month, _, era int) bool {
	ly, err := l.lunarYear(year, era)
	return err == nil && ly.leapMonth != 0 && month == ly.leapMonth
}

func (l *lunisolar) toDays(year, month, day, era int) (int, error) {
	ly, err := l.lunarYear(year, era)
	if err != nil {
		return 0, err
	}
	return lunarDays(ly, month, day), nil
}

func lunarDays(ly lunarYear, month, day int) int {
	days := ly.start
	for m := 1; m < month; m++ {
		days += ly.monthLength(m)
	}
	return days + day - 1
}

// locate finds the lunar year containing day n. A lunar year starts in the
// Gregorian year it is numbered after, so the answer is that year or the one
// before.
func (l *lunisolar) locate(n int) (int, lunarYear) {
	gy, _, _, _ := gregorianFromDays(n)
	i := min(gy-l.table.first, len(l.table.years)-1)
	for i > 0 && n < l.table.years[i].start {
		i--
	}
	return l.table.first + i, l.table.years[i]
}

func (l *lunisolar) date(t Instant) (fields, error) {
	n := t.days()
	lunar, ly := l.locate(n)
	month, day := ly.monthDay(n - ly.start)

	f := fields{era: 1, year: lunar, month: month, day: day, dayOfYear: n - ly.start + 1}
	if l.eraTab != nil {
		// Eras change on Gregorian dates, but a date still in the previous lunar
		// year stays in the previous era rather than becoming year 0.
		for _, e := range l.eraTab.rows {
			if t >= e.Start && lunar > e.YearOffset {
				f.era, f.year = e.Era, lunar-e.YearOffset
				break
			}
		}
	}
	return f, nil
}

func (l *lunisolar) addMonths(t Instant, months int) (Instant, error) {
	n := t.days()
	y, ly := l.locate(n)
	m, d := ly.monthDay(n - ly.start)

	i := m + months
	if months > 0 {
		for i > ly.months {
			i -= ly.months
			y++
			if y > l.table.last() {
				return 0, rangeError("", "months", int64(months))
			}
			ly = l.table.years[y-l.table.first]
		}
	} else {
		for i <= 0 {
			y--
			if y < l.table.first {
				return 0, rangeError("", "months", int64(months))
			}
			ly = l.table.years[y-l.table.first]
			i += ly.months
		}
	}
	d = min(d, ly.monthLength(i))
	return checkAddResult(fromDays(lunarDays(ly, i, d), t.TimeOfDay()), l.minSupported(), l.maxSupported())
}

func (l *lunisolar) addYears(t Instant, years int) (Instant, error) {
	n := t.days()
	y, ly := l.locate(n)
	m, d := ly.monthDay(n - ly.start)

	y += years
	if y < l.table.first || y > l.table.last() {
		return 0, rangeError("", "years", int64(years))
	}
	ly = l.table.years[y-l.table.first]
	// Month 13 only exists in leap years.
	if m == 13 && ly.months == 12 {
		m = 12
		d = ly.monthLength(m)
	}
	d = min(d, ly.monthLength(m))
	return checkAddResult(fromDays(lunarDays(ly, m, d), t.TimeOfDay()), l.minSupported(), l.maxSupported())
}

// -----------------------------------------------------------------------------
// Sexagenary Cycle
// -----------------------------------------------------------------------------

// SexagenaryYear returns the position, 1 to 60, of the lunar year containing t
// in the 60-year cycle. Only East-Asian lunisolar calendars support it.
func (c *Calendar) SexagenaryYear(t Instant) (int, error) {
	const op = "SexagenaryYear"
	l, ok := c.sys.(*lunisolar)
	if !ok {
		return 0, &Error{Op: op, Err: ErrUnsupported}
	}
	if err := c.checkInstant(op, t); err != nil {
		return 0, err
	}
	lunar, _ := l.locate(t.days())
	return (lunar-4)%60 + 1, nil
}

// CelestialStem returns the heavenly stem, 1 to 10, of a sexagenary year.
func CelestialStem(sexagenaryYear int) (int, error) {
	if sexagenaryYear < 1 || sexagenaryYear > 60 {
		return 0, rangeError("CelestialStem", "sexagenaryYear", int64(sexagenaryYear))
	}
	return (sexagenaryYear-1)%10 + 1, nil
}

// TerrestrialBranch returns the earthly branch, 1 to 12, of a sexagenary year.
func TerrestrialBranch(sexagenaryYear int) (int, error) {
	if sexagenaryYear < 1 || sexagenaryYear > 60 {
		return 0, rangeError("TerrestrialBranch", "sexagenaryYear", int64(sexagenaryYear))
	}
	return (sexagenaryYear-1)%12 + 1, nil
}
