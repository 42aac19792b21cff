package calendar

import "time"

// WeekOfYear numbers the weeks of the calendar year containing t. Under the
// full-day rules a date whose week starts week 1 of the following year is
// reported as week 1, and a date before week 1 belongs to the last week of the
// previous year.
func (c *Calendar) WeekOfYear(t Instant, rule WeekRule, firstDayOfWeek time.Weekday) (int, error) {
	const op = "WeekOfYear"
	if firstDayOfWeek < time.Sunday || firstDayOfWeek > time.Saturday {
		return 0, rangeError(op, "firstDayOfWeek", int64(firstDayOfWeek))
	}
	if err := c.checkInstant(op, t); err != nil {
		return 0, err
	}

	var (
		week int
		err  error
	)
	switch rule {
	case FirstDay:
		week, err = c.firstDayWeekOfYear(t, int(firstDayOfWeek))
	case FirstFullWeek:
		week, err = c.fullDaysWeekOfYear(t, int(firstDayOfWeek), 7)
	case FirstFourDayWeek:
		week, err = c.fullDaysWeekOfYear(t, int(firstDayOfWeek), 4)
	default:
		return 0, rangeError(op, "rule", int64(rule))
	}
	return week, withOp(op, err)
}

func (c *Calendar) firstDayWeekOfYear(t Instant, firstDayOfWeek int) (int, error) {
	f, err := c.sys.date(t)
	if err != nil {
		return 0, err
	}
	dayOfYear := f.dayOfYear - 1
	dayForJan1 := int(t.DayOfWeek()) - dayOfYear%7
	offset := (dayForJan1 - firstDayOfWeek + 14) % 7
	return (dayOfYear+offset)/7 + 1, nil
}

// fullDaysWeekOfYear handles the rules where week 1 needs at least fullDays
// days in the new year. At most one step back into the previous year is ever
// needed: from the last day of a year the week number is always positive.
func (c *Calendar) fullDaysWeekOfYear(t Instant, firstDayOfWeek, fullDays int) (int, error) {
	for range 2 {
		f, err := c.sys.date(t)
		if err != nil {
			return 0, err
		}
		dayOfYear := f.dayOfYear - 1
		dayForJan1 := int(t.DayOfWeek()) - dayOfYear%7
		offset := (firstDayOfWeek - dayForJan1 + 14) % 7
		if offset != 0 && offset >= fullDays {
			offset -= 7
		}

		if day := dayOfYear - offset; day >= 0 {
			if c.startsNextYear(t, f, firstDayOfWeek, fullDays) {
				return 1, nil
			}
			return day/7 + 1, nil
		}

		if t.days()-dayOfYear <= c.sys.minSupported().days() {
			return c.weekOfYearOfMinSupported(firstDayOfWeek, fullDays)
		}
		// Continue from the last day of the previous year.
		t = Instant(fromDays(t.days()-dayOfYear-1, 0))
	}
	return c.weekOfYearOfMinSupported(firstDayOfWeek, fullDays)
}

// startsNextYear reports whether t falls in the days of December (or the last
// month) that already belong to week 1 of the next year.
func (c *Calendar) startsNextYear(t Instant, f fields, firstDayOfWeek, fullDays int) bool {
	daysInYear, err := c.sys.daysInYear(f.year, f.era)
	if err != nil {
		return false
	}
	daysLeft := daysInYear - (f.dayOfYear - 1)
	nextJan1 := (int(t.DayOfWeek()) + daysLeft) % 7
	offset := (firstDayOfWeek - nextJan1 + 14) % 7
	if offset == 0 || offset < fullDays {
		return false
	}
	// Week 1 of next year starts 7-offset days before its first day.
	return daysLeft <= 7-offset
}

// weekOfYearOfMinSupported computes the week of the first supported day without
// looking at the unsupported year before it.
func (c *Calendar) weekOfYearOfMinSupported(firstDayOfWeek, minDays int) (int, error) {
	minTime := c.sys.minSupported()
	f, err := c.sys.date(minTime)
	if err != nil {
		return 0, err
	}
	dayOfYear := f.dayOfYear - 1
	dayOfWeekOfFirstOfYear := int(minTime.DayOfWeek()) - dayOfYear%7

	offset := (firstDayOfWeek + 7 - dayOfWeekOfFirstOfYear) % 7
	if offset == 0 || offset >= minDays {
		return 1, nil
	}

	daysInYearBefore := c.sys.daysInYearBeforeMin() - 1
	dayOfWeekOfFirstOfPrevYear := dayOfWeekOfFirstOfYear - 1 - daysInYearBefore%7
	daysInInitialPartialWeek := (firstDayOfWeek - dayOfWeekOfFirstOfPrevYear + 14) % 7
	day := daysInYearBefore - daysInInitialPartialWeek
	if daysInInitialPartialWeek >= minDays {
		day += 7
	}
	return day/7 + 1, nil
}
