package engine

import (
	"errors"

	"github.com/tartampluch/go-calendar/internal/calendar"
)

// maxCorrections bounds the search for the anniversary falling in a given
// calendar year. The initial estimate is off by at most a few years.
const maxCorrections = 64

var errNoAnniversary = errors.New("no anniversary in calendar year")

// yearBounds returns the first instant of the calendar year containing t and
// the first instant of the following year.
func yearBounds(cal *calendar.Calendar, t calendar.Instant) (calendar.Instant, calendar.Instant, error) {
	f, err := cal.Fields(t)
	if err != nil {
		return 0, 0, err
	}
	start, err := cal.ToInstant(f.Year, 1, 1, 0, 0, 0, 0, f.Era)
	if err != nil {
		return 0, 0, err
	}
	end, err := cal.AddYears(start, 1)
	if err != nil {
		// Last supported year.
		end = cal.MaxSupported() + 1
	}
	return start, end, nil
}

// anniversaryIn returns n such that the n-th anniversary of birth falls in
// the calendar year containing t.
func anniversaryIn(cal *calendar.Calendar, birth, t calendar.Instant) (int, error) {
	start, end, err := yearBounds(cal, t)
	if err != nil {
		return 0, err
	}
	f, err := cal.Fields(t)
	if err != nil {
		return 0, err
	}
	yearDays, err := cal.DaysInYear(f.Year, f.Era)
	if err != nil {
		return 0, err
	}

	n := int(int64(start-birth) / calendar.TicksPerDay / int64(yearDays))
	for range maxCorrections {
		a, err := cal.AddYears(birth, n)
		if err != nil {
			return 0, err
		}
		switch {
		case a < start:
			n++
		case a >= end:
			n--
		default:
			return n, nil
		}
	}
	return 0, errNoAnniversary
}

// nextAnniversary returns the first anniversary of birth on or after today,
// together with its ordinal.
func nextAnniversary(cal *calendar.Calendar, birth, today calendar.Instant) (calendar.Instant, int, error) {
	n, err := anniversaryIn(cal, birth, today)
	if err != nil {
		return 0, 0, err
	}
	a, err := cal.AddYears(birth, n)
	if err != nil {
		return 0, 0, err
	}
	if a >= today {
		return a, n, nil
	}
	a, err = cal.AddYears(birth, n+1)
	if err != nil {
		return 0, 0, err
	}
	return a, n + 1, nil
}
