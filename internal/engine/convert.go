package engine

import (
	"time"

	"github.com/tartampluch/go-calendar/internal/calendar"
)

// Conversion is a Gregorian date expressed in another calendar.
type Conversion struct {
	Calendar    string `json:"calendar"`
	Era         int    `json:"era"`
	Year        int    `json:"year"`
	Month       int    `json:"month"`
	Day         int    `json:"day"`
	DayOfYear   int    `json:"dayOfYear"`
	DayOfWeek   string `json:"dayOfWeek"`
	DaysInMonth int    `json:"daysInMonth"`
	DaysInYear  int    `json:"daysInYear"`
	LeapYear    bool   `json:"leapYear"`
	LeapMonth   bool   `json:"leapMonth"`
}

// Convert expresses the calendar date of date in cal. Dates outside the
// calendar's supported range fail with calendar.ErrOutOfRange.
func Convert(cal *calendar.Calendar, date time.Time) (Conversion, error) {
	t, err := dayInstant(date)
	if err != nil {
		return Conversion{}, err
	}
	f, err := cal.Fields(t)
	if err != nil {
		return Conversion{}, err
	}
	doy, err := cal.DayOfYear(t)
	if err != nil {
		return Conversion{}, err
	}
	dim, err := cal.DaysInMonth(f.Year, f.Month, f.Era)
	if err != nil {
		return Conversion{}, err
	}
	diy, err := cal.DaysInYear(f.Year, f.Era)
	if err != nil {
		return Conversion{}, err
	}
	leapYear, err := cal.IsLeapYear(f.Year, f.Era)
	if err != nil {
		return Conversion{}, err
	}
	leapMonth, err := cal.IsLeapMonth(f.Year, f.Month, f.Era)
	if err != nil {
		return Conversion{}, err
	}

	return Conversion{
		Calendar:    cal.Kind().String(),
		Era:         f.Era,
		Year:        f.Year,
		Month:       f.Month,
		Day:         f.Day,
		DayOfYear:   doy,
		DayOfWeek:   t.DayOfWeek().String(),
		DaysInMonth: dim,
		DaysInYear:  diy,
		LeapYear:    leapYear,
		LeapMonth:   leapMonth,
	}, nil
}
