package engine

import (
	"time"

	"github.com/tartampluch/go-calendar/internal/calendar"
)

// Clock supplies the wall time against which anniversaries are projected.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the host clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always reports the same moment.
type FixedClock time.Time

func (c FixedClock) Now() time.Time { return time.Time(c) }

// dayInstant maps the calendar date of t, read in t's own location, to the
// Instant at midnight of that date.
func dayInstant(t time.Time) (calendar.Instant, error) {
	y, m, d := t.Date()
	return calendar.GregorianDate(y, int(m), d)
}
