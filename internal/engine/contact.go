package engine

import (
	"time"

	"github.com/tartampluch/go-calendar/internal/calendar"
)

// BirthdayEntry is a contact whose birthday was projected into the target
// calendar.
type BirthdayEntry struct {
	// UID is a unique identifier (hash) used for stability in lists.
	UID string

	// Name is the display name (Formatted Name or Structured Name).
	Name string

	// DateOfBirth is the Gregorian date read from the vCard.
	DateOfBirth time.Time

	// YearKnown indicates if the vCard contained a year or just --MM-DD.
	YearKnown bool

	// NativeBirth is the birth date expressed in the target calendar. For
	// unknown years it reflects the fallback leap year.
	NativeBirth calendar.Fields

	// NextOccurrence is the Gregorian date of the next anniversary in the
	// target calendar, on or after today.
	NextOccurrence time.Time

	// AgeNext is the age in target-calendar years at NextOccurrence.
	// Only valid if YearKnown is true.
	AgeNext int
}
