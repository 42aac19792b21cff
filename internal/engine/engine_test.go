package engine_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-calendar/internal/calendar"
	"github.com/tartampluch/go-calendar/internal/config"
	"github.com/tartampluch/go-calendar/internal/engine"
)

// -----------------------------------------------------------------------------
// Mocks
// -----------------------------------------------------------------------------

// MockFetcher simulates the network layer for unit tests using `testify/mock`.
type MockFetcher struct {
	mock.Mock
}

// Fetch implements the engine.VCardFetcher interface.
func (m *MockFetcher) Fetch(ctx context.Context, url, user, pass string) (io.ReadCloser, error) {
	args := m.Called(ctx, url, user, pass)
	if r := args.Get(0); r != nil {
		return r.(io.ReadCloser), args.Error(1)
	}
	return nil, args.Error(1)
}

// -----------------------------------------------------------------------------
// Helpers
// -----------------------------------------------------------------------------

func mustCalendar(t *testing.T, k calendar.Kind) *calendar.Calendar {
	t.Helper()
	cal, err := calendar.New(k)
	require.NoError(t, err)
	return cal
}

// webGenerator returns a generator whose fetcher serves vcards.
func webGenerator(t *testing.T, k calendar.Kind, now time.Time, vcards string) (*engine.Generator, *MockFetcher) {
	t.Helper()
	fetcher := new(MockFetcher)
	fetcher.On("Fetch", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(io.NopCloser(strings.NewReader(vcards)), nil)

	return &engine.Generator{
		Clock:    engine.FixedClock(now),
		Fetcher:  fetcher,
		Calendar: mustCalendar(t, k),
	}, fetcher
}

var webConfig = engine.SyncConfig{Mode: config.SourceModeWeb, WebURL: "http://test.local"}

// -----------------------------------------------------------------------------
// Gregorian Projection
// -----------------------------------------------------------------------------

func TestRunSync_Local_Success(t *testing.T) {
	vcardContent := `BEGIN:VCARD
VERSION:4.0
FN:John Doe
BDAY:2000-01-01
END:VCARD`

	tmpFile, err := os.CreateTemp("", "test_vcard_*.vcf")
	require.NoError(t, err)
	defer func() { _ = os.Remove(tmpFile.Name()) }()

	_, err = tmpFile.WriteString(vcardContent)
	require.NoError(t, err)
	_ = tmpFile.Close()

	gen := &engine.Generator{
		Clock:    engine.FixedClock(time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)),
		Calendar: mustCalendar(t, calendar.Gregorian),
	}

	icsData, contacts, count, err := gen.RunSync(context.Background(), engine.SyncConfig{
		Mode:      config.SourceModeLocal,
		LocalPath: tmpFile.Name(),
	})

	require.NoError(t, err)
	assert.Equal(t, 1, count, "Should identify one birthday today")

	require.Len(t, contacts, 1)
	assert.Equal(t, "John Doe", contacts[0].Name)
	assert.Equal(t, 25, contacts[0].AgeNext)

	icsStr := string(icsData)
	assert.Contains(t, icsStr, "BEGIN:VCALENDAR")
	assert.Contains(t, icsStr, "SUMMARY:Birthday (gregorian): John Doe")
	assert.Contains(t, icsStr, "CATEGORIES:gregorian")
	assert.Contains(t, icsStr, "X-WR-CALNAME:"+config.ICalCalName)
}

func TestRunSync_LeapDayClampsToMonthEnd(t *testing.T) {
	// Feb 29 anniversaries fall on Feb 28 in common years.
	vcardContent := "BEGIN:VCARD\nVERSION:3.0\nFN:Leap Baby\nBDAY:2000-02-29\nEND:VCARD"

	gen, fetcher := webGenerator(t, calendar.Gregorian, time.Date(2025, 2, 28, 10, 0, 0, 0, time.UTC), vcardContent)

	icsData, contacts, count, err := gen.RunSync(context.Background(), webConfig)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.Len(t, contacts, 1)
	assert.Equal(t, time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC), contacts[0].NextOccurrence)

	icsStr := string(icsData)
	assert.Contains(t, icsStr, "DTSTART;VALUE=DATE:20240229", "Leap years keep Feb 29")
	assert.Contains(t, icsStr, "DTSTART;VALUE=DATE:20250228")
	assert.Contains(t, icsStr, "DTSTART;VALUE=DATE:20260228")

	fetcher.AssertExpectations(t)
}

func TestRunSync_ContactListNextOccurrence(t *testing.T) {
	vcardContent := `BEGIN:VCARD
VERSION:3.0
FN:Past Birthday
BDAY:1990-01-01
END:VCARD
BEGIN:VCARD
VERSION:3.0
FN:Future Birthday
BDAY:1990-12-31
END:VCARD
BEGIN:VCARD
VERSION:3.0
FN:Today Birthday
BDAY:1990-06-01
END:VCARD`

	gen, _ := webGenerator(t, calendar.Gregorian, time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC), vcardContent)

	_, contacts, count, err := gen.RunSync(context.Background(), webConfig)
	require.NoError(t, err)
	require.Len(t, contacts, 3)
	assert.Equal(t, 1, count)

	contactMap := make(map[string]engine.BirthdayEntry)
	for _, c := range contacts {
		contactMap[c.Name] = c
	}

	tests := []struct {
		name string
		want time.Time
		age  int
	}{
		{"Past Birthday", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), 36},
		{"Future Birthday", time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), 35},
		{"Today Birthday", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), 35},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := contactMap[tt.name]
			assert.Equal(t, tt.want, c.NextOccurrence)
			assert.Equal(t, tt.age, c.AgeNext)
		})
	}
}

func TestRunSync_Web_NetworkError(t *testing.T) {
	mockFetcher := new(MockFetcher)
	expectedErr := errors.New("network unreachable")

	mockFetcher.On("Fetch", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, expectedErr)

	gen := &engine.Generator{
		Clock:    engine.FixedClock(time.Now()),
		Fetcher:  mockFetcher,
		Calendar: mustCalendar(t, calendar.Gregorian),
	}

	icsData, contacts, count, err := gen.RunSync(context.Background(), engine.SyncConfig{
		Mode:   config.SourceModeWeb,
		WebURL: "http://bad-url.com",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, expectedErr)
	assert.Nil(t, icsData)
	assert.Nil(t, contacts)
	assert.Equal(t, 0, count)
}

func TestRunSync_MissingCalendar(t *testing.T) {
	gen := &engine.Generator{Clock: engine.FixedClock(time.Now())}

	_, _, _, err := gen.RunSync(context.Background(), webConfig)
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.ErrCalendarMissing)
}

func TestRunSync_WithReminders(t *testing.T) {
	vcardContent := "BEGIN:VCARD\nVERSION:3.0\nFN:Alarm Test\nBDAY:1990-01-01\nEND:VCARD"

	gen, _ := webGenerator(t, calendar.Gregorian, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), vcardContent)

	cfg := webConfig
	cfg.ReminderTrigger = "-P1D"

	icsData, _, _, err := gen.RunSync(context.Background(), cfg)
	require.NoError(t, err)

	icsStr := string(icsData)
	assert.Contains(t, icsStr, "BEGIN:VALARM")
	assert.Contains(t, icsStr, "TRIGGER:-P1D")
	assert.Contains(t, icsStr, "ACTION:DISPLAY")
}

func TestRunSync_GeneratesYearRange(t *testing.T) {
	vcardContent := "BEGIN:VCARD\nVERSION:3.0\nFN:Range Test\nBDAY:1990-12-31\nEND:VCARD"

	gen, _ := webGenerator(t, calendar.Gregorian, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), vcardContent)

	icsData, _, _, err := gen.RunSync(context.Background(), webConfig)
	require.NoError(t, err)

	icsStr := string(icsData)
	assert.Contains(t, icsStr, "DTSTART;VALUE=DATE:20241231", "Should include previous year")
	assert.Contains(t, icsStr, "DTSTART;VALUE=DATE:20251231", "Should include current year")
	assert.Contains(t, icsStr, "DTSTART;VALUE=DATE:20261231", "Should include next year")
	assert.Equal(t, 3, strings.Count(icsStr, "BEGIN:VEVENT"))
}

func TestRunSync_BabyBornThisYear(t *testing.T) {
	vcardContent := "BEGIN:VCARD\nVERSION:3.0\nFN:Baby\nBDAY:2025-05-01\nEND:VCARD"

	gen, _ := webGenerator(t, calendar.Gregorian, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), vcardContent)
	gen.FormatSummary = func(name string, age int, yearKnown bool) string {
		if age == 0 {
			return fmt.Sprintf("Birthday: %s (Birth)", name)
		}
		return fmt.Sprintf("Birthday: %s (%d)", name, age)
	}

	icsData, contacts, _, err := gen.RunSync(context.Background(), webConfig)
	require.NoError(t, err)

	icsStr := string(icsData)
	assert.NotContains(t, icsStr, "DTSTART;VALUE=DATE:20240501", "Should NOT generate event before birth")
	assert.Contains(t, icsStr, "DTSTART;VALUE=DATE:20250501")
	assert.Contains(t, icsStr, "SUMMARY:Birthday: Baby (Birth)")
	assert.Contains(t, icsStr, "DTSTART;VALUE=DATE:20260501")
	assert.Contains(t, icsStr, "SUMMARY:Birthday: Baby (1)")
	assert.Equal(t, 2, strings.Count(icsStr, "BEGIN:VEVENT"))

	require.Len(t, contacts, 1)
	assert.Equal(t, 0, contacts[0].AgeNext)
	assert.Equal(t, time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), contacts[0].NextOccurrence)
}

func TestRunSync_FutureBirth(t *testing.T) {
	vcardContent := "BEGIN:VCARD\nVERSION:3.0\nFN:Future Baby\nBDAY:2027-01-01\nEND:VCARD"

	gen, _ := webGenerator(t, calendar.Gregorian, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), vcardContent)

	icsData, contacts, _, err := gen.RunSync(context.Background(), webConfig)
	require.NoError(t, err)

	assert.NotContains(t, string(icsData), "BEGIN:VEVENT")
	require.Len(t, contacts, 1)
	assert.Equal(t, time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC), contacts[0].NextOccurrence)
}

func TestRunSync_DateFormats_TableDriven(t *testing.T) {
	tests := []struct {
		name      string
		bdayValue string
		expectEvt bool
	}{
		{"ISO8601 Standard", "1990-10-25", true},
		{"Basic Format", "19901025", true},
		{"RFC3339", "1990-10-25T00:00:00Z", true},
		{"Truncated (Month-Day)", "--10-25", true},
		{"Truncated Basic", "--1025", true},
		{"Garbage Data", "not-a-date", false},
		{"Empty Date", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := "BEGIN:VCARD\nVERSION:3.0\nFN:Test\nBDAY:" + tt.bdayValue + "\nEND:VCARD"
			gen, _ := webGenerator(t, calendar.Gregorian, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), content)

			ics, _, _, _ := gen.RunSync(context.Background(), webConfig)

			icsStr := string(ics)
			if tt.expectEvt {
				assert.Contains(t, icsStr, "BEGIN:VEVENT", "Valid date should produce an event")
			} else {
				assert.NotContains(t, icsStr, "BEGIN:VEVENT", "Invalid date should be skipped silently")
			}
		})
	}
}

func TestRunSync_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	tmpFile, err := os.CreateTemp("", "cancel_test_*.vcf")
	require.NoError(t, err)
	defer func() { _ = os.Remove(tmpFile.Name()) }()
	_ = tmpFile.Close()

	cancel()

	gen := &engine.Generator{
		Clock:    engine.FixedClock(time.Now()),
		Calendar: mustCalendar(t, calendar.Gregorian),
	}

	_, _, _, err = gen.RunSync(ctx, engine.SyncConfig{
		Mode:      config.SourceModeLocal,
		LocalPath: tmpFile.Name(),
	})

	require.Error(t, err)
	assert.Equal(t, context.Canceled, err)
}

// -----------------------------------------------------------------------------
// Non-Gregorian Projection
// -----------------------------------------------------------------------------

func TestRunSync_HijriAnniversaryMoves(t *testing.T) {
	// 2024-07-07 is 1 Muharram 1446; 1446 is a common year of 354 days, so the
	// first anniversary falls eleven days earlier in the Gregorian year.
	vcardContent := "BEGIN:VCARD\nVERSION:3.0\nFN:Hijri Baby\nBDAY:2024-07-07\nEND:VCARD"

	gen, _ := webGenerator(t, calendar.Hijri, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), vcardContent)
	gen.FeedName = "Hijri anniversaries"

	icsData, contacts, count, err := gen.RunSync(context.Background(), webConfig)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	require.Len(t, contacts, 1)
	c := contacts[0]
	assert.Equal(t, calendar.Fields{Era: 1, Year: 1446, Month: 1, Day: 1}, c.NativeBirth)
	assert.Equal(t, time.Date(2025, 6, 26, 0, 0, 0, 0, time.UTC), c.NextOccurrence)
	assert.Equal(t, 1, c.AgeNext)

	icsStr := string(icsData)
	assert.Contains(t, icsStr, "X-WR-CALNAME:Hijri anniversaries")
	assert.Contains(t, icsStr, "DTSTART;VALUE=DATE:20240707")
	assert.Contains(t, icsStr, "DTSTART;VALUE=DATE:20250626")
	assert.Contains(t, icsStr, "DESCRIPTION:hijri 1447-01-01")
	assert.Equal(t, 2, strings.Count(icsStr, "BEGIN:VEVENT"))
}

func TestRunSync_UnknownYearInHijri(t *testing.T) {
	vcardContent := "BEGIN:VCARD\nVERSION:3.0\nFN:No Year\nBDAY:--07-07\nEND:VCARD"

	gen, _ := webGenerator(t, calendar.Hijri, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), vcardContent)
	gen.FormatSummary = func(name string, age int, yearKnown bool) string {
		assert.False(t, yearKnown)
		return "Birthday: " + name
	}

	icsData, contacts, _, err := gen.RunSync(context.Background(), webConfig)
	require.NoError(t, err)

	require.Len(t, contacts, 1)
	assert.False(t, contacts[0].YearKnown)
	assert.Equal(t, 0, contacts[0].AgeNext)
	assert.Equal(t, 3, strings.Count(string(icsData), "BEGIN:VEVENT"))
}

func TestRunSync_SkipsBirthdaysOutsideCalendar(t *testing.T) {
	// Um al-Qura starts in 1900.
	vcardContent := `BEGIN:VCARD
VERSION:3.0
FN:Too Old
BDAY:1850-01-01
END:VCARD
BEGIN:VCARD
VERSION:3.0
FN:Recent
BDAY:1990-06-15
END:VCARD`

	gen, _ := webGenerator(t, calendar.UmAlQura, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), vcardContent)

	icsData, contacts, _, err := gen.RunSync(context.Background(), webConfig)
	require.NoError(t, err)

	require.Len(t, contacts, 1)
	assert.Equal(t, "Recent", contacts[0].Name)
	assert.Equal(t, 3, strings.Count(string(icsData), "BEGIN:VEVENT"))
	assert.Contains(t, string(icsData), "CATEGORIES:umalqura")
}

func TestRunSync_EveryKindProjectsThreeYears(t *testing.T) {
	vcardContent := "BEGIN:VCARD\nVERSION:3.0\nFN:Everyone\nBDAY:1990-06-15\nEND:VCARD"

	for _, k := range calendar.Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			gen, _ := webGenerator(t, k, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), vcardContent)

			icsData, contacts, _, err := gen.RunSync(context.Background(), webConfig)
			require.NoError(t, err)
			require.Len(t, contacts, 1)

			assert.Equal(t, 3, strings.Count(string(icsData), "BEGIN:VEVENT"))
			assert.False(t, contacts[0].NextOccurrence.Before(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)))
			assert.InDelta(t, 35, contacts[0].AgeNext, 3)
		})
	}
}
