package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-calendar/internal/calendar"
	"github.com/tartampluch/go-calendar/internal/config"
	"github.com/tartampluch/go-calendar/internal/locale"
	"github.com/zalando/go-keyring"
)

func TestRunConvert(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		calendar string
		lang     string
		want     string
	}{
		{"Gregorian", "2024-03-20", "gregorian", "en", "Gregorian: era 1, 2024-03-20 (day 80 of 366, leap year)\n"},
		{"Persian", "2024-03-20", "persian", "en", "Persian: era 1, 1403-01-01 (day 1 of 366, leap year)\n"},
		{"Locale preferred", "2024-03-20", "", "fa-IR", "Persian: era 1, 1403-01-01 (day 1 of 366, leap year)\n"},
		{"French names", "2025-01-01", "gregorian", "fr", "grégorien: era 1, 2025-01-01 (day 1 of 365, année commune)\n"},
		{"Default language", "2025-01-01", "", "", "Gregorian: era 1, 2025-01-01 (day 1 of 365, common year)\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, runConvert(&buf, tt.date, tt.calendar, tt.lang))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestRunConvert_Errors(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		calendar string
		wantErr  error
		wantMsg  string
	}{
		{"Unknown calendar", "2024-03-20", "mayan", nil, ""},
		{"Malformed date", "20/03/2024", "gregorian", nil, config.ErrDateParse},
		{"Out of range", "1850-01-01", "umalqura", calendar.ErrOutOfRange, config.ErrConvert},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := runConvert(&buf, tt.date, tt.calendar, "en")
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
			assert.Empty(t, buf.String())
		})
	}
}

func TestBuildCalendar(t *testing.T) {
	egypt, err := locale.New("ar-EG")
	require.NoError(t, err)

	t.Run("Locale defaults", func(t *testing.T) {
		cal, err := buildCalendar(calendar.Hijri, egypt, overrides{})
		require.NoError(t, err)
		adj, err := cal.HijriAdjustment()
		require.NoError(t, err)
		assert.Equal(t, -1, adj)
	})

	t.Run("Overrides win", func(t *testing.T) {
		adj := 2
		cal, err := buildCalendar(calendar.Hijri, egypt, overrides{twoDigitYearMax: 1460, hijriAdjustment: &adj})
		require.NoError(t, err)
		got, err := cal.HijriAdjustment()
		require.NoError(t, err)
		assert.Equal(t, 2, got)
		assert.Equal(t, 1460, cal.TwoDigitYearMax())
	})

	t.Run("Hijri adjustment ignored elsewhere", func(t *testing.T) {
		adj := 2
		_, err := buildCalendar(calendar.Persian, egypt, overrides{hijriAdjustment: &adj})
		assert.NoError(t, err)
	})

	t.Run("Invalid override", func(t *testing.T) {
		adj := 5
		_, err := buildCalendar(calendar.Hijri, egypt, overrides{hijriAdjustment: &adj})
		require.Error(t, err)
		assert.ErrorIs(t, err, calendar.ErrOutOfRange)
		assert.Contains(t, err.Error(), config.ErrCalendarBuild)
	})
}

func TestResolveKind(t *testing.T) {
	hebrew, err := locale.New("he")
	require.NoError(t, err)

	k, err := resolveKind("", hebrew)
	require.NoError(t, err)
	assert.Equal(t, calendar.Hebrew, k)

	k, err = resolveKind("japanese", hebrew)
	require.NoError(t, err)
	assert.Equal(t, calendar.Japanese, k)

	_, err = resolveKind("mayan", hebrew)
	assert.Error(t, err)
}

func TestLookupPassword(t *testing.T) {
	keyring.MockInit()
	require.NoError(t, keyring.Set(config.KeyringService, "alice", "s3cret"))

	assert.Equal(t, "s3cret", lookupPassword("alice"))
	assert.Empty(t, lookupPassword("bob"))
}
