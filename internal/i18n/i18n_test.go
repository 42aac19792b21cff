package i18n

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-calendar/internal/calendar"
	"github.com/tartampluch/go-calendar/internal/config"
)

// TestI18nIntegrity ensures that every translation key used by the code exists
// in every embedded locale file.
func TestI18nIntegrity(t *testing.T) {
	keys := []string{
		config.TKeyEvtSummary,
		config.TKeyEvtSummaryAge,
		config.TKeyEvtSummaryBirth,
		config.TKeyCalFeedName,
		config.TKeyLeapYear,
		config.TKeyCommonYear,
	}
	for _, k := range calendar.Kinds() {
		keys = append(keys, config.TKeyCalNamePrefix+k.String())
	}

	for _, lang := range config.SupportedLanguages {
		t.Run(lang, func(t *testing.T) {
			content, err := localeFS.ReadFile("locales/active." + lang + ".json")
			require.NoError(t, err, "Must load locale file")

			var messages map[string]any
			require.NoError(t, json.Unmarshal(content, &messages), "JSON must be valid")

			for _, key := range keys {
				_, exists := messages[key]
				assert.Truef(t, exists, "Key '%s' is missing in active.%s.json", key, lang)
			}
		})
	}
}

func TestNew_DetectsLanguages(t *testing.T) {
	tr, err := New("")
	require.NoError(t, err)
	assert.ElementsMatch(t, config.SupportedLanguages, tr.Languages())
}

func TestSummary(t *testing.T) {
	tr, err := New("en")
	require.NoError(t, err)

	tests := []struct {
		name      string
		age       int
		yearKnown bool
		want      string
	}{
		{"Year unknown", 30, false, "Birthday (Hebrew): Alice"},
		{"Age", 30, true, "Birthday (Hebrew): Alice (30)"},
		{"Birth", 0, true, "Birthday (Hebrew): Alice (birth)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tr.Summary("Alice", "Hebrew", tt.age, tt.yearKnown))
		})
	}
}

func TestSummaryFormatter_French(t *testing.T) {
	tr, err := New("fr")
	require.NoError(t, err)

	format := tr.SummaryFormatter(calendar.Persian)
	assert.Equal(t, "Anniversaire (persan) : Bob (40 ans)", format("Bob", 40, true))
}

func TestCalendarName_FallsBackToEnglish(t *testing.T) {
	tr, err := New("de")
	require.NoError(t, err)

	assert.Equal(t, "Umm al-Qura", tr.CalendarName(calendar.UmAlQura))
	assert.Equal(t, "Anniversaries (Chinese)", tr.FeedName(calendar.ChineseLunisolar))
}

func TestMsg_UnknownKey(t *testing.T) {
	tr, err := New("en")
	require.NoError(t, err)

	assert.Equal(t, "no_such_key", tr.Msg("no_such_key"))
	assert.Equal(t, "leap year", tr.YearType(true))
	assert.Equal(t, "common year", tr.YearType(false))
}
