package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-calendar/internal/calendar"
)

func TestNew_Matching(t *testing.T) {
	tests := []struct {
		input     string
		wantTag   string
		preferred calendar.Kind
	}{
		{"en", "en", calendar.Gregorian},
		{"fr-CA", "fr", calendar.Gregorian},
		{"ar-SA", "ar-SA", calendar.UmAlQura},
		{"fa-IR", "fa", calendar.Persian},
		{"th", "th", calendar.ThaiBuddhist},
		{"de", "en", calendar.Gregorian},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p, err := New(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTag, p.Tag().String())
			assert.Equal(t, tt.preferred, p.PreferredKind())
		})
	}
}

func TestNew_InvalidTag(t *testing.T) {
	_, err := New("not a tag!")
	assert.Error(t, err)
}

func TestProvider_Defaults(t *testing.T) {
	p, err := New("ar-EG")
	require.NoError(t, err)

	adj, ok := p.HijriAdjustment()
	assert.True(t, ok)
	assert.Equal(t, -1, adj)

	_, ok = p.TwoDigitYearMax(calendar.Persian)
	assert.False(t, ok)

	fa, err := New("fa")
	require.NoError(t, err)
	year, ok := fa.TwoDigitYearMax(calendar.Persian)
	assert.True(t, ok)
	assert.Equal(t, 1410, year)

	_, ok = fa.HijriAdjustment()
	assert.False(t, ok)
}

func TestProvider_FeedsCalendarBuilder(t *testing.T) {
	p, err := New("ar-EG")
	require.NoError(t, err)

	b := calendar.NewBuilder(calendar.Hijri)
	require.NoError(t, b.SetDefaults(p))
	cal, err := b.Build()
	require.NoError(t, err)

	adj, err := cal.HijriAdjustment()
	require.NoError(t, err)
	assert.Equal(t, -1, adj)

	ko, err := New("ko")
	require.NoError(t, err)
	b = calendar.NewBuilder(calendar.Korean)
	require.NoError(t, b.SetDefaults(ko))
	cal, err = b.Build()
	require.NoError(t, err)
	assert.Equal(t, 4382, cal.TwoDigitYearMax())
}

func TestSupported_FallbackFirst(t *testing.T) {
	tags, err := Supported()
	require.NoError(t, err)
	require.NotEmpty(t, tags)
	assert.Equal(t, "en", tags[0].String())
}

func TestParseCatalog_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"Malformed JSON", `{`},
		{"Empty table", `[]`},
		{"Unknown calendar", `[{"tag":"en","calendar":"mayan"}]`},
		{"Unknown override kind", `[{"tag":"en","calendar":"gregorian","twoDigitYearMax":{"mayan":99}}]`},
		{"Bad tag", `[{"tag":"??","calendar":"gregorian"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseCatalog([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestEmbeddedCatalog_Valid(t *testing.T) {
	c, err := parseCatalog(rawLocales)
	require.NoError(t, err)

	// Every override must be accepted by the calendar it targets.
	for _, p := range c.providers {
		for k, year := range p.twoDigit {
			b := calendar.NewBuilder(k)
			assert.NoErrorf(t, b.SetTwoDigitYearMax(year), "%s: %s=%d", p.tag, k, year)
		}
	}
}
