package config_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-calendar/internal/config"
)

func TestIdentity(t *testing.T) {
	for name, v := range map[string]string{
		"AppName":         config.AppName,
		"Version":         config.Version,
		"ICalProdid":      config.ICalProdid,
		"KeyringService":  config.KeyringService,
		"DefaultCalendar": config.DefaultCalendar,
		"DefaultLanguage": config.DefaultLanguage,
	} {
		assert.NotEmpty(t, v, name)
	}
	assert.True(t, strings.HasPrefix(config.UserAgent, config.AppName+"/"))
	assert.Equal(t, config.AppID, config.KeyringService)
}

// TestDateLayouts parses the BDAY shapes found in real address books.
func TestDateLayouts(t *testing.T) {
	tests := []struct {
		layout string
		input  string
		want   time.Time
	}{
		{config.DateFormatFullDash, "1990-03-15", time.Date(1990, 3, 15, 0, 0, 0, 0, time.UTC)},
		{config.DateFormatFullBasic, "19900315", time.Date(1990, 3, 15, 0, 0, 0, 0, time.UTC)},
		{config.DateFormatFullT, "1990-03-15T08:30:00Z", time.Date(1990, 3, 15, 8, 30, 0, 0, time.UTC)},
		{config.DateFormatNoYearD, "--03-15", time.Date(0, 3, 15, 0, 0, 0, 0, time.UTC)},
		{config.DateFormatNoYearB, "--0315", time.Date(0, 3, 15, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := time.Parse(tt.layout, tt.input)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), got.String())
		})
	}
}

func TestFeedDefaults(t *testing.T) {
	assert.Positive(t, config.DefaultRefreshMin)
	assert.Equal(t, 1, config.ProjectionYears, "previous, current and next year")
	assert.True(t, time.Date(config.DefaultLeapYear, time.February, 29, 0, 0, 0, 0, time.UTC).Day() == 29,
		"DefaultLeapYear must keep February 29")

	uid := fmt.Sprintf(config.FormatUID, "abc", "hebrew", 5784, config.ICalDomain)
	assert.Equal(t, "abc-hebrew-5784@"+config.ICalDomain, uid)
	assert.Equal(t, `"deadbeef"`, fmt.Sprintf(config.FormatETag, "deadbeef"))
}

func TestNetworkLimits(t *testing.T) {
	assert.Positive(t, config.HTTPTimeout)
	assert.LessOrEqual(t, config.HTTPTimeout, 2*time.Minute)
	assert.Positive(t, config.ShutdownTimeout)
	assert.Less(t, config.ServerReadTimeout, config.ServerWriteTimeout)

	// Address books embed photos; the cap allows them without letting an
	// endless stream exhaust memory.
	assert.GreaterOrEqual(t, int64(config.MaxHTTPResponseSize), int64(50<<20))
	assert.Less(t, int64(config.MaxHTTPResponseSize), int64(1<<30))
}
