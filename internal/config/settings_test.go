package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-calendar/internal/config"
)

func TestLoadSettings_Defaults(t *testing.T) {
	t.Setenv(config.EnvPrefix+"LOCAL_PATH", "/tmp/contacts.vcf")

	s, err := config.LoadSettings()
	require.NoError(t, err)

	assert.Equal(t, config.SourceModeLocal, s.SourceMode)
	assert.Equal(t, config.DefaultPort, s.Port)
	assert.Equal(t, config.DefaultLanguage, s.Language)
	assert.Equal(t, time.Duration(config.DefaultRefreshMin)*time.Minute, s.RefreshInterval)
	assert.Empty(t, s.Calendar)
	assert.Zero(t, s.TwoDigitYearMax)
	assert.Nil(t, s.HijriAdjustment)
}

func TestLoadSettings_Overrides(t *testing.T) {
	t.Setenv(config.EnvPrefix+"SOURCE_MODE", config.SourceModeWeb)
	t.Setenv(config.EnvPrefix+"CARDDAV_URL", "https://dav.example.com/contacts")
	t.Setenv(config.EnvPrefix+"CARDDAV_USER", "alice")
	t.Setenv(config.EnvPrefix+"CALENDAR", "hebrew")
	t.Setenv(config.EnvPrefix+"LANGUAGE", "fr")
	t.Setenv(config.EnvPrefix+"PORT", "8080")
	t.Setenv(config.EnvPrefix+"REFRESH_INTERVAL", "15m")
	t.Setenv(config.EnvPrefix+"REMINDER", "-P1D")
	t.Setenv(config.EnvPrefix+"TWO_DIGIT_YEAR_MAX", "5790")
	t.Setenv(config.EnvPrefix+"HIJRI_ADJUSTMENT", "-1")

	s, err := config.LoadSettings()
	require.NoError(t, err)

	assert.Equal(t, config.SourceModeWeb, s.SourceMode)
	assert.Equal(t, "alice", s.WebUser)
	assert.Equal(t, "hebrew", s.Calendar)
	assert.Equal(t, "fr", s.Language)
	assert.Equal(t, "8080", s.Port)
	assert.Equal(t, 15*time.Minute, s.RefreshInterval)
	assert.Equal(t, "-P1D", s.ReminderTrigger)
	assert.Equal(t, 5790, s.TwoDigitYearMax)
	require.NotNil(t, s.HijriAdjustment)
	assert.Equal(t, -1, *s.HijriAdjustment)
}

func TestLoadSettings_ParseError(t *testing.T) {
	t.Setenv(config.EnvPrefix+"LOCAL_PATH", "/tmp/contacts.vcf")
	t.Setenv(config.EnvPrefix+"REFRESH_INTERVAL", "soon")

	_, err := config.LoadSettings()
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.ErrSettingsParse)
}

func TestSettings_Validate(t *testing.T) {
	valid := config.Settings{
		SourceMode:      config.SourceModeLocal,
		LocalPath:       "/tmp/contacts.vcf",
		Port:            config.DefaultPort,
		RefreshInterval: time.Hour,
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name    string
		mutate  func(*config.Settings)
		wantErr string
	}{
		{"Empty local path", func(s *config.Settings) { s.LocalPath = "" }, config.ErrLocalPathEmpty},
		{"Local path not a vCard", func(s *config.Settings) { s.LocalPath = "/tmp/contacts.csv" }, config.ErrLocalPathExt},
		{"Web without URL", func(s *config.Settings) { s.SourceMode = config.SourceModeWeb }, config.ErrWebURLEmpty},
		{"Web with bad URL", func(s *config.Settings) {
			s.SourceMode = config.SourceModeWeb
			s.WebURL = "not a url"
		}, config.ErrInvalidURL},
		{"Unknown mode", func(s *config.Settings) { s.SourceMode = "ftp" }, config.ErrModeUnsupport},
		{"Port missing", func(s *config.Settings) { s.Port = "" }, config.ErrPortRequired},
		{"Port not numeric", func(s *config.Settings) { s.Port = "http" }, config.ErrPortNumber},
		{"Port out of range", func(s *config.Settings) { s.Port = "70000" }, config.ErrPortRange},
		{"Negative interval", func(s *config.Settings) { s.RefreshInterval = -time.Minute }, config.ErrIntervalRange},
		{"Bad reminder", func(s *config.Settings) { s.ReminderTrigger = "1 day" }, config.ErrReminderFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid
			tt.mutate(&s)
			err := s.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
