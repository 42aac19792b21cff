package config

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Settings holds the runtime configuration read from the environment.
// Every variable is prefixed with GO_CALENDAR_.
type Settings struct {
	SourceMode string `env:"SOURCE_MODE" envDefault:"local"`
	LocalPath  string `env:"LOCAL_PATH"`
	WebURL     string `env:"CARDDAV_URL"`
	WebUser    string `env:"CARDDAV_USER"`
	// WebPass is normally left empty and looked up in the OS keyring.
	WebPass string `env:"CARDDAV_PASSWORD"`

	Calendar string `env:"CALENDAR"`
	Language string `env:"LANGUAGE" envDefault:"en"`

	Port            string        `env:"PORT" envDefault:"18080"`
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL" envDefault:"60m"`
	ReminderTrigger string        `env:"REMINDER"`

	// Explicit calendar overrides; zero keeps the locale default.
	TwoDigitYearMax int  `env:"TWO_DIGIT_YEAR_MAX"`
	HijriAdjustment *int `env:"HIJRI_ADJUSTMENT"`
}

// EnvPrefix namespaces every variable read by LoadSettings.
const EnvPrefix = "GO_CALENDAR_"

// LoadSettings parses the environment into Settings and validates the result.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := env.ParseWithOptions(&s, env.Options{Prefix: EnvPrefix}); err != nil {
		return Settings{}, fmt.Errorf("%s: %w", ErrSettingsParse, err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks the settings for consistency.
func (s Settings) Validate() error {
	switch s.SourceMode {
	case SourceModeLocal:
		if s.LocalPath == "" {
			return errors.New(ErrLocalPathEmpty)
		}
		if ext := filepath.Ext(s.LocalPath); !strings.EqualFold(ext, ExtVCF) && !strings.EqualFold(ext, ExtVCard) {
			return fmt.Errorf("%s: %q", ErrLocalPathExt, s.LocalPath)
		}
	case SourceModeWeb:
		if s.WebURL == "" {
			return errors.New(ErrWebURLEmpty)
		}
		if _, err := url.ParseRequestURI(s.WebURL); err != nil {
			return fmt.Errorf("%s: %w", ErrInvalidURL, err)
		}
	default:
		return fmt.Errorf("%s: %q", ErrModeUnsupport, s.SourceMode)
	}

	if err := ValidatePort(s.Port); err != nil {
		return err
	}
	if s.RefreshInterval < DisabledInterval {
		return errors.New(ErrIntervalRange)
	}
	if s.ReminderTrigger != "" &&
		!strings.HasPrefix(s.ReminderTrigger, ISOPeriodPrefix) &&
		!strings.HasPrefix(s.ReminderTrigger, ISONegativePrefix) {
		return fmt.Errorf("%s: %q", ErrReminderFormat, s.ReminderTrigger)
	}
	return nil
}

// ValidatePort checks that port is a number in the TCP port range.
func ValidatePort(port string) error {
	if port == "" {
		return errors.New(ErrPortRequired)
	}
	n, err := strconv.Atoi(port)
	if err != nil {
		return errors.New(ErrPortNumber)
	}
	if n < MinPort || n > MaxPort {
		return errors.New(ErrPortRange)
	}
	return nil
}
