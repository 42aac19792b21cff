// Package i18n localizes the user-facing strings of the anniversary feed.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-calendar/internal/calendar"
	"github.com/tartampluch/go-calendar/internal/config"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// Translator renders messages in one language, falling back to English.
type Translator struct {
	bundle    *goi18n.Bundle
	localizer *goi18n.Localizer
	languages []string
}

// New loads the embedded message files and selects lang.
func New(lang string) (*Translator, error) {
	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrLocalesAccess, err)
	}

	var detected []string
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "active.") || !strings.HasSuffix(name, ".json") {
			slog.Debug(config.MsgLocaleSkip,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		code := strings.TrimSuffix(strings.TrimPrefix(name, "active."), ".json")
		if code == "" {
			slog.Warn(config.MsgLocaleBadName,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+name); err != nil {
			return nil, fmt.Errorf("%s %s: %w", config.ErrLocaleLoad, name, err)
		}
		detected = append(detected, code)
		slog.Debug(config.MsgLocaleLoaded,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyLang, code,
			config.LogKeyFile, name,
		)
	}

	if lang == "" {
		lang = config.DefaultLanguage
	}
	return &Translator{
		bundle:    bundle,
		localizer: goi18n.NewLocalizer(bundle, lang),
		languages: detected,
	}, nil
}

// Languages lists the language codes found in the embedded message files.
func (t *Translator) Languages() []string {
	return append([]string(nil), t.languages...)
}

// Msg translates key, returning the key itself when no translation exists.
func (t *Translator) Msg(key string) string {
	return t.localize(key, nil, key)
}

func (t *Translator) localize(key string, data map[string]any, fallback string) string {
	msg, err := t.localizer.Localize(&goi18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil || msg == "" {
		slog.Debug(config.MsgTransMissing,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyKey, key,
			config.LogKeyError, err,
		)
		return fallback
	}
	return msg
}

// CalendarName is the display name of kind k.
func (t *Translator) CalendarName(k calendar.Kind) string {
	return t.localize(config.TKeyCalNamePrefix+k.String(), nil, k.String())
}

// FeedName is the display name of a feed rendered in kind k.
func (t *Translator) FeedName(k calendar.Kind) string {
	name := t.CalendarName(k)
	return t.localize(config.TKeyCalFeedName,
		map[string]any{"Calendar": name},
		config.ICalCalName+" ("+name+")")
}

// YearType describes whether a year is leap.
func (t *Translator) YearType(leap bool) string {
	if leap {
		return t.Msg(config.TKeyLeapYear)
	}
	return t.Msg(config.TKeyCommonYear)
}

// Summary builds the event title for a birthday of name observed in the
// calendar named calendarName. The age is only shown when the birth year is
// known.
func (t *Translator) Summary(name, calendarName string, age int, yearKnown bool) string {
	data := map[string]any{"Name": name, "Calendar": calendarName}
	switch {
	case !yearKnown:
		return t.localize(config.TKeyEvtSummary, data,
			fmt.Sprintf(config.FallbackSummary, calendarName, name))
	case age == 0:
		return t.localize(config.TKeyEvtSummaryBirth, data,
			fmt.Sprintf(config.FallbackSummaryBirth, calendarName, name))
	default:
		data["Age"] = age
		return t.localize(config.TKeyEvtSummaryAge, data,
			fmt.Sprintf(config.FallbackSummaryAge, calendarName, name, age))
	}
}

// SummaryFormatter adapts Summary to the engine's formatter signature for a
// fixed calendar.
func (t *Translator) SummaryFormatter(k calendar.Kind) func(name string, age int, yearKnown bool) string {
	calendarName := t.CalendarName(k)
	return func(name string, age int, yearKnown bool) string {
		return t.Summary(name, calendarName, age, yearKnown)
	}
}
