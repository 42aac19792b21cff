// Package locale resolves language tags to calendar defaults: the preferred
// calendar kind, the two-digit year window and the Hijri day adjustment.
package locale

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/tartampluch/go-calendar/internal/calendar"
	"github.com/tartampluch/go-calendar/internal/config"
	"golang.org/x/text/language"
)

//go:embed data/locales.json
var rawLocales []byte

// entry is one row of the embedded locale table.
type entry struct {
	Tag             string         `json:"tag"`
	Calendar        string         `json:"calendar"`
	HijriAdjustment *int           `json:"hijriAdjustment,omitempty"`
	TwoDigitYearMax map[string]int `json:"twoDigitYearMax,omitempty"`
}

// catalog is the decoded table. The first tag is the fallback.
type catalog struct {
	tags      []language.Tag
	providers []*Provider
	matcher   language.Matcher
}

var loadCatalog = sync.OnceValues(func() (*catalog, error) {
	return parseCatalog(rawLocales)
})

func parseCatalog(data []byte) (*catalog, error) {
	var entries []entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrLocaleData, err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%s: empty table", config.ErrLocaleData)
	}

	c := &catalog{}
	for _, e := range entries {
		p, err := newProvider(e)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", config.ErrLocaleData, err)
		}
		c.tags = append(c.tags, p.tag)
		c.providers = append(c.providers, p)
	}
	c.matcher = language.NewMatcher(c.tags)
	return c, nil
}

func newProvider(e entry) (*Provider, error) {
	tag, err := language.Parse(e.Tag)
	if err != nil {
		return nil, fmt.Errorf("%s %q: %w", config.ErrLocaleTag, e.Tag, err)
	}
	kind, err := calendar.ParseKind(e.Calendar)
	if err != nil {
		return nil, err
	}

	p := &Provider{
		tag:       tag,
		preferred: kind,
		twoDigit:  make(map[calendar.Kind]int, len(e.TwoDigitYearMax)),
	}
	for name, year := range e.TwoDigitYearMax {
		k, err := calendar.ParseKind(name)
		if err != nil {
			return nil, err
		}
		p.twoDigit[k] = year
	}
	if e.HijriAdjustment != nil {
		p.hijriAdjustment = *e.HijriAdjustment
		p.hasHijriAdjustment = true
	}
	return p, nil
}

// Provider holds the calendar defaults of one supported locale. It implements
// calendar.Defaults and is safe for concurrent use.
type Provider struct {
	tag                language.Tag
	preferred          calendar.Kind
	twoDigit           map[calendar.Kind]int
	hijriAdjustment    int
	hasHijriAdjustment bool
}

var _ calendar.Defaults = (*Provider)(nil)

// New returns the defaults of the supported locale closest to tag. Tags with
// no reasonable match fall back to English.
func New(tag string) (*Provider, error) {
	parsed, err := language.Parse(tag)
	if err != nil {
		return nil, fmt.Errorf("%s %q: %w", config.ErrLocaleTag, tag, err)
	}
	c, err := loadCatalog()
	if err != nil {
		return nil, err
	}

	_, idx, confidence := c.matcher.Match(parsed)
	if confidence == language.No {
		idx = 0
	}
	p := c.providers[idx]

	slog.Debug(config.MsgLocaleMatched,
		config.LogKeyComponent, config.CompLocale,
		config.LogKeyLang, tag,
		config.LogKeyTag, p.tag.String(),
		config.LogKeyCalendar, p.preferred.String(),
	)
	return p, nil
}

// Supported lists the locales of the embedded table, fallback first.
func Supported() ([]language.Tag, error) {
	c, err := loadCatalog()
	if err != nil {
		return nil, err
	}
	return append([]language.Tag(nil), c.tags...), nil
}

// Tag is the supported locale the provider was matched to.
func (p *Provider) Tag() language.Tag { return p.tag }

// PreferredKind is the calendar a user of this locale expects by default.
func (p *Provider) PreferredKind() calendar.Kind { return p.preferred }

// TwoDigitYearMax reports the locale's two-digit year window for kind k.
func (p *Provider) TwoDigitYearMax(k calendar.Kind) (int, bool) {
	v, ok := p.twoDigit[k]
	return v, ok
}

// HijriAdjustment reports the locale's Hijri day adjustment.
func (p *Provider) HijriAdjustment() (int, bool) {
	return p.hijriAdjustment, p.hasHijriAdjustment
}
