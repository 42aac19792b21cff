package calendar

import (
	"log/slog"

	"github.com/tartampluch/go-calendar/internal/config"
)

// Defaults supplies locale-dependent configuration that a calendar falls back
// to when no explicit value was set. Each method reports false when the source
// has no opinion.
type Defaults interface {
	TwoDigitYearMax(k Kind) (int, bool)
	HijriAdjustment() (int, bool)
}

const (
	minHijriAdjustment = -2
	maxHijriAdjustment = 2
	minTwoDigitYearMax = 99
)

// options is the explicit configuration a builder hands to its calendar.
type options struct {
	kind                 Kind
	twoDigitYearMax      int // 0 when unset
	hijriAdjustment      int
	hasHijriAdjustment   bool
	enforceEraYearRanges bool
	gregorianType        GregorianType
	defaults             Defaults
}

// Builder collects calendar configuration. It is not safe for concurrent use.
// After Build the builder is read-only; use Calendar.Clone to derive a variant.
type Builder struct {
	opts     options
	readOnly bool
}

// NewBuilder starts the configuration of a calendar of kind k.
func NewBuilder(k Kind) *Builder {
	b := &Builder{opts: options{kind: k}}
	if k == Gregorian {
		b.opts.gregorianType = Localized
	}
	return b
}

// New builds a calendar of kind k with default configuration.
func New(k Kind) (*Calendar, error) {
	return NewBuilder(k).Build()
}

// ReadOnly reports whether Build has been called.
func (b *Builder) ReadOnly() bool { return b.readOnly }

// SetTwoDigitYearMax sets the last year of the 100-year window used to expand
// two-digit years.
func (b *Builder) SetTwoDigitYearMax(year int) error {
	const op = "SetTwoDigitYearMax"
	if b.readOnly {
		return ErrReadOnly
	}
	sys, err := newSystem(b.opts, nil)
	if err != nil {
		return withOp(op, err)
	}
	if _, maxYear := sys.yearRange(); year < minTwoDigitYearMax || year > max(maxYear, minTwoDigitYearMax) {
		return rangeError(op, "year", int64(year))
	}
	b.opts.twoDigitYearMax = year
	return nil
}

// SetHijriAdjustment shifts Hijri dates by -2..2 days. Only the Hijri kind
// accepts it.
func (b *Builder) SetHijriAdjustment(days int) error {
	const op = "SetHijriAdjustment"
	if b.readOnly {
		return ErrReadOnly
	}
	if b.opts.kind != Hijri {
		return configError(op, "kind", int64(b.opts.kind))
	}
	if days < minHijriAdjustment || days > maxHijriAdjustment {
		return rangeError(op, "days", int64(days))
	}
	b.opts.hijriAdjustment = days
	b.opts.hasHijriAdjustment = true
	return nil
}

// SetEnforceEraYearRanges rejects era years beyond an era's last year instead
// of carrying them into the next era. Spill-over is allowed by default.
func (b *Builder) SetEnforceEraYearRanges(enforce bool) error {
	if b.readOnly {
		return ErrReadOnly
	}
	b.opts.enforceEraYearRanges = enforce
	return nil
}

// SetGregorianType selects the localized flavor of a Gregorian calendar.
func (b *Builder) SetGregorianType(t GregorianType) error {
	const op = "SetGregorianType"
	if b.readOnly {
		return ErrReadOnly
	}
	if b.opts.kind != Gregorian {
		return configError(op, "kind", int64(b.opts.kind))
	}
	if !t.valid() {
		return rangeError(op, "type", int64(t))
	}
	b.opts.gregorianType = t
	return nil
}

// SetDefaults installs the source of locale defaults. A nil source restores the
// built-in defaults.
func (b *Builder) SetDefaults(d Defaults) error {
	if b.readOnly {
		return ErrReadOnly
	}
	b.opts.defaults = d
	return nil
}

// Build validates the configuration and returns an immutable calendar. The
// builder becomes read-only even when Build fails.
func (b *Builder) Build() (*Calendar, error) {
	b.readOnly = true
	if !b.opts.kind.Valid() {
		return nil, configError("Build", "kind", int64(b.opts.kind))
	}

	c := &Calendar{opts: b.opts}
	sys, err := newSystem(b.opts, c)
	if err != nil {
		return nil, withOp("Build", err)
	}
	c.sys = sys

	slog.Debug(config.MsgCalendarBuilt,
		config.LogKeyComponent, config.CompCalendar,
		config.LogKeyCalendar, c.opts.kind.String(),
		config.LogKeyMin, sys.minSupported().String(),
		config.LogKeyMax, sys.maxSupported().String(),
	)
	return c, nil
}

// Clone returns a writable builder preloaded with the calendar's explicit
// configuration. Lazily resolved defaults are not copied.
func (c *Calendar) Clone() *Builder {
	return &Builder{opts: c.opts}
}

// newSystem instantiates the arithmetic for opts. owner may be nil when the
// system is only used to inspect static properties.
func newSystem(opts options, owner *Calendar) (system, error) {
	switch opts.kind {
	case Gregorian, Japanese, Taiwan, Korean, ThaiBuddhist:
		return newSolar(opts.kind, opts.enforceEraYearRanges), nil
	case Hijri:
		adjust := func() int { return 0 }
		if owner != nil {
			adjust = owner.hijriAdjustment
		}
		return &hijri{adjustment: adjust}, nil
	case UmAlQura:
		return umAlQura{}, nil
	case Hebrew:
		return hebrew{}, nil
	case Persian:
		return persian{}, nil
	case ChineseLunisolar, TaiwanLunisolar, KoreanLunisolar, JapaneseLunisolar:
		return newLunisolar(opts.kind, opts.enforceEraYearRanges), nil
	}
	return nil, configError("", "kind", int64(opts.kind))
}
