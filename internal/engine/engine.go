package engine

import (
	"bytes"
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/emersion/go-ical"
	"github.com/emersion/go-vcard"
	"github.com/tartampluch/go-calendar/internal/calendar"
	"github.com/tartampluch/go-calendar/internal/config"
)

// SyncConfig contains all parameters required to perform a synchronization.
type SyncConfig struct {
	Mode            string // config.SourceModeLocal or config.SourceModeWeb
	LocalPath       string // Absolute path to the .vcf file
	WebURL          string // CardDAV or WebDAV URL
	WebUser         string // HTTP Basic Auth Username
	WebPass         string // HTTP Basic Auth Password
	ReminderTrigger string // ISO8601 duration string (e.g., "-P1D")
}

// Generator fetches contacts and projects their birthdays into a target
// calendar. A birthday recurs on the same month and day of that calendar, so a
// Hebrew or Hijri anniversary moves across Gregorian dates from year to year.
type Generator struct {
	Clock    Clock        // Interface for time mocking.
	Fetcher  VCardFetcher // Interface for network abstraction.
	Calendar *calendar.Calendar

	// FeedName overrides the X-WR-CALNAME of the feed.
	FeedName string

	// FormatSummary injects localized event titles into the logic layer.
	FormatSummary func(name string, age int, yearKnown bool) string
}

// syncStats counts what a generation pass saw.
type syncStats struct{ processed, withBday, skipped, today int }

// RunSync executes the fetching, parsing, and generation pipeline.
// It returns the ICS data, the list of contacts, the count of birthdays today, and any error.
func (g *Generator) RunSync(ctx context.Context, cfg SyncConfig) ([]byte, []BirthdayEntry, int, error) {
	if g.Calendar == nil {
		return nil, nil, 0, errors.New(config.ErrCalendarMissing)
	}

	start := time.Now()
	log := slog.With(
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyMode, cfg.Mode,
		config.LogKeyCalendar, g.Calendar.Kind().String(),
	)
	log.InfoContext(ctx, config.MsgSyncStarted)

	reader, err := g.acquireStream(ctx, cfg)
	if err != nil {
		if ctx.Err() != nil {
			return nil, nil, 0, ctx.Err()
		}
		return nil, nil, 0, fmt.Errorf("%s: %w", config.ErrVCardParse, err)
	}
	defer func() { _ = reader.Close() }()

	if err := ctx.Err(); err != nil {
		return nil, nil, 0, err
	}

	ics, contacts, count, err := g.generateCalendar(ctx, reader, cfg.ReminderTrigger)
	if err == nil {
		log.Debug(config.MsgSyncFinished, config.LogKeyDuration, time.Since(start).Milliseconds())
	}
	return ics, contacts, count, err
}

// acquireStream opens the appropriate data source based on configuration.
func (g *Generator) acquireStream(ctx context.Context, cfg SyncConfig) (io.ReadCloser, error) {
	switch cfg.Mode {
	case config.SourceModeLocal:
		if cfg.LocalPath == "" {
			return nil, errors.New(config.ErrLocalPathEmpty)
		}
		return os.Open(cfg.LocalPath)
	case config.SourceModeWeb:
		if cfg.WebURL == "" {
			return nil, errors.New(config.ErrWebURLEmpty)
		}
		if g.Fetcher == nil {
			return nil, errors.New(config.ErrFetcherMissing)
		}
		return g.Fetcher.Fetch(ctx, cfg.WebURL, cfg.WebUser, cfg.WebPass)
	default:
		return nil, fmt.Errorf("%s: %q", config.ErrModeUnsupport, cfg.Mode)
	}
}

func (g *Generator) newFeed() *ical.Calendar {
	cal := ical.NewCalendar()

	name := g.FeedName
	if name == "" {
		name = config.ICalCalName
	}
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, name)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	// RFC 7986 refresh hint.
	refreshProp := ical.NewProp(config.PropRefresh)
	refreshProp.SetDuration(config.DefaultICalRefresh)
	cal.Props.Set(refreshProp)
	return cal
}

// generateCalendar parses the vCard stream and constructs the iCalendar object.
// It also builds the BirthdayEntry list.
func (g *Generator) generateCalendar(ctx context.Context, r io.Reader, reminderTrigger string) ([]byte, []BirthdayEntry, int, error) {
	cal := g.newFeed()

	// Birthdays follow the local calendar date; only DTSTAMP is UTC.
	now := g.Clock.Now()
	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(now.UTC())

	today, err := dayInstant(now)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("%s: %w", config.ErrConvert, err)
	}

	decoder := vcard.NewDecoder(r)
	var stats syncStats
	var contacts []BirthdayEntry

	for {
		if ctx.Err() != nil {
			return nil, nil, 0, ctx.Err()
		}

		card, err := decoder.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// Keep going: one bad card must not hide the others.
			slog.Warn(config.MsgSkippedCard,
				config.LogKeyComponent, config.CompEngine,
				config.LogKeyError, err)
			continue
		}

		stats.processed++
		bday := card.Get(config.VCardBDAY)
		if bday == nil || bday.Value == "" {
			continue
		}

		birthDate, yearKnown, err := parseDate(bday.Value)
		if err != nil {
			slog.Debug(config.MsgSkippedDate,
				config.LogKeyComponent, config.CompEngine,
				config.LogKeyValue, bday.Value)
			continue
		}
		stats.withBday++

		// Name Strategy: FN (Formatted) > N (Structured) > Fallback
		name := config.FallbackName
		if fn := card.Get(config.VCardFN); fn != nil {
			name = fn.Value
		} else if n := card.Get(config.VCardN); n != nil {
			name = n.Value
		}

		// Deterministic UID generation for stability across refreshes
		input := fmt.Sprintf(config.FormatHashInput, name, birthDate.Format(time.RFC3339), config.UIDSalt)
		hash := sha256.Sum256([]byte(input))
		uidBase := fmt.Sprintf("%x", hash[:config.UIDHashLength])

		p, err := g.project(birthDate, yearKnown, today)
		if err != nil {
			stats.skipped++
			slog.Debug(config.MsgSkippedRange,
				config.LogKeyComponent, config.CompEngine,
				config.LogKeyName, name,
				config.LogKeyDOB, birthDate.Format(config.DateFormatFullDash),
				config.LogKeyError, err)
			continue
		}

		entry := BirthdayEntry{
			UID:            uidBase,
			Name:           name,
			DateOfBirth:    birthDate,
			YearKnown:      yearKnown,
			NativeBirth:    p.native,
			NextOccurrence: dateIn(p.next, now.Location()),
		}
		if yearKnown {
			entry.AgeNext = p.nextOrdinal
		}
		contacts = append(contacts, entry)

		events, isToday := g.createEvents(name, yearKnown, p, reminderTrigger, today, now.Location(), uidBase)
		if isToday {
			stats.today++
			slog.Info(config.MsgBdayToday,
				config.LogKeyComponent, config.CompEngine,
				config.LogKeyName, name,
				config.LogKeyDOB, birthDate.Format(config.DateFormatFullDash))
		}

		for _, e := range events {
			e.Props.Set(dtStampProp)
			cal.Children = append(cal.Children, e.Component)
		}
	}

	if len(cal.Children) == 0 {
		// Clients reject an empty VCALENDAR; serve the minimal stub instead.
		var buf bytes.Buffer
		buf.WriteString(config.StubVCalendar)

		g.logSuccess(stats)
		return buf.Bytes(), contacts, 0, nil
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, nil, 0, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}

	g.logSuccess(stats)
	return buf.Bytes(), contacts, stats.today, nil
}

// logSuccess logs the final statistics of the generation process.
func (g *Generator) logSuccess(stats syncStats) {
	slog.Info(config.MsgGenSuccess,
		config.LogKeyComponent, config.CompEngine,
		slog.Group(config.LogKeyStats,
			slog.Int(config.LogKeyTotal, stats.processed),
			slog.Int(config.LogKeyFound, stats.withBday),
			slog.Int(config.LogKeySkipped, stats.skipped),
			slog.Int(config.LogKeyToday, stats.today),
		),
	)
}

// projection is a birthday located in the target calendar.
type projection struct {
	birth       calendar.Instant
	native      calendar.Fields
	current     int // ordinal of the anniversary in today's calendar year
	next        calendar.Instant
	nextOrdinal int
}

// project converts the Gregorian birth date into the target calendar and
// locates the anniversaries around today.
func (g *Generator) project(birthDate time.Time, yearKnown bool, today calendar.Instant) (projection, error) {
	birth, err := dayInstant(birthDate)
	if err != nil {
		return projection{}, err
	}
	if birth < g.Calendar.MinSupported() || birth > g.Calendar.MaxSupported() {
		return projection{}, fmt.Errorf("%s: %s", config.HTTPMsgOutOfCalendar, birth)
	}

	native, err := g.Calendar.Fields(birth)
	if err != nil {
		return projection{}, err
	}
	current, err := anniversaryIn(g.Calendar, birth, today)
	if err != nil {
		return projection{}, err
	}
	next, ordinal, err := nextAnniversary(g.Calendar, birth, today)
	if err != nil {
		return projection{}, err
	}
	if yearKnown && ordinal < 0 {
		// Not born yet: the first occurrence is the birth itself.
		next, ordinal = birth, 0
	}
	return projection{
		birth:       birth,
		native:      native,
		current:     current,
		next:        next,
		nextOrdinal: ordinal,
	}, nil
}

// dateIn returns midnight of the Gregorian date of t in loc.
func dateIn(t calendar.Instant, loc *time.Location) time.Time {
	y, m, d := t.Time().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// createEvents generates events for the anniversaries falling in the previous,
// current and next calendar years. No event is created before birth.
func (g *Generator) createEvents(name string, yearKnown bool, p projection, reminderTrigger string, today calendar.Instant, loc *time.Location, uidBase string) ([]*ical.Event, bool) {
	calName := g.Calendar.Kind().String()

	var events []*ical.Event
	isToday := false

	for n := p.current - config.ProjectionYears; n <= p.current+config.ProjectionYears; n++ {
		if yearKnown && n < 0 {
			continue
		}
		at, err := g.Calendar.AddYears(p.birth, n)
		if err != nil {
			continue
		}
		f, err := g.Calendar.Fields(at)
		if err != nil {
			continue
		}

		event := ical.NewEvent()
		event.Props.SetText(config.PropUID, fmt.Sprintf(config.FormatUID, uidBase, calName, f.Year, config.ICalDomain))

		age := 0
		if yearKnown {
			age = n
		}

		summary := fmt.Sprintf(config.FallbackSummary, calName, name)
		if g.FormatSummary != nil {
			summary = g.FormatSummary(name, age, yearKnown)
		}
		event.Props.SetText(config.PropSummary, summary)
		event.Props.SetText(config.PropDescription, fmt.Sprintf(config.FormatDescription, calName, f.Year, f.Month, f.Day))
		event.Props.SetText(config.PropCategories, calName)

		if at == today {
			isToday = true
		}

		dtStartProp := ical.NewProp(config.PropDTStart)
		dtStartProp.SetDate(dateIn(at, loc))
		event.Props.Set(dtStartProp)

		if reminderTrigger != "" {
			addAlarm(event, reminderTrigger, summary)
		}

		events = append(events, event)
	}
	return events, isToday
}

// addAlarm appends a DISPLAY alarm (notification) to the event.
func addAlarm(event *ical.Event, trigger, description string) {
	alarm := ical.NewComponent(config.ICalComponent)
	alarm.Props.SetText(config.PropAction, config.ICalAction)
	alarm.Props.SetText(config.PropDescription, description)

	// Set trigger manually to avoid "VALUE=TEXT" param
	triggerProp := ical.NewProp(config.PropTrigger)
	triggerProp.Value = trigger
	alarm.Props.Set(triggerProp)

	event.Children = append(event.Children, alarm)
}

// parseDate handles various vCard date formats.
func parseDate(value string) (time.Time, bool, error) {
	formatsWithYear := []string{
		config.DateFormatFullDash,
		config.DateFormatFullBasic,
		config.DateFormatRFC3339,
		config.DateFormatFullT,
	}

	for _, f := range formatsWithYear {
		if t, err := time.Parse(f, value); err == nil {
			y, m, d := t.Date()
			return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), true, nil
		}
	}

	// Truncated dates (year unknown) are pinned to a leap year so that
	// --02-29 stays valid.
	formatsWithoutYear := []string{config.DateFormatNoYearD, config.DateFormatNoYearB}
	for _, f := range formatsWithoutYear {
		if t, err := time.Parse(f, value); err == nil {
			safeDate := time.Date(config.DefaultLeapYear, t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			return safeDate, false, nil
		}
	}

	return time.Time{}, false, errors.New(config.ErrDateParse)
}
