package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"
	"time"

	"github.com/tartampluch/go-calendar/internal/calendar"
	"github.com/tartampluch/go-calendar/internal/config"
	"github.com/tartampluch/go-calendar/internal/engine"
	"github.com/tartampluch/go-calendar/internal/i18n"
	"github.com/tartampluch/go-calendar/internal/locale"
	"github.com/tartampluch/go-calendar/internal/server"
	"github.com/zalando/go-keyring"
)

// main delegates to runMain so that deferred calls run before os.Exit.
func main() {
	os.Exit(runMain())
}

// runMain manages the application lifecycle, argument parsing, and exit codes.
func runMain() int {
	// -------------------------------------------------------------------------
	// 1. CLI Argument Parsing
	// -------------------------------------------------------------------------
	showVersion := flag.Bool(config.FlagVersion, false, config.FlagDescVersion)
	debugMode := flag.Bool(config.FlagDebug, false, config.FlagDescDebug)
	convertDate := flag.String(config.FlagConvert, "", config.FlagDescConvert)
	calendarName := flag.String(config.FlagCalendar, "", config.FlagDescCalendar)
	serve := flag.Bool(config.FlagServe, false, config.FlagDescServe)
	lang := flag.String(config.FlagLang, "", config.FlagDescLang)
	flag.Parse()

	if *showVersion {
		printVersion()
		return config.ExitCodeSuccess
	}
	if *convertDate == "" && !*serve {
		fmt.Fprintln(os.Stderr, config.MsgModeRequired)
		flag.Usage()
		return config.ExitCodeError
	}

	// -------------------------------------------------------------------------
	// 2. Logging Initialization
	// -------------------------------------------------------------------------
	// Conversions print their result on stdout, so their logs go to stderr.
	console := io.Writer(os.Stdout)
	if *convertDate != "" {
		console = os.Stderr
	}
	logCloser := setupLogging(console, *debugMode)
	if logCloser != nil {
		defer func() {
			_ = logCloser.Close()
		}()
	}

	// -------------------------------------------------------------------------
	// 3. Context & Signal Handling
	// -------------------------------------------------------------------------
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logStartupInfo()

	// -------------------------------------------------------------------------
	// 4. Application Logic
	// -------------------------------------------------------------------------
	var err error
	if *convertDate != "" {
		err = runConvert(os.Stdout, *convertDate, *calendarName, *lang)
	} else {
		err = runServe(ctx, *calendarName, *lang)
	}
	if err != nil {
		slog.Error(config.ErrAppFailed,
			config.LogKeyComponent, config.CompMain,
			config.LogKeyError, err,
		)
		return config.ExitCodeError
	}

	slog.Info(config.MsgAppStop, config.LogKeyComponent, config.CompMain)
	return config.ExitCodeSuccess
}

// overrides are explicit calendar settings that win over locale defaults.
type overrides struct {
	twoDigitYearMax int  // 0 keeps the default
	hijriAdjustment *int // nil keeps the default
}

// resolveKind picks the calendar named by name, or the locale's preferred one
// when name is empty.
func resolveKind(name string, loc *locale.Provider) (calendar.Kind, error) {
	if name == "" {
		return loc.PreferredKind(), nil
	}
	return calendar.ParseKind(name)
}

// buildCalendar configures a calendar of kind k from the locale and explicit
// overrides. The Hijri adjustment is ignored by other kinds.
func buildCalendar(k calendar.Kind, loc *locale.Provider, o overrides) (*calendar.Calendar, error) {
	b := calendar.NewBuilder(k)
	if err := b.SetDefaults(loc); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrCalendarBuild, err)
	}
	if o.twoDigitYearMax != 0 {
		if err := b.SetTwoDigitYearMax(o.twoDigitYearMax); err != nil {
			return nil, fmt.Errorf("%s: %w", config.ErrCalendarBuild, err)
		}
	}
	if o.hijriAdjustment != nil && k == calendar.Hijri {
		if err := b.SetHijriAdjustment(*o.hijriAdjustment); err != nil {
			return nil, fmt.Errorf("%s: %w", config.ErrCalendarBuild, err)
		}
	}
	cal, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrCalendarBuild, err)
	}
	return cal, nil
}

// runConvert prints the Gregorian date value expressed in the target calendar.
func runConvert(w io.Writer, value, calendarName, lang string) error {
	if lang == "" {
		lang = config.DefaultLanguage
	}
	loc, err := locale.New(lang)
	if err != nil {
		return err
	}
	kind, err := resolveKind(calendarName, loc)
	if err != nil {
		return err
	}
	cal, err := buildCalendar(kind, loc, overrides{})
	if err != nil {
		return err
	}

	date, err := time.Parse(config.DateFormatFullDash, value)
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrDateParse, err)
	}
	conv, err := engine.Convert(cal, date)
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrConvert, err)
	}

	tr, err := i18n.New(lang)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, config.MsgConvertOutput,
		tr.CalendarName(kind),
		conv.Era, conv.Year, conv.Month, conv.Day,
		conv.DayOfYear, conv.DaysInYear,
		tr.YearType(conv.LeapYear),
	)
	return err
}

// runServe syncs the address book into the anniversary feed and serves it
// until ctx is cancelled. SIGHUP forces an immediate resync.
func runServe(ctx context.Context, calendarName, lang string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}
	if lang == "" {
		lang = settings.Language
	}
	if calendarName == "" {
		calendarName = settings.Calendar
	}
	slog.Info(config.MsgSettingsLoaded,
		config.LogKeyComponent, config.CompConfig,
		config.LogKeyMode, settings.SourceMode,
		config.LogKeyLang, lang,
		config.LogKeyInterval, settings.RefreshInterval,
	)

	loc, err := locale.New(lang)
	if err != nil {
		return err
	}
	kind, err := resolveKind(calendarName, loc)
	if err != nil {
		return err
	}
	cal, err := buildCalendar(kind, loc, overrides{
		twoDigitYearMax: settings.TwoDigitYearMax,
		hijriAdjustment: settings.HijriAdjustment,
	})
	if err != nil {
		return err
	}
	tr, err := i18n.New(lang)
	if err != nil {
		return err
	}

	srv, err := server.NewCalendarServer(settings.Port, loc)
	if err != nil {
		return err
	}
	srv.DefaultKind = kind

	gen := &engine.Generator{
		Clock:         engine.SystemClock{},
		Fetcher:       engine.NewHTTPFetcher(),
		Calendar:      cal,
		FeedName:      tr.FeedName(kind),
		FormatSummary: tr.SummaryFormatter(kind),
	}
	syncCfg := engine.SyncConfig{
		Mode:            settings.SourceMode,
		LocalPath:       settings.LocalPath,
		WebURL:          settings.WebURL,
		WebUser:         settings.WebUser,
		WebPass:         settings.WebPass,
		ReminderTrigger: settings.ReminderTrigger,
	}
	if syncCfg.Mode == config.SourceModeWeb && syncCfg.WebPass == "" && syncCfg.WebUser != "" {
		syncCfg.WebPass = lookupPassword(syncCfg.WebUser)
	}

	resync := func(ctx context.Context) {
		ics, contacts, today, err := gen.RunSync(ctx, syncCfg)
		if err != nil {
			if !errors.Is(err, context.Canceled) {
				slog.Error(config.MsgSyncFailed,
					config.LogKeyComponent, config.CompWorker,
					config.LogKeyError, err,
				)
			}
			return
		}
		srv.Update(ics)
		slog.Info(config.MsgSyncFinished,
			config.LogKeyComponent, config.CompWorker,
			config.LogKeyFound, len(contacts),
			config.LogKeyToday, today,
		)
	}

	go engine.RunPeriodic(ctx, settings.RefreshInterval, hangups(ctx), resync)

	return srv.Start(ctx)
}

// hangups converts SIGHUP into resync requests until ctx is done.
func hangups(ctx context.Context) <-chan struct{} {
	sig := make(chan os.Signal, config.ChannelBufferSize)
	signal.Notify(sig, syscall.SIGHUP)

	out := make(chan struct{})
	go func() {
		defer signal.Stop(sig)
		for {
			select {
			case <-ctx.Done():
				return
			case <-sig:
				slog.Info(config.MsgSyncSignal, config.LogKeyComponent, config.CompMain)
				select {
				case out <- struct{}{}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out
}

// lookupPassword reads the CardDAV password from the OS keyring. A missing
// entry yields an empty password.
func lookupPassword(user string) string {
	pass, err := keyring.Get(config.KeyringService, user)
	if err != nil {
		slog.Debug(config.MsgPassFail,
			config.LogKeyComponent, config.CompMain,
			config.LogKeyUser, user,
			config.LogKeyError, err,
		)
		return ""
	}
	return pass
}

// printVersion outputs the build information to stdout.
func printVersion() {
	fmt.Printf(config.MsgVersionOutput,
		config.AppName,
		config.Version,
		runtime.GOOS,
		runtime.GOARCH,
	)
}

// logStartupInfo logs environment details useful for debugging.
func logStartupInfo() {
	slog.Info(config.MsgAppStarting,
		config.LogKeyComponent, config.CompMain,
		slog.Group(config.LogKeyBuild,
			slog.String(config.LogKeyApp, config.AppName),
			slog.String(config.LogKeyVersion, config.Version),
			slog.String(config.LogKeyCommit, config.Commit),
			slog.String(config.LogKeyBuilt, config.Date),
			slog.String(config.LogKeyGoVer, runtime.Version()),
		),
		slog.Group(config.LogKeyEnv,
			slog.String(config.LogKeyOS, runtime.GOOS),
			slog.String(config.LogKeyArch, runtime.GOARCH),
			slog.Int(config.LogKeyPID, os.Getpid()),
		),
	)
}

// setupLogging installs a JSON slog handler writing to console and, when
// possible, to a log file in the user cache directory.
func setupLogging(console io.Writer, debugMode bool) io.Closer {
	writers := []io.Writer{console}
	var logFile *os.File

	if logPath, err := getLogFilePath(); err == nil {
		// O_TRUNC resets logs on restart to prevent indefinite growth.
		f, err := os.OpenFile(logPath, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, config.FilePermUserRW)
		if err == nil {
			writers = append(writers, f)
			logFile = f
		} else {
			fmt.Fprintf(os.Stderr, config.MsgLogWarning, config.ErrLogFile, logPath, err)
		}
	}

	level := slog.LevelInfo
	if debugMode {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: debugMode,
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(io.MultiWriter(writers...), opts)))

	if logFile == nil {
		return nil
	}
	return logFile
}

// getLogFilePath determines the platform-specific cache directory for logs.
func getLogFilePath() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCacheDir, err)
	}

	appDir := filepath.Join(cacheDir, config.AppID)
	if err := os.MkdirAll(appDir, config.DirPermUserRWX); err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCreateDir, err)
	}

	return filepath.Join(appDir, config.LogFileName), nil
}
