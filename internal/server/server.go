package server

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/tartampluch/go-calendar/internal/calendar"
	"github.com/tartampluch/go-calendar/internal/config"
	"github.com/tartampluch/go-calendar/internal/engine"
)

// cacheItem stores the rendered calendar and its metadata for HTTP caching.
type cacheItem struct {
	data         []byte
	etag         string
	lastModified string // RFC1123 format required by HTTP headers
}

// CalendarServer serves the anniversary feed and the date conversion API.
type CalendarServer struct {
	// The feed is read on every request and replaced only after a sync, so
	// readers never take a lock.
	cache atomic.Pointer[cacheItem]
	Port  string

	// DefaultKind answers /convert requests that name no calendar.
	DefaultKind calendar.Kind
	calendars   map[calendar.Kind]*calendar.Calendar
}

// NewCalendarServer builds one calendar of every kind, configured from
// defaults, for the conversion API. defaults may be nil.
func NewCalendarServer(port string, defaults calendar.Defaults) (*CalendarServer, error) {
	s := &CalendarServer{
		Port:        port,
		DefaultKind: calendar.Gregorian,
		calendars:   make(map[calendar.Kind]*calendar.Calendar),
	}
	for _, k := range calendar.Kinds() {
		b := calendar.NewBuilder(k)
		if err := b.SetDefaults(defaults); err != nil {
			return nil, fmt.Errorf("%s: %w", config.ErrCalendarBuild, err)
		}
		cal, err := b.Build()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", config.ErrCalendarBuild, err)
		}
		s.calendars[k] = cal
	}
	return s, nil
}

// Handler returns the routes served by the server.
func (s *CalendarServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(config.RouteRoot, s.handleCalendarRequest)
	mux.HandleFunc(config.RouteConvert, s.handleConvertRequest)
	return mux
}

// Start initializes the HTTP server and blocks until the context is cancelled.
func (s *CalendarServer) Start(ctx context.Context) error {
	if err := config.ValidatePort(s.Port); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         config.LocalhostBindAddr + config.AddrSeparator + s.Port,
		Handler:      s.Handler(),
		ReadTimeout:  config.ServerReadTimeout,
		WriteTimeout: config.ServerWriteTimeout,
		IdleTimeout:  config.ServerIdleTimeout,
	}

	serverError := make(chan error, config.ChannelBufferSize)

	go func() {
		slog.Info(config.MsgServerListen,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyPort, s.Port,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError <- err
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info(config.MsgServerStop, config.LogKeyComponent, config.CompServer)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("%s: %w", config.ErrServerShutdown, err)
		}
		return nil

	case err := <-serverError:
		return fmt.Errorf("%s: %w", config.ErrServerStartup, err)
	}
}

// Update atomically replaces the served feed.
func (s *CalendarServer) Update(data []byte) {
	hash := sha256.Sum256(data)
	etag := fmt.Sprintf(config.FormatETag, hex.EncodeToString(hash[:]))

	item := &cacheItem{
		data:         data,
		etag:         etag,
		lastModified: time.Now().UTC().Format(http.TimeFormat),
	}
	s.cache.Store(item)

	slog.Debug(config.MsgCacheUpdated,
		config.LogKeyComponent, config.CompServer,
		config.LogKeySizeBytes, len(data),
		config.LogKeyETag, etag,
	)
}

func allowRead(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set(config.HeaderAllow, config.AllowedMethods)
		http.Error(w, config.HTTPMsgMethodNotAll, http.StatusMethodNotAllowed)
		return false
	}
	return true
}

// handleCalendarRequest serves the ICS content with HTTP caching support.
func (s *CalendarServer) handleCalendarRequest(w http.ResponseWriter, r *http.Request) {
	if !allowRead(w, r) {
		return
	}

	item := s.cache.Load()
	if item == nil {
		w.Header().Set(config.HeaderRetryAfter, config.RetryAfterSeconds)
		http.Error(w, config.HTTPMsgInitializing, http.StatusServiceUnavailable)
		return
	}

	w.Header().Set(config.HeaderContentType, config.MimeTextCalendar)
	w.Header().Set(config.HeaderXContentType, config.MimeNoSniff)
	w.Header().Set(config.HeaderCacheControl, config.CacheControlPrivate)
	w.Header().Set(config.HeaderETag, item.etag)
	w.Header().Set(config.HeaderLastModified, item.lastModified)

	if match := r.Header.Get(config.HeaderIfNoneMatch); match == item.etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	if since := r.Header.Get(config.HeaderIfModifiedSince); since != "" {
		if clientTime, err := time.Parse(http.TimeFormat, since); err == nil {
			if serverTime, err := time.Parse(http.TimeFormat, item.lastModified); err == nil {
				if !serverTime.After(clientTime) {
					w.WriteHeader(http.StatusNotModified)
					return
				}
			}
		}
	}

	if r.Method == http.MethodGet {
		if _, err := io.Copy(w, bytes.NewReader(item.data)); err != nil {
			slog.Error(config.ErrWriteResp,
				config.LogKeyComponent, config.CompServer,
				config.LogKeyError, err,
			)
		}
	}
}

// handleConvertRequest answers GET /convert?calendar=<kind>&date=YYYY-MM-DD.
func (s *CalendarServer) handleConvertRequest(w http.ResponseWriter, r *http.Request) {
	if !allowRead(w, r) {
		return
	}

	kind := s.DefaultKind
	if name := r.URL.Query().Get(config.QueryCalendar); name != "" {
		k, err := calendar.ParseKind(name)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, config.HTTPMsgBadCalendar)
			return
		}
		kind = k
	}
	cal, ok := s.calendars[kind]
	if !ok {
		writeJSONError(w, http.StatusBadRequest, config.HTTPMsgBadCalendar)
		return
	}

	date, err := time.Parse(config.DateFormatFullDash, r.URL.Query().Get(config.QueryDate))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, config.HTTPMsgBadDate)
		return
	}

	conv, err := engine.Convert(cal, date)
	switch {
	case errors.Is(err, calendar.ErrOutOfRange):
		writeJSONError(w, http.StatusUnprocessableEntity, config.HTTPMsgOutOfCalendar)
		return
	case err != nil:
		slog.Error(config.ErrConvert,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyError, err,
		)
		writeJSONError(w, http.StatusInternalServerError, config.HTTPMsgInternalErr)
		return
	}

	slog.Debug(config.MsgConvertServed,
		config.LogKeyComponent, config.CompServer,
		config.LogKeyCalendar, conv.Calendar,
		config.LogKeyDate, date.Format(config.DateFormatFullDash),
	)
	writeJSON(w, http.StatusOK, conv)
}

// errorBody is the JSON payload of a failed API request.
type errorBody struct {
	Error string `json:"error"`
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorBody{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set(config.HeaderContentType, config.MimeJSON)
	w.Header().Set(config.HeaderXContentType, config.MimeNoSniff)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error(config.ErrWriteResp,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyError, err,
		)
	}
}
