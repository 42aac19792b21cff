package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-calendar/internal/calendar"
	"github.com/tartampluch/go-calendar/internal/config"
)

const hebrewFeed = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nX-WR-CALNAME:Hebrew birthdays\r\nEND:VCALENDAR\r\n"

func newTestServer(t *testing.T, port string, defaults calendar.Defaults) *CalendarServer {
	t.Helper()
	srv, err := NewCalendarServer(port, defaults)
	require.NoError(t, err)
	return srv
}

func TestFeed_Responses(t *testing.T) {
	loaded := newTestServer(t, "0", nil)
	loaded.Update([]byte(hebrewFeed))
	etag := loaded.cache.Load().etag
	lastModified := loaded.cache.Load().lastModified

	tests := []struct {
		name     string
		srv      *CalendarServer
		method   string
		header   map[string]string
		wantCode int
		wantBody string
	}{
		{"Feed", loaded, http.MethodGet, nil, http.StatusOK, hebrewFeed},
		{"Head has no body", loaded, http.MethodHead, nil, http.StatusOK, ""},
		{"Matching ETag", loaded, http.MethodGet, map[string]string{config.HeaderIfNoneMatch: etag}, http.StatusNotModified, ""},
		{"Stale ETag", loaded, http.MethodGet, map[string]string{config.HeaderIfNoneMatch: `"stale"`}, http.StatusOK, hebrewFeed},
		{"Not modified since", loaded, http.MethodGet, map[string]string{config.HeaderIfModifiedSince: lastModified}, http.StatusNotModified, ""},
		{"Modified since", loaded, http.MethodGet, map[string]string{config.HeaderIfModifiedSince: "Mon, 02 Jan 2006 15:04:05 GMT"}, http.StatusOK, hebrewFeed},
		{"Before first sync", newTestServer(t, "0", nil), http.MethodGet, nil, http.StatusServiceUnavailable, ""},
		{"Write method", loaded, http.MethodPut, nil, http.StatusMethodNotAllowed, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, config.RouteRoot, nil)
			for k, v := range tt.header {
				req.Header.Set(k, v)
			}
			w := httptest.NewRecorder()
			tt.srv.Handler().ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, w.Body.String())
			}
			if w.Code == http.StatusNotModified {
				assert.Empty(t, w.Body.String())
			}

			switch w.Code {
			case http.StatusOK, http.StatusNotModified:
				assert.Equal(t, etag, w.Header().Get(config.HeaderETag))
				assert.Equal(t, config.MimeTextCalendar, w.Header().Get(config.HeaderContentType))
				assert.Equal(t, config.MimeNoSniff, w.Header().Get(config.HeaderXContentType))
				assert.Equal(t, config.CacheControlPrivate, w.Header().Get(config.HeaderCacheControl))
			case http.StatusServiceUnavailable:
				assert.Equal(t, config.RetryAfterSeconds, w.Header().Get(config.HeaderRetryAfter))
			case http.StatusMethodNotAllowed:
				assert.Equal(t, config.AllowedMethods, w.Header().Get(config.HeaderAllow))
			}
		})
	}
}

func TestUpdate_ChangesETag(t *testing.T) {
	srv := newTestServer(t, "0", nil)

	srv.Update([]byte(hebrewFeed))
	first := srv.cache.Load().etag
	srv.Update([]byte(hebrewFeed))
	assert.Equal(t, first, srv.cache.Load().etag, "same feed, same ETag")

	srv.Update([]byte("BEGIN:VCALENDAR\r\nX-WR-CALNAME:Persian birthdays\r\nEND:VCALENDAR\r\n"))
	assert.NotEqual(t, first, srv.cache.Load().etag)
}

// TestUpdate_ConcurrentReaders swaps feeds while requests are in flight.
// Meaningful under -race.
func TestUpdate_ConcurrentReaders(t *testing.T) {
	srv := newTestServer(t, "0", nil)
	h := srv.Handler()

	var wg sync.WaitGroup
	for w := range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 200 {
				srv.Update([]byte(fmt.Sprintf("BEGIN:VCALENDAR\r\nX-SEQ:%d-%d\r\nEND:VCALENDAR\r\n", w, i)))
			}
		}()
	}
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 200 {
				rec := httptest.NewRecorder()
				h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, config.RouteRoot, nil))
				if rec.Code != http.StatusOK && rec.Code != http.StatusServiceUnavailable {
					t.Errorf("unexpected status %d", rec.Code)
					return
				}
			}
		}()
	}
	wg.Wait()
}

// TestServer_Lifecycle binds a real listener, serves both routes and shuts
// down on cancellation.
func TestServer_Lifecycle(t *testing.T) {
	const port = "18471"
	base := "http://" + config.LocalhostBindAddr + config.AddrSeparator + port

	srv := newTestServer(t, port, nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- srv.Start(ctx) }()

	get := func(path string) (int, string, string) {
		resp, err := http.Get(base + path)
		if err != nil {
			return 0, "", ""
		}
		defer func() { _ = resp.Body.Close() }()
		body, _ := io.ReadAll(resp.Body)
		return resp.StatusCode, resp.Header.Get(config.HeaderContentType), string(body)
	}

	require.Eventually(t, func() bool {
		code, _, _ := get(config.RouteRoot)
		return code == http.StatusServiceUnavailable
	}, 2*time.Second, 25*time.Millisecond, "listener never came up")

	srv.Update([]byte(hebrewFeed))
	code, mime, body := get(config.RouteRoot)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, config.MimeTextCalendar, mime)
	assert.Equal(t, hebrewFeed, body)

	code, mime, body = get(config.RouteConvert + "?calendar=hebrew&date=2024-03-20")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, config.MimeJSON, mime)
	assert.Contains(t, body, `"year":5784`)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(config.ShutdownTimeout + time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_StartRejectsBadPort(t *testing.T) {
	tests := map[string]string{
		"not-a-port": config.ErrPortNumber,
		"0":          config.ErrPortRange,
		"70000":      config.ErrPortRange,
	}
	for port, want := range tests {
		t.Run(port, func(t *testing.T) {
			err := newTestServer(t, port, nil).Start(context.Background())
			require.Error(t, err)
			assert.Contains(t, err.Error(), want)
		})
	}
}
