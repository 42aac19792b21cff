package engine_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-calendar/internal/config"
	"github.com/tartampluch/go-calendar/internal/engine"
)

const hebrewCard = "BEGIN:VCARD\r\nVERSION:4.0\r\nFN:Noa Levi\r\nBDAY:19900315\r\nEND:VCARD\r\n"

func TestHTTPFetcher_Download(t *testing.T) {
	var gotUser, gotPass, gotAgent, gotAccept string
	var gotAuth bool
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser, gotPass, gotAuth = r.BasicAuth()
		gotAgent = r.Header.Get(config.HeaderUserAgent)
		gotAccept = r.Header.Get(config.HeaderAccept)
		_, _ = io.WriteString(w, hebrewCard)
	}))
	defer ts.Close()

	rc, err := engine.NewHTTPFetcher().Fetch(context.Background(), ts.URL+"/contacts.vcf?token=s3cret", "carddav", "hunter2")
	require.NoError(t, err)
	defer func() { _ = rc.Close() }()

	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, hebrewCard, string(body))

	assert.True(t, gotAuth)
	assert.Equal(t, "carddav", gotUser)
	assert.Equal(t, "hunter2", gotPass)
	assert.Equal(t, config.UserAgent, gotAgent)
	assert.Contains(t, gotAccept, "text/vcard")
}

func TestHTTPFetcher_AnonymousRequest(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _, ok := r.BasicAuth()
		assert.False(t, ok)
		_, _ = io.WriteString(w, hebrewCard)
	}))
	defer ts.Close()

	rc, err := engine.NewHTTPFetcher().Fetch(context.Background(), ts.URL, "", "")
	require.NoError(t, err)
	require.NoError(t, rc.Close())
}

func TestHTTPFetcher_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		url     string
		wantErr string
	}{
		{"Missing address book", http.StatusNotFound, "", "404"},
		{"Bad credentials", http.StatusUnauthorized, "", "401"},
		{"Upstream failure", http.StatusBadGateway, "", config.ErrStatus},
		{"Unparsable URL", 0, string([]byte{0x7f}), config.ErrInvalidURL},
		{"WebDAV over FTP", 0, "ftp://dav.example.org/book.vcf", config.ErrProtocol},
		{"Local file URL", 0, "file:///etc/passwd", config.ErrProtocol},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := tt.url
			if tt.status != 0 {
				ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(tt.status)
				}))
				defer ts.Close()
				target = ts.URL
			}

			rc, err := engine.NewHTTPFetcher().Fetch(context.Background(), target, "", "")
			require.Error(t, err)
			assert.Nil(t, rc)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestHTTPFetcher_HonoursDeadline(t *testing.T) {
	release := make(chan struct{})
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer ts.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := engine.NewHTTPFetcher().Fetch(ctx, ts.URL, "", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Contains(t, err.Error(), config.ErrNetwork)
}
