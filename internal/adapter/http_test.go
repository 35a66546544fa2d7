// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-service-common/internal/config"
	"github.com/MKhiriev/go-service-common/internal/logger"
	"github.com/MKhiriev/go-service-common/internal/metrics"
	"github.com/MKhiriev/go-service-common/models"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestDecoder builds an httpTokenDecoder pointed at the test server.
func newTestDecoder(t *testing.T, serverURL string, m *metrics.Metrics) *httpTokenDecoder {
	t.Helper()
	cfg := &config.ServiceConfig{Name: "test", AuthEndpoint: serverURL}

	d, err := NewHTTPTokenDecoder(cfg, logger.Nop(), m)
	require.NoError(t, err)
	return d.(*httpTokenDecoder)
}

// ── Decode ──────────────────────────────────────────────────────────────────

func TestDecode_Allow(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/decode", r.URL.Path)
		assert.Contains(t, r.Header.Get("Content-Type"), "application/json")

		var body models.DecodeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "abc", body.Token)

		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	m := metrics.Nop()
	verdict := newTestDecoder(t, srv.URL, m).Decode(context.Background(), "abc")

	assert.True(t, verdict.Allowed())
	assert.Nil(t, verdict.Err())
	assert.Equal(t, 1, testutil.CollectAndCount(m.AuthDecodeDuration))
}

func TestDecode_RemoteStatusIsForwarded(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{name: "unauthorized", status: http.StatusUnauthorized},
		{name: "forbidden", status: http.StatusForbidden},
		{name: "bad gateway", status: http.StatusBadGateway},
		{name: "teapot", status: http.StatusTeapot},
		{name: "no content is not ok", status: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("validator internals"))
			}))
			defer srv.Close()

			verdict := newTestDecoder(t, srv.URL, metrics.Nop()).Decode(context.Background(), "abc")

			require.False(t, verdict.Allowed())
			assert.Equal(t, tt.status, verdict.Err().Code)
			assert.Equal(t, http.StatusText(tt.status), verdict.Err().Message())
		})
	}
}

func TestDecode_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	verdict := newTestDecoder(t, url, metrics.Nop()).Decode(context.Background(), "abc")

	require.False(t, verdict.Allowed())
	assert.Equal(t, http.StatusInternalServerError, verdict.Err().Code)
	assert.Equal(t, "Internal Server Error", verdict.Err().Message())
	assert.Contains(t, verdict.Err().Error(), "decode request")
}

func TestDecode_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	cfg := &config.ServiceConfig{
		Name:         "test",
		AuthEndpoint: srv.URL,
		Server:       config.Server{AuthTimeout: 50 * time.Millisecond},
	}
	d, err := NewHTTPTokenDecoder(cfg, logger.Nop(), metrics.Nop())
	require.NoError(t, err)

	verdict := d.Decode(context.Background(), "abc")

	require.False(t, verdict.Allowed())
	assert.Equal(t, http.StatusInternalServerError, verdict.Err().Code)
}

func TestDecode_CancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	verdict := newTestDecoder(t, srv.URL, metrics.Nop()).Decode(ctx, "abc")

	require.False(t, verdict.Allowed())
	assert.Equal(t, http.StatusInternalServerError, verdict.Err().Code)
}

// ── NewHTTPTokenDecoder ─────────────────────────────────────────────────────

func TestNewHTTPTokenDecoder_DefaultTimeout(t *testing.T) {
	d := newTestDecoder(t, "http://auth:3000", metrics.Nop())

	assert.Equal(t, DefaultAuthTimeout, d.client.GetClient().Timeout)
	assert.Equal(t, "http://auth:3000", d.client.BaseURL)
}

func TestNewHTTPTokenDecoder_EmptyEndpoint(t *testing.T) {
	_, err := NewHTTPTokenDecoder(&config.ServiceConfig{Name: "test"}, logger.Nop(), metrics.Nop())

	assert.ErrorIs(t, err, ErrEmptyAddress)
}

func TestNormalizeBaseURL_TableTest(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr error
	}{
		{name: "full url", raw: "http://auth:3000", want: "http://auth:3000"},
		{name: "trailing slash", raw: "https://auth.example.com/", want: "https://auth.example.com"},
		{name: "host only", raw: "auth:3000", want: "http://auth:3000"},
		{name: "with path", raw: "http://gw/auth/", want: "http://gw/auth"},
		{name: "blank", raw: "   ", wantErr: ErrEmptyAddress},
		{name: "no host", raw: "http://", wantErr: ErrAddressWithoutHost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── Verdict ─────────────────────────────────────────────────────────────────

func TestVerdict(t *testing.T) {
	assert.True(t, Allow().Allowed())

	denied := Deny(nil)
	assert.False(t, denied.Allowed())
	assert.Equal(t, http.StatusInternalServerError, denied.Err().Code)
}
