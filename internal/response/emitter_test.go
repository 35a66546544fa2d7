// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package response

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-service-common/internal/config"
	"github.com/MKhiriev/go-service-common/internal/failure"
	"github.com/MKhiriev/go-service-common/internal/logger"
	"github.com/MKhiriev/go-service-common/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestEmitter returns an Emitter whose log output is captured in the
// returned buffer.
func newTestEmitter(t *testing.T, environment string) (*Emitter, *bytes.Buffer, *metrics.Metrics) {
	t.Helper()
	buf := &bytes.Buffer{}
	log := &logger.Logger{Logger: zerolog.New(buf)}
	m := metrics.Nop()
	cfg := &config.ServiceConfig{Name: "orders", Environment: environment}
	return NewEmitter(cfg, log, m), buf, m
}

// trackingWriter is a recorder that claims the response was already started.
type trackingWriter struct {
	*httptest.ResponseRecorder
	written bool
}

func (w *trackingWriter) Written() bool { return w.written }

func TestEmitter_Error_ClassifiedBody(t *testing.T) {
	e, _, _ := newTestEmitter(t, "Development")
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	e.Error(w, r, failure.Wrap(http.StatusUnauthorized, failure.ErrNoAuthHeader))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"No authentication header provided."}`, w.Body.String())
}

func TestEmitter_Error_RawErrorIs500WithLoggedCauses(t *testing.T) {
	e, buf, _ := newTestEmitter(t, "Development")
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	e.Error(w, r, fmt.Errorf("query users: %w", errors.New("connection reset")))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"Internal Server Error"}`, w.Body.String())
	assert.Contains(t, buf.String(), `"causes":["query users: connection reset","connection reset"]`)
}

func TestEmitter_Error_NilIsNoop(t *testing.T) {
	e, buf, _ := newTestEmitter(t, "Development")
	w := httptest.NewRecorder()

	e.Error(w, httptest.NewRequest(http.MethodGet, "/", nil), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
	assert.Empty(t, buf.String())
}

func TestEmitter_Error_SkipsWriteWhenAlreadyWritten(t *testing.T) {
	e, buf, _ := newTestEmitter(t, "Development")
	w := &trackingWriter{ResponseRecorder: httptest.NewRecorder(), written: true}
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	e.Error(w, r, failure.Wrap(http.StatusBadGateway, nil))

	assert.Empty(t, w.Body.String())
	assert.NotEmpty(t, buf.String(), "failure must still be reported")
}

func TestEmitter_Error_SkipsWriteWhenClientGone(t *testing.T) {
	e, _, _ := newTestEmitter(t, "Development")
	w := httptest.NewRecorder()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx)

	e.Error(w, r, failure.Wrap(http.StatusUnauthorized, nil))

	assert.Empty(t, w.Body.String())
}

func TestEmitter_Health(t *testing.T) {
	e, _, _ := newTestEmitter(t, "Test")
	w := httptest.NewRecorder()

	e.Health(w)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
}

func TestEmitter_Report_Policy(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		code        int
		wantLog     bool
		wantLevel   string
	}{
		{name: "500 silent is logged", environment: "Test", code: 500, wantLog: true, wantLevel: `"level":"error"`},
		{name: "500 loud is logged", environment: "Production", code: 500, wantLog: true, wantLevel: `"level":"error"`},
		{name: "503 silent is logged", environment: "Test", code: 503, wantLog: true, wantLevel: `"level":"error"`},
		{name: "404 silent is not logged", environment: "Test", code: 404, wantLog: false},
		{name: "404 loud is logged tersely", environment: "Production", code: 404, wantLog: true, wantLevel: `"level":"warn"`},
		{name: "401 silent is not logged", environment: "Test", code: 401, wantLog: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, buf, m := newTestEmitter(t, tt.environment)

			e.Report(context.Background(), failure.Wrap(tt.code, nil))

			assert.Equal(t, 1, testutil.CollectAndCount(m.ClassifiedErrorsTotal))
			if !tt.wantLog {
				assert.Empty(t, buf.String())
				return
			}
			require.NotEmpty(t, buf.String())
			assert.Contains(t, buf.String(), tt.wantLevel)
			assert.Contains(t, buf.String(), `"service":"orders"`)
		})
	}
}

func TestEmitter_Report_TerseLineHasNoCause(t *testing.T) {
	e, buf, _ := newTestEmitter(t, "Production")

	e.Report(context.Background(), failure.Wrap(http.StatusForbidden, fmt.Errorf("denied: %w", errors.New("secret detail"))))

	assert.NotContains(t, buf.String(), "causes")
	assert.Contains(t, buf.String(), "denied: secret detail")
}

func TestEmitter_Report_UsesRequestLogger(t *testing.T) {
	e, own, _ := newTestEmitter(t, "Production")
	reqBuf := &bytes.Buffer{}
	ctx := zerolog.New(reqBuf).With().Str("trace_id", "t-1").Logger().WithContext(context.Background())

	e.Report(ctx, failure.Wrap(http.StatusInternalServerError, nil))

	assert.Empty(t, own.String())
	assert.Contains(t, reqBuf.String(), `"trace_id":"t-1"`)
}

// panicWriter makes every log write panic.
type panicWriter struct{}

func (panicWriter) Write([]byte) (int, error) { panic("log sink exploded") }

func TestEmitter_Error_LoggingPanicDoesNotBreakResponse(t *testing.T) {
	cfg := &config.ServiceConfig{Name: "orders"}
	e := NewEmitter(cfg, &logger.Logger{Logger: zerolog.New(panicWriter{})}, metrics.Nop())
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	assert.NotPanics(t, func() {
		e.Error(w, r, failure.Wrap(http.StatusInternalServerError, nil))
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"Internal Server Error"}`, w.Body.String())
}

func TestEmitter_Report_CountsByCode(t *testing.T) {
	e, _, m := newTestEmitter(t, "Test")

	e.Report(context.Background(), failure.Wrap(401, nil))
	e.Report(context.Background(), failure.Wrap(401, nil))
	e.Report(context.Background(), failure.Wrap(500, nil))

	assert.Equal(t, float64(2), testutil.ToFloat64(m.ClassifiedErrorsTotal.WithLabelValues("401")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.ClassifiedErrorsTotal.WithLabelValues("500")))
}

func TestCauseChain(t *testing.T) {
	root := errors.New("root")
	err := fmt.Errorf("outer: %w", fmt.Errorf("middle: %w", root))

	assert.Equal(t, []string{"middle: root", "root"}, causeChain(err))
	assert.Empty(t, causeChain(root))
	assert.Equal(t, []string{"a", "b"}, causeChain(errors.Join(errors.New("a"), errors.New("b"))))
}

func TestEmitter_Error_WritesOnDeadline(t *testing.T) {
	e, _, _ := newTestEmitter(t, "Test")
	w := httptest.NewRecorder()
	ctx, cancel := context.WithTimeout(context.Background(), 0)
	defer cancel()
	<-ctx.Done()
	r := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx)

	e.Error(w, r, failure.Wrap(http.StatusGatewayTimeout, nil))

	assert.Equal(t, http.StatusGatewayTimeout, w.Code)
	assert.JSONEq(t, `{"message":"Gateway Timeout"}`, w.Body.String())
}
