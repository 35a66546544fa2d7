package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-service-common/internal/config"
	"github.com/MKhiriev/go-service-common/internal/logger"
	"github.com/MKhiriev/go-service-common/internal/metrics"
	"github.com/MKhiriev/go-service-common/internal/mock"
	"github.com/MKhiriev/go-service-common/internal/response"
	"github.com/MKhiriev/go-service-common/internal/service"
	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"
)

const testEndpoint = "http://auth:3000"

// testEnv bundles a Handler with its collaborators.
type testEnv struct {
	handler *Handler
	decoder *mock.MockTokenDecoder
	logs    *bytes.Buffer
	metrics *metrics.Metrics
}

// newTestEnv builds a Handler around a mock decoder. Logs go to the
// returned buffer.
func newTestEnv(t *testing.T, cfg *config.ServiceConfig) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)

	logs := &bytes.Buffer{}
	log := &logger.Logger{Logger: zerolog.New(logs)}
	m := metrics.New(cfg.Name)
	decoder := mock.NewMockTokenDecoder(ctrl)

	services := service.NewServices(decoder, cfg, log)
	emitter := response.NewEmitter(cfg, log, m)

	handler := NewHandler(services, emitter, m, cfg, log)
	logs.Reset()

	return &testEnv{
		handler: handler,
		decoder: decoder,
		logs:    logs,
		metrics: m,
	}
}

// defaultConfig is a non-silent service with an auth endpoint.
func defaultConfig() *config.ServiceConfig {
	return &config.ServiceConfig{Name: "orders", Environment: "Development", AuthEndpoint: testEndpoint}
}

// serve runs req through handler and returns the recorder.
func serve(handler http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}
