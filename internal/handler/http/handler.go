package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-service-common/internal/config"
	"github.com/MKhiriev/go-service-common/internal/logger"
	"github.com/MKhiriev/go-service-common/internal/metrics"
	"github.com/MKhiriev/go-service-common/internal/response"
	"github.com/MKhiriev/go-service-common/internal/service"
)

type Handler struct {
	services *service.Services
	emitter  *response.Emitter
	metrics  *metrics.Metrics

	// silent disables access logging.
	silent bool

	// requestTimeout bounds the handling of a single request.
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, emitter *response.Emitter, m *metrics.Metrics, cfg *config.ServiceConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		emitter:  emitter,
		metrics:  m,
		silent:   cfg.IsSilent(),
		logger:   logger,

		requestTimeout: cfg.Server.RequestTimeout,
	}
}

// Fail forwards err to the response emitter. Application handlers call it
// instead of writing error responses themselves.
func (h *Handler) Fail(w http.ResponseWriter, r *http.Request, err error) {
	h.emitter.Error(w, r, err)
}

// Handle adapts a handler that returns an error into an [http.HandlerFunc].
// A non-nil error is rendered with [Handler.Fail].
//
//	r.Get("/orders", h.Handle(func(w http.ResponseWriter, r *http.Request) error {
//		return failure.New(http.StatusConflict, "order already exists")
//	}))
func (h *Handler) Handle(fn func(w http.ResponseWriter, r *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			h.Fail(w, r, err)
		}
	}
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	h.emitter.Health(w)
}
