package handler

import (
	"github.com/MKhiriev/go-service-common/internal/config"
	"github.com/MKhiriev/go-service-common/internal/handler/grpc"
	"github.com/MKhiriev/go-service-common/internal/handler/http"
	"github.com/MKhiriev/go-service-common/internal/logger"
	"github.com/MKhiriev/go-service-common/internal/metrics"
	"github.com/MKhiriev/go-service-common/internal/response"
	"github.com/MKhiriev/go-service-common/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers creates a transport handler for every address configured in
// cfg.Server. Both transports share the same emitter so failures are
// reported identically.
func NewHandlers(services *service.Services, emitter *response.Emitter, m *metrics.Metrics, cfg *config.ServiceConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, emitter, m, cfg, logger)
	}
	if cfg.Server.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, emitter, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
