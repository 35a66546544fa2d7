package grpc

import (
	"github.com/MKhiriev/go-service-common/internal/logger"
	"github.com/MKhiriev/go-service-common/internal/response"
	"github.com/MKhiriev/go-service-common/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Handler is the root gRPC transport handler.
//
// It runs the same auth guard chain as the HTTP transport through its
// interceptors and serves the standard gRPC health service. A handler
// instance is created once at startup and shared by the gRPC server.
type Handler struct {
	// services provides access to the auth guard chain.
	services *service.Services

	// emitter reports classified failures with the service's log policy.
	emitter *response.Emitter

	// health is the grpc_health_v1 implementation served without auth.
	health *health.Server

	// excludedMethods lists full method names that bypass authentication.
	excludedMethods map[string]bool

	// logger is used for request-scoped and diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler]. The health service methods are always
// excluded from authentication; extra full method names
// ("/pkg.Service/Method") can be excluded as well.
func NewHandler(services *service.Services, emitter *response.Emitter, logger *logger.Logger, excluded ...string) *Handler {
	logger.Debug().Msg("gRPC handler created")

	excludedMethods := map[string]bool{
		healthpb.Health_Check_FullMethodName: true,
		healthpb.Health_Watch_FullMethodName: true,
		healthpb.Health_List_FullMethodName:  true,
	}
	for _, method := range excluded {
		excludedMethods[method] = true
	}

	return &Handler{
		services:        services,
		emitter:         emitter,
		health:          health.NewServer(),
		excludedMethods: excludedMethods,
		logger:          logger,
	}
}

// ServerOptions returns the interceptors a gRPC server needs to
// authenticate every call.
func (h *Handler) ServerOptions() []grpc.ServerOption {
	return []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(h.UnaryAuthInterceptor()),
		grpc.ChainStreamInterceptor(h.StreamAuthInterceptor()),
	}
}

// Register attaches the health service to s.
func (h *Handler) Register(s grpc.ServiceRegistrar) {
	healthpb.RegisterHealthServer(s, h.health)
}

// Shutdown flips every health status to NOT_SERVING.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
