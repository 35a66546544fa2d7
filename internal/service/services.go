package service

import (
	"github.com/MKhiriev/go-service-common/internal/adapter"
	"github.com/MKhiriev/go-service-common/internal/config"
	"github.com/MKhiriev/go-service-common/internal/logger"
)

type Services struct {
	AuthService AuthService
}

// NewServices wires the service layer. decoder may be nil when the service
// runs without an auth endpoint.
func NewServices(decoder adapter.TokenDecoder, cfg *config.ServiceConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(decoder, cfg.AuthEndpoint, logger),
	}
}
