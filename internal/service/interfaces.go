package service

import (
	"context"

	"github.com/MKhiriev/go-service-common/internal/failure"
)

// AuthService decides whether an inbound request may proceed, based on the
// raw value of its authorization header.
type AuthService interface {
	// Authenticate runs the auth guard chain over header and returns nil if
	// the request is allowed, or the classified failure of the first gate
	// that rejected it.
	Authenticate(ctx context.Context, header string) *failure.Error
}
