// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-service-common/internal/adapter"
	"github.com/MKhiriev/go-service-common/internal/failure"
	"github.com/MKhiriev/go-service-common/internal/logger"
	"github.com/MKhiriev/go-service-common/internal/utils"
)

// authService is the concrete implementation of AuthService.
// It validates the shape of the authorization header locally and delegates
// the token itself to a remote validator through a TokenDecoder.
type authService struct {
	// decoder is the client of the remote token-validation service.
	// It is nil when no auth endpoint is configured.
	decoder adapter.TokenDecoder

	// authEndpoint is the configured base URL of the validator. An empty
	// value makes every authentication attempt fail with 500.
	authEndpoint string

	// logger is the structured logger used for diagnostic output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(decoder adapter.TokenDecoder, authEndpoint string, logger *logger.Logger) AuthService {
	return &authService{
		decoder:      decoder,
		authEndpoint: authEndpoint,
		logger:       logger,
	}
}

// Authenticate runs the ordered guard chain. The first failing gate wins:
//
//  1. an auth endpoint must be configured, otherwise 500;
//  2. the header must be present, otherwise 401;
//  3. the header must be "Bearer <token>", otherwise 400;
//  4. the remote validator must accept the token, otherwise its status.
//
// Gates 1 to 3 never contact the validator.
func (a *authService) Authenticate(ctx context.Context, header string) *failure.Error {
	if a.authEndpoint == "" || a.decoder == nil {
		return failure.Wrap(http.StatusInternalServerError, failure.ErrNoAuthEndpoint)
	}

	if header == "" {
		return failure.Wrap(http.StatusUnauthorized, failure.ErrNoAuthHeader)
	}

	token, err := utils.ParseBearerToken(header)
	if err != nil {
		if errors.Is(err, utils.ErrNotBearer) {
			return failure.Wrap(http.StatusBadRequest, failure.ErrBearerOnly)
		}
		return failure.Classify(err)
	}

	verdict := a.decoder.Decode(ctx, token)
	if verdict.Allowed() {
		return nil
	}

	a.logger.Debug().
		Int("code", verdict.Err().Code).
		Msg("token decode denied request")

	return verdict.Err()
}
