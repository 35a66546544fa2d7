package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-service-common/internal/logger"
	"github.com/MKhiriev/go-service-common/internal/utils"
)

// Auth is an HTTP middleware that authenticates requests against the remote
// token-validation service.
//
// It hands the raw "Authorization" header to [service.AuthService], which
// runs the ordered guard chain (endpoint configured, header present, Bearer
// scheme, remote verdict). A rejection is rendered by the response emitter
// with the status chosen by the failing gate. On success the bearer token is
// stored in the request context (see [utils.TokenFromContext]) before
// delegating to the next handler.
//
// If the client goes away while the validator is being consulted, the late
// verdict is dropped and nothing is written.
func (h *Handler) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		header := r.Header.Get("Authorization")

		if err := h.services.AuthService.Authenticate(ctx, header); err != nil {
			h.Fail(w, r, err)
			return
		}

		if errors.Is(ctx.Err(), context.Canceled) {
			logger.FromRequest(r).Debug().Msg("client gone before authentication finished")
			return
		}

		// Authenticate has accepted the header, so it parses.
		token, _ := utils.ParseBearerToken(header)

		next.ServeHTTP(w, r.WithContext(utils.WithToken(ctx, token)))
	})
}
