package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-service-common/internal/failure"
	"github.com/MKhiriev/go-service-common/internal/response"
)

// withRequestTimeout bounds each request by the configured timeout. A
// handler that returns after the deadline without having answered gets a
// 504 {"message":"Gateway Timeout"}; one that already answered is left
// alone. A zero timeout disables the bound.
func (h *Handler) withRequestTimeout(next http.Handler) http.Handler {
	if h.requestTimeout <= 0 {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
		defer cancel()

		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)

		if !errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return
		}
		if tracker, ok := w.(response.WriteTracker); ok && tracker.Written() {
			return
		}
		h.Fail(w, r, failure.Wrap(http.StatusGatewayTimeout, nil))
	})
}
