package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-service-common/internal/logger"
)

// withLogging wraps the response in a [responseWriter] so later stages can
// tell whether the response was started, and writes one access log line per
// request unless the service is silent.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		uri := r.RequestURI
		method := r.Method

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		if h.silent {
			return
		}

		duration := time.Since(start)
		data := lw.snapshot()

		logger.FromRequest(r).Info().
			Str("uri", uri).
			Str("method", method).
			Int("status", data.status).
			Dur("duration", duration).
			Int("size", data.size).
			Send()
	})
}
