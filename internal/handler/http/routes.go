package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the service router.
//
// Every protected function registers its routes on a group guarded by
// [Handler.Auth]; /health and /metrics stay public. Unknown routes and
// unsupported methods answer 404 {"message":"Not Found"}.
func (h *Handler) Init(protected ...func(r chi.Router)) *chi.Mux {
	router := chi.NewRouter()

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.methodNotAllowed)

	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withRecoverer)
	router.Use(h.withRequestTimeout)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/health", h.health)
		r.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	})

	// routes with authorization
	if len(protected) > 0 {
		router.Group(func(r chi.Router) {
			r.Use(h.Auth)
			for _, register := range protected {
				register(r)
			}
		})
	}

	return router
}
