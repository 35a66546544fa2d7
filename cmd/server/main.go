package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/MKhiriev/go-service-common/internal/adapter"
	"github.com/MKhiriev/go-service-common/internal/config"
	"github.com/MKhiriev/go-service-common/internal/failure"
	"github.com/MKhiriev/go-service-common/internal/handler"
	"github.com/MKhiriev/go-service-common/internal/logger"
	"github.com/MKhiriev/go-service-common/internal/metrics"
	"github.com/MKhiriev/go-service-common/internal/response"
	"github.com/MKhiriev/go-service-common/internal/server"
	"github.com/MKhiriev/go-service-common/internal/service"
	"github.com/MKhiriev/go-service-common/internal/utils"
	"github.com/go-chi/chi/v5"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// defaults is the configuration of the example service before environment
// overrides. Every scalar key can be overridden with EXAMPLE_<SNAKE_KEY>,
// e.g. EXAMPLE_AUTH_ENDPOINT.
var defaults = config.Tree{
	"name":           "example",
	"color":          "cyan",
	"environment":    "Development",
	"authEndpoint":   nil,
	"httpAddress":    ":8080",
	"grpcAddress":    nil,
	"requestTimeout": "30s",
	"authTimeout":    "5s",
}

func main() {
	printBuildInfo()

	cfg, err := config.GetServiceConfig(defaults, os.Args[1:])
	if err != nil {
		logger.NewLogger("example").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger(cfg.Name)
	log.Debug().Any("config", cfg).Msg("received configs")

	m := metrics.New(cfg.Name)

	var decoder adapter.TokenDecoder
	if cfg.AuthEndpoint != "" {
		decoder, err = adapter.NewHTTPTokenDecoder(cfg, log, m)
		if err != nil {
			log.Fatal().Err(err).Msg("error creating token decoder")
		}
	} else {
		log.Warn().Msg("no auth endpoint configured, authenticated routes will answer 500")
	}

	services := service.NewServices(decoder, cfg, log)
	emitter := response.NewEmitter(cfg, log, m)

	handlers, err := handler.NewHandlers(services, emitter, m, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	var protected []func(r chi.Router)
	if handlers.HTTP != nil {
		protected = append(protected, whoAmIRoutes(handlers))
	}

	srv, err := server.NewServer(handlers, cfg, log, protected...)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

// whoAmIRoutes registers a protected route that echoes whether the request
// carried an authenticated token.
func whoAmIRoutes(handlers *handler.Handlers) func(r chi.Router) {
	return func(r chi.Router) {
		r.Get("/api/whoami", handlers.HTTP.Handle(func(w http.ResponseWriter, r *http.Request) error {
			if _, ok := utils.TokenFromContext(r.Context()); !ok {
				return failure.Wrap(http.StatusUnauthorized, failure.ErrNoAuthHeader)
			}
			_, err := utils.WriteJSON(w, map[string]bool{"authenticated": true}, http.StatusOK)
			return err
		}))
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
