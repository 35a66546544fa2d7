package config

import (
	"fmt"

	"github.com/alecthomas/kingpin/v2"
)

// ParseFlags parses the service configuration flags from args.
//
// Flags:
//
//	-a/--address http server address in format [host]:[port]
//	--grpc-address grpc server address in format [host]:[port]
//	--auth-endpoint base URL of the token validation service
//	--environment deployment environment ("Test" silences client error logs)
//	--color terminal color of the service name in error logs
//	--request-timeout inbound request timeout (e.g., "30s", "1m")
//	--auth-timeout token validation timeout (e.g., "5s")
//	-c/--config json file path with configs
func ParseFlags(args []string) (*ServiceConfig, error) {
	cfg := &ServiceConfig{}

	app := kingpin.New("service", "Service built on the shared request-handling toolkit.")
	app.Flag("address", "Net address host:port").Short('a').StringVar(&cfg.Server.HTTPAddress)
	app.Flag("grpc-address", "Net grpc server address host:port").StringVar(&cfg.Server.GRPCAddress)
	app.Flag("auth-endpoint", "Token validation service base URL").StringVar(&cfg.AuthEndpoint)
	app.Flag("environment", "Deployment environment").StringVar(&cfg.Environment)
	app.Flag("color", "Terminal color of the service name in logs").StringVar(&cfg.Color)
	app.Flag("request-timeout", "Request timeout (e.g., 30s, 1m)").DurationVar(&cfg.Server.RequestTimeout)
	app.Flag("auth-timeout", "Token validation timeout (e.g., 5s)").DurationVar(&cfg.Server.AuthTimeout)
	app.Flag("config", "JSON config file path").Short('c').StringVar(&cfg.JSONFilePath)

	if _, err := app.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return cfg, nil
}
