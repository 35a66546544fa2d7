package config

import "errors"

// Errors returned while building a [ServiceConfig].
var (
	// ErrNoServiceName indicates that no source provided a service name.
	ErrNoServiceName = errors.New("service name is not configured")
	// ErrNoServerAddress indicates that neither an HTTP nor a gRPC address
	// was configured.
	ErrNoServerAddress = errors.New("no server address configured")
	// ErrNegativeTimeout indicates a negative request or auth timeout.
	ErrNegativeTimeout = errors.New("timeouts must not be negative")
	// ErrInvalidDuration indicates a duration value in the default tree or
	// its environment override that cannot be parsed.
	ErrInvalidDuration = errors.New("invalid duration")
)
