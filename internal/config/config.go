// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Environment value that switches a service into silent logging mode.
const silentEnvironment = "Test"

// ServiceConfig is the resolved configuration of a single service. It is
// built once at process start and treated as immutable afterwards.
type ServiceConfig struct {
	// Color is an optional terminal color name used to tag the service name
	// in error logs (e.g. "cyan", "redBright").
	// Env: {NAME}_COLOR
	Color string

	// Name is the service name. It prefixes every environment variable the
	// service reads and tags its error logs. Required.
	// Env: {NAME}_NAME
	Name string

	// Environment names the deployment environment. The value "Test"
	// activates silent mode.
	// Env: {NAME}_ENVIRONMENT
	Environment string

	// AuthEndpoint is the base URL of the remote token-validation service.
	// Tokens are posted to {AuthEndpoint}/decode. Leaving it empty is not a
	// startup error: authenticated routes then answer 500.
	// Env: {NAME}_AUTH_ENDPOINT
	AuthEndpoint string

	// Server holds network address and timeout settings.
	Server Server

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from the defaults, the environment and flags.
	// Populated via the {NAME}_CONFIG environment variable or the
	// -c / --config flag.
	JSONFilePath string
}

// Server holds network and timeout settings for the inbound transport layer
// and the outbound validation call.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: {NAME}_HTTP_ADDRESS
	HTTPAddress string

	// GRPCAddress is the TCP address on which the gRPC server listens.
	// Optional.
	// Env: {NAME}_GRPC_ADDRESS
	GRPCAddress string

	// RequestTimeout bounds the handling of a single inbound request.
	// Zero disables the bound.
	// Env: {NAME}_REQUEST_TIMEOUT
	RequestTimeout time.Duration

	// AuthTimeout bounds the wait on the remote token-validation call.
	// Zero selects the decoder's default.
	// Env: {NAME}_AUTH_TIMEOUT
	AuthTimeout time.Duration
}

// IsSilent reports whether sub-500 failures should go unlogged.
func (cfg ServiceConfig) IsSilent() bool {
	return cfg.Environment == silentEnvironment
}

// GetServiceConfig resolves defaults against the environment and merges the
// result with command-line flags and an optional JSON file, in that order
// (last source wins for non-zero fields).
//
// The service name used to build environment variable names is taken from
// defaults["name"]. args are the command-line arguments without the program
// name (usually os.Args[1:]).
//
// Returns a fully populated *ServiceConfig or an error if any source fails to
// load or the final config fails validation.
func GetServiceConfig(defaults Tree, args []string) (*ServiceConfig, error) {
	return newConfigBuilder().
		withDefaults(defaults).
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
