// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// envOverrides holds the settings read straight from prefixed environment
// variables. Everything else reaches the environment through [Resolver].
type envOverrides struct {
	JSONFilePath string `env:"CONFIG"`
}

// parseEnv populates the env-tagged fields of cfg from the given environment
// snapshot using the caarlos0/env library. Every variable name is prefixed
// with the upper-cased service name, so the JSON file path of the "auth"
// service is read from AUTH_CONFIG.
//
// Returns a wrapped error if env.ParseWithOptions fails.
func parseEnv(cfg *envOverrides, serviceName string, environment map[string]string) error {
	opts := env.Options{
		Environment: environment,
		Prefix:      strings.ToUpper(serviceName) + "_",
	}

	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
