// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [ServiceConfig] satisfies the
// invariants required at startup.
//
// A missing AuthEndpoint is deliberately accepted: the auth middleware
// reports it on every authenticated request as a server misconfiguration.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *ServiceConfig) validate() error {
	if cfg.Name == "" {
		return ErrNoServiceName
	}

	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return ErrNoServerAddress
	}

	if cfg.Server.RequestTimeout < 0 || cfg.Server.AuthTimeout < 0 {
		return ErrNegativeTimeout
	}

	return nil
}
