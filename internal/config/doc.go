// Package config provides configuration resolution, merging, and validation
// for services built on this toolkit.
//
// The core of the package is [Resolver]: it takes a declarative default
// [Tree] and lets environment variables named {SERVICE_NAME}_{SNAKE_CASE_KEY}
// override its scalar leaves. [GetServiceConfig] then layers the resolved
// tree with the remaining sources (later sources override earlier non-zero
// fields):
//  1. Defaults overridden by environment variables
//  2. Command-line flags
//  3. JSON config file
package config
