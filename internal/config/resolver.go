// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"reflect"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Tree is a declarative configuration tree. Top-level values that are nil or
// scalar (string, bool, any numeric kind) can be overridden from the
// environment; any other value (maps, slices, structs) is opaque and kept as
// is.
//
// Timeout keys accept a time.Duration, a duration string such as "1.5s", or a
// plain number of seconds (5, 0.25 or "5").
type Tree map[string]any

// Resolver applies environment overrides to a default [Tree].
//
// It works on a snapshot of the environment taken at construction time, so
// repeated resolutions with the same Resolver always agree.
type Resolver struct {
	environment map[string]string
}

// ResolverOption configures a [Resolver].
type ResolverOption func(*Resolver)

// WithEnvironment replaces the process environment snapshot with the given
// variables. Intended for tests and for callers that source variables from
// elsewhere.
func WithEnvironment(environment map[string]string) ResolverOption {
	return func(r *Resolver) {
		r.environment = environment
	}
}

// NewResolver creates a Resolver over a snapshot of the process environment.
func NewResolver(opts ...ResolverOption) *Resolver {
	r := &Resolver{
		environment: env.ToMap(os.Environ()),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.environment == nil {
		r.environment = map[string]string{}
	}
	return r
}

// Resolve resolves defaults against the current process environment.
// See [Resolver.Resolve].
func Resolve(defaults Tree, serviceName string) Tree {
	return NewResolver().Resolve(defaults, serviceName)
}

// Resolve returns a new flat Tree with exactly the keys of defaults.
//
// For each nil or scalar value the variable [EnvName](serviceName, key) is
// consulted: if it is set, even to the empty string, its value replaces the
// default. Values sourced from the environment are always strings, whatever
// the type of the default; callers coerce them explicitly. Non-scalar values
// are copied verbatim and never looked up.
//
// defaults is not modified.
func (r *Resolver) Resolve(defaults Tree, serviceName string) Tree {
	resolved := make(Tree, len(defaults))

	for key, value := range defaults {
		resolved[key] = r.resolveKey(serviceName, key, value)
	}

	return resolved
}

func (r *Resolver) resolveKey(serviceName, key string, value any) any {
	if !isOverridable(value) {
		return value
	}

	if override, ok := r.environment[EnvName(serviceName, key)]; ok {
		return override
	}

	return value
}

// EnvName returns the environment variable that overrides key for the given
// service: the upper-cased service name and the upper-cased snake_case key,
// joined by an underscore. EnvName("auth", "authEndpoint") is
// "AUTH_AUTH_ENDPOINT".
func EnvName(serviceName, key string) string {
	return strings.ToUpper(serviceName) + "_" + strings.ToUpper(snakeCase(key))
}

// isOverridable reports whether value is a leaf that the environment may
// replace.
func isOverridable(value any) bool {
	if value == nil {
		return true
	}

	switch reflect.TypeOf(value).Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
