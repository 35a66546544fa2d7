// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the toolkit.
// Includes tools for working with context, type-safe keys, bearer header
// parsing, trace identifiers, HTTP response writing, and HTTP client
// initialization.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// TokenCtxKey is the key under which the auth middleware stores the bearer
// token of an authenticated request.
var TokenCtxKey = contextKey("token")

// TraceIDCtxKey is the key under which the trace middleware stores the
// request trace identifier.
var TraceIDCtxKey = contextKey("traceID")

// WithToken returns a copy of ctx carrying the authenticated bearer token.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, TokenCtxKey, token)
}

// TokenFromContext retrieves the bearer token stored by the auth middleware.
//
// Returns the token and an ok flag:
//   - ok == true: the request passed authentication
//   - ok == false: no token is attached (public route or not authenticated)
func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(TokenCtxKey).(string)
	return token, ok
}

// WithTraceID returns a copy of ctx carrying the request trace identifier.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDCtxKey, traceID)
}

// TraceIDFromContext retrieves the trace identifier, or "" if none is set.
func TraceIDFromContext(ctx context.Context) string {
	traceID, _ := ctx.Value(TraceIDCtxKey).(string)
	return traceID
}
