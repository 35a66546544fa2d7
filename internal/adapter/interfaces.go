// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client of the remote token-validation service.
//
// The primary abstraction is [TokenDecoder], which decouples the auth guard
// chain from the protocol used to reach the validator. The package ships an
// HTTP/REST implementation ([NewHTTPTokenDecoder]) that posts the token to
// {authEndpoint}/decode.
//
// A decode never returns a Go error: the outcome is always a [Verdict],
// either [Allow] or [Deny] carrying a classified failure ready to be
// rendered.
package adapter

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-service-common/internal/failure"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// TokenDecoder asks the remote validator whether a bearer token is valid.
type TokenDecoder interface {
	// Decode submits token for validation and reports the verdict.
	// Cancelling ctx abandons the call; the verdict is then a deny with the
	// transport error.
	Decode(ctx context.Context, token string) Verdict
}

// Verdict is the outcome of a token decode: the request is either allowed
// or denied with a classified failure.
type Verdict struct {
	err *failure.Error
}

// Allow returns a verdict that lets the request through.
func Allow() Verdict {
	return Verdict{}
}

// Deny returns a verdict that rejects the request with err. A nil err is
// treated as 500 Internal Server Error so a deny can never be mistaken for
// an allow.
func Deny(err *failure.Error) Verdict {
	if err == nil {
		err = failure.Wrap(http.StatusInternalServerError, nil)
	}
	return Verdict{err: err}
}

// Allowed reports whether the request may proceed.
func (v Verdict) Allowed() bool {
	return v.err == nil
}

// Err returns the failure of a deny verdict, or nil for an allow.
func (v Verdict) Err() *failure.Error {
	return v.err
}
