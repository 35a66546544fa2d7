// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"strings"
)

// BearerScheme is the only authentication scheme the toolkit accepts.
const BearerScheme = "Bearer"

// ErrNotBearer is returned by [ParseBearerToken] when the header does not
// follow the "Bearer <token>" form.
var ErrNotBearer = errors.New("authorization header is not a bearer credential")

// ParseBearerToken extracts the token from a raw "Authorization" header
// value of the form:
//
//	Authorization: Bearer <token>
//
// The scheme comparison is case-sensitive. Surrounding whitespace is
// ignored; the token itself must be non-empty and contain no whitespace.
// Any other shape yields [ErrNotBearer].
func ParseBearerToken(authorizationHeader string) (string, error) {
	scheme, token, found := strings.Cut(strings.TrimSpace(authorizationHeader), " ")
	if !found || scheme != BearerScheme {
		return "", ErrNotBearer
	}

	token = strings.TrimSpace(token)
	if token == "" || strings.ContainsAny(token, " \t\r\n") {
		return "", ErrNotBearer
	}

	return token, nil
}
