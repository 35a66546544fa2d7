// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package failure

import (
	"errors"
	"net/http"
)

// Sentinel errors carried inside classified errors. Callers can match
// against them with [errors.Is] on the classified value.
var (
	// ErrNoAuthEndpoint is reported when the service was started without an
	// authentication endpoint. It is a server misconfiguration (500).
	ErrNoAuthEndpoint = errors.New("No authentication endpoint defined!")

	// ErrNoAuthHeader is reported when the request carries no
	// "Authorization" header (401).
	ErrNoAuthHeader = errors.New("No authentication header provided.")

	// ErrBearerOnly is reported when the "Authorization" header does not
	// follow the "Bearer <token>" scheme (400).
	ErrBearerOnly = errors.New("Only Bearer authentication is accepted.")

	// ErrNotFound is reported for requests that match no route (404).
	ErrNotFound = errors.New(http.StatusText(http.StatusNotFound))
)
