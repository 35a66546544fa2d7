// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-service-common/internal/failure"
)

// notFound answers requests that match no route with
// 404 {"message":"Not Found"}.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.Fail(w, r, failure.Wrap(http.StatusNotFound, failure.ErrNotFound))
}

// methodNotAllowed is registered as the router's MethodNotAllowed handler.
//
// Chi's default behaviour is to respond with HTTP 405 whenever a request
// path matches a registered route but the HTTP method is not handled. This
// handler answers 404 instead, hiding the existence of the route from
// callers that use an unsupported method.
func (h *Handler) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	h.notFound(w, r)
}
