// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

// responseData is a value-type snapshot of the response metadata recorded
// by a [responseWriter].
type responseData struct {
	// status is the HTTP status code that was written to the response.
	status int

	// size is the total number of bytes written to the response body.
	size int
}

// responseWriter is a thin decorator around [http.ResponseWriter] that
// records the status code and body size, and whether the response has been
// started.
//
// withLogging installs it at the top of the chain. The response emitter
// checks [responseWriter.Written] so that a failure reported after the
// handler already answered never produces a second response.
//
// WriteHeader is forwarded to the underlying writer at most once.
type responseWriter struct {
	http.ResponseWriter

	// status is the HTTP status code recorded on the first WriteHeader call.
	// It is zero until WriteHeader (or an implicit WriteHeader via Write) is called.
	status int

	// wroteHeader reports whether WriteHeader has already been called.
	wroteHeader bool

	// size is the running total of bytes written to the response body.
	size int
}

// WriteHeader records statusCode and forwards it to the underlying writer.
// Calls after the first are ignored.
func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

// Write sends b to the underlying writer, implicitly writing a 200 status
// line first if none was written.
func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}

// Written reports whether the status line has been sent.
func (w *responseWriter) Written() bool {
	return w.wroteHeader
}

// Unwrap exposes the underlying writer to [http.ResponseController].
func (w *responseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// snapshot returns the metadata recorded so far.
func (w *responseWriter) snapshot() responseData {
	return responseData{status: w.status, size: w.size}
}
