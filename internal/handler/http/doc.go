// Package http implements the HTTP transport layer of the toolkit.
//
// It exposes route wiring and middleware shared by every service: bearer
// authentication against the remote validator, request tracing, access
// logging, panic recovery, the health and metrics endpoints, and the
// not-found fallback. Failures from any stage are rendered by the response
// emitter so every error reaches the client as {"message": ...}.
package http
