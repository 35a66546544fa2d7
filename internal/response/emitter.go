// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package response renders classified failures and health payloads into
// HTTP responses and logs them according to the service's silence policy.
package response

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-service-common/internal/config"
	"github.com/MKhiriev/go-service-common/internal/failure"
	"github.com/MKhiriev/go-service-common/internal/logger"
	"github.com/MKhiriev/go-service-common/internal/metrics"
	"github.com/MKhiriev/go-service-common/internal/utils"
	"github.com/MKhiriev/go-service-common/models"
	"github.com/rs/zerolog"
)

// WriteTracker is implemented by response writers that know whether the
// status line has already been sent.
type WriteTracker interface {
	Written() bool
}

// Emitter writes classified failures as {"message": ...} responses and logs
// them. It is safe for concurrent use.
type Emitter struct {
	// tag is the service name, optionally color-tagged, attached to every
	// log entry the emitter produces.
	tag string

	// silent suppresses logging of sub-500 failures.
	silent bool

	logger  *logger.Logger
	metrics *metrics.Metrics
}

// NewEmitter builds an Emitter for the service described by cfg.
func NewEmitter(cfg *config.ServiceConfig, log *logger.Logger, m *metrics.Metrics) *Emitter {
	return &Emitter{
		tag:     logger.ServiceTag(cfg.Name, cfg.Color),
		silent:  cfg.IsSilent(),
		logger:  log,
		metrics: m,
	}
}

// Error classifies err and writes it to w as
//
//	HTTP/1.1 <code>
//	{"message": "<message>"}
//
// then reports it. Nothing is written if the response was already started
// or the client has cancelled the request; the failure is still reported.
// A nil err is a no-op.
func (e *Emitter) Error(w http.ResponseWriter, r *http.Request, err error) {
	classified := failure.Classify(err)
	if classified == nil {
		return
	}

	if canWrite(w, r) {
		if _, writeErr := utils.WriteJSON(w, models.ErrorResponse{Message: classified.Message()}, classified.Code); writeErr != nil {
			e.logger.Err(writeErr).Msg("failed to write error response")
		}
	}

	e.Report(r.Context(), classified)
}

// Health writes the 200 {"ok": true} payload.
func (e *Emitter) Health(w http.ResponseWriter) {
	if _, err := utils.WriteJSON(w, models.HealthResponse{OK: true}, http.StatusOK); err != nil {
		e.logger.Err(err).Msg("failed to write health response")
	}
}

// Report counts and logs a classified failure:
//   - 5xx is always logged at error level with the full cause chain;
//   - below 5xx it is logged tersely at warn level unless the service is
//     silent, in which case nothing is logged.
//
// A panic raised while logging is swallowed.
func (e *Emitter) Report(ctx context.Context, err *failure.Error) {
	if err == nil {
		return
	}

	e.metrics.RecordClassifiedError(err.Code)

	defer func() {
		_ = recover()
	}()

	l := e.loggerFor(ctx)

	switch {
	case err.IsServerError():
		l.Error().
			Str("service", e.tag).
			Int("code", err.Code).
			Err(err).
			Strs("causes", causeChain(err)).
			Msg("request failed")
	case !e.silent:
		l.Warn().
			Str("service", e.tag).
			Msg(err.Message())
	}
}

// loggerFor prefers the request-scoped logger (it carries the trace id) and
// falls back to the emitter's own logger.
func (e *Emitter) loggerFor(ctx context.Context) *logger.Logger {
	if l := logger.FromContext(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return e.logger
}

func canWrite(w http.ResponseWriter, r *http.Request) bool {
	if tracker, ok := w.(WriteTracker); ok && tracker.Written() {
		return false
	}
	// A deadline still deserves an answer; only a departed client does not.
	return !errors.Is(r.Context().Err(), context.Canceled)
}
