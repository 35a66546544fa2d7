// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics holds the Prometheus collectors shared by the toolkit's
// components. Each service owns its own registry; nothing is registered on
// the global default registry.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels of a token decode call.
const (
	OutcomeAllowed  = "allowed"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// Metrics holds all Prometheus collectors of a service.
type Metrics struct {
	registry *prometheus.Registry

	// ClassifiedErrorsTotal counts responses rendered from classified
	// errors, by status code.
	ClassifiedErrorsTotal *prometheus.CounterVec

	// AuthDecodeDuration observes the latency of the remote token decode
	// call, by outcome.
	AuthDecodeDuration *prometheus.HistogramVec
}

// New creates the collectors and registers them, together with the Go and
// process collectors, on a fresh registry.
func New(service string) *Metrics {
	registry := prometheus.NewRegistry()
	constLabels := prometheus.Labels{"service": service}

	m := &Metrics{
		registry: registry,
		ClassifiedErrorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "classified_errors_total",
				Help:        "Total number of classified error responses",
				ConstLabels: constLabels,
			},
			[]string{"code"},
		),
		AuthDecodeDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "auth_decode_duration_seconds",
				Help:        "Token decode call duration in seconds",
				Buckets:     prometheus.DefBuckets,
				ConstLabels: constLabels,
			},
			[]string{"outcome"},
		),
	}

	registry.MustRegister(
		m.ClassifiedErrorsTotal,
		m.AuthDecodeDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Nop returns metrics backed by a private registry that is never exposed.
// Intended for tests.
func Nop() *Metrics {
	return New("nop")
}

// RecordClassifiedError counts one classified error response.
func (m *Metrics) RecordClassifiedError(code int) {
	if m == nil {
		return
	}
	m.ClassifiedErrorsTotal.WithLabelValues(strconv.Itoa(code)).Inc()
}

// ObserveDecode records the duration of one token decode call.
func (m *Metrics) ObserveDecode(outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.AuthDecodeDuration.WithLabelValues(outcome).Observe(d.Seconds())
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
