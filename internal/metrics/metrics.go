// Cinecanon - Arthouse Film Catalog and Discovery Ranking
// Copyright 2026 A. Aubertine (aubertine)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/aubertine/cinecanon

// Package metrics provides Prometheus instrumentation for Cinecanon.
//
// Metrics cover the discovery ranking pipeline, catalog enrichment, and
// the fire-and-forget show recording path. All collectors register with
// the default registry via promauto.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Discovery Ranking Metrics
	DiscoveryRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "discovery_requests_total",
			Help: "Total number of discovery ranking requests",
		},
		[]string{"context", "status"}, // context: explore, decade, mood, combined
	)

	DiscoveryRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "discovery_request_duration_seconds",
			Help:    "Duration of discovery ranking requests in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"context"},
	)

	DiscoveryFilmsRanked = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "discovery_films_ranked",
			Help:    "Number of films scored per ranking request",
			Buckets: []float64{10, 50, 100, 250, 500, 1000, 2500, 5000},
		},
		[]string{"context"},
	)

	DiscoveryThresholdRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "discovery_threshold_rejections_total",
			Help: "Total number of films dropped below the minimum context score",
		},
		[]string{"context"},
	)

	// Enrichment Metrics
	EnrichmentFilmsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "enrichment_films_total",
			Help: "Total number of films processed by the enrichment pipeline",
		},
		[]string{"status"}, // "enriched", "failed"
	)

	EnrichmentDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "enrichment_duration_seconds",
			Help:    "Duration of full-catalog enrichment runs in seconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
	)

	// Show Recording Metrics
	ShowRecordsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "show_records_total",
			Help: "Total number of show-count recording attempts",
		},
		[]string{"result"}, // "success", "failure", "rejected"
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Catalog Metrics
	CatalogFilms = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_films",
			Help: "Current number of films in the loaded catalog",
		},
	)
)

// RecordDiscoveryRequest records the outcome of one ranking request.
func RecordDiscoveryRequest(context, status string, duration time.Duration, ranked int) {
	DiscoveryRequestsTotal.WithLabelValues(context, status).Inc()
	if status == "success" {
		DiscoveryRequestDuration.WithLabelValues(context).Observe(duration.Seconds())
		DiscoveryFilmsRanked.WithLabelValues(context).Observe(float64(ranked))
	}
}

// RecordThresholdRejections adds n films dropped below the score floor.
func RecordThresholdRejections(context string, n int) {
	if n > 0 {
		DiscoveryThresholdRejections.WithLabelValues(context).Add(float64(n))
	}
}

// RecordEnrichment records a full-catalog enrichment run.
func RecordEnrichment(duration time.Duration, enriched, failed int) {
	EnrichmentDuration.Observe(duration.Seconds())
	EnrichmentFilmsTotal.WithLabelValues("enriched").Add(float64(enriched))
	if failed > 0 {
		EnrichmentFilmsTotal.WithLabelValues("failed").Add(float64(failed))
	}
}

// RecordShowRecord records one show-count recording attempt.
// result is "success", "failure", or "rejected" (breaker open).
func RecordShowRecord(result string) {
	ShowRecordsTotal.WithLabelValues(result).Inc()
}

// SetCircuitBreakerState updates the state gauge for a named breaker.
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}

// RecordCircuitBreakerTransition records a breaker state change.
func RecordCircuitBreakerTransition(name, from, to string) {
	CircuitBreakerTransitions.WithLabelValues(name, from, to).Inc()
}

// SetCatalogFilms updates the catalog size gauge.
func SetCatalogFilms(n int) {
	CatalogFilms.Set(float64(n))
}
