// Cinecanon - Arthouse Film Catalog and Discovery Ranking
// Copyright 2026 A. Aubertine (aubertine)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/aubertine/cinecanon

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordDiscoveryRequest(t *testing.T) {
	before := testutil.ToFloat64(DiscoveryRequestsTotal.WithLabelValues("explore", "success"))

	RecordDiscoveryRequest("explore", "success", 5*time.Millisecond, 120)

	after := testutil.ToFloat64(DiscoveryRequestsTotal.WithLabelValues("explore", "success"))
	if after != before+1 {
		t.Errorf("requests counter = %v, want %v", after, before+1)
	}
}

func TestRecordDiscoveryRequestErrorSkipsHistograms(t *testing.T) {
	before := testutil.ToFloat64(DiscoveryRequestsTotal.WithLabelValues("mood", "error"))

	RecordDiscoveryRequest("mood", "error", 0, 0)

	after := testutil.ToFloat64(DiscoveryRequestsTotal.WithLabelValues("mood", "error"))
	if after != before+1 {
		t.Errorf("error counter = %v, want %v", after, before+1)
	}
}

func TestRecordThresholdRejections(t *testing.T) {
	before := testutil.ToFloat64(DiscoveryThresholdRejections.WithLabelValues("combined"))

	RecordThresholdRejections("combined", 7)
	RecordThresholdRejections("combined", 0) // no-op

	after := testutil.ToFloat64(DiscoveryThresholdRejections.WithLabelValues("combined"))
	if after != before+7 {
		t.Errorf("rejections counter = %v, want %v", after, before+7)
	}
}

func TestRecordEnrichment(t *testing.T) {
	before := testutil.ToFloat64(EnrichmentFilmsTotal.WithLabelValues("enriched"))

	RecordEnrichment(time.Second, 50, 2)

	after := testutil.ToFloat64(EnrichmentFilmsTotal.WithLabelValues("enriched"))
	if after != before+50 {
		t.Errorf("enriched counter = %v, want %v", after, before+50)
	}
}

func TestRecordShowRecord(t *testing.T) {
	before := testutil.ToFloat64(ShowRecordsTotal.WithLabelValues("rejected"))

	RecordShowRecord("rejected")

	after := testutil.ToFloat64(ShowRecordsTotal.WithLabelValues("rejected"))
	if after != before+1 {
		t.Errorf("show records counter = %v, want %v", after, before+1)
	}
}

func TestSetCatalogFilms(t *testing.T) {
	SetCatalogFilms(314)
	if got := testutil.ToFloat64(CatalogFilms); got != 314 {
		t.Errorf("catalog gauge = %v, want 314", got)
	}
}

func TestSetCircuitBreakerState(t *testing.T) {
	SetCircuitBreakerState("show-recorder", 2)
	got := testutil.ToFloat64(CircuitBreakerState.WithLabelValues("show-recorder"))
	if got != 2 {
		t.Errorf("breaker state = %v, want 2", got)
	}
}
