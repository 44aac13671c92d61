package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveCountsRequests(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	m.Observe("GET", "/products", "200", 25*time.Millisecond)
	m.Observe("GET", "/products", "200", 30*time.Millisecond)
	m.Observe("POST", "/contact", "429", time.Millisecond)

	got := testutil.ToFloat64(m.requests.WithLabelValues("GET", "/products", "200"))
	if got != 2 {
		t.Fatalf("expected 2 GET /products requests, got %v", got)
	}
	got = testutil.ToFloat64(m.requests.WithLabelValues("POST", "/contact", "429"))
	if got != 1 {
		t.Fatalf("expected 1 throttled contact request, got %v", got)
	}
}

func TestObserveNormalizesEmptyLabels(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	m.Observe("", "", "", time.Millisecond)

	got := testutil.ToFloat64(m.requests.WithLabelValues("unknown", "unknown", "unknown"))
	if got != 1 {
		t.Fatalf("expected normalized labels, got %v", got)
	}
}

func TestNilReceiverAndRegisterer(t *testing.T) {
	var m *HTTPMetrics
	m.Observe("GET", "/", "200", time.Millisecond)

	empty := NewHTTPMetrics(nil)
	empty.Observe("GET", "/", "200", time.Millisecond)
}
