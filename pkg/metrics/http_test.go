package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveRequestCountsByLabel(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	m.ObserveRequest("POST", "/api/v1/compositions", "201", 25*time.Millisecond)
	m.ObserveRequest("POST", "/api/v1/compositions", "201", 30*time.Millisecond)
	m.ObserveRequest("GET", "/health/live", "200", time.Millisecond)

	count := testutil.ToFloat64(m.requests.WithLabelValues("POST", "/api/v1/compositions", "201"))
	if count != 2 {
		t.Fatalf("expected 2 observations, got %v", count)
	}
}

func TestObserveRequestNilSafe(t *testing.T) {
	t.Parallel()

	var m *HTTPMetrics
	m.ObserveRequest("GET", "/", "200", time.Second)

	unregistered := NewHTTPMetrics(nil)
	unregistered.ObserveRequest("", "", "", time.Second)
}
