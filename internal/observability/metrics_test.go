package observability

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsCounters(t *testing.T) {
	m := NewMetrics()

	m.RecordRequest("/tickets", "POST", 201, 10*time.Millisecond)
	m.RecordRequest("/tickets", "POST", 201, 5*time.Millisecond)
	m.RecordError("/tickets", "POST", "VALIDATION_ERROR")
	m.RecordEvent("ticket_created")
	m.RecordEscalations(3)
	m.RecordEscalations(0)
	m.RecordDraftSave("flush")

	if got := testutil.ToFloat64(m.requests.WithLabelValues("/tickets", "POST", "201")); got != 2 {
		t.Fatalf("requests: got %v", got)
	}
	if got := testutil.ToFloat64(m.errors.WithLabelValues("/tickets", "POST", "VALIDATION_ERROR")); got != 1 {
		t.Fatalf("errors: got %v", got)
	}
	if got := testutil.ToFloat64(m.domainEvents.WithLabelValues("ticket_created")); got != 1 {
		t.Fatalf("events: got %v", got)
	}
	if got := testutil.ToFloat64(m.escalations); got != 3 {
		t.Fatalf("escalations: got %v", got)
	}
	if got := testutil.ToFloat64(m.draftSaves.WithLabelValues("flush")); got != 1 {
		t.Fatalf("draft saves: got %v", got)
	}
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.RecordRequest("/", "GET", 200, time.Millisecond)
	m.RecordError("/", "GET", "X")
	m.RecordEvent("x")
	m.RecordEscalations(1)
	m.RecordDraftSave("flush")
}
