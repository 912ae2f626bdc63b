package observability

import (
	"testing"
	"time"
)

func TestMetricsSnapshot(t *testing.T) {
	m := NewMetrics()
	m.RecordRequest("/api/services", "GET", 200, 10*time.Millisecond)
	m.RecordRequest("/api/services", "GET", 200, 30*time.Millisecond)
	m.RecordError("/api/auth/login", "POST", "INVALID_CREDENTIALS")

	snap := m.Snapshot()
	if snap.Requests["/api/services|GET|200"] != 2 {
		t.Fatalf("requests = %v", snap.Requests)
	}
	if got := snap.AvgLatencyMs["/api/services|GET|200"]; got != 20 {
		t.Fatalf("avg latency = %v", got)
	}
	if snap.Errors["/api/auth/login|POST|INVALID_CREDENTIALS"] != 1 {
		t.Fatalf("errors = %v", snap.Errors)
	}
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.RecordRequest("/", "GET", 200, time.Millisecond)
	m.RecordError("/", "GET", "X")
	if snap := m.Snapshot(); len(snap.Requests) != 0 {
		t.Fatalf("expected empty snapshot")
	}
}
