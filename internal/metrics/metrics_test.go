package metrics

import (
	"errors"
	"testing"
	"time"
)

func TestRecordProviderAttempt(t *testing.T) {
	r := NewRecorder()

	r.RecordProviderAttempt("squiggle", 20*time.Millisecond, nil)
	r.RecordProviderAttempt("squiggle", 40*time.Millisecond, errors.New("boom"))

	snap := r.Snapshot("squiggle")
	if snap.Calls != 2 || snap.Errors != 1 {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
	if snap.LastCallLatency != 40*time.Millisecond {
		t.Fatalf("latency = %v", snap.LastCallLatency)
	}
}

func TestRecordRateLimit(t *testing.T) {
	r := NewRecorder()

	r.RecordRateLimit("theodds", 30*time.Second)
	r.RecordRateLimit("theodds", 0) // no Retry-After supplied

	snap := r.Snapshot("theodds")
	if snap.RateLimitHits != 2 {
		t.Fatalf("hits = %d", snap.RateLimitHits)
	}
	if snap.LastRetryAfter != 30*time.Second {
		t.Fatalf("zero retry-after must not overwrite, got %v", snap.LastRetryAfter)
	}
}

func TestRecordSnapshotRows(t *testing.T) {
	r := NewRecorder()
	r.RecordSnapshot(9)
	if got := r.SnapshotRows(); got != 9 {
		t.Fatalf("rows = %d", got)
	}
}

func TestProvidersTrackedIndependently(t *testing.T) {
	r := NewRecorder()
	r.RecordProviderAttempt("squiggle", time.Millisecond, nil)
	r.RecordProviderAttempt("theodds", time.Millisecond, errors.New("x"))

	if r.ProviderCalls("squiggle") != 1 || r.ProviderErrors("squiggle") != 0 {
		t.Fatalf("squiggle stats bled: calls=%d errors=%d", r.ProviderCalls("squiggle"), r.ProviderErrors("squiggle"))
	}
	if r.ProviderErrors("theodds") != 1 {
		t.Fatalf("theodds errors = %d", r.ProviderErrors("theodds"))
	}
	if r.RateLimitHits("unknown") != 0 {
		t.Fatal("unknown provider should read as zero")
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var r *Recorder
	r.RecordProviderAttempt("x", time.Second, nil)
	r.RecordRateLimit("x", time.Second)
	r.RecordRefreshCycle(time.Second, nil)
	r.RecordSnapshot(1)
	r.RecordHTTPRequest("GET", "/tipsheet", 200, time.Millisecond)
	if r.ProviderCalls("x") != 0 || r.SnapshotRows() != 0 {
		t.Fatal("nil recorder should report zeros")
	}
}
