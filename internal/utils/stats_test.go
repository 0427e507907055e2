package utils

import (
	"testing"
	"time"

	"github.com/proxystack/tlstriage/internal/models"
)

func TestFailureStatsCounters(t *testing.T) {
	stats := NewFailureStats(8)
	stats.Record(models.CauseExpired, true, false, time.Millisecond)
	stats.Record(models.CauseExpired, true, true, time.Millisecond)
	stats.Record(models.CauseUnknown, false, false, time.Millisecond)

	snap := stats.Snapshot()
	if snap.ReportsTotal != 3 {
		t.Fatalf("expected 3 reports, got %d", snap.ReportsTotal)
	}
	if snap.TLSRelatedTotal != 2 {
		t.Fatalf("expected 2 tls-related, got %d", snap.TLSRelatedTotal)
	}
	if snap.SuppressedTotal != 1 {
		t.Fatalf("expected 1 suppressed, got %d", snap.SuppressedTotal)
	}
	if snap.ByCause[models.CauseExpired] != 2 {
		t.Fatalf("expected 2 expired, got %d", snap.ByCause[models.CauseExpired])
	}
}

func TestFailureStatsPercentileBounds(t *testing.T) {
	stats := NewFailureStats(4)
	if got := stats.Percentile(95); got != 0 {
		t.Fatalf("expected zero percentile with no samples, got %v", got)
	}
	for i := 1; i <= 6; i++ {
		stats.Record(models.CauseUnknown, false, false, time.Duration(i)*time.Millisecond)
	}
	if stats.Count() != 4 {
		t.Fatalf("expected sample window of 4, got %d", stats.Count())
	}
	if got := stats.Percentile(0); got != 3*time.Millisecond {
		t.Fatalf("expected min of window, got %v", got)
	}
	if got := stats.Percentile(100); got != 6*time.Millisecond {
		t.Fatalf("expected max of window, got %v", got)
	}
}
