package utils

import (
	"sort"
	"sync"
	"time"

	"github.com/proxystack/tlstriage/internal/models"
)

// FailureStats tracks per-cause report counters and recent report
// latencies. Safe for concurrent use.
type FailureStats struct {
	mu         sync.RWMutex
	total      uint64
	tlsRelated uint64
	suppressed uint64
	byCause    map[models.FailureCause]uint64
	samples    []time.Duration
	maxSamples int
}

// NewFailureStats creates a tracker keeping up to maxSamples latency samples.
func NewFailureStats(maxSamples int) *FailureStats {
	if maxSamples <= 0 {
		maxSamples = 512
	}
	return &FailureStats{
		byCause:    make(map[models.FailureCause]uint64),
		maxSamples: maxSamples,
	}
}

// Record accounts one classified report.
func (s *FailureStats) Record(cause models.FailureCause, tlsRelated, suppressed bool, d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.total++
	if tlsRelated {
		s.tlsRelated++
	}
	if suppressed {
		s.suppressed++
	}
	s.byCause[cause]++

	s.samples = append(s.samples, d)
	if len(s.samples) > s.maxSamples {
		// Drop oldest sample to bound memory.
		copy(s.samples[0:], s.samples[1:])
		s.samples = s.samples[:s.maxSamples]
	}
}

// Snapshot returns a copy of the current counters.
func (s *FailureStats) Snapshot() models.StatsSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byCause := make(map[models.FailureCause]uint64, len(s.byCause))
	for cause, count := range s.byCause {
		byCause[cause] = count
	}
	return models.StatsSnapshot{
		ReportsTotal:    s.total,
		TLSRelatedTotal: s.tlsRelated,
		SuppressedTotal: s.suppressed,
		ByCause:         byCause,
	}
}

// Count returns the number of latency samples recorded.
func (s *FailureStats) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.samples)
}

// Percentile returns the percentile (0-100) report latency, or zero when
// no samples have been recorded.
func (s *FailureStats) Percentile(p float64) time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.samples) == 0 {
		return 0
	}
	sorted := append([]time.Duration(nil), s.samples...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	if p <= 0 {
		return sorted[0]
	}
	if p >= 100 {
		return sorted[len(sorted)-1]
	}
	index := int((p / 100.0) * float64(len(sorted)-1))
	if index < 0 {
		index = 0
	}
	if index >= len(sorted) {
		index = len(sorted) - 1
	}
	return sorted[index]
}
