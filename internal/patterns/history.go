package patterns

import (
	"sort"
	"sync"

	"github.com/proxystack/tlstriage/internal/models"
)

// History keeps a bounded window of recent classified failures and
// aggregates them into per-target patterns. Records are copied in and
// never mutated; nothing is persisted.
type History struct {
	mu      sync.RWMutex
	entries []models.ClassifiedFailure
	maxSize int
}

// NewHistory creates a History keeping up to maxSize records.
func NewHistory(maxSize int) *History {
	if maxSize <= 0 {
		maxSize = 512
	}
	return &History{maxSize: maxSize}
}

// Record appends a classified failure, evicting the oldest entry when the
// window is full.
func (h *History) Record(failure models.ClassifiedFailure) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.entries = append(h.entries, failure)
	if len(h.entries) > h.maxSize {
		copy(h.entries[0:], h.entries[1:])
		h.entries = h.entries[:h.maxSize]
	}
}

// Len returns the number of records currently held.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.entries)
}

type targetAggregate struct {
	count    uint64
	byCause  map[models.FailureCause]uint64
	lastSeen models.ClassifiedFailure
}

// Summarize aggregates the window into per-target-host patterns, most
// frequent targets first, capped at limit (limit <= 0 means no cap).
// Records without a target host are skipped.
func (h *History) Summarize(limit int) []models.TargetPattern {
	h.mu.RLock()
	defer h.mu.RUnlock()

	aggregates := make(map[string]*targetAggregate)
	for _, entry := range h.entries {
		host := entry.Session.TargetHost
		if host == "" {
			continue
		}
		agg, ok := aggregates[host]
		if !ok {
			agg = &targetAggregate{byCause: make(map[models.FailureCause]uint64)}
			aggregates[host] = agg
		}
		agg.count++
		agg.byCause[entry.Cause]++
		if entry.CreatedAt.After(agg.lastSeen.CreatedAt) {
			agg.lastSeen = entry
		}
	}

	patterns := make([]models.TargetPattern, 0, len(aggregates))
	for host, agg := range aggregates {
		byCause := make(map[models.FailureCause]uint64, len(agg.byCause))
		for cause, count := range agg.byCause {
			byCause[cause] = count
		}
		patterns = append(patterns, models.TargetPattern{
			TargetHost:    host,
			DominantCause: dominantCause(agg.byCause),
			FailureCount:  agg.count,
			LastSeen:      agg.lastSeen.CreatedAt,
			ByCause:       byCause,
		})
	}

	sort.Slice(patterns, func(i, j int) bool {
		if patterns[i].FailureCount != patterns[j].FailureCount {
			return patterns[i].FailureCount > patterns[j].FailureCount
		}
		return patterns[i].TargetHost < patterns[j].TargetHost
	})

	if limit > 0 && len(patterns) > limit {
		patterns = patterns[:limit]
	}
	return patterns
}

// dominantCause picks the most frequent cause, breaking ties by the cause
// enum's classification priority so the outcome is deterministic.
func dominantCause(byCause map[models.FailureCause]uint64) models.FailureCause {
	dominant := models.CauseUnknown
	var best uint64
	for _, cause := range models.Causes() {
		if count := byCause[cause]; count > best {
			best = count
			dominant = cause
		}
	}
	return dominant
}
