package models

import "time"

// TargetPattern summarises recent failures observed against one target host.
type TargetPattern struct {
	TargetHost    string
	DominantCause FailureCause
	FailureCount  uint64
	LastSeen      time.Time
	ByCause       map[FailureCause]uint64
}

// StatsSnapshot is a point-in-time view of the reporter's counters.
type StatsSnapshot struct {
	ReportsTotal    uint64
	TLSRelatedTotal uint64
	SuppressedTotal uint64
	ByCause         map[FailureCause]uint64
}
