package reporter

import (
	"context"
	"log/slog"
	"time"

	"github.com/proxystack/tlstriage/internal/cache"
	"github.com/proxystack/tlstriage/internal/engine"
	"github.com/proxystack/tlstriage/internal/metrics"
	"github.com/proxystack/tlstriage/internal/models"
	"github.com/proxystack/tlstriage/internal/patterns"
	"github.com/proxystack/tlstriage/internal/utils"
)

// Emitter receives assembled failure reports. Implementations must not
// assume the report is TLS related; TLSRelated distinguishes that.
type Emitter interface {
	Emit(ctx context.Context, failure models.ClassifiedFailure) error
}

// Reporter turns raw TLS error text into classified failure reports. It is
// safe for concurrent use: the indicator set and advisor are immutable and
// each Report invocation is independent.
type Reporter struct {
	logger     *slog.Logger
	indicators *engine.IndicatorSet
	advisor    *engine.Advisor
	emitter    Emitter
	cache      cache.Provider
	dedupTTL   time.Duration
	history    *patterns.History
	stats      *utils.FailureStats
}

// NewReporter constructs a Reporter. Nil collaborators fall back to
// defaults; a nil emitter disables emission, a zero dedupTTL disables
// deduplication.
func NewReporter(
	logger *slog.Logger,
	indicators *engine.IndicatorSet,
	advisor *engine.Advisor,
	emitter Emitter,
	cacheProvider cache.Provider,
	dedupTTL time.Duration,
	history *patterns.History,
) *Reporter {
	if logger == nil {
		logger = slog.Default()
	}
	if indicators == nil {
		indicators = engine.NewIndicatorSet()
	}
	if advisor == nil {
		advisor = engine.NewAdvisor(nil)
	}
	if cacheProvider == nil {
		cacheProvider = cache.NoopProvider{}
	}
	return &Reporter{
		logger:     logger,
		indicators: indicators,
		advisor:    advisor,
		emitter:    emitter,
		cache:      cacheProvider,
		dedupTTL:   dedupTTL,
		history:    history,
		stats:      utils.NewFailureStats(1024),
	}
}

// Report classifies raw error text, attaches the session context, and
// emits the assembled record. It never panics; anything that goes wrong
// internally degrades to an unknown-cause report. Both handshake and
// data-transfer call sites go through here, with Session.Phase passed
// through untouched.
func (r *Reporter) Report(ctx context.Context, rawText string, session models.SessionContext) models.ClassifiedFailure {
	start := time.Now()

	failure := r.assemble(rawText, session)
	if failure.TLSRelated {
		failure.Suppressed = r.isDuplicate(ctx, failure)
	}

	if !failure.Suppressed && r.emitter != nil {
		if err := r.emitter.Emit(ctx, failure); err != nil {
			r.logger.Warn("failed to emit failure report",
				slog.String("target", failure.Session.TargetHost),
				slog.Any("error", err))
		}
	}

	duration := time.Since(start)
	r.stats.Record(failure.Cause, failure.TLSRelated, failure.Suppressed, duration)
	metrics.ObserveReport(failure.Cause, failure.Session.Phase, failure.TLSRelated, failure.Suppressed, duration)
	if r.history != nil {
		r.history.Record(failure)
	}
	return failure
}

// assemble runs the normalize -> match -> classify -> advise sequence. The
// deferred recover is the never-fails guarantee: a panic anywhere in the
// sequence yields a best-effort unknown-cause record instead.
func (r *Reporter) assemble(rawText string, session models.SessionContext) (failure models.ClassifiedFailure) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("failure classification panicked", slog.Any("panic", rec))
			failure = models.ClassifiedFailure{
				RawText:     rawText,
				TLSRelated:  false,
				Cause:       models.CauseUnknown,
				Remediation: r.advisor.Advise(models.CauseUnknown),
				Session:     session,
				CreatedAt:   time.Now().UTC(),
			}
		}
	}()

	normalized := engine.Normalize(rawText)
	cause := engine.Classify(normalized)
	failure = models.ClassifiedFailure{
		RawText:     rawText,
		TLSRelated:  r.indicators.Match(normalized),
		Cause:       cause,
		Remediation: r.advisor.Advise(cause),
		Session:     session,
		Notes:       sessionNotes(session),
		CreatedAt:   time.Now().UTC(),
	}
	return failure
}

// isDuplicate marks repeat (target host, cause) pairs inside the dedup
// window. Cache trouble means no suppression: reporting twice beats
// reporting never.
func (r *Reporter) isDuplicate(ctx context.Context, failure models.ClassifiedFailure) bool {
	if r.dedupTTL <= 0 || failure.Session.TargetHost == "" {
		return false
	}
	key := "tlstriage:dedup:" + failure.Session.TargetHost + ":" + string(failure.Cause)
	stored, err := r.cache.SetNX(ctx, key, []byte("1"), r.dedupTTL)
	if err != nil {
		r.logger.Warn("dedup cache unavailable", slog.Any("error", err))
		return false
	}
	return !stored
}

// Stats returns a snapshot of the reporter's counters.
func (r *Reporter) Stats() models.StatsSnapshot {
	return r.stats.Snapshot()
}

// LatencyP95 returns the current p95 report latency.
func (r *Reporter) LatencyP95() time.Duration {
	return r.stats.Percentile(95)
}

// SampleCount returns the number of latency samples recorded.
func (r *Reporter) SampleCount() int {
	return r.stats.Count()
}

// sessionNotes derives advisory notes from the opaque session hints. The
// classifier never sees these; they only annotate the report.
func sessionNotes(session models.SessionContext) []string {
	if !session.VPNActive {
		return nil
	}
	return []string{
		"VPN routing may affect certificate validation",
		"certificate might be valid but blocked by VPN policy",
	}
}
