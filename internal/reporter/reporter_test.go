package reporter

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/proxystack/tlstriage/internal/cache"
	"github.com/proxystack/tlstriage/internal/models"
	"github.com/proxystack/tlstriage/internal/patterns"
)

type emitterStub struct {
	emitted []models.ClassifiedFailure
	err     error
}

func (e *emitterStub) Emit(_ context.Context, failure models.ClassifiedFailure) error {
	e.emitted = append(e.emitted, failure)
	return e.err
}

func handshakeSession(host string) models.SessionContext {
	return models.SessionContext{
		PeerAddr:   "10.0.0.7:51234",
		TargetHost: host,
		TargetPort: 443,
		Phase:      models.PhaseHandshake,
	}
}

func TestReportClassifiesAndEmits(t *testing.T) {
	emitter := &emitterStub{}
	r := NewReporter(nil, nil, nil, emitter, nil, 0, nil)

	failure := r.Report(context.Background(), "certificate has expired", handshakeSession("expired.example.com"))
	if !failure.TLSRelated {
		t.Fatalf("expected TLS related")
	}
	if failure.Cause != models.CauseExpired {
		t.Fatalf("expected expired cause, got %s", failure.Cause)
	}
	if failure.Remediation == "" {
		t.Fatalf("expected remediation")
	}
	if failure.Session.Phase != models.PhaseHandshake {
		t.Fatalf("phase must pass through untouched, got %s", failure.Session.Phase)
	}
	if len(emitter.emitted) != 1 {
		t.Fatalf("expected one emission, got %d", len(emitter.emitted))
	}
}

func TestReportNonTLSTextStillEmits(t *testing.T) {
	emitter := &emitterStub{}
	r := NewReporter(nil, nil, nil, emitter, nil, 0, nil)

	failure := r.Report(context.Background(), "connection timed out", handshakeSession("slow.example.com"))
	if failure.TLSRelated {
		t.Fatalf("expected non-TLS verdict")
	}
	if failure.Cause != models.CauseUnknown {
		t.Fatalf("expected unknown cause, got %s", failure.Cause)
	}
	if len(emitter.emitted) != 1 {
		t.Fatalf("expected emission for non-TLS failure too")
	}
}

func TestReportDeduplicatesPerTargetAndCause(t *testing.T) {
	emitter := &emitterStub{}
	r := NewReporter(nil, nil, nil, emitter, cache.NewMemoryProvider(), time.Minute, nil)
	ctx := context.Background()

	first := r.Report(ctx, "certificate has expired", handshakeSession("expired.example.com"))
	second := r.Report(ctx, "certificate has expired", handshakeSession("expired.example.com"))
	other := r.Report(ctx, "certificate has been revoked", handshakeSession("expired.example.com"))

	if first.Suppressed {
		t.Fatalf("first report must not be suppressed")
	}
	if !second.Suppressed {
		t.Fatalf("duplicate report should be suppressed")
	}
	if other.Suppressed {
		t.Fatalf("different cause against same target must not be suppressed")
	}
	if len(emitter.emitted) != 2 {
		t.Fatalf("expected two emissions, got %d", len(emitter.emitted))
	}

	snap := r.Stats()
	if snap.ReportsTotal != 3 || snap.SuppressedTotal != 1 {
		t.Fatalf("unexpected stats: %+v", snap)
	}
}

func TestReportDedupCacheFailureDoesNotSuppress(t *testing.T) {
	emitter := &emitterStub{}
	r := NewReporter(nil, nil, nil, emitter, failingCache{}, time.Minute, nil)

	failure := r.Report(context.Background(), "certificate has expired", handshakeSession("expired.example.com"))
	if failure.Suppressed {
		t.Fatalf("cache errors must not suppress reports")
	}
	if len(emitter.emitted) != 1 {
		t.Fatalf("expected emission despite cache failure")
	}
}

func TestReportAttachesVPNNotes(t *testing.T) {
	r := NewReporter(nil, nil, nil, nil, nil, 0, nil)
	session := handshakeSession("expired.example.com")
	session.Platform = "windows"
	session.VPNActive = true

	failure := r.Report(context.Background(), "certificate has expired", session)
	if len(failure.Notes) == 0 {
		t.Fatalf("expected VPN advisory notes")
	}

	session.VPNActive = false
	failure = r.Report(context.Background(), "certificate has expired", session)
	if len(failure.Notes) != 0 {
		t.Fatalf("expected no notes without VPN hint, got %v", failure.Notes)
	}
}

func TestReportEmitterErrorIsNotFatal(t *testing.T) {
	emitter := &emitterStub{err: errors.New("collector down")}
	r := NewReporter(nil, nil, nil, emitter, nil, 0, nil)

	failure := r.Report(context.Background(), "certificate has expired", handshakeSession("expired.example.com"))
	if failure.Cause != models.CauseExpired {
		t.Fatalf("emitter errors must not change the report, got %s", failure.Cause)
	}
}

func TestReportDataTransferPhase(t *testing.T) {
	emitter := &emitterStub{}
	r := NewReporter(nil, nil, nil, emitter, nil, 0, nil)
	session := models.SessionContext{
		TargetHost: "stream.example.com",
		Phase:      models.PhaseDataTransfer,
		Direction:  "server->client",
	}

	failure := r.Report(context.Background(), "tls: bad record MAC during read", session)
	if failure.Session.Phase != models.PhaseDataTransfer {
		t.Fatalf("unexpected phase: %s", failure.Session.Phase)
	}
	if failure.Session.Direction != "server->client" {
		t.Fatalf("direction must pass through, got %s", failure.Session.Direction)
	}
	if !failure.TLSRelated {
		t.Fatalf("expected tls indicator to match data-transfer error")
	}
}

func TestReportRecordsHistory(t *testing.T) {
	history := patterns.NewHistory(8)
	r := NewReporter(nil, nil, nil, nil, nil, 0, history)

	r.Report(context.Background(), "certificate has expired", handshakeSession("expired.example.com"))
	if history.Len() != 1 {
		t.Fatalf("expected history record, got %d", history.Len())
	}
}

func TestReportEmptyText(t *testing.T) {
	r := NewReporter(nil, nil, nil, nil, nil, 0, nil)
	failure := r.Report(context.Background(), "", handshakeSession("empty.example.com"))
	if failure.TLSRelated {
		t.Fatalf("empty text must not be TLS related")
	}
	if failure.Cause != models.CauseUnknown {
		t.Fatalf("expected unknown cause for empty text, got %s", failure.Cause)
	}
}

type failingCache struct{}

func (failingCache) Get(context.Context, string) ([]byte, error) {
	return nil, errors.New("cache unavailable")
}

func (failingCache) Set(context.Context, string, []byte, time.Duration) error {
	return errors.New("cache unavailable")
}

func (failingCache) SetNX(context.Context, string, []byte, time.Duration) (bool, error) {
	return false, errors.New("cache unavailable")
}

func (failingCache) Close() error { return nil }
