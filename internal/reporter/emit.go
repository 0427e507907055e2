package reporter

import (
	"context"
	"errors"
	"log/slog"

	"github.com/proxystack/tlstriage/internal/models"
)

// SlogEmitter writes reports to structured logs. TLS-related failures log
// at warn level so operators see the classified cause and remediation
// instead of a raw TLS error string; everything else logs at debug.
type SlogEmitter struct {
	logger *slog.Logger
}

// NewSlogEmitter constructs a SlogEmitter.
func NewSlogEmitter(logger *slog.Logger) *SlogEmitter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogEmitter{logger: logger}
}

// Emit implements Emitter.
func (e *SlogEmitter) Emit(_ context.Context, failure models.ClassifiedFailure) error {
	attrs := []any{
		slog.String("target", failure.Session.TargetHost),
		slog.Int("port", failure.Session.TargetPort),
		slog.String("peer", failure.Session.PeerAddr),
		slog.String("phase", string(failure.Session.Phase)),
		slog.String("cause", string(failure.Cause)),
		slog.String("remediation", failure.Remediation),
		slog.String("error", failure.RawText),
	}
	if failure.Session.Direction != "" {
		attrs = append(attrs, slog.String("direction", failure.Session.Direction))
	}
	for _, note := range failure.Notes {
		attrs = append(attrs, slog.String("note", note))
	}

	if failure.TLSRelated {
		e.logger.Warn("TLS certificate issue detected", attrs...)
	} else {
		e.logger.Debug("unclassified connection failure", attrs...)
	}
	return nil
}

// MultiEmitter fans a report out to several emitters, collecting errors.
type MultiEmitter []Emitter

// Emit implements Emitter.
func (m MultiEmitter) Emit(ctx context.Context, failure models.ClassifiedFailure) error {
	var errs []error
	for _, emitter := range m {
		if emitter == nil {
			continue
		}
		if err := emitter.Emit(ctx, failure); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
