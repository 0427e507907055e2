package services

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/proxystack/tlstriage/internal/api"
	triagev1 "github.com/proxystack/tlstriage/internal/grpc/triagepb"
	"github.com/proxystack/tlstriage/internal/patterns"
	"github.com/proxystack/tlstriage/internal/reporter"
)

// TriageService implements the gRPC FailureTriage service.
type TriageService struct {
	triagev1.UnimplementedFailureTriageServer

	logger   *slog.Logger
	reporter *reporter.Reporter
	history  *patterns.History
}

// NewTriageService constructs the triage service facade.
func NewTriageService(logger *slog.Logger, rep *reporter.Reporter, history *patterns.History) *TriageService {
	if logger == nil {
		logger = slog.Default()
	}
	return &TriageService{
		logger:   logger,
		reporter: rep,
		history:  history,
	}
}

// ReportFailure classifies a raw connection error and emits the report.
func (s *TriageService) ReportFailure(ctx context.Context, req *triagev1.ReportFailureRequest) (*triagev1.ClassifiedFailure, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request cannot be nil")
	}
	if s.reporter == nil {
		return nil, status.Error(codes.FailedPrecondition, "reporter not configured")
	}

	rawText, session, err := api.FromProtoReportFailureRequest(req)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	s.logger.Debug("ReportFailure called",
		slog.String("target_host", session.TargetHost),
		slog.String("phase", string(session.Phase)))

	failure := s.reporter.Report(ctx, rawText, session)

	if count := s.reporter.SampleCount(); count >= 20 && count%20 == 0 {
		s.logger.Info("report latency",
			slog.Duration("p95", s.reporter.LatencyP95()),
			slog.Int("samples", count))
	}

	return api.ToProtoClassifiedFailure(failure), nil
}

// GetStats returns cumulative triage counters.
func (s *TriageService) GetStats(ctx context.Context, req *triagev1.GetStatsRequest) (*triagev1.GetStatsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request cannot be nil")
	}
	if s.reporter == nil {
		return nil, status.Error(codes.FailedPrecondition, "reporter not configured")
	}
	return api.ToProtoStatsResponse(s.reporter.Stats()), nil
}

// GetPatterns summarises recent failures per target host.
func (s *TriageService) GetPatterns(ctx context.Context, req *triagev1.GetPatternsRequest) (*triagev1.GetPatternsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request cannot be nil")
	}
	if s.history == nil {
		return nil, status.Error(codes.FailedPrecondition, "failure history not configured")
	}
	return api.ToProtoPatternsResponse(s.history.Summarize(int(req.GetLimit()))), nil
}

// Health returns the current health state.
func (s *TriageService) Health(ctx context.Context, req *triagev1.HealthRequest) (*triagev1.HealthResponse, error) {
	return &triagev1.HealthResponse{Status: "SERVING"}, nil
}

// LatencyP95 exposes the current p95 report latency.
func (s *TriageService) LatencyP95() time.Duration {
	if s.reporter == nil {
		return 0
	}
	return s.reporter.LatencyP95()
}
