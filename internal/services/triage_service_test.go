package services

import (
	"context"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	triagev1 "github.com/proxystack/tlstriage/internal/grpc/triagepb"
	"github.com/proxystack/tlstriage/internal/patterns"
	"github.com/proxystack/tlstriage/internal/reporter"
)

func newTestService() *TriageService {
	history := patterns.NewHistory(64)
	rep := reporter.NewReporter(nil, nil, nil, nil, nil, 0, history)
	return NewTriageService(nil, rep, history)
}

func TestReportFailure(t *testing.T) {
	service := newTestService()

	resp, err := service.ReportFailure(context.Background(), &triagev1.ReportFailureRequest{
		RawText: "certificate has expired",
		Session: &triagev1.SessionContext{TargetHost: "expired.example.com", TargetPort: 443},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.GetTlsRelated() {
		t.Fatal("expected tls_related")
	}
	if resp.GetCause() != "expired" {
		t.Fatalf("unexpected cause: %s", resp.GetCause())
	}
	if resp.GetRemediation() == "" {
		t.Fatal("expected remediation text")
	}
}

func TestReportFailureNilRequest(t *testing.T) {
	service := newTestService()

	_, err := service.ReportFailure(context.Background(), nil)
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}

func TestReportFailureNoReporter(t *testing.T) {
	service := NewTriageService(nil, nil, nil)

	_, err := service.ReportFailure(context.Background(), &triagev1.ReportFailureRequest{RawText: "x"})
	if status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("expected failed precondition, got %v", err)
	}
}

func TestGetStats(t *testing.T) {
	service := newTestService()

	for i := 0; i < 3; i++ {
		if _, err := service.ReportFailure(context.Background(), &triagev1.ReportFailureRequest{
			RawText: "tls handshake failure",
			Session: &triagev1.SessionContext{TargetHost: "a.example.com"},
		}); err != nil {
			t.Fatalf("report %d: %v", i, err)
		}
	}

	resp, err := service.GetStats(context.Background(), &triagev1.GetStatsRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.GetReportsTotal() != 3 || resp.GetTlsRelatedTotal() != 3 {
		t.Fatalf("unexpected totals: %+v", resp)
	}
	if len(resp.GetByCause()) != 1 || resp.GetByCause()[0].GetCause() != "handshake_failure" {
		t.Fatalf("unexpected by_cause: %+v", resp.GetByCause())
	}
}

func TestGetPatterns(t *testing.T) {
	service := newTestService()

	inputs := []string{
		"certificate has expired",
		"certificate has expired",
		"unable to verify the first certificate",
	}
	for _, text := range inputs {
		if _, err := service.ReportFailure(context.Background(), &triagev1.ReportFailureRequest{
			RawText: text,
			Session: &triagev1.SessionContext{TargetHost: "broken.example.com"},
		}); err != nil {
			t.Fatalf("report: %v", err)
		}
	}

	resp, err := service.GetPatterns(context.Background(), &triagev1.GetPatternsRequest{Limit: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.GetPatterns()) != 1 {
		t.Fatalf("unexpected pattern count: %d", len(resp.GetPatterns()))
	}
	pattern := resp.GetPatterns()[0]
	if pattern.GetTargetHost() != "broken.example.com" || pattern.GetFailureCount() != 3 {
		t.Fatalf("unexpected pattern: %+v", pattern)
	}
	if pattern.GetDominantCause() != "expired" {
		t.Fatalf("unexpected dominant cause: %s", pattern.GetDominantCause())
	}
}

func TestHealth(t *testing.T) {
	service := newTestService()

	resp, err := service.Health(context.Background(), &triagev1.HealthRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.GetStatus() != "SERVING" {
		t.Fatalf("unexpected status: %s", resp.GetStatus())
	}
}
