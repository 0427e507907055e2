package repo

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/proxystack/tlstriage/internal/models"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func sampleFailure() models.ClassifiedFailure {
	return models.ClassifiedFailure{
		RawText:     "certificate has expired",
		TLSRelated:  true,
		Cause:       models.CauseExpired,
		Remediation: "renew",
		Session: models.SessionContext{
			TargetHost: "expired.example.com",
			TargetPort: 443,
			Phase:      models.PhaseHandshake,
		},
		CreatedAt: time.Unix(1_700_000_000, 0).UTC(),
	}
}

func TestCollectorEmitPostsReport(t *testing.T) {
	client := NewCollectorClient("https://collector.example.com/", "secret", time.Second)
	client.httpClient = &http.Client{Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
		if req.Method != http.MethodPost {
			t.Fatalf("unexpected method: %s", req.Method)
		}
		if req.URL.Path != "/api/v1/reports" {
			t.Fatalf("unexpected path: %s", req.URL.Path)
		}
		if got := req.Header.Get("Authorization"); got != "Bearer secret" {
			t.Fatalf("unexpected authorization header: %q", got)
		}
		body, err := io.ReadAll(req.Body)
		if err != nil {
			t.Fatalf("read body: %v", err)
		}
		var payload map[string]any
		if err := json.Unmarshal(body, &payload); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if payload["cause"] != "expired" {
			t.Fatalf("unexpected cause: %v", payload["cause"])
		}
		if payload["target_host"] != "expired.example.com" {
			t.Fatalf("unexpected target: %v", payload["target_host"])
		}
		return &http.Response{
			StatusCode: http.StatusAccepted,
			Body:       http.NoBody,
			Header:     make(http.Header),
		}, nil
	})}

	if err := client.Emit(context.Background(), sampleFailure()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCollectorEmitRejectsErrorStatus(t *testing.T) {
	client := NewCollectorClient("https://collector.example.com", "", time.Second)
	client.httpClient = &http.Client{Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusInternalServerError,
			Body:       http.NoBody,
			Header:     make(http.Header),
		}, nil
	})}

	if err := client.Emit(context.Background(), sampleFailure()); err == nil {
		t.Fatalf("expected error for 500 status")
	}
}

func TestCollectorEmitNoEndpointIsNoop(t *testing.T) {
	client := NewCollectorClient("", "", time.Second)
	if err := client.Emit(context.Background(), sampleFailure()); err != nil {
		t.Fatalf("expected noop without endpoint, got %v", err)
	}
}
