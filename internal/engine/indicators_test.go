package engine

import "testing"

func TestIndicatorSetMatchesKnownFailures(t *testing.T) {
	set := NewIndicatorSet()
	samples := []string{
		"certificate has expired",
		"unable to verify the first certificate",
		"self signed certificate in certificate chain",
		"certificate is not yet valid",
		"certificate has been revoked",
		"SSL handshake failed",
		"TLS verification failed",
		"unknown certificate authority",
		"certificate signature verification failed",
		"cannot get local issuer certificate",
	}
	for _, sample := range samples {
		if !set.Match(sample) {
			t.Fatalf("expected match for %q", sample)
		}
	}
}

func TestIndicatorSetIsCaseInsensitive(t *testing.T) {
	set := NewIndicatorSet()
	if !set.Match("CERTIFICATE HAS EXPIRED") {
		t.Fatalf("expected upper-case text to match")
	}
	if !set.Match("  TLS Handshake Failure  ") {
		t.Fatalf("expected padded mixed-case text to match")
	}
}

func TestIndicatorSetRejectsUnrelatedText(t *testing.T) {
	set := NewIndicatorSet()
	for _, sample := range []string{"connection reset by peer", "connection timed out", ""} {
		if set.Match(sample) {
			t.Fatalf("unexpected match for %q", sample)
		}
	}
}

func TestIndicatorSetExtraPhrases(t *testing.T) {
	set := NewIndicatorSet("Corporate Proxy Root", "", "certificate")
	if !set.Match("blocked by corporate proxy root policy") {
		t.Fatalf("expected extra phrase to match")
	}
	phrases := set.Phrases()
	seen := make(map[string]int)
	for _, phrase := range phrases {
		seen[phrase]++
	}
	if seen["certificate"] != 1 {
		t.Fatalf("expected duplicate phrase to be dropped, got %d", seen["certificate"])
	}
	if seen[""] != 0 {
		t.Fatalf("empty phrase should be dropped")
	}
}
