package engine

import "strings"

// defaultIndicators are the built-in phrases whose presence marks an error
// text as SSL/TLS certificate related. Stored lower-case; matching is
// case-insensitive substring containment. The set reflects the wording of
// common TLS libraries and can be extended per deployment via the rule pack.
var defaultIndicators = []string{
	"certificate",
	"cert",
	"tls",
	"ssl",
	"handshake",
	"verification",
	"expired",
	"self-signed",
	"self signed",
	"untrusted",
	"certificate chain",
	"certificate verify",
	"certificate has expired",
	"certificate not yet valid",
	"certificate revoked",
	"certificate signature",
	"certificate authority",
	"unknown ca",
	"unable to get local issuer",
	"issuer certificate",
	"root certificate",
}

// Normalize lower-cases and trims raw error text prior to matching.
func Normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// IndicatorSet is an immutable, ordered set of failure indicator phrases.
// It is safe for unsynchronized concurrent reads.
type IndicatorSet struct {
	phrases []string
}

// NewIndicatorSet returns the built-in indicator set extended with the
// given extra phrases. Extras are normalized; empty and duplicate phrases
// are dropped.
func NewIndicatorSet(extra ...string) *IndicatorSet {
	phrases := make([]string, 0, len(defaultIndicators)+len(extra))
	seen := make(map[string]struct{}, len(defaultIndicators)+len(extra))
	for _, phrase := range defaultIndicators {
		phrases = append(phrases, phrase)
		seen[phrase] = struct{}{}
	}
	for _, phrase := range extra {
		phrase = Normalize(phrase)
		if phrase == "" {
			continue
		}
		if _, ok := seen[phrase]; ok {
			continue
		}
		phrases = append(phrases, phrase)
		seen[phrase] = struct{}{}
	}
	return &IndicatorSet{phrases: phrases}
}

// Match reports whether any indicator phrase occurs in the normalized text.
// Empty text never matches.
func (s *IndicatorSet) Match(text string) bool {
	normalized := Normalize(text)
	if normalized == "" {
		return false
	}
	for _, phrase := range s.phrases {
		if strings.Contains(normalized, phrase) {
			return true
		}
	}
	return false
}

// Phrases returns a copy of the indicator phrases in match order.
func (s *IndicatorSet) Phrases() []string {
	return append([]string(nil), s.phrases...)
}
