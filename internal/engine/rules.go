package engine

import (
	"strings"

	"github.com/proxystack/tlstriage/internal/models"
)

// Rule maps a set of alternative substrings to a failure cause. Rules are
// evaluated in table order and the first match wins, so earlier rules take
// priority when an error text contains several overlapping indicators.
type Rule struct {
	Cause models.FailureCause
	Any   []string
}

// causeRules is the ordered classification table. The ordering encodes
// which cause is most diagnostically useful when phrases overlap: an
// expired certificate often also fails the handshake and verification, and
// reporting "expired" is the actionable part.
var causeRules = []Rule{
	{Cause: models.CauseExpired, Any: []string{"expired"}},
	{Cause: models.CauseUntrustedOrSelfSigned, Any: []string{"self-signed", "self signed", "untrusted"}},
	{Cause: models.CauseHandshakeFailure, Any: []string{"handshake"}},
	{Cause: models.CauseVerificationFailure, Any: []string{"verify", "verification"}},
	{Cause: models.CauseRevoked, Any: []string{"revoked"}},
}

// Classify maps error text to a FailureCause using the ordered rule table.
// Text that matches no rule, including text that is not TLS related at all,
// yields CauseUnknown. Deterministic and side-effect free.
func Classify(text string) models.FailureCause {
	normalized := Normalize(text)
	if normalized == "" {
		return models.CauseUnknown
	}
	for _, rule := range causeRules {
		for _, substr := range rule.Any {
			if strings.Contains(normalized, substr) {
				return rule.Cause
			}
		}
	}
	return models.CauseUnknown
}

// Rules returns a copy of the classification table in priority order.
func Rules() []Rule {
	rules := make([]Rule, len(causeRules))
	for i, rule := range causeRules {
		rules[i] = Rule{Cause: rule.Cause, Any: append([]string(nil), rule.Any...)}
	}
	return rules
}
