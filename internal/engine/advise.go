package engine

import (
	"errors"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/proxystack/tlstriage/internal/models"
)

// defaultAdvice maps each failure cause to its fixed remediation string.
// Every cause has exactly one non-empty entry and no two causes share one.
var defaultAdvice = map[models.FailureCause]string{
	models.CauseExpired:               "Certificate has expired: renew the certificate on the target server.",
	models.CauseUntrustedOrSelfSigned: "Certificate is self-signed or untrusted: add it to the trust store or deploy a CA-signed certificate.",
	models.CauseHandshakeFailure:      "TLS handshake failed: check certificate compatibility and the TLS versions offered by both sides.",
	models.CauseVerificationFailure:   "Certificate verification failed: check the certificate chain and CA trust configuration.",
	models.CauseRevoked:               "Certificate has been revoked: renew the certificate with a new signing.",
	models.CauseUnknown:               "Unknown TLS certificate issue: investigate certificate validity and trust.",
}

// Advisor resolves remediation guidance for classified causes, applying
// per-deployment overrides from a rule pack when present.
type Advisor struct {
	overrides map[models.FailureCause]string
}

// NewAdvisor constructs an Advisor. Overrides with empty values or unknown
// causes are ignored.
func NewAdvisor(overrides map[models.FailureCause]string) *Advisor {
	filtered := make(map[models.FailureCause]string, len(overrides))
	for cause, advice := range overrides {
		if advice == "" {
			continue
		}
		if _, known := defaultAdvice[cause]; !known {
			continue
		}
		filtered[cause] = advice
	}
	return &Advisor{overrides: filtered}
}

// Advise returns the remediation string for a cause. Total over the cause
// enum; anything unrecognised falls back to the CauseUnknown guidance.
func (a *Advisor) Advise(cause models.FailureCause) string {
	if a != nil {
		if advice, ok := a.overrides[cause]; ok {
			return advice
		}
	}
	if advice, ok := defaultAdvice[cause]; ok {
		return advice
	}
	return defaultAdvice[models.CauseUnknown]
}

// RulePack is the YAML root for deployment-specific tuning: extra indicator
// phrases and remediation overrides keyed by cause.
type RulePack struct {
	Indicators []string          `yaml:"indicators"`
	Advice     map[string]string `yaml:"advice"`
}

// LoadRulePack reads a rule pack from path. An empty path or a missing file
// yields a nil pack, meaning built-in defaults apply.
func LoadRulePack(path string, logger *slog.Logger) (*RulePack, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var pack RulePack
	if err := yaml.Unmarshal(data, &pack); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	known := make(map[string]struct{}, len(defaultAdvice))
	for cause := range defaultAdvice {
		known[string(cause)] = struct{}{}
	}
	for key := range pack.Advice {
		if _, ok := known[key]; !ok {
			logger.Warn("rule pack advice for unknown cause ignored", slog.String("cause", key))
		}
	}
	return &pack, nil
}

// AdviceOverrides converts the pack's advice map to cause-keyed overrides.
func (p *RulePack) AdviceOverrides() map[models.FailureCause]string {
	if p == nil {
		return nil
	}
	overrides := make(map[models.FailureCause]string, len(p.Advice))
	for key, advice := range p.Advice {
		overrides[models.FailureCause(key)] = advice
	}
	return overrides
}

// ExtraIndicators returns the pack's additional indicator phrases.
func (p *RulePack) ExtraIndicators() []string {
	if p == nil {
		return nil
	}
	return p.Indicators
}
