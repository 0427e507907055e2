package models

import "time"

// FailureCause enumerates the semantic causes a TLS failure text can map to.
type FailureCause string

const (
	CauseExpired               FailureCause = "expired"
	CauseUntrustedOrSelfSigned FailureCause = "untrusted_or_self_signed"
	CauseHandshakeFailure      FailureCause = "handshake_failure"
	CauseVerificationFailure   FailureCause = "verification_failure"
	CauseRevoked               FailureCause = "revoked"
	CauseUnknown               FailureCause = "unknown"
)

// Causes lists every FailureCause in classification priority order,
// with CauseUnknown last as the universal fallback.
func Causes() []FailureCause {
	return []FailureCause{
		CauseExpired,
		CauseUntrustedOrSelfSigned,
		CauseHandshakeFailure,
		CauseVerificationFailure,
		CauseRevoked,
		CauseUnknown,
	}
}

// Phase tags where in the connection lifecycle the failure surfaced.
type Phase string

const (
	PhaseHandshake    Phase = "handshake"
	PhaseDataTransfer Phase = "data_transfer"
)

// SessionContext carries opaque per-connection metadata supplied by the
// proxy. The engine attaches it to reports without interpreting it.
type SessionContext struct {
	PeerAddr   string
	TargetHost string
	TargetPort int
	Phase      Phase
	// Direction is set on data-transfer failures, e.g. "client->server".
	Direction string
	Platform  string
	VPNActive bool
	ProxyID   string
}

// ClassifiedFailure is the structured record produced for one observed
// TLS failure event. Created once per event and never mutated.
type ClassifiedFailure struct {
	RawText     string
	TLSRelated  bool
	Cause       FailureCause
	Remediation string
	Session     SessionContext
	Notes       []string
	CreatedAt   time.Time
	// Suppressed marks a duplicate of a recently reported (target, cause)
	// pair; suppressed records are returned but not emitted.
	Suppressed bool
}
