// Package triagepb holds the wire types for the triage.v1.FailureTriage
// service. The structs are maintained by hand against
// proto/triage/v1/triage.proto; the protobuf runtime derives descriptors
// from the struct tags, so tags must stay in sync with the proto file.
package triagepb

import (
	"google.golang.org/protobuf/runtime/protoimpl"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// SessionContext describes the proxied connection a failure occurred on.
type SessionContext struct {
	PeerAddr   string `protobuf:"bytes,1,opt,name=peer_addr,json=peerAddr,proto3" json:"peer_addr,omitempty"`
	TargetHost string `protobuf:"bytes,2,opt,name=target_host,json=targetHost,proto3" json:"target_host,omitempty"`
	TargetPort int32  `protobuf:"varint,3,opt,name=target_port,json=targetPort,proto3" json:"target_port,omitempty"`
	Phase      string `protobuf:"bytes,4,opt,name=phase,proto3" json:"phase,omitempty"`
	Direction  string `protobuf:"bytes,5,opt,name=direction,proto3" json:"direction,omitempty"`
	Platform   string `protobuf:"bytes,6,opt,name=platform,proto3" json:"platform,omitempty"`
	VpnActive  bool   `protobuf:"varint,7,opt,name=vpn_active,json=vpnActive,proto3" json:"vpn_active,omitempty"`
	ProxyId    string `protobuf:"bytes,8,opt,name=proxy_id,json=proxyId,proto3" json:"proxy_id,omitempty"`
}

func (m *SessionContext) Reset()         { *m = SessionContext{} }
func (m *SessionContext) String() string { return messageString(m) }
func (*SessionContext) ProtoMessage()    {}

func (m *SessionContext) GetPeerAddr() string {
	if m != nil {
		return m.PeerAddr
	}
	return ""
}

func (m *SessionContext) GetTargetHost() string {
	if m != nil {
		return m.TargetHost
	}
	return ""
}

func (m *SessionContext) GetTargetPort() int32 {
	if m != nil {
		return m.TargetPort
	}
	return 0
}

func (m *SessionContext) GetPhase() string {
	if m != nil {
		return m.Phase
	}
	return ""
}

func (m *SessionContext) GetDirection() string {
	if m != nil {
		return m.Direction
	}
	return ""
}

func (m *SessionContext) GetPlatform() string {
	if m != nil {
		return m.Platform
	}
	return ""
}

func (m *SessionContext) GetVpnActive() bool {
	if m != nil {
		return m.VpnActive
	}
	return false
}

func (m *SessionContext) GetProxyId() string {
	if m != nil {
		return m.ProxyId
	}
	return ""
}

// ReportFailureRequest carries a raw connection error for classification.
type ReportFailureRequest struct {
	RawText    string                 `protobuf:"bytes,1,opt,name=raw_text,json=rawText,proto3" json:"raw_text,omitempty"`
	Session    *SessionContext        `protobuf:"bytes,2,opt,name=session,proto3" json:"session,omitempty"`
	ObservedAt *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=observed_at,json=observedAt,proto3" json:"observed_at,omitempty"`
}

func (m *ReportFailureRequest) Reset()         { *m = ReportFailureRequest{} }
func (m *ReportFailureRequest) String() string { return messageString(m) }
func (*ReportFailureRequest) ProtoMessage()    {}

func (m *ReportFailureRequest) GetRawText() string {
	if m != nil {
		return m.RawText
	}
	return ""
}

func (m *ReportFailureRequest) GetSession() *SessionContext {
	if m != nil {
		return m.Session
	}
	return nil
}

func (m *ReportFailureRequest) GetObservedAt() *timestamppb.Timestamp {
	if m != nil {
		return m.ObservedAt
	}
	return nil
}

// ClassifiedFailure is the classification outcome for a single report.
type ClassifiedFailure struct {
	RawText     string                 `protobuf:"bytes,1,opt,name=raw_text,json=rawText,proto3" json:"raw_text,omitempty"`
	TlsRelated  bool                   `protobuf:"varint,2,opt,name=tls_related,json=tlsRelated,proto3" json:"tls_related,omitempty"`
	Cause       string                 `protobuf:"bytes,3,opt,name=cause,proto3" json:"cause,omitempty"`
	Remediation string                 `protobuf:"bytes,4,opt,name=remediation,proto3" json:"remediation,omitempty"`
	Session     *SessionContext        `protobuf:"bytes,5,opt,name=session,proto3" json:"session,omitempty"`
	Notes       []string               `protobuf:"bytes,6,rep,name=notes,proto3" json:"notes,omitempty"`
	CreatedAt   *timestamppb.Timestamp `protobuf:"bytes,7,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	Suppressed  bool                   `protobuf:"varint,8,opt,name=suppressed,proto3" json:"suppressed,omitempty"`
}

func (m *ClassifiedFailure) Reset()         { *m = ClassifiedFailure{} }
func (m *ClassifiedFailure) String() string { return messageString(m) }
func (*ClassifiedFailure) ProtoMessage()    {}

func (m *ClassifiedFailure) GetRawText() string {
	if m != nil {
		return m.RawText
	}
	return ""
}

func (m *ClassifiedFailure) GetTlsRelated() bool {
	if m != nil {
		return m.TlsRelated
	}
	return false
}

func (m *ClassifiedFailure) GetCause() string {
	if m != nil {
		return m.Cause
	}
	return ""
}

func (m *ClassifiedFailure) GetRemediation() string {
	if m != nil {
		return m.Remediation
	}
	return ""
}

func (m *ClassifiedFailure) GetSession() *SessionContext {
	if m != nil {
		return m.Session
	}
	return nil
}

func (m *ClassifiedFailure) GetNotes() []string {
	if m != nil {
		return m.Notes
	}
	return nil
}

func (m *ClassifiedFailure) GetCreatedAt() *timestamppb.Timestamp {
	if m != nil {
		return m.CreatedAt
	}
	return nil
}

func (m *ClassifiedFailure) GetSuppressed() bool {
	if m != nil {
		return m.Suppressed
	}
	return false
}

// GetStatsRequest has no fields.
type GetStatsRequest struct{}

func (m *GetStatsRequest) Reset()         { *m = GetStatsRequest{} }
func (m *GetStatsRequest) String() string { return messageString(m) }
func (*GetStatsRequest) ProtoMessage()    {}

// CauseCount pairs a failure cause with its occurrence count.
type CauseCount struct {
	Cause string `protobuf:"bytes,1,opt,name=cause,proto3" json:"cause,omitempty"`
	Count uint64 `protobuf:"varint,2,opt,name=count,proto3" json:"count,omitempty"`
}

func (m *CauseCount) Reset()         { *m = CauseCount{} }
func (m *CauseCount) String() string { return messageString(m) }
func (*CauseCount) ProtoMessage()    {}

func (m *CauseCount) GetCause() string {
	if m != nil {
		return m.Cause
	}
	return ""
}

func (m *CauseCount) GetCount() uint64 {
	if m != nil {
		return m.Count
	}
	return 0
}

// GetStatsResponse reports cumulative triage counters.
type GetStatsResponse struct {
	ReportsTotal    uint64        `protobuf:"varint,1,opt,name=reports_total,json=reportsTotal,proto3" json:"reports_total,omitempty"`
	TlsRelatedTotal uint64        `protobuf:"varint,2,opt,name=tls_related_total,json=tlsRelatedTotal,proto3" json:"tls_related_total,omitempty"`
	SuppressedTotal uint64        `protobuf:"varint,3,opt,name=suppressed_total,json=suppressedTotal,proto3" json:"suppressed_total,omitempty"`
	ByCause         []*CauseCount `protobuf:"bytes,4,rep,name=by_cause,json=byCause,proto3" json:"by_cause,omitempty"`
}

func (m *GetStatsResponse) Reset()         { *m = GetStatsResponse{} }
func (m *GetStatsResponse) String() string { return messageString(m) }
func (*GetStatsResponse) ProtoMessage()    {}

func (m *GetStatsResponse) GetReportsTotal() uint64 {
	if m != nil {
		return m.ReportsTotal
	}
	return 0
}

func (m *GetStatsResponse) GetTlsRelatedTotal() uint64 {
	if m != nil {
		return m.TlsRelatedTotal
	}
	return 0
}

func (m *GetStatsResponse) GetSuppressedTotal() uint64 {
	if m != nil {
		return m.SuppressedTotal
	}
	return 0
}

func (m *GetStatsResponse) GetByCause() []*CauseCount {
	if m != nil {
		return m.ByCause
	}
	return nil
}

// GetPatternsRequest bounds the number of returned patterns.
type GetPatternsRequest struct {
	Limit int32 `protobuf:"varint,1,opt,name=limit,proto3" json:"limit,omitempty"`
}

func (m *GetPatternsRequest) Reset()         { *m = GetPatternsRequest{} }
func (m *GetPatternsRequest) String() string { return messageString(m) }
func (*GetPatternsRequest) ProtoMessage()    {}

func (m *GetPatternsRequest) GetLimit() int32 {
	if m != nil {
		return m.Limit
	}
	return 0
}

// TargetPattern summarises recent failures against a single target host.
type TargetPattern struct {
	TargetHost    string                 `protobuf:"bytes,1,opt,name=target_host,json=targetHost,proto3" json:"target_host,omitempty"`
	DominantCause string                 `protobuf:"bytes,2,opt,name=dominant_cause,json=dominantCause,proto3" json:"dominant_cause,omitempty"`
	FailureCount  uint64                 `protobuf:"varint,3,opt,name=failure_count,json=failureCount,proto3" json:"failure_count,omitempty"`
	LastSeen      *timestamppb.Timestamp `protobuf:"bytes,4,opt,name=last_seen,json=lastSeen,proto3" json:"last_seen,omitempty"`
	ByCause       []*CauseCount          `protobuf:"bytes,5,rep,name=by_cause,json=byCause,proto3" json:"by_cause,omitempty"`
}

func (m *TargetPattern) Reset()         { *m = TargetPattern{} }
func (m *TargetPattern) String() string { return messageString(m) }
func (*TargetPattern) ProtoMessage()    {}

func (m *TargetPattern) GetTargetHost() string {
	if m != nil {
		return m.TargetHost
	}
	return ""
}

func (m *TargetPattern) GetDominantCause() string {
	if m != nil {
		return m.DominantCause
	}
	return ""
}

func (m *TargetPattern) GetFailureCount() uint64 {
	if m != nil {
		return m.FailureCount
	}
	return 0
}

func (m *TargetPattern) GetLastSeen() *timestamppb.Timestamp {
	if m != nil {
		return m.LastSeen
	}
	return nil
}

func (m *TargetPattern) GetByCause() []*CauseCount {
	if m != nil {
		return m.ByCause
	}
	return nil
}

// GetPatternsResponse lists per-target failure patterns.
type GetPatternsResponse struct {
	Patterns []*TargetPattern `protobuf:"bytes,1,rep,name=patterns,proto3" json:"patterns,omitempty"`
}

func (m *GetPatternsResponse) Reset()         { *m = GetPatternsResponse{} }
func (m *GetPatternsResponse) String() string { return messageString(m) }
func (*GetPatternsResponse) ProtoMessage()    {}

func (m *GetPatternsResponse) GetPatterns() []*TargetPattern {
	if m != nil {
		return m.Patterns
	}
	return nil
}

// HealthRequest has no fields.
type HealthRequest struct{}

func (m *HealthRequest) Reset()         { *m = HealthRequest{} }
func (m *HealthRequest) String() string { return messageString(m) }
func (*HealthRequest) ProtoMessage()    {}

// HealthResponse reports service liveness.
type HealthResponse struct {
	Status string `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
}

func (m *HealthResponse) Reset()         { *m = HealthResponse{} }
func (m *HealthResponse) String() string { return messageString(m) }
func (*HealthResponse) ProtoMessage()    {}

func (m *HealthResponse) GetStatus() string {
	if m != nil {
		return m.Status
	}
	return ""
}

func messageString(m interface{ Reset() }) string {
	return protoimpl.X.MessageStringOf(protoimpl.X.ProtoMessageV2Of(m))
}
