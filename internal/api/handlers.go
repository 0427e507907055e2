package api

import (
	"fmt"
	"sort"

	"google.golang.org/protobuf/types/known/timestamppb"

	triagev1 "github.com/proxystack/tlstriage/internal/grpc/triagepb"
	"github.com/proxystack/tlstriage/internal/models"
)

// FromProtoReportFailureRequest maps the gRPC request into the raw error
// text and domain SessionContext consumed by the reporter.
func FromProtoReportFailureRequest(req *triagev1.ReportFailureRequest) (string, models.SessionContext, error) {
	if req == nil {
		return "", models.SessionContext{}, fmt.Errorf("request is nil")
	}

	session := models.SessionContext{}
	if src := req.GetSession(); src != nil {
		session = models.SessionContext{
			PeerAddr:   src.GetPeerAddr(),
			TargetHost: src.GetTargetHost(),
			TargetPort: int(src.GetTargetPort()),
			Phase:      models.Phase(src.GetPhase()),
			Direction:  src.GetDirection(),
			Platform:   src.GetPlatform(),
			VPNActive:  src.GetVpnActive(),
			ProxyID:    src.GetProxyId(),
		}
	}
	if session.Phase == "" {
		session.Phase = models.PhaseHandshake
	}

	return req.GetRawText(), session, nil
}

// ToProtoClassifiedFailure converts a domain record into the gRPC shape.
func ToProtoClassifiedFailure(failure models.ClassifiedFailure) *triagev1.ClassifiedFailure {
	proto := &triagev1.ClassifiedFailure{
		RawText:     failure.RawText,
		TlsRelated:  failure.TLSRelated,
		Cause:       string(failure.Cause),
		Remediation: failure.Remediation,
		Session: &triagev1.SessionContext{
			PeerAddr:   failure.Session.PeerAddr,
			TargetHost: failure.Session.TargetHost,
			TargetPort: int32(failure.Session.TargetPort),
			Phase:      string(failure.Session.Phase),
			Direction:  failure.Session.Direction,
			Platform:   failure.Session.Platform,
			VpnActive:  failure.Session.VPNActive,
			ProxyId:    failure.Session.ProxyID,
		},
		Notes:      append([]string(nil), failure.Notes...),
		Suppressed: failure.Suppressed,
	}
	if !failure.CreatedAt.IsZero() {
		proto.CreatedAt = timestamppb.New(failure.CreatedAt)
	}
	return proto
}

// ToProtoStatsResponse converts a stats snapshot into the gRPC response.
func ToProtoStatsResponse(snap models.StatsSnapshot) *triagev1.GetStatsResponse {
	return &triagev1.GetStatsResponse{
		ReportsTotal:    snap.ReportsTotal,
		TlsRelatedTotal: snap.TLSRelatedTotal,
		SuppressedTotal: snap.SuppressedTotal,
		ByCause:         toProtoCauseCounts(snap.ByCause),
	}
}

// ToProtoPatternsResponse maps target patterns into the gRPC response.
func ToProtoPatternsResponse(patterns []models.TargetPattern) *triagev1.GetPatternsResponse {
	resp := &triagev1.GetPatternsResponse{}
	for _, pattern := range patterns {
		protoPattern := &triagev1.TargetPattern{
			TargetHost:    pattern.TargetHost,
			DominantCause: string(pattern.DominantCause),
			FailureCount:  pattern.FailureCount,
			ByCause:       toProtoCauseCounts(pattern.ByCause),
		}
		if !pattern.LastSeen.IsZero() {
			protoPattern.LastSeen = timestamppb.New(pattern.LastSeen)
		}
		resp.Patterns = append(resp.Patterns, protoPattern)
	}
	return resp
}

func toProtoCauseCounts(byCause map[models.FailureCause]uint64) []*triagev1.CauseCount {
	if len(byCause) == 0 {
		return nil
	}
	counts := make([]*triagev1.CauseCount, 0, len(byCause))
	for cause, count := range byCause {
		counts = append(counts, &triagev1.CauseCount{Cause: string(cause), Count: count})
	}
	sort.Slice(counts, func(i, j int) bool { return counts[i].Cause < counts[j].Cause })
	return counts
}
