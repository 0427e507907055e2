package repo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/proxystack/tlstriage/internal/models"
	"github.com/proxystack/tlstriage/internal/utils"
)

// CollectorClient forwards classified failure reports to a central
// collector over HTTP. It implements reporter.Emitter.
type CollectorClient struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

// NewCollectorClient constructs a client for the configured collector.
func NewCollectorClient(endpoint, apiKey string, timeout time.Duration) *CollectorClient {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &CollectorClient{
		endpoint:   strings.TrimRight(endpoint, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type reportPayload struct {
	RawText     string   `json:"raw_text"`
	TLSRelated  bool     `json:"tls_related"`
	Cause       string   `json:"cause"`
	Remediation string   `json:"remediation"`
	PeerAddr    string   `json:"peer_addr,omitempty"`
	TargetHost  string   `json:"target_host,omitempty"`
	TargetPort  int      `json:"target_port,omitempty"`
	Phase       string   `json:"phase"`
	Direction   string   `json:"direction,omitempty"`
	Platform    string   `json:"platform,omitempty"`
	VPNActive   bool     `json:"vpn_active,omitempty"`
	ProxyID     string   `json:"proxy_id,omitempty"`
	Notes       []string `json:"notes,omitempty"`
	CreatedAt   string   `json:"created_at"`
}

// Emit posts one classified failure to the collector.
func (c *CollectorClient) Emit(ctx context.Context, failure models.ClassifiedFailure) error {
	if c == nil || c.endpoint == "" {
		return nil
	}

	payload := reportPayload{
		RawText:     failure.RawText,
		TLSRelated:  failure.TLSRelated,
		Cause:       string(failure.Cause),
		Remediation: failure.Remediation,
		PeerAddr:    failure.Session.PeerAddr,
		TargetHost:  failure.Session.TargetHost,
		TargetPort:  failure.Session.TargetPort,
		Phase:       string(failure.Session.Phase),
		Direction:   failure.Session.Direction,
		Platform:    failure.Session.Platform,
		VPNActive:   failure.Session.VPNActive,
		ProxyID:     failure.Session.ProxyID,
		Notes:       failure.Notes,
		CreatedAt:   failure.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return utils.NewAppError("collector.emit", "encode report", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/api/v1/reports", bytes.NewReader(body))
	if err != nil {
		return utils.NewAppError("collector.emit", "build request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return utils.NewAppError("collector.emit", "post report", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return utils.NewAppError("collector.emit", fmt.Sprintf("collector returned status %d", resp.StatusCode), nil)
	}
	return nil
}
