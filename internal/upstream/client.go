package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"casedesk.app/voicelink/core/config"
	"casedesk.app/voicelink/internal/model"
)

// Client speaks the voice-AI service's HTTP protocol and returns
// internal-shaped data. ListReports never panics and never returns a plain
// error: callers get reports XOR a typed *Failure, so the fallback path is
// impossible to skip.
type Client interface {
	// ProbeConnection is a best-effort health signal. Its result is advisory
	// only and must never gate other operations.
	ProbeConnection(ctx context.Context) error
	ListReports(ctx context.Context) ([]model.Report, *Failure)
}

// FallbackSource supplies a cached result set to attach to failures.
// Implementations are best-effort and never error.
type FallbackSource interface {
	Reports(ctx context.Context) []model.Report
}

type httpClient struct {
	baseURL     string
	apiKey      string
	assistantID string
	client      *http.Client
	fallback    FallbackSource
}

// NewHTTPClient builds a client for the upstream service. Every outbound call
// carries the configured timeout; a timeout classifies as a network failure.
// fallback may be nil, in which case failures carry an empty fallback list.
func NewHTTPClient(cfg config.VapiConfig, fallback FallbackSource) Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &httpClient{
		baseURL:     cfg.BaseURL,
		apiKey:      cfg.APIKey,
		assistantID: cfg.AssistantID,
		client:      &http.Client{Timeout: timeout},
		fallback:    fallback,
	}
}

func (c *httpClient) ProbeConnection(ctx context.Context) error {
	url := c.baseURL + "/assistant"
	if c.assistantID != "" {
		url += "/" + c.assistantID
	}

	resp, err := c.get(ctx, url)
	if err != nil {
		return fmt.Errorf("probing upstream: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("probing upstream: unexpected status %d", resp.StatusCode)
	}
	return nil
}

func (c *httpClient) ListReports(ctx context.Context) ([]model.Report, *Failure) {
	url := c.baseURL + "/call"
	if c.assistantID != "" {
		url += "?assistantId=" + c.assistantID
	}

	resp, err := c.get(ctx, url)
	if err != nil {
		return nil, c.failure(ctx, FailureNetwork, fmt.Sprintf("calling upstream: %v", err))
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, c.failure(ctx, FailureAuth, fmt.Sprintf("upstream rejected credentials (status %d)", resp.StatusCode))
	case resp.StatusCode >= 500:
		return nil, c.failure(ctx, FailureUpstream5xx, fmt.Sprintf("upstream server error (status %d)", resp.StatusCode))
	case resp.StatusCode != http.StatusOK:
		return nil, c.failure(ctx, FailureMalformedResponse, fmt.Sprintf("unexpected upstream status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.failure(ctx, FailureNetwork, fmt.Sprintf("reading upstream response: %v", err))
	}

	var records []callRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, c.failure(ctx, FailureMalformedResponse, fmt.Sprintf("decoding upstream response: %v", err))
	}

	return normalize(records), nil
}

func (c *httpClient) get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	return c.client.Do(req)
}

func (c *httpClient) failure(ctx context.Context, kind FailureKind, message string) *Failure {
	f := &Failure{Kind: kind, Message: message}
	if c.fallback != nil {
		f.Fallback = c.fallback.Reports(ctx)
	}
	return f
}

// callRecord is the upstream wire shape for a completed call. Only the fields
// voicelink cares about; everything else is ignored.
type callRecord struct {
	ID        string `json:"id"`
	SessionID string `json:"sessionId"`
	Summary   string `json:"summary"`
	Analysis  struct {
		Summary string `json:"summary"`
	} `json:"analysis"`
	EndedAt *time.Time `json:"endedAt"`
}

// normalize maps upstream records into internal reports. Missing optional
// fields become zero values; a record missing its identifier is excluded
// rather than stored under a synthesized one, so identifiers stay stable
// across fetches.
func normalize(records []callRecord) []model.Report {
	now := time.Now().UTC()
	reports := make([]model.Report, 0, len(records))
	for _, rec := range records {
		if rec.ID == "" {
			continue
		}
		summary := rec.Analysis.Summary
		if summary == "" {
			summary = rec.Summary
		}
		reports = append(reports, model.Report{
			ID:                rec.ID,
			SessionID:         rec.SessionID,
			TranscriptSummary: summary,
			ReceivedAt:        now,
			Source:            model.SourceUpstreamFetch,
		})
	}
	return reports
}
