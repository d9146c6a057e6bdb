package model

import "time"

// ReportSource records where a report came from. It feeds conflict resolution
// and shows up on every listing response so the UI can flag degraded data.
type ReportSource string

const (
	// SourceWebhook marks reports ingested from upstream webhook deliveries.
	SourceWebhook ReportSource = "webhook"
	// SourceUpstreamFetch marks reports fetched live from the upstream API.
	SourceUpstreamFetch ReportSource = "upstream-fetch"
	// SourceFallback marks reports served from the cached snapshot after a
	// failed live fetch.
	SourceFallback ReportSource = "fallback"
)

// Report represents one completed (or partially completed) voice-AI
// conversation. Reports are append-only: once stored they are never updated.
type Report struct {
	// ID is the upstream call id, or a locally generated snowflake when the
	// upstream event carried none. Unique within the store.
	ID string `json:"id"`

	// SessionID is the correlation key shared with the case record. Empty when
	// the upstream event predates correlation.
	SessionID string `json:"sessionId"`

	TranscriptSummary string `json:"transcriptSummary,omitempty"`

	// ReceivedAt is the ingestion timestamp, not the upstream call's own
	// timestamp (which may be absent or untrusted).
	ReceivedAt time.Time `json:"receivedAt"`

	Source ReportSource `json:"source"`
}
