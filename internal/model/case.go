package model

import "time"

// Case represents a human-filed incident under review. The case itself is
// owned by the case-management application; voicelink only mutates the two
// voice-correlation fields.
//
// A case may exist with no associated report (voice flow never used), and a
// report may exist with no associated case. The report join is computed by
// readers via SessionID, never stored as a foreign key.
type Case struct {
	ID string `json:"id"`

	// VapiSessionID links the case to a voice conversation. Overwritten
	// unconditionally by the correlation updater (last writer wins).
	VapiSessionID *string `json:"vapiSessionId,omitempty"`

	VapiReportSummary *string `json:"vapiReportSummary,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
