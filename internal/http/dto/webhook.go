package dto

// WebhookEventResponse is deliberately minimal: success flag and identifier
// only, since call detail is sensitive.
type WebhookEventResponse struct {
	Success  bool   `json:"success"`
	ReportID string `json:"reportId,omitempty"`
	Message  string `json:"message,omitempty"`
}
