package dto

import "casedesk.app/voicelink/internal/model"

type ListReportsResponse struct {
	Success   bool           `json:"success"`
	Reports   []model.Report `json:"reports"`
	Count     int            `json:"count"`
	Source    string         `json:"source"`
	Timestamp string         `json:"timestamp"`
	Error     string         `json:"error,omitempty"`
}
