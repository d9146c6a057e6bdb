package dto

type AttachSessionRequest struct {
	CaseID    string `json:"caseId" binding:"required"`
	Summary   string `json:"summary" binding:"required"`
	SessionID string `json:"sessionId" binding:"required"`
}

type AttachSessionResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}
