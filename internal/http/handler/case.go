package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"casedesk.app/voicelink/internal/http/dto"
	"casedesk.app/voicelink/internal/service"
)

type CaseHandler struct {
	correlation service.CorrelationService
}

func NewCaseHandler(correlation service.CorrelationService) *CaseHandler {
	return &CaseHandler{correlation: correlation}
}

// AttachSession finalizes a case with its voice session. Failures are
// explicit so the operator knows the case was not updated; the atomic
// single-statement write means a failed attach leaves the case untouched.
func (h *CaseHandler) AttachSession(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.AttachSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid attach-session request", "error", err)
		c.JSON(http.StatusBadRequest, dto.AttachSessionResponse{Success: false, Error: err.Error()})
		return
	}

	if err := h.correlation.Attach(ctx, req.CaseID, req.Summary, req.SessionID); err != nil {
		slog.ErrorContext(ctx, "failed to attach session to case", "error", err, "case_id", req.CaseID)
		c.JSON(http.StatusInternalServerError, dto.AttachSessionResponse{Success: false, Error: "failed to update case"})
		return
	}

	c.JSON(http.StatusOK, dto.AttachSessionResponse{Success: true})
}
