package webhook

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"casedesk.app/voicelink/internal/http/dto"
	"casedesk.app/voicelink/internal/service"
)

// VapiWebhookHandler accepts one POST per upstream call event. Delivery is
// at-least-once and unordered; duplicates respond success so the upstream
// retry policy converges, and storage failures respond 5xx so it retries.
type VapiWebhookHandler struct {
	ingest service.IngestService
}

func NewVapiWebhookHandler(ingest service.IngestService) *VapiWebhookHandler {
	return &VapiWebhookHandler{ingest: ingest}
}

func (h *VapiWebhookHandler) HandleEvent(c *gin.Context) {
	ctx := c.Request.Context()

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.WebhookEventResponse{Success: false, Message: "failed to read request body"})
		return
	}

	var payload vapiWebhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		slog.WarnContext(ctx, "undecodable webhook payload", "error", err)
		c.JSON(http.StatusBadRequest, dto.WebhookEventResponse{Success: false, Message: "invalid payload"})
		return
	}

	result, err := h.ingest.Ingest(ctx, service.IngestParams{
		Event:     payload.Event,
		CallID:    payload.CallID,
		SessionID: payload.SessionID,
		Summary:   payload.Summary,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidEvent) {
			slog.WarnContext(ctx, "rejected webhook event", "error", err)
			c.JSON(http.StatusBadRequest, dto.WebhookEventResponse{Success: false, Message: err.Error()})
			return
		}
		slog.ErrorContext(ctx, "failed to store webhook event", "error", err, "event", payload.Event)
		c.JSON(http.StatusInternalServerError, dto.WebhookEventResponse{Success: false, Message: "failed to store report"})
		return
	}

	resp := dto.WebhookEventResponse{Success: true, ReportID: result.ReportID}
	if result.Duplicated {
		resp.Message = "duplicate event ignored"
	}
	c.JSON(http.StatusOK, resp)
}

// vapiWebhookPayload is the upstream-defined event shape. Only the fields the
// ingest path needs; unknown fields are ignored.
type vapiWebhookPayload struct {
	Event     string `json:"event"`
	CallID    string `json:"callId"`
	SessionID string `json:"sessionId"`
	Summary   string `json:"summary"`
}
