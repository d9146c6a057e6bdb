package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"casedesk.app/voicelink/internal/http/dto"
	"casedesk.app/voicelink/internal/service"
)

type ReportHandler struct {
	listing service.ListingService
}

func NewReportHandler(listing service.ListingService) *ReportHandler {
	return &ReportHandler{listing: listing}
}

// List answers UI polling. A degraded upstream is a displayable state, not an
// endpoint failure: fallback results still go out as HTTP 200 with
// success=false and the error detail embedded.
func (h *ReportHandler) List(c *gin.Context) {
	result := h.listing.List(c.Request.Context())

	resp := dto.ListReportsResponse{
		Success:   result.Live,
		Reports:   result.Reports,
		Count:     result.Count,
		Source:    string(result.Source),
		Timestamp: result.Timestamp.Format(time.RFC3339),
	}
	if !result.Live {
		resp.Error = fmt.Sprintf("%s: %s", result.ErrorKind, result.ErrorDetail)
	}

	c.JSON(http.StatusOK, resp)
}
