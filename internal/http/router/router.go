package router

import (
	"github.com/gin-gonic/gin"

	"casedesk.app/voicelink/internal/http/handler"
	"casedesk.app/voicelink/internal/http/handler/webhook"
	"casedesk.app/voicelink/internal/service"
)

func SetupRoutes(router *gin.Engine, services *service.Services) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	vapiHandler := webhook.NewVapiWebhookHandler(services.Ingest())
	WebhookRouter(router.Group("/webhooks"), vapiHandler)

	v1 := router.Group("/api/v1")
	{
		reportHandler := handler.NewReportHandler(services.Listing())
		ReportRouter(v1.Group("/reports"), reportHandler)

		caseHandler := handler.NewCaseHandler(services.Correlation())
		CaseRouter(v1.Group("/cases"), caseHandler)
	}
}
