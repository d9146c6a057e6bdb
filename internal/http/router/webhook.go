package router

import (
	"github.com/gin-gonic/gin"

	"casedesk.app/voicelink/internal/http/handler/webhook"
)

func WebhookRouter(router *gin.RouterGroup, handler *webhook.VapiWebhookHandler) {
	router.POST("/vapi", handler.HandleEvent)
}
