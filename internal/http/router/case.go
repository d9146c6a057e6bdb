package router

import (
	"github.com/gin-gonic/gin"

	"casedesk.app/voicelink/internal/http/handler"
)

func CaseRouter(router *gin.RouterGroup, handler *handler.CaseHandler) {
	router.POST("/attach-session", handler.AttachSession)
}
