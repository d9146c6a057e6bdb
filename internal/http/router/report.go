package router

import (
	"github.com/gin-gonic/gin"

	"casedesk.app/voicelink/internal/http/handler"
)

func ReportRouter(router *gin.RouterGroup, handler *handler.ReportHandler) {
	router.GET("", handler.List)
}
