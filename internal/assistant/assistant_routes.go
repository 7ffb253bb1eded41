package assistant

import (
	"hr-assistant/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	chat := r.Group("/chat")
	chat.Use(middleware.RateLimitByIP(5, 10))
	{
		chat.POST("", handler.Chat)
	}
}
