package http

import (
	"github.com/gin-gonic/gin"

	"collab-assistant/internal/middleware"
)

// RegisterRoutes maps the assistant endpoints onto the API group.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	assistant := rg.Group("/assistant")
	{
		assistant.POST("/messages", mw.RateLimit(), h.Interpret)
	}
}
