package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cofoundr_backend/internal/handlers"
	"cofoundr_backend/internal/middleware"
	"cofoundr_backend/ws"
)

// RegisterRoutes attaches every handler group under /api/v1 plus the
// websocket endpoint.
func RegisterRoutes(r *gin.Engine, h *handlers.AppHandlers, wsHandler *ws.Handler) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")
	{
		h.Auth.RegisterRoutes(api)
		h.Profile.RegisterRoutes(api)
		h.Recommendation.RegisterRoutes(api)
		h.Interest.RegisterRoutes(api)
		h.Match.RegisterRoutes(api)
		h.Message.RegisterRoutes(api)
		h.Admin.RegisterRoutes(api)
	}

	r.GET("/ws", middleware.AuthMiddleware(), wsHandler.ServeWS)
}
