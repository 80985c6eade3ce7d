package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/bookings")

	// === Authenticated Routes ===
	group.Use(authMiddleware)
	{
		group.GET("", h.List)
		group.GET("/:id", h.Get)
		group.POST("", h.Create)
		group.DELETE("/:id", h.Delete)
	}

	// The weekly grid hangs off the room resource; the :id segment matches the
	// room routes so gin accepts both trees.
	g.GET("/rooms/:id/week", authMiddleware, h.WeekGrid)
}
