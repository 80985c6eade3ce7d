package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	// Branding images are fetched by the login screen before authentication.
	g.GET("/branding", h.Branding)

	group := g.Group("/settings")
	group.Use(authMiddleware, adminMiddleware)
	{
		group.GET("", h.Get)
		group.PATCH("", h.Update)
		group.POST("/images/:slot", h.UploadImage)
	}
}
