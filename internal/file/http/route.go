package http

import "github.com/gin-gonic/gin"

// RegisterRoutes registers file routes.
// Serving is public: branding images are shown on the login screen before any
// token exists.
func RegisterRoutes(r gin.IRouter, handler *Handler) {
	group := r.Group("/files")

	group.GET("/:id", handler.ServeFile)
	group.GET("/:id/thumbnail", handler.ServeThumbnail)
}
