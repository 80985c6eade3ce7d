package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/reservalasala/room-booking-backend/internal/auth"
	"github.com/reservalasala/room-booking-backend/internal/user"
)

// RequireAdministrador ensures the authenticated user holds the administrator
// role. It MUST be used after auth.AuthRequired middleware. The role is read
// from the database, not the token, so a demotion applies immediately.
func RequireAdministrador(userService user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := auth.GetUserID(c)
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		u, err := userService.GetByID(c.Request.Context(), userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
			return
		}

		if !u.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden: administrator access required"})
			return
		}

		c.Next()
	}
}
