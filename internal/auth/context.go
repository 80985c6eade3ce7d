package auth

import "github.com/gin-gonic/gin"

// GetUserID returns the authenticated user's ID or empty string.
func GetUserID(c *gin.Context) string {
	return getString(c, "userID")
}

// GetUserEmail returns the authenticated user's email or empty string.
func GetUserEmail(c *gin.Context) string {
	return getString(c, "userEmail")
}

// GetUserRole returns the role claim carried by the token, or empty string.
func GetUserRole(c *gin.Context) string {
	return getString(c, "userRole")
}

func getString(c *gin.Context, key string) string {
	if v, ok := c.Get(key); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
