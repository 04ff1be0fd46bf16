package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Darrenmartin378/MidtermLabExam/auth"
	"github.com/Darrenmartin378/MidtermLabExam/models"
)

// ValidateToken resolves the bearer token to a user identity and role
// and stores both in the request context. Requests without a valid
// token never reach the handlers behind it.
func ValidateToken(c *gin.Context) {
	tokenString := c.GetHeader("Authorization")
	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		c.Abort()
		return
	}
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")

	userID, role, err := auth.ParseToken(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
		c.Abort()
		return
	}

	c.Set("user_id", userID)
	c.Set("role", string(role))

	c.Next()
}

// RequireAdmin gates admin-only routes. Must run after ValidateToken.
func RequireAdmin(c *gin.Context) {
	if c.GetString("role") != string(models.RoleAdmin) {
		c.JSON(http.StatusForbidden, gin.H{"message": "Unauthorized"})
		c.Abort()
		return
	}
	c.Next()
}

// UserID returns the authenticated user's id from the context.
func UserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
