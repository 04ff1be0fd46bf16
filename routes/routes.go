package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up the Auth, User,
// Admin, and Order route groups under the /api prefix.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	api := r.Group("/api")

	// Public auth routes (no middleware)
	SetupAuthRoutes(api, db)

	// Customer routes (JWT-protected)
	SetupUserRoutes(api, db)

	// Admin routes (JWT + role-protected)
	SetupAdminRoutes(api, db)

	// Order routes (mixed customer/admin)
	SetupOrderRoutes(api, db)
}
