package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up Auth, User, Order,
// Stats and Admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, db)

	// Account routes (JWT-protected)
	SetupUserRoutes(r, db)

	// Order routes (JWT-protected)
	SetupOrderRoutes(r, db)

	// Dashboard and statistics routes (JWT-protected)
	SetupStatsRoutes(r, db)

	// Admin routes (API-key-protected)
	SetupAdminRoutes(r, db)
}
