package routes

import (
	"github.com/gin-gonic/gin"
	statsControllers "github.com/ngocthanh-dev/cafe-admin-api/controllers/stats"
	"github.com/ngocthanh-dev/cafe-admin-api/middleware"
	"gorm.io/gorm"
)

func SetupStatsRoutes(r *gin.Engine, db *gorm.DB) {
	stats := r.Group("/stats")
	stats.Use(middleware.ValidateToken)
	{
		stats.GET("/dashboard", statsControllers.DashboardHandler(db))
		stats.GET("/summary", statsControllers.SummaryHandler(db))
	}
}
