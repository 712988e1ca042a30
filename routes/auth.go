package routes

import (
	"github.com/gin-gonic/gin"
	accountControllers "github.com/ngocthanh-dev/cafe-admin-api/controllers/account"
	"gorm.io/gorm"
)

func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", accountControllers.RegisterHandler(db))
		auth.POST("/login", accountControllers.LoginHandler(db))
	}
}
