package routes

import (
	"github.com/gin-gonic/gin"
	accountControllers "github.com/ngocthanh-dev/cafe-admin-api/controllers/account"
	"github.com/ngocthanh-dev/cafe-admin-api/middleware"
	"gorm.io/gorm"
)

func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	me := r.Group("/me")
	me.Use(middleware.ValidateToken)
	{
		me.GET("", accountControllers.MeHandler(db))
		me.PUT("", accountControllers.UpdateProfileHandler(db))
		me.PUT("/password", accountControllers.ChangePasswordHandler(db))
	}
}
