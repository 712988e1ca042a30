package routes

import (
	"github.com/gin-gonic/gin"
	accountControllers "github.com/ngocthanh-dev/cafe-admin-api/controllers/account"
	productcontroller "github.com/ngocthanh-dev/cafe-admin-api/controllers/product"
	reportControllers "github.com/ngocthanh-dev/cafe-admin-api/controllers/report"
	"github.com/ngocthanh-dev/cafe-admin-api/middleware"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires API-key middleware.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		// Account management
		adminGroup.GET("/users", accountControllers.GetAllUsers(db))

		// Catalog management
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(db))
			productAdmin.GET("", productcontroller.GetProducts(db))
			productAdmin.GET("/:id", productcontroller.GetProductByID(db))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(db))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(db))
		}

		// Reporting
		adminGroup.GET("/reports/export-excel", reportControllers.ExportReportHandler(db))
	}
}
