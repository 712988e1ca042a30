package productcontroller

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ngocthanh-dev/cafe-admin-api/models"
	"gorm.io/gorm"
)

// GetProducts lists the catalog with optional name search and sorting.
// Query params: search, sort_by (id|name|price|stock), order (asc|desc).
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		search := c.Query("search")
		sortBy := c.DefaultQuery("sort_by", "id")
		sortOrder := strings.ToLower(c.DefaultQuery("order", "asc"))
		if sortOrder != "asc" && sortOrder != "desc" {
			sortOrder = "asc"
		}
		switch sortBy {
		case "id", "name", "price", "stock":
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sort_by"})
			return
		}

		query := db.Model(&models.Product{})
		if search != "" {
			query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
		}

		var products []models.Product
		if err := query.Order(fmt.Sprintf("%s %s", sortBy, sortOrder)).Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}
