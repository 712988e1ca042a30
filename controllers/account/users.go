package accountControllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ngocthanh-dev/cafe-admin-api/models"
	"gorm.io/gorm"
)

// GET /admin/users
func GetAllUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []models.User
		if err := db.
			Select("id", "username", "name", "email", "phone", "role"). // never the digest
			Order("id").
			Find(&users).Error; err != nil {
			log.Println("failed to fetch users:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}
		c.JSON(http.StatusOK, users)
	}
}
