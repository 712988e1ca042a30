package accountControllers

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ngocthanh-dev/cafe-admin-api/models"
	"gorm.io/gorm"
)

var (
	emailPattern = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.\w+$`)
	phonePattern = regexp.MustCompile(`^(0|\+84)\d{9,10}$`)
)

type RegisterRequest struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
}

// HashPassword returns the sha256 hex digest stored in place of the plaintext.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// generateEmployeeID reads the highest existing NV-prefixed id and increments
// its numeric suffix. When the scan fails it degrades to a random suffix in
// [1, 999] rather than refusing the registration.
func generateEmployeeID(db *gorm.DB) string {
	var ids []string
	err := db.Model(&models.User{}).
		Where("id LIKE ?", "NV%").
		Order("id DESC").
		Limit(1).
		Pluck("id", &ids).Error
	if err != nil {
		log.Println("employee id scan failed, falling back to random suffix:", err)
		return fmt.Sprintf("NV%03d", rand.Intn(999)+1)
	}

	if len(ids) == 0 {
		return "NV001"
	}
	lastID := ids[0]
	n, err := strconv.Atoi(lastID[2:])
	if err != nil {
		log.Println("unparseable employee id", lastID, "- falling back to random suffix")
		return fmt.Sprintf("NV%03d", rand.Intn(999)+1)
	}
	return fmt.Sprintf("NV%03d", n+1)
}

// Register validates the request, assigns the next employee id and inserts
// the account with the staff role.
func Register(db *gorm.DB, req RegisterRequest) (string, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)

	if req.Username == "" || req.Password == "" || req.ConfirmPassword == "" ||
		req.Name == "" || req.Email == "" || req.Phone == "" {
		return "", &models.ValidationError{Message: "all fields are required"}
	}
	if req.Password != req.ConfirmPassword {
		return "", &models.ValidationError{Message: "password confirmation does not match"}
	}
	if len(req.Password) < 6 {
		return "", &models.ValidationError{Message: "password must be at least 6 characters"}
	}
	if !emailPattern.MatchString(req.Email) {
		return "", &models.ValidationError{Message: "invalid email address"}
	}
	if !phonePattern.MatchString(req.Phone) {
		return "", &models.ValidationError{Message: "invalid phone number, expected 0 or +84 followed by 9-10 digits"}
	}

	var count int64
	if err := db.Model(&models.User{}).Where("username = ?", req.Username).Count(&count).Error; err != nil {
		return "", &models.StorageError{Op: "register", Err: err}
	}
	if count > 0 {
		return "", &models.DuplicateError{Field: "username"}
	}
	if err := db.Model(&models.User{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
		return "", &models.StorageError{Op: "register", Err: err}
	}
	if count > 0 {
		return "", &models.DuplicateError{Field: "email"}
	}

	user := models.User{
		ID:       generateEmployeeID(db),
		Username: req.Username,
		Password: HashPassword(req.Password),
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Role:     models.RoleStaff,
	}
	if err := db.Create(&user).Error; err != nil {
		return "", &models.StorageError{Op: "register", Err: err}
	}
	return user.ID, nil
}

func RegisterHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		id, err := Register(db, req)
		if err != nil {
			var vErr *models.ValidationError
			var dErr *models.DuplicateError
			switch {
			case errors.As(err, &vErr):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			case errors.As(err, &dErr):
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
			}
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message":     "Registration successful",
			"employee_id": id,
		})
	}
}
