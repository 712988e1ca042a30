package accountControllers

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/ngocthanh-dev/cafe-admin-api/models"
	"gorm.io/gorm"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserSummary is the minimal record a successful login returns.
type UserSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// Login matches the stored digest against the submitted credentials.
func Login(db *gorm.DB, username, rawPassword string) (UserSummary, error) {
	if username == "" || rawPassword == "" {
		return UserSummary{}, &models.ValidationError{Message: "username and password are required"}
	}

	var user models.User
	err := db.Select("id", "name", "role").
		Where("username = ? AND password = ?", username, HashPassword(rawPassword)).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return UserSummary{}, models.ErrInvalidCredentials
	}
	if err != nil {
		return UserSummary{}, &models.StorageError{Op: "login", Err: err}
	}

	return UserSummary{ID: user.ID, Name: user.Name, Role: user.Role}, nil
}

// generateSessionToken issues the signed token that carries the session.
// Its lifecycle is owned by the client: logout is discarding the token.
func generateSessionToken(userID string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func LoginHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		summary, err := Login(db, req.Username, req.Password)
		if err != nil {
			var vErr *models.ValidationError
			switch {
			case errors.Is(err, models.ErrInvalidCredentials):
				c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			case errors.As(err, &vErr):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
			}
			return
		}

		token, err := generateSessionToken(summary.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"token": token,
			"user":  summary,
		})
	}
}
