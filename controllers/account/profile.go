package accountControllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ngocthanh-dev/cafe-admin-api/models"
	"gorm.io/gorm"
)

type UserDetail struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
}

// UnknownUser is returned whenever a profile cannot be loaded, so the caller
// always has something renderable.
var UnknownUser = UserDetail{
	ID:       "Unknown",
	Username: "unknown",
	Name:     "Unknown User",
	Email:    "unknown@example.com",
	Phone:    "N/A",
	Role:     "User",
}

// GetUserInfo loads the full profile for an id. It never fails: any lookup
// problem yields the UnknownUser sentinel instead of an error.
func GetUserInfo(db *gorm.DB, userID string) UserDetail {
	var user models.User
	err := db.Select("id", "username", "name", "email", "phone", "role").
		Where("id = ?", userID).
		First(&user).Error
	if err != nil {
		return UnknownUser
	}
	return UserDetail{
		ID:       user.ID,
		Username: user.Username,
		Name:     user.Name,
		Email:    user.Email,
		Phone:    user.Phone,
		Role:     user.Role,
	}
}

type UpdateProfileRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

// UpdateProfile applies a partial update to the profile fields.
func UpdateProfile(db *gorm.DB, userID string, req UpdateProfileRequest) error {
	var user models.User
	err := db.First(&user, "id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ErrInvalidCredentials
	}
	if err != nil {
		return &models.StorageError{Op: "load profile", Err: err}
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return &models.ValidationError{Message: "name must not be empty"}
		}
		updates["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		if !emailPattern.MatchString(*req.Email) {
			return &models.ValidationError{Message: "invalid email address"}
		}
		updates["email"] = *req.Email
	}
	if req.Phone != nil {
		if !phonePattern.MatchString(*req.Phone) {
			return &models.ValidationError{Message: "invalid phone number"}
		}
		updates["phone"] = *req.Phone
	}

	if len(updates) == 0 {
		return nil
	}
	if err := db.Model(&user).Updates(updates).Error; err != nil {
		return &models.StorageError{Op: "update profile", Err: err}
	}
	return nil
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// ChangePassword verifies the old digest before storing the new one.
func ChangePassword(db *gorm.DB, userID, oldPassword, newPassword string) error {
	if oldPassword == "" || newPassword == "" {
		return &models.ValidationError{Message: "old and new password are required"}
	}
	if len(newPassword) < 6 {
		return &models.ValidationError{Message: "password must be at least 6 characters"}
	}

	var user models.User
	err := db.Where("id = ? AND password = ?", userID, HashPassword(oldPassword)).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ErrInvalidCredentials
	}
	if err != nil {
		return &models.StorageError{Op: "change password", Err: err}
	}

	if err := db.Model(&user).Update("password", HashPassword(newPassword)).Error; err != nil {
		return &models.StorageError{Op: "change password", Err: err}
	}
	return nil
}

// currentUserID pulls the id the auth middleware stored in the context.
func currentUserID(c *gin.Context) string {
	value, _ := c.Get("user_id")
	id, _ := value.(string)
	return id
}

// GET /me
func MeHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, GetUserInfo(db, currentUserID(c)))
	}
}

// PUT /me
func UpdateProfileHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateProfileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := UpdateProfile(db, currentUserID(c), req); err != nil {
			writeAccountError(c, err)
			return
		}
		c.JSON(http.StatusOK, GetUserInfo(db, currentUserID(c)))
	}
}

// PUT /me/password
func ChangePasswordHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ChangePasswordRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := ChangePassword(db, currentUserID(c), req.OldPassword, req.NewPassword); err != nil {
			writeAccountError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully"})
	}
}

func writeAccountError(c *gin.Context, err error) {
	var vErr *models.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Request failed"})
	}
}
