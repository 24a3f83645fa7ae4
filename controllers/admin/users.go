package adminController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jplao/little-shop-api/models"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// GetAllUsers lists every account, newest first.
// GET /admin/users
func GetAllUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []models.User
		if err := db.
			Select("id", "name", "email", "role", "active", "created_at").
			Order("created_at desc").
			Find(&users).Error; err != nil {
			log.WithError(err).Error("failed to fetch users")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}
		c.JSON(http.StatusOK, users)
	}
}

// SetUserActive enables or disables an account. Disabled users keep their
// data but can no longer log in and drop out of every buyer ranking.
// PUT /admin/users/:id/active
func SetUserActive(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Active *bool `json:"active" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		result := db.Model(&models.User{}).
			Where("id = ?", c.Param("id")).
			Update("active", *input.Active)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "User updated"})
	}
}

// UpdateUserRole upgrades or downgrades an account between user and
// merchant. Admins are not managed over the API.
// PUT /admin/users/:id/role
func UpdateUserRole(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Role models.Role `json:"role" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if input.Role != models.RoleUser && input.Role != models.RoleMerchant {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid role"})
			return
		}

		result := db.Model(&models.User{}).
			Where("id = ? AND role <> ?", c.Param("id"), models.RoleAdmin).
			Update("role", input.Role)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "User role updated"})
	}
}
