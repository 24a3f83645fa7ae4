package userControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jplao/little-shop-api/models"
	"github.com/jplao/little-shop-api/queries"
	"gorm.io/gorm"
)

type UpdateUserInput struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

// CanViewProfile is the single access check for profile pages: a profile is
// visible to its owner and to admins, nobody else. Callers must run it
// before fetching any data and answer "no" with a plain 404 so the response
// never distinguishes "exists but forbidden" from "does not exist".
func CanViewProfile(viewerID uint, viewerRole models.Role, targetID uint) bool {
	if viewerRole == models.RoleAdmin {
		return true
	}
	return viewerID == targetID
}

// notFound is the uniform response for unauthorized or missing profiles.
func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
}

// GET /users/:id
func GetUserProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		targetID, ok := parseID(c, "id")
		if !ok {
			notFound(c)
			return
		}

		viewerID, exists := c.Get("user_id")
		if !exists {
			notFound(c)
			return
		}
		roleVal, _ := c.Get("role")
		role, _ := roleVal.(models.Role)

		if !CanViewProfile(viewerID.(uint), role, targetID) {
			notFound(c)
			return
		}

		renderProfile(c, db, targetID)
	}
}

// GET /profile
func GetProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("user_id")
		if !exists {
			notFound(c)
			return
		}
		renderProfile(c, db, userID.(uint))
	}
}

func renderProfile(c *gin.Context, db *gorm.DB, userID uint) {
	var user models.User
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		notFound(c)
		return
	}

	addresses, err := queries.ActiveWithDefaultFirst(db, &user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch addresses"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":        user.ID,
		"name":      user.Name,
		"email":     user.Email,
		"role":      user.Role,
		"active":    user.Active,
		"addresses": addresses,
	})
}

// PUT /profile
func UpdateUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		var user models.User

		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			notFound(c)
			return
		}

		var input UpdateUserInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		updates := make(map[string]interface{})
		if input.Name != nil {
			updates["name"] = *input.Name
		}
		if input.Email != nil {
			var existing models.User
			if err := db.Where("email = ? AND id <> ?", *input.Email, user.ID).
				First(&existing).Error; err == nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Email is already taken"})
				return
			}
			updates["email"] = *input.Email
		}

		if len(updates) > 0 {
			if err := db.Model(&user).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
				return
			}
		}

		c.JSON(http.StatusOK, user)
	}
}
