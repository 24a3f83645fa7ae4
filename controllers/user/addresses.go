package userControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jplao/little-shop-api/models"
	"github.com/jplao/little-shop-api/queries"
	"gorm.io/gorm"
)

type AddressInput struct {
	Nickname      string `json:"nickname"`
	StreetAddress string `json:"street_address" binding:"required"`
	City          string `json:"city" binding:"required"`
	State         string `json:"state" binding:"required"`
	Zip           string `json:"zip" binding:"required"`
}

func parseID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// GET /profile/addresses
func ListAddresses(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")
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
		c.JSON(http.StatusOK, addresses)
	}
}

// POST /profile/addresses
func CreateAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")

		var input AddressInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		address := models.Address{
			UserID:        userID.(uint),
			Nickname:      input.Nickname,
			StreetAddress: input.StreetAddress,
			City:          input.City,
			State:         input.State,
			Zip:           input.Zip,
			Active:        true,
		}
		if err := db.Create(&address).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create address"})
			return
		}
		c.JSON(http.StatusCreated, address)
	}
}

// PUT /profile/addresses/:id
func UpdateAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		addressID, ok := parseID(c, "id")
		if !ok {
			notFound(c)
			return
		}

		var address models.Address
		if err := db.Where("id = ? AND user_id = ?", addressID, userID).
			First(&address).Error; err != nil {
			notFound(c)
			return
		}

		var input AddressInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		updates := map[string]interface{}{
			"nickname":       input.Nickname,
			"street_address": input.StreetAddress,
			"city":           input.City,
			"state":          input.State,
			"zip":            input.Zip,
		}
		if err := db.Model(&address).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update address"})
			return
		}
		c.JSON(http.StatusOK, address)
	}
}

// PUT /profile/addresses/:id/default
func SetDefaultAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		addressID, ok := parseID(c, "id")
		if !ok {
			notFound(c)
			return
		}

		var address models.Address
		if err := db.Where("id = ? AND user_id = ? AND active = ?", addressID, userID, true).
			First(&address).Error; err != nil {
			notFound(c)
			return
		}

		if err := db.Model(&models.User{}).Where("id = ?", userID).
			Update("default_address_id", address.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set default address"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Default address updated"})
	}
}

// DELETE /profile/addresses/:id
//
// Addresses are never hard-deleted, old orders still reference them. A
// deactivated default also stops being the default.
func DeactivateAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		addressID, ok := parseID(c, "id")
		if !ok {
			notFound(c)
			return
		}

		var address models.Address
		if err := db.Where("id = ? AND user_id = ?", addressID, userID).
			First(&address).Error; err != nil {
			notFound(c)
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&address).Update("active", false).Error; err != nil {
				return err
			}
			return tx.Model(&models.User{}).
				Where("id = ? AND default_address_id = ?", userID, address.ID).
				Update("default_address_id", nil).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove address"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Address removed"})
	}
}
