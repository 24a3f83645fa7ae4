package itemControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jplao/little-shop-api/models"
	"gorm.io/gorm"
)

type ItemInput struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Inventory   int     `json:"inventory" binding:"min=0"`
}

// GetItems returns all active items in the catalog.
// GET /items
func GetItems(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var items []models.Item
		if err := db.Where("active = ?", true).Order("id").Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch items"})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// GetItemByID returns a single active item.
// GET /items/:id
func GetItemByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID"})
			return
		}

		var item models.Item
		if err := db.Where("active = ?", true).First(&item, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve item"})
			}
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// CreateItem adds an item to the calling merchant's stock.
// POST /merchant/items
func CreateItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")

		var input ItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		item := models.Item{
			UserID:      userID.(uint),
			Name:        input.Name,
			Description: input.Description,
			Image:       input.Image,
			Price:       input.Price,
			Inventory:   input.Inventory,
			Active:      true,
		}
		if err := db.Create(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create item"})
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

// GetMerchantItems lists the calling merchant's items, inactive included.
// GET /merchant/items
func GetMerchantItems(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")

		var items []models.Item
		if err := db.Where("user_id = ?", userID).Order("id").Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch items"})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// UpdateItem edits one of the calling merchant's items.
// PUT /merchant/items/:id
func UpdateItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID"})
			return
		}

		var item models.Item
		if err := db.Where("id = ? AND user_id = ?", id, userID).First(&item).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			return
		}

		var input ItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		updates := map[string]interface{}{
			"name":        input.Name,
			"description": input.Description,
			"image":       input.Image,
			"price":       input.Price,
			"inventory":   input.Inventory,
		}
		if err := db.Model(&item).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update item"})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// SetItemActive activates or deactivates one of the merchant's items. Items
// are never hard-deleted, order history references them.
// PUT /merchant/items/:id/active
func SetItemActive(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID"})
			return
		}

		var input struct {
			Active *bool `json:"active" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		result := db.Model(&models.Item{}).
			Where("id = ? AND user_id = ?", id, userID).
			Update("active", *input.Active)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update item"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Item updated"})
	}
}
