package merchantControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jplao/little-shop-api/models"
	"github.com/jplao/little-shop-api/queries"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// ExportOrdersToExcel downloads the merchant's orders, one row per line item
// the merchant sold.
// GET /merchant/orders/export
func ExportOrdersToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		merchantID := userID.(uint)

		orders, err := queries.MerchantOrders(db, merchantID, "")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		// Header row
		headers := []string{
			"OrderID", "OrderRef", "Status", "ItemID", "ItemName",
			"Quantity", "Price", "Subtotal", "Fulfilled", "PlacedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		// Data rows: only this merchant's lines within each order
		for _, o := range orders {
			var lines []models.OrderItem
			if err := db.Preload("Item").
				Joins("JOIN items ON items.id = order_items.item_id").
				Where("order_items.order_id = ? AND items.user_id = ?", o.ID, merchantID).
				Find(&lines).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order items"})
				return
			}

			for _, line := range lines {
				row := sheet.AddRow()

				row.AddCell().SetValue(o.ID)
				row.AddCell().SetValue(o.OrderRef)
				row.AddCell().SetValue(string(o.Status))
				row.AddCell().SetValue(line.ItemID)
				row.AddCell().SetValue(line.Item.Name)
				row.AddCell().SetValue(line.Quantity)
				row.AddCell().SetValue(line.Price)
				row.AddCell().SetValue(line.Subtotal())
				row.AddCell().SetValue(line.Fulfilled)
				row.AddCell().SetValue(o.CreatedAt.Format("2006-01-02 15:04:05"))
			}
		}

		// Set response headers for download
		c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		// Write file to response
		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
