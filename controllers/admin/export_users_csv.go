package adminController

import (
	"encoding/csv"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jplao/little-shop-api/models"
	"gorm.io/gorm"
)

// ExportUsersCSV downloads every user's email as CSV: a header row `email`
// followed by one row per user, no filtering.
// GET /admin/users/export.csv
func ExportUsersCSV(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var emails []string
		if err := db.Model(&models.User{}).Order("id").Pluck("email", &emails).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}

		c.Header("Content-Disposition", "attachment; filename=users.csv")
		c.Header("Content-Type", "text/csv")

		w := csv.NewWriter(c.Writer)
		if err := w.Write([]string{"email"}); err != nil {
			return
		}
		for _, email := range emails {
			if err := w.Write([]string{email}); err != nil {
				return
			}
		}
		w.Flush()
	}
}
