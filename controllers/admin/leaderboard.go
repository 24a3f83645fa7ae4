package adminController

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jplao/little-shop-api/queries"
	"gorm.io/gorm"
)

const defaultLeaderboardSize = 3

func leaderboardSize(c *gin.Context) int {
	if n, err := strconv.Atoi(c.Query("limit")); err == nil && n > 0 {
		return n
	}
	return defaultLeaderboardSize
}

// GET /admin/leaderboards/top-merchants
func TopMerchants(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := queries.TopMerchants(db, leaderboardSize(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch leaderboard"})
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}

// GET /admin/leaderboards/popular-merchants
func PopularMerchants(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := queries.PopularMerchants(db, leaderboardSize(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch leaderboard"})
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}

// GET /admin/leaderboards/fastest-merchants
func FastestMerchants(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := queries.FastestMerchants(db, leaderboardSize(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch leaderboard"})
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}

// GET /admin/leaderboards/slowest-merchants
func SlowestMerchants(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := queries.SlowestMerchants(db, leaderboardSize(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch leaderboard"})
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}
