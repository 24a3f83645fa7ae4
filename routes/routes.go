package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry‐point that wires up Auth, User, Merchant,
// and Admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Public Auth routes (no middleware)
	SetupAuthRoutes(r, db)

	// User routes (JWT‐protected)
	SetupUserRoutes(r, db)

	// Merchant routes (JWT + role gate)
	SetupMerchantRoutes(r, db)

	// Admin routes (JWT + role gate)
	SetupAdminRoutes(r, db)
}
