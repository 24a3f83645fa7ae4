package queries

import (
	"errors"
	"fmt"

	"github.com/jplao/little-shop-api/models"
	"gorm.io/gorm"
)

// DefaultAddress returns the user's default address, or nil when no default
// is set or the stored id is stale (deleted or reassigned address).
func DefaultAddress(db *gorm.DB, user *models.User) (*models.Address, error) {
	if user.DefaultAddressID == nil {
		return nil, nil
	}

	var address models.Address
	err := db.Where("id = ? AND user_id = ?", *user.DefaultAddressID, user.ID).
		First(&address).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &address, nil
}

// ActiveWithDefaultFirst returns the user's active addresses with the default
// address, when set, moved to the front. The default is never duplicated; the
// remaining addresses keep their store-assigned (id) order. Callers depend on
// the ordering, this is a sequence rather than a set.
func ActiveWithDefaultFirst(db *gorm.DB, user *models.User) ([]models.Address, error) {
	query := db.Where("user_id = ? AND active = ?", user.ID, true)

	if user.DefaultAddressID != nil {
		// Single query: the CASE ranks the default ahead of everything else.
		query = query.Order(fmt.Sprintf("CASE WHEN id = %d THEN 0 ELSE 1 END, id", *user.DefaultAddressID))
	} else {
		query = query.Order("id")
	}

	var addresses []models.Address
	if err := query.Find(&addresses).Error; err != nil {
		return nil, err
	}
	return addresses, nil
}
