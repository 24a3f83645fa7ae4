package queries

import (
	"errors"

	"github.com/jplao/little-shop-api/models"
	"gorm.io/gorm"
)

// Grouping dimensions accepted by TopShipping.
const (
	ShippingByState = "state"
	ShippingByCity  = "city"
)

// MerchantOrders returns the distinct orders containing at least one of the
// merchant's items, newest first. Pass an empty status for no status filter.
func MerchantOrders(db *gorm.DB, merchantID uint, status models.OrderStatus) ([]models.Order, error) {
	query := db.Model(&models.Order{}).
		Distinct("orders.*").
		Joins("JOIN order_items ON order_items.order_id = orders.id").
		Joins("JOIN items ON items.id = order_items.item_id").
		Where("items.user_id = ?", merchantID)

	if status != "" {
		query = query.Where("orders.status = ?", status)
	}

	var orders []models.Order
	if err := query.Order("orders.id DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// MerchantForOrder reports whether the merchant sold at least one item
// within the given order.
func MerchantForOrder(db *gorm.DB, merchantID, orderID uint) (bool, error) {
	var count int64
	err := db.Model(&models.OrderItem{}).
		Joins("JOIN items ON items.id = order_items.item_id").
		Where("order_items.order_id = ? AND items.user_id = ?", orderID, merchantID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// TotalItemsSold sums the quantities of the merchant's fulfilled line items
// in non-cancelled orders.
func TotalItemsSold(db *gorm.DB, merchantID uint) (int64, error) {
	var total int64
	err := db.Model(&models.OrderItem{}).
		Select("COALESCE(SUM(order_items.quantity), 0)").
		Joins("JOIN items ON items.id = order_items.item_id").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("items.user_id = ? AND order_items.fulfilled = ? AND orders.status <> ?",
			merchantID, true, models.OrderStatusCancelled).
		Scan(&total).Error
	return total, err
}

// TotalInventory sums the merchant's current stock across all their items.
// This is a static stock count, no order filter applies.
func TotalInventory(db *gorm.DB, merchantID uint) (int64, error) {
	var total int64
	err := db.Model(&models.Item{}).
		Select("COALESCE(SUM(inventory), 0)").
		Where("user_id = ?", merchantID).
		Scan(&total).Error
	return total, err
}

// TopShippingStates returns the top-n states by fulfilled shipments of the
// merchant's items.
func TopShippingStates(db *gorm.DB, merchantID uint, n int) ([]ShippingLocation, error) {
	return TopShipping(db, merchantID, ShippingByState, n)
}

// TopShippingCities returns the top-n cities by fulfilled shipments of the
// merchant's items.
func TopShippingCities(db *gorm.DB, merchantID uint, n int) ([]ShippingLocation, error) {
	return TopShipping(db, merchantID, ShippingByCity, n)
}

// TopShipping ranks the values of a shipping-address dimension (state or
// city) by count of the merchant's fulfilled, non-cancelled line items
// shipped there. The dimension is validated against a closed set, it is
// interpolated into the query.
func TopShipping(db *gorm.DB, merchantID uint, dimension string, n int) ([]ShippingLocation, error) {
	switch dimension {
	case ShippingByState, ShippingByCity:
	default:
		return nil, errors.New("invalid shipping dimension: " + dimension)
	}

	rows := []ShippingLocation{}
	err := db.Model(&models.OrderItem{}).
		Select("addresses."+dimension+" AS location, COUNT(order_items.id) AS shipment_count").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Joins("JOIN addresses ON addresses.id = orders.address_id").
		Joins("JOIN items ON items.id = order_items.item_id").
		Where("items.user_id = ? AND order_items.fulfilled = ? AND orders.status <> ?",
			merchantID, true, models.OrderStatusCancelled).
		Group("location").
		Order("shipment_count DESC, location ASC").
		Limit(n).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// TopActiveUser returns the single most active buyer (highest count of
// distinct orders) among active users who bought from this merchant, or nil
// when the merchant has no qualifying sales. Ties break by buyer name
// ascending so the result is deterministic.
func TopActiveUser(db *gorm.DB, merchantID uint) (*ActiveUser, error) {
	var rows []ActiveUser
	err := db.Model(&models.OrderItem{}).
		Select("users.id AS user_id, users.name AS name, COUNT(DISTINCT orders.id) AS order_count").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Joins("JOIN users ON users.id = orders.user_id").
		Joins("JOIN items ON items.id = order_items.item_id").
		Where("items.user_id = ? AND users.active = ? AND order_items.fulfilled = ? AND orders.status <> ?",
			merchantID, true, true, models.OrderStatusCancelled).
		Group("users.id, users.name").
		Order("order_count DESC, users.name ASC").
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

// BiggestOrder returns the order with the highest total line-item quantity
// for this merchant's items, or nil when there are no qualifying sales.
// Ties break by order id ascending.
func BiggestOrder(db *gorm.DB, merchantID uint) (*OrderVolume, error) {
	var rows []OrderVolume
	err := db.Model(&models.OrderItem{}).
		Select("orders.id AS order_id, SUM(order_items.quantity) AS total_quantity").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Joins("JOIN items ON items.id = order_items.item_id").
		Where("items.user_id = ? AND order_items.fulfilled = ? AND orders.status <> ?",
			merchantID, true, models.OrderStatusCancelled).
		Group("orders.id").
		Order("total_quantity DESC, orders.id ASC").
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

// TopBuyers returns the merchant's top-n active buyers by total spend
// (quantity * price summed over fulfilled, non-cancelled line items).
func TopBuyers(db *gorm.DB, merchantID uint, n int) ([]TopBuyer, error) {
	rows := []TopBuyer{}
	err := db.Model(&models.OrderItem{}).
		Select("users.id AS user_id, users.name AS name, users.email AS email, SUM(order_items.quantity * order_items.price) AS total_spent").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Joins("JOIN users ON users.id = orders.user_id").
		Joins("JOIN items ON items.id = order_items.item_id").
		Where("items.user_id = ? AND users.active = ? AND order_items.fulfilled = ? AND orders.status <> ?",
			merchantID, true, true, models.OrderStatusCancelled).
		Group("users.id, users.name, users.email").
		Order("total_spent DESC, users.name ASC").
		Limit(n).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// PreviousBuyers returns the distinct emails of active users who have ever
// bought from this merchant, in email order. Unlike the sales aggregates it
// counts unfulfilled and cancelled purchases too.
func PreviousBuyers(db *gorm.DB, merchantID uint) ([]string, error) {
	emails := []string{}
	err := db.Model(&models.User{}).
		Distinct().
		Joins("JOIN orders ON orders.user_id = users.id").
		Joins("JOIN order_items ON order_items.order_id = orders.id").
		Joins("JOIN items ON items.id = order_items.item_id").
		Where("items.user_id = ? AND users.active = ?", merchantID, true).
		Order("users.email").
		Pluck("users.email", &emails).Error
	if err != nil {
		return nil, err
	}
	return emails, nil
}

// NeverOrdered returns the emails of active users excluding the merchant
// themselves and excluding everyone in previous, in email order.
func NeverOrdered(db *gorm.DB, selfID uint, previous []string) ([]string, error) {
	query := db.Model(&models.User{}).
		Where("active = ? AND id <> ?", true, selfID)

	if len(previous) > 0 {
		query = query.Where("email NOT IN ?", previous)
	}

	emails := []string{}
	if err := query.Order("email").Pluck("email", &emails).Error; err != nil {
		return nil, err
	}
	return emails, nil
}
