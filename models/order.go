package models

import "time"

type OrderStatus string

const (
	// Order statuses (fulfillment flow)
	OrderStatusPending   OrderStatus = "pending"   // Order placed, items not yet all fulfilled
	OrderStatusPackaged  OrderStatus = "packaged"  // Every line item fulfilled by its merchant
	OrderStatusShipped   OrderStatus = "shipped"   // Out for delivery
	OrderStatusCancelled OrderStatus = "cancelled" // Cancelled before shipping
)

type Order struct {
	ID        uint        `gorm:"primaryKey" json:"id"`
	OrderRef  string      `gorm:"uniqueIndex" json:"order_ref"`
	UserID    uint        `gorm:"index;not null" json:"user_id"` // the buyer
	User      User        `gorm:"foreignKey:UserID" json:"user,omitempty"`
	AddressID uint        `gorm:"index;not null" json:"address_id"` // shipping destination
	Address   Address     `gorm:"foreignKey:AddressID" json:"address,omitempty"`
	Items     []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
	Status    OrderStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// OrderItem snapshots the item price at purchase time. UpdatedAt advances
// when the merchant fulfills the line, so updated_at - created_at is the
// fulfillment latency.
type OrderItem struct {
	ID        uint      `gorm:"primaryKey"`
	OrderID   uint      `gorm:"index" json:"order_id"`
	ItemID    uint      `gorm:"index" json:"item_id"`
	Item      Item      `gorm:"foreignKey:ItemID" json:"item,omitempty"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	Price     float64   `gorm:"not null" json:"price"`
	Fulfilled bool      `gorm:"default:false" json:"fulfilled"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Subtotal is derived, never stored.
func (oi OrderItem) Subtotal() float64 {
	return oi.Price * float64(oi.Quantity)
}
