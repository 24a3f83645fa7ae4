package models

import "time"

type Role string

const (
	RoleUser     Role = "user"
	RoleMerchant Role = "merchant"
	RoleAdmin    Role = "admin"
)

type User struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Name             string    `gorm:"not null" json:"name"`
	Email            string    `gorm:"unique;not null" json:"email"`
	PasswordDigest   string    `gorm:"not null" json:"-"`
	Role             Role      `gorm:"type:VARCHAR(20);default:'user'" json:"role"`
	Active           bool      `json:"active"`
	DefaultAddressID *uint     `json:"default_address_id"`
	Addresses        []Address `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"addresses,omitempty"`
	Orders           []Order   `gorm:"foreignKey:UserID" json:"orders,omitempty"`
	Items            []Item    `gorm:"foreignKey:UserID" json:"items,omitempty"`
	Cart             *Cart     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"cart,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
