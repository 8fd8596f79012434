package models

import "time"

type Cart struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    string     `gorm:"not null;index:idx_carts_user_active,unique,where:paid = false" json:"user_id"` // Enforces ONE unpaid cart per user
	Paid      bool       `gorm:"not null;default:false" json:"paid"`
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items,omitempty"` // Cascade delete items if cart is deleted
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type CartItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CartID    uint      `gorm:"not null;uniqueIndex:idx_cart_items_cart_product" json:"cart_id"`
	ProductID uint      `gorm:"not null;uniqueIndex:idx_cart_items_cart_product" json:"product_id"` // One line per (cart, product)
	Quantity  int       `gorm:"not null;check:quantity > 0" json:"quantity"`
	AddedAt   time.Time `json:"added_at"`
}
