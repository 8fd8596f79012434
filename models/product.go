package models

import "time"

type Product struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Description string    `gorm:"not null" json:"description"`
	Details     string    `json:"details"`
	Image       string    `json:"image"`
	Price       float64   `gorm:"not null" json:"price"` // Required
	Stock       int       `gorm:"not null;default:0;check:stock >= 0" json:"stock"`
	Featured    bool      `gorm:"not null;default:false" json:"featured"`
	CategoryID  uint      `gorm:"index;not null" json:"category_id"`
	Category    Category  `json:"category,omitempty"`
	UserID      string    `gorm:"index;not null" json:"user_id"` // Owner (seller)
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
