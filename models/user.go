package models

import "time"

type User struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"unique;not null" json:"email"`
	Username  string    `gorm:"unique;not null" json:"username"`
	Phone     string    `json:"phone"`
	Name      string    `json:"name"`
	Picture   string    `json:"picture"`
	Carts     []Cart    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"carts,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
