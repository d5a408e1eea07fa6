package models

import "time"

const (
	ProductStatusAvailable   = "Available"
	ProductStatusUnavailable = "Unavailable"
)

type Product struct {
	ID        uint      `gorm:"primaryKey" json:"product_id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Price     float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	Stock     int       `gorm:"not null" json:"stock"`
	Status    string    `gorm:"type:varchar(20);not null;default:'Available'" json:"status"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
