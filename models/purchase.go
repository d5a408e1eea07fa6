package models

import "time"

type Purchase struct {
	ID           uint      `gorm:"primaryKey" json:"purchase_id"`
	CustomerID   uint      `gorm:"not null;index" json:"customer_id"`
	Customer     Customer  `gorm:"foreignKey:CustomerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"customer,omitempty"`
	ProductID    uint      `gorm:"not null;index" json:"product_id"`
	Product      Product   `gorm:"foreignKey:ProductID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"product,omitempty"`
	Quantity     int       `gorm:"not null" json:"quantity"`
	PurchaseDate time.Time `gorm:"type:date;not null" json:"purchase_date"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null" json:"updated_at"`
}
