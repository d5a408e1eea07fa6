package models

import (
	"time"
)

const (
	CustomerStatusActive   = "Active"
	CustomerStatusInactive = "Inactive"
)

type Customer struct {
	ID        uint      `gorm:"primaryKey" json:"customer_id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Email     string    `gorm:"type:varchar(255);not null" json:"email"`
	Phone     string    `gorm:"type:varchar(50);not null" json:"phone"`
	Status    string    `gorm:"type:varchar(20);not null;default:'Active'" json:"status"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
