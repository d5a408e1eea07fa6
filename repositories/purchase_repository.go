package repositories

import (
	"errors"
	"time"

	"github.com/crpmlabs/crpm-app/models"
	"gorm.io/gorm"
)

type PurchaseRepository struct {
	DB *gorm.DB
}

func NewPurchaseRepository(db *gorm.DB) *PurchaseRepository {
	return &PurchaseRepository{DB: db}
}

// Create -> records one purchase line. purchaseDate may be zero, in
// which case today's date is used. A customer or product identifier
// that does not resolve fails with a ConstraintError and inserts
// nothing.
func (r *PurchaseRepository) Create(customerID, productID uint, quantity int, purchaseDate time.Time) (*models.Purchase, error) {
	if quantity <= 0 {
		return nil, ErrInvalidInput
	}

	if purchaseDate.IsZero() {
		now := time.Now()
		purchaseDate = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}

	purchase := models.Purchase{
		CustomerID:   customerID,
		ProductID:    productID,
		Quantity:     quantity,
		PurchaseDate: purchaseDate,
	}

	if err := r.DB.Create(&purchase).Error; err != nil {
		return nil, wrapDBError("create purchase", err)
	}
	return &purchase, nil
}

// FindByID -> one purchase with its customer and product loaded, used
// by the receipt export.
func (r *PurchaseRepository) FindByID(purchaseID uint) (*models.Purchase, error) {
	var purchase models.Purchase
	err := r.DB.Preload("Customer").Preload("Product").First(&purchase, purchaseID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, wrapDBError("load purchase", err)
	}
	return &purchase, nil
}
