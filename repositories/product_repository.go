package repositories

import (
	"github.com/crpmlabs/crpm-app/models"
	"gorm.io/gorm"
)

type ProductRepository struct {
	DB *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{DB: db}
}

// Search -> with a term, matches name or status as free substrings; the
// status side intentionally accepts any text, not just the enum, so a
// search for "ava" lists every Available product. Without a term only
// Available products are returned.
func (r *ProductRepository) Search(term string) ([]models.Product, error) {
	products := []models.Product{}

	query := r.DB
	if term != "" {
		like := "%" + term + "%"
		query = query.Where("name LIKE ? OR status LIKE ?", like, like)
	} else {
		query = query.Where("status = ?", models.ProductStatusAvailable)
	}

	if err := query.Find(&products).Error; err != nil {
		return nil, wrapDBError("search products", err)
	}
	return products, nil
}

// Create -> inserts a new product with status Available. Negative price
// or stock is rejected here as well as at the binding layer.
func (r *ProductRepository) Create(name string, price float64, stock int) (*models.Product, error) {
	if price < 0 || stock < 0 {
		return nil, ErrInvalidInput
	}

	product := models.Product{
		Name:   name,
		Price:  price,
		Stock:  stock,
		Status: models.ProductStatusAvailable,
	}

	if err := r.DB.Create(&product).Error; err != nil {
		return nil, wrapDBError("create product", err)
	}
	return &product, nil
}
