package repositories

import (
	"errors"

	"github.com/crpmlabs/crpm-app/models"
	"gorm.io/gorm"
)

type CustomerRepository struct {
	DB *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{DB: db}
}

// SearchActive -> Active customers, optionally filtered by a substring
// match on name, email or phone. An empty result is not an error.
func (r *CustomerRepository) SearchActive(term string) ([]models.Customer, error) {
	customers := []models.Customer{}

	query := r.DB.Where("status = ?", models.CustomerStatusActive)
	if term != "" {
		like := "%" + term + "%"
		query = query.Where("(name LIKE ? OR email LIKE ? OR phone LIKE ?)", like, like, like)
	}

	if err := query.Find(&customers).Error; err != nil {
		return nil, wrapDBError("search customers", err)
	}
	return customers, nil
}

// ListAll -> every customer regardless of status, for the status
// management screen.
func (r *CustomerRepository) ListAll() ([]models.Customer, error) {
	customers := []models.Customer{}
	if err := r.DB.Find(&customers).Error; err != nil {
		return nil, wrapDBError("list customers", err)
	}
	return customers, nil
}

// Create -> inserts a new customer with status Active. The fields are
// stored as given, no format validation on email or phone.
func (r *CustomerRepository) Create(name, email, phone string) (*models.Customer, error) {
	customer := models.Customer{
		Name:   name,
		Email:  email,
		Phone:  phone,
		Status: models.CustomerStatusActive,
	}

	if err := r.DB.Create(&customer).Error; err != nil {
		return nil, wrapDBError("create customer", err)
	}
	return &customer, nil
}

// SetStatus -> flips a customer between Active and Inactive. Unknown
// identifiers come back as ErrNotFound.
func (r *CustomerRepository) SetStatus(customerID uint, status string) (*models.Customer, error) {
	if status != models.CustomerStatusActive && status != models.CustomerStatusInactive {
		return nil, ErrInvalidInput
	}

	var customer models.Customer
	if err := r.DB.First(&customer, customerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, wrapDBError("load customer", err)
	}

	customer.Status = status
	if err := r.DB.Save(&customer).Error; err != nil {
		return nil, wrapDBError("update customer status", err)
	}
	return &customer, nil
}
