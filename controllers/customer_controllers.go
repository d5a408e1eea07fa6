package controllers

import (
	"net/http"
	"strconv"

	"github.com/crpmlabs/crpm-app/events"
	"github.com/crpmlabs/crpm-app/repositories"
	"github.com/crpmlabs/crpm-app/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CustomerController struct {
	Repo *repositories.CustomerRepository
}

func NewCustomerController(db *gorm.DB) *CustomerController {
	return &CustomerController{Repo: repositories.NewCustomerRepository(db)}
}

// GetCustomers -> Active customers, optionally filtered by ?search=
func (cc *CustomerController) GetCustomers(c *gin.Context) {
	term := c.Query("search")

	customers, err := cc.Repo.SearchActive(term)
	if err != nil {
		respondRepoError(c, err)
		return
	}

	if len(customers) == 0 {
		utils.RespondJSON(c, http.StatusOK, "No customers found", customers)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of customers", customers)
}

// GetAllCustomers -> every customer regardless of status, for the
// status management screen
func (cc *CustomerController) GetAllCustomers(c *gin.Context) {
	customers, err := cc.Repo.ListAll()
	if err != nil {
		respondRepoError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of all customers", customers)
}

// CreateCustomer -> inserts a new customer, status defaults to Active
func (cc *CustomerController) CreateCustomer(c *gin.Context) {
	type reqBody struct {
		Name  string `json:"name" binding:"required"`
		Email string `json:"email" binding:"required"`
		Phone string `json:"phone" binding:"required"`
	}

	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	customer, err := cc.Repo.Create(req.Name, req.Email, req.Phone)
	if err != nil {
		respondRepoError(c, err)
		return
	}

	utils.InfoLogger.Printf("New customer created (ID=%d)", customer.ID)
	events.BroadcastCustomerCreated(*customer)

	utils.RespondJSON(c, http.StatusCreated, "Customer added successfully", customer)
}

// UpdateCustomerStatus -> activate or deactivate one customer
func (cc *CustomerController) UpdateCustomerStatus(c *gin.Context) {
	idStr := c.Param("customer_id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, &CustomError{"invalid customer_id"})
		return
	}

	type reqBody struct {
		Status string `json:"status" binding:"required,oneof=Active Inactive"`
	}

	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	customer, err := cc.Repo.SetStatus(uint(id), req.Status)
	if err != nil {
		respondRepoError(c, err)
		return
	}

	utils.InfoLogger.Printf("Customer %d status -> %s", customer.ID, customer.Status)
	events.BroadcastCustomerStatus(*customer)

	utils.RespondJSON(c, http.StatusOK, "Customer status updated", customer)
}
