package controllers

import (
	"net/http"
	"time"

	"github.com/crpmlabs/crpm-app/events"
	"github.com/crpmlabs/crpm-app/repositories"
	"github.com/crpmlabs/crpm-app/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PurchaseController struct {
	Repo *repositories.PurchaseRepository
}

func NewPurchaseController(db *gorm.DB) *PurchaseController {
	return &PurchaseController{Repo: repositories.NewPurchaseRepository(db)}
}

// CreatePurchase -> records one purchase line. purchase_date is
// optional (YYYY-MM-DD), defaulting to today. Unresolvable customer or
// product identifiers come back as 409 and insert nothing.
func (pc *PurchaseController) CreatePurchase(c *gin.Context) {
	type reqBody struct {
		CustomerID   uint   `json:"customer_id" binding:"required"`
		ProductID    uint   `json:"product_id" binding:"required"`
		Quantity     int    `json:"quantity" binding:"required,gt=0"`
		PurchaseDate string `json:"purchase_date"`
	}

	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var purchaseDate time.Time
	if req.PurchaseDate != "" {
		parsed, err := time.Parse("2006-01-02", req.PurchaseDate)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, &CustomError{"purchase_date must be YYYY-MM-DD"})
			return
		}
		purchaseDate = parsed
	}

	purchase, err := pc.Repo.Create(req.CustomerID, req.ProductID, req.Quantity, purchaseDate)
	if err != nil {
		respondRepoError(c, err)
		return
	}

	utils.InfoLogger.Printf("Purchase recorded (ID=%d, customer=%d, product=%d, qty=%d)",
		purchase.ID, purchase.CustomerID, purchase.ProductID, purchase.Quantity)
	events.BroadcastPurchaseCreated(*purchase)

	utils.RespondJSON(c, http.StatusCreated, "Purchase recorded successfully", purchase)
}
