package controllers

import (
	"net/http"

	"github.com/crpmlabs/crpm-app/events"
	"github.com/crpmlabs/crpm-app/repositories"
	"github.com/crpmlabs/crpm-app/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProductController struct {
	Repo *repositories.ProductRepository
}

func NewProductController(db *gorm.DB) *ProductController {
	return &ProductController{Repo: repositories.NewProductRepository(db)}
}

// GetProducts -> with ?search= matches name or status as substrings,
// without it lists Available products only
func (pc *ProductController) GetProducts(c *gin.Context) {
	term := c.Query("search")

	products, err := pc.Repo.Search(term)
	if err != nil {
		respondRepoError(c, err)
		return
	}

	if len(products) == 0 {
		utils.RespondJSON(c, http.StatusOK, "No products found", products)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of products", products)
}

// CreateProduct -> inserts a new product, status defaults to Available
func (pc *ProductController) CreateProduct(c *gin.Context) {
	type reqBody struct {
		Name  string   `json:"name" binding:"required"`
		Price *float64 `json:"price" binding:"required,gte=0"`
		Stock *int     `json:"stock" binding:"required,gte=0"`
	}

	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	product, err := pc.Repo.Create(req.Name, *req.Price, *req.Stock)
	if err != nil {
		respondRepoError(c, err)
		return
	}

	utils.InfoLogger.Printf("New product created (ID=%d)", product.ID)
	events.BroadcastProductCreated(*product)

	utils.RespondJSON(c, http.StatusCreated, "Product added successfully", product)
}
