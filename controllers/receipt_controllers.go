package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/crpmlabs/crpm-app/repositories"
	"github.com/crpmlabs/crpm-app/utils"
	"github.com/gin-gonic/gin"
	"github.com/go-pdf/fpdf"
	"gorm.io/gorm"
)

type ReceiptController struct {
	Repo *repositories.PurchaseRepository
}

func NewReceiptController(db *gorm.DB) *ReceiptController {
	return &ReceiptController{Repo: repositories.NewPurchaseRepository(db)}
}

// GetPurchaseReceipt -> renders one purchase as a printable PDF receipt
func (rc *ReceiptController) GetPurchaseReceipt(c *gin.Context) {
	idStr := c.Param("purchase_id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, &CustomError{"invalid purchase_id"})
		return
	}

	purchase, err := rc.Repo.FindByID(uint(id))
	if err != nil {
		respondRepoError(c, err)
		return
	}

	total := purchase.Product.Price * float64(purchase.Quantity)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Purchase Receipt")
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "", 11)
	line := func(label, value string) {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(50, 8, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 8, value, "", 1, "L", false, 0, "")
	}

	line("Receipt No.", fmt.Sprintf("PUR-%06d", purchase.ID))
	line("Purchase Date", purchase.PurchaseDate.Format("2006-01-02"))
	pdf.Ln(4)
	line("Customer", purchase.Customer.Name)
	line("Email", purchase.Customer.Email)
	line("Phone", purchase.Customer.Phone)
	pdf.Ln(4)
	line("Product", purchase.Product.Name)
	line("Unit Price", utils.FormatCurrency(purchase.Product.Price))
	line("Quantity", strconv.Itoa(purchase.Quantity))
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(50, 10, "Total", "T", 0, "L", false, 0, "")
	pdf.CellFormat(0, 10, utils.FormatCurrency(total), "T", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=receipt-%d.pdf", purchase.ID))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
