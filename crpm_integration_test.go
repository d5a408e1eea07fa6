package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/crpmlabs/crpm-app/models"
	"github.com/crpmlabs/crpm-app/repositories"
	"github.com/crpmlabs/crpm-app/router"
	"github.com/crpmlabs/crpm-app/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// TestEndToEndIntegration walks the main dashboard flow:
// 1. Add a customer and a product
// 2. Record a purchase linking them
// 3. Read the revenue report
// 4. Deactivate the customer and confirm the search reflects it
// 5. Fetch the purchase receipt
func TestEndToEndIntegration(t *testing.T) {
	db := setupIntegrationDB()
	r := router.SetupRouter(db)

	customerID := createCustomerTest(t, r)
	productID := createProductTest(t, r)
	purchaseID := recordPurchaseTest(t, r, customerID, productID)
	checkRevenueTest(t, r)
	toggleCustomerTest(t, r, customerID)
	fetchReceiptTest(t, r, purchaseID)
}

// setupIntegrationDB -> in-memory SQLite with the full schema
func setupIntegrationDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file:integration?mode=memory&cache=shared&_foreign_keys=on"),
		&gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to open in-memory sqlite: %v", err)
	}

	err = db.AutoMigrate(
		&models.Customer{},
		&models.Product{},
		&models.Purchase{},
	)
	if err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}
	return db
}

// TestGlobalRateLimiterWired drives more requests through the full
// router than the per-IP budget allows and expects rejections; the
// limiter only works if it is registered before the routes.
func TestGlobalRateLimiterWired(t *testing.T) {
	db := setupIntegrationDB()
	r := router.SetupRouter(db)

	got429 := false
	for i := 0; i < 60; i++ {
		req, _ := http.NewRequest("GET", "/ping", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code == http.StatusTooManyRequests {
			got429 = true
		}
	}
	assert.True(t, got429, "global rate limiter never fired")
}

func postJSON(t *testing.T, r *gin.Engine, url string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	assert.NoError(t, err)
	req, err := http.NewRequest("POST", url, bytes.NewBuffer(body))
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createCustomerTest(t *testing.T, r *gin.Engine) uint {
	w := postJSON(t, r, "/customers", map[string]interface{}{
		"name":  "Alice",
		"email": "a@x.com",
		"phone": "555-1",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Data models.Customer `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Active", resp.Data.Status)
	return resp.Data.ID
}

func createProductTest(t *testing.T, r *gin.Engine) uint {
	w := postJSON(t, r, "/products", map[string]interface{}{
		"name":  "Widget",
		"price": 9.99,
		"stock": 100,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Data models.Product `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Available", resp.Data.Status)
	return resp.Data.ID
}

func recordPurchaseTest(t *testing.T, r *gin.Engine, customerID, productID uint) uint {
	w := postJSON(t, r, "/purchases", map[string]interface{}{
		"customer_id":   customerID,
		"product_id":    productID,
		"quantity":      2,
		"purchase_date": "2025-03-14",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Data models.Purchase `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Data.ID
}

func checkRevenueTest(t *testing.T, r *gin.Engine) {
	req, _ := http.NewRequest("GET", "/reports/revenue", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []repositories.RevenueRow `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 1)
	assert.Equal(t, "2025-03-14", resp.Data[0].Date)
	assert.InDelta(t, 19.98, resp.Data[0].TotalRevenue, 0.0001)
}

func toggleCustomerTest(t *testing.T, r *gin.Engine, customerID uint) {
	url := fmt.Sprintf("/customers/%d/status", customerID)
	req, _ := http.NewRequest("PATCH", url, bytes.NewBufferString(`{"status":"Inactive"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req, _ = http.NewRequest("GET", "/customers", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []models.Customer `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Data)
}

func fetchReceiptTest(t *testing.T, r *gin.Engine, purchaseID uint) {
	url := fmt.Sprintf("/purchases/%d/receipt", purchaseID)
	req, _ := http.NewRequest("GET", url, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")))
}
