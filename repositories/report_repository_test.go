package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRevenueByDateEmpty(t *testing.T) {
	db := newTestDB(t)
	repo := NewReportRepository(db)

	rows, err := repo.RevenueByDate()
	assert.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestRevenueByDateAggregatesPerDay(t *testing.T) {
	db := newTestDB(t)
	customers := NewCustomerRepository(db)
	products := NewProductRepository(db)
	purchases := NewPurchaseRepository(db)
	repo := NewReportRepository(db)

	customer, err := customers.Create("Alice", "a@x.com", "555-1")
	assert.NoError(t, err)
	widget, err := products.Create("Widget", 10, 100)
	assert.NoError(t, err)
	gadget, err := products.Create("Gadget", 5, 100)
	assert.NoError(t, err)

	day1 := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

	// Two purchases on the same day collapse into one entry: 10*2 + 5*1
	_, err = purchases.Create(customer.ID, widget.ID, 2, day1)
	assert.NoError(t, err)
	_, err = purchases.Create(customer.ID, gadget.ID, 1, day1)
	assert.NoError(t, err)

	rows, err := repo.RevenueByDate()
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "2025-03-14", rows[0].Date)
	assert.InDelta(t, 25.0, rows[0].TotalRevenue, 0.0001)
}

func TestRevenueByDateOrderedAscending(t *testing.T) {
	db := newTestDB(t)
	customers := NewCustomerRepository(db)
	products := NewProductRepository(db)
	purchases := NewPurchaseRepository(db)
	repo := NewReportRepository(db)

	customer, _ := customers.Create("Alice", "a@x.com", "555-1")
	widget, _ := products.Create("Widget", 10, 100)

	later := time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC)
	earlier := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

	// Inserted out of order on purpose
	_, err := purchases.Create(customer.ID, widget.ID, 1, later)
	assert.NoError(t, err)
	_, err = purchases.Create(customer.ID, widget.ID, 4, earlier)
	assert.NoError(t, err)

	rows, err := repo.RevenueByDate()
	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, "2025-03-14", rows[0].Date)
	assert.InDelta(t, 40.0, rows[0].TotalRevenue, 0.0001)
	assert.Equal(t, "2025-04-02", rows[1].Date)
	assert.InDelta(t, 10.0, rows[1].TotalRevenue, 0.0001)
}

func TestNormalizeReportDateDriverForms(t *testing.T) {
	// SQLite text form passes through untouched
	assert.Equal(t, "2025-03-14", normalizeReportDate("2025-03-14"))

	// MySQL with parseTime=True returns DATE columns as time.Time,
	// which database/sql renders into a string as RFC 3339
	assert.Equal(t, "2025-03-14", normalizeReportDate("2025-03-14T00:00:00Z"))
	assert.Equal(t, "2025-03-14", normalizeReportDate("2025-03-14T00:00:00+07:00"))

	// Anything unrecognized is left alone rather than dropped
	assert.Equal(t, "not-a-date-string", normalizeReportDate("not-a-date-string"))
}

func TestRevenueUsesProductPriceAtReportTime(t *testing.T) {
	db := newTestDB(t)
	customers := NewCustomerRepository(db)
	products := NewProductRepository(db)
	purchases := NewPurchaseRepository(db)
	repo := NewReportRepository(db)

	customer, _ := customers.Create("Alice", "a@x.com", "555-1")
	widget, _ := products.Create("Widget", 10, 100)

	day := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	_, err := purchases.Create(customer.ID, widget.ID, 2, day)
	assert.NoError(t, err)

	// Revenue is price*quantity computed from the product row, not a
	// copy stored on the purchase
	err = db.Model(widget).Update("price", 12.5).Error
	assert.NoError(t, err)

	rows, err := repo.RevenueByDate()
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.InDelta(t, 25.0, rows[0].TotalRevenue, 0.0001)
}
