package repositories

import (
	"fmt"
	"testing"

	"github.com/crpmlabs/crpm-app/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens a named in-memory SQLite database, one per test so
// state never leaks between them. Foreign keys are switched on so
// constraint behavior matches MySQL.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}

	if err := db.AutoMigrate(&models.Customer{}, &models.Product{}, &models.Purchase{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}
