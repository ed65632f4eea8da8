package services

import (
	"fmt"
	"sync/atomic"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/trhieu-dev/tablebooking/models"
)

var testDBSeq atomic.Int64

// setupTestDB membuka SQLite in-memory terpisah per test supaya data tidak
// bocor antar test
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:svc%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Table{}, &models.Order{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func seedTable(t *testing.T, db *gorm.DB, table *models.Table) *models.Table {
	t.Helper()
	if err := db.Create(table).Error; err != nil {
		t.Fatalf("failed to seed table: %v", err)
	}
	return table
}
