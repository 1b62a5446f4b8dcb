package database

import (
	"testing"
	"time"

	"escrow-dashboard/internal/config"
	"escrow-dashboard/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB opens a migrated in-memory sqlite database
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	// a second pooled connection would see a different in-memory database
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

// CreateTestEntry inserts one escrow entry
func CreateTestEntry(t *testing.T, db *DB, object, document string, date time.Time, amount int64) *models.EscrowEntry {
	t.Helper()

	entry := &models.EscrowEntry{
		ObjectName:     object,
		DocumentNumber: document,
		OperationDate:  date,
		Amount:         decimal.NewFromInt(amount),
		PayerName:      "Test Payer",
	}

	if err := db.Create(entry).Error; err != nil {
		t.Fatalf("failed to create test entry: %v", err)
	}

	return entry
}

// CleanupTestDB empties the tables used by the tests
func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	if err := db.Exec("DELETE FROM escrow_entries").Error; err != nil {
		t.Logf("failed to cleanup table escrow_entries: %v", err)
	}
}
