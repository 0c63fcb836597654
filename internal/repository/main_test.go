package repository

import (
	"testing"

	"fotogram/internal/database"

	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.ConnectSQLite()
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}
	return db
}
