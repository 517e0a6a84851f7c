// Package testutil opens an in-memory SQLite database carrying the production schema.
package testutil

import (
	migration "Meal-Planner/cmd/database/migrate"
	"Meal-Planner/entities"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	// every connection to ":memory:" is a different database
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := migration.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func SeedUser(t *testing.T, db *gorm.DB) *entities.User {
	t.Helper()

	user := &entities.User{
		Email:    uuid.NewString() + "@example.com",
		Name:     "Test Cook",
		Provider: "google",
		Role:     "user",
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func SeedRecipe(t *testing.T, db *gorm.DB, userID uuid.UUID, name string) *entities.Recipe {
	t.Helper()

	recipe := &entities.Recipe{UserID: userID, Name: name, PrepMinutes: 10, CookMinutes: 20}
	if err := db.Create(recipe).Error; err != nil {
		t.Fatalf("seed recipe: %v", err)
	}
	return recipe
}

func SeedInventoryItem(t *testing.T, db *gorm.DB, userID uuid.UUID, name string, onHand float64, unit string, density float64) *entities.InventoryItem {
	t.Helper()

	item := &entities.InventoryItem{UserID: userID, Name: name, OnHandQty: onHand, Density: density}
	if unit != "" {
		item.Unit = &unit
	}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("seed inventory item: %v", err)
	}
	return item
}
