package migration

import (
	"Meal-Planner/entities"
	"Meal-Planner/internal/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Migrate prepares a postgres database.
func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := AutoMigrate(db); err != nil {
		logger.Error("database migration failed", zap.Error(err))
		return err
	}

	logger.Info("database migration complete")
	return nil
}

// AutoMigrate creates the tables and indexes, including the unique
// (recipe_id, step_number) index that guards concurrent appends.
func AutoMigrate(db *gorm.DB) error {
	models := []interface{}{
		&entities.User{},
		&entities.InventoryItem{},
		&entities.Recipe{},
		&entities.RecipeIngredient{},
		&entities.Instruction{},
	}
	for _, m := range models {
		if err := db.AutoMigrate(m); err != nil {
			return err
		}
	}
	return nil
}
