package main

import (
	"Meal-Planner/cmd/config"
	migration "Meal-Planner/cmd/database/migrate"
	"Meal-Planner/internal/logger"
	"Meal-Planner/internal/utils"

	"github.com/gofiber/fiber/v2/log"
	"go.uber.org/zap"
)

func main() {
	utils.LoadConfig()
	logger.InitializeLogger(utils.GetConfig("APP_ENV"))
	defer logger.Close()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("failed to create app: %v", err)
	}

	port := utils.GetConfig("APP_PORT")
	logger.Info("server starting", zap.String("port", port))
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
