package config

import (
	"Meal-Planner/internal/api/handlers"
	"Meal-Planner/internal/api/routes"
	"Meal-Planner/internal/middleware"
	"Meal-Planner/internal/utils"
	"Meal-Planner/internal/utils/mailing"
	"Meal-Planner/internal/utils/storage"
	"Meal-Planner/pkg/auth"
	"Meal-Planner/pkg/ingredient"
	"Meal-Planner/pkg/instruction"
	"Meal-Planner/pkg/inventory"
	"Meal-Planner/pkg/jwt"
	"Meal-Planner/pkg/recipe"
	"Meal-Planner/pkg/unit"
	"Meal-Planner/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: utils.GetConfig("APP_ENV") != "production",
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// access log and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Jakarta",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        20,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	mailer := mailing.NewMailer()
	policy := instruction.ParseReorderPolicy(utils.GetConfig("REORDER_POLICY"))

	// Repository
	userRepository := user.NewUserRepository(db)
	inventoryRepository := inventory.NewInventoryRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	ingredientRepository := ingredient.NewIngredientRepository(db)
	instructionRepository := instruction.NewInstructionRepository(db)

	// Service
	jwtService := jwt.NewJWTService(utils.GetConfig("JWT_SECRET"))
	userService := user.NewUserService(userRepository)
	authService := auth.NewAuthService(userRepository, jwtService, auth.GoogleOAuthConfig(), auth.GoogleUserInfoURL)
	inventoryService := inventory.NewInventoryService(inventoryRepository)
	recipeService := recipe.NewRecipeService(recipeRepository, userRepository, s3, mailer)
	ingredientService := ingredient.NewIngredientService(ingredientRepository)
	instructionService := instruction.NewInstructionService(instructionRepository, policy)
	unitService := unit.NewUnitService()

	// Handler
	authHandler := handlers.NewAuthHandler(authService, userService)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	ingredientHandler := handlers.NewIngredientHandler(ingredientService, validator)
	instructionHandler := handlers.NewInstructionHandler(instructionService, validator)
	unitHandler := handlers.NewUnitHandler(unitService, validator)

	// routes
	routesConfig := routes.Config{
		App:                app,
		AuthHandler:        authHandler,
		InventoryHandler:   inventoryHandler,
		RecipeHandler:      recipeHandler,
		IngredientHandler:  ingredientHandler,
		InstructionHandler: instructionHandler,
		UnitHandler:        unitHandler,
		Middleware:         middlewares,
		JWTService:         jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
