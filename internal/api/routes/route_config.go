package routes

import (
	"Meal-Planner/internal/api/handlers"
	"Meal-Planner/internal/middleware"
	"Meal-Planner/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

type Config struct {
	App                *fiber.App
	AuthHandler        handlers.AuthHandler
	InventoryHandler   handlers.InventoryHandler
	RecipeHandler      handlers.RecipeHandler
	IngredientHandler  handlers.IngredientHandler
	InstructionHandler handlers.InstructionHandler
	UnitHandler        handlers.UnitHandler
	Middleware         middleware.Middleware
	JWTService         jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(recover.New())
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Auth()
	c.Inventory()
	c.Recipes()
	c.Units()
	c.GuestRoute()
}

func (c *Config) Auth() {
	auth := c.App.Group("/api/v1/auth")
	{
		auth.Get("/google/login", c.AuthHandler.GoogleLogin)
		auth.Get("/google/callback", c.AuthHandler.GoogleCallback)
		auth.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.AuthHandler.Me)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

func (c *Config) Inventory() {
	inventory := c.App.Group("/api/v1/inventory", c.Middleware.AuthMiddleware(c.JWTService))
	inventory.Post("", c.InventoryHandler.AddInventoryItem)
	inventory.Get("", c.InventoryHandler.GetInventoryItems)
	inventory.Get("/:id", c.InventoryHandler.GetInventoryItemDetails)
	inventory.Patch("/:id", c.InventoryHandler.UpdateInventoryItem)
	inventory.Delete("/:id", c.InventoryHandler.DeleteInventoryItem)
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes", c.Middleware.AuthMiddleware(c.JWTService))
	recipes.Post("", c.RecipeHandler.AddRecipe)
	recipes.Get("", c.RecipeHandler.GetRecipes)
	recipes.Get("/:id", c.RecipeHandler.GetRecipeDetail)
	recipes.Patch("/:id", c.RecipeHandler.UpdateRecipe)
	recipes.Delete("/:id", c.RecipeHandler.DeleteRecipe)
	recipes.Post("/:id/image", c.RecipeHandler.UploadRecipeImage)
	recipes.Get("/:id/shopping-list", c.RecipeHandler.GetShoppingList)
	recipes.Post("/:id/shopping-list/send", c.RecipeHandler.SendShoppingList)

	// ingredients
	recipes.Get("/:id/ingredients", c.IngredientHandler.GetIngredients)
	recipes.Post("/:id/ingredients", c.IngredientHandler.AddIngredient)
	recipes.Patch("/:id/ingredients/:ingredientId", c.IngredientHandler.UpdateIngredient)
	recipes.Delete("/:id/ingredients/:ingredientId", c.IngredientHandler.DeleteIngredient)

	// instructions
	recipes.Get("/:id/instructions", c.InstructionHandler.GetInstructions)
	recipes.Post("/:id/instructions", c.InstructionHandler.AddInstruction)
	recipes.Put("/:id/instructions/order", c.InstructionHandler.ReorderInstructions)
	recipes.Patch("/:id/instructions/:instructionId", c.InstructionHandler.UpdateInstruction)
	recipes.Delete("/:id/instructions/:instructionId", c.InstructionHandler.DeleteInstruction)
}

func (c *Config) Units() {
	units := c.App.Group("/api/v1/units")
	units.Get("", c.UnitHandler.GetUnits)
	units.Post("/convert", c.UnitHandler.Convert)
}
