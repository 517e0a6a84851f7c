package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessAddRecipe         = "recipe added successfully"
	MessageSuccessUpdateRecipe      = "recipe updated successfully"
	MessageSuccessDeleteRecipe      = "recipe deleted successfully"
	MessageSuccessGetRecipes        = "success get recipes"
	MessageSuccessGetRecipeDetail   = "success get recipe detail"
	MessageSuccessUploadRecipeImage = "recipe image uploaded successfully"
	MessageSuccessGetShoppingList   = "success get shopping list"
	MessageSuccessSendShoppingList  = "shopping list sent successfully"

	MessageFailedAddRecipe         = "failed to add recipe"
	MessageFailedUpdateRecipe      = "failed to update recipe"
	MessageFailedDeleteRecipe      = "failed to delete recipe"
	MessageFailedGetRecipes        = "failed to get recipes"
	MessageFailedGetRecipeDetail   = "failed to get recipe detail"
	MessageFailedUploadRecipeImage = "failed to upload recipe image"
	MessageFailedGetShoppingList   = "failed to get shopping list"
	MessageFailedSendShoppingList  = "failed to send shopping list"

	ErrRecipeNotFound           = errors.New("recipe not found")
	ErrUnauthorizedRecipeAccess = errors.New("unauthorized access to recipe")
	ErrRecipeNameRequired       = errors.New("name is required")
	ErrInvalidMinutes           = errors.New("minutes must be a non-negative number")
	ErrEmptyShoppingList        = errors.New("nothing to buy for this recipe")
)

type (
	AddRecipeRequest struct {
		Name        string `json:"name" validate:"required"`
		PrepMinutes int    `json:"prep_minutes" validate:"min=0"`
		CookMinutes int    `json:"cook_minutes" validate:"min=0"`
	}

	UpdateRecipeRequest struct {
		Name        *string `json:"name"`
		PrepMinutes *int    `json:"prep_minutes" validate:"omitempty,min=0"`
		CookMinutes *int    `json:"cook_minutes" validate:"omitempty,min=0"`
	}

	UploadRecipeImageRequest struct {
		RecipeID string                `json:"recipe_id" form:"recipe_id" validate:"required,uuid"`
		Image    *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	Recipe struct {
		ID           string    `json:"id"`
		Name         string    `json:"name"`
		PrepMinutes  int       `json:"prep_minutes"`
		CookMinutes  int       `json:"cook_minutes"`
		TotalMinutes int       `json:"total_minutes"`
		ImageURL     string    `json:"image_url,omitempty"`
		CreatedAt    time.Time `json:"created_at"`
	}

	RecipeDetail struct {
		Recipe
		Ingredients  []IngredientLine `json:"ingredients"`
		Instructions []Instruction    `json:"instructions"`
	}

	RecipeListResponse struct {
		Recipes    []Recipe   `json:"recipes"`
		Pagination Pagination `json:"pagination"`
	}

	ShoppingListItem struct {
		InventoryID string  `json:"inventory_id"`
		Name        string  `json:"name"`
		Missing     float64 `json:"missing"`
		Unit        string  `json:"unit"`
		Display     string  `json:"display"`
	}

	ShoppingList struct {
		RecipeID   string             `json:"recipe_id"`
		RecipeName string             `json:"recipe_name"`
		Items      []ShoppingListItem `json:"items"`
		Mismatched []string           `json:"mismatched,omitempty"`
	}
)
