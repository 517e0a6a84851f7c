package ingredient

import (
	"Meal-Planner/entities"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	IngredientRepository interface {
		GetRecipeOwner(ctx context.Context, recipeID string) (uuid.UUID, error)
		GetInventoryItem(ctx context.Context, id string) (*entities.InventoryItem, error)
		GetIngredientByID(ctx context.Context, id string) (*entities.RecipeIngredient, error)
		GetIngredientsByRecipe(ctx context.Context, recipeID string) ([]*entities.RecipeIngredient, error)
		AppendIngredient(ctx context.Context, ing *entities.RecipeIngredient) error
		UpdateIngredient(ctx context.Context, id string, updates map[string]interface{}) error
		DeleteIngredient(ctx context.Context, id string) error
	}

	ingredientRepository struct {
		db *gorm.DB
	}
)

func NewIngredientRepository(db *gorm.DB) IngredientRepository {
	return &ingredientRepository{db: db}
}

func (r *ingredientRepository) GetRecipeOwner(ctx context.Context, recipeID string) (uuid.UUID, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Select("id", "user_id").Where("id = ?", recipeID).First(&recipe).Error; err != nil {
		return uuid.Nil, err
	}
	return recipe.UserID, nil
}

func (r *ingredientRepository) GetInventoryItem(ctx context.Context, id string) (*entities.InventoryItem, error) {
	var item entities.InventoryItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *ingredientRepository) GetIngredientByID(ctx context.Context, id string) (*entities.RecipeIngredient, error) {
	var ing entities.RecipeIngredient
	if err := r.db.WithContext(ctx).Preload("Inventory").Where("id = ?", id).First(&ing).Error; err != nil {
		return nil, err
	}
	return &ing, nil
}

func (r *ingredientRepository) GetIngredientsByRecipe(ctx context.Context, recipeID string) ([]*entities.RecipeIngredient, error) {
	var ingredients []*entities.RecipeIngredient
	if err := r.db.WithContext(ctx).
		Preload("Inventory").
		Where("recipe_id = ?", recipeID).
		Order("position asc").
		Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

// AppendIngredient stores ing after the last ingredient of its recipe.
func (r *ingredientRepository) AppendIngredient(ctx context.Context, ing *entities.RecipeIngredient) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var recipe entities.Recipe
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			Where("id = ?", ing.RecipeID).
			First(&recipe).Error; err != nil {
			return err
		}

		var max int
		if err := tx.Model(&entities.RecipeIngredient{}).
			Where("recipe_id = ?", ing.RecipeID).
			Select("COALESCE(MAX(position), 0)").
			Row().Scan(&max); err != nil {
			return err
		}

		ing.Position = max + 1
		return tx.Create(ing).Error
	})
}

func (r *ingredientRepository) UpdateIngredient(ctx context.Context, id string, updates map[string]interface{}) error {
	res := r.db.WithContext(ctx).Model(&entities.RecipeIngredient{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ingredientRepository) DeleteIngredient(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.RecipeIngredient{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
