package ingredient

import (
	"Meal-Planner/domain"
	"Meal-Planner/entities"
	"Meal-Planner/internal/logger"
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type (
	IngredientService interface {
		GetIngredients(ctx context.Context, recipeID string, userID string) ([]domain.IngredientLine, error)
		AddIngredient(ctx context.Context, recipeID string, req domain.AddIngredientRequest, userID string) (domain.IngredientLine, error)
		UpdateIngredient(ctx context.Context, recipeID, id string, req domain.UpdateIngredientRequest, userID string) (domain.IngredientLine, error)
		DeleteIngredient(ctx context.Context, recipeID, id string, userID string) error
	}

	ingredientService struct {
		ingredientRepository IngredientRepository
	}
)

func NewIngredientService(ingredientRepository IngredientRepository) IngredientService {
	return &ingredientService{
		ingredientRepository: ingredientRepository,
	}
}

func (s *ingredientService) authorize(ctx context.Context, recipeID, userID string) error {
	if _, err := uuid.Parse(recipeID); err != nil {
		return domain.ErrRecipeNotFound
	}

	owner, err := s.ingredientRepository.GetRecipeOwner(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}
	if owner.String() != userID {
		return domain.ErrUnauthorizedRecipeAccess
	}
	return nil
}

func (s *ingredientService) ingredientOf(ctx context.Context, recipeID, id string) (*entities.RecipeIngredient, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrIngredientNotFound
	}

	ing, err := s.ingredientRepository.GetIngredientByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrIngredientNotFound
		}
		return nil, err
	}
	if ing.RecipeID.String() != recipeID {
		return nil, domain.ErrIngredientNotFound
	}
	return ing, nil
}

func (s *ingredientService) GetIngredients(ctx context.Context, recipeID string, userID string) ([]domain.IngredientLine, error) {
	if err := s.authorize(ctx, recipeID, userID); err != nil {
		return nil, err
	}

	ingredients, err := s.ingredientRepository.GetIngredientsByRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	lines := make([]domain.IngredientLine, 0, len(ingredients))
	for _, ing := range ingredients {
		lines = append(lines, BuildLine(ing))
	}
	return lines, nil
}

func (s *ingredientService) AddIngredient(ctx context.Context, recipeID string, req domain.AddIngredientRequest, userID string) (domain.IngredientLine, error) {
	if err := s.authorize(ctx, recipeID, userID); err != nil {
		return domain.IngredientLine{}, err
	}
	if req.Amount != nil && *req.Amount < 0 {
		return domain.IngredientLine{}, domain.ErrInvalidAmount
	}

	inventoryID, err := uuid.Parse(req.InventoryID)
	if err != nil {
		return domain.IngredientLine{}, domain.ErrInventoryItemNotFound
	}
	item, err := s.ingredientRepository.GetInventoryItem(ctx, req.InventoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.IngredientLine{}, domain.ErrInventoryItemNotFound
		}
		return domain.IngredientLine{}, err
	}
	if item.UserID.String() != userID {
		return domain.IngredientLine{}, domain.ErrUnauthorizedAccess
	}

	ing := &entities.RecipeIngredient{
		RecipeID:    uuid.MustParse(recipeID),
		InventoryID: inventoryID,
		Amount:      req.Amount,
		Unit:        optional(req.Unit),
		Note:        optional(req.Note),
	}

	if err := s.ingredientRepository.AppendIngredient(ctx, ing); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.IngredientLine{}, domain.ErrRecipeNotFound
		}
		logger.Error("add ingredient failed", zap.String("recipe_id", recipeID), zap.Error(err))
		return domain.IngredientLine{}, err
	}

	ing.Inventory = item
	return BuildLine(ing), nil
}

func (s *ingredientService) UpdateIngredient(ctx context.Context, recipeID, id string, req domain.UpdateIngredientRequest, userID string) (domain.IngredientLine, error) {
	if err := s.authorize(ctx, recipeID, userID); err != nil {
		return domain.IngredientLine{}, err
	}

	updates := map[string]interface{}{}
	switch {
	case req.ClearAmount:
		updates["amount"] = nil
	case req.Amount != nil:
		if *req.Amount < 0 {
			return domain.IngredientLine{}, domain.ErrInvalidAmount
		}
		updates["amount"] = *req.Amount
	}
	if req.Unit != nil {
		updates["unit"] = optional(*req.Unit)
	}
	if req.Note != nil {
		updates["note"] = optional(*req.Note)
	}
	if len(updates) == 0 {
		return domain.IngredientLine{}, domain.ErrNoFieldsUpdate
	}

	if _, err := s.ingredientOf(ctx, recipeID, id); err != nil {
		return domain.IngredientLine{}, err
	}
	if err := s.ingredientRepository.UpdateIngredient(ctx, id, updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.IngredientLine{}, domain.ErrIngredientNotFound
		}
		return domain.IngredientLine{}, err
	}

	ing, err := s.ingredientOf(ctx, recipeID, id)
	if err != nil {
		return domain.IngredientLine{}, err
	}
	return BuildLine(ing), nil
}

func (s *ingredientService) DeleteIngredient(ctx context.Context, recipeID, id string, userID string) error {
	if err := s.authorize(ctx, recipeID, userID); err != nil {
		return err
	}
	if _, err := s.ingredientOf(ctx, recipeID, id); err != nil {
		return err
	}

	if err := s.ingredientRepository.DeleteIngredient(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrIngredientNotFound
		}
		return err
	}
	return nil
}

// optional turns a blank form value into NULL.
func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
