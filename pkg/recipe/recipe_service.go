package recipe

import (
	"Meal-Planner/domain"
	"Meal-Planner/entities"
	"Meal-Planner/internal/logger"
	"Meal-Planner/internal/utils/mailing"
	"Meal-Planner/internal/utils/storage"
	"Meal-Planner/pkg/ingredient"
	"Meal-Planner/pkg/instruction"
	"Meal-Planner/pkg/measure"
	"Meal-Planner/pkg/user"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		AddRecipe(ctx context.Context, req domain.AddRecipeRequest, userID string) (domain.Recipe, error)
		UpdateRecipe(ctx context.Context, id string, req domain.UpdateRecipeRequest, userID string) (domain.Recipe, error)
		DeleteRecipe(ctx context.Context, id string, userID string) error
		GetRecipes(ctx context.Context, userID string, search string, page, limit int) (domain.RecipeListResponse, error)
		GetRecipeDetail(ctx context.Context, id string, userID string) (domain.RecipeDetail, error)
		UploadRecipeImage(ctx context.Context, req domain.UploadRecipeImageRequest, userID string) (domain.Recipe, error)
		GetShoppingList(ctx context.Context, id string, userID string) (domain.ShoppingList, error)
		SendShoppingList(ctx context.Context, id string, userID string) error
	}

	recipeService struct {
		recipeRepository RecipeRepository
		userRepository   user.UserRepository
		s3               storage.AwsS3
		mailer           mailing.Mailer
	}
)

func NewRecipeService(recipeRepository RecipeRepository, userRepository user.UserRepository, s3 storage.AwsS3, mailer mailing.Mailer) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		userRepository:   userRepository,
		s3:               s3,
		mailer:           mailer,
	}
}

func toDomain(recipe *entities.Recipe) domain.Recipe {
	return domain.Recipe{
		ID:           recipe.ID.String(),
		Name:         recipe.Name,
		PrepMinutes:  recipe.PrepMinutes,
		CookMinutes:  recipe.CookMinutes,
		TotalMinutes: recipe.TotalMinutes(),
		ImageURL:     recipe.ImageURL,
		CreatedAt:    recipe.CreatedAt,
	}
}

func (s *recipeService) owned(ctx context.Context, id string, userID string) (*entities.Recipe, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrRecipeNotFound
	}

	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}

	if recipe.UserID.String() != userID {
		return nil, domain.ErrUnauthorizedRecipeAccess
	}
	return recipe, nil
}

func (s *recipeService) AddRecipe(ctx context.Context, req domain.AddRecipeRequest, userID string) (domain.Recipe, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Recipe{}, domain.ErrRecipeNameRequired
	}
	if req.PrepMinutes < 0 || req.CookMinutes < 0 {
		return domain.Recipe{}, domain.ErrInvalidMinutes
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.Recipe{}, domain.ErrParseUUID
	}

	recipe := &entities.Recipe{
		UserID:      userUUID,
		Name:        name,
		PrepMinutes: req.PrepMinutes,
		CookMinutes: req.CookMinutes,
	}
	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		return domain.Recipe{}, err
	}

	return toDomain(recipe), nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, id string, req domain.UpdateRecipeRequest, userID string) (domain.Recipe, error) {
	if req.Name == nil && req.PrepMinutes == nil && req.CookMinutes == nil {
		return domain.Recipe{}, domain.ErrNoFieldsUpdate
	}

	recipe, err := s.owned(ctx, id, userID)
	if err != nil {
		return domain.Recipe{}, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return domain.Recipe{}, domain.ErrRecipeNameRequired
		}
		recipe.Name = name
	}
	if req.PrepMinutes != nil {
		if *req.PrepMinutes < 0 {
			return domain.Recipe{}, domain.ErrInvalidMinutes
		}
		recipe.PrepMinutes = *req.PrepMinutes
	}
	if req.CookMinutes != nil {
		if *req.CookMinutes < 0 {
			return domain.Recipe{}, domain.ErrInvalidMinutes
		}
		recipe.CookMinutes = *req.CookMinutes
	}

	if err := s.recipeRepository.UpdateRecipe(ctx, recipe); err != nil {
		return domain.Recipe{}, err
	}
	return toDomain(recipe), nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id string, userID string) error {
	recipe, err := s.owned(ctx, id, userID)
	if err != nil {
		return err
	}

	if err := s.recipeRepository.DeleteRecipe(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		logger.Error("delete recipe failed", zap.String("recipe_id", id), zap.Error(err))
		return err
	}

	if recipe.ImageURL != "" {
		if key := s.s3.GetObjectKeyFromLink(recipe.ImageURL); key != "" {
			if err := s.s3.DeleteFile(key); err != nil {
				logger.Warn("delete recipe image failed", zap.String("key", key), zap.Error(err))
			}
		}
	}
	return nil
}

func (s *recipeService) GetRecipes(ctx context.Context, userID string, search string, page, limit int) (domain.RecipeListResponse, error) {
	recipes, count, err := s.recipeRepository.GetRecipes(ctx, userID, strings.ToLower(strings.TrimSpace(search)), page, limit)
	if err != nil {
		return domain.RecipeListResponse{}, err
	}

	res := make([]domain.Recipe, 0, len(recipes))
	for _, recipe := range recipes {
		res = append(res, toDomain(recipe))
	}

	return domain.RecipeListResponse{
		Recipes:    res,
		Pagination: domain.NewPagination(page, limit, count),
	}, nil
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, id string, userID string) (domain.RecipeDetail, error) {
	if _, err := s.owned(ctx, id, userID); err != nil {
		return domain.RecipeDetail{}, err
	}

	recipe, err := s.recipeRepository.GetRecipeDetail(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeDetail{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeDetail{}, err
	}

	detail := domain.RecipeDetail{
		Recipe:       toDomain(recipe),
		Ingredients:  make([]domain.IngredientLine, 0, len(recipe.Ingredients)),
		Instructions: make([]domain.Instruction, 0, len(recipe.Instructions)),
	}
	for _, ing := range recipe.Ingredients {
		detail.Ingredients = append(detail.Ingredients, ingredient.BuildLine(ing))
	}
	for _, ins := range recipe.Instructions {
		detail.Instructions = append(detail.Instructions, instruction.ToDomain(ins))
	}
	return detail, nil
}

func (s *recipeService) UploadRecipeImage(ctx context.Context, req domain.UploadRecipeImageRequest, userID string) (domain.Recipe, error) {
	recipe, err := s.owned(ctx, req.RecipeID, userID)
	if err != nil {
		return domain.Recipe{}, err
	}

	fileName := fmt.Sprintf("recipe-%s", recipe.ID.String())
	var objectKey string

	existingKey := ""
	if recipe.ImageURL != "" {
		existingKey = s.s3.GetObjectKeyFromLink(recipe.ImageURL)
	}
	if existingKey != "" {
		objectKey, err = s.s3.UpdateFile(existingKey, req.Image, storage.AllowImage...)
	} else {
		objectKey, err = s.s3.UploadFile(fileName, req.Image, "recipes", storage.AllowImage...)
	}
	if err != nil {
		return domain.Recipe{}, err
	}

	recipe.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	if err := s.recipeRepository.UpdateRecipe(ctx, recipe); err != nil {
		return domain.Recipe{}, err
	}
	return toDomain(recipe), nil
}

// GetShoppingList lists what has to be bought before cooking: every ingredient
// whose remainder would go negative, by how much, in the inventory unit.
func (s *recipeService) GetShoppingList(ctx context.Context, id string, userID string) (domain.ShoppingList, error) {
	detail, err := s.GetRecipeDetail(ctx, id, userID)
	if err != nil {
		return domain.ShoppingList{}, err
	}

	list := domain.ShoppingList{
		RecipeID:   detail.ID,
		RecipeName: detail.Name,
		Items:      []domain.ShoppingListItem{},
	}
	for _, line := range detail.Ingredients {
		if line.UnitMismatch || line.Remainder == nil {
			list.Mismatched = append(list.Mismatched, line.Name)
			continue
		}
		if *line.Remainder >= 0 {
			continue
		}

		missing := -*line.Remainder
		list.Items = append(list.Items, domain.ShoppingListItem{
			InventoryID: line.InventoryID,
			Name:        line.Name,
			Missing:     missing,
			Unit:        line.InventoryUnit,
			Display:     strings.TrimSpace(measure.Format(missing, line.InventoryUnit, 2)),
		})
	}
	return list, nil
}

func (s *recipeService) SendShoppingList(ctx context.Context, id string, userID string) error {
	list, err := s.GetShoppingList(ctx, id, userID)
	if err != nil {
		return err
	}
	if len(list.Items) == 0 && len(list.Mismatched) == 0 {
		return domain.ErrEmptyShoppingList
	}

	u, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	body, err := mailing.ShoppingListBody(list)
	if err != nil {
		return err
	}

	if err := s.mailer.SendMail(u.Email, "Shopping list: "+list.RecipeName, body); err != nil {
		logger.Error("send shopping list failed", zap.String("recipe_id", id), zap.Error(err))
		return err
	}
	return nil
}
