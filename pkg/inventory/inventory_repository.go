package inventory

import (
	"Meal-Planner/entities"
	"Meal-Planner/internal/utils"
	"context"

	"gorm.io/gorm"
)

type (
	InventoryRepository interface {
		AddInventoryItem(ctx context.Context, item *entities.InventoryItem) error
		GetInventoryItemByID(ctx context.Context, id string) (*entities.InventoryItem, error)
		UpdateInventoryItem(ctx context.Context, item *entities.InventoryItem) error
		DeleteInventoryItem(ctx context.Context, id string) error
		GetInventoryItems(ctx context.Context, userID string, search string, page, limit int) ([]*entities.InventoryItem, int64, error)
		CountIngredientUses(ctx context.Context, id string) (int64, error)
	}

	inventoryRepository struct {
		db *gorm.DB
	}
)

func NewInventoryRepository(db *gorm.DB) InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) AddInventoryItem(ctx context.Context, item *entities.InventoryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *inventoryRepository) GetInventoryItemByID(ctx context.Context, id string) (*entities.InventoryItem, error) {
	var item entities.InventoryItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *inventoryRepository) UpdateInventoryItem(ctx context.Context, item *entities.InventoryItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *inventoryRepository) DeleteInventoryItem(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.InventoryItem{}).Error
}

func (r *inventoryRepository) GetInventoryItems(ctx context.Context, userID string, search string, page, limit int) ([]*entities.InventoryItem, int64, error) {
	var items []*entities.InventoryItem
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Model(&entities.InventoryItem{}).Where("user_id = ?", userID)
	if search != "" {
		query = query.Where(`LOWER(name) LIKE ? ESCAPE '\'`, utils.ContainsPattern(search))
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Offset(offset).Limit(limit).Order("name asc").Find(&items).Error; err != nil {
		return nil, 0, err
	}

	return items, count, nil
}

func (r *inventoryRepository) CountIngredientUses(ctx context.Context, id string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.RecipeIngredient{}).
		Where("inventory_id = ?", id).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
