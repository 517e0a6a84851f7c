package inventory

import (
	"Meal-Planner/domain"
	"Meal-Planner/entities"
	"Meal-Planner/pkg/measure"
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	InventoryService interface {
		AddInventoryItem(ctx context.Context, req domain.AddInventoryItemRequest, userID string) (domain.InventoryItemResponse, error)
		UpdateInventoryItem(ctx context.Context, id string, req domain.UpdateInventoryItemRequest, userID string) (domain.InventoryItemResponse, error)
		DeleteInventoryItem(ctx context.Context, id string, userID string) error
		GetInventoryItems(ctx context.Context, userID string, search string, page, limit int) ([]domain.InventoryItemResponse, int64, error)
		GetInventoryItemByID(ctx context.Context, id string, userID string) (domain.InventoryItemResponse, error)
	}

	inventoryService struct {
		inventoryRepository InventoryRepository
	}
)

func NewInventoryService(inventoryRepository InventoryRepository) InventoryService {
	return &inventoryService{
		inventoryRepository: inventoryRepository,
	}
}

func toResponse(item *entities.InventoryItem) domain.InventoryItemResponse {
	unit := ""
	if item.Unit != nil {
		unit = *item.Unit
	}
	return domain.InventoryItemResponse{
		ID:           item.ID.String(),
		Name:         item.Name,
		OnHandQty:    item.OnHandQty,
		Unit:         item.Unit,
		UnitCategory: item.UnitCategory,
		Density:      item.Density,
		Display:      strings.TrimSpace(measure.Format(item.OnHandQty, unit, 2)),
		CreatedAt:    item.CreatedAt,
	}
}

// setUnit stores unit and the category derived from it. A blank unit clears both.
func setUnit(item *entities.InventoryItem, unit string) error {
	unit = strings.TrimSpace(unit)
	if unit == "" {
		item.Unit = nil
		item.UnitCategory = nil
		return nil
	}

	category, ok := measure.Classify(unit)
	if !ok {
		return domain.ErrUnitUnknown
	}
	c := string(category)
	item.Unit = &unit
	item.UnitCategory = &c
	return nil
}

func (s *inventoryService) AddInventoryItem(ctx context.Context, req domain.AddInventoryItemRequest, userID string) (domain.InventoryItemResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.InventoryItemResponse{}, domain.ErrInventoryNameRequired
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.InventoryItemResponse{}, domain.ErrParseUUID
	}

	item := &entities.InventoryItem{
		UserID:  userUUID,
		Name:    name,
		Density: measure.DensityFor(name),
	}

	if req.OnHandQty != nil {
		if *req.OnHandQty < 0 {
			return domain.InventoryItemResponse{}, domain.ErrInvalidQuantity
		}
		item.OnHandQty = *req.OnHandQty
	}
	if req.Density != nil {
		if *req.Density <= 0 {
			return domain.InventoryItemResponse{}, domain.ErrInvalidDensity
		}
		item.Density = *req.Density
	}
	if err := setUnit(item, req.Unit); err != nil {
		return domain.InventoryItemResponse{}, err
	}

	if err := s.inventoryRepository.AddInventoryItem(ctx, item); err != nil {
		return domain.InventoryItemResponse{}, err
	}

	return toResponse(item), nil
}

func (s *inventoryService) owned(ctx context.Context, id string, userID string) (*entities.InventoryItem, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrInventoryItemNotFound
	}

	item, err := s.inventoryRepository.GetInventoryItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInventoryItemNotFound
		}
		return nil, err
	}

	if item.UserID.String() != userID {
		return nil, domain.ErrUnauthorizedAccess
	}
	return item, nil
}

func (s *inventoryService) UpdateInventoryItem(ctx context.Context, id string, req domain.UpdateInventoryItemRequest, userID string) (domain.InventoryItemResponse, error) {
	if req.Name == nil && req.OnHandQty == nil && req.Unit == nil && req.Density == nil {
		return domain.InventoryItemResponse{}, domain.ErrNoFieldsUpdate
	}

	item, err := s.owned(ctx, id, userID)
	if err != nil {
		return domain.InventoryItemResponse{}, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return domain.InventoryItemResponse{}, domain.ErrInventoryNameRequired
		}
		item.Name = name
	}
	if req.OnHandQty != nil {
		if *req.OnHandQty < 0 {
			return domain.InventoryItemResponse{}, domain.ErrInvalidQuantity
		}
		item.OnHandQty = *req.OnHandQty
	}
	if req.Density != nil {
		if *req.Density <= 0 {
			return domain.InventoryItemResponse{}, domain.ErrInvalidDensity
		}
		item.Density = *req.Density
	}
	if req.Unit != nil {
		if err := setUnit(item, *req.Unit); err != nil {
			return domain.InventoryItemResponse{}, err
		}
	}

	if err := s.inventoryRepository.UpdateInventoryItem(ctx, item); err != nil {
		return domain.InventoryItemResponse{}, err
	}
	return toResponse(item), nil
}

func (s *inventoryService) DeleteInventoryItem(ctx context.Context, id string, userID string) error {
	if _, err := s.owned(ctx, id, userID); err != nil {
		return err
	}

	uses, err := s.inventoryRepository.CountIngredientUses(ctx, id)
	if err != nil {
		return err
	}
	if uses > 0 {
		return domain.ErrInventoryItemInUse
	}

	return s.inventoryRepository.DeleteInventoryItem(ctx, id)
}

func (s *inventoryService) GetInventoryItems(ctx context.Context, userID string, search string, page, limit int) ([]domain.InventoryItemResponse, int64, error) {
	items, count, err := s.inventoryRepository.GetInventoryItems(ctx, userID, strings.ToLower(strings.TrimSpace(search)), page, limit)
	if err != nil {
		return nil, 0, err
	}

	res := make([]domain.InventoryItemResponse, 0, len(items))
	for _, item := range items {
		res = append(res, toResponse(item))
	}
	return res, count, nil
}

func (s *inventoryService) GetInventoryItemByID(ctx context.Context, id string, userID string) (domain.InventoryItemResponse, error) {
	item, err := s.owned(ctx, id, userID)
	if err != nil {
		return domain.InventoryItemResponse{}, err
	}
	return toResponse(item), nil
}
