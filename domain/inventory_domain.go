package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddInventoryItem    = "inventory item added successfully"
	MessageSuccessUpdateInventoryItem = "inventory item updated successfully"
	MessageSuccessDeleteInventoryItem = "inventory item deleted successfully"
	MessageSuccessGetInventoryItems   = "inventory items retrieved successfully"

	MessageFailedAddInventoryItem    = "failed to add inventory item"
	MessageFailedUpdateInventoryItem = "failed to update inventory item"
	MessageFailedDeleteInventoryItem = "failed to delete inventory item"
	MessageFailedGetInventoryItems   = "failed to retrieve inventory items"

	ErrInventoryItemNotFound = errors.New("inventory item not found")
	ErrInventoryNameRequired = errors.New("inventory item name is required")
	ErrInvalidQuantity       = errors.New("quantity must be a non-negative number")
	ErrInvalidDensity        = errors.New("density must be a positive number")
	ErrInventoryItemInUse    = errors.New("inventory item is used by a recipe")
	ErrUnauthorizedAccess    = errors.New("unauthorized access to inventory item")
)

type (
	AddInventoryItemRequest struct {
		Name      string   `json:"name" validate:"required"`
		OnHandQty *float64 `json:"on_hand_qty" validate:"omitempty,min=0"`
		Unit      string   `json:"unit" validate:"omitempty,unit"`
		Density   *float64 `json:"density" validate:"omitempty,gt=0"`
	}

	// UpdateInventoryItemRequest only touches the fields that are present.
	UpdateInventoryItemRequest struct {
		Name      *string  `json:"name" validate:"omitempty,min=1"`
		OnHandQty *float64 `json:"on_hand_qty" validate:"omitempty,min=0"`
		Unit      *string  `json:"unit" validate:"omitempty,unit"`
		Density   *float64 `json:"density" validate:"omitempty,gt=0"`
	}

	InventoryItemResponse struct {
		ID           string    `json:"id"`
		Name         string    `json:"name"`
		OnHandQty    float64   `json:"on_hand_qty"`
		Unit         *string   `json:"unit"`
		UnitCategory *string   `json:"unit_category"`
		Density      float64   `json:"density"`
		Display      string    `json:"display"`
		CreatedAt    time.Time `json:"created_at"`
	}
)
