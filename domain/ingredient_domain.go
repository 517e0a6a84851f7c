package domain

import "errors"

var (
	MessageSuccessAddIngredient    = "ingredient added successfully"
	MessageSuccessUpdateIngredient = "ingredient updated successfully"
	MessageSuccessDeleteIngredient = "ingredient deleted successfully"
	MessageSuccessGetIngredients   = "success get ingredients"

	MessageFailedAddIngredient    = "failed to add ingredient"
	MessageFailedUpdateIngredient = "failed to update ingredient"
	MessageFailedDeleteIngredient = "failed to delete ingredient"
	MessageFailedGetIngredients   = "failed to get ingredients"

	ErrIngredientNotFound = errors.New("ingredient not found")
	ErrInvalidAmount      = errors.New("amount must be a non-negative number")

	// MessageUnitMismatch is shown instead of a remainder when units do not convert.
	MessageUnitMismatch = "unit mismatch"
	// MessageOutOfRange replaces a result too large to represent.
	MessageOutOfRange = "quantity out of range"
)

type (
	AddIngredientRequest struct {
		InventoryID string   `json:"inventory_id" validate:"required,uuid"`
		Amount      *float64 `json:"amount" validate:"omitempty,min=0"`
		Unit        string   `json:"unit" validate:"omitempty,unit"`
		Note        string   `json:"note"`
	}

	UpdateIngredientRequest struct {
		Amount      *float64 `json:"amount" validate:"omitempty,min=0"`
		ClearAmount bool     `json:"clear_amount"`
		Unit        *string  `json:"unit" validate:"omitempty,unit"`
		Note        *string  `json:"note"`
	}

	// IngredientLine is an ingredient as shown on the recipe page, with the
	// amount left in inventory after cooking. Remainder is nil when the units
	// cannot be converted.
	IngredientLine struct {
		ID            string   `json:"id"`
		InventoryID   string   `json:"inventory_id"`
		Name          string   `json:"name"`
		Amount        *float64 `json:"amount"`
		Unit          string   `json:"unit"`
		Note          *string  `json:"note"`
		Position      int      `json:"position"`
		OnHandQty     float64  `json:"on_hand_qty"`
		InventoryUnit string   `json:"inventory_unit"`
		Usage         *float64 `json:"usage"`
		Remainder     *float64 `json:"remainder"`
		RemainderText string   `json:"remainder_text"`
		UnitMismatch  bool     `json:"unit_mismatch"`
	}
)
