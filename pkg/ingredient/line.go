package ingredient

import (
	"Meal-Planner/domain"
	"Meal-Planner/entities"
	"Meal-Planner/pkg/measure"
	"strings"
)

// EffectiveUnit is the unit a recipe amount is expressed in: the ingredient's
// own unit, or the inventory item's unit when the ingredient has none.
func EffectiveUnit(ing *entities.RecipeIngredient, item *entities.InventoryItem) string {
	if ing.Unit != nil && *ing.Unit != "" {
		return *ing.Unit
	}
	if item != nil && item.Unit != nil {
		return *item.Unit
	}
	return ""
}

// Density of an inventory item in g/ml, falling back to the table of common
// ingredients when none is stored.
func Density(item *entities.InventoryItem) float64 {
	if item.Density > 0 {
		return item.Density
	}
	return measure.DensityFor(item.Name)
}

// BuildLine computes how much of the inventory item remains after cooking.
// ing.Inventory must be loaded.
func BuildLine(ing *entities.RecipeIngredient) domain.IngredientLine {
	line := domain.IngredientLine{
		ID:          ing.ID.String(),
		InventoryID: ing.InventoryID.String(),
		Amount:      ing.Amount,
		Note:        ing.Note,
		Position:    ing.Position,
	}

	item := ing.Inventory
	line.Unit = EffectiveUnit(ing, item)
	if item == nil {
		line.UnitMismatch = true
		line.RemainderText = domain.MessageUnitMismatch
		return line
	}

	line.Name = item.Name
	line.OnHandQty = item.OnHandQty
	if item.Unit != nil {
		line.InventoryUnit = *item.Unit
	}

	amount := 0.0
	if ing.Amount != nil {
		amount = *ing.Amount
	}

	usage := amount
	if line.Unit != "" && line.InventoryUnit != "" {
		converted, ok := measure.UsageAmount(amount, line.Unit, line.InventoryUnit, Density(item))
		if !ok {
			if measure.Compatible(line.Unit, line.InventoryUnit, true) {
				line.RemainderText = domain.MessageOutOfRange
				return line
			}
			line.UnitMismatch = true
			line.RemainderText = domain.MessageUnitMismatch
			return line
		}
		usage = converted
	}
	if !measure.IsFinite(item.OnHandQty - usage) {
		line.RemainderText = domain.MessageOutOfRange
		return line
	}

	remainder := measure.Round(item.OnHandQty-usage, 2)
	usage = measure.Round(usage, 2)
	line.Usage = &usage
	line.Remainder = &remainder
	line.RemainderText = strings.TrimSpace(measure.Format(remainder, line.InventoryUnit, 2))
	return line
}
