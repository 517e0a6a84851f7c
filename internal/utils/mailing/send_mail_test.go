package mailing

import (
	"Meal-Planner/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShoppingListBody(t *testing.T) {
	body, err := ShoppingListBody(domain.ShoppingList{
		RecipeName: "Pancakes & Syrup",
		Items: []domain.ShoppingListItem{
			{Name: "milk", Display: "0.25 l"},
			{Name: "eggs", Display: "2 pc"},
		},
		Mismatched: []string{"butter"},
	})
	require.NoError(t, err)

	assert.Contains(t, body, "Pancakes &amp; Syrup")
	assert.Contains(t, body, "<li>milk: 0.25 l</li>")
	assert.Contains(t, body, "<li>eggs: 2 pc</li>")
	assert.Contains(t, body, "<li>butter</li>")
}

func TestShoppingListBodyWithoutMismatches(t *testing.T) {
	body, err := ShoppingListBody(domain.ShoppingList{RecipeName: "Toast"})
	require.NoError(t, err)
	assert.NotContains(t, body, "Check these by hand")
}
