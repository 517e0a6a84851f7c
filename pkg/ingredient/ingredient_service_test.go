package ingredient

import (
	"Meal-Planner/domain"
	"Meal-Planner/internal/testutil"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngredientService(t *testing.T) {
	db := testutil.NewDB(t)
	user := testutil.SeedUser(t, db)
	recipe := testutil.SeedRecipe(t, db, user.ID, "Bread")
	flour := testutil.SeedInventoryItem(t, db, user.ID, "bread flour", 1000, "g", 0.593)
	water := testutil.SeedInventoryItem(t, db, user.ID, "water", 2, "l", 1)

	svc := NewIngredientService(NewIngredientRepository(db))
	ctx := context.Background()
	userID, recipeID := user.ID.String(), recipe.ID.String()

	first, err := svc.AddIngredient(ctx, recipeID, domain.AddIngredientRequest{
		InventoryID: flour.ID.String(),
		Amount:      num(2),
		Unit:        "cup",
		Note:        "sifted",
	}, userID)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Position)
	assert.Equal(t, "cup", first.Unit)
	require.NotNil(t, first.Remainder)
	assert.InDelta(t, 1000-2*236.588*0.593, *first.Remainder, 0.01)

	second, err := svc.AddIngredient(ctx, recipeID, domain.AddIngredientRequest{
		InventoryID: water.ID.String(),
		Amount:      num(350),
		Unit:        "ml",
	}, userID)
	require.NoError(t, err)
	assert.Equal(t, 2, second.Position)
	require.NotNil(t, second.Remainder)
	assert.Equal(t, 1.65, *second.Remainder)

	t.Run("list in position order", func(t *testing.T) {
		lines, err := svc.GetIngredients(ctx, recipeID, userID)
		require.NoError(t, err)
		require.Len(t, lines, 2)
		assert.Equal(t, "bread flour", lines[0].Name)
		assert.Equal(t, "water", lines[1].Name)
	})

	t.Run("update to an incompatible unit", func(t *testing.T) {
		line, err := svc.UpdateIngredient(ctx, recipeID, second.ID, domain.UpdateIngredientRequest{Unit: str("pc")}, userID)
		require.NoError(t, err)
		assert.True(t, line.UnitMismatch)
		assert.Equal(t, domain.MessageUnitMismatch, line.RemainderText)
	})

	t.Run("clearing the unit falls back to the inventory unit", func(t *testing.T) {
		line, err := svc.UpdateIngredient(ctx, recipeID, second.ID, domain.UpdateIngredientRequest{Unit: str(""), Amount: num(0.5)}, userID)
		require.NoError(t, err)
		assert.Equal(t, "l", line.Unit)
		require.NotNil(t, line.Remainder)
		assert.Equal(t, 1.5, *line.Remainder)
	})

	t.Run("clear amount", func(t *testing.T) {
		line, err := svc.UpdateIngredient(ctx, recipeID, second.ID, domain.UpdateIngredientRequest{ClearAmount: true}, userID)
		require.NoError(t, err)
		assert.Nil(t, line.Amount)
		require.NotNil(t, line.Remainder)
		assert.Equal(t, 2.0, *line.Remainder)
	})

	t.Run("rejects bad input", func(t *testing.T) {
		_, err := svc.UpdateIngredient(ctx, recipeID, second.ID, domain.UpdateIngredientRequest{}, userID)
		assert.ErrorIs(t, err, domain.ErrNoFieldsUpdate)

		_, err = svc.UpdateIngredient(ctx, recipeID, second.ID, domain.UpdateIngredientRequest{Amount: num(-1)}, userID)
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)

		_, err = svc.AddIngredient(ctx, recipeID, domain.AddIngredientRequest{InventoryID: uuid.NewString()}, userID)
		assert.ErrorIs(t, err, domain.ErrInventoryItemNotFound)

		_, err = svc.AddIngredient(ctx, uuid.NewString(), domain.AddIngredientRequest{InventoryID: flour.ID.String()}, userID)
		assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
	})

	t.Run("other users cannot touch the recipe or use their items", func(t *testing.T) {
		stranger := testutil.SeedUser(t, db)
		_, err := svc.GetIngredients(ctx, recipeID, stranger.ID.String())
		assert.ErrorIs(t, err, domain.ErrUnauthorizedRecipeAccess)

		theirs := testutil.SeedInventoryItem(t, db, stranger.ID, "saffron", 1, "g", 0)
		_, err = svc.AddIngredient(ctx, recipeID, domain.AddIngredientRequest{InventoryID: theirs.ID.String()}, userID)
		assert.ErrorIs(t, err, domain.ErrUnauthorizedAccess)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, svc.DeleteIngredient(ctx, recipeID, first.ID, userID))
		assert.ErrorIs(t, svc.DeleteIngredient(ctx, recipeID, first.ID, userID), domain.ErrIngredientNotFound)

		lines, err := svc.GetIngredients(ctx, recipeID, userID)
		require.NoError(t, err)
		require.Len(t, lines, 1)
		assert.Equal(t, second.ID, lines[0].ID)
	})
}
