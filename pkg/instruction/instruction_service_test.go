package instruction

import (
	"Meal-Planner/domain"
	"Meal-Planner/entities"
	"Meal-Planner/internal/testutil"
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db       *gorm.DB
	svc      InstructionService
	userID   string
	recipeID string
}

func newFixture(t *testing.T, policy ReorderPolicy) fixture {
	db := testutil.NewDB(t)
	user := testutil.SeedUser(t, db)
	recipe := testutil.SeedRecipe(t, db, user.ID, "Pancakes")

	return fixture{
		db:       db,
		svc:      NewInstructionService(NewInstructionRepository(db), policy),
		userID:   user.ID.String(),
		recipeID: recipe.ID.String(),
	}
}

func (f fixture) add(t *testing.T, texts ...string) []domain.Instruction {
	t.Helper()
	var out []domain.Instruction
	for _, text := range texts {
		ins, err := f.svc.AddInstruction(context.Background(), f.recipeID, domain.AddInstructionRequest{Text: text}, f.userID)
		require.NoError(t, err)
		out = append(out, ins)
	}
	return out
}

// steps maps instruction text to step number as stored.
func (f fixture) steps(t *testing.T) map[string]int {
	t.Helper()
	var rows []entities.Instruction
	require.NoError(t, f.db.Where("recipe_id = ?", f.recipeID).Find(&rows).Error)

	out := map[string]int{}
	numbers := make([]int, 0, len(rows))
	for _, r := range rows {
		out[r.Text] = r.StepNumber
		numbers = append(numbers, r.StepNumber)
	}
	require.True(t, Contiguous(numbers), "step numbers not contiguous: %v", numbers)
	return out
}

func TestAddInstruction_AppendsInOrder(t *testing.T) {
	f := newFixture(t, ReorderStrict)

	added := f.add(t, "mix", "rest", "fry")

	assert.Equal(t, 1, added[0].StepNumber)
	assert.Equal(t, 2, added[1].StepNumber)
	assert.Equal(t, 3, added[2].StepNumber)
	assert.Equal(t, map[string]int{"mix": 1, "rest": 2, "fry": 3}, f.steps(t))
}

func TestAddInstruction_Validation(t *testing.T) {
	f := newFixture(t, ReorderStrict)
	ctx := context.Background()

	_, err := f.svc.AddInstruction(ctx, f.recipeID, domain.AddInstructionRequest{Text: "   "}, f.userID)
	assert.ErrorIs(t, err, domain.ErrInstructionTextRequired)

	_, err = f.svc.AddInstruction(ctx, uuid.NewString(), domain.AddInstructionRequest{Text: "mix"}, f.userID)
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)

	_, err = f.svc.AddInstruction(ctx, "not-a-uuid", domain.AddInstructionRequest{Text: "mix"}, f.userID)
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)

	_, err = f.svc.AddInstruction(ctx, f.recipeID, domain.AddInstructionRequest{Text: "mix"}, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrUnauthorizedRecipeAccess)
}

func TestAddInstruction_KeepsDetail(t *testing.T) {
	f := newFixture(t, ReorderStrict)

	ins, err := f.svc.AddInstruction(context.Background(), f.recipeID,
		domain.AddInstructionRequest{Text: "whisk", Detail: "  until smooth "}, f.userID)
	require.NoError(t, err)
	require.NotNil(t, ins.Detail)
	assert.Equal(t, "until smooth", *ins.Detail)
}

func TestAddInstruction_Concurrent(t *testing.T) {
	f := newFixture(t, ReorderStrict)

	var wg sync.WaitGroup
	errs := make(chan error, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.svc.AddInstruction(context.Background(), f.recipeID, domain.AddInstructionRequest{Text: uuid.NewString()}, f.userID)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	assert.Len(t, f.steps(t), 10)
}

func TestDeleteInstruction_Renumbers(t *testing.T) {
	f := newFixture(t, ReorderStrict)
	added := f.add(t, "one", "two", "three", "four")

	err := f.svc.DeleteInstruction(context.Background(), f.recipeID, added[1].ID, f.userID)
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"one": 1, "three": 2, "four": 3}, f.steps(t))
}

func TestDeleteInstruction_FirstAndLast(t *testing.T) {
	f := newFixture(t, ReorderStrict)
	added := f.add(t, "one", "two", "three")
	ctx := context.Background()

	require.NoError(t, f.svc.DeleteInstruction(ctx, f.recipeID, added[2].ID, f.userID))
	assert.Equal(t, map[string]int{"one": 1, "two": 2}, f.steps(t))

	require.NoError(t, f.svc.DeleteInstruction(ctx, f.recipeID, added[0].ID, f.userID))
	assert.Equal(t, map[string]int{"two": 1}, f.steps(t))
}

func TestDeleteInstruction_NotFound(t *testing.T) {
	f := newFixture(t, ReorderStrict)
	f.add(t, "one", "two")
	ctx := context.Background()

	err := f.svc.DeleteInstruction(ctx, f.recipeID, uuid.NewString(), f.userID)
	assert.ErrorIs(t, err, domain.ErrInstructionNotFound)

	err = f.svc.DeleteInstruction(ctx, f.recipeID, "garbage", f.userID)
	assert.ErrorIs(t, err, domain.ErrInstructionNotFound)

	assert.Equal(t, map[string]int{"one": 1, "two": 2}, f.steps(t))
}

func TestDeleteInstruction_OtherRecipe(t *testing.T) {
	f := newFixture(t, ReorderStrict)
	f.add(t, "one")

	owner, err := uuid.Parse(f.userID)
	require.NoError(t, err)
	other := testutil.SeedRecipe(t, f.db, owner, "Waffles")
	foreign, err := f.svc.AddInstruction(context.Background(), other.ID.String(), domain.AddInstructionRequest{Text: "heat iron"}, f.userID)
	require.NoError(t, err)

	err = f.svc.DeleteInstruction(context.Background(), f.recipeID, foreign.ID, f.userID)
	assert.ErrorIs(t, err, domain.ErrInstructionNotFound)
}

func TestReorderInstructions(t *testing.T) {
	f := newFixture(t, ReorderStrict)
	added := f.add(t, "a", "b", "c")

	order := domain.ReorderInstructionsRequest{OrderedIDs: []string{added[2].ID, added[0].ID, added[1].ID}}

	res, err := f.svc.ReorderInstructions(context.Background(), f.recipeID, order, f.userID)
	require.NoError(t, err)
	require.Len(t, res, 3)
	assert.Equal(t, "c", res[0].Text)
	assert.Equal(t, map[string]int{"c": 1, "a": 2, "b": 3}, f.steps(t))

	// idempotent
	_, err = f.svc.ReorderInstructions(context.Background(), f.recipeID, order, f.userID)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"c": 1, "a": 2, "b": 3}, f.steps(t))
}

func TestReorderInstructions_StrictRejects(t *testing.T) {
	f := newFixture(t, ReorderStrict)
	added := f.add(t, "a", "b", "c")
	ctx := context.Background()

	tests := []struct {
		name    string
		ids     []string
		wantErr error
	}{
		{"partial", []string{added[2].ID, added[0].ID}, domain.ErrInstructionSetMismatch},
		{"foreign", []string{added[2].ID, added[0].ID, added[1].ID, uuid.NewString()}, domain.ErrInstructionSetMismatch},
		{"duplicate", []string{added[2].ID, added[2].ID, added[0].ID, added[1].ID}, domain.ErrDuplicateInstruction},
		{"malformed", []string{added[2].ID, "nope", added[0].ID, added[1].ID}, domain.ErrInstructionSetMismatch},
		{"empty", nil, domain.ErrNothingToReorder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.ReorderInstructions(ctx, f.recipeID, domain.ReorderInstructionsRequest{OrderedIDs: tt.ids}, f.userID)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, map[string]int{"a": 1, "b": 2, "c": 3}, f.steps(t))
		})
	}
}

func TestReorderInstructions_Lenient(t *testing.T) {
	f := newFixture(t, ReorderLenient)
	added := f.add(t, "a", "b", "c", "d")

	req := domain.ReorderInstructionsRequest{OrderedIDs: []string{added[3].ID, uuid.NewString(), added[3].ID, added[1].ID}}
	_, err := f.svc.ReorderInstructions(context.Background(), f.recipeID, req, f.userID)
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"d": 1, "b": 2, "a": 3, "c": 4}, f.steps(t))
}

func TestReorderInstructions_RollsBackOnFailure(t *testing.T) {
	f := newFixture(t, ReorderStrict)
	added := f.add(t, "a", "b", "c")

	updates := 0
	require.NoError(t, f.db.Callback().Update().Before("gorm:update").Register("test:fail_second_update", func(tx *gorm.DB) {
		updates++
		if updates == 2 {
			_ = tx.AddError(errors.New("connection reset"))
		}
	}))

	order := domain.ReorderInstructionsRequest{OrderedIDs: []string{added[2].ID, added[1].ID, added[0].ID}}
	_, err := f.svc.ReorderInstructions(context.Background(), f.recipeID, order, f.userID)
	assert.ErrorIs(t, err, domain.ErrSequenceUpdateFailed)

	require.NoError(t, f.db.Callback().Update().Remove("test:fail_second_update"))
	assert.Equal(t, map[string]int{"a": 1, "b": 2, "c": 3}, f.steps(t))
}

func TestDeleteInstruction_RollsBackOnFailure(t *testing.T) {
	f := newFixture(t, ReorderStrict)
	added := f.add(t, "a", "b", "c", "d")

	updates := 0
	require.NoError(t, f.db.Callback().Update().Before("gorm:update").Register("test:fail_second_update", func(tx *gorm.DB) {
		updates++
		if updates == 2 {
			_ = tx.AddError(errors.New("connection reset"))
		}
	}))

	err := f.svc.DeleteInstruction(context.Background(), f.recipeID, added[1].ID, f.userID)
	assert.ErrorIs(t, err, domain.ErrSequenceUpdateFailed)

	require.NoError(t, f.db.Callback().Update().Remove("test:fail_second_update"))
	assert.Equal(t, 2, updates)
	assert.Equal(t, map[string]int{"a": 1, "b": 2, "c": 3, "d": 4}, f.steps(t))

	var kept entities.Instruction
	require.NoError(t, f.db.Where("id = ?", added[1].ID).First(&kept).Error)
	assert.Equal(t, "b", kept.Text)
}

func TestUpdateInstruction(t *testing.T) {
	f := newFixture(t, ReorderStrict)
	added := f.add(t, "a")
	ctx := context.Background()

	text, detail := "stir well", "two minutes"
	require.NoError(t, f.svc.UpdateInstruction(ctx, f.recipeID, added[0].ID, domain.UpdateInstructionRequest{Text: &text, Detail: &detail}, f.userID))

	list, err := f.svc.GetInstructions(ctx, f.recipeID, f.userID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "stir well", list[0].Text)
	require.NotNil(t, list[0].Detail)
	assert.Equal(t, "two minutes", *list[0].Detail)
	assert.Equal(t, 1, list[0].StepNumber)

	blank := " "
	err = f.svc.UpdateInstruction(ctx, f.recipeID, added[0].ID, domain.UpdateInstructionRequest{Text: &blank}, f.userID)
	assert.ErrorIs(t, err, domain.ErrInstructionTextRequired)

	err = f.svc.UpdateInstruction(ctx, f.recipeID, added[0].ID, domain.UpdateInstructionRequest{}, f.userID)
	assert.ErrorIs(t, err, domain.ErrNoFieldsUpdate)

	err = f.svc.UpdateInstruction(ctx, f.recipeID, uuid.NewString(), domain.UpdateInstructionRequest{Text: &text}, f.userID)
	assert.ErrorIs(t, err, domain.ErrInstructionNotFound)
}
