package instruction

import (
	"Meal-Planner/entities"
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	InstructionRepository interface {
		GetRecipeOwner(ctx context.Context, recipeID string) (uuid.UUID, error)
		GetInstructionByID(ctx context.Context, id string) (*entities.Instruction, error)
		GetInstructionsByRecipe(ctx context.Context, recipeID string) ([]*entities.Instruction, error)
		AppendInstruction(ctx context.Context, instruction *entities.Instruction) error
		UpdateInstruction(ctx context.Context, id string, updates map[string]interface{}) error
		DeleteInstruction(ctx context.Context, id string) (*entities.Instruction, error)
		ReorderInstructions(ctx context.Context, recipeID string, arrange func(current []uuid.UUID) ([]uuid.UUID, error)) error
	}

	instructionRepository struct {
		db *gorm.DB
	}
)

func NewInstructionRepository(db *gorm.DB) InstructionRepository {
	return &instructionRepository{db: db}
}

func (r *instructionRepository) GetRecipeOwner(ctx context.Context, recipeID string) (uuid.UUID, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Select("id", "user_id").Where("id = ?", recipeID).First(&recipe).Error; err != nil {
		return uuid.Nil, err
	}
	return recipe.UserID, nil
}

func (r *instructionRepository) GetInstructionByID(ctx context.Context, id string) (*entities.Instruction, error) {
	var instruction entities.Instruction
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&instruction).Error; err != nil {
		return nil, err
	}
	return &instruction, nil
}

func (r *instructionRepository) GetInstructionsByRecipe(ctx context.Context, recipeID string) ([]*entities.Instruction, error) {
	var instructions []*entities.Instruction
	if err := r.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Order("step_number asc").
		Find(&instructions).Error; err != nil {
		return nil, err
	}
	return instructions, nil
}

// lockRecipe serialises sequence changes of one recipe for the rest of tx.
func lockRecipe(tx *gorm.DB, recipeID interface{}) error {
	var recipe entities.Recipe
	return tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").
		Where("id = ?", recipeID).
		First(&recipe).Error
}

// AppendInstruction stores instruction as the last step of its recipe.
func (r *instructionRepository) AppendInstruction(ctx context.Context, instruction *entities.Instruction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockRecipe(tx, instruction.RecipeID); err != nil {
			return err
		}

		var max int
		if err := tx.Model(&entities.Instruction{}).
			Where("recipe_id = ?", instruction.RecipeID).
			Select("COALESCE(MAX(step_number), 0)").
			Row().Scan(&max); err != nil {
			return err
		}

		instruction.StepNumber = NextStepNumber(max)
		return tx.Create(instruction).Error
	})
}

func (r *instructionRepository) UpdateInstruction(ctx context.Context, id string, updates map[string]interface{}) error {
	res := r.db.WithContext(ctx).Model(&entities.Instruction{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteInstruction removes a step and closes the gap it leaves. Steps before
// it keep their numbers. The whole operation is one transaction.
func (r *instructionRepository) DeleteInstruction(ctx context.Context, id string) (*entities.Instruction, error) {
	var deleted entities.Instruction

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&deleted).Error; err != nil {
			return err
		}
		if err := lockRecipe(tx, deleted.RecipeID); err != nil {
			return err
		}
		// re-read under the lock, a concurrent reorder may have moved it
		if err := tx.Where("id = ?", id).First(&deleted).Error; err != nil {
			return err
		}

		if err := tx.Delete(&entities.Instruction{}, "id = ?", deleted.ID).Error; err != nil {
			return err
		}

		// Two passes so the unique (recipe_id, step_number) index never sees a
		// duplicate: later steps move to negative numbers, then flip back.
		if err := tx.Model(&entities.Instruction{}).
			Where("recipe_id = ? AND step_number > ?", deleted.RecipeID, deleted.StepNumber).
			Update("step_number", gorm.Expr("1 - step_number")).Error; err != nil {
			return err
		}
		if err := flipNegativeSteps(tx, deleted.RecipeID); err != nil {
			return err
		}
		return checkSequence(tx, deleted.RecipeID)
	})
	if err != nil {
		return nil, err
	}
	return &deleted, nil
}

// ReorderInstructions assigns step numbers from the order returned by arrange,
// which receives the current ids ordered by step number.
func (r *instructionRepository) ReorderInstructions(ctx context.Context, recipeID string, arrange func(current []uuid.UUID) ([]uuid.UUID, error)) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockRecipe(tx, recipeID); err != nil {
			return err
		}

		var current []uuid.UUID
		if err := tx.Model(&entities.Instruction{}).
			Where("recipe_id = ?", recipeID).
			Order("step_number asc").
			Pluck("id", &current).Error; err != nil {
			return err
		}

		order, err := arrange(current)
		if err != nil {
			return err
		}

		for i, id := range order {
			if err := tx.Model(&entities.Instruction{}).
				Where("id = ? AND recipe_id = ?", id, recipeID).
				Update("step_number", -(i + 1)).Error; err != nil {
				return err
			}
		}
		if err := flipNegativeSteps(tx, recipeID); err != nil {
			return err
		}
		return checkSequence(tx, recipeID)
	})
}

func flipNegativeSteps(tx *gorm.DB, recipeID interface{}) error {
	return tx.Model(&entities.Instruction{}).
		Where("recipe_id = ? AND step_number < 0", recipeID).
		Update("step_number", gorm.Expr("-step_number")).Error
}

// checkSequence fails tx unless the recipe's steps are numbered 1..N.
func checkSequence(tx *gorm.DB, recipeID interface{}) error {
	var steps []int
	if err := tx.Model(&entities.Instruction{}).
		Where("recipe_id = ?", recipeID).
		Pluck("step_number", &steps).Error; err != nil {
		return err
	}
	if !Contiguous(steps) {
		return fmt.Errorf("step numbers of recipe %v not contiguous: %v", recipeID, steps)
	}
	return nil
}
