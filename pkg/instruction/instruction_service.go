package instruction

import (
	"Meal-Planner/domain"
	"Meal-Planner/entities"
	"Meal-Planner/internal/logger"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// appendAttempts bounds retries of an append that lost the step number race.
const appendAttempts = 3

type (
	InstructionService interface {
		GetInstructions(ctx context.Context, recipeID string, userID string) ([]domain.Instruction, error)
		AddInstruction(ctx context.Context, recipeID string, req domain.AddInstructionRequest, userID string) (domain.Instruction, error)
		UpdateInstruction(ctx context.Context, recipeID, id string, req domain.UpdateInstructionRequest, userID string) error
		DeleteInstruction(ctx context.Context, recipeID, id string, userID string) error
		ReorderInstructions(ctx context.Context, recipeID string, req domain.ReorderInstructionsRequest, userID string) ([]domain.Instruction, error)
	}

	instructionService struct {
		instructionRepository InstructionRepository
		policy                ReorderPolicy
	}
)

func NewInstructionService(instructionRepository InstructionRepository, policy ReorderPolicy) InstructionService {
	return &instructionService{
		instructionRepository: instructionRepository,
		policy:                policy,
	}
}

func ToDomain(ins *entities.Instruction) domain.Instruction {
	return domain.Instruction{
		ID:         ins.ID.String(),
		StepNumber: ins.StepNumber,
		Text:       ins.Text,
		Detail:     ins.Detail,
	}
}

func (s *instructionService) authorize(ctx context.Context, recipeID, userID string) error {
	if _, err := uuid.Parse(recipeID); err != nil {
		return domain.ErrRecipeNotFound
	}

	owner, err := s.instructionRepository.GetRecipeOwner(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}
	if owner.String() != userID {
		return domain.ErrUnauthorizedRecipeAccess
	}
	return nil
}

// instructionOf loads an instruction and checks that it belongs to recipeID.
func (s *instructionService) instructionOf(ctx context.Context, recipeID, id string) (*entities.Instruction, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrInstructionNotFound
	}

	ins, err := s.instructionRepository.GetInstructionByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInstructionNotFound
		}
		return nil, err
	}
	if ins.RecipeID.String() != recipeID {
		return nil, domain.ErrInstructionNotFound
	}
	return ins, nil
}

func (s *instructionService) GetInstructions(ctx context.Context, recipeID string, userID string) ([]domain.Instruction, error) {
	if err := s.authorize(ctx, recipeID, userID); err != nil {
		return nil, err
	}

	instructions, err := s.instructionRepository.GetInstructionsByRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	res := make([]domain.Instruction, 0, len(instructions))
	for _, ins := range instructions {
		res = append(res, ToDomain(ins))
	}
	return res, nil
}

func (s *instructionService) AddInstruction(ctx context.Context, recipeID string, req domain.AddInstructionRequest, userID string) (domain.Instruction, error) {
	if err := s.authorize(ctx, recipeID, userID); err != nil {
		return domain.Instruction{}, err
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		return domain.Instruction{}, domain.ErrInstructionTextRequired
	}

	var detail *string
	if d := strings.TrimSpace(req.Detail); d != "" {
		detail = &d
	}

	recipeUUID := uuid.MustParse(recipeID)

	var err error
	for attempt := 1; attempt <= appendAttempts; attempt++ {
		ins := &entities.Instruction{
			RecipeID: recipeUUID,
			Text:     text,
			Detail:   detail,
		}

		err = s.instructionRepository.AppendInstruction(ctx, ins)
		if err == nil {
			return ToDomain(ins), nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			break
		}

		logger.Warn("step number taken, retrying append",
			zap.String("recipe_id", recipeID),
			zap.Int("attempt", attempt),
		)
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Instruction{}, domain.ErrRecipeNotFound
	}
	logger.Error("append instruction failed", zap.String("recipe_id", recipeID), zap.Error(err))
	return domain.Instruction{}, err
}

func (s *instructionService) UpdateInstruction(ctx context.Context, recipeID, id string, req domain.UpdateInstructionRequest, userID string) error {
	if err := s.authorize(ctx, recipeID, userID); err != nil {
		return err
	}

	updates := map[string]interface{}{}
	if req.Text != nil {
		text := strings.TrimSpace(*req.Text)
		if text == "" {
			return domain.ErrInstructionTextRequired
		}
		updates["text"] = text
	}
	if req.Detail != nil {
		if d := strings.TrimSpace(*req.Detail); d != "" {
			updates["detail"] = d
		} else {
			updates["detail"] = nil
		}
	}
	if len(updates) == 0 {
		return domain.ErrNoFieldsUpdate
	}

	if _, err := s.instructionOf(ctx, recipeID, id); err != nil {
		return err
	}

	if err := s.instructionRepository.UpdateInstruction(ctx, id, updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrInstructionNotFound
		}
		return err
	}
	return nil
}

func (s *instructionService) DeleteInstruction(ctx context.Context, recipeID, id string, userID string) error {
	if err := s.authorize(ctx, recipeID, userID); err != nil {
		return err
	}
	if _, err := s.instructionOf(ctx, recipeID, id); err != nil {
		return err
	}

	deleted, err := s.instructionRepository.DeleteInstruction(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrInstructionNotFound
		}
		logger.Error("delete instruction rolled back",
			zap.String("recipe_id", recipeID),
			zap.String("instruction_id", id),
			zap.Error(err),
		)
		return fmt.Errorf("%w: %v", domain.ErrSequenceUpdateFailed, err)
	}

	logger.Debug("instruction deleted",
		zap.String("recipe_id", recipeID),
		zap.Int("step_number", deleted.StepNumber),
	)
	return nil
}

func (s *instructionService) ReorderInstructions(ctx context.Context, recipeID string, req domain.ReorderInstructionsRequest, userID string) ([]domain.Instruction, error) {
	if err := s.authorize(ctx, recipeID, userID); err != nil {
		return nil, err
	}
	if len(req.OrderedIDs) == 0 {
		return nil, domain.ErrNothingToReorder
	}

	requested := make([]uuid.UUID, 0, len(req.OrderedIDs))
	for _, raw := range req.OrderedIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			if s.policy == ReorderStrict {
				return nil, domain.ErrInstructionSetMismatch
			}
			continue
		}
		requested = append(requested, id)
	}

	err := s.instructionRepository.ReorderInstructions(ctx, recipeID, func(current []uuid.UUID) ([]uuid.UUID, error) {
		return Arrange(current, requested, s.policy)
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInstructionSetMismatch),
			errors.Is(err, domain.ErrDuplicateInstruction),
			errors.Is(err, domain.ErrNothingToReorder):
			return nil, err
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, domain.ErrRecipeNotFound
		}
		logger.Error("reorder instructions rolled back", zap.String("recipe_id", recipeID), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", domain.ErrSequenceUpdateFailed, err)
	}

	return s.GetInstructions(ctx, recipeID, userID)
}
