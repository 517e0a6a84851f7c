package domain

import "errors"

var (
	MessageSuccessAddInstruction      = "instruction added successfully"
	MessageSuccessUpdateInstruction   = "instruction updated successfully"
	MessageSuccessDeleteInstruction   = "instruction deleted successfully"
	MessageSuccessReorderInstructions = "instructions reordered successfully"
	MessageSuccessGetInstructions     = "success get instructions"

	MessageFailedAddInstruction      = "failed to add instruction"
	MessageFailedUpdateInstruction   = "failed to update instruction"
	MessageFailedDeleteInstruction   = "failed to delete instruction"
	MessageFailedReorderInstructions = "failed to reorder instructions"
	MessageFailedGetInstructions     = "failed to get instructions"

	ErrInstructionNotFound     = errors.New("instruction not found")
	ErrInstructionTextRequired = errors.New("instruction text is required")
	ErrNothingToReorder        = errors.New("no instructions to reorder")
	ErrInstructionSetMismatch  = errors.New("order does not match the recipe's instructions")
	ErrDuplicateInstruction    = errors.New("instruction listed more than once")
	ErrSequenceUpdateFailed    = errors.New("failed to update step numbers")
)

type (
	AddInstructionRequest struct {
		Text   string `json:"text" validate:"required"`
		Detail string `json:"detail"`
	}

	UpdateInstructionRequest struct {
		Text   *string `json:"text"`
		Detail *string `json:"detail"`
	}

	ReorderInstructionsRequest struct {
		OrderedIDs []string `json:"ordered_ids"`
	}

	Instruction struct {
		ID         string  `json:"id"`
		StepNumber int     `json:"step_number"`
		Text       string  `json:"text"`
		Detail     *string `json:"detail"`
	}
)
