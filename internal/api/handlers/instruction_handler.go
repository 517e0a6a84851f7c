package handlers

import (
	"Meal-Planner/domain"
	"Meal-Planner/internal/api/presenters"
	"Meal-Planner/pkg/instruction"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	InstructionHandler interface {
		GetInstructions(c *fiber.Ctx) error
		AddInstruction(c *fiber.Ctx) error
		UpdateInstruction(c *fiber.Ctx) error
		DeleteInstruction(c *fiber.Ctx) error
		ReorderInstructions(c *fiber.Ctx) error
	}

	instructionHandler struct {
		instructionService instruction.InstructionService
		validator          *validator.Validate
	}
)

func NewInstructionHandler(instructionService instruction.InstructionService, validator *validator.Validate) InstructionHandler {
	return &instructionHandler{
		instructionService: instructionService,
		validator:          validator,
	}
}

func (h *instructionHandler) GetInstructions(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.instructionService.GetInstructions(c.Context(), c.Params("id"), userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetInstructions, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetInstructions)
}

func (h *instructionHandler) AddInstruction(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddInstructionRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddInstruction, err)
	}

	res, err := h.instructionService.AddInstruction(c.Context(), c.Params("id"), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedAddInstruction, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddInstruction)
}

func (h *instructionHandler) UpdateInstruction(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.UpdateInstructionRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.instructionService.UpdateInstruction(c.Context(), c.Params("id"), c.Params("instructionId"), *req, userID); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedUpdateInstruction, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateInstruction)
}

func (h *instructionHandler) DeleteInstruction(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := h.instructionService.DeleteInstruction(c.Context(), c.Params("id"), c.Params("instructionId"), userID); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedDeleteInstruction, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteInstruction)
}

func (h *instructionHandler) ReorderInstructions(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.ReorderInstructionsRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	// ids are checked by the service so the reorder policy decides what a bad id means
	res, err := h.instructionService.ReorderInstructions(c.Context(), c.Params("id"), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedReorderInstructions, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessReorderInstructions)
}
