package handlers

import (
	"Meal-Planner/domain"
	"Meal-Planner/internal/api/presenters"
	"Meal-Planner/pkg/unit"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	UnitHandler interface {
		GetUnits(c *fiber.Ctx) error
		Convert(c *fiber.Ctx) error
	}

	unitHandler struct {
		unitService unit.UnitService
		validator   *validator.Validate
	}
)

func NewUnitHandler(unitService unit.UnitService, validator *validator.Validate) UnitHandler {
	return &unitHandler{
		unitService: unitService,
		validator:   validator,
	}
}

func (h *unitHandler) GetUnits(c *fiber.Ctx) error {
	res, err := h.unitService.ListUnits(c.Query("category"))
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetUnits, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetUnits)
}

func (h *unitHandler) Convert(c *fiber.Ctx) error {
	req := new(domain.ConvertRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedConvert, err)
	}

	return presenters.SuccessResponse(c, h.unitService.Convert(*req), fiber.StatusOK, domain.MessageSuccessConvert)
}
