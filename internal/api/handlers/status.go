package handlers

import (
	"Meal-Planner/domain"
	"Meal-Planner/internal/utils/storage"
	"errors"

	"github.com/gofiber/fiber/v2"
)

var (
	notFoundErrors = []error{
		domain.ErrRecipeNotFound,
		domain.ErrInventoryItemNotFound,
		domain.ErrIngredientNotFound,
		domain.ErrInstructionNotFound,
		domain.ErrUserNotFound,
	}

	forbiddenErrors = []error{
		domain.ErrUnauthorizedAccess,
		domain.ErrUnauthorizedRecipeAccess,
		domain.ErrUserNotAllowed,
	}

	unauthorizedErrors = []error{
		domain.ErrOAuthStateMismatch,
		domain.ErrOAuthExchange,
		domain.ErrOAuthProfile,
		domain.ErrEmailNotVerified,
	}

	badRequestErrors = []error{
		domain.ErrParseUUID,
		domain.ErrNoFieldsUpdate,
		domain.ErrUnitUnknown,
		domain.ErrUnknownCategory,
		domain.ErrInventoryNameRequired,
		domain.ErrInvalidQuantity,
		domain.ErrInvalidDensity,
		domain.ErrRecipeNameRequired,
		domain.ErrInvalidMinutes,
		domain.ErrInvalidAmount,
		domain.ErrInstructionTextRequired,
		domain.ErrNothingToReorder,
		domain.ErrInstructionSetMismatch,
		domain.ErrDuplicateInstruction,
		storage.ErrFileTypeNotAllowed,
	}

	conflictErrors = []error{
		domain.ErrInventoryItemInUse,
		domain.ErrEmptyShoppingList,
	}
)

func matches(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// statusFor maps service errors to HTTP status codes. Anything unknown is a server error.
func statusFor(err error) int {
	switch {
	case matches(err, notFoundErrors):
		return fiber.StatusNotFound
	case matches(err, forbiddenErrors):
		return fiber.StatusForbidden
	case matches(err, unauthorizedErrors):
		return fiber.StatusUnauthorized
	case matches(err, badRequestErrors):
		return fiber.StatusBadRequest
	case matches(err, conflictErrors):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

func pagination(c *fiber.Ctx) (int, int) {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := c.QueryInt("limit", 20)
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}
