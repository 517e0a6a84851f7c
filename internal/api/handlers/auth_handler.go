package handlers

import (
	"Meal-Planner/domain"
	"Meal-Planner/internal/api/presenters"
	"Meal-Planner/pkg/auth"
	"Meal-Planner/pkg/user"
	"time"

	"github.com/gofiber/fiber/v2"
)

const stateCookie = "oauth_state"

type (
	AuthHandler interface {
		GoogleLogin(c *fiber.Ctx) error
		GoogleCallback(c *fiber.Ctx) error
		Me(c *fiber.Ctx) error
	}

	authHandler struct {
		authService auth.AuthService
		userService user.UserService
	}
)

func NewAuthHandler(authService auth.AuthService, userService user.UserService) AuthHandler {
	return &authHandler{
		authService: authService,
		userService: userService,
	}
}

func (h *authHandler) GoogleLogin(c *fiber.Ctx) error {
	link, state, err := h.authService.LoginURL()
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedLogin, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     stateCookie,
		Value:    state,
		Expires:  time.Now().Add(10 * time.Minute),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.Redirect(link, fiber.StatusTemporaryRedirect)
}

func (h *authHandler) GoogleCallback(c *fiber.Ctx) error {
	expected := c.Cookies(stateCookie)
	c.ClearCookie(stateCookie)

	res, err := h.authService.Callback(c.Context(), c.Query("state"), expected, c.Query("code"))
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedLogin, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessLogin)
}

func (h *authHandler) Me(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.userService.Me(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetMe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMe)
}
