package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	applog "tillpoint/internal/log"
	"tillpoint/internal/services"
)

type AuthHandler struct {
	Auth *services.AuthService
}

type loginBody struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login is a one-shot credential check; no session or token is issued.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var body loginBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	u, err := h.Auth.Login(body.Username, body.Password)
	if errors.Is(err, services.ErrBadCredentials) {
		applog.Security(c, "auth.login.fail", map[string]any{"username": body.Username})
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid credentials"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	applog.Audit(c, "auth.login.success", map[string]any{"username": u.Username})
	return c.JSON(fiber.Map{
		"success": true,
		"user":    fiber.Map{"id": u.ID, "username": u.Username},
	})
}
