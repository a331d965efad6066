package handlers

import (
	"errors"

	"sops/internal/services/auth"
	"sops/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler exposes the login endpoint.
type AuthHandler struct {
	service auth.Service
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(s auth.Service) *AuthHandler {
	return &AuthHandler{service: s}
}

// Login handles POST /api/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	token, u, err := h.service.Login(c.Context(), body.Email, body.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return response.Error(c, fiber.StatusUnauthorized, err.Error())
		}
		return respondError(c, err)
	}

	return response.OK(c, fiber.Map{
		"token": token,
		"user":  u,
	})
}
