package handlers

import (
	"sops/internal/models"
	"sops/internal/services/user"
	"sops/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// UserHandler exposes account-holder endpoints.
type UserHandler struct {
	service user.Service
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(s user.Service) *UserHandler {
	return &UserHandler{service: s}
}

// Create handles POST /api/v1/users.
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var input models.CreateUserInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "invalid request body")
	}
	if input.LegalName == "" || input.Email == "" || input.DocumentNumber == "" || input.Password == "" {
		return response.BadRequest(c, "legal_name, email, document_number and password are required")
	}
	if input.Balance.IsNegative() {
		return response.BadRequest(c, "balance cannot be negative")
	}

	u, err := h.service.Create(c.Context(), &input)
	if err != nil {
		return respondError(c, err)
	}
	return response.Created(c, u)
}

// List handles GET /api/v1/users.
func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.service.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return response.OK(c, users)
}

// GetByID handles GET /api/v1/users/:id.
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "invalid user id")
	}

	u, err := h.service.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return response.OK(c, u)
}

// GetByEmail handles GET /api/v1/users/email/:email.
func (h *UserHandler) GetByEmail(c *fiber.Ctx) error {
	u, err := h.service.GetByEmail(c.Context(), c.Params("email"))
	if err != nil {
		return respondError(c, err)
	}
	return response.OK(c, u)
}

// GetByDocumentNumber handles GET /api/v1/users/document/:documentNumber.
func (h *UserHandler) GetByDocumentNumber(c *fiber.Ctx) error {
	u, err := h.service.GetByDocumentNumber(c.Context(), c.Params("documentNumber"))
	if err != nil {
		return respondError(c, err)
	}
	return response.OK(c, u)
}

// UpdateEmail handles PUT /api/v1/users/:id/email.
func (h *UserHandler) UpdateEmail(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "invalid user id")
	}

	var body struct {
		CurrentPassword string `json:"current_password"`
		NewEmail        string `json:"new_email"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	u, err := h.service.UpdateEmail(c.Context(), id, body.CurrentPassword, body.NewEmail)
	if err != nil {
		return respondError(c, err)
	}
	return response.OK(c, u)
}

// UpdatePassword handles PUT /api/v1/users/:id/password.
func (h *UserHandler) UpdatePassword(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "invalid user id")
	}

	var body struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	u, err := h.service.UpdatePassword(c.Context(), id, body.CurrentPassword, body.NewPassword)
	if err != nil {
		return respondError(c, err)
	}
	return response.OK(c, u)
}

// Delete handles DELETE /api/v1/users/:id.
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "invalid user id")
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return response.NoContent(c)
}
