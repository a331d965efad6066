package handlers

import (
	"sops/internal/services/notification"
	"sops/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// NotificationHandler exposes notification endpoints.
type NotificationHandler struct {
	service notification.Service
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(s notification.Service) *NotificationHandler {
	return &NotificationHandler{service: s}
}

// Create handles POST /api/v1/notifications.
func (h *NotificationHandler) Create(c *fiber.Ctx) error {
	var input notification.CreateNotificationInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "invalid request body")
	}
	if input.UserID == 0 || input.TransactionID == 0 {
		return response.BadRequest(c, "user_id and transaction_id are required")
	}
	if input.Destination == "" || input.Subject == "" || input.Message == "" {
		return response.BadRequest(c, "destination, subject and message are required")
	}

	n, err := h.service.Create(c.Context(), input)
	if err != nil {
		return respondError(c, err)
	}
	return response.Created(c, n)
}

// List handles GET /api/v1/notifications.
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	ns, err := h.service.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return response.OK(c, ns)
}

// GetByID handles GET /api/v1/notifications/:id.
func (h *NotificationHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "invalid notification id")
	}

	n, err := h.service.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return response.OK(c, n)
}

// ListByUser handles GET /api/v1/notifications/user/:userId.
func (h *NotificationHandler) ListByUser(c *fiber.Ctx) error {
	id, err := parseID(c, "userId")
	if err != nil {
		return response.BadRequest(c, "invalid user id")
	}

	ns, err := h.service.ListByUser(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return response.OK(c, ns)
}

// ListByTransaction handles GET /api/v1/notifications/transaction/:transactionId.
func (h *NotificationHandler) ListByTransaction(c *fiber.Ctx) error {
	id, err := parseID(c, "transactionId")
	if err != nil {
		return response.BadRequest(c, "invalid transaction id")
	}

	ns, err := h.service.ListByTransaction(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return response.OK(c, ns)
}

// ListByStatus handles GET /api/v1/notifications/status/:status.
func (h *NotificationHandler) ListByStatus(c *fiber.Ctx) error {
	ns, err := h.service.ListByStatus(c.Context(), c.Params("status"))
	if err != nil {
		return respondError(c, err)
	}
	return response.OK(c, ns)
}

// ListByPeriod handles GET /api/v1/notifications/period?start=&end=.
func (h *NotificationHandler) ListByPeriod(c *fiber.Ctx) error {
	start, end, err := parsePeriod(c)
	if err != nil {
		return response.BadRequest(c, "start and end must be RFC 3339 timestamps")
	}

	ns, err := h.service.ListByCreatedBetween(c.Context(), start, end)
	if err != nil {
		return respondError(c, err)
	}
	return response.OK(c, ns)
}

// UpdateStatus handles PATCH /api/v1/notifications/:id/status.
func (h *NotificationHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "invalid notification id")
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	n, err := h.service.UpdateStatus(c.Context(), id, body.Status)
	if err != nil {
		return respondError(c, err)
	}
	return response.OK(c, n)
}

// Delete handles DELETE /api/v1/notifications/:id.
func (h *NotificationHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "invalid notification id")
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return response.NoContent(c)
}
