package handlers

import (
	"strconv"
	"time"

	"sops/internal/services/transaction"
	"sops/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// TransactionHandler exposes transfer endpoints.
type TransactionHandler struct {
	service transaction.Service
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(s transaction.Service) *TransactionHandler {
	return &TransactionHandler{service: s}
}

// Create handles POST /api/v1/transactions.
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	var input transaction.CreateTransactionInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "invalid request body")
	}
	if input.SenderID == 0 || input.RecipientID == 0 {
		return response.BadRequest(c, "sender_id and recipient_id are required")
	}
	if len(input.Description) > 255 {
		return response.BadRequest(c, "description must be at most 255 characters")
	}

	tx, err := h.service.Create(c.Context(), input)
	if err != nil {
		return respondError(c, err)
	}
	return response.Created(c, tx)
}

// List handles GET /api/v1/transactions.
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	txs, err := h.service.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return response.OK(c, txs)
}

// GetByID handles GET /api/v1/transactions/:id.
func (h *TransactionHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "invalid transaction id")
	}

	tx, err := h.service.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return response.OK(c, tx)
}

// ListBySender handles GET /api/v1/transactions/sender/:senderId.
func (h *TransactionHandler) ListBySender(c *fiber.Ctx) error {
	id, err := parseID(c, "senderId")
	if err != nil {
		return response.BadRequest(c, "invalid sender id")
	}

	txs, err := h.service.ListBySender(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return response.OK(c, txs)
}

// ListByRecipient handles GET /api/v1/transactions/recipient/:recipientId.
func (h *TransactionHandler) ListByRecipient(c *fiber.Ctx) error {
	id, err := parseID(c, "recipientId")
	if err != nil {
		return response.BadRequest(c, "invalid recipient id")
	}

	txs, err := h.service.ListByRecipient(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return response.OK(c, txs)
}

// ListByStatus handles GET /api/v1/transactions/status/:status.
func (h *TransactionHandler) ListByStatus(c *fiber.Ctx) error {
	txs, err := h.service.ListByStatus(c.Context(), c.Params("status"))
	if err != nil {
		return respondError(c, err)
	}
	return response.OK(c, txs)
}

// ListByPeriod handles GET /api/v1/transactions/period?start=&end=.
func (h *TransactionHandler) ListByPeriod(c *fiber.Ctx) error {
	start, end, err := parsePeriod(c)
	if err != nil {
		return response.BadRequest(c, "start and end must be RFC 3339 timestamps")
	}

	txs, err := h.service.ListByCreatedBetween(c.Context(), start, end)
	if err != nil {
		return respondError(c, err)
	}
	return response.OK(c, txs)
}

// UpdateStatus handles PATCH /api/v1/transactions/:id/status.
func (h *TransactionHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "invalid transaction id")
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	tx, err := h.service.UpdateStatus(c.Context(), id, body.Status)
	if err != nil {
		return respondError(c, err)
	}
	return response.OK(c, tx)
}

// Delete handles DELETE /api/v1/transactions/:id.
func (h *TransactionHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "invalid transaction id")
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return response.NoContent(c)
}

func parseID(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func parsePeriod(c *fiber.Ctx) (time.Time, time.Time, error) {
	start, err := time.Parse(time.RFC3339, c.Query("start"))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := time.Parse(time.RFC3339, c.Query("end"))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}
