package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"sops/internal/models"
	"sops/internal/services/transaction"
	"sops/internal/utils/response"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubTransactionService returns canned answers per method.
type stubTransactionService struct {
	createErr error
	getErr    error
	tx        *models.Transaction
}

func (s *stubTransactionService) Create(_ context.Context, _ transaction.CreateTransactionInput) (*models.Transaction, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return s.tx, nil
}

func (s *stubTransactionService) GetByID(_ context.Context, _ uint) (*models.Transaction, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.tx, nil
}

func (s *stubTransactionService) List(_ context.Context) ([]models.Transaction, error) {
	return nil, nil
}

func (s *stubTransactionService) ListBySender(_ context.Context, _ uint) ([]models.Transaction, error) {
	return nil, nil
}

func (s *stubTransactionService) ListByRecipient(_ context.Context, _ uint) ([]models.Transaction, error) {
	return nil, nil
}

func (s *stubTransactionService) ListByStatus(_ context.Context, _ string) ([]models.Transaction, error) {
	return nil, nil
}

func (s *stubTransactionService) ListByCreatedBetween(_ context.Context, _, _ time.Time) ([]models.Transaction, error) {
	return nil, nil
}

func (s *stubTransactionService) UpdateStatus(_ context.Context, _ uint, _ string) (*models.Transaction, error) {
	return s.tx, nil
}

func (s *stubTransactionService) Delete(_ context.Context, _ uint) error {
	return nil
}

func newTestApp(svc transaction.Service) *fiber.App {
	app := fiber.New()
	h := NewTransactionHandler(svc)
	app.Post("/api/v1/transactions", h.Create)
	app.Get("/api/v1/transactions/:id", h.GetByID)
	return app
}

func TestTransactionHandler_ErrorEnvelope(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"merchant sender maps to 400", transaction.ErrTransactionNotAllowed, fiber.StatusBadRequest},
		{"self transfer maps to 400", transaction.ErrSelfTransfer, fiber.StatusBadRequest},
		{"insufficient balance maps to 400", transaction.ErrInsufficientBalance, fiber.StatusBadRequest},
		{"creation failure maps to 400", transaction.ErrCreationFailed, fiber.StatusBadRequest},
		{"unanticipated fault maps to 500", io.ErrUnexpectedEOF, fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(&stubTransactionService{createErr: tt.err})

			req := httptest.NewRequest("POST", "/api/v1/transactions",
				strings.NewReader(`{"sender_id":1,"recipient_id":2,"amount":"50.00"}`))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			var body response.ErrorBody
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.WithinDuration(t, time.Now(), body.Timestamp, time.Minute)
			assert.Equal(t, "POST /api/v1/transactions", body.Details)
			if tt.wantStatus == fiber.StatusInternalServerError {
				assert.NotContains(t, body.Message, tt.err.Error(), "internal detail must not leak")
			} else {
				assert.Equal(t, tt.err.Error(), body.Message)
			}
		})
	}
}

func TestTransactionHandler_Create_RejectsMissingParties(t *testing.T) {
	app := newTestApp(&stubTransactionService{})

	req := httptest.NewRequest("POST", "/api/v1/transactions",
		strings.NewReader(`{"amount":"50.00"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestTransactionHandler_GetByID(t *testing.T) {
	t.Run("missing transaction maps to 404", func(t *testing.T) {
		app := newTestApp(&stubTransactionService{getErr: transaction.ErrTransactionNotFound})

		resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/transactions/404", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("malformed id maps to 400", func(t *testing.T) {
		app := newTestApp(&stubTransactionService{})

		resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/transactions/abc", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}
