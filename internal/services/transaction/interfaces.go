package transaction

import (
	"context"
	"time"

	"sops/internal/models"

	"github.com/shopspring/decimal"
)

// CreateTransactionInput carries a transfer request into the service.
type CreateTransactionInput struct {
	SenderID    uint            `json:"sender_id"`
	RecipientID uint            `json:"recipient_id"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// Service handles funds transfers between users.
type Service interface {
	Create(ctx context.Context, input CreateTransactionInput) (*models.Transaction, error)
	GetByID(ctx context.Context, id uint) (*models.Transaction, error)
	List(ctx context.Context) ([]models.Transaction, error)
	ListBySender(ctx context.Context, senderID uint) ([]models.Transaction, error)
	ListByRecipient(ctx context.Context, recipientID uint) ([]models.Transaction, error)
	ListByStatus(ctx context.Context, status string) ([]models.Transaction, error)
	ListByCreatedBetween(ctx context.Context, start, end time.Time) ([]models.Transaction, error)
	UpdateStatus(ctx context.Context, id uint, rawStatus string) (*models.Transaction, error)
	Delete(ctx context.Context, id uint) error
}
