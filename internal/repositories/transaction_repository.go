package repositories

import (
	"context"
	"time"

	"sops/internal/models"
)

// TransactionRepository defines transaction persistence operations.
type TransactionRepository interface {
	Create(ctx context.Context, tx *models.Transaction) error
	GetByID(ctx context.Context, id uint) (*models.Transaction, error)
	List(ctx context.Context) ([]models.Transaction, error)
	ListBySender(ctx context.Context, senderID uint) ([]models.Transaction, error)
	ListByRecipient(ctx context.Context, recipientID uint) ([]models.Transaction, error)
	ListByStatus(ctx context.Context, status string) ([]models.Transaction, error)
	ListByCreatedBetween(ctx context.Context, start, end time.Time) ([]models.Transaction, error)
	Update(ctx context.Context, tx *models.Transaction) error
	Delete(ctx context.Context, id uint) error
}
