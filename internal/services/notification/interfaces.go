package notification

import (
	"context"
	"time"

	"sops/internal/models"
)

// CreateNotificationInput carries a notification request into the service.
type CreateNotificationInput struct {
	UserID        uint   `json:"user_id"`
	TransactionID uint   `json:"transaction_id"`
	Channel       string `json:"channel"`
	Destination   string `json:"destination"`
	Subject       string `json:"subject"`
	Message       string `json:"message"`
}

// Service handles outcome notifications for transactions.
type Service interface {
	Create(ctx context.Context, input CreateNotificationInput) (*models.Notification, error)
	GetByID(ctx context.Context, id uint) (*models.Notification, error)
	List(ctx context.Context) ([]models.Notification, error)
	ListByUser(ctx context.Context, userID uint) ([]models.Notification, error)
	ListByTransaction(ctx context.Context, transactionID uint) ([]models.Notification, error)
	ListByStatus(ctx context.Context, status string) ([]models.Notification, error)
	ListByCreatedBetween(ctx context.Context, start, end time.Time) ([]models.Notification, error)
	UpdateStatus(ctx context.Context, id uint, rawStatus string) (*models.Notification, error)
	Delete(ctx context.Context, id uint) error
}
