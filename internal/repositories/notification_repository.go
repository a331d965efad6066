package repositories

import (
	"context"
	"time"

	"sops/internal/models"
)

// NotificationRepository defines notification persistence operations.
type NotificationRepository interface {
	Create(ctx context.Context, n *models.Notification) error
	GetByID(ctx context.Context, id uint) (*models.Notification, error)
	List(ctx context.Context) ([]models.Notification, error)
	ListByUser(ctx context.Context, userID uint) ([]models.Notification, error)
	ListByTransaction(ctx context.Context, transactionID uint) ([]models.Notification, error)
	ListByStatus(ctx context.Context, status string) ([]models.Notification, error)
	ListByCreatedBetween(ctx context.Context, start, end time.Time) ([]models.Notification, error)
	Update(ctx context.Context, n *models.Notification) error
	Delete(ctx context.Context, id uint) error
}
