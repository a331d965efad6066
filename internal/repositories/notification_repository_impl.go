package repositories

import (
	"context"
	"errors"
	"time"

	"sops/internal/models"

	"gorm.io/gorm"
)

type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new instance of NotificationRepository.
func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, n *models.Notification) error {
	if err := r.db.WithContext(ctx).Create(n).Error; err != nil {
		return ErrDatabaseOperation
	}
	return nil
}

func (r *notificationRepository) GetByID(ctx context.Context, id uint) (*models.Notification, error) {
	var n models.Notification
	if err := r.db.WithContext(ctx).First(&n, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, ErrDatabaseOperation
	}
	return &n, nil
}

func (r *notificationRepository) List(ctx context.Context) ([]models.Notification, error) {
	var ns []models.Notification
	if err := r.db.WithContext(ctx).Order("id").Find(&ns).Error; err != nil {
		return nil, ErrDatabaseOperation
	}
	return ns, nil
}

func (r *notificationRepository) ListByUser(ctx context.Context, userID uint) ([]models.Notification, error) {
	var ns []models.Notification
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&ns).Error; err != nil {
		return nil, ErrDatabaseOperation
	}
	return ns, nil
}

func (r *notificationRepository) ListByTransaction(ctx context.Context, transactionID uint) ([]models.Notification, error) {
	var ns []models.Notification
	if err := r.db.WithContext(ctx).Where("transaction_id = ?", transactionID).Order("id").Find(&ns).Error; err != nil {
		return nil, ErrDatabaseOperation
	}
	return ns, nil
}

func (r *notificationRepository) ListByStatus(ctx context.Context, status string) ([]models.Notification, error) {
	var ns []models.Notification
	if err := r.db.WithContext(ctx).Where("status = ?", status).Order("id").Find(&ns).Error; err != nil {
		return nil, ErrDatabaseOperation
	}
	return ns, nil
}

func (r *notificationRepository) ListByCreatedBetween(ctx context.Context, start, end time.Time) ([]models.Notification, error) {
	var ns []models.Notification
	if err := r.db.WithContext(ctx).Where("created_at BETWEEN ? AND ?", start, end).Order("id").Find(&ns).Error; err != nil {
		return nil, ErrDatabaseOperation
	}
	return ns, nil
}

func (r *notificationRepository) Update(ctx context.Context, n *models.Notification) error {
	if err := r.db.WithContext(ctx).Save(n).Error; err != nil {
		return ErrDatabaseOperation
	}
	return nil
}

func (r *notificationRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Notification{}, id).Error; err != nil {
		return ErrDatabaseOperation
	}
	return nil
}
