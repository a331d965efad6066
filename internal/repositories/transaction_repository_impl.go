package repositories

import (
	"context"
	"errors"
	"log"
	"time"

	"sops/internal/models"
	"sops/internal/repositories/cache"

	"gorm.io/gorm"
)

type transactionRepository struct {
	db    *gorm.DB
	cache *cache.CacheService
}

// NewTransactionRepository creates a new instance of TransactionRepository.
func NewTransactionRepository(db *gorm.DB, cache *cache.CacheService) TransactionRepository {
	return &transactionRepository{
		db:    db,
		cache: cache,
	}
}

func (r *transactionRepository) Create(ctx context.Context, tx *models.Transaction) error {
	if err := r.db.WithContext(ctx).Create(tx).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateRecord
		}
		return ErrDatabaseOperation
	}
	return nil
}

func (r *transactionRepository) GetByID(ctx context.Context, id uint) (*models.Transaction, error) {
	if r.cache != nil {
		if tx, err := r.cache.GetTransaction(ctx, id); err == nil {
			return tx, nil
		}
	}

	var tx models.Transaction
	if err := r.db.WithContext(ctx).First(&tx, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, ErrDatabaseOperation
	}

	if r.cache != nil {
		if err := r.cache.CacheTransaction(ctx, &tx); err != nil {
			log.Printf("failed to cache transaction %d: %v", tx.ID, err)
		}
	}
	return &tx, nil
}

func (r *transactionRepository) List(ctx context.Context) ([]models.Transaction, error) {
	var txs []models.Transaction
	if err := r.db.WithContext(ctx).Order("id").Find(&txs).Error; err != nil {
		return nil, ErrDatabaseOperation
	}
	return txs, nil
}

func (r *transactionRepository) ListBySender(ctx context.Context, senderID uint) ([]models.Transaction, error) {
	var txs []models.Transaction
	if err := r.db.WithContext(ctx).Where("sender_id = ?", senderID).Order("id").Find(&txs).Error; err != nil {
		return nil, ErrDatabaseOperation
	}
	return txs, nil
}

func (r *transactionRepository) ListByRecipient(ctx context.Context, recipientID uint) ([]models.Transaction, error) {
	var txs []models.Transaction
	if err := r.db.WithContext(ctx).Where("recipient_id = ?", recipientID).Order("id").Find(&txs).Error; err != nil {
		return nil, ErrDatabaseOperation
	}
	return txs, nil
}

func (r *transactionRepository) ListByStatus(ctx context.Context, status string) ([]models.Transaction, error) {
	var txs []models.Transaction
	if err := r.db.WithContext(ctx).Where("status = ?", status).Order("id").Find(&txs).Error; err != nil {
		return nil, ErrDatabaseOperation
	}
	return txs, nil
}

func (r *transactionRepository) ListByCreatedBetween(ctx context.Context, start, end time.Time) ([]models.Transaction, error) {
	var txs []models.Transaction
	if err := r.db.WithContext(ctx).Where("created_at BETWEEN ? AND ?", start, end).Order("id").Find(&txs).Error; err != nil {
		return nil, ErrDatabaseOperation
	}
	return txs, nil
}

func (r *transactionRepository) Update(ctx context.Context, tx *models.Transaction) error {
	if err := r.db.WithContext(ctx).Save(tx).Error; err != nil {
		return ErrDatabaseOperation
	}

	if r.cache != nil {
		if err := r.cache.InvalidateTransaction(ctx, tx.ID); err != nil {
			log.Printf("failed to invalidate transaction cache %d: %v", tx.ID, err)
		}
	}
	return nil
}

func (r *transactionRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Transaction{}, id).Error; err != nil {
		return ErrDatabaseOperation
	}

	if r.cache != nil {
		if err := r.cache.InvalidateTransaction(ctx, id); err != nil {
			log.Printf("failed to invalidate transaction cache %d: %v", id, err)
		}
	}
	return nil
}
