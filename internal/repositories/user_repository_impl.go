package repositories

import (
	"context"
	"errors"
	"log"

	"sops/internal/models"
	"sops/internal/repositories/cache"

	"gorm.io/gorm"
)

type userRepository struct {
	db    *gorm.DB
	cache *cache.CacheService
}

// NewUserRepository creates a new instance of UserRepository.
func NewUserRepository(db *gorm.DB, cache *cache.CacheService) UserRepository {
	return &userRepository{
		db:    db,
		cache: cache,
	}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateRecord
		}
		return ErrDatabaseOperation
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	if r.cache != nil {
		key := r.cache.GenerateKey("user", "id", id)
		if user, err := r.cache.GetUser(ctx, key); err == nil {
			return user, nil
		}
	}

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, ErrDatabaseOperation
	}

	if r.cache != nil {
		if err := r.cache.CacheUser(ctx, &user); err != nil {
			log.Printf("failed to cache user %d: %v", user.ID, err)
		}
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, ErrDatabaseOperation
	}
	return &user, nil
}

func (r *userRepository) GetByDocumentNumber(ctx context.Context, documentNumber string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("document_number = ?", documentNumber).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, ErrDatabaseOperation
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, ErrDatabaseOperation
	}
	return users, nil
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateRecord
		}
		return ErrDatabaseOperation
	}

	if r.cache != nil {
		if err := r.cache.InvalidateUser(ctx, user); err != nil {
			log.Printf("failed to invalidate user cache %d: %v", user.ID, err)
		}
	}
	return nil
}

func (r *userRepository) Delete(ctx context.Context, id uint) error {
	user, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Delete(&models.User{}, id).Error; err != nil {
		return ErrDatabaseOperation
	}

	if r.cache != nil {
		if err := r.cache.InvalidateUser(ctx, user); err != nil {
			log.Printf("failed to invalidate user cache %d: %v", id, err)
		}
	}
	return nil
}
