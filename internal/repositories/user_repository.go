package repositories

import (
	"context"

	"sops/internal/models"
)

// UserRepository defines user persistence operations.
type UserRepository interface {
	// Create inserts a new user.
	Create(ctx context.Context, user *models.User) error

	// GetByID retrieves a user by id.
	GetByID(ctx context.Context, id uint) (*models.User, error)

	// GetByEmail retrieves a user by email address.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// GetByDocumentNumber retrieves a user by document number.
	GetByDocumentNumber(ctx context.Context, documentNumber string) (*models.User, error)

	// List retrieves all users.
	List(ctx context.Context) ([]models.User, error)

	// Update persists changes to an existing user.
	Update(ctx context.Context, user *models.User) error

	// Delete removes a user by id.
	Delete(ctx context.Context, id uint) error
}
