package user

import (
	"context"
	"errors"
	"log"
	"strings"

	"sops/internal/models"
	"sops/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

// Service errors
var (
	ErrEmailTaken      = errors.New("email or document number already in use")
	ErrSameEmail       = errors.New("new email is the same as the current one")
	ErrWrongPassword   = errors.New("current password is incorrect")
	ErrInvalidUserType = errors.New("invalid user type")
	ErrCreationFailed  = errors.New("an unexpected error occurred while creating the user")
)

// Service manages account holders.
type Service interface {
	Create(ctx context.Context, input *models.CreateUserInput) (*models.User, error)
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByDocumentNumber(ctx context.Context, documentNumber string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	UpdateEmail(ctx context.Context, id uint, currentPassword, newEmail string) (*models.User, error)
	UpdatePassword(ctx context.Context, id uint, currentPassword, newPassword string) (*models.User, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo repositories.UserRepository
}

// NewService creates a new user service.
func NewService(repo repositories.UserRepository) Service {
	if repo == nil {
		panic("user repository is required")
	}
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, input *models.CreateUserInput) (*models.User, error) {
	userType := strings.ToUpper(strings.TrimSpace(input.UserType))
	if userType == "" {
		userType = models.UserTypeOrdinary
	}
	if userType != models.UserTypeOrdinary && userType != models.UserTypeMerchant {
		return nil, ErrInvalidUserType
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrCreationFailed
	}

	user := &models.User{
		LegalName:      input.LegalName,
		DocumentType:   strings.ToUpper(strings.TrimSpace(input.DocumentType)),
		DocumentNumber: input.DocumentNumber,
		Email:          strings.ToLower(strings.TrimSpace(input.Email)),
		PhoneNumber:    input.PhoneNumber,
		Password:       string(hashed),
		Balance:        input.Balance,
		UserType:       userType,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateRecord) {
			return nil, ErrEmailTaken
		}
		log.Printf("user persist failed: %v", err)
		return nil, ErrCreationFailed
	}
	return user, nil
}

func (s *service) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
}

func (s *service) GetByDocumentNumber(ctx context.Context, documentNumber string) (*models.User, error) {
	return s.repo.GetByDocumentNumber(ctx, documentNumber)
}

func (s *service) List(ctx context.Context) ([]models.User, error) {
	return s.repo.List(ctx)
}

func (s *service) UpdateEmail(ctx context.Context, id uint, currentPassword, newEmail string) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(currentPassword)); err != nil {
		return nil, ErrWrongPassword
	}

	newEmail = strings.ToLower(strings.TrimSpace(newEmail))
	if user.Email == newEmail {
		return nil, ErrSameEmail
	}
	if existing, err := s.repo.GetByEmail(ctx, newEmail); err == nil && existing != nil {
		return nil, ErrEmailTaken
	}

	user.Email = newEmail
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	log.Printf("updated email for user %d", id)
	return user, nil
}

func (s *service) UpdatePassword(ctx context.Context, id uint, currentPassword, newPassword string) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(currentPassword)); err != nil {
		return nil, ErrWrongPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrCreationFailed
	}

	user.Password = string(hashed)
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	log.Printf("updated password for user %d", id)
	return user, nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	log.Printf("deleted user %d", id)
	return nil
}
