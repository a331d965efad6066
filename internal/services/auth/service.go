// Package auth issues and validates access tokens for the API.
package auth

import (
	"context"
	"errors"
	"strconv"
	"time"

	"sops/internal/models"
	"sops/internal/repositories"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned when email or password do not match.
var ErrInvalidCredentials = errors.New("invalid email or password")

// Service authenticates users and issues JWT access tokens.
type Service interface {
	Login(ctx context.Context, email, password string) (string, *models.User, error)
}

type service struct {
	users     repositories.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
}

// NewService creates a new auth service.
func NewService(users repositories.UserRepository, jwtSecret string) Service {
	if users == nil {
		panic("user repository is required")
	}
	return &service{
		users:     users,
		jwtSecret: jwtSecret,
		tokenTTL:  15 * time.Minute,
	}
}

func (s *service) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	now := time.Now()
	claims := models.UserClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "sops-api",
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
		},
		UserID:   user.ID,
		Email:    user.Email,
		UserType: user.UserType,
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}
