package transaction

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"sops/internal/gateway"
	"sops/internal/metrics"
	"sops/internal/models"
	"sops/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var minAmount = decimal.NewFromFloat(0.01)

type service struct {
	repo       repositories.TransactionRepository
	users      repositories.UserRepository
	authorizer gateway.Authorizer
	metrics    metrics.Collector
}

// NewService creates a new transaction service.
func NewService(
	repo repositories.TransactionRepository,
	users repositories.UserRepository,
	authorizer gateway.Authorizer,
	collector metrics.Collector,
) Service {
	if repo == nil {
		panic("transaction repository is required")
	}
	if users == nil {
		panic("user repository is required")
	}
	if authorizer == nil {
		panic("authorizer is required")
	}
	if collector == nil {
		collector = metrics.NoopCollector{}
	}

	return &service{
		repo:       repo,
		users:      users,
		authorizer: authorizer,
		metrics:    collector,
	}
}

// Create validates the transfer request, consults the external authorizer
// and persists the transaction with its final status already resolved.
// Validation failures abort before anything is persisted. The resulting
// balance mutation is deliberately left to the settlement layer; the
// record only captures the authorization outcome.
func (s *service) Create(ctx context.Context, input CreateTransactionInput) (*models.Transaction, error) {
	log.Printf("creating transaction: sender=%d recipient=%d amount=%s",
		input.SenderID, input.RecipientID, input.Amount)

	sender, err := s.validate(ctx, input)
	if err != nil {
		return nil, err
	}

	authorized, err := s.authorizer.Authorize(ctx)
	if err != nil {
		s.metrics.RecordGatewayFailure("authorizer")
		log.Printf("authorization gateway fault: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrCreationFailed, err)
	}

	status := models.TransactionStatusFailed
	if authorized {
		status = models.TransactionStatusSucceeded
	}
	log.Printf("transaction for sender %d resolved to %s", sender.ID, status)

	tx := &models.Transaction{
		Reference:   uuid.NewString(),
		SenderID:    input.SenderID,
		RecipientID: input.RecipientID,
		Amount:      input.Amount,
		Description: input.Description,
		Status:      status,
	}

	if err := s.repo.Create(ctx, tx); err != nil {
		log.Printf("transaction persist failed: %v", err)
		return nil, ErrCreationFailed
	}

	s.metrics.RecordTransaction(status)
	return tx, nil
}

// validate runs the business preconditions in order and returns the
// sender on success. Each violation maps to a distinct error kind.
func (s *service) validate(ctx context.Context, input CreateTransactionInput) (*models.User, error) {
	if input.Amount.LessThan(minAmount) {
		return nil, ErrInvalidAmount
	}

	sender, err := s.users.GetByID(ctx, input.SenderID)
	if err != nil {
		return nil, err
	}
	recipient, err := s.users.GetByID(ctx, input.RecipientID)
	if err != nil {
		return nil, err
	}

	if sender.IsMerchant() {
		return nil, ErrTransactionNotAllowed
	}
	if sender.ID == recipient.ID {
		return nil, ErrSelfTransfer
	}
	if sender.Balance.LessThan(input.Amount) {
		return nil, ErrInsufficientBalance
	}

	return sender, nil
}

func (s *service) GetByID(ctx context.Context, id uint) (*models.Transaction, error) {
	tx, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}
	return tx, nil
}

func (s *service) List(ctx context.Context) ([]models.Transaction, error) {
	return s.repo.List(ctx)
}

func (s *service) ListBySender(ctx context.Context, senderID uint) ([]models.Transaction, error) {
	return s.repo.ListBySender(ctx, senderID)
}

func (s *service) ListByRecipient(ctx context.Context, recipientID uint) ([]models.Transaction, error) {
	return s.repo.ListByRecipient(ctx, recipientID)
}

func (s *service) ListByStatus(ctx context.Context, status string) ([]models.Transaction, error) {
	parsed, err := models.ParseTransactionStatus(status)
	if err != nil {
		return nil, ErrInvalidStatus
	}
	return s.repo.ListByStatus(ctx, parsed)
}

func (s *service) ListByCreatedBetween(ctx context.Context, start, end time.Time) ([]models.Transaction, error) {
	return s.repo.ListByCreatedBetween(ctx, start, end)
}

// UpdateStatus overwrites the status unconditionally. Transition legality
// is a policy question the service does not impose.
func (s *service) UpdateStatus(ctx context.Context, id uint, rawStatus string) (*models.Transaction, error) {
	status, err := models.ParseTransactionStatus(rawStatus)
	if err != nil {
		return nil, ErrInvalidStatus
	}

	tx, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	tx.Status = status
	if err := s.repo.Update(ctx, tx); err != nil {
		return nil, err
	}

	log.Printf("updated status for transaction %d to %s", id, status)
	return tx, nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	log.Printf("deleted transaction %d", id)
	return nil
}
