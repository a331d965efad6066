package notification

import (
	"context"
	"errors"
	"log"
	"time"

	"sops/internal/gateway"
	"sops/internal/metrics"
	"sops/internal/models"
	"sops/internal/repositories"
)

type service struct {
	repo         repositories.NotificationRepository
	users        repositories.UserRepository
	transactions repositories.TransactionRepository
	notifier     gateway.Notifier
	metrics      metrics.Collector
	now          func() time.Time
}

// NewService creates a new notification service.
func NewService(
	repo repositories.NotificationRepository,
	users repositories.UserRepository,
	transactions repositories.TransactionRepository,
	notifier gateway.Notifier,
	collector metrics.Collector,
) Service {
	if repo == nil {
		panic("notification repository is required")
	}
	if users == nil {
		panic("user repository is required")
	}
	if transactions == nil {
		panic("transaction repository is required")
	}
	if notifier == nil {
		panic("notifier is required")
	}
	if collector == nil {
		collector = metrics.NoopCollector{}
	}

	return &service{
		repo:         repo,
		users:        users,
		transactions: transactions,
		notifier:     notifier,
		metrics:      collector,
		now:          time.Now,
	}
}

// Create validates the referenced user and transaction, probes the
// downstream notification service and persists the record with its
// resolved status. An unreachable dispatcher is a soft outcome: the
// record is stored as FAILED, never an error to the caller.
func (s *service) Create(ctx context.Context, input CreateNotificationInput) (*models.Notification, error) {
	log.Printf("creating notification for user %d, transaction %d", input.UserID, input.TransactionID)

	channel, err := models.ParseNotificationChannel(input.Channel)
	if err != nil {
		return nil, ErrInvalidChannel
	}

	if _, err := s.users.GetByID(ctx, input.UserID); err != nil {
		return nil, err
	}
	if _, err := s.transactions.GetByID(ctx, input.TransactionID); err != nil {
		return nil, err
	}

	n := &models.Notification{
		UserID:        input.UserID,
		TransactionID: input.TransactionID,
		Channel:       channel,
		Destination:   input.Destination,
		Subject:       input.Subject,
		Message:       input.Message,
		Status:        models.NotificationStatusFailed,
	}

	if s.notifier.CheckAvailability(ctx) {
		sentAt := s.now()
		n.Status = models.NotificationStatusSent
		n.SentAt = &sentAt
	} else {
		s.metrics.RecordGatewayFailure("notifier")
		log.Printf("notification service unavailable, recording FAILED dispatch")
	}

	if err := s.repo.Create(ctx, n); err != nil {
		log.Printf("notification persist failed: %v", err)
		return nil, ErrCreationFailed
	}

	s.metrics.RecordNotification(n.Status)
	return n, nil
}

func (s *service) GetByID(ctx context.Context, id uint) (*models.Notification, error) {
	n, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotificationNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, err
	}
	return n, nil
}

func (s *service) List(ctx context.Context) ([]models.Notification, error) {
	return s.repo.List(ctx)
}

func (s *service) ListByUser(ctx context.Context, userID uint) ([]models.Notification, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *service) ListByTransaction(ctx context.Context, transactionID uint) ([]models.Notification, error) {
	return s.repo.ListByTransaction(ctx, transactionID)
}

func (s *service) ListByStatus(ctx context.Context, status string) ([]models.Notification, error) {
	parsed, err := models.ParseNotificationStatus(status)
	if err != nil {
		return nil, ErrInvalidStatus
	}
	return s.repo.ListByStatus(ctx, parsed)
}

func (s *service) ListByCreatedBetween(ctx context.Context, start, end time.Time) ([]models.Notification, error) {
	return s.repo.ListByCreatedBetween(ctx, start, end)
}

// UpdateStatus overwrites the status unconditionally, mirroring the
// transaction service. SentAt is left untouched.
func (s *service) UpdateStatus(ctx context.Context, id uint, rawStatus string) (*models.Notification, error) {
	status, err := models.ParseNotificationStatus(rawStatus)
	if err != nil {
		return nil, ErrInvalidStatus
	}

	n, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	n.Status = status
	if err := s.repo.Update(ctx, n); err != nil {
		return nil, err
	}

	log.Printf("updated status for notification %d to %s", id, status)
	return n, nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	log.Printf("deleted notification %d", id)
	return nil
}
