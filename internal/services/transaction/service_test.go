package transaction

import (
	"context"
	"errors"
	"testing"
	"time"

	"sops/internal/models"
	"sops/internal/repositories"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockTransactionRepo struct {
	mock.Mock
}

type mockUserRepo struct {
	mock.Mock
}

type fakeAuthorizer struct {
	authorized bool
	err        error
	calls      int
}

func (f *fakeAuthorizer) Authorize(ctx context.Context) (bool, error) {
	f.calls++
	return f.authorized, f.err
}

func ordinaryUser(id uint, balance float64) *models.User {
	return &models.User{
		ID:       id,
		Balance:  decimal.NewFromFloat(balance),
		UserType: models.UserTypeOrdinary,
	}
}

func TestService_Create(t *testing.T) {
	amount := decimal.NewFromFloat(50.00)

	tests := []struct {
		name       string
		input      CreateTransactionInput
		authorizer *fakeAuthorizer
		setupMock  func(*mockTransactionRepo, *mockUserRepo)
		wantStatus string
		wantErr    error
	}{
		{
			name:       "authorized transfer succeeds",
			input:      CreateTransactionInput{SenderID: 1, RecipientID: 2, Amount: amount, Description: "lunch"},
			authorizer: &fakeAuthorizer{authorized: true},
			setupMock: func(repo *mockTransactionRepo, users *mockUserRepo) {
				users.On("GetByID", mock.Anything, uint(1)).Return(ordinaryUser(1, 100.00), nil)
				users.On("GetByID", mock.Anything, uint(2)).Return(ordinaryUser(2, 0), nil)
				repo.On("Create", mock.Anything, mock.Anything).Return(nil)
			},
			wantStatus: models.TransactionStatusSucceeded,
		},
		{
			name:       "rejected by authorizer persists FAILED without error",
			input:      CreateTransactionInput{SenderID: 1, RecipientID: 2, Amount: amount},
			authorizer: &fakeAuthorizer{authorized: false},
			setupMock: func(repo *mockTransactionRepo, users *mockUserRepo) {
				users.On("GetByID", mock.Anything, uint(1)).Return(ordinaryUser(1, 100.00), nil)
				users.On("GetByID", mock.Anything, uint(2)).Return(ordinaryUser(2, 0), nil)
				repo.On("Create", mock.Anything, mock.Anything).Return(nil)
			},
			wantStatus: models.TransactionStatusFailed,
		},
		{
			name:       "merchant sender is not allowed",
			input:      CreateTransactionInput{SenderID: 1, RecipientID: 2, Amount: amount},
			authorizer: &fakeAuthorizer{authorized: true},
			setupMock: func(repo *mockTransactionRepo, users *mockUserRepo) {
				merchant := ordinaryUser(1, 100.00)
				merchant.UserType = models.UserTypeMerchant
				users.On("GetByID", mock.Anything, uint(1)).Return(merchant, nil)
				users.On("GetByID", mock.Anything, uint(2)).Return(ordinaryUser(2, 0), nil)
			},
			wantErr: ErrTransactionNotAllowed,
		},
		{
			name:       "self transfer is rejected",
			input:      CreateTransactionInput{SenderID: 1, RecipientID: 1, Amount: amount},
			authorizer: &fakeAuthorizer{authorized: true},
			setupMock: func(repo *mockTransactionRepo, users *mockUserRepo) {
				users.On("GetByID", mock.Anything, uint(1)).Return(ordinaryUser(1, 100.00), nil)
			},
			wantErr: ErrSelfTransfer,
		},
		{
			name:       "insufficient balance is rejected",
			input:      CreateTransactionInput{SenderID: 1, RecipientID: 2, Amount: decimal.NewFromFloat(150.00)},
			authorizer: &fakeAuthorizer{authorized: true},
			setupMock: func(repo *mockTransactionRepo, users *mockUserRepo) {
				users.On("GetByID", mock.Anything, uint(1)).Return(ordinaryUser(1, 100.00), nil)
				users.On("GetByID", mock.Anything, uint(2)).Return(ordinaryUser(2, 0), nil)
			},
			wantErr: ErrInsufficientBalance,
		},
		{
			name:       "amount below minimum unit is rejected",
			input:      CreateTransactionInput{SenderID: 1, RecipientID: 2, Amount: decimal.NewFromFloat(0.001)},
			authorizer: &fakeAuthorizer{authorized: true},
			setupMock:  func(repo *mockTransactionRepo, users *mockUserRepo) {},
			wantErr:    ErrInvalidAmount,
		},
		{
			name:       "unknown sender",
			input:      CreateTransactionInput{SenderID: 99, RecipientID: 2, Amount: amount},
			authorizer: &fakeAuthorizer{authorized: true},
			setupMock: func(repo *mockTransactionRepo, users *mockUserRepo) {
				users.On("GetByID", mock.Anything, uint(99)).Return(nil, repositories.ErrUserNotFound)
			},
			wantErr: repositories.ErrUserNotFound,
		},
		{
			name:       "authorizer transport fault escalates and persists nothing",
			input:      CreateTransactionInput{SenderID: 1, RecipientID: 2, Amount: amount},
			authorizer: &fakeAuthorizer{err: errors.New("connection refused")},
			setupMock: func(repo *mockTransactionRepo, users *mockUserRepo) {
				users.On("GetByID", mock.Anything, uint(1)).Return(ordinaryUser(1, 100.00), nil)
				users.On("GetByID", mock.Anything, uint(2)).Return(ordinaryUser(2, 0), nil)
			},
			wantErr: ErrCreationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockTransactionRepo)
			users := new(mockUserRepo)
			tt.setupMock(repo, users)

			s := NewService(repo, users, tt.authorizer, nil)
			tx, err := s.Create(context.Background(), tt.input)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, tx)
				repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantStatus, tx.Status)
				assert.True(t, tt.input.Amount.Equal(tx.Amount))
				assert.NotEmpty(t, tx.Reference)
			}

			repo.AssertExpectations(t)
			users.AssertExpectations(t)
		})
	}
}

func TestService_Create_ValidationSkipsAuthorizer(t *testing.T) {
	repo := new(mockTransactionRepo)
	users := new(mockUserRepo)
	merchant := ordinaryUser(1, 100.00)
	merchant.UserType = models.UserTypeMerchant
	users.On("GetByID", mock.Anything, uint(1)).Return(merchant, nil)
	users.On("GetByID", mock.Anything, uint(2)).Return(ordinaryUser(2, 0), nil)

	authorizer := &fakeAuthorizer{authorized: true}
	s := NewService(repo, users, authorizer, nil)

	_, err := s.Create(context.Background(), CreateTransactionInput{
		SenderID: 1, RecipientID: 2, Amount: decimal.NewFromFloat(10),
	})
	require.ErrorIs(t, err, ErrTransactionNotAllowed)
	assert.Zero(t, authorizer.calls, "authorizer must not be consulted when validation fails")
}

func TestService_Create_EqualBalanceIsAllowed(t *testing.T) {
	repo := new(mockTransactionRepo)
	users := new(mockUserRepo)
	users.On("GetByID", mock.Anything, uint(1)).Return(ordinaryUser(1, 50.00), nil)
	users.On("GetByID", mock.Anything, uint(2)).Return(ordinaryUser(2, 0), nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	s := NewService(repo, users, &fakeAuthorizer{authorized: true}, nil)
	tx, err := s.Create(context.Background(), CreateTransactionInput{
		SenderID: 1, RecipientID: 2, Amount: decimal.NewFromFloat(50.00),
	})
	require.NoError(t, err)
	assert.Equal(t, models.TransactionStatusSucceeded, tx.Status)
}

func TestService_Create_RoundTrip(t *testing.T) {
	repo := new(mockTransactionRepo)
	users := new(mockUserRepo)
	users.On("GetByID", mock.Anything, uint(1)).Return(ordinaryUser(1, 100.00), nil)
	users.On("GetByID", mock.Anything, uint(2)).Return(ordinaryUser(2, 0), nil)

	var persisted *models.Transaction
	repo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		persisted = args.Get(1).(*models.Transaction)
		persisted.ID = 42
	}).Return(nil)

	s := NewService(repo, users, &fakeAuthorizer{authorized: true}, nil)
	created, err := s.Create(context.Background(), CreateTransactionInput{
		SenderID: 1, RecipientID: 2, Amount: decimal.NewFromFloat(50.00), Description: "rent",
	})
	require.NoError(t, err)

	repo.On("GetByID", mock.Anything, uint(42)).Return(persisted, nil)
	fetched, err := s.GetByID(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, created, fetched)
}

func TestService_UpdateStatus(t *testing.T) {
	t.Run("overwrites status unconditionally", func(t *testing.T) {
		repo := new(mockTransactionRepo)
		users := new(mockUserRepo)
		existing := &models.Transaction{ID: 7, Status: models.TransactionStatusSucceeded}
		repo.On("GetByID", mock.Anything, uint(7)).Return(existing, nil)
		repo.On("Update", mock.Anything, mock.Anything).Return(nil)

		s := NewService(repo, users, &fakeAuthorizer{}, nil)
		tx, err := s.UpdateStatus(context.Background(), 7, "failed")
		require.NoError(t, err)
		assert.Equal(t, models.TransactionStatusFailed, tx.Status)
		repo.AssertExpectations(t)
	})

	t.Run("invalid status token", func(t *testing.T) {
		repo := new(mockTransactionRepo)
		users := new(mockUserRepo)

		s := NewService(repo, users, &fakeAuthorizer{}, nil)
		_, err := s.UpdateStatus(context.Background(), 7, "PENDING")
		assert.ErrorIs(t, err, ErrInvalidStatus)
		repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("missing transaction", func(t *testing.T) {
		repo := new(mockTransactionRepo)
		users := new(mockUserRepo)
		repo.On("GetByID", mock.Anything, uint(404)).Return(nil, repositories.ErrTransactionNotFound)

		s := NewService(repo, users, &fakeAuthorizer{}, nil)
		_, err := s.UpdateStatus(context.Background(), 404, "FAILED")
		assert.ErrorIs(t, err, ErrTransactionNotFound)
	})
}

func TestService_Delete(t *testing.T) {
	t.Run("missing transaction", func(t *testing.T) {
		repo := new(mockTransactionRepo)
		users := new(mockUserRepo)
		repo.On("GetByID", mock.Anything, uint(404)).Return(nil, repositories.ErrTransactionNotFound)

		s := NewService(repo, users, &fakeAuthorizer{}, nil)
		err := s.Delete(context.Background(), 404)
		assert.ErrorIs(t, err, ErrTransactionNotFound)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("existing transaction", func(t *testing.T) {
		repo := new(mockTransactionRepo)
		users := new(mockUserRepo)
		repo.On("GetByID", mock.Anything, uint(7)).Return(&models.Transaction{ID: 7}, nil)
		repo.On("Delete", mock.Anything, uint(7)).Return(nil)

		s := NewService(repo, users, &fakeAuthorizer{}, nil)
		require.NoError(t, s.Delete(context.Background(), 7))
		repo.AssertExpectations(t)
	})
}

func TestService_ListByStatus_InvalidToken(t *testing.T) {
	repo := new(mockTransactionRepo)
	users := new(mockUserRepo)

	s := NewService(repo, users, &fakeAuthorizer{}, nil)
	_, err := s.ListByStatus(context.Background(), "bogus")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

// Mock implementations

func (m *mockTransactionRepo) Create(ctx context.Context, tx *models.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *mockTransactionRepo) GetByID(ctx context.Context, id uint) (*models.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Transaction), args.Error(1)
}

func (m *mockTransactionRepo) List(ctx context.Context) ([]models.Transaction, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Transaction), args.Error(1)
}

func (m *mockTransactionRepo) ListBySender(ctx context.Context, senderID uint) ([]models.Transaction, error) {
	args := m.Called(ctx, senderID)
	return args.Get(0).([]models.Transaction), args.Error(1)
}

func (m *mockTransactionRepo) ListByRecipient(ctx context.Context, recipientID uint) ([]models.Transaction, error) {
	args := m.Called(ctx, recipientID)
	return args.Get(0).([]models.Transaction), args.Error(1)
}

func (m *mockTransactionRepo) ListByStatus(ctx context.Context, status string) ([]models.Transaction, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]models.Transaction), args.Error(1)
}

func (m *mockTransactionRepo) ListByCreatedBetween(ctx context.Context, start, end time.Time) ([]models.Transaction, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).([]models.Transaction), args.Error(1)
}

func (m *mockTransactionRepo) Update(ctx context.Context, tx *models.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *mockTransactionRepo) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepo) GetByDocumentNumber(ctx context.Context, documentNumber string) (*models.User, error) {
	args := m.Called(ctx, documentNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepo) List(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepo) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
