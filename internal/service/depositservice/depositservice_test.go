package depositservice

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/tradefund/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	return New(repo), repo
}

func echoCreate(_ context.Context, d *domain.Deposit) (*domain.Deposit, error) {
	d.CreatedAt = time.Now()
	d.UpdatedAt = d.CreatedAt
	return d, nil
}

func TestCreate(t *testing.T) {
	service, repo := NewMock(t)
	userID := uuid.New()
	ip := "203.0.113.7"

	tests := []struct {
		name          string
		params        CreateParams
		prepareMock   func()
		expectedError error
	}{
		{
			name:   "Deposit created as pending and unverified",
			params: CreateParams{UserID: userID, Amount: "100", Method: "USDT", TransactionID: "0xabc", IPAddress: &ip},
			prepareMock: func() {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(echoCreate)
			},
		},
		{
			name:          "Negative amount",
			params:        CreateParams{UserID: userID, Amount: "-5", Method: "USDT", TransactionID: "0xabc"},
			expectedError: domain.ErrValidation,
		},
		{
			name:          "Zero amount",
			params:        CreateParams{UserID: userID, Amount: "0", Method: "USDT", TransactionID: "0xabc"},
			expectedError: domain.ErrValidation,
		},
		{
			name:          "Non-numeric amount",
			params:        CreateParams{UserID: userID, Amount: "ten", Method: "USDT", TransactionID: "0xabc"},
			expectedError: domain.ErrValidation,
		},
		{
			name:          "Missing method",
			params:        CreateParams{UserID: userID, Amount: "10", TransactionID: "0xabc"},
			expectedError: domain.ErrValidation,
		},
		{
			name:          "Missing transaction reference",
			params:        CreateParams{UserID: userID, Amount: "10", Method: "USDT", TransactionID: "  "},
			expectedError: domain.ErrValidation,
		},
		{
			name:          "Missing owner",
			params:        CreateParams{Amount: "10", Method: "USDT", TransactionID: "0xabc"},
			expectedError: domain.ErrValidation,
		},
		{
			name:   "Persistence failure",
			params: CreateParams{UserID: userID, Amount: "100", Method: "USDT", TransactionID: "0xabc"},
			prepareMock: func() {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("save deposit: %w", domain.ErrPersistence))
			},
			expectedError: domain.ErrPersistence,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			deposit, err := service.Create(context.Background(), tt.params)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, deposit)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, deposit.ID)
			assert.Equal(t, userID, deposit.UserID)
			assert.Equal(t, domain.DepositPending, deposit.Status)
			assert.False(t, deposit.IsVerified)
			assert.True(t, decimal.NewFromInt(100).Equal(deposit.Amount))
			assert.Equal(t, &ip, deposit.IPAddress)
			assert.False(t, deposit.CreatedAt.IsZero())
		})
	}
}

func TestUpdateStatus(t *testing.T) {
	service, repo := NewMock(t)
	id := uuid.New()

	tests := []struct {
		name          string
		status        domain.DepositStatus
		verified      bool
		prepareMock   func()
		expectedError error
	}{
		{
			name:     "Pending to completed",
			status:   domain.DepositCompleted,
			verified: true,
			prepareMock: func() {
				repo.EXPECT().UpdateStatus(gomock.Any(), id, domain.DepositCompleted, true).
					Return(&domain.Deposit{ID: id, Status: domain.DepositCompleted, IsVerified: true}, nil)
			},
		},
		{
			// Transitions are not restricted: a terminal status can be overwritten.
			name:   "Cancelled back to pending is allowed",
			status: domain.DepositPending,
			prepareMock: func() {
				repo.EXPECT().UpdateStatus(gomock.Any(), id, domain.DepositPending, false).
					Return(&domain.Deposit{ID: id, Status: domain.DepositPending}, nil)
			},
		},
		{
			name:   "Unknown deposit",
			status: domain.DepositCompleted,
			prepareMock: func() {
				repo.EXPECT().UpdateStatus(gomock.Any(), id, domain.DepositCompleted, false).Return(nil, nil)
			},
			expectedError: domain.ErrNotFound,
		},
		{
			name:          "Unknown status",
			status:        domain.DepositStatus("refunded"),
			expectedError: domain.ErrValidation,
		},
		{
			name:   "Persistence failure",
			status: domain.DepositFailed,
			prepareMock: func() {
				repo.EXPECT().UpdateStatus(gomock.Any(), id, domain.DepositFailed, false).
					Return(nil, fmt.Errorf("update deposit status: %w", domain.ErrPersistence))
			},
			expectedError: domain.ErrPersistence,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			deposit, err := service.UpdateStatus(context.Background(), id, tt.status, tt.verified)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.status, deposit.Status)
			assert.Equal(t, tt.verified, deposit.IsVerified)
		})
	}
}

func TestGet(t *testing.T) {
	service, repo := NewMock(t)
	id := uuid.New()

	repo.EXPECT().FindByID(gomock.Any(), id).Return(&domain.Deposit{ID: id}, nil)
	deposit, err := service.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, deposit.ID)

	repo.EXPECT().FindByID(gomock.Any(), id).Return(nil, nil)
	_, err = service.Get(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListByOwner(t *testing.T) {
	service, repo := NewMock(t)
	userID := uuid.New()
	older := domain.Deposit{ID: uuid.New(), CreatedAt: time.Now().Add(-time.Minute)}
	newer := domain.Deposit{ID: uuid.New(), CreatedAt: time.Now()}

	tests := []struct {
		name          string
		prepareMock   func()
		expected      []domain.Deposit
		expectedError error
	}{
		{
			name: "Deposits oldest first",
			prepareMock: func() {
				repo.EXPECT().FindByUserID(gomock.Any(), userID).Return([]domain.Deposit{older, newer}, nil)
			},
			expected: []domain.Deposit{older, newer},
		},
		{
			name: "No deposits is an empty list",
			prepareMock: func() {
				repo.EXPECT().FindByUserID(gomock.Any(), userID).Return(nil, nil)
			},
			expected: []domain.Deposit{},
		},
		{
			name: "Persistence failure",
			prepareMock: func() {
				repo.EXPECT().FindByUserID(gomock.Any(), userID).Return(nil, fmt.Errorf("get deposits: %w", domain.ErrPersistence))
			},
			expectedError: domain.ErrPersistence,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			deposits, err := service.ListByOwner(context.Background(), userID)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, deposits)
		})
	}
}
