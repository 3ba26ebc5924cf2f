package totalservice

import (
	"context"
	"fmt"
	"sync"
	"testing"

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

type totalKey struct {
	userID uuid.UUID
	typ    domain.TotalType
}

// memoryTotals mimics the ON CONFLICT overwrite of the real repository.
type memoryTotals struct {
	mu   sync.Mutex
	rows map[totalKey]domain.UserTransactionTotal
}

func (m *memoryTotals) upsert(_ context.Context, id, userID uuid.UUID, typ domain.TotalType, amount decimal.Decimal) (*domain.UserTransactionTotal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := totalKey{userID, typ}
	row, ok := m.rows[key]
	if !ok {
		row = domain.UserTransactionTotal{ID: id, UserID: userID, Type: typ}
	}
	row.Amount = amount
	m.rows[key] = row
	return &row, nil
}

func TestUpsert_OverwritesInsteadOfIncrementing(t *testing.T) {
	service, repo := NewMock(t)
	store := &memoryTotals{rows: map[totalKey]domain.UserTransactionTotal{}}
	userID := uuid.New()

	repo.EXPECT().Upsert(gomock.Any(), gomock.Any(), userID, domain.TotalDeposits, gomock.Any()).
		DoAndReturn(store.upsert).Times(2)

	first, err := service.Upsert(context.Background(), userID, domain.TotalDeposits, "50")
	require.NoError(t, err)
	second, err := service.Upsert(context.Background(), userID, domain.TotalDeposits, "80")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	require.Len(t, store.rows, 1)
	assert.Equal(t, "80", store.rows[totalKey{userID, domain.TotalDeposits}].Amount.String())
}

func TestUpsert(t *testing.T) {
	service, repo := NewMock(t)
	userID := uuid.New()

	tests := []struct {
		name          string
		userID        uuid.UUID
		typ           domain.TotalType
		amount        string
		prepareMock   func()
		expectedError error
	}{
		{
			name:   "Zero is a valid total",
			userID: userID,
			typ:    domain.TotalWithdrawals,
			amount: "0",
			prepareMock: func() {
				repo.EXPECT().Upsert(gomock.Any(), gomock.Any(), userID, domain.TotalWithdrawals, gomock.Any()).
					DoAndReturn(func(_ context.Context, _, _ uuid.UUID, _ domain.TotalType, amount decimal.Decimal) (*domain.UserTransactionTotal, error) {
						assert.True(t, amount.IsZero())
						return &domain.UserTransactionTotal{UserID: userID, Type: domain.TotalWithdrawals, Amount: amount}, nil
					})
			},
		},
		{
			name:          "Unknown type",
			userID:        userID,
			typ:           domain.TotalType("fees"),
			amount:        "1",
			expectedError: domain.ErrValidation,
		},
		{
			name:          "Negative amount",
			userID:        userID,
			typ:           domain.TotalDeposits,
			amount:        "-1",
			expectedError: domain.ErrValidation,
		},
		{
			name:          "Missing user",
			typ:           domain.TotalDeposits,
			amount:        "1",
			expectedError: domain.ErrValidation,
		},
		{
			name:   "Persistence failure",
			userID: userID,
			typ:    domain.TotalTransactions,
			amount: "3",
			prepareMock: func() {
				repo.EXPECT().Upsert(gomock.Any(), gomock.Any(), userID, domain.TotalTransactions, gomock.Any()).
					Return(nil, fmt.Errorf("upsert: %w", domain.ErrPersistence))
			},
			expectedError: domain.ErrPersistence,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}
			_, err := service.Upsert(context.Background(), tt.userID, tt.typ, tt.amount)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestGetUserTotals(t *testing.T) {
	service, repo := NewMock(t)
	userID := uuid.New()

	repo.EXPECT().FindByUserID(gomock.Any(), userID).Return(nil, nil)
	totals, err := service.GetUserTotals(context.Background(), userID)
	require.NoError(t, err)
	assert.NotNil(t, totals)
	assert.Empty(t, totals)

	repo.EXPECT().FindByUserID(gomock.Any(), userID).Return([]domain.UserTransactionTotal{{UserID: userID}}, nil)
	totals, err = service.GetUserTotals(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, totals, 1)
}

func TestGetAllTotals(t *testing.T) {
	service, repo := NewMock(t)

	repo.EXPECT().FindAll(gomock.Any()).Return([]domain.UserTransactionTotal{{}, {}}, nil)
	totals, err := service.GetAllTotals(context.Background())
	require.NoError(t, err)
	assert.Len(t, totals, 2)

	repo.EXPECT().FindAll(gomock.Any()).Return(nil, fmt.Errorf("x: %w", domain.ErrPersistence))
	_, err = service.GetAllTotals(context.Background())
	assert.ErrorIs(t, err, domain.ErrPersistence)
}
