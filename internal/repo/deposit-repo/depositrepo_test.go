package depositrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/tradefund/internal/domain"
	"github.com/GlebRadaev/tradefund/internal/pg"
)

var depositColumns = []string{"id", "user_id", "amount", "method", "transaction_id", "status",
	"is_verified", "ip_address", "notes", "created_at", "updated_at"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	t.Cleanup(mockDB.Close)

	return repo, mockDB, mockTxManager
}

func TestRepository_Create(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()
	id := uuid.New()
	userID := uuid.New()
	ip := "10.0.0.1"

	tests := []struct {
		name      string
		mockSetup func()
		expectErr error
	}{
		{
			name: "Deposit saved",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO deposits")).
					WithArgs(id, userID, "100", "USDT", "tx-1", "pending", false, &ip, (*string)(nil)).
					WillReturnRows(pgxmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO deposits")).
					WithArgs(id, userID, "100", "USDT", "tx-1", "pending", false, &ip, (*string)(nil)).
					WillReturnError(errors.New("insert failed"))
			},
			expectErr: domain.ErrPersistence,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			deposit := &domain.Deposit{
				ID:            id,
				UserID:        userID,
				Amount:        decimal.NewFromInt(100),
				Method:        "USDT",
				TransactionID: "tx-1",
				Status:        domain.DepositPending,
				IPAddress:     &ip,
			}
			result, err := repo.Create(context.Background(), deposit)

			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				assert.NotContains(t, err.Error(), "insert failed")
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, now, result.CreatedAt)
				assert.Equal(t, now, result.UpdatedAt)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()
	id := uuid.New()
	userID := uuid.New()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.Deposit
	}{
		{
			name: "Deposit exists",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM deposits WHERE id = $1")).
					WithArgs(id).
					WillReturnRows(pgxmock.NewRows(depositColumns).
						AddRow(id, userID, "12.50", "BANK", "ref", "completed", true, (*string)(nil), (*string)(nil), now, now))
			},
			result: &domain.Deposit{
				ID:            id,
				UserID:        userID,
				Amount:        decimal.RequireFromString("12.50"),
				Method:        "BANK",
				TransactionID: "ref",
				Status:        domain.DepositCompleted,
				IsVerified:    true,
				CreatedAt:     now,
				UpdatedAt:     now,
			},
		},
		{
			name: "Deposit does not exist",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM deposits WHERE id = $1")).
					WithArgs(id).
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM deposits WHERE id = $1")).
					WithArgs(id).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), id)

			if tt.expectErr {
				assert.ErrorIs(t, err, domain.ErrPersistence)
			} else {
				assert.NoError(t, err)
			}
			if tt.result == nil {
				assert.Nil(t, result)
			} else {
				assert.True(t, tt.result.Amount.Equal(result.Amount))
				tt.result.Amount = result.Amount
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_FindByUserID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	userID := uuid.New()
	first := time.Now().Add(-time.Hour)
	second := time.Now()

	tests := []struct {
		name        string
		mockSetup   func()
		expectErr   bool
		expectedLen int
	}{
		{
			name: "Deposits in creation order",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM deposits WHERE user_id = $1 ORDER BY created_at ASC")).
					WithArgs(userID).
					WillReturnRows(pgxmock.NewRows(depositColumns).
						AddRow(uuid.New(), userID, "10", "USDT", "a", "pending", false, (*string)(nil), (*string)(nil), first, first).
						AddRow(uuid.New(), userID, "20", "USDT", "b", "pending", false, (*string)(nil), (*string)(nil), second, second))
			},
			expectedLen: 2,
		},
		{
			name: "No deposits",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM deposits WHERE user_id = $1")).
					WithArgs(userID).
					WillReturnRows(pgxmock.NewRows(depositColumns))
			},
			expectedLen: 0,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM deposits WHERE user_id = $1")).
					WithArgs(userID).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByUserID(context.Background(), userID)

			if tt.expectErr {
				assert.ErrorIs(t, err, domain.ErrPersistence)
				assert.Nil(t, result)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, result)
			assert.Len(t, result, tt.expectedLen)
			if tt.expectedLen == 2 {
				assert.Equal(t, first, result[0].CreatedAt)
				assert.Equal(t, second, result[1].CreatedAt)
			}
		})
	}
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, mock, txManager := NewMock(t)
	now := time.Now()
	id := uuid.New()
	userID := uuid.New()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		found     bool
	}{
		{
			name: "Status updated",
			mockSetup: func() {
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
					return fn(ctx)
				})
				mock.ExpectQuery(regexp.QuoteMeta("UPDATE deposits SET status = $1, is_verified = $2, updated_at = now() WHERE id = $3")).
					WithArgs("completed", true, id).
					WillReturnRows(pgxmock.NewRows(depositColumns).
						AddRow(id, userID, "100", "USDT", "tx", "completed", true, (*string)(nil), (*string)(nil), now, now))
			},
			found: true,
		},
		{
			name: "Unknown deposit",
			mockSetup: func() {
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
					return fn(ctx)
				})
				mock.ExpectQuery(regexp.QuoteMeta("UPDATE deposits")).
					WithArgs("completed", true, id).
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
					return fn(ctx)
				})
				mock.ExpectQuery(regexp.QuoteMeta("UPDATE deposits")).
					WithArgs("completed", true, id).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.UpdateStatus(context.Background(), id, domain.DepositCompleted, true)

			if tt.expectErr {
				assert.ErrorIs(t, err, domain.ErrPersistence)
				assert.Nil(t, result)
				return
			}
			assert.NoError(t, err)
			if tt.found {
				assert.Equal(t, domain.DepositCompleted, result.Status)
				assert.True(t, result.IsVerified)
			} else {
				assert.Nil(t, result)
			}
		})
	}
}
