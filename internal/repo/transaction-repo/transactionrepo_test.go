package transactionrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/tradefund/internal/domain"
	"github.com/GlebRadaev/tradefund/internal/pg"
)

var txColumns = []string{"id", "profile_id", "subscription_plan_id", "amount", "status", "created_at"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	t.Cleanup(mockDB.Close)

	return repo, mockDB, mockTxManager
}

func passThrough(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

func TestRepository_Create(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()
	id, profileID, planID := uuid.New(), uuid.New(), uuid.New()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Transaction saved",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO transactions")).
					WithArgs(id, profileID, planID, "9.99", "pending").
					WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(now))
			},
		},
		{
			name: "Unknown profile or plan",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO transactions")).
					WithArgs(id, profileID, planID, "9.99", "pending").
					WillReturnError(&pgconn.PgError{Code: foreignKeyViolation, Message: "violates foreign key constraint"})
			},
			expectErr: true,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO transactions")).
					WithArgs(id, profileID, planID, "9.99", "pending").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), &domain.Transaction{
				ID:                 id,
				ProfileID:          profileID,
				SubscriptionPlanID: planID,
				Amount:             decimal.RequireFromString("9.99"),
				Status:             domain.TransactionPending,
			})

			if tt.expectErr {
				assert.ErrorIs(t, err, domain.ErrPersistence)
				assert.Nil(t, result)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, now, result.CreatedAt)
		})
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()
	id, profileID, planID := uuid.New(), uuid.New(), uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("FROM transactions WHERE id = $1")).
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows(txColumns).AddRow(id, profileID, planID, "15", "pending", now))
	result, err := repo.FindByID(context.Background(), id)
	assert.NoError(t, err)
	assert.Equal(t, domain.TransactionPending, result.Status)
	assert.Equal(t, "15", result.Amount.String())

	mock.ExpectQuery(regexp.QuoteMeta("FROM transactions WHERE id = $1")).
		WithArgs(id).
		WillReturnError(pgx.ErrNoRows)
	result, err = repo.FindByID(context.Background(), id)
	assert.NoError(t, err)
	assert.Nil(t, result)

	mock.ExpectQuery(regexp.QuoteMeta("FROM transactions WHERE id = $1")).
		WithArgs(id).
		WillReturnError(errors.New("database error"))
	_, err = repo.FindByID(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrPersistence)
}

func TestRepository_FindByProfileID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	profileID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("FROM transactions WHERE profile_id = $1")).
		WithArgs(profileID).
		WillReturnRows(pgxmock.NewRows(txColumns).
			AddRow(uuid.New(), profileID, uuid.New(), "1", "completed", time.Now()))
	result, err := repo.FindByProfileID(context.Background(), profileID)
	assert.NoError(t, err)
	assert.Len(t, result, 1)

	mock.ExpectQuery(regexp.QuoteMeta("FROM transactions WHERE profile_id = $1")).
		WithArgs(profileID).
		WillReturnRows(pgxmock.NewRows(txColumns))
	result, err = repo.FindByProfileID(context.Background(), profileID)
	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, mock, txManager := NewMock(t)
	id := uuid.New()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		found     bool
	}{
		{
			name: "Status updated",
			mockSetup: func() {
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(passThrough)
				mock.ExpectQuery(regexp.QuoteMeta("UPDATE transactions SET status = $1 WHERE id = $2")).
					WithArgs("failed", id).
					WillReturnRows(pgxmock.NewRows(txColumns).AddRow(id, uuid.New(), uuid.New(), "5", "failed", time.Now()))
			},
			found: true,
		},
		{
			name: "Unknown transaction",
			mockSetup: func() {
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(passThrough)
				mock.ExpectQuery(regexp.QuoteMeta("UPDATE transactions")).
					WithArgs("failed", id).
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(passThrough)
				mock.ExpectQuery(regexp.QuoteMeta("UPDATE transactions")).
					WithArgs("failed", id).
					WillReturnError(errors.New("connection reset"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.UpdateStatus(context.Background(), id, domain.TransactionFailed)

			if tt.expectErr {
				assert.ErrorIs(t, err, domain.ErrPersistence)
				assert.NotErrorIs(t, err, domain.ErrNotFound)
				return
			}
			assert.NoError(t, err)
			if tt.found {
				assert.Equal(t, domain.TransactionFailed, result.Status)
			} else {
				assert.Nil(t, result)
			}
		})
	}
}
