package transactionrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/tradefund/internal/domain"
	"github.com/GlebRadaev/tradefund/internal/pg"
)

const (
	columns = `id, profile_id, subscription_plan_id, amount, status, created_at`

	foreignKeyViolation = "23503"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var (
		tx     domain.Transaction
		amount string
		status string
	)
	if err := row.Scan(&tx.ID, &tx.ProfileID, &tx.SubscriptionPlanID, &amount, &status, &tx.CreatedAt); err != nil {
		return nil, err
	}
	var err error
	tx.Amount, err = decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("bad amount %q in transaction %s: %w", amount, tx.ID, err)
	}
	tx.Status = domain.TransactionStatus(status)
	return &tx, nil
}

func (r *Repository) Create(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
	query := `
		INSERT INTO transactions (id, profile_id, subscription_plan_id, amount, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`
	err := r.db.QueryRow(ctx, query, tx.ID, tx.ProfileID, tx.SubscriptionPlanID, tx.Amount.String(), string(tx.Status)).
		Scan(&tx.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			zap.L().Error("transaction references unknown profile or plan",
				zap.String("profile_id", tx.ProfileID.String()),
				zap.String("plan_id", tx.SubscriptionPlanID.String()),
				zap.Error(err))
			return nil, fmt.Errorf("save transaction: unknown profile or plan: %w", domain.ErrPersistence)
		}
		zap.L().Error("can't save transaction", zap.Error(err))
		return nil, fmt.Errorf("save transaction: %w", domain.ErrPersistence)
	}
	return tx, nil
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	query := `
		SELECT ` + columns + `
		FROM transactions
		WHERE id = $1
	`
	tx, err := scanTransaction(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find transaction", zap.Error(err))
		return nil, fmt.Errorf("find transaction: %w", domain.ErrPersistence)
	}
	return tx, nil
}

func (r *Repository) FindByProfileID(ctx context.Context, profileID uuid.UUID) ([]domain.Transaction, error) {
	query := `
		SELECT ` + columns + `
		FROM transactions
		WHERE profile_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, profileID)
	if err != nil {
		zap.L().Error("can't get transactions", zap.Error(err))
		return nil, fmt.Errorf("get transactions: %w", domain.ErrPersistence)
	}
	defer rows.Close()

	txs := make([]domain.Transaction, 0)
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			zap.L().Error("can't scan transaction row", zap.Error(err))
			return nil, fmt.Errorf("scan transaction: %w", domain.ErrPersistence)
		}
		txs = append(txs, *tx)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate transactions", zap.Error(err))
		return nil, fmt.Errorf("get transactions: %w", domain.ErrPersistence)
	}
	return txs, nil
}

// UpdateStatus returns nil when no transaction has the given id.
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.TransactionStatus) (*domain.Transaction, error) {
	query := `
		UPDATE transactions
		SET status = $1
		WHERE id = $2
		RETURNING ` + columns

	var updated *domain.Transaction
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		updated, err = scanTransaction(r.db.QueryRow(ctx, query, string(status), id))
		if errors.Is(err, pgx.ErrNoRows) {
			updated = nil
			return nil
		}
		return err
	})
	if err != nil {
		zap.L().Error("can't update transaction status", zap.Error(err))
		return nil, fmt.Errorf("update transaction status: %w", domain.ErrPersistence)
	}
	return updated, nil
}
