package depositrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/tradefund/internal/domain"
	"github.com/GlebRadaev/tradefund/internal/pg"
)

const columns = `id, user_id, amount, method, transaction_id, status, is_verified, ip_address, notes, created_at, updated_at`

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

func scanDeposit(row pgx.Row) (*domain.Deposit, error) {
	var (
		d      domain.Deposit
		amount string
		status string
	)
	err := row.Scan(&d.ID, &d.UserID, &amount, &d.Method, &d.TransactionID, &status,
		&d.IsVerified, &d.IPAddress, &d.Notes, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	d.Amount, err = decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("bad amount %q in deposit %s: %w", amount, d.ID, err)
	}
	d.Status = domain.DepositStatus(status)
	return &d, nil
}

func (r *Repository) Create(ctx context.Context, deposit *domain.Deposit) (*domain.Deposit, error) {
	query := `
		INSERT INTO deposits (id, user_id, amount, method, transaction_id, status, is_verified, ip_address, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		deposit.ID, deposit.UserID, deposit.Amount.String(), deposit.Method, deposit.TransactionID,
		string(deposit.Status), deposit.IsVerified, deposit.IPAddress, deposit.Notes,
	).Scan(&deposit.CreatedAt, &deposit.UpdatedAt)
	if err != nil {
		zap.L().Error("can't save deposit", zap.Error(err))
		return nil, fmt.Errorf("save deposit: %w", domain.ErrPersistence)
	}
	return deposit, nil
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Deposit, error) {
	query := `
		SELECT ` + columns + `
		FROM deposits
		WHERE id = $1
	`
	deposit, err := scanDeposit(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find deposit", zap.Error(err))
		return nil, fmt.Errorf("find deposit: %w", domain.ErrPersistence)
	}
	return deposit, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Deposit, error) {
	query := `
		SELECT ` + columns + `
		FROM deposits
		WHERE user_id = $1
		ORDER BY created_at ASC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get deposits", zap.Error(err))
		return nil, fmt.Errorf("get deposits: %w", domain.ErrPersistence)
	}
	defer rows.Close()

	deposits := make([]domain.Deposit, 0)
	for rows.Next() {
		deposit, err := scanDeposit(rows)
		if err != nil {
			zap.L().Error("can't scan deposit row", zap.Error(err))
			return nil, fmt.Errorf("scan deposit: %w", domain.ErrPersistence)
		}
		deposits = append(deposits, *deposit)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate deposits", zap.Error(err))
		return nil, fmt.Errorf("get deposits: %w", domain.ErrPersistence)
	}
	return deposits, nil
}

// UpdateStatus overwrites status and verification flag. It returns nil when
// no deposit has the given id.
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.DepositStatus, verified bool) (*domain.Deposit, error) {
	query := `
		UPDATE deposits
		SET status = $1, is_verified = $2, updated_at = now()
		WHERE id = $3
		RETURNING ` + columns

	var updated *domain.Deposit
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		updated, err = scanDeposit(r.db.QueryRow(ctx, query, string(status), verified, id))
		if errors.Is(err, pgx.ErrNoRows) {
			updated = nil
			return nil
		}
		return err
	})
	if err != nil {
		zap.L().Error("can't update deposit status", zap.Error(err))
		return nil, fmt.Errorf("update deposit status: %w", domain.ErrPersistence)
	}
	return updated, nil
}
