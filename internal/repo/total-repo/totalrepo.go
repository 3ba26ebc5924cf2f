package totalrepo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/tradefund/internal/domain"
	"github.com/GlebRadaev/tradefund/internal/pg"
)

const columns = `id, user_id, type, amount, updated_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanTotal(row pgx.Row) (*domain.UserTransactionTotal, error) {
	var (
		total  domain.UserTransactionTotal
		typ    string
		amount string
	)
	if err := row.Scan(&total.ID, &total.UserID, &typ, &amount, &total.UpdatedAt); err != nil {
		return nil, err
	}
	var err error
	total.Amount, err = decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("bad amount %q in total %s: %w", amount, total.ID, err)
	}
	total.Type = domain.TotalType(typ)
	return &total, nil
}

// Upsert writes amount for (userID, typ), replacing any previous amount.
// Concurrent writers race and the last one wins.
func (r *Repository) Upsert(ctx context.Context, id, userID uuid.UUID, typ domain.TotalType, amount decimal.Decimal) (*domain.UserTransactionTotal, error) {
	query := `
		INSERT INTO user_transaction_totals (id, user_id, type, amount, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (user_id, type)
		DO UPDATE SET amount = EXCLUDED.amount, updated_at = now()
		RETURNING ` + columns

	total, err := scanTotal(r.db.QueryRow(ctx, query, id, userID, string(typ), amount.String()))
	if err != nil {
		zap.L().Error("can't upsert user transaction total", zap.Error(err))
		return nil, fmt.Errorf("upsert user transaction total: %w", domain.ErrPersistence)
	}
	return total, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]domain.UserTransactionTotal, error) {
	query := `
		SELECT ` + columns + `
		FROM user_transaction_totals
		WHERE user_id = $1
		ORDER BY type
	`
	return r.list(ctx, query, userID)
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.UserTransactionTotal, error) {
	query := `
		SELECT ` + columns + `
		FROM user_transaction_totals
		ORDER BY user_id, type
	`
	return r.list(ctx, query)
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]domain.UserTransactionTotal, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get user transaction totals", zap.Error(err))
		return nil, fmt.Errorf("get user transaction totals: %w", domain.ErrPersistence)
	}
	defer rows.Close()

	totals := make([]domain.UserTransactionTotal, 0)
	for rows.Next() {
		total, err := scanTotal(rows)
		if err != nil {
			zap.L().Error("can't scan user transaction total row", zap.Error(err))
			return nil, fmt.Errorf("scan user transaction total: %w", domain.ErrPersistence)
		}
		totals = append(totals, *total)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate user transaction totals", zap.Error(err))
		return nil, fmt.Errorf("get user transaction totals: %w", domain.ErrPersistence)
	}
	return totals, nil
}
