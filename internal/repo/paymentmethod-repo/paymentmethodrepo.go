package paymentmethodrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/tradefund/internal/domain"
	"github.com/GlebRadaev/tradefund/internal/pg"
)

const columns = `id, name, description, type, enabled, details, created_at, updated_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanMethod(row pgx.Row) (*domain.PaymentMethod, error) {
	var (
		m   domain.PaymentMethod
		typ string
	)
	if err := row.Scan(&m.ID, &m.Name, &m.Description, &typ, &m.Enabled, &m.Details, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return nil, err
	}
	m.Type = domain.PaymentMethodType(typ)
	return &m, nil
}

func (r *Repository) Create(ctx context.Context, m *domain.PaymentMethod) (*domain.PaymentMethod, error) {
	query := `
		INSERT INTO payment_methods (id, name, description, type, enabled, details)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, m.ID, m.Name, m.Description, string(m.Type), m.Enabled, []byte(m.Details)).
		Scan(&m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		zap.L().Error("can't save payment method", zap.Error(err))
		return nil, fmt.Errorf("save payment method: %w", domain.ErrPersistence)
	}
	return m, nil
}

// Update returns nil when no payment method has m.ID.
func (r *Repository) Update(ctx context.Context, m *domain.PaymentMethod) (*domain.PaymentMethod, error) {
	query := `
		UPDATE payment_methods
		SET name = $1, description = $2, type = $3, enabled = $4, details = $5, updated_at = now()
		WHERE id = $6
		RETURNING ` + columns
	return r.updateOne(ctx, "update payment method", query, m.Name, m.Description, string(m.Type), m.Enabled, []byte(m.Details), m.ID)
}

// SetEnabled returns nil when no payment method has the given id.
func (r *Repository) SetEnabled(ctx context.Context, id uuid.UUID, enabled bool) (*domain.PaymentMethod, error) {
	query := `
		UPDATE payment_methods
		SET enabled = $1, updated_at = now()
		WHERE id = $2
		RETURNING ` + columns
	return r.updateOne(ctx, "set payment method enabled", query, enabled, id)
}

func (r *Repository) updateOne(ctx context.Context, op, query string, args ...any) (*domain.PaymentMethod, error) {
	m, err := scanMethod(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't "+op, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", op, domain.ErrPersistence)
	}
	return m, nil
}

func (r *Repository) FindAll(ctx context.Context, onlyEnabled bool) ([]domain.PaymentMethod, error) {
	query := `
		SELECT ` + columns + `
		FROM payment_methods
		WHERE enabled OR NOT $1
		ORDER BY name
	`
	rows, err := r.db.Query(ctx, query, onlyEnabled)
	if err != nil {
		zap.L().Error("can't get payment methods", zap.Error(err))
		return nil, fmt.Errorf("get payment methods: %w", domain.ErrPersistence)
	}
	defer rows.Close()

	methods := make([]domain.PaymentMethod, 0)
	for rows.Next() {
		m, err := scanMethod(rows)
		if err != nil {
			zap.L().Error("can't scan payment method row", zap.Error(err))
			return nil, fmt.Errorf("scan payment method: %w", domain.ErrPersistence)
		}
		methods = append(methods, *m)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate payment methods", zap.Error(err))
		return nil, fmt.Errorf("get payment methods: %w", domain.ErrPersistence)
	}
	return methods, nil
}
