package planrepo

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

const columns = `id, name, price, features, description, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanPlan(row pgx.Row) (*domain.SubscriptionPlan, error) {
	var (
		plan  domain.SubscriptionPlan
		price string
	)
	if err := row.Scan(&plan.ID, &plan.Name, &price, &plan.Features, &plan.Description, &plan.CreatedAt); err != nil {
		return nil, err
	}
	var err error
	plan.Price, err = decimal.NewFromString(price)
	if err != nil {
		return nil, fmt.Errorf("bad price %q in plan %s: %w", price, plan.ID, err)
	}
	if plan.Features == nil {
		plan.Features = []string{}
	}
	return &plan, nil
}

func (r *Repository) Create(ctx context.Context, plan *domain.SubscriptionPlan) (*domain.SubscriptionPlan, error) {
	query := `
		INSERT INTO subscription_plans (id, name, price, features, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`
	err := r.db.QueryRow(ctx, query, plan.ID, plan.Name, plan.Price.String(), plan.Features, plan.Description).
		Scan(&plan.CreatedAt)
	if err != nil {
		zap.L().Error("can't save subscription plan", zap.Error(err))
		return nil, fmt.Errorf("save subscription plan: %w", domain.ErrPersistence)
	}
	return plan, nil
}

// Update returns nil when no plan has plan.ID.
func (r *Repository) Update(ctx context.Context, plan *domain.SubscriptionPlan) (*domain.SubscriptionPlan, error) {
	query := `
		UPDATE subscription_plans
		SET name = $1, price = $2, features = $3, description = $4
		WHERE id = $5
		RETURNING ` + columns

	updated, err := scanPlan(r.db.QueryRow(ctx, query, plan.Name, plan.Price.String(), plan.Features, plan.Description, plan.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't update subscription plan", zap.Error(err))
		return nil, fmt.Errorf("update subscription plan: %w", domain.ErrPersistence)
	}
	return updated, nil
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*domain.SubscriptionPlan, error) {
	query := `
		SELECT ` + columns + `
		FROM subscription_plans
		WHERE id = $1
	`
	plan, err := scanPlan(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find subscription plan", zap.Error(err))
		return nil, fmt.Errorf("find subscription plan: %w", domain.ErrPersistence)
	}
	return plan, nil
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.SubscriptionPlan, error) {
	query := `
		SELECT ` + columns + `
		FROM subscription_plans
		ORDER BY created_at ASC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get subscription plans", zap.Error(err))
		return nil, fmt.Errorf("get subscription plans: %w", domain.ErrPersistence)
	}
	defer rows.Close()

	plans := make([]domain.SubscriptionPlan, 0)
	for rows.Next() {
		plan, err := scanPlan(rows)
		if err != nil {
			zap.L().Error("can't scan subscription plan row", zap.Error(err))
			return nil, fmt.Errorf("scan subscription plan: %w", domain.ErrPersistence)
		}
		plans = append(plans, *plan)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate subscription plans", zap.Error(err))
		return nil, fmt.Errorf("get subscription plans: %w", domain.ErrPersistence)
	}
	return plans, nil
}
