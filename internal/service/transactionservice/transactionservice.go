package transactionservice

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/tradefund/internal/domain"
)

type Repo interface {
	Create(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error)
	FindByProfileID(ctx context.Context, profileID uuid.UUID) ([]domain.Transaction, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.TransactionStatus) (*domain.Transaction, error)
}

type PlanService interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.SubscriptionPlan, error)
}

type Service struct {
	repo  Repo
	plans PlanService
}

func New(repo Repo, plans PlanService) *Service {
	return &Service{
		repo:  repo,
		plans: plans,
	}
}

// Purchase records a pending purchase of planID by profileID, charged at the
// plan's current price.
func (s *Service) Purchase(ctx context.Context, profileID, planID uuid.UUID) (*domain.Transaction, error) {
	plan, err := s.plans.Get(ctx, planID)
	if err != nil {
		return nil, err
	}
	return s.Create(ctx, profileID, planID, plan.Price.String(), nil)
}

// Create records a subscription purchase. A nil status means pending.
func (s *Service) Create(ctx context.Context, profileID, planID uuid.UUID, amount string, status *domain.TransactionStatus) (*domain.Transaction, error) {
	value, err := domain.ParseAmount(amount)
	if err != nil {
		return nil, err
	}
	st := domain.TransactionPending
	if status != nil {
		st = *status
	}
	if !st.Valid() {
		return nil, fmt.Errorf("unknown transaction status %q: %w", st, domain.ErrValidation)
	}

	tx := &domain.Transaction{
		ID:                 uuid.New(),
		ProfileID:          profileID,
		SubscriptionPlanID: planID,
		Amount:             value,
		Status:             st,
	}
	created, err := s.repo.Create(ctx, tx)
	if err != nil {
		zap.L().Error("can't create transaction", zap.String("profile_id", profileID.String()), zap.Error(err))
		return nil, err
	}
	return created, nil
}

// UpdateStatus overwrites the status of a transaction. There is no
// transition graph.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.TransactionStatus) (*domain.Transaction, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("unknown transaction status %q: %w", status, domain.ErrValidation)
	}
	tx, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		zap.L().Error("can't update transaction status", zap.String("id", id.String()), zap.Error(err))
		return nil, err
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction %s: %w", id, domain.ErrNotFound)
	}
	zap.L().Info("transaction status updated", zap.String("id", id.String()), zap.String("status", string(status)))
	return tx, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	tx, err := s.repo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("can't get transaction", zap.String("id", id.String()), zap.Error(err))
		return nil, err
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction %s: %w", id, domain.ErrNotFound)
	}
	return tx, nil
}

func (s *Service) ListByProfile(ctx context.Context, profileID uuid.UUID) ([]domain.Transaction, error) {
	txs, err := s.repo.FindByProfileID(ctx, profileID)
	if err != nil {
		zap.L().Error("can't list transactions", zap.String("profile_id", profileID.String()), zap.Error(err))
		return nil, err
	}
	if txs == nil {
		txs = []domain.Transaction{}
	}
	return txs, nil
}
