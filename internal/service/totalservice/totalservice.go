package totalservice

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/tradefund/internal/domain"
)

type Repo interface {
	Upsert(ctx context.Context, id, userID uuid.UUID, typ domain.TotalType, amount decimal.Decimal) (*domain.UserTransactionTotal, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]domain.UserTransactionTotal, error)
	FindAll(ctx context.Context) ([]domain.UserTransactionTotal, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

// Upsert sets the total of typ for userID to amount. The stored amount is
// replaced, not incremented, and concurrent callers for the same key race
// with the last write winning.
func (s *Service) Upsert(ctx context.Context, userID uuid.UUID, typ domain.TotalType, amount string) (*domain.UserTransactionTotal, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("user is required: %w", domain.ErrValidation)
	}
	if !typ.Valid() {
		return nil, fmt.Errorf("unknown total type %q: %w", typ, domain.ErrValidation)
	}
	value, err := domain.ParseNonNegativeAmount(amount)
	if err != nil {
		return nil, err
	}

	total, err := s.repo.Upsert(ctx, uuid.New(), userID, typ, value)
	if err != nil {
		zap.L().Error("can't upsert user transaction total",
			zap.String("user_id", userID.String()), zap.String("type", string(typ)), zap.Error(err))
		return nil, err
	}
	return total, nil
}

func (s *Service) GetUserTotals(ctx context.Context, userID uuid.UUID) ([]domain.UserTransactionTotal, error) {
	totals, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("can't get user transaction totals", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, err
	}
	if totals == nil {
		totals = []domain.UserTransactionTotal{}
	}
	return totals, nil
}

func (s *Service) GetAllTotals(ctx context.Context) ([]domain.UserTransactionTotal, error) {
	totals, err := s.repo.FindAll(ctx)
	if err != nil {
		zap.L().Error("can't get all user transaction totals", zap.Error(err))
		return nil, err
	}
	if totals == nil {
		totals = []domain.UserTransactionTotal{}
	}
	return totals, nil
}
