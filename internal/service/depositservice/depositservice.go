package depositservice

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/tradefund/internal/domain"
)

type Repo interface {
	Create(ctx context.Context, deposit *domain.Deposit) (*domain.Deposit, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Deposit, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Deposit, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.DepositStatus, verified bool) (*domain.Deposit, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

type CreateParams struct {
	UserID        uuid.UUID
	Amount        string
	Method        string
	TransactionID string
	IPAddress     *string
	Notes         *string
}

func (p CreateParams) validate() error {
	if p.UserID == uuid.Nil {
		return fmt.Errorf("owner is required: %w", domain.ErrValidation)
	}
	if strings.TrimSpace(p.Method) == "" {
		return fmt.Errorf("method is required: %w", domain.ErrValidation)
	}
	if strings.TrimSpace(p.TransactionID) == "" {
		return fmt.Errorf("transaction reference is required: %w", domain.ErrValidation)
	}
	return nil
}

// Create stores a new pending, unverified deposit.
func (s *Service) Create(ctx context.Context, p CreateParams) (*domain.Deposit, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	amount, err := domain.ParseAmount(p.Amount)
	if err != nil {
		zap.L().Info("rejected deposit amount", zap.String("amount", p.Amount))
		return nil, err
	}

	deposit := &domain.Deposit{
		ID:            uuid.New(),
		UserID:        p.UserID,
		Amount:        amount,
		Method:        strings.TrimSpace(p.Method),
		TransactionID: strings.TrimSpace(p.TransactionID),
		Status:        domain.DepositPending,
		IsVerified:    false,
		IPAddress:     p.IPAddress,
		Notes:         p.Notes,
	}
	created, err := s.repo.Create(ctx, deposit)
	if err != nil {
		zap.L().Error("can't create deposit", zap.String("user_id", p.UserID.String()), zap.Error(err))
		return nil, err
	}
	zap.L().Info("deposit created", zap.String("id", created.ID.String()), zap.String("amount", created.Amount.String()))
	return created, nil
}

// UpdateStatus overwrites the status and verification flag of a deposit. Any
// status may replace any other.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.DepositStatus, verified bool) (*domain.Deposit, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("unknown deposit status %q: %w", status, domain.ErrValidation)
	}
	deposit, err := s.repo.UpdateStatus(ctx, id, status, verified)
	if err != nil {
		zap.L().Error("can't update deposit status", zap.String("id", id.String()), zap.Error(err))
		return nil, err
	}
	if deposit == nil {
		return nil, fmt.Errorf("deposit %s: %w", id, domain.ErrNotFound)
	}
	zap.L().Info("deposit status updated", zap.String("id", id.String()), zap.String("status", string(status)), zap.Bool("verified", verified))
	return deposit, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Deposit, error) {
	deposit, err := s.repo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("can't get deposit", zap.String("id", id.String()), zap.Error(err))
		return nil, err
	}
	if deposit == nil {
		return nil, fmt.Errorf("deposit %s: %w", id, domain.ErrNotFound)
	}
	return deposit, nil
}

// ListByOwner returns the deposits of userID oldest first. No deposits is an
// empty slice, not an error.
func (s *Service) ListByOwner(ctx context.Context, userID uuid.UUID) ([]domain.Deposit, error) {
	deposits, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("can't list deposits", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, err
	}
	if deposits == nil {
		deposits = []domain.Deposit{}
	}
	return deposits, nil
}
