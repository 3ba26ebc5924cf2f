package planservice

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/tradefund/internal/domain"
)

type Repo interface {
	Create(ctx context.Context, plan *domain.SubscriptionPlan) (*domain.SubscriptionPlan, error)
	Update(ctx context.Context, plan *domain.SubscriptionPlan) (*domain.SubscriptionPlan, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.SubscriptionPlan, error)
	FindAll(ctx context.Context) ([]domain.SubscriptionPlan, error)
}

type Cache interface {
	Get(ctx context.Context) ([]domain.SubscriptionPlan, bool)
	Set(ctx context.Context, plans []domain.SubscriptionPlan)
	Invalidate(ctx context.Context)
}

type Input struct {
	Name        string
	Price       string
	Features    []string
	Description string
}

type Service struct {
	repo  Repo
	cache Cache
}

func New(repo Repo, cache Cache) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
	}
}

func (in Input) toPlan(id uuid.UUID) (*domain.SubscriptionPlan, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("plan name is required: %w", domain.ErrValidation)
	}
	price, err := domain.ParseAmount(in.Price)
	if err != nil {
		return nil, err
	}
	features := in.Features
	if features == nil {
		features = []string{}
	}
	return &domain.SubscriptionPlan{
		ID:          id,
		Name:        name,
		Price:       price,
		Features:    features,
		Description: in.Description,
	}, nil
}

func (s *Service) List(ctx context.Context) ([]domain.SubscriptionPlan, error) {
	if plans, ok := s.cache.Get(ctx); ok {
		return plans, nil
	}
	plans, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if plans == nil {
		plans = []domain.SubscriptionPlan{}
	}
	s.cache.Set(ctx, plans)
	return plans, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.SubscriptionPlan, error) {
	plan, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, fmt.Errorf("plan %s: %w", id, domain.ErrNotFound)
	}
	return plan, nil
}

func (s *Service) Create(ctx context.Context, in Input) (*domain.SubscriptionPlan, error) {
	plan, err := in.toPlan(uuid.New())
	if err != nil {
		return nil, err
	}
	created, err := s.repo.Create(ctx, plan)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx)
	zap.L().Info("subscription plan created", zap.String("id", created.ID.String()), zap.String("name", created.Name))
	return created, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, in Input) (*domain.SubscriptionPlan, error) {
	plan, err := in.toPlan(id)
	if err != nil {
		return nil, err
	}
	updated, err := s.repo.Update(ctx, plan)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, fmt.Errorf("plan %s: %w", id, domain.ErrNotFound)
	}
	s.cache.Invalidate(ctx)
	return updated, nil
}
