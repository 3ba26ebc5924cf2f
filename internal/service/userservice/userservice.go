package userservice

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/tradefund/internal/access"
	"github.com/GlebRadaev/tradefund/internal/domain"
)

type Repo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	FindAll(ctx context.Context) ([]domain.Profile, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role string) (*domain.Profile, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	profile, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, fmt.Errorf("profile %s: %w", id, domain.ErrNotFound)
	}
	return profile, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Profile, error) {
	profiles, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if profiles == nil {
		profiles = []domain.Profile{}
	}
	return profiles, nil
}

// SetRole changes the role of a profile. The new role takes effect on the
// next token the profile obtains.
func (s *Service) SetRole(ctx context.Context, id uuid.UUID, role string) (*domain.Profile, error) {
	parsed, err := access.ParseRole(role)
	if err != nil {
		return nil, err
	}
	profile, err := s.repo.UpdateRole(ctx, id, string(parsed))
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, fmt.Errorf("profile %s: %w", id, domain.ErrNotFound)
	}
	zap.L().Info("profile role changed", zap.String("id", id.String()), zap.String("role", role))
	return profile, nil
}
