package authservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/tradefund/internal/access"
	"github.com/GlebRadaev/tradefund/internal/domain"
	"github.com/GlebRadaev/tradefund/internal/pg"
	"github.com/GlebRadaev/tradefund/pkg/auth"
)

type Repo interface {
	FindByLogin(ctx context.Context, login string) (*domain.Profile, error)
	Create(ctx context.Context, profile *domain.Profile) (*domain.Profile, error)
}

// TotalsService seeds the running totals of a new profile.
type TotalsService interface {
	Upsert(ctx context.Context, userID uuid.UUID, typ domain.TotalType, amount string) (*domain.UserTransactionTotal, error)
}

type Service struct {
	profileRepo   Repo
	totalsService TotalsService
	txManager     pg.TXManager
	hashService   auth.HashServiceInterface
	jwtService    auth.JWTServiceInterface
	tokenTTL      time.Duration
	adminLogin    string
}

func New(repo Repo, totalsService TotalsService, txManager pg.TXManager, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface, tokenTTL time.Duration, adminLogin string) *Service {
	return &Service{
		profileRepo:   repo,
		totalsService: totalsService,
		txManager:     txManager,
		hashService:   hashService,
		jwtService:    jwtService,
		tokenTTL:      tokenTTL,
		adminLogin:    adminLogin,
	}
}

var (
	ErrLoginTaken         = errors.New("login already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

func (s *Service) Register(ctx context.Context, login, password string) (*domain.Profile, error) {
	if len(login) < 3 || len(login) > 50 {
		return nil, fmt.Errorf("login must be 3 to 50 characters: %w", domain.ErrValidation)
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters: %w", domain.ErrValidation)
	}

	existing, err := s.profileRepo.FindByLogin(ctx, login)
	if err != nil {
		zap.L().Error("can't find profile: ", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		zap.L().Info("profile already exists", zap.String("login", login))
		return nil, ErrLoginTaken
	}
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}

	role := access.RoleUser
	if s.adminLogin != "" && login == s.adminLogin {
		role = access.RoleAdmin
	}
	profile := &domain.Profile{
		ID:           uuid.New(),
		Login:        login,
		PasswordHash: hashedPassword,
		Role:         string(role),
	}
	var created *domain.Profile
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.profileRepo.Create(ctx, profile)
		if err != nil {
			zap.L().Error("can't create profile: ", zap.Error(err))
			return err
		}
		for _, typ := range []domain.TotalType{domain.TotalTransactions, domain.TotalDeposits, domain.TotalWithdrawals} {
			if _, err := s.totalsService.Upsert(ctx, created.ID, typ, "0"); err != nil {
				zap.L().Error("can't seed totals: ", zap.String("type", string(typ)), zap.Error(err))
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("profile successfully registered", zap.String("login", login), zap.String("role", created.Role))
	return created, nil
}

func (s *Service) Authenticate(ctx context.Context, login, password string) (*domain.Profile, error) {
	profile, err := s.profileRepo.FindByLogin(ctx, login)
	if err != nil {
		zap.L().Error("can't find profile: ", zap.String("login", login), zap.Error(err))
		return nil, err
	}
	if profile == nil {
		zap.L().Info("invalid credentials", zap.String("login", login))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(profile.PasswordHash, password); !ok {
		zap.L().Error("invalid credentials", zap.String("login", login))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("profile successfully authenticated", zap.String("login", login))
	return profile, nil
}

func (s *Service) GenerateToken(profile *domain.Profile) (string, error) {
	expirationTime := time.Now().Add(s.tokenTTL)

	token, err := s.jwtService.GenerateJWT(profile.ID, profile.Role, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}
