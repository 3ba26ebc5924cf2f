package profilerepo

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

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) findOne(ctx context.Context, query string, arg any) (*domain.Profile, error) {
	var p domain.Profile
	err := repo.db.QueryRow(ctx, query, arg).Scan(&p.ID, &p.Login, &p.PasswordHash, &p.Role, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find profile", zap.Error(err))
		return nil, fmt.Errorf("find profile: %w", domain.ErrPersistence)
	}
	return &p, nil
}

func (repo *Repository) FindByLogin(ctx context.Context, login string) (*domain.Profile, error) {
	return repo.findOne(ctx, "SELECT id, login, password_hash, role, created_at FROM profiles WHERE login = $1", login)
}

func (repo *Repository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	return repo.findOne(ctx, "SELECT id, login, password_hash, role, created_at FROM profiles WHERE id = $1", id)
}

func (repo *Repository) Create(ctx context.Context, p *domain.Profile) (*domain.Profile, error) {
	query := `
		INSERT INTO profiles (id, login, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`
	err := repo.db.QueryRow(ctx, query, p.ID, p.Login, p.PasswordHash, p.Role).Scan(&p.CreatedAt)
	if err != nil {
		zap.L().Error("can't save profile", zap.Error(err))
		return nil, fmt.Errorf("save profile: %w", domain.ErrPersistence)
	}
	return p, nil
}

func (repo *Repository) FindAll(ctx context.Context) ([]domain.Profile, error) {
	rows, err := repo.db.Query(ctx, "SELECT id, login, role, created_at FROM profiles ORDER BY created_at ASC")
	if err != nil {
		zap.L().Error("can't get profiles", zap.Error(err))
		return nil, fmt.Errorf("get profiles: %w", domain.ErrPersistence)
	}
	defer rows.Close()

	profiles := make([]domain.Profile, 0)
	for rows.Next() {
		var p domain.Profile
		if err := rows.Scan(&p.ID, &p.Login, &p.Role, &p.CreatedAt); err != nil {
			zap.L().Error("can't scan profile row", zap.Error(err))
			return nil, fmt.Errorf("scan profile: %w", domain.ErrPersistence)
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

// UpdateRole returns nil when no profile has the given id.
func (repo *Repository) UpdateRole(ctx context.Context, id uuid.UUID, role string) (*domain.Profile, error) {
	var p domain.Profile
	err := repo.db.QueryRow(ctx, "UPDATE profiles SET role = $1 WHERE id = $2 RETURNING id, login, role, created_at", role, id).
		Scan(&p.ID, &p.Login, &p.Role, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't update profile role", zap.Error(err))
		return nil, fmt.Errorf("update profile role: %w", domain.ErrPersistence)
	}
	return &p, nil
}
