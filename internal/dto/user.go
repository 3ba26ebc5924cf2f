package dto

import (
	"time"

	"github.com/GlebRadaev/tradefund/internal/domain"
)

type SetRoleRequestDTO struct {
	Role string `json:"role" example:"admin"`
}

type UserResponseDTO struct {
	ID        string    `json:"id"`
	Login     string    `json:"login" example:"alice"`
	Role      string    `json:"role" example:"user"`
	CreatedAt time.Time `json:"created_at"`
}

func NewUserResponse(p *domain.Profile) UserResponseDTO {
	return UserResponseDTO{
		ID:        p.ID.String(),
		Login:     p.Login,
		Role:      p.Role,
		CreatedAt: p.CreatedAt,
	}
}

func NewUsersResponse(profiles []domain.Profile) []UserResponseDTO {
	res := make([]UserResponseDTO, 0, len(profiles))
	for i := range profiles {
		res = append(res, NewUserResponse(&profiles[i]))
	}
	return res
}
