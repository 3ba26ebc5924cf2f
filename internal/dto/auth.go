package dto

import "github.com/GlebRadaev/tradefund/internal/access"

type RegisterRequestDTO struct {
	Login    string `json:"login" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8"`
}

type RegisterResponseDTO struct {
	Message string `json:"message"`
}

type LoginRequestDTO struct {
	Login    string `json:"login" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginResponseDTO struct {
	Message string `json:"message"`
}

type MeResponseDTO struct {
	UserID string        `json:"user_id" example:"6f1c2f4e-7d8a-4a51-9b5e-3f0d1c2b3a4d"`
	Role   string        `json:"role" example:"user"`
	Rules  []access.Rule `json:"rules"`
}
