package dto

import (
	"time"

	"github.com/GlebRadaev/tradefund/internal/domain"
)

type UpsertTotalRequestDTO struct {
	UserID string `json:"user_id" example:"6f1c2f4e-7d8a-4a51-9b5e-3f0d1c2b3a4d"`
	Type   string `json:"type" example:"deposits"`
	Amount string `json:"amount" example:"1200"`
}

type TotalResponseDTO struct {
	UserID    string    `json:"user_id"`
	Type      string    `json:"type" example:"deposits"`
	Amount    string    `json:"amount" example:"1200"`
	UpdatedAt time.Time `json:"updated_at" example:"2024-12-09T16:09:57+03:00"`
}

func NewTotalResponse(t *domain.UserTransactionTotal) TotalResponseDTO {
	return TotalResponseDTO{
		UserID:    t.UserID.String(),
		Type:      string(t.Type),
		Amount:    t.Amount.String(),
		UpdatedAt: t.UpdatedAt,
	}
}

func NewTotalsResponse(totals []domain.UserTransactionTotal) []TotalResponseDTO {
	res := make([]TotalResponseDTO, 0, len(totals))
	for i := range totals {
		res = append(res, NewTotalResponse(&totals[i]))
	}
	return res
}
