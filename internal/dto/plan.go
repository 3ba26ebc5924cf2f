package dto

import (
	"time"

	"github.com/GlebRadaev/tradefund/internal/domain"
)

type PlanRequestDTO struct {
	Name        string   `json:"name" example:"Pro"`
	Price       string   `json:"price" example:"49.90"`
	Features    []string `json:"features"`
	Description string   `json:"description"`
}

type PlanResponseDTO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name" example:"Pro"`
	Price       string    `json:"price" example:"49.9"`
	Features    []string  `json:"features"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at" example:"2024-12-09T16:09:57+03:00"`
}

func NewPlanResponse(p *domain.SubscriptionPlan) PlanResponseDTO {
	return PlanResponseDTO{
		ID:          p.ID.String(),
		Name:        p.Name,
		Price:       p.Price.String(),
		Features:    p.Features,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
	}
}

func NewPlansResponse(plans []domain.SubscriptionPlan) []PlanResponseDTO {
	res := make([]PlanResponseDTO, 0, len(plans))
	for i := range plans {
		res = append(res, NewPlanResponse(&plans[i]))
	}
	return res
}
