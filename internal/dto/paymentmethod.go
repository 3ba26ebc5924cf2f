package dto

import (
	"encoding/json"
	"time"

	"github.com/GlebRadaev/tradefund/internal/domain"
)

type PaymentMethodRequestDTO struct {
	Name        string          `json:"name" example:"USDT (TRC20)"`
	Description *string         `json:"description,omitempty"`
	Type        string          `json:"type" example:"CRYPTO"`
	Enabled     bool            `json:"enabled"`
	Details     json.RawMessage `json:"details" swaggertype:"object"`
}

type SetEnabledRequestDTO struct {
	Enabled bool `json:"enabled"`
}

type PaymentMethodResponseDTO struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description,omitempty"`
	Type        string          `json:"type" example:"CRYPTO"`
	Enabled     bool            `json:"enabled"`
	Details     json.RawMessage `json:"details" swaggertype:"object"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func NewPaymentMethodResponse(m *domain.PaymentMethod) PaymentMethodResponseDTO {
	return PaymentMethodResponseDTO{
		ID:          m.ID.String(),
		Name:        m.Name,
		Description: m.Description,
		Type:        string(m.Type),
		Enabled:     m.Enabled,
		Details:     m.Details,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func NewPaymentMethodsResponse(methods []domain.PaymentMethod) []PaymentMethodResponseDTO {
	res := make([]PaymentMethodResponseDTO, 0, len(methods))
	for i := range methods {
		res = append(res, NewPaymentMethodResponse(&methods[i]))
	}
	return res
}
