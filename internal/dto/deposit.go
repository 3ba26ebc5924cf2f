package dto

import (
	"time"

	"github.com/GlebRadaev/tradefund/internal/domain"
)

type CreateDepositRequestDTO struct {
	Amount        string  `json:"amount" example:"150.25"`
	Method        string  `json:"method" example:"USDT"`
	TransactionID string  `json:"transaction_id" example:"0x9f2c"`
	Notes         *string `json:"notes,omitempty"`
}

type UpdateDepositStatusRequestDTO struct {
	Status     string `json:"status" example:"completed"`
	IsVerified bool   `json:"is_verified" example:"true"`
}

type DepositResponseDTO struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Amount        string    `json:"amount" example:"150.25"`
	Method        string    `json:"method" example:"USDT"`
	TransactionID string    `json:"transaction_id" example:"0x9f2c"`
	Status        string    `json:"status" example:"pending"`
	IsVerified    bool      `json:"is_verified"`
	IPAddress     *string   `json:"ip_address,omitempty"`
	Notes         *string   `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at" example:"2024-12-09T16:09:57+03:00"`
	UpdatedAt     time.Time `json:"updated_at" example:"2024-12-09T16:09:57+03:00"`
}

func NewDepositResponse(d *domain.Deposit) DepositResponseDTO {
	return DepositResponseDTO{
		ID:            d.ID.String(),
		UserID:        d.UserID.String(),
		Amount:        d.Amount.String(),
		Method:        d.Method,
		TransactionID: d.TransactionID,
		Status:        string(d.Status),
		IsVerified:    d.IsVerified,
		IPAddress:     d.IPAddress,
		Notes:         d.Notes,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func NewDepositsResponse(deposits []domain.Deposit) []DepositResponseDTO {
	res := make([]DepositResponseDTO, 0, len(deposits))
	for i := range deposits {
		res = append(res, NewDepositResponse(&deposits[i]))
	}
	return res
}
