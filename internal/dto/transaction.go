package dto

import (
	"time"

	"github.com/GlebRadaev/tradefund/internal/domain"
)

type CreateTransactionRequestDTO struct {
	SubscriptionPlanID string `json:"subscription_plan_id" example:"6f1c2f4e-7d8a-4a51-9b5e-3f0d1c2b3a4d"`
}

type UpdateTransactionStatusRequestDTO struct {
	Status string `json:"status" example:"completed"`
}

type TransactionResponseDTO struct {
	ID                 string    `json:"id"`
	ProfileID          string    `json:"profile_id"`
	SubscriptionPlanID string    `json:"subscription_plan_id"`
	Amount             string    `json:"amount" example:"49.9"`
	Status             string    `json:"status" example:"pending"`
	CreatedAt          time.Time `json:"created_at" example:"2024-12-09T16:09:57+03:00"`
}

func NewTransactionResponse(tx *domain.Transaction) TransactionResponseDTO {
	return TransactionResponseDTO{
		ID:                 tx.ID.String(),
		ProfileID:          tx.ProfileID.String(),
		SubscriptionPlanID: tx.SubscriptionPlanID.String(),
		Amount:             tx.Amount.String(),
		Status:             string(tx.Status),
		CreatedAt:          tx.CreatedAt,
	}
}

func NewTransactionsResponse(txs []domain.Transaction) []TransactionResponseDTO {
	res := make([]TransactionResponseDTO, 0, len(txs))
	for i := range txs {
		res = append(res, NewTransactionResponse(&txs[i]))
	}
	return res
}
