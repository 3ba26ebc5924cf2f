package transactions

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/GlebRadaev/tradefund/internal/domain"
	"github.com/GlebRadaev/tradefund/internal/dto"
	"github.com/GlebRadaev/tradefund/internal/handlers/httperr"
	"github.com/GlebRadaev/tradefund/internal/handlers/request"
	"github.com/GlebRadaev/tradefund/pkg/auth"
	"github.com/GlebRadaev/tradefund/pkg/utils"
)

type Service interface {
	Purchase(ctx context.Context, profileID, planID uuid.UUID) (*domain.Transaction, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.TransactionStatus) (*domain.Transaction, error)
	ListByProfile(ctx context.Context, profileID uuid.UUID) ([]domain.Transaction, error)
}

type TransactionHandler struct {
	transactionService Service
}

func New(transactionService Service) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

// Create godoc
//
//	@Summary		Record a plan purchase
//	@Description	Charged at the plan's current price, always pending
//	@Tags			Transactions
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateTransactionRequestDTO	true	"Transaction payload"
//	@Success		201		{object}	dto.TransactionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid transaction"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Plan not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/transactions [post]
func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	id, _ := auth.IdentityFromContext(r.Context())

	var req dto.CreateTransactionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	planID, err := request.ParseUUID("subscription_plan_id", req.SubscriptionPlanID)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	tx, err := h.transactionService.Purchase(r.Context(), id.UserID, planID)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewTransactionResponse(tx))
}

// List godoc
//
//	@Summary		List own transactions
//	@Description	Newest first
//	@Tags			Transactions
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.TransactionResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/transactions [get]
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	id, _ := auth.IdentityFromContext(r.Context())

	txs, err := h.transactionService.ListByProfile(r.Context(), id.UserID)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewTransactionsResponse(txs))
}

// UpdateStatus godoc
//
//	@Summary		Change transaction status
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string									true	"Transaction ID"
//	@Param			request	body		dto.UpdateTransactionStatusRequestDTO	true	"New status"
//	@Success		200		{object}	dto.TransactionResponseDTO
//	@Failure		400		{object}	utils.Response	"Unknown status"
//	@Failure		403		{object}	utils.Response	"Forbidden"
//	@Failure		404		{object}	utils.Response	"Transaction not found"
//	@Router			/api/admin/transactions/{id}/status [patch]
func (h *TransactionHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	txID, err := request.UUIDParam(r, "id")
	if err != nil {
		httperr.Write(w, err)
		return
	}
	var req dto.UpdateTransactionStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	tx, err := h.transactionService.UpdateStatus(r.Context(), txID, domain.TransactionStatus(req.Status))
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewTransactionResponse(tx))
}
