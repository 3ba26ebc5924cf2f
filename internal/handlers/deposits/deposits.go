package deposits

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"

	"github.com/google/uuid"

	"github.com/GlebRadaev/tradefund/internal/domain"
	"github.com/GlebRadaev/tradefund/internal/dto"
	"github.com/GlebRadaev/tradefund/internal/handlers/httperr"
	"github.com/GlebRadaev/tradefund/internal/handlers/request"
	"github.com/GlebRadaev/tradefund/internal/service/depositservice"
	"github.com/GlebRadaev/tradefund/pkg/auth"
	"github.com/GlebRadaev/tradefund/pkg/utils"
)

type Service interface {
	Create(ctx context.Context, p depositservice.CreateParams) (*domain.Deposit, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.DepositStatus, verified bool) (*domain.Deposit, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Deposit, error)
	ListByOwner(ctx context.Context, userID uuid.UUID) ([]domain.Deposit, error)
}

type DepositHandler struct {
	depositService Service
}

func New(depositService Service) *DepositHandler {
	return &DepositHandler{
		depositService: depositService,
	}
}

func clientIP(r *http.Request) *string {
	if r.RemoteAddr == "" {
		return nil
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return &host
}

// Create godoc
//
//	@Summary		Record a deposit
//	@Description	Record a new pending deposit for the authenticated user
//	@Tags			Deposits
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateDepositRequestDTO	true	"Deposit payload"
//	@Success		201		{object}	dto.DepositResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid deposit"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Forbidden"
//	@Failure		422		{object}	utils.Response	"Amount is not a number"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/deposits [post]
func (h *DepositHandler) Create(w http.ResponseWriter, r *http.Request) {
	id, _ := auth.IdentityFromContext(r.Context())

	var req dto.CreateDepositRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	deposit, err := h.depositService.Create(r.Context(), depositservice.CreateParams{
		UserID:        id.UserID,
		Amount:        req.Amount,
		Method:        req.Method,
		TransactionID: req.TransactionID,
		IPAddress:     clientIP(r),
		Notes:         req.Notes,
	})
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewDepositResponse(deposit))
}

// List godoc
//
//	@Summary		List own deposits
//	@Tags			Deposits
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.DepositResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/deposits [get]
func (h *DepositHandler) List(w http.ResponseWriter, r *http.Request) {
	id, _ := auth.IdentityFromContext(r.Context())

	deposits, err := h.depositService.ListByOwner(r.Context(), id.UserID)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewDepositsResponse(deposits))
}

// Get godoc
//
//	@Summary		Get own deposit
//	@Description	Deposits of other users are reported as not found
//	@Tags			Deposits
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Deposit ID"
//	@Success		200	{object}	dto.DepositResponseDTO
//	@Failure		400	{object}	utils.Response	"Malformed ID"
//	@Failure		404	{object}	utils.Response	"Deposit not found"
//	@Router			/api/user/deposits/{id} [get]
func (h *DepositHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, _ := auth.IdentityFromContext(r.Context())

	depositID, err := request.UUIDParam(r, "id")
	if err != nil {
		httperr.Write(w, err)
		return
	}
	deposit, err := h.depositService.Get(r.Context(), depositID)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	if deposit.UserID != id.UserID {
		httperr.Write(w, fmt.Errorf("deposit %s: %w", depositID, domain.ErrNotFound))
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewDepositResponse(deposit))
}

// ListByUser godoc
//
//	@Summary		List deposits of a user
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			user_id	query		string	true	"User ID"
//	@Success		200		{array}		dto.DepositResponseDTO
//	@Failure		400		{object}	utils.Response	"Malformed user ID"
//	@Failure		403		{object}	utils.Response	"Forbidden"
//	@Router			/api/admin/deposits [get]
func (h *DepositHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := request.ParseUUID("user_id", r.URL.Query().Get("user_id"))
	if err != nil {
		httperr.Write(w, err)
		return
	}
	deposits, err := h.depositService.ListByOwner(r.Context(), userID)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewDepositsResponse(deposits))
}

// UpdateStatus godoc
//
//	@Summary		Change deposit status
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Deposit ID"
//	@Param			request	body		dto.UpdateDepositStatusRequestDTO	true	"New status"
//	@Success		200		{object}	dto.DepositResponseDTO
//	@Failure		400		{object}	utils.Response	"Unknown status"
//	@Failure		403		{object}	utils.Response	"Forbidden"
//	@Failure		404		{object}	utils.Response	"Deposit not found"
//	@Router			/api/admin/deposits/{id}/status [patch]
func (h *DepositHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	depositID, err := request.UUIDParam(r, "id")
	if err != nil {
		httperr.Write(w, err)
		return
	}
	var req dto.UpdateDepositStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	deposit, err := h.depositService.UpdateStatus(r.Context(), depositID, domain.DepositStatus(req.Status), req.IsVerified)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewDepositResponse(deposit))
}
