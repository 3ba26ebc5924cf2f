package totals

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
	Upsert(ctx context.Context, userID uuid.UUID, typ domain.TotalType, amount string) (*domain.UserTransactionTotal, error)
	GetUserTotals(ctx context.Context, userID uuid.UUID) ([]domain.UserTransactionTotal, error)
	GetAllTotals(ctx context.Context) ([]domain.UserTransactionTotal, error)
}

type TotalHandler struct {
	totalService Service
}

func New(totalService Service) *TotalHandler {
	return &TotalHandler{
		totalService: totalService,
	}
}

// Mine godoc
//
//	@Summary		Own running totals
//	@Tags			Totals
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.TotalResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/totals [get]
func (h *TotalHandler) Mine(w http.ResponseWriter, r *http.Request) {
	id, _ := auth.IdentityFromContext(r.Context())

	totals, err := h.totalService.GetUserTotals(r.Context(), id.UserID)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewTotalsResponse(totals))
}

// List godoc
//
//	@Summary		Running totals of every user
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.TotalResponseDTO
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Router			/api/admin/totals [get]
func (h *TotalHandler) List(w http.ResponseWriter, r *http.Request) {
	totals, err := h.totalService.GetAllTotals(r.Context())
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewTotalsResponse(totals))
}

// Upsert godoc
//
//	@Summary		Set a running total
//	@Description	Replaces the stored amount for (user_id, type)
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.UpsertTotalRequestDTO	true	"Total payload"
//	@Success		200		{object}	dto.TotalResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid total"
//	@Failure		403		{object}	utils.Response	"Forbidden"
//	@Failure		422		{object}	utils.Response	"Amount is not a number"
//	@Router			/api/admin/totals [put]
func (h *TotalHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var req dto.UpsertTotalRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	userID, err := request.ParseUUID("user_id", req.UserID)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	total, err := h.totalService.Upsert(r.Context(), userID, domain.TotalType(req.Type), req.Amount)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewTotalResponse(total))
}
