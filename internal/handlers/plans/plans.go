package plans

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/GlebRadaev/tradefund/internal/domain"
	"github.com/GlebRadaev/tradefund/internal/dto"
	"github.com/GlebRadaev/tradefund/internal/handlers/httperr"
	"github.com/GlebRadaev/tradefund/internal/handlers/request"
	"github.com/GlebRadaev/tradefund/internal/service/planservice"
	"github.com/GlebRadaev/tradefund/pkg/utils"
)

type Service interface {
	List(ctx context.Context) ([]domain.SubscriptionPlan, error)
	Create(ctx context.Context, in planservice.Input) (*domain.SubscriptionPlan, error)
	Update(ctx context.Context, id uuid.UUID, in planservice.Input) (*domain.SubscriptionPlan, error)
}

type PlanHandler struct {
	planService Service
}

func New(planService Service) *PlanHandler {
	return &PlanHandler{
		planService: planService,
	}
}

func decodeInput(r *http.Request) (planservice.Input, error) {
	var req dto.PlanRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return planservice.Input{}, err
	}
	return planservice.Input{
		Name:        req.Name,
		Price:       req.Price,
		Features:    req.Features,
		Description: req.Description,
	}, nil
}

// List godoc
//
//	@Summary		Subscription plans
//	@Tags			Plans
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.PlanResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/plans [get]
//	@Router			/api/admin/plans [get]
func (h *PlanHandler) List(w http.ResponseWriter, r *http.Request) {
	plans, err := h.planService.List(r.Context())
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewPlansResponse(plans))
}

// Create godoc
//
//	@Summary		Add a subscription plan
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PlanRequestDTO	true	"Plan payload"
//	@Success		201		{object}	dto.PlanResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid plan"
//	@Failure		403		{object}	utils.Response	"Forbidden"
//	@Router			/api/admin/plans [post]
func (h *PlanHandler) Create(w http.ResponseWriter, r *http.Request) {
	in, err := decodeInput(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	plan, err := h.planService.Create(r.Context(), in)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewPlanResponse(plan))
}

// Update godoc
//
//	@Summary		Replace a subscription plan
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Plan ID"
//	@Param			request	body		dto.PlanRequestDTO	true	"Plan payload"
//	@Success		200		{object}	dto.PlanResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid plan"
//	@Failure		404		{object}	utils.Response	"Plan not found"
//	@Router			/api/admin/plans/{id} [put]
func (h *PlanHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := request.UUIDParam(r, "id")
	if err != nil {
		httperr.Write(w, err)
		return
	}
	in, err := decodeInput(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	plan, err := h.planService.Update(r.Context(), id, in)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewPlanResponse(plan))
}
