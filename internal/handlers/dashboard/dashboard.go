package dashboard

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/GlebRadaev/tradefund/internal/dto"
	"github.com/GlebRadaev/tradefund/internal/handlers/httperr"
	"github.com/GlebRadaev/tradefund/internal/service/dashboardservice"
	"github.com/GlebRadaev/tradefund/pkg/auth"
	"github.com/GlebRadaev/tradefund/pkg/utils"
)

type Service interface {
	User(ctx context.Context, userID uuid.UUID) (*dashboardservice.UserDashboard, error)
	Admin(ctx context.Context) (*dashboardservice.AdminDashboard, error)
}

type DashboardHandler struct {
	dashboardService Service
}

func New(dashboardService Service) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// User godoc
//
//	@Summary		User dashboard
//	@Description	Deposits, transactions and running totals of the authenticated user
//	@Tags			Dashboard
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.UserDashboardResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/dashboard [get]
func (h *DashboardHandler) User(w http.ResponseWriter, r *http.Request) {
	id, _ := auth.IdentityFromContext(r.Context())

	d, err := h.dashboardService.User(r.Context(), id.UserID)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.UserDashboardResponseDTO{
		Deposits:     dto.NewDepositsResponse(d.Deposits),
		Transactions: dto.NewTransactionsResponse(d.Transactions),
		Totals:       dto.NewTotalsResponse(d.Totals),
	})
}

// Admin godoc
//
//	@Summary		Admin dashboard
//	@Description	Totals of every user, the plan catalogue and the user list
//	@Tags			Dashboard
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.AdminDashboardResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/dashboard [get]
func (h *DashboardHandler) Admin(w http.ResponseWriter, r *http.Request) {
	d, err := h.dashboardService.Admin(r.Context())
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AdminDashboardResponseDTO{
		Totals: dto.NewTotalsResponse(d.Totals),
		Plans:  dto.NewPlansResponse(d.Plans),
		Users:  dto.NewUsersResponse(d.Users),
	})
}
