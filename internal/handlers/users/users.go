package users

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/GlebRadaev/tradefund/internal/domain"
	"github.com/GlebRadaev/tradefund/internal/dto"
	"github.com/GlebRadaev/tradefund/internal/handlers/httperr"
	"github.com/GlebRadaev/tradefund/internal/handlers/request"
	"github.com/GlebRadaev/tradefund/pkg/utils"
)

type Service interface {
	List(ctx context.Context) ([]domain.Profile, error)
	SetRole(ctx context.Context, id uuid.UUID, role string) (*domain.Profile, error)
}

type UserHandler struct {
	userService Service
}

func New(userService Service) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// List godoc
//
//	@Summary		Registered users
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.UserResponseDTO
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Router			/api/admin/users [get]
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.userService.List(r.Context())
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewUsersResponse(profiles))
}

// SetRole godoc
//
//	@Summary		Change the role of a user
//	@Description	Takes effect with the next token the user obtains
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"User ID"
//	@Param			request	body		dto.SetRoleRequestDTO	true	"New role"
//	@Success		200		{object}	dto.UserResponseDTO
//	@Failure		400		{object}	utils.Response	"Unknown role"
//	@Failure		404		{object}	utils.Response	"User not found"
//	@Router			/api/admin/users/{id}/role [patch]
func (h *UserHandler) SetRole(w http.ResponseWriter, r *http.Request) {
	id, err := request.UUIDParam(r, "id")
	if err != nil {
		httperr.Write(w, err)
		return
	}
	var req dto.SetRoleRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	profile, err := h.userService.SetRole(r.Context(), id, req.Role)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewUserResponse(profile))
}
