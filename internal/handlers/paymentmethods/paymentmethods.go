package paymentmethods

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/GlebRadaev/tradefund/internal/domain"
	"github.com/GlebRadaev/tradefund/internal/dto"
	"github.com/GlebRadaev/tradefund/internal/handlers/httperr"
	"github.com/GlebRadaev/tradefund/internal/handlers/request"
	"github.com/GlebRadaev/tradefund/internal/service/paymentmethodservice"
	"github.com/GlebRadaev/tradefund/pkg/utils"
)

type Service interface {
	List(ctx context.Context) ([]domain.PaymentMethod, error)
	ListEnabled(ctx context.Context) ([]domain.PaymentMethod, error)
	Create(ctx context.Context, in paymentmethodservice.Input) (*domain.PaymentMethod, error)
	Update(ctx context.Context, id uuid.UUID, in paymentmethodservice.Input) (*domain.PaymentMethod, error)
	SetEnabled(ctx context.Context, id uuid.UUID, enabled bool) (*domain.PaymentMethod, error)
}

type PaymentMethodHandler struct {
	paymentMethodService Service
}

func New(paymentMethodService Service) *PaymentMethodHandler {
	return &PaymentMethodHandler{
		paymentMethodService: paymentMethodService,
	}
}

func decodeInput(r *http.Request) (paymentmethodservice.Input, error) {
	var req dto.PaymentMethodRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return paymentmethodservice.Input{}, err
	}
	return paymentmethodservice.Input{
		Name:        req.Name,
		Description: req.Description,
		Type:        domain.PaymentMethodType(req.Type),
		Enabled:     req.Enabled,
		Details:     req.Details,
	}, nil
}

func (h *PaymentMethodHandler) respondList(w http.ResponseWriter, methods []domain.PaymentMethod, err error) {
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewPaymentMethodsResponse(methods))
}

// ListEnabled godoc
//
//	@Summary		Enabled payment methods
//	@Tags			Payment methods
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.PaymentMethodResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Router			/api/user/payment-methods [get]
func (h *PaymentMethodHandler) ListEnabled(w http.ResponseWriter, r *http.Request) {
	methods, err := h.paymentMethodService.ListEnabled(r.Context())
	h.respondList(w, methods, err)
}

// List godoc
//
//	@Summary		All payment methods
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.PaymentMethodResponseDTO
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Router			/api/admin/payment-methods [get]
func (h *PaymentMethodHandler) List(w http.ResponseWriter, r *http.Request) {
	methods, err := h.paymentMethodService.List(r.Context())
	h.respondList(w, methods, err)
}

// Create godoc
//
//	@Summary		Add a payment method
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PaymentMethodRequestDTO	true	"Payment method payload"
//	@Success		201		{object}	dto.PaymentMethodResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid payment method"
//	@Failure		403		{object}	utils.Response	"Forbidden"
//	@Router			/api/admin/payment-methods [post]
func (h *PaymentMethodHandler) Create(w http.ResponseWriter, r *http.Request) {
	in, err := decodeInput(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	m, err := h.paymentMethodService.Create(r.Context(), in)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewPaymentMethodResponse(m))
}

// Update godoc
//
//	@Summary		Replace a payment method
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Payment method ID"
//	@Param			request	body		dto.PaymentMethodRequestDTO	true	"Payment method payload"
//	@Success		200		{object}	dto.PaymentMethodResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid payment method"
//	@Failure		404		{object}	utils.Response	"Payment method not found"
//	@Router			/api/admin/payment-methods/{id} [put]
func (h *PaymentMethodHandler) Update(w http.ResponseWriter, r *http.Request) {
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
	m, err := h.paymentMethodService.Update(r.Context(), id, in)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewPaymentMethodResponse(m))
}

// SetEnabled godoc
//
//	@Summary		Enable or disable a payment method
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Payment method ID"
//	@Param			request	body		dto.SetEnabledRequestDTO	true	"Enabled flag"
//	@Success		200		{object}	dto.PaymentMethodResponseDTO
//	@Failure		404		{object}	utils.Response	"Payment method not found"
//	@Router			/api/admin/payment-methods/{id}/enabled [patch]
func (h *PaymentMethodHandler) SetEnabled(w http.ResponseWriter, r *http.Request) {
	id, err := request.UUIDParam(r, "id")
	if err != nil {
		httperr.Write(w, err)
		return
	}
	var req dto.SetEnabledRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	m, err := h.paymentMethodService.SetEnabled(r.Context(), id, req.Enabled)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewPaymentMethodResponse(m))
}
