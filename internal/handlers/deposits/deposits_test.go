package deposits

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/tradefund/internal/domain"
	"github.com/GlebRadaev/tradefund/internal/dto"
	"github.com/GlebRadaev/tradefund/internal/service/depositservice"
	"github.com/GlebRadaev/tradefund/pkg/auth"
	"github.com/GlebRadaev/tradefund/pkg/utils"
)

func NewMock(t *testing.T) (*DepositHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func newRequest(method, target, body string, userID uuid.UUID, params map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	ctx := auth.WithIdentity(req.Context(), auth.Identity{UserID: userID, Role: "user"})
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	return req.WithContext(ctx)
}

func TestCreate(t *testing.T) {
	handler, service := NewMock(t)
	userID := uuid.New()

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Deposit recorded",
			body: `{"amount":"150.25","method":"USDT","transaction_id":"0x9f2c"}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, p depositservice.CreateParams) (*domain.Deposit, error) {
						assert.Equal(t, userID, p.UserID)
						assert.Equal(t, "150.25", p.Amount)
						require.NotNil(t, p.IPAddress)
						assert.Equal(t, "192.0.2.1", *p.IPAddress)
						return &domain.Deposit{
							ID:     uuid.New(),
							UserID: p.UserID,
							Amount: decimal.RequireFromString(p.Amount),
							Status: domain.DepositPending,
						}, nil
					})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Non-positive amount",
			body: `{"amount":"0","method":"USDT","transaction_id":"0x9f2c"}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("amount must be positive, got 0: %w", domain.ErrValidation))
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "amount must be positive, got 0: validation error",
		},
		{
			name: "Amount is not a number",
			body: `{"amount":"lots","method":"USDT","transaction_id":"0x9f2c"}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("%q: %w", "lots", domain.ErrMalformedAmount))
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:          "Invalid request body",
			body:          `{`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Storage failure",
			body: `{"amount":"1","method":"USDT","transaction_id":"0x9f2c"}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, domain.ErrPersistence)
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			rr := httptest.NewRecorder()
			handler.Create(rr, newRequest(http.MethodPost, "/api/user/deposits", tt.body, userID, nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestList(t *testing.T) {
	handler, service := NewMock(t)
	userID := uuid.New()

	service.EXPECT().ListByOwner(gomock.Any(), userID).Return([]domain.Deposit{}, nil)

	rr := httptest.NewRecorder()
	handler.List(rr, newRequest(http.MethodGet, "/api/user/deposits", "", userID, nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestGet(t *testing.T) {
	handler, service := NewMock(t)
	userID := uuid.New()
	depositID := uuid.New()

	tests := []struct {
		name         string
		id           string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Own deposit",
			id:   depositID.String(),
			prepareMock: func() {
				service.EXPECT().Get(gomock.Any(), depositID).Return(&domain.Deposit{ID: depositID, UserID: userID}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Foreign deposit is hidden",
			id:   depositID.String(),
			prepareMock: func() {
				service.EXPECT().Get(gomock.Any(), depositID).Return(&domain.Deposit{ID: depositID, UserID: uuid.New()}, nil)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Unknown deposit",
			id:   depositID.String(),
			prepareMock: func() {
				service.EXPECT().Get(gomock.Any(), depositID).Return(nil, fmt.Errorf("deposit: %w", domain.ErrNotFound))
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Malformed ID",
			id:           "17",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			rr := httptest.NewRecorder()
			handler.Get(rr, newRequest(http.MethodGet, "/api/user/deposits/"+tt.id, "", userID, map[string]string{"id": tt.id}))

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestListByUser(t *testing.T) {
	handler, service := NewMock(t)
	userID := uuid.New()

	service.EXPECT().ListByOwner(gomock.Any(), userID).Return([]domain.Deposit{{ID: uuid.New(), UserID: userID, Amount: decimal.NewFromInt(5)}}, nil)

	rr := httptest.NewRecorder()
	handler.ListByUser(rr, newRequest(http.MethodGet, "/api/admin/deposits?user_id="+userID.String(), "", uuid.New(), nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var resp []dto.DepositResponseDTO
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "5", resp[0].Amount)

	rr = httptest.NewRecorder()
	handler.ListByUser(rr, newRequest(http.MethodGet, "/api/admin/deposits", "", uuid.New(), nil))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUpdateStatus(t *testing.T) {
	handler, service := NewMock(t)
	depositID := uuid.New()

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Completed and verified",
			body: `{"status":"completed","is_verified":true}`,
			prepareMock: func() {
				service.EXPECT().UpdateStatus(gomock.Any(), depositID, domain.DepositCompleted, true).
					Return(&domain.Deposit{ID: depositID, Status: domain.DepositCompleted, IsVerified: true}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Unknown status",
			body: `{"status":"refunded"}`,
			prepareMock: func() {
				service.EXPECT().UpdateStatus(gomock.Any(), depositID, domain.DepositStatus("refunded"), false).
					Return(nil, fmt.Errorf("unknown status: %w", domain.ErrValidation))
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Missing deposit",
			body: `{"status":"failed"}`,
			prepareMock: func() {
				service.EXPECT().UpdateStatus(gomock.Any(), depositID, domain.DepositFailed, false).
					Return(nil, fmt.Errorf("deposit: %w", domain.ErrNotFound))
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			rr := httptest.NewRecorder()
			req := newRequest(http.MethodPatch, "/api/admin/deposits/"+depositID.String()+"/status", tt.body, uuid.New(), map[string]string{"id": depositID.String()})
			handler.UpdateStatus(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}
