package transactions

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/tradefund/internal/domain"
	"github.com/GlebRadaev/tradefund/pkg/auth"
)

func NewMock(t *testing.T) (*TransactionHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func newRequest(method, body string, userID uuid.UUID, id string) *http.Request {
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	ctx := auth.WithIdentity(req.Context(), auth.Identity{UserID: userID, Role: "user"})
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(ctx, chi.RouteCtxKey, rctx))
}

func TestCreate(t *testing.T) {
	handler, service := NewMock(t)
	userID := uuid.New()
	planID := uuid.New()

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
		expectedBody string
	}{
		{
			name: "Purchase is pending",
			body: fmt.Sprintf(`{"subscription_plan_id":%q}`, planID),
			prepareMock: func() {
				service.EXPECT().Purchase(gomock.Any(), userID, planID).
					Return(&domain.Transaction{ID: uuid.New(), ProfileID: userID, SubscriptionPlanID: planID, Status: domain.TransactionPending}, nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: `"status":"pending"`,
		},
		{
			name: "Client status and amount are ignored",
			body: fmt.Sprintf(`{"subscription_plan_id":%q,"amount":"0.01","status":"completed"}`, planID),
			prepareMock: func() {
				service.EXPECT().Purchase(gomock.Any(), userID, planID).
					Return(&domain.Transaction{ID: uuid.New(), ProfileID: userID, SubscriptionPlanID: planID,
						Amount: decimal.RequireFromString("49.90"), Status: domain.TransactionPending}, nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: `"status":"pending"`,
		},
		{
			name:         "Malformed plan ID",
			body:         `{"subscription_plan_id":"basic"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Unknown plan",
			body: fmt.Sprintf(`{"subscription_plan_id":%q}`, planID),
			prepareMock: func() {
				service.EXPECT().Purchase(gomock.Any(), userID, planID).
					Return(nil, fmt.Errorf("plan %s: %w", planID, domain.ErrNotFound))
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Storage failure",
			body: fmt.Sprintf(`{"subscription_plan_id":%q}`, planID),
			prepareMock: func() {
				service.EXPECT().Purchase(gomock.Any(), userID, planID).Return(nil, domain.ErrPersistence)
			},
			expectedCode: http.StatusInternalServerError,
		},
		{
			name:         "Invalid request body",
			body:         `[]`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			rr := httptest.NewRecorder()
			handler.Create(rr, newRequest(http.MethodPost, tt.body, userID, ""))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, rr.Body.String(), tt.expectedBody)
			}
		})
	}
}

func TestList(t *testing.T) {
	handler, service := NewMock(t)
	userID := uuid.New()

	service.EXPECT().ListByProfile(gomock.Any(), userID).Return(nil, domain.ErrPersistence)
	rr := httptest.NewRecorder()
	handler.List(rr, newRequest(http.MethodGet, "", userID, ""))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)

	service.EXPECT().ListByProfile(gomock.Any(), userID).Return([]domain.Transaction{}, nil)
	rr = httptest.NewRecorder()
	handler.List(rr, newRequest(http.MethodGet, "", userID, ""))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestUpdateStatus(t *testing.T) {
	handler, service := NewMock(t)
	txID := uuid.New()

	service.EXPECT().UpdateStatus(gomock.Any(), txID, domain.TransactionCancelled).
		Return(&domain.Transaction{ID: txID, Status: domain.TransactionCancelled}, nil)
	rr := httptest.NewRecorder()
	handler.UpdateStatus(rr, newRequest(http.MethodPatch, `{"status":"cancelled"}`, uuid.New(), txID.String()))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"status":"cancelled"`)

	service.EXPECT().UpdateStatus(gomock.Any(), txID, domain.TransactionCompleted).
		Return(nil, fmt.Errorf("transaction: %w", domain.ErrNotFound))
	rr = httptest.NewRecorder()
	handler.UpdateStatus(rr, newRequest(http.MethodPatch, `{"status":"completed"}`, uuid.New(), txID.String()))
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = httptest.NewRecorder()
	handler.UpdateStatus(rr, newRequest(http.MethodPatch, `{"status":"completed"}`, uuid.New(), "x"))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
