package totals

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/tradefund/internal/domain"
	"github.com/GlebRadaev/tradefund/pkg/auth"
)

func NewMock(t *testing.T) (*TotalHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestMine(t *testing.T) {
	handler, service := NewMock(t)
	userID := uuid.New()

	service.EXPECT().GetUserTotals(gomock.Any(), userID).Return([]domain.UserTransactionTotal{
		{UserID: userID, Type: domain.TotalDeposits, Amount: decimal.RequireFromString("1200.50")},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/user/totals", nil)
	req = req.WithContext(auth.WithIdentity(req.Context(), auth.Identity{UserID: userID, Role: "user"}))
	rr := httptest.NewRecorder()

	handler.Mine(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"amount":"1200.5"`)
	assert.Contains(t, rr.Body.String(), `"type":"deposits"`)
}

func TestList(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().GetAllTotals(gomock.Any()).Return([]domain.UserTransactionTotal{}, nil)

	rr := httptest.NewRecorder()
	handler.List(rr, httptest.NewRequest(http.MethodGet, "/api/admin/totals", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestUpsert(t *testing.T) {
	handler, service := NewMock(t)
	userID := uuid.New()

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Overwrites total",
			body: fmt.Sprintf(`{"user_id":%q,"type":"withdrawals","amount":"300"}`, userID),
			prepareMock: func() {
				service.EXPECT().Upsert(gomock.Any(), userID, domain.TotalWithdrawals, "300").
					Return(&domain.UserTransactionTotal{UserID: userID, Type: domain.TotalWithdrawals, Amount: decimal.NewFromInt(300)}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Negative amount",
			body: fmt.Sprintf(`{"user_id":%q,"type":"withdrawals","amount":"-1"}`, userID),
			prepareMock: func() {
				service.EXPECT().Upsert(gomock.Any(), userID, domain.TotalWithdrawals, "-1").
					Return(nil, fmt.Errorf("amount must not be negative: %w", domain.ErrValidation))
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Malformed user",
			body:         `{"user_id":"7","type":"deposits","amount":"1"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Invalid request body",
			body:         `nope`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			rr := httptest.NewRecorder()
			handler.Upsert(rr, httptest.NewRequest(http.MethodPut, "/api/admin/totals", strings.NewReader(tt.body)))

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}
