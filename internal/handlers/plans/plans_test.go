package plans

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
	"github.com/GlebRadaev/tradefund/internal/service/planservice"
)

func NewMock(t *testing.T) (*PlanHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestList(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().List(gomock.Any()).Return([]domain.SubscriptionPlan{
		{ID: uuid.New(), Name: "Pro", Price: decimal.RequireFromString("49.90"), Features: []string{"signals"}},
	}, nil)

	rr := httptest.NewRecorder()
	handler.List(rr, httptest.NewRequest(http.MethodGet, "/api/user/plans", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"price":"49.9"`)
	assert.Contains(t, rr.Body.String(), `"features":["signals"]`)
}

func TestCreate(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Created",
			body: `{"name":"Pro","price":"49.90","features":["signals"]}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), planservice.Input{Name: "Pro", Price: "49.90", Features: []string{"signals"}}).
					Return(&domain.SubscriptionPlan{ID: uuid.New(), Name: "Pro"}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Invalid price",
			body: `{"name":"Pro","price":"-1"}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("price: %w", domain.ErrValidation))
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Invalid request body",
			body:         `{"name":`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			rr := httptest.NewRecorder()
			handler.Create(rr, httptest.NewRequest(http.MethodPost, "/api/admin/plans", strings.NewReader(tt.body)))

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestUpdate(t *testing.T) {
	handler, service := NewMock(t)
	id := uuid.New()

	newRequest := func(param, body string) *http.Request {
		req := httptest.NewRequest(http.MethodPut, "/api/admin/plans/"+param, strings.NewReader(body))
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", param)
		return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}

	service.EXPECT().Update(gomock.Any(), id, gomock.Any()).Return(nil, fmt.Errorf("plan: %w", domain.ErrNotFound))
	rr := httptest.NewRecorder()
	handler.Update(rr, newRequest(id.String(), `{"name":"Pro","price":"1"}`))
	assert.Equal(t, http.StatusNotFound, rr.Code)

	service.EXPECT().Update(gomock.Any(), id, gomock.Any()).Return(&domain.SubscriptionPlan{ID: id, Name: "Pro"}, nil)
	rr = httptest.NewRecorder()
	handler.Update(rr, newRequest(id.String(), `{"name":"Pro","price":"1"}`))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	handler.Update(rr, newRequest("pro", `{"name":"Pro","price":"1"}`))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
