package users

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/tradefund/internal/domain"
)

func NewMock(t *testing.T) (*UserHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestList(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().List(gomock.Any()).Return([]domain.Profile{{ID: uuid.New(), Login: "alice", PasswordHash: "secret", Role: "user"}}, nil)

	rr := httptest.NewRecorder()
	handler.List(rr, httptest.NewRequest(http.MethodGet, "/api/admin/users", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"login":"alice"`)
	assert.NotContains(t, rr.Body.String(), "secret")
}

func TestSetRole(t *testing.T) {
	handler, service := NewMock(t)
	id := uuid.New()

	tests := []struct {
		name         string
		param        string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:  "Promoted",
			param: id.String(),
			body:  `{"role":"admin"}`,
			prepareMock: func() {
				service.EXPECT().SetRole(gomock.Any(), id, "admin").Return(&domain.Profile{ID: id, Role: "admin"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:  "Unknown role",
			param: id.String(),
			body:  `{"role":"owner"}`,
			prepareMock: func() {
				service.EXPECT().SetRole(gomock.Any(), id, "owner").Return(nil, fmt.Errorf("unknown role: %w", domain.ErrValidation))
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:  "Unknown user",
			param: id.String(),
			body:  `{"role":"user"}`,
			prepareMock: func() {
				service.EXPECT().SetRole(gomock.Any(), id, "user").Return(nil, fmt.Errorf("profile: %w", domain.ErrNotFound))
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Malformed ID",
			param:        "me",
			body:         `{"role":"user"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(tt.body))
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.param)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
			rr := httptest.NewRecorder()

			handler.SetRole(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}
