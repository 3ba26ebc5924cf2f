package planservice

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/tradefund/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockCache) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	cache := NewMockCache(ctrl)
	service := New(repo, cache)
	defer ctrl.Finish()
	return service, repo, cache
}

func TestList(t *testing.T) {
	service, repo, cache := NewMock(t)
	plans := []domain.SubscriptionPlan{{ID: uuid.New(), Name: "Basic", Price: decimal.NewFromInt(10)}}

	tests := []struct {
		name          string
		prepareMock   func()
		expected      []domain.SubscriptionPlan
		expectedError error
	}{
		{
			name: "Served from cache",
			prepareMock: func() {
				cache.EXPECT().Get(context.Background()).Return(plans, true)
			},
			expected: plans,
		},
		{
			name: "Miss refills cache",
			prepareMock: func() {
				cache.EXPECT().Get(context.Background()).Return(nil, false)
				repo.EXPECT().FindAll(context.Background()).Return(plans, nil)
				cache.EXPECT().Set(context.Background(), plans)
			},
			expected: plans,
		},
		{
			name: "Empty catalogue",
			prepareMock: func() {
				cache.EXPECT().Get(context.Background()).Return(nil, false)
				repo.EXPECT().FindAll(context.Background()).Return(nil, nil)
				cache.EXPECT().Set(context.Background(), []domain.SubscriptionPlan{})
			},
			expected: []domain.SubscriptionPlan{},
		},
		{
			name: "Repository error is not cached",
			prepareMock: func() {
				cache.EXPECT().Get(context.Background()).Return(nil, false)
				repo.EXPECT().FindAll(context.Background()).Return(nil, domain.ErrPersistence)
			},
			expectedError: domain.ErrPersistence,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			got, err := service.List(context.Background())

			assert.ErrorIs(t, err, tt.expectedError)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestGet(t *testing.T) {
	service, repo, _ := NewMock(t)
	id := uuid.New()

	repo.EXPECT().FindByID(context.Background(), id).Return(nil, nil)
	_, err := service.Get(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	plan := &domain.SubscriptionPlan{ID: id, Name: "Pro"}
	repo.EXPECT().FindByID(context.Background(), id).Return(plan, nil)
	got, err := service.Get(context.Background(), id)
	assert.NoError(t, err)
	assert.Equal(t, plan, got)
}

func TestCreate(t *testing.T) {
	service, repo, cache := NewMock(t)

	tests := []struct {
		name          string
		input         Input
		prepareMock   func()
		expectedError error
	}{
		{
			name:  "Created and cache invalidated",
			input: Input{Name: " Pro ", Price: "49.90", Features: []string{"signals"}},
			prepareMock: func() {
				repo.EXPECT().Create(context.Background(), gomock.Any()).DoAndReturn(
					func(_ context.Context, plan *domain.SubscriptionPlan) (*domain.SubscriptionPlan, error) {
						assert.NotEqual(t, uuid.Nil, plan.ID)
						assert.Equal(t, "Pro", plan.Name)
						assert.Equal(t, "49.9", plan.Price.String())
						return plan, nil
					})
				cache.EXPECT().Invalidate(context.Background())
			},
		},
		{
			name:          "Missing name",
			input:         Input{Price: "10"},
			prepareMock:   func() {},
			expectedError: domain.ErrValidation,
		},
		{
			name:          "Zero price",
			input:         Input{Name: "Free", Price: "0"},
			prepareMock:   func() {},
			expectedError: domain.ErrValidation,
		},
		{
			name:          "Malformed price",
			input:         Input{Name: "Pro", Price: "ten"},
			prepareMock:   func() {},
			expectedError: domain.ErrMalformedAmount,
		},
		{
			name:  "Repository error keeps cache",
			input: Input{Name: "Pro", Price: "10"},
			prepareMock: func() {
				repo.EXPECT().Create(context.Background(), gomock.Any()).Return(nil, domain.ErrPersistence)
			},
			expectedError: domain.ErrPersistence,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			got, err := service.Create(context.Background(), tt.input)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, got)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, []string{"signals"}, got.Features)
		})
	}
}

func TestUpdate(t *testing.T) {
	service, repo, cache := NewMock(t)
	id := uuid.New()

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Updated",
			prepareMock: func() {
				repo.EXPECT().Update(context.Background(), gomock.Any()).DoAndReturn(
					func(_ context.Context, plan *domain.SubscriptionPlan) (*domain.SubscriptionPlan, error) {
						assert.Equal(t, id, plan.ID)
						assert.Equal(t, []string{}, plan.Features)
						return plan, nil
					})
				cache.EXPECT().Invalidate(context.Background())
			},
		},
		{
			name: "Unknown plan",
			prepareMock: func() {
				repo.EXPECT().Update(context.Background(), gomock.Any()).Return(nil, nil)
			},
			expectedError: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			_, err := service.Update(context.Background(), id, Input{Name: "Basic", Price: "9.99"})

			assert.ErrorIs(t, err, tt.expectedError)
		})
	}
}
