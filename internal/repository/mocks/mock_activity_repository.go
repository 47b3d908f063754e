package mocks

import (
	"context"

	"docqa/internal/model"
	"docqa/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) Create(ctx context.Context, a *model.Activity) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockActivityRepository) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Activity], error) {
	args := m.Called(ctx, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Activity]), args.Error(1)
}

func (m *MockActivityRepository) Summary(ctx context.Context) (*model.ActivitySummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ActivitySummary), args.Error(1)
}
