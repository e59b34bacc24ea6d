package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"lcaapi/internal/model"
	"lcaapi/internal/repository"
)

type MockScenarioRepository struct {
	mock.Mock
}

func (m *MockScenarioRepository) Create(ctx context.Context, s *model.Scenario) (*model.Scenario, error) {
	args := m.Called(ctx, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Scenario), args.Error(1)
}

func (m *MockScenarioRepository) FindByID(ctx context.Context, id string) (*model.Scenario, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Scenario), args.Error(1)
}

func (m *MockScenarioRepository) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Scenario], error) {
	args := m.Called(ctx, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Scenario]), args.Error(1)
}

func (m *MockScenarioRepository) Update(ctx context.Context, s *model.Scenario) (*model.Scenario, error) {
	args := m.Called(ctx, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Scenario), args.Error(1)
}

func (m *MockScenarioRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
