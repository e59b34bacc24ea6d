package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"lcaapi/internal/lca"
	"lcaapi/internal/model"
	"lcaapi/internal/service"
)

type MockScenarioService struct {
	mock.Mock
}

func (m *MockScenarioService) Create(ctx context.Context, name string, inv model.Inventory) (*model.Scenario, error) {
	args := m.Called(ctx, name, inv)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Scenario), args.Error(1)
}

func (m *MockScenarioService) List(ctx context.Context, limit, offset int) (*service.ScenarioListResult, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ScenarioListResult), args.Error(1)
}

func (m *MockScenarioService) Get(ctx context.Context, id string) (*model.Scenario, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Scenario), args.Error(1)
}

func (m *MockScenarioService) Update(ctx context.Context, id, name string, inv model.Inventory) (*model.Scenario, error) {
	args := m.Called(ctx, id, name, inv)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Scenario), args.Error(1)
}

func (m *MockScenarioService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockScenarioService) Result(ctx context.Context, id string) (*lca.Result, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*lca.Result), args.Error(1)
}

func (m *MockScenarioService) Analysis(ctx context.Context, id string) (*lca.Analysis, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*lca.Analysis), args.Error(1)
}

func (m *MockScenarioService) Breakdown(ctx context.Context, id string) (*lca.Breakdown, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*lca.Breakdown), args.Error(1)
}
