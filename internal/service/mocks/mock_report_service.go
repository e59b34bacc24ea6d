package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"lcaapi/internal/model"
	"lcaapi/internal/service"
)

type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) Generate(ctx context.Context, scenarioID string) (*model.Report, error) {
	args := m.Called(ctx, scenarioID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Report), args.Error(1)
}

func (m *MockReportService) Get(ctx context.Context, id string) (*service.ReportView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ReportView), args.Error(1)
}

func (m *MockReportService) ListByScenario(ctx context.Context, scenarioID string) ([]model.Report, error) {
	args := m.Called(ctx, scenarioID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Report), args.Error(1)
}

func (m *MockReportService) Open(ctx context.Context, id string) (io.ReadCloser, *model.Report, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.Get(1).(*model.Report), args.Error(2)
}

func (m *MockReportService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
