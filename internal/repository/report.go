package repository

import (
	"context"

	"lcaapi/internal/model"
)

// ReportRepository defines persistence of report metadata.
type ReportRepository interface {
	Create(ctx context.Context, r *model.Report) (*model.Report, error)
	FindByID(ctx context.Context, id string) (*model.Report, error)
	// ListByScenario returns the reports of a scenario, newest first.
	ListByScenario(ctx context.Context, scenarioID string) ([]model.Report, error)
	Delete(ctx context.Context, id string) error
}
