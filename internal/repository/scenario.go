package repository

import (
	"context"

	"lcaapi/internal/model"
)

// ScenarioRepository defines persistence of scenarios. No business logic here:
// inventories are stored as given.
type ScenarioRepository interface {
	// Create inserts a new scenario and returns the stored record.
	Create(ctx context.Context, s *model.Scenario) (*model.Scenario, error)

	// FindByID returns a scenario by its ID, or an error satisfying IsNotFound.
	FindByID(ctx context.Context, id string) (*model.Scenario, error)

	// List returns a page of scenarios, newest first, and the total count.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.Scenario], error)

	// Update overwrites name, inventory and updated_at of an existing scenario.
	Update(ctx context.Context, s *model.Scenario) (*model.Scenario, error)

	// Delete removes a scenario by ID. It returns nil if the row was deleted or did not exist.
	Delete(ctx context.Context, id string) error
}
