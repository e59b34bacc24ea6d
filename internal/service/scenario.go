package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"lcaapi/internal/lca"
	"lcaapi/internal/model"
	"lcaapi/internal/repository"
)

var (
	ErrIDRequired   = errors.New("id is required")
	ErrNameRequired = errors.New("name is required")
	ErrNotFound     = errors.New("scenario not found")
)

// ScenarioListResult is the service-level DTO for paginated scenarios.
type ScenarioListResult struct {
	Items []model.Scenario `json:"data"`
	Total int              `json:"total"`
}

// ScenarioService defines the use cases for stored scenarios.
type ScenarioService interface {
	// Create validates the inventory, including that its emissions are
	// representable, and stores it under a new ID.
	Create(ctx context.Context, name string, inv model.Inventory) (*model.Scenario, error)

	// List returns scenarios using limit/offset and a total count.
	List(ctx context.Context, limit, offset int) (*ScenarioListResult, error)

	// Get returns a single scenario by its ID.
	Get(ctx context.Context, id string) (*model.Scenario, error)

	// Update replaces name and inventory of an existing scenario.
	Update(ctx context.Context, id, name string, inv model.Inventory) (*model.Scenario, error)

	// Delete removes a scenario by ID.
	Delete(ctx context.Context, id string) error

	// Result computes the stage emissions of a stored scenario.
	Result(ctx context.Context, id string) (*lca.Result, error)

	// Analysis interprets the emissions of a stored scenario.
	Analysis(ctx context.Context, id string) (*lca.Analysis, error)

	// Breakdown returns chart data for a stored scenario.
	Breakdown(ctx context.Context, id string) (*lca.Breakdown, error)
}

type scenarioService struct {
	repo repository.ScenarioRepository
	calc *Calculator
	now  func() time.Time
}

// NewScenarioService constructs a new ScenarioService.
func NewScenarioService(repo repository.ScenarioRepository, calc *Calculator) ScenarioService {
	return &scenarioService{
		repo: repo,
		calc: calc,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

func (s *scenarioService) Create(ctx context.Context, name string, inv model.Inventory) (*model.Scenario, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if _, err := lca.Compute(inv); err != nil {
		return nil, err
	}

	now := s.now()
	stored, err := s.repo.Create(ctx, &model.Scenario{
		ID:        uuid.NewString(),
		Name:      name,
		Inventory: inv,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("save scenario: %w", err)
	}
	return stored, nil
}

// List returns paginated scenarios without exposing repository types.
func (s *scenarioService) List(ctx context.Context, limit, offset int) (*ScenarioListResult, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	res, err := s.repo.List(ctx, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &ScenarioListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *scenarioService) Get(ctx context.Context, id string) (*model.Scenario, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	sc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return sc, nil
}

func (s *scenarioService) Update(ctx context.Context, id, name string, inv model.Inventory) (*model.Scenario, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if _, err := lca.Compute(inv); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, &model.Scenario{
		ID:        id,
		Name:      name,
		Inventory: inv,
		UpdatedAt: s.now(),
	})
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update scenario: %w", err)
	}
	return updated, nil
}

// Delete removes the scenario. Reports generated from it are kept.
func (s *scenarioService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *scenarioService) Result(ctx context.Context, id string) (*lca.Result, error) {
	sc, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	res, err := s.calc.Compute(ctx, sc.Inventory)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *scenarioService) Analysis(ctx context.Context, id string) (*lca.Analysis, error) {
	sc, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.calc.Analyze(ctx, sc.Inventory)
}

func (s *scenarioService) Breakdown(ctx context.Context, id string) (*lca.Breakdown, error) {
	sc, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.calc.Breakdown(ctx, sc.Inventory)
}
