package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"lcaapi/internal/model"
	"lcaapi/internal/repository"
)

// ScenarioPostgres is a PostgreSQL implementation of repository.ScenarioRepository.
// The inventory is stored as a JSONB document.
type ScenarioPostgres struct {
	db *sql.DB
}

// NewScenarioPostgres creates a new ScenarioPostgres repository.
func NewScenarioPostgres(db *sql.DB) *ScenarioPostgres {
	return &ScenarioPostgres{db: db}
}

var _ repository.ScenarioRepository = (*ScenarioPostgres)(nil)

const scenarioColumns = `id, name, inventory, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanScenario(row rowScanner) (*model.Scenario, error) {
	var (
		s   model.Scenario
		raw []byte
	)
	if err := row.Scan(&s.ID, &s.Name, &raw, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw, &s.Inventory); err != nil {
		return nil, fmt.Errorf("decode inventory of scenario %s: %w", s.ID, err)
	}
	return &s, nil
}

// Create inserts a new scenario row and returns the stored record.
func (r *ScenarioPostgres) Create(ctx context.Context, s *model.Scenario) (*model.Scenario, error) {
	inv, err := json.Marshal(s.Inventory)
	if err != nil {
		return nil, fmt.Errorf("encode inventory: %w", err)
	}
	const q = `
		INSERT INTO scenarios (id, name, inventory, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + scenarioColumns
	row := r.db.QueryRowContext(ctx, q, s.ID, s.Name, inv, s.CreatedAt, s.UpdatedAt)
	return scanScenario(row)
}

// FindByID fetches a single scenario by its ID.
func (r *ScenarioPostgres) FindByID(ctx context.Context, id string) (*model.Scenario, error) {
	const q = `SELECT ` + scenarioColumns + ` FROM scenarios WHERE id = $1`
	return scanScenario(r.db.QueryRowContext(ctx, q, id))
}

// List returns scenarios using LIMIT/OFFSET pagination and a total count.
func (r *ScenarioPostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Scenario], error) {
	const qCount = `SELECT COUNT(*) FROM scenarios`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `SELECT ` + scenarioColumns + ` FROM scenarios
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, qList, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Scenario, 0)
	for rows.Next() {
		s, err := scanScenario(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Scenario]{Items: items, Total: total}, nil
}

// Update overwrites a scenario's mutable columns. A missing row yields sql.ErrNoRows.
func (r *ScenarioPostgres) Update(ctx context.Context, s *model.Scenario) (*model.Scenario, error) {
	inv, err := json.Marshal(s.Inventory)
	if err != nil {
		return nil, fmt.Errorf("encode inventory: %w", err)
	}
	const q = `
		UPDATE scenarios SET name = $2, inventory = $3, updated_at = $4
		WHERE id = $1
		RETURNING ` + scenarioColumns
	return scanScenario(r.db.QueryRowContext(ctx, q, s.ID, s.Name, inv, s.UpdatedAt))
}

// Delete removes a scenario by ID. It does not return an error if the row does not exist.
func (r *ScenarioPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM scenarios WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}
