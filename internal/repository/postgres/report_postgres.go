package postgres

import (
	"context"
	"database/sql"

	"lcaapi/internal/model"
	"lcaapi/internal/repository"
)

// ReportPostgres is a PostgreSQL implementation of repository.ReportRepository.
type ReportPostgres struct {
	db *sql.DB
}

// NewReportPostgres creates a new ReportPostgres repository.
func NewReportPostgres(db *sql.DB) *ReportPostgres {
	return &ReportPostgres{db: db}
}

var _ repository.ReportRepository = (*ReportPostgres)(nil)

func scanReport(row rowScanner) (*model.Report, error) {
	var rep model.Report
	if err := row.Scan(
		&rep.ID,
		&rep.ScenarioID,
		&rep.StoragePath,
		&rep.Size,
		&rep.TotalKgCO2,
		&rep.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &rep, nil
}

// Create inserts a new report row and returns the stored record.
func (r *ReportPostgres) Create(ctx context.Context, rep *model.Report) (*model.Report, error) {
	const q = `
		INSERT INTO reports (id, scenario_id, storage_path, size, total_kg_co2, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, scenario_id, storage_path, size, total_kg_co2, created_at
	`
	row := r.db.QueryRowContext(ctx, q,
		rep.ID,
		rep.ScenarioID,
		rep.StoragePath,
		rep.Size,
		rep.TotalKgCO2,
		rep.CreatedAt,
	)
	return scanReport(row)
}

// FindByID fetches a single report by its ID.
func (r *ReportPostgres) FindByID(ctx context.Context, id string) (*model.Report, error) {
	const q = `
		SELECT id, scenario_id, storage_path, size, total_kg_co2, created_at
		FROM reports
		WHERE id = $1
	`
	return scanReport(r.db.QueryRowContext(ctx, q, id))
}

// ListByScenario returns all reports of a scenario, newest first.
func (r *ReportPostgres) ListByScenario(ctx context.Context, scenarioID string) ([]model.Report, error) {
	const q = `
		SELECT id, scenario_id, storage_path, size, total_kg_co2, created_at
		FROM reports
		WHERE scenario_id = $1
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, q, scenarioID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Report, 0)
	for rows.Next() {
		rep, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *rep)
	}
	return items, rows.Err()
}

// Delete removes a report by ID. It does not return an error if the row does not exist.
func (r *ReportPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM reports WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}
