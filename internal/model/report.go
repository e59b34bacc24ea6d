package model

import "time"

// Report is a generated CSV report stored in object storage.
type Report struct {
	ID          string    `json:"id"`
	ScenarioID  string    `json:"scenario_id"`
	StoragePath string    `json:"storage_path"`
	Size        int64     `json:"size"`
	TotalKgCO2  float64   `json:"total_kg_co2"`
	CreatedAt   time.Time `json:"created_at"`
}
