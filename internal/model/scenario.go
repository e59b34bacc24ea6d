package model

import "time"

// Scenario is a named, persisted inventory.
// This is a pure domain model with no database-specific dependencies or tags.
type Scenario struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Inventory Inventory `json:"inventory"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
