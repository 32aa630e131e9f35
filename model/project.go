// Package model defines the data structures for the LATSO construction
// portfolio backend: projects, vendors, work packages, risks, mitigations,
// and vendor alerts.
package model

// Project represents a construction project being tracked on the dashboard
type Project struct {
	Key         string  `json:"_key,omitempty"` // Unique identifier of the project in the database.
	ID          string  `json:"id,omitempty"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Budget      float64 `json:"budget"`
	StartDate   string  `json:"start_date,omitempty"` // ISO date (YYYY-MM-DD)
	EndDate     string  `json:"end_date,omitempty"`   // ISO date (YYYY-MM-DD)
	Status      string  `json:"status,omitempty"`     // e.g. "active", "completed"
}
