package model

// Mitigation represents a proposed remedial action against a risk
type Mitigation struct {
	Key                     string  `json:"_key,omitempty"` // Unique identifier of the mitigation in the database.
	ID                      string  `json:"id,omitempty"`
	RiskID                  string  `json:"risk_id"`
	Title                   string  `json:"title"`
	Description             string  `json:"description,omitempty"`
	Cost                    float64 `json:"cost"`
	TimeToImplement         string  `json:"time_to_implement,omitempty"` // e.g. "5 days"
	RiskReductionPercentage int     `json:"risk_reduction_percentage"`
	Status                  string  `json:"status,omitempty"` // e.g. "proposed", "approved"
}
