package model

// Trend represents the direction a vendor's performance is moving
type Trend string

const (
	// TrendUp means the vendor's performance is improving.
	TrendUp Trend = "up"
	// TrendDown means the vendor's performance is declining.
	TrendDown Trend = "down"
	// TrendStable means the vendor's performance is holding steady.
	TrendStable Trend = "stable"
)

// Vendor represents a contractor working one or more work packages.
// PerformanceScore is always recomputed from the four sub-scores at write
// time; it is never mutated independently.
type Vendor struct {
	Key                string `json:"_key,omitempty"` // Unique identifier of the vendor in the database.
	ID                 string `json:"id,omitempty"`
	Name               string `json:"name"`
	ContactEmail       string `json:"contact_email,omitempty"`
	PerformanceScore   int    `json:"performance_score"` // Composite of the four sub-scores, floored.
	OnTimeDelivery     int    `json:"on_time_delivery"`
	QualityScore       int    `json:"quality_score"`
	CostPerformance    int    `json:"cost_performance"`
	CommunicationScore int    `json:"communication_score"`
	Trend              Trend  `json:"trend,omitempty"`
}

// VendorScores carries the four sub-scores for a composite update
type VendorScores struct {
	OnTime        int `json:"on_time"`
	Quality       int `json:"quality"`
	Cost          int `json:"cost"`
	Communication int `json:"communication"`
}
