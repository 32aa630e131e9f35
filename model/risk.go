package model

// RiskLevel represents the qualitative tier of a risk
type RiskLevel string

const (
	// RiskLevelLow represents a low-impact risk.
	RiskLevelLow RiskLevel = "LOW"
	// RiskLevelMedium represents a moderate risk.
	RiskLevelMedium RiskLevel = "MEDIUM"
	// RiskLevelHigh represents a serious risk needing attention.
	RiskLevelHigh RiskLevel = "HIGH"
	// RiskLevelCritical represents a risk threatening the project outcome.
	RiskLevelCritical RiskLevel = "CRITICAL"
)

// Risk represents an identified threat tied to a work package. Its cost and
// schedule impacts are the immutable baseline scenario analysis scales from.
type Risk struct {
	Key             string    `json:"_key,omitempty"` // Unique identifier of the risk in the database.
	ID              string    `json:"id,omitempty"`
	WorkPackageID   string    `json:"work_package_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	ImpactCost      float64   `json:"impact_cost"` // Baseline cost impact in dollars.
	ImpactDays      int       `json:"impact_days"` // Baseline schedule impact in days.
	Probability     int       `json:"probability"` // 0-100
	RiskLevel       RiskLevel `json:"risk_level"`
	Reasoning       string    `json:"reasoning,omitempty"`
	ConfidenceLevel int       `json:"confidence_level"` // 0-100
}

// RiskWithWorkPackage is a risk with its work package's name inlined
type RiskWithWorkPackage struct {
	Risk
	WorkPackageName string `json:"work_package_name,omitempty"`
}
