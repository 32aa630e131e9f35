package model

// WorkPackage represents a budgeted subdivision of a project, owned by one vendor
type WorkPackage struct {
	Key                  string    `json:"_key,omitempty"` // Unique identifier of the work package in the database.
	ID                   string    `json:"id,omitempty"`
	ProjectID            string    `json:"project_id"`
	Name                 string    `json:"name"`
	Budget               float64   `json:"budget"`
	CompletionPercentage int       `json:"completion_percentage"`
	Status               string    `json:"status,omitempty"` // e.g. "in-progress", "at-risk"
	RiskLevel            RiskLevel `json:"risk_level,omitempty"`
	VendorID             string    `json:"vendor_id,omitempty"`
}

// WorkPackageWithVendor is a work package with its vendor's name inlined,
// the join shape the dashboard returns
type WorkPackageWithVendor struct {
	WorkPackage
	VendorName string `json:"vendor_name,omitempty"`
}
