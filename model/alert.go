package model

// VendorAlert represents an active or historical warning raised against a vendor
type VendorAlert struct {
	Key       string `json:"_key,omitempty"` // Unique identifier of the alert in the database.
	ID        string `json:"id,omitempty"`
	VendorID  string `json:"vendor_id"`
	AlertType string `json:"alert_type,omitempty"` // e.g. "performance", "contract", "delivery"
	Message   string `json:"message"`
	Severity  string `json:"severity,omitempty"` // e.g. "high", "medium"
	IsActive  bool   `json:"is_active"`
}

// VendorWithAlerts is a vendor with all of its alerts inlined,
// the join shape the vendor dashboard reads
type VendorWithAlerts struct {
	Vendor
	Alerts []VendorAlert `json:"vendor_alerts"`
}
