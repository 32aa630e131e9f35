// Package store defines the persistence accessor for the portfolio backend
// and its two implementations: the hosted ArangoDB store and an in-memory
// store used by tests. Handlers depend on the Store interface only, so the
// scoring and presentation logic never touches a live database in tests.
package store

import (
	"context"
	"errors"

	"github.com/latso/latso-backend/model"
)

// ErrNotFound is returned when a referenced entity does not exist. Handlers
// map it to a 404; every other error is a data-access failure.
var ErrNotFound = errors.New("not found")

// Store is the capability set the API needs from the row store: equality
// filters, descending order with a limit, join-style reads that inline a
// related row's columns, whole-row inserts, and column updates by key.
type Store interface {
	// Project fetches a project by id. Returns ErrNotFound when absent.
	Project(ctx context.Context, projectID string) (*model.Project, error)

	// WorkPackagesForProject lists a project's work packages with each
	// package's vendor name inlined.
	WorkPackagesForProject(ctx context.Context, projectID string) ([]model.WorkPackageWithVendor, error)

	// TopRisksByImpactCost lists risks across all projects ordered by
	// impact_cost descending, capped at limit. Ties keep the store's
	// stable order.
	TopRisksByImpactCost(ctx context.Context, limit int) ([]model.RiskWithWorkPackage, error)

	// RiskForWorkPackage fetches the first risk recorded against a work
	// package. Returns ErrNotFound when the package has no risk row.
	RiskForWorkPackage(ctx context.Context, workPackageID string) (*model.Risk, error)

	// VendorsWithAlerts lists every vendor with all of its alerts inlined.
	VendorsWithAlerts(ctx context.Context) ([]model.VendorWithAlerts, error)

	// UpdateVendorScores overwrites the vendor's four sub-scores and its
	// composite in a single update. Returns ErrNotFound for an unknown
	// vendor.
	UpdateVendorScores(ctx context.Context, vendorID string, scores model.VendorScores, composite int) error

	// MitigationsForRisk lists the mitigation options recorded against a
	// risk.
	MitigationsForRisk(ctx context.Context, riskID string) ([]model.Mitigation, error)

	// Inserts used by the seeding binary.
	InsertProject(ctx context.Context, p model.Project) error
	InsertVendor(ctx context.Context, v model.Vendor) error
	InsertWorkPackage(ctx context.Context, wp model.WorkPackage) error
	InsertRisk(ctx context.Context, r model.Risk) error
	InsertMitigation(ctx context.Context, m model.Mitigation) error
	InsertVendorAlert(ctx context.Context, a model.VendorAlert) error
}
