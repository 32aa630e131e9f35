package store

import (
	"context"

	"github.com/arangodb/go-driver/v2/arangodb"
	"github.com/latso/latso-backend/database"
	"github.com/latso/latso-backend/model"
)

// Arango implements Store against the hosted ArangoDB cluster
type Arango struct {
	db database.DBConnection
}

// NewArango wraps an initialized database connection
func NewArango(db database.DBConnection) *Arango {
	return &Arango{db: db}
}

var _ Store = (*Arango)(nil)

// Project fetches a project by its external id
func (s *Arango) Project(ctx context.Context, projectID string) (*model.Project, error) {
	query := `
		FOR p IN projects
			FILTER p.id == @id
			LIMIT 1
			RETURN p
	`
	cursor, err := s.db.Database.Query(ctx, query, &arangodb.QueryOptions{
		BindVars: map[string]interface{}{
			"id": projectID,
		},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close()

	if !cursor.HasMore() {
		return nil, ErrNotFound
	}

	var project model.Project
	if _, err := cursor.ReadDocument(ctx, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// WorkPackagesForProject lists a project's work packages with vendor names inlined
func (s *Arango) WorkPackagesForProject(ctx context.Context, projectID string) ([]model.WorkPackageWithVendor, error) {
	query := `
		FOR wp IN work_packages
			FILTER wp.project_id == @project_id
			LET vendorName = FIRST(
				FOR v IN vendors
					FILTER v.id == wp.vendor_id
					LIMIT 1
					RETURN v.name
			)
			RETURN MERGE(wp, { vendor_name: vendorName })
	`
	cursor, err := s.db.Database.Query(ctx, query, &arangodb.QueryOptions{
		BindVars: map[string]interface{}{
			"project_id": projectID,
		},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close()

	var packages []model.WorkPackageWithVendor
	for cursor.HasMore() {
		var wp model.WorkPackageWithVendor
		if _, err := cursor.ReadDocument(ctx, &wp); err != nil {
			return nil, err
		}
		packages = append(packages, wp)
	}
	return packages, nil
}

// TopRisksByImpactCost lists risks ordered by impact cost descending, capped at limit
func (s *Arango) TopRisksByImpactCost(ctx context.Context, limit int) ([]model.RiskWithWorkPackage, error) {
	query := `
		FOR r IN risks
			SORT r.impact_cost DESC
			LIMIT @limit
			LET wpName = FIRST(
				FOR wp IN work_packages
					FILTER wp.id == r.work_package_id
					LIMIT 1
					RETURN wp.name
			)
			RETURN MERGE(r, { work_package_name: wpName })
	`
	cursor, err := s.db.Database.Query(ctx, query, &arangodb.QueryOptions{
		BindVars: map[string]interface{}{
			"limit": limit,
		},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close()

	var risks []model.RiskWithWorkPackage
	for cursor.HasMore() {
		var risk model.RiskWithWorkPackage
		if _, err := cursor.ReadDocument(ctx, &risk); err != nil {
			return nil, err
		}
		risks = append(risks, risk)
	}
	return risks, nil
}

// RiskForWorkPackage fetches the first risk recorded against a work package
func (s *Arango) RiskForWorkPackage(ctx context.Context, workPackageID string) (*model.Risk, error) {
	query := `
		FOR r IN risks
			FILTER r.work_package_id == @work_package_id
			LIMIT 1
			RETURN r
	`
	cursor, err := s.db.Database.Query(ctx, query, &arangodb.QueryOptions{
		BindVars: map[string]interface{}{
			"work_package_id": workPackageID,
		},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close()

	if !cursor.HasMore() {
		return nil, ErrNotFound
	}

	var risk model.Risk
	if _, err := cursor.ReadDocument(ctx, &risk); err != nil {
		return nil, err
	}
	return &risk, nil
}

// VendorsWithAlerts lists every vendor with its alerts inlined
func (s *Arango) VendorsWithAlerts(ctx context.Context) ([]model.VendorWithAlerts, error) {
	query := `
		FOR v IN vendors
			LET alerts = (
				FOR a IN vendor_alerts
					FILTER a.vendor_id == v.id
					RETURN a
			)
			RETURN MERGE(v, { vendor_alerts: alerts })
	`
	cursor, err := s.db.Database.Query(ctx, query, nil)
	if err != nil {
		return nil, err
	}
	defer cursor.Close()

	var vendors []model.VendorWithAlerts
	for cursor.HasMore() {
		var vendor model.VendorWithAlerts
		if _, err := cursor.ReadDocument(ctx, &vendor); err != nil {
			return nil, err
		}
		vendors = append(vendors, vendor)
	}
	return vendors, nil
}

// UpdateVendorScores overwrites the four sub-scores and the composite in a single update
func (s *Arango) UpdateVendorScores(ctx context.Context, vendorID string, scores model.VendorScores, composite int) error {
	query := `
		FOR v IN vendors
			FILTER v.id == @id
			UPDATE v WITH {
				on_time_delivery:    @on_time,
				quality_score:       @quality,
				cost_performance:    @cost,
				communication_score: @communication,
				performance_score:   @composite
			} IN vendors
			RETURN NEW._key
	`
	cursor, err := s.db.Database.Query(ctx, query, &arangodb.QueryOptions{
		BindVars: map[string]interface{}{
			"id":            vendorID,
			"on_time":       scores.OnTime,
			"quality":       scores.Quality,
			"cost":          scores.Cost,
			"communication": scores.Communication,
			"composite":     composite,
		},
	})
	if err != nil {
		return err
	}
	defer cursor.Close()

	if !cursor.HasMore() {
		return ErrNotFound
	}
	return nil
}

// MitigationsForRisk lists the mitigation options recorded against a risk
func (s *Arango) MitigationsForRisk(ctx context.Context, riskID string) ([]model.Mitigation, error) {
	query := `
		FOR m IN mitigations
			FILTER m.risk_id == @risk_id
			RETURN m
	`
	cursor, err := s.db.Database.Query(ctx, query, &arangodb.QueryOptions{
		BindVars: map[string]interface{}{
			"risk_id": riskID,
		},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close()

	var mitigations []model.Mitigation
	for cursor.HasMore() {
		var m model.Mitigation
		if _, err := cursor.ReadDocument(ctx, &m); err != nil {
			return nil, err
		}
		mitigations = append(mitigations, m)
	}
	return mitigations, nil
}

// InsertProject inserts a full project row
func (s *Arango) InsertProject(ctx context.Context, p model.Project) error {
	_, err := s.db.Collections["projects"].CreateDocument(ctx, p)
	return err
}

// InsertVendor inserts a full vendor row
func (s *Arango) InsertVendor(ctx context.Context, v model.Vendor) error {
	_, err := s.db.Collections["vendors"].CreateDocument(ctx, v)
	return err
}

// InsertWorkPackage inserts a full work package row
func (s *Arango) InsertWorkPackage(ctx context.Context, wp model.WorkPackage) error {
	_, err := s.db.Collections["work_packages"].CreateDocument(ctx, wp)
	return err
}

// InsertRisk inserts a full risk row
func (s *Arango) InsertRisk(ctx context.Context, r model.Risk) error {
	_, err := s.db.Collections["risks"].CreateDocument(ctx, r)
	return err
}

// InsertMitigation inserts a full mitigation row
func (s *Arango) InsertMitigation(ctx context.Context, m model.Mitigation) error {
	_, err := s.db.Collections["mitigations"].CreateDocument(ctx, m)
	return err
}

// InsertVendorAlert inserts a full vendor alert row
func (s *Arango) InsertVendorAlert(ctx context.Context, a model.VendorAlert) error {
	_, err := s.db.Collections["vendor_alerts"].CreateDocument(ctx, a)
	return err
}
