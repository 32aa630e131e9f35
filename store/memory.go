package store

import (
	"context"
	"sort"
	"sync"

	"github.com/latso/latso-backend/model"
)

// Memory is an in-memory Store used by tests and local demos. Rows keep
// insertion order, which doubles as the store's stable order for ties.
type Memory struct {
	mu           sync.Mutex
	projects     []model.Project
	vendors      []model.Vendor
	workPackages []model.WorkPackage
	risks        []model.Risk
	mitigations  []model.Mitigation
	alerts       []model.VendorAlert
}

// NewMemory returns an empty in-memory store
func NewMemory() *Memory {
	return &Memory{}
}

var _ Store = (*Memory)(nil)

// Project fetches a project by its external id
func (s *Memory) Project(_ context.Context, projectID string) (*model.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.projects {
		if p.ID == projectID {
			project := p
			return &project, nil
		}
	}
	return nil, ErrNotFound
}

// WorkPackagesForProject lists a project's work packages with vendor names inlined
func (s *Memory) WorkPackagesForProject(_ context.Context, projectID string) ([]model.WorkPackageWithVendor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	vendorNames := make(map[string]string, len(s.vendors))
	for _, v := range s.vendors {
		vendorNames[v.ID] = v.Name
	}

	var packages []model.WorkPackageWithVendor
	for _, wp := range s.workPackages {
		if wp.ProjectID != projectID {
			continue
		}
		packages = append(packages, model.WorkPackageWithVendor{
			WorkPackage: wp,
			VendorName:  vendorNames[wp.VendorID],
		})
	}
	return packages, nil
}

// TopRisksByImpactCost lists risks ordered by impact cost descending, capped at limit
func (s *Memory) TopRisksByImpactCost(_ context.Context, limit int) ([]model.RiskWithWorkPackage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	wpNames := make(map[string]string, len(s.workPackages))
	for _, wp := range s.workPackages {
		wpNames[wp.ID] = wp.Name
	}

	risks := make([]model.RiskWithWorkPackage, 0, len(s.risks))
	for _, r := range s.risks {
		risks = append(risks, model.RiskWithWorkPackage{
			Risk:            r,
			WorkPackageName: wpNames[r.WorkPackageID],
		})
	}

	// Stable keeps insertion order for equal costs.
	sort.SliceStable(risks, func(i, j int) bool {
		return risks[i].ImpactCost > risks[j].ImpactCost
	})

	if limit >= 0 && len(risks) > limit {
		risks = risks[:limit]
	}
	return risks, nil
}

// RiskForWorkPackage fetches the first risk recorded against a work package
func (s *Memory) RiskForWorkPackage(_ context.Context, workPackageID string) (*model.Risk, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.risks {
		if r.WorkPackageID == workPackageID {
			risk := r
			return &risk, nil
		}
	}
	return nil, ErrNotFound
}

// VendorsWithAlerts lists every vendor with its alerts inlined
func (s *Memory) VendorsWithAlerts(_ context.Context) ([]model.VendorWithAlerts, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var vendors []model.VendorWithAlerts
	for _, v := range s.vendors {
		entry := model.VendorWithAlerts{Vendor: v, Alerts: []model.VendorAlert{}}
		for _, a := range s.alerts {
			if a.VendorID == v.ID {
				entry.Alerts = append(entry.Alerts, a)
			}
		}
		vendors = append(vendors, entry)
	}
	return vendors, nil
}

// UpdateVendorScores overwrites the four sub-scores and the composite
func (s *Memory) UpdateVendorScores(_ context.Context, vendorID string, scores model.VendorScores, composite int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.vendors {
		if s.vendors[i].ID == vendorID {
			s.vendors[i].OnTimeDelivery = scores.OnTime
			s.vendors[i].QualityScore = scores.Quality
			s.vendors[i].CostPerformance = scores.Cost
			s.vendors[i].CommunicationScore = scores.Communication
			s.vendors[i].PerformanceScore = composite
			return nil
		}
	}
	return ErrNotFound
}

// MitigationsForRisk lists the mitigation options recorded against a risk
func (s *Memory) MitigationsForRisk(_ context.Context, riskID string) ([]model.Mitigation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var mitigations []model.Mitigation
	for _, m := range s.mitigations {
		if m.RiskID == riskID {
			mitigations = append(mitigations, m)
		}
	}
	return mitigations, nil
}

// InsertProject inserts a full project row
func (s *Memory) InsertProject(_ context.Context, p model.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects = append(s.projects, p)
	return nil
}

// InsertVendor inserts a full vendor row
func (s *Memory) InsertVendor(_ context.Context, v model.Vendor) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vendors = append(s.vendors, v)
	return nil
}

// InsertWorkPackage inserts a full work package row
func (s *Memory) InsertWorkPackage(_ context.Context, wp model.WorkPackage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.workPackages = append(s.workPackages, wp)
	return nil
}

// InsertRisk inserts a full risk row
func (s *Memory) InsertRisk(_ context.Context, r model.Risk) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.risks = append(s.risks, r)
	return nil
}

// InsertMitigation inserts a full mitigation row
func (s *Memory) InsertMitigation(_ context.Context, m model.Mitigation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mitigations = append(s.mitigations, m)
	return nil
}

// InsertVendorAlert inserts a full vendor alert row
func (s *Memory) InsertVendorAlert(_ context.Context, a model.VendorAlert) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.alerts = append(s.alerts, a)
	return nil
}
