// Command seed loads the canned demo scenario from a YAML file and inserts
// it into the database so the dashboard has something to show.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/latso/latso-backend/database"
	"github.com/latso/latso-backend/model"
	"github.com/latso/latso-backend/store"
	yaml "gopkg.in/yaml.v2"
)

var logger = database.InitLogger()

// scenarioFile is the YAML shape of the seed scenario. Work packages
// reference vendors by name, risks reference work packages by name, and
// mitigations reference risks by title; ids are generated at insert time.
type scenarioFile struct {
	Project struct {
		Name        string  `yaml:"name"`
		Description string  `yaml:"description"`
		Budget      float64 `yaml:"budget"`
		StartDate   string  `yaml:"start_date"`
		EndDate     string  `yaml:"end_date"`
		Status      string  `yaml:"status"`
	} `yaml:"project"`

	Vendors []struct {
		Name               string `yaml:"name"`
		ContactEmail       string `yaml:"contact_email"`
		PerformanceScore   int    `yaml:"performance_score"`
		OnTimeDelivery     int    `yaml:"on_time_delivery"`
		QualityScore       int    `yaml:"quality_score"`
		CostPerformance    int    `yaml:"cost_performance"`
		CommunicationScore int    `yaml:"communication_score"`
		Trend              string `yaml:"trend"`
	} `yaml:"vendors"`

	WorkPackages []struct {
		Name                 string  `yaml:"name"`
		Budget               float64 `yaml:"budget"`
		CompletionPercentage int     `yaml:"completion_percentage"`
		Status               string  `yaml:"status"`
		RiskLevel            string  `yaml:"risk_level"`
		Vendor               string  `yaml:"vendor"`
	} `yaml:"work_packages"`

	Risks []struct {
		WorkPackage     string  `yaml:"work_package"`
		Title           string  `yaml:"title"`
		Description     string  `yaml:"description"`
		ImpactCost      float64 `yaml:"impact_cost"`
		ImpactDays      int     `yaml:"impact_days"`
		Probability     int     `yaml:"probability"`
		RiskLevel       string  `yaml:"risk_level"`
		Reasoning       string  `yaml:"reasoning"`
		ConfidenceLevel int     `yaml:"confidence_level"`
	} `yaml:"risks"`

	Mitigations []struct {
		Risk                    string  `yaml:"risk"`
		Title                   string  `yaml:"title"`
		Description             string  `yaml:"description"`
		Cost                    float64 `yaml:"cost"`
		TimeToImplement         string  `yaml:"time_to_implement"`
		RiskReductionPercentage int     `yaml:"risk_reduction_percentage"`
		Status                  string  `yaml:"status"`
	} `yaml:"mitigations"`

	Alerts []struct {
		Vendor    string `yaml:"vendor"`
		AlertType string `yaml:"alert_type"`
		Message   string `yaml:"message"`
		Severity  string `yaml:"severity"`
		IsActive  bool   `yaml:"is_active"`
	} `yaml:"alerts"`
}

func main() {
	scenarioPath := flag.String("f", "cmd/seed/scenario.yaml", "path to the scenario YAML file")
	flag.Parse()

	content, err := os.ReadFile(*scenarioPath)
	if err != nil {
		logger.Sugar().Fatalf("Failed to read scenario file: %v", err)
	}

	var scenario scenarioFile
	if err := yaml.Unmarshal(content, &scenario); err != nil {
		logger.Sugar().Fatalf("Failed to parse scenario file: %v", err)
	}

	db := database.InitializeDatabase()
	s := store.NewArango(db)

	projectID, err := seedScenario(context.Background(), s, scenario)
	if err != nil {
		logger.Sugar().Fatalf("Seeding failed: %v", err)
	}

	logger.Sugar().Infof("Demo data seeded successfully")
	fmt.Printf("Project ID: %s\n", projectID)
}

func seedScenario(ctx context.Context, s store.Store, scenario scenarioFile) (string, error) {
	logger.Sugar().Infof("Starting to seed demo data from scenario")

	// Project
	projectID := uuid.NewString()
	project := model.Project{
		Key:         projectID,
		ID:          projectID,
		Name:        scenario.Project.Name,
		Description: scenario.Project.Description,
		Budget:      scenario.Project.Budget,
		StartDate:   scenario.Project.StartDate,
		EndDate:     scenario.Project.EndDate,
		Status:      scenario.Project.Status,
	}
	if err := s.InsertProject(ctx, project); err != nil {
		return "", fmt.Errorf("creating project: %w", err)
	}
	logger.Sugar().Infof("Created project %q", project.Name)

	// Vendors, keyed by name for the work package and alert references
	vendorIDs := make(map[string]string, len(scenario.Vendors))
	for _, v := range scenario.Vendors {
		id := uuid.NewString()
		vendorIDs[v.Name] = id
		vendor := model.Vendor{
			Key:                id,
			ID:                 id,
			Name:               v.Name,
			ContactEmail:       v.ContactEmail,
			PerformanceScore:   v.PerformanceScore,
			OnTimeDelivery:     v.OnTimeDelivery,
			QualityScore:       v.QualityScore,
			CostPerformance:    v.CostPerformance,
			CommunicationScore: v.CommunicationScore,
			Trend:              model.Trend(v.Trend),
		}
		if err := s.InsertVendor(ctx, vendor); err != nil {
			return "", fmt.Errorf("creating vendor %q: %w", v.Name, err)
		}
	}
	logger.Sugar().Infof("Created %d vendors", len(scenario.Vendors))

	// Work packages
	workPackageIDs := make(map[string]string, len(scenario.WorkPackages))
	for _, wp := range scenario.WorkPackages {
		vendorID, ok := vendorIDs[wp.Vendor]
		if !ok {
			return "", fmt.Errorf("work package %q references unknown vendor %q", wp.Name, wp.Vendor)
		}
		id := uuid.NewString()
		workPackageIDs[wp.Name] = id
		pkg := model.WorkPackage{
			Key:                  id,
			ID:                   id,
			ProjectID:            projectID,
			Name:                 wp.Name,
			Budget:               wp.Budget,
			CompletionPercentage: wp.CompletionPercentage,
			Status:               wp.Status,
			RiskLevel:            model.RiskLevel(wp.RiskLevel),
			VendorID:             vendorID,
		}
		if err := s.InsertWorkPackage(ctx, pkg); err != nil {
			return "", fmt.Errorf("creating work package %q: %w", wp.Name, err)
		}
	}
	logger.Sugar().Infof("Created %d work packages", len(scenario.WorkPackages))

	// Risks
	riskIDs := make(map[string]string, len(scenario.Risks))
	for _, r := range scenario.Risks {
		workPackageID, ok := workPackageIDs[r.WorkPackage]
		if !ok {
			return "", fmt.Errorf("risk %q references unknown work package %q", r.Title, r.WorkPackage)
		}
		id := uuid.NewString()
		riskIDs[r.Title] = id
		risk := model.Risk{
			Key:             id,
			ID:              id,
			WorkPackageID:   workPackageID,
			Title:           r.Title,
			Description:     r.Description,
			ImpactCost:      r.ImpactCost,
			ImpactDays:      r.ImpactDays,
			Probability:     r.Probability,
			RiskLevel:       model.RiskLevel(r.RiskLevel),
			Reasoning:       r.Reasoning,
			ConfidenceLevel: r.ConfidenceLevel,
		}
		if err := s.InsertRisk(ctx, risk); err != nil {
			return "", fmt.Errorf("creating risk %q: %w", r.Title, err)
		}
	}
	logger.Sugar().Infof("Created %d risks", len(scenario.Risks))

	// Mitigations
	for _, m := range scenario.Mitigations {
		riskID, ok := riskIDs[m.Risk]
		if !ok {
			return "", fmt.Errorf("mitigation %q references unknown risk %q", m.Title, m.Risk)
		}
		id := uuid.NewString()
		mitigation := model.Mitigation{
			Key:                     id,
			ID:                      id,
			RiskID:                  riskID,
			Title:                   m.Title,
			Description:             m.Description,
			Cost:                    m.Cost,
			TimeToImplement:         m.TimeToImplement,
			RiskReductionPercentage: m.RiskReductionPercentage,
			Status:                  m.Status,
		}
		if err := s.InsertMitigation(ctx, mitigation); err != nil {
			return "", fmt.Errorf("creating mitigation %q: %w", m.Title, err)
		}
	}
	logger.Sugar().Infof("Created %d mitigation options", len(scenario.Mitigations))

	// Vendor alerts
	for _, a := range scenario.Alerts {
		vendorID, ok := vendorIDs[a.Vendor]
		if !ok {
			return "", fmt.Errorf("alert %q references unknown vendor %q", a.Message, a.Vendor)
		}
		id := uuid.NewString()
		alert := model.VendorAlert{
			Key:       id,
			ID:        id,
			VendorID:  vendorID,
			AlertType: a.AlertType,
			Message:   a.Message,
			Severity:  a.Severity,
			IsActive:  a.IsActive,
		}
		if err := s.InsertVendorAlert(ctx, alert); err != nil {
			return "", fmt.Errorf("creating alert %q: %w", a.Message, err)
		}
	}
	logger.Sugar().Infof("Created %d vendor alerts", len(scenario.Alerts))

	return projectID, nil
}
