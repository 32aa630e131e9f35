// Package restapi provides the main router and initialization for REST API endpoints.
package restapi

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"
	"github.com/latso/latso-backend/restapi/modules/brief"
	"github.com/latso/latso-backend/restapi/modules/dashboard"
	"github.com/latso/latso-backend/restapi/modules/risks"
	"github.com/latso/latso-backend/restapi/modules/scenario"
	"github.com/latso/latso-backend/restapi/modules/vendors"
	"github.com/latso/latso-backend/store"
)

// SetupRoutes configures all REST API routes and the GraphQL endpoint.
// Paths mirror the demo frontend's expectations exactly.
func SetupRoutes(app *fiber.App, s store.Store, schema graphql.Schema) {
	api := app.Group("/api")

	// Dashboard and scenario analysis
	api.Get("/project/:project_id/dashboard", dashboard.GetDashboard(s))
	api.Post("/scenario/analyze", scenario.PostAnalyze(s, scenario.ConfigFromEnv()))

	// Vendor performance
	api.Get("/vendors", vendors.GetVendors(s))
	api.Post("/vendor/:vendor_id/update-score", vendors.PostUpdateScore(s))

	// Risk mitigations
	api.Get("/risks/:risk_id/mitigations", risks.GetMitigations(s))

	// Executive brief (static mock)
	api.Post("/executive-brief/generate", brief.PostGenerate())

	// GraphQL read surface
	api.Post("/graphql", GraphQLHandler(schema))

	log.Println("API routes initialized successfully")
}
