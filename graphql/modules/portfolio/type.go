// Package portfolio defines the GraphQL types for the portfolio read surface.
package portfolio

import (
	"github.com/graphql-go/graphql"
)

// ProjectType represents a construction project
var ProjectType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Project",
	Fields: graphql.Fields{
		"id":          &graphql.Field{Type: graphql.String},
		"name":        &graphql.Field{Type: graphql.String},
		"description": &graphql.Field{Type: graphql.String},
		"budget":      &graphql.Field{Type: graphql.Float},
		"start_date":  &graphql.Field{Type: graphql.String},
		"end_date":    &graphql.Field{Type: graphql.String},
		"status":      &graphql.Field{Type: graphql.String},
	},
})

// VendorScoresType represents the four weighted sub-scores
var VendorScoresType = graphql.NewObject(graphql.ObjectConfig{
	Name: "VendorScores",
	Fields: graphql.Fields{
		"on_time":       &graphql.Field{Type: graphql.Int},
		"quality":       &graphql.Field{Type: graphql.Int},
		"cost":          &graphql.Field{Type: graphql.Int},
		"communication": &graphql.Field{Type: graphql.Int},
	},
})

// VendorType represents a vendor row with its recomputed composite score
var VendorType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Vendor",
	Fields: graphql.Fields{
		"id":              &graphql.Field{Type: graphql.String},
		"name":            &graphql.Field{Type: graphql.String},
		"score":           &graphql.Field{Type: graphql.Int},
		"trend":           &graphql.Field{Type: graphql.String},
		"alerts":          &graphql.Field{Type: graphql.NewList(graphql.String)},
		"detailed_scores": &graphql.Field{Type: VendorScoresType},
	},
})

// MitigationType represents a mitigation option against a risk
var MitigationType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Mitigation",
	Fields: graphql.Fields{
		"id":                        &graphql.Field{Type: graphql.String},
		"risk_id":                   &graphql.Field{Type: graphql.String},
		"title":                     &graphql.Field{Type: graphql.String},
		"description":               &graphql.Field{Type: graphql.String},
		"cost":                      &graphql.Field{Type: graphql.Float},
		"time_to_implement":         &graphql.Field{Type: graphql.String},
		"risk_reduction_percentage": &graphql.Field{Type: graphql.Int},
		"status":                    &graphql.Field{Type: graphql.String},
	},
})

// PortfolioOverviewType represents the high-level vendor health metrics
var PortfolioOverviewType = graphql.NewObject(graphql.ObjectConfig{
	Name: "PortfolioOverview",
	Fields: graphql.Fields{
		"total_vendors":   &graphql.Field{Type: graphql.Int},
		"active_alerts":   &graphql.Field{Type: graphql.Int},
		"avg_performance": &graphql.Field{Type: graphql.Float},
	},
})
