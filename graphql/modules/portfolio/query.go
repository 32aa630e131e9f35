package portfolio

import (
	"github.com/graphql-go/graphql"
	"github.com/latso/latso-backend/store"
)

// GetQueryFields returns the portfolio queries to be mounted in the root schema
func GetQueryFields(s store.Store) graphql.Fields {
	return graphql.Fields{
		"project": &graphql.Field{
			Type: ProjectType,
			Args: graphql.FieldConfigArgument{
				"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				id := p.Args["id"].(string)
				return ResolveProject(s, id)
			},
		},
		"vendors": &graphql.Field{
			Type: graphql.NewList(VendorType),
			Resolve: func(_ graphql.ResolveParams) (interface{}, error) {
				return ResolveVendors(s)
			},
		},
		"mitigations": &graphql.Field{
			Type: graphql.NewList(MitigationType),
			Args: graphql.FieldConfigArgument{
				"risk_id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				riskID := p.Args["risk_id"].(string)
				return ResolveMitigations(s, riskID)
			},
		},
		"portfolioOverview": &graphql.Field{
			Type: PortfolioOverviewType,
			Resolve: func(_ graphql.ResolveParams) (interface{}, error) {
				return ResolveOverview(s)
			},
		},
	}
}
