// Package graphql assembles the root schema from the query modules.
package graphql

import (
	gql "github.com/graphql-go/graphql"
	"github.com/latso/latso-backend/graphql/modules/portfolio"
	"github.com/latso/latso-backend/store"
)

// CreateSchema builds the root query schema over the given store
func CreateSchema(s store.Store) (gql.Schema, error) {
	fields := gql.Fields{}

	for name, field := range portfolio.GetQueryFields(s) {
		fields[name] = field
	}

	rootQuery := gql.NewObject(gql.ObjectConfig{
		Name:   "Query",
		Fields: fields,
	})

	return gql.NewSchema(gql.SchemaConfig{
		Query: rootQuery,
	})
}
