// package main provides the entry point for the LATSO demo backend, the HTTP
// API behind the construction-project dashboard.
package main

import (
	"log"

	"github.com/latso/latso-backend/database"
	"github.com/latso/latso-backend/internal/api"
	"github.com/latso/latso-backend/store"
)

func main() {
	// Initialize database connection
	db := database.InitializeDatabase()

	// Build the app against the live store
	app := api.NewFiberApp(store.NewArango(db))

	// Get port from environment or default to 8000
	port := database.GetEnvDefault("MS_PORT", "8000")

	// Start server
	log.Printf("Starting server on port %s", port)
	log.Printf("GraphQL endpoint available at /api/graphql")
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
