package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/latso/latso-backend/internal/api"
	"github.com/latso/latso-backend/model"
	"github.com/latso/latso-backend/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHealthEndpoint checks the root health payload.
func TestHealthEndpoint(t *testing.T) {
	app := api.NewFiberApp(store.NewMemory())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "LATSO Demo API is running!", body["message"])
	assert.Equal(t, "healthy", body["status"])
}

// TestExecutiveBriefIsDeterministic generates the brief twice and compares
// everything except the timestamp.
func TestExecutiveBriefIsDeterministic(t *testing.T) {
	app := api.NewFiberApp(store.NewMemory())

	fetch := func() map[string]interface{} {
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/executive-brief/generate", nil))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		return body
	}

	first := fetch()
	second := fetch()

	assert.Equal(t, "At Risk", first["project_health"])
	assert.Len(t, first["top_risks"], 3)
	assert.Len(t, first["recommendations"], 3)

	delete(first, "generated_at")
	delete(second, "generated_at")
	assert.Equal(t, first, second)
}

// TestGraphQLVendorsQuery drives the GraphQL read surface against seeded
// vendors.
func TestGraphQLVendorsQuery(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()
	require.NoError(t, s.InsertVendor(ctx, model.Vendor{
		ID:                 "v-1",
		Name:               "SafeGuard Fire",
		OnTimeDelivery:     98,
		QualityScore:       95,
		CostPerformance:    90,
		CommunicationScore: 95,
		Trend:              model.TrendUp,
	}))

	payload, err := json.Marshal(map[string]string{
		"query": `{ vendors { id name score trend } portfolioOverview { total_vendors } }`,
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/graphql", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := api.NewFiberApp(s).Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result struct {
		Data struct {
			Vendors []struct {
				ID    string `json:"id"`
				Name  string `json:"name"`
				Score int    `json:"score"`
				Trend string `json:"trend"`
			} `json:"vendors"`
			PortfolioOverview struct {
				TotalVendors int `json:"total_vendors"`
			} `json:"portfolioOverview"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))

	require.Len(t, result.Data.Vendors, 1)
	assert.Equal(t, "SafeGuard Fire", result.Data.Vendors[0].Name)
	// 98*0.35 + 95*0.25 + 90*0.25 + 95*0.15 = 94.8 -> 94
	assert.Equal(t, 94, result.Data.Vendors[0].Score)
	assert.Equal(t, "up", result.Data.Vendors[0].Trend)
	assert.Equal(t, 1, result.Data.PortfolioOverview.TotalVendors)
}
