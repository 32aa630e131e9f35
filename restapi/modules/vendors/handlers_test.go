package vendors_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/latso/latso-backend/model"
	"github.com/latso/latso-backend/restapi/modules/vendors"
	"github.com/latso/latso-backend/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(s store.Store) *fiber.App {
	app := fiber.New()
	app.Get("/api/vendors", vendors.GetVendors(s))
	app.Post("/api/vendor/:vendor_id/update-score", vendors.PostUpdateScore(s))
	return app
}

func seedVendor(t *testing.T, s store.Store) {
	t.Helper()
	require.NoError(t, s.InsertVendor(context.Background(), model.Vendor{
		ID:                 "v-abc",
		Name:               "ABC Electrical",
		PerformanceScore:   67,
		OnTimeDelivery:     60,
		QualityScore:       80,
		CostPerformance:    65,
		CommunicationScore: 70,
		Trend:              model.TrendDown,
	}))
}

// TestGetVendorsRecomputesScore verifies the dashboard row shape and that
// the score comes from the sub-scores, not the stored composite.
func TestGetVendorsRecomputesScore(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()
	seedVendor(t, s)
	require.NoError(t, s.InsertVendorAlert(ctx, model.VendorAlert{
		ID: "a-1", VendorID: "v-abc", Message: "3 consecutive missed milestones", IsActive: true,
	}))
	require.NoError(t, s.InsertVendorAlert(ctx, model.VendorAlert{
		ID: "a-2", VendorID: "v-abc", Message: "resolved last month", IsActive: false,
	}))

	resp, err := newApp(s).Test(httptest.NewRequest(http.MethodGet, "/api/vendors", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var rows []vendors.VendorPerformance
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rows))
	require.Len(t, rows, 1)

	// 60*0.35 + 80*0.25 + 65*0.25 + 70*0.15 = 67.75 -> 67
	assert.Equal(t, 67, rows[0].Score)
	assert.Equal(t, model.TrendDown, rows[0].Trend)
	assert.Equal(t, []string{"3 consecutive missed milestones"}, rows[0].Alerts)
	assert.Equal(t, model.VendorScores{OnTime: 60, Quality: 80, Cost: 65, Communication: 70}, rows[0].DetailedScores)
}

func postScores(t *testing.T, app *fiber.App, vendorID string, scores model.VendorScores) *http.Response {
	t.Helper()
	payload, err := json.Marshal(scores)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/vendor/"+vendorID+"/update-score", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

// TestUpdateScoreIsIdempotent applies the same update twice and checks the
// stored composite is identical both times.
func TestUpdateScoreIsIdempotent(t *testing.T) {
	s := store.NewMemory()
	seedVendor(t, s)
	app := newApp(s)

	scores := model.VendorScores{OnTime: 100, Quality: 100, Cost: 100, Communication: 100}

	for i := 0; i < 2; i++ {
		resp := postScores(t, app, "v-abc", scores)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body vendors.UpdateScoreResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.True(t, body.Success)
		assert.Equal(t, 100, body.NewScore)

		stored, err := s.VendorsWithAlerts(context.Background())
		require.NoError(t, err)
		require.Len(t, stored, 1)
		assert.Equal(t, 100, stored[0].PerformanceScore)
		assert.Equal(t, 100, stored[0].OnTimeDelivery)
	}
}

// TestUpdateScoreWeightedComposite checks the composite written back is the
// floored weighted sum of the posted sub-scores.
func TestUpdateScoreWeightedComposite(t *testing.T) {
	s := store.NewMemory()
	seedVendor(t, s)

	resp := postScores(t, newApp(s), "v-abc", model.VendorScores{OnTime: 100, Quality: 0, Cost: 0, Communication: 0})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body vendors.UpdateScoreResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 35, body.NewScore)
}

// TestUpdateScoreUnknownVendor maps the missing row to a 404.
func TestUpdateScoreUnknownVendor(t *testing.T) {
	resp := postScores(t, newApp(store.NewMemory()), "v-missing", model.VendorScores{OnTime: 50})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
