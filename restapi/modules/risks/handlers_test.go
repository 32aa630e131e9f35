package risks_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/latso/latso-backend/model"
	"github.com/latso/latso-backend/restapi/modules/risks"
	"github.com/latso/latso-backend/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGetMitigations lists only the mitigations filed against the requested
// risk, and an empty array (not null) for an unknown one.
func TestGetMitigations(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()

	require.NoError(t, s.InsertMitigation(ctx, model.Mitigation{
		ID: "m-1", RiskID: "r-1", Title: "Dual-source switchgear procurement", Cost: 180000, RiskReductionPercentage: 45,
	}))
	require.NoError(t, s.InsertMitigation(ctx, model.Mitigation{
		ID: "m-2", RiskID: "r-1", Title: "Bring backup vendor online", Cost: 340000, RiskReductionPercentage: 70,
	}))
	require.NoError(t, s.InsertMitigation(ctx, model.Mitigation{
		ID: "m-other", RiskID: "r-2", Title: "Unrelated option",
	}))

	app := fiber.New()
	app.Get("/api/risks/:risk_id/mitigations", risks.GetMitigations(s))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/risks/r-1/mitigations", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var mitigations []model.Mitigation
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&mitigations))
	require.Len(t, mitigations, 2)
	assert.Equal(t, "Dual-source switchgear procurement", mitigations[0].Title)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/risks/r-unknown/mitigations", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(raw))
}
