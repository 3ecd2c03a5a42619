package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xGiancox/Barberiaapp/internal/api/testutils"
	"github.com/xGiancox/Barberiaapp/internal/earnings"
	"github.com/xGiancox/Barberiaapp/internal/models"
)

func getDashboard(t *testing.T, testCtx *testutils.TestContext, token, query string) models.DashboardResponse {
	t.Helper()

	w := testutils.PerformRequest(
		testCtx.Router,
		http.MethodGet,
		"/api/dashboard"+query,
		nil,
		testutils.AuthHeaders(token),
	)
	assert.Equal(t, http.StatusOK, w.Code, "dashboard request failed: %s", w.Body.String())

	var resp models.DashboardResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestDashboardBarber(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)
	defer testutils.CleanupTestContext(testCtx)

	// One cut today, one ten days ago, plus an owner cut that must never
	// leak into the barber's aggregates.
	testutils.CreateCut(t, testCtx, testCtx.BarberJWT, testutils.Date(0), 20, 2)
	testutils.CreateCut(t, testCtx, testCtx.BarberJWT, testutils.Date(-10), 30, 1)
	testutils.CreateCut(t, testCtx, testCtx.OwnerJWT, testutils.Date(0), 50, 1)

	// Test case 1: Barber sees only own records, scoped to self
	resp := getDashboard(t, testCtx, testCtx.BarberJWT, "")
	assert.Equal(t, earnings.ScopeSelf, resp.Scope)
	assert.Equal(t, testCtx.BarberID, resp.UserID)

	assert.Equal(t, int64(1), resp.Today.Count)
	assert.Equal(t, 40.0, resp.Today.Total)
	assert.Equal(t, 20.0, resp.Today.DividedTotal)

	// The ten-day-old cut is outside the trailing 7-day window but inside 14
	assert.Equal(t, int64(1), resp.Last7Days.Count)
	assert.Equal(t, 40.0, resp.Last7Days.Total)
	assert.Equal(t, int64(2), resp.Last14Days.Count)
	assert.Equal(t, 70.0, resp.Last14Days.Total)
	assert.Equal(t, 35.0, resp.Last14Days.DividedTotal)

	// Today is always part of month-to-date
	assert.GreaterOrEqual(t, resp.MonthToDate.Count, int64(1))
	assert.GreaterOrEqual(t, resp.MonthToDate.Total, 40.0)

	// Product sale totals are an owner-only block
	assert.Nil(t, resp.Sales)

	// Test case 2: A barber asking for scope=all is forced back to self
	forced := getDashboard(t, testCtx, testCtx.BarberJWT, "?scope=all")
	assert.Equal(t, earnings.ScopeSelf, forced.Scope)
	assert.Equal(t, resp.Today, forced.Today)
	assert.Equal(t, resp.Last7Days, forced.Last7Days)
	assert.Equal(t, resp.Last14Days, forced.Last14Days)
	assert.Equal(t, resp.MonthToDate, forced.MonthToDate)

	// Test case 3: Same for a barber naming another user
	forced = getDashboard(t, testCtx, testCtx.BarberJWT, "?user_id="+testCtx.OwnerID)
	assert.Equal(t, earnings.ScopeSelf, forced.Scope)
	assert.Equal(t, resp.Today, forced.Today)
}

func TestDashboardOwner(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)
	defer testutils.CleanupTestContext(testCtx)

	testutils.CreateCut(t, testCtx, testCtx.BarberJWT, testutils.Date(0), 20, 2) // 40, barber keeps 20
	testutils.CreateCut(t, testCtx, testCtx.OwnerJWT, testutils.Date(0), 50, 1)  // 50, owner keeps 50

	// Test case 1: Owner defaults to the all-barbers scope
	resp := getDashboard(t, testCtx, testCtx.OwnerJWT, "")
	assert.Equal(t, earnings.ScopeAll, resp.Scope)
	assert.Equal(t, int64(2), resp.Today.Count)
	assert.Equal(t, 90.0, resp.Today.Total)
	assert.Equal(t, 70.0, resp.Today.DividedTotal)
	assert.NotNil(t, resp.Sales)

	// Test case 2: Owner can narrow to one barber
	resp = getDashboard(t, testCtx, testCtx.OwnerJWT, "?user_id="+testCtx.BarberID)
	assert.Equal(t, earnings.ScopeUser, resp.Scope)
	assert.Equal(t, testCtx.BarberID, resp.UserID)
	assert.Equal(t, int64(1), resp.Today.Count)
	assert.Equal(t, 40.0, resp.Today.Total)
	assert.Equal(t, 20.0, resp.Today.DividedTotal)

	// Test case 3: Nonexistent target user
	w := testutils.PerformRequest(
		testCtx.Router,
		http.MethodGet,
		"/api/dashboard?user_id=no-such-user",
		nil,
		testutils.AuthHeaders(testCtx.OwnerJWT),
	)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
