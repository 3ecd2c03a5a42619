package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xGiancox/Barberiaapp/internal/api/testutils"
	"github.com/xGiancox/Barberiaapp/internal/models"
)

func TestCreateHairCut(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)
	defer testutils.CleanupTestContext(testCtx)

	// Test case 1: Barber records a cut; half the total is their share
	cut := testutils.CreateCut(t, testCtx, testCtx.BarberJWT, testutils.Date(0), 20, 2)
	assert.Equal(t, 40.0, cut.Total)
	assert.Equal(t, 20.0, cut.DividedTotal)
	assert.Equal(t, testCtx.BarberID, cut.UserID)

	// Test case 2: Owner records a cut; the owner keeps the full total
	cut = testutils.CreateCut(t, testCtx, testCtx.OwnerJWT, testutils.Date(0), 20, 2)
	assert.Equal(t, 40.0, cut.Total)
	assert.Equal(t, 40.0, cut.DividedTotal)

	// Test case 3: Malformed date
	w := testutils.PerformRequest(
		testCtx.Router,
		http.MethodPost,
		"/api/cuts",
		models.CreateHairCutRequest{DateCut: "15-03-2024", Price: 20, Quantity: 1},
		testutils.AuthHeaders(testCtx.BarberJWT),
	)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Test case 4: Non-positive price and quantity are rejected
	w = testutils.PerformRequest(
		testCtx.Router,
		http.MethodPost,
		"/api/cuts",
		map[string]interface{}{"dateCut": testutils.Date(0), "price": -5, "quantity": 1},
		testutils.AuthHeaders(testCtx.BarberJWT),
	)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = testutils.PerformRequest(
		testCtx.Router,
		http.MethodPost,
		"/api/cuts",
		map[string]interface{}{"dateCut": testutils.Date(0), "price": 20, "quantity": 0},
		testutils.AuthHeaders(testCtx.BarberJWT),
	)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Test case 5: Unauthorized request (no token)
	w = testutils.PerformRequest(
		testCtx.Router,
		http.MethodPost,
		"/api/cuts",
		models.CreateHairCutRequest{DateCut: testutils.Date(0), Price: 20, Quantity: 1},
		nil,
	)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetCalendarDay(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)
	defer testutils.CleanupTestContext(testCtx)

	day := testutils.Date(-2)
	testutils.CreateCut(t, testCtx, testCtx.BarberJWT, day, 15, 1)
	testutils.CreateCut(t, testCtx, testCtx.BarberJWT, day, 25, 2)
	testutils.CreateCut(t, testCtx, testCtx.BarberJWT, testutils.Date(-3), 10, 1)

	// Test case 1: Only cuts on the requested day are returned
	w := testutils.PerformRequest(
		testCtx.Router,
		http.MethodGet,
		"/api/cuts/day/"+day,
		nil,
		testutils.AuthHeaders(testCtx.BarberJWT),
	)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.CalendarDayResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, day, resp.Date)
	assert.Equal(t, int64(2), resp.Summary.Count)
	assert.Equal(t, 65.0, resp.Summary.Total)        // 15 + 50
	assert.Equal(t, 32.5, resp.Summary.DividedTotal) // barber keeps half
	assert.Len(t, resp.Cuts, 2)

	// Test case 2: A day with no records yields zeros, not an error
	w = testutils.PerformRequest(
		testCtx.Router,
		http.MethodGet,
		"/api/cuts/day/"+testutils.Date(-30),
		nil,
		testutils.AuthHeaders(testCtx.BarberJWT),
	)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(0), resp.Summary.Count)
	assert.Equal(t, 0.0, resp.Summary.Total)
	assert.Equal(t, 0.0, resp.Summary.DividedTotal)
	assert.Empty(t, resp.Cuts)

	// Test case 3: Malformed date in the path
	w = testutils.PerformRequest(
		testCtx.Router,
		http.MethodGet,
		"/api/cuts/day/not-a-date",
		nil,
		testutils.AuthHeaders(testCtx.BarberJWT),
	)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
