package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xGiancox/Barberiaapp/internal/api/testutils"
	"github.com/xGiancox/Barberiaapp/internal/models"
)

func TestCreateExpense(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)
	defer testutils.CleanupTestContext(testCtx)

	// Test case 1: Owner records a monthly expense
	w := testutils.PerformRequest(
		testCtx.Router,
		http.MethodPost,
		"/api/expenses",
		models.CreateExpenseRequest{MonthYear: "2024-03", Amount: 300, Description: "Rent"},
		testutils.AuthHeaders(testCtx.OwnerJWT),
	)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp models.ExpenseResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2024-03", resp.Expense.MonthYear)
	assert.Equal(t, 300.0, resp.Expense.Amount)
	assert.Equal(t, testCtx.OwnerID, resp.Expense.CreatedBy)

	// Test case 2: The month label is free text and is not validated
	w = testutils.PerformRequest(
		testCtx.Router,
		http.MethodPost,
		"/api/expenses",
		models.CreateExpenseRequest{MonthYear: "marzo", Amount: 50},
		testutils.AuthHeaders(testCtx.OwnerJWT),
	)

	assert.Equal(t, http.StatusCreated, w.Code)

	// Test case 3: Barbers may not record expenses
	w = testutils.PerformRequest(
		testCtx.Router,
		http.MethodPost,
		"/api/expenses",
		models.CreateExpenseRequest{MonthYear: "2024-03", Amount: 100},
		testutils.AuthHeaders(testCtx.BarberJWT),
	)

	assert.Equal(t, http.StatusForbidden, w.Code)

	// Test case 4: Missing amount
	w = testutils.PerformRequest(
		testCtx.Router,
		http.MethodPost,
		"/api/expenses",
		models.CreateExpenseRequest{MonthYear: "2024-03"},
		testutils.AuthHeaders(testCtx.OwnerJWT),
	)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListExpenses(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)
	defer testutils.CleanupTestContext(testCtx)

	for _, e := range []models.CreateExpenseRequest{
		{MonthYear: "2024-02", Amount: 300, Description: "Rent"},
		{MonthYear: "2024-03", Amount: 120, Description: "Supplies"},
	} {
		w := testutils.PerformRequest(
			testCtx.Router,
			http.MethodPost,
			"/api/expenses",
			e,
			testutils.AuthHeaders(testCtx.OwnerJWT),
		)
		assert.Equal(t, http.StatusCreated, w.Code)
	}

	// Test case 1: Owner sees all expenses, newest month first, with a total
	w := testutils.PerformRequest(
		testCtx.Router,
		http.MethodGet,
		"/api/expenses",
		nil,
		testutils.AuthHeaders(testCtx.OwnerJWT),
	)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.ExpensesResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Expenses, 2)
	assert.Equal(t, "2024-03", resp.Expenses[0].MonthYear)
	assert.Equal(t, "2024-02", resp.Expenses[1].MonthYear)
	assert.Equal(t, 420.0, resp.Total)

	// Test case 2: Barbers have no access
	w = testutils.PerformRequest(
		testCtx.Router,
		http.MethodGet,
		"/api/expenses",
		nil,
		testutils.AuthHeaders(testCtx.BarberJWT),
	)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestListBarbers(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)
	defer testutils.CleanupTestContext(testCtx)

	// Test case 1: Owner lists barber accounts to drive per-user views
	w := testutils.PerformRequest(
		testCtx.Router,
		http.MethodGet,
		"/api/barbers",
		nil,
		testutils.AuthHeaders(testCtx.OwnerJWT),
	)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.BarbersResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Barbers, 1)
	assert.Equal(t, testCtx.BarberID, resp.Barbers[0].ID)

	// Test case 2: Barbers may not enumerate other users
	w = testutils.PerformRequest(
		testCtx.Router,
		http.MethodGet,
		"/api/barbers",
		nil,
		testutils.AuthHeaders(testCtx.BarberJWT),
	)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
