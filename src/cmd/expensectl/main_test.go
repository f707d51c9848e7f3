package main

import (
	"bytes"
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"expense-tracker-api/src/api"
	"expense-tracker-api/src/client"
	"expense-tracker-api/src/db/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(api.NewRouter(memory.New(), ""))
	t.Cleanup(srv.Close)
	return srv
}

func runCmd(t *testing.T, srv *httptest.Server, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), append([]string{"-api", srv.URL}, args...), &stdout, &stderr)
	return stdout.String(), err
}

func TestSummaryWithoutBudget(t *testing.T) {
	out, err := runCmd(t, newServer(t), "summary")
	require.NoError(t, err)
	assert.Contains(t, out, "Not set")
	assert.Contains(t, out, "₹0.00")
	assert.NotContains(t, out, "exceeded")
}

func TestBudgetAddAndOverspend(t *testing.T) {
	srv := newServer(t)

	out, err := runCmd(t, srv, "budget", "5000")
	require.NoError(t, err)
	assert.Contains(t, out, "₹5,000.00")

	out, err = runCmd(t, srv, "add", "-amount", "2000", "-category", "Food", "-date", "2024-01-01")
	require.NoError(t, err)
	assert.Contains(t, out, "Added ")
	assert.Contains(t, out, "₹3,000.00")

	out, err = runCmd(t, srv, "add", "-amount", "4000", "-custom", "Rent", "-date", "2024-01-02")
	require.NoError(t, err)
	assert.Contains(t, out, "₹6,000.00")
	assert.Contains(t, out, "You have exceeded your budget by ₹1,000.00")

	out, err = runCmd(t, srv, "list", "-category", "rent")
	require.NoError(t, err)
	assert.Contains(t, out, "Showing 1 of 2")
	assert.Contains(t, out, "2024-01-02")
	assert.NotContains(t, out, "2024-01-01")

	out, err = runCmd(t, srv, "categories")
	require.NoError(t, err)
	assert.Equal(t, "All\nRent\nFood\n", out)
}

func TestEditAndDelete(t *testing.T) {
	srv := newServer(t)
	c := client.New(srv.URL)
	e, err := c.CreateExpense(context.Background(), client.ExpenseInput{Amount: 100, Category: "Food", Note: "lunch", Date: "2024-01-01"})
	require.NoError(t, err)

	out, err := runCmd(t, srv, "edit", e.ID, "-amount", "150")
	require.NoError(t, err)
	assert.Contains(t, out, "Updated "+e.ID)

	list, err := c.ListExpenses(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 150.0, list[0].Amount)
	assert.Equal(t, "Food", list[0].Category)
	assert.Equal(t, "lunch", list[0].Note)

	out, err = runCmd(t, srv, "delete", e.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted "+e.ID)

	out, err = runCmd(t, srv, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No expenses found")
}

func TestCommandErrors(t *testing.T) {
	srv := newServer(t)

	_, err := runCmd(t, srv)
	assert.EqualError(t, err, "missing command")

	_, err = runCmd(t, srv, "frobnicate")
	assert.EqualError(t, err, `unknown command "frobnicate"`)

	_, err = runCmd(t, srv, "add", "-amount", "0")
	assert.EqualError(t, err, "Enter a valid amount")

	_, err = runCmd(t, srv, "budget", "-5")
	assert.EqualError(t, err, "Enter a valid budget amount")

	_, err = runCmd(t, srv, "edit", "missing-id")
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "edit: no expense"))

	_, err = runCmd(t, srv, "delete", "7d1f8e0a-5a55-4c0f-9a3c-3d6c1c6f9b11")
	assert.EqualError(t, err, "Failed to delete")
}

func TestUnreachableAPI(t *testing.T) {
	srv := httptest.NewServer(api.NewRouter(memory.New(), ""))
	srv.Close()

	_, err := runCmd(t, srv, "summary")
	assert.EqualError(t, err, "Backend not reachable. Please start backend server.")
}
