package ledger

import (
	"math"
	"testing"

	"expense-tracker-api/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleExpenses() []models.Expense {
	return []models.Expense{
		{ID: "6", Amount: 60, Category: "Travel", Date: "2024-01-03"},
		{ID: "5", Amount: 50, Category: "food", Date: "2024-01-03"},
		{ID: "4", Amount: 40, Category: "Travel", Date: "2024-01-02"},
		{ID: "3", Amount: 30, Category: "Food", Date: "2024-01-02"},
		{ID: "2", Amount: 20, Category: "Travel", Date: "2024-01-01"},
		{ID: "1", Amount: 10, Category: "Food", Date: "2024-01-01"},
	}
}

func ids(expenses []models.Expense) []string {
	out := make([]string, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, e.ID)
	}
	return out
}

func TestTotalSpent(t *testing.T) {
	assert.Equal(t, 0.0, TotalSpent(nil))
	assert.Equal(t, 210.0, TotalSpent(sampleExpenses()))
	assert.Equal(t, 0.3, TotalSpent([]models.Expense{{Amount: 0.1}, {Amount: 0.2}}))
}

func TestRemaining(t *testing.T) {
	assert.Equal(t, 0.0, Remaining(0, 500))
	assert.Equal(t, 700.0, Remaining(1000, 300))
	assert.Equal(t, 0.0, Remaining(400, 500))
	assert.Equal(t, 0.0, Remaining(500, 500))
	assert.Equal(t, 0.1, Remaining(0.3, 0.2))
}

func TestIsOverBudget(t *testing.T) {
	assert.False(t, IsOverBudget(0, 500))
	assert.True(t, IsOverBudget(400, 500))
	assert.False(t, IsOverBudget(500, 500))
	assert.False(t, IsOverBudget(1000, 300))
}

func TestOverspend(t *testing.T) {
	assert.Equal(t, 100.0, Overspend(400, 500))
	assert.Equal(t, 0.0, Overspend(0, 500))
	assert.Equal(t, 0.0, Overspend(1000, 300))
}

func TestFilterExpenses(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"all", DefaultFilter(), []string{"6", "5", "4", "3", "2", "1"}},
		{"zero filter", Filter{}, []string{"6", "5", "4", "3", "2", "1"}},
		{"category is case-insensitive", Filter{Category: "FOOD"}, []string{"5", "3", "1"}},
		{"category and from", Filter{Category: "Food", From: "2024-01-02"}, []string{"5", "3"}},
		{"to only", Filter{Category: AllCategories, To: "2024-01-01"}, []string{"2", "1"}},
		{"inclusive range", Filter{Category: AllCategories, From: "2024-01-02", To: "2024-01-02"}, []string{"4", "3"}},
		{"empty range", Filter{Category: AllCategories, From: "2024-01-03", To: "2024-01-01"}, []string{}},
		{"unknown category", Filter{Category: "Bills"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(FilterExpenses(sampleExpenses(), tt.filter)))
		})
	}
}

func TestFilteredTotal(t *testing.T) {
	assert.Equal(t, 80.0, FilteredTotal(sampleExpenses(), Filter{Category: "Food", From: "2024-01-02"}))
	assert.Equal(t, 210.0, FilteredTotal(sampleExpenses(), DefaultFilter()))
}

func TestCategoryOptions(t *testing.T) {
	assert.Equal(t, []string{AllCategories}, CategoryOptions(nil))
	assert.Equal(t, []string{AllCategories, "Travel", "food", "Food"}, CategoryOptions(sampleExpenses()))
}

func TestSummarize(t *testing.T) {
	s := Summarize(sampleExpenses(), 200, Filter{Category: "Travel"})
	assert.Equal(t, Summary{
		Budget:        200,
		BudgetSet:     true,
		TotalSpent:    210,
		Remaining:     0,
		FilteredTotal: 120,
		OverBudget:    true,
		Overspend:     10,
		Shown:         3,
		Total:         6,
	}, s)

	unset := Summarize(sampleExpenses(), 0, DefaultFilter())
	assert.False(t, unset.BudgetSet)
	assert.False(t, unset.OverBudget)
	assert.Equal(t, 0.0, unset.Remaining)
}

func TestSummarizeBeyondFloatRange(t *testing.T) {
	huge := []models.Expense{
		{ID: "a", Amount: 1e308, Category: "Rent", Date: "2024-01-01"},
		{ID: "b", Amount: 1e308, Category: "Rent", Date: "2024-01-02"},
	}

	var s Summary
	require.NotPanics(t, func() { s = Summarize(huge, 5000, DefaultFilter()) })
	assert.True(t, math.IsInf(s.TotalSpent, 1))
	assert.True(t, math.IsInf(s.FilteredTotal, 1))
	assert.True(t, s.OverBudget)
	assert.Equal(t, 0.0, s.Remaining)
	assert.True(t, math.IsInf(s.Overspend, 1))

	assert.Equal(t, 0.0, Remaining(5000, math.Inf(1)))
	assert.Equal(t, math.MaxFloat64, Overspend(5000, math.Inf(1)))
	assert.Equal(t, "₹∞", FormatINR(s.TotalSpent))
}
