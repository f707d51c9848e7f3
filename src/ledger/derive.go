// Package ledger holds the client-side view of the tracker: the loaded
// expenses and budget, and the totals and filtered views derived from them.
// Every derivation is a pure function of its arguments.
package ledger

import (
	"math"
	"strings"

	"expense-tracker-api/src/models"

	"github.com/shopspring/decimal"
)

// AllCategories is the category filter value that disables category
// filtering.
const AllCategories = "All"

// Filter narrows the expense list. Date bounds are inclusive ISO dates and
// compare as strings; an empty bound is ignored.
type Filter struct {
	Category string
	From     string
	To       string
}

func DefaultFilter() Filter {
	return Filter{Category: AllCategories}
}

// toDecimal maps infinities to the largest finite float of the same sign and
// NaN to zero; decimal cannot represent either.
func toDecimal(f float64) decimal.Decimal {
	switch {
	case math.IsNaN(f):
		return decimal.Zero
	case math.IsInf(f, 1):
		return decimal.NewFromFloat(math.MaxFloat64)
	case math.IsInf(f, -1):
		return decimal.NewFromFloat(-math.MaxFloat64)
	}
	return decimal.NewFromFloat(f)
}

func sum(expenses []models.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(toDecimal(e.Amount))
	}
	return total
}

func remaining(budget, spent decimal.Decimal) decimal.Decimal {
	r := budget.Sub(spent)
	if r.IsNegative() {
		return decimal.Zero
	}
	return r
}

func overBudget(budget, spent decimal.Decimal) bool {
	return budget.IsPositive() && spent.GreaterThan(budget)
}

func overspend(budget, spent decimal.Decimal) decimal.Decimal {
	if !overBudget(budget, spent) {
		return decimal.Zero
	}
	return spent.Sub(budget)
}

// TotalSpent sums every loaded expense, ignoring any filter. A sum beyond
// the float64 range is +Inf.
func TotalSpent(expenses []models.Expense) float64 {
	return sum(expenses).InexactFloat64()
}

// Remaining is budget minus spent, clamped at zero. Overspending is reported
// by IsOverBudget and Overspend, never by a negative remainder.
func Remaining(budget, totalSpent float64) float64 {
	return remaining(toDecimal(budget), toDecimal(totalSpent)).InexactFloat64()
}

// IsOverBudget is false whenever no positive budget is set.
func IsOverBudget(budget, totalSpent float64) bool {
	return budget > 0 && totalSpent > budget
}

func Overspend(budget, totalSpent float64) float64 {
	if !IsOverBudget(budget, totalSpent) {
		return 0
	}
	return overspend(toDecimal(budget), toDecimal(totalSpent)).InexactFloat64()
}

// FilterExpenses applies the category, from and to conditions in that order
// and keeps the input order.
func FilterExpenses(expenses []models.Expense, f Filter) []models.Expense {
	out := make([]models.Expense, 0, len(expenses))
	for _, e := range expenses {
		if f.Category != "" && f.Category != AllCategories && !strings.EqualFold(e.Category, f.Category) {
			continue
		}
		if f.From != "" && e.Date < f.From {
			continue
		}
		if f.To != "" && e.Date > f.To {
			continue
		}
		out = append(out, e)
	}
	return out
}

func FilteredTotal(expenses []models.Expense, f Filter) float64 {
	return TotalSpent(FilterExpenses(expenses, f))
}

// CategoryOptions lists AllCategories followed by each distinct category in
// the order it first appears.
func CategoryOptions(expenses []models.Expense) []string {
	seen := make(map[string]struct{}, len(expenses))
	out := []string{AllCategories}
	for _, e := range expenses {
		if _, ok := seen[e.Category]; ok {
			continue
		}
		seen[e.Category] = struct{}{}
		out = append(out, e.Category)
	}
	return out
}

type Summary struct {
	Budget        float64
	BudgetSet     bool
	TotalSpent    float64
	Remaining     float64
	FilteredTotal float64
	OverBudget    bool
	Overspend     float64
	Shown         int
	Total         int
}

func Summarize(expenses []models.Expense, budget float64, f Filter) Summary {
	b, spent := toDecimal(budget), sum(expenses)
	filtered := FilterExpenses(expenses, f)
	return Summary{
		Budget:        budget,
		BudgetSet:     budget > 0,
		TotalSpent:    spent.InexactFloat64(),
		Remaining:     remaining(b, spent).InexactFloat64(),
		FilteredTotal: sum(filtered).InexactFloat64(),
		OverBudget:    overBudget(b, spent),
		Overspend:     overspend(b, spent).InexactFloat64(),
		Shown:         len(filtered),
		Total:         len(expenses),
	}
}
