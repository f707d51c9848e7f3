package db

import (
	"context"
	"errors"

	"expense-tracker-api/src/models"
)

// ErrNotFound is returned (possibly wrapped) when a record id does not exist,
// or when no budget has been recorded yet.
var ErrNotFound = errors.New("record not found")

type ExpenseStore interface {
	CreateExpense(ctx context.Context, expense *models.Expense) (*models.Expense, error)
	// ListExpenses returns every expense, newest created first.
	ListExpenses(ctx context.Context) ([]models.Expense, error)
	// UpdateExpense overwrites amount, category, note and date of the
	// expense with expense.ID.
	UpdateExpense(ctx context.Context, expense *models.Expense) (*models.Expense, error)
	DeleteExpense(ctx context.Context, id string) error
}

// BudgetStore is an append-only log of budget amounts.
type BudgetStore interface {
	AppendBudget(ctx context.Context, amount float64) (*models.Budget, error)
	LatestBudget(ctx context.Context) (*models.Budget, error)
}

type Store interface {
	ExpenseStore
	BudgetStore
	Close() error
}
