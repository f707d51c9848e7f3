// Package storetest holds the behaviour every db.Store backend must share.
// Backends embed Suite in their own tests and provide a constructor.
package storetest

import (
	"context"
	"errors"
	"testing"
	"time"

	"expense-tracker-api/src/db"
	"expense-tracker-api/src/models"

	"github.com/stretchr/testify/suite"
)

type Suite struct {
	suite.Suite
	NewStore func(t *testing.T) db.Store
	store    db.Store
	ctx      context.Context
}

func (s *Suite) SetupTest() {
	s.ctx = context.Background()
	s.store = s.NewStore(s.T())
}

func (s *Suite) TearDownTest() {
	if s.store != nil {
		s.Require().NoError(s.store.Close())
	}
}

func (s *Suite) create(amount float64, category, date string) *models.Expense {
	e, err := s.store.CreateExpense(s.ctx, &models.Expense{Amount: amount, Category: category, Date: date})
	s.Require().NoError(err)
	return e
}

func (s *Suite) TestCreateExpenseAssignsIDAndTimestamps() {
	e := s.create(250, "Food", "2024-01-01")

	s.NotEmpty(e.ID)
	s.Equal(250.0, e.Amount)
	s.Equal("Food", e.Category)
	s.Equal("", e.Note)
	s.Equal("2024-01-01", e.Date)
	s.False(e.CreatedAt.IsZero())
	s.True(e.UpdatedAt.Equal(e.CreatedAt))
}

func (s *Suite) TestListExpensesEmpty() {
	expenses, err := s.store.ListExpenses(s.ctx)
	s.Require().NoError(err)
	s.NotNil(expenses)
	s.Empty(expenses)
}

func (s *Suite) TestListExpensesNewestFirst() {
	first := s.create(10, "Food", "2024-01-03")
	second := s.create(20, "Travel", "2024-01-01")
	third := s.create(30, "Food", "2024-01-02")

	expenses, err := s.store.ListExpenses(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(expenses, 3)
	s.Equal(third.ID, expenses[0].ID)
	s.Equal(second.ID, expenses[1].ID)
	s.Equal(first.ID, expenses[2].ID)
}

func (s *Suite) TestUpdateExpenseOverwritesAllFields() {
	e := s.create(10, "Food", "2024-01-01")
	time.Sleep(2 * time.Millisecond)

	updated, err := s.store.UpdateExpense(s.ctx, &models.Expense{
		ID: e.ID, Amount: 42, Category: "Bills", Note: "power", Date: "2024-02-02",
	})
	s.Require().NoError(err)
	s.Equal(e.ID, updated.ID)
	s.Equal(42.0, updated.Amount)
	s.Equal("Bills", updated.Category)
	s.Equal("power", updated.Note)
	s.Equal("2024-02-02", updated.Date)
	s.True(updated.CreatedAt.Equal(e.CreatedAt))
	s.True(updated.UpdatedAt.After(e.UpdatedAt))
}

func (s *Suite) TestUpdateExpenseStoresUnvalidatedValues() {
	e := s.create(10, "Food", "2024-01-01")

	updated, err := s.store.UpdateExpense(s.ctx, &models.Expense{ID: e.ID, Amount: -5})
	s.Require().NoError(err)
	s.Equal(-5.0, updated.Amount)
	s.Equal("", updated.Category)
	s.Equal("", updated.Date)
}

func (s *Suite) TestUpdateExpenseNotFound() {
	e := s.create(10, "Food", "2024-01-01")

	_, err := s.store.UpdateExpense(s.ctx, &models.Expense{ID: "00000000-0000-0000-0000-000000000000", Amount: 1})
	s.True(errors.Is(err, db.ErrNotFound))

	expenses, err := s.store.ListExpenses(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(expenses, 1)
	s.Equal(e.ID, expenses[0].ID)
	s.Equal(10.0, expenses[0].Amount)
	s.Equal("Food", expenses[0].Category)
	s.True(expenses[0].UpdatedAt.Equal(e.UpdatedAt))
}

func (s *Suite) TestDeleteExpense() {
	keep := s.create(10, "Food", "2024-01-01")
	drop := s.create(20, "Food", "2024-01-02")

	s.Require().NoError(s.store.DeleteExpense(s.ctx, drop.ID))

	expenses, err := s.store.ListExpenses(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(expenses, 1)
	s.Equal(keep.ID, expenses[0].ID)

	err = s.store.DeleteExpense(s.ctx, drop.ID)
	s.True(errors.Is(err, db.ErrNotFound))
}

func (s *Suite) TestLatestBudgetEmpty() {
	_, err := s.store.LatestBudget(s.ctx)
	s.True(errors.Is(err, db.ErrNotFound))
}

func (s *Suite) TestBudgetLogReturnsNewest() {
	first, err := s.store.AppendBudget(s.ctx, 1000)
	s.Require().NoError(err)
	second, err := s.store.AppendBudget(s.ctx, 5000)
	s.Require().NoError(err)
	s.NotEqual(first.ID, second.ID)

	latest, err := s.store.LatestBudget(s.ctx)
	s.Require().NoError(err)
	s.Equal(second.ID, latest.ID)
	s.Equal(5000.0, latest.Amount)
	s.False(latest.CreatedAt.IsZero())
}
