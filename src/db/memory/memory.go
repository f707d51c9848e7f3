// Package memory is a process-local db.Store used for development and tests.
// Data is lost on restart.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"expense-tracker-api/src/db"
	"expense-tracker-api/src/models"

	"github.com/google/uuid"
)

type Store struct {
	mu       sync.Mutex
	expenses []models.Expense // oldest first
	budgets  []models.Budget  // append-only, oldest first
}

func New() *Store {
	return &Store{}
}

func (s *Store) CreateExpense(_ context.Context, expense *models.Expense) (*models.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	e := models.Expense{
		ID:        uuid.NewString(),
		Amount:    expense.Amount,
		Category:  expense.Category,
		Note:      expense.Note,
		Date:      expense.Date,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.expenses = append(s.expenses, e)
	return &e, nil
}

func (s *Store) ListExpenses(_ context.Context) ([]models.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Expense, 0, len(s.expenses))
	for i := len(s.expenses) - 1; i >= 0; i-- {
		out = append(out, s.expenses[i])
	}
	return out, nil
}

func (s *Store) UpdateExpense(_ context.Context, expense *models.Expense) (*models.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(expense.ID)
	if i < 0 {
		return nil, fmt.Errorf("expense %s: %w", expense.ID, db.ErrNotFound)
	}
	e := &s.expenses[i]
	e.Amount = expense.Amount
	e.Category = expense.Category
	e.Note = expense.Note
	e.Date = expense.Date
	e.UpdatedAt = time.Now().UTC()
	updated := *e
	return &updated, nil
}

func (s *Store) DeleteExpense(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("expense %s: %w", id, db.ErrNotFound)
	}
	s.expenses = append(s.expenses[:i], s.expenses[i+1:]...)
	return nil
}

func (s *Store) AppendBudget(_ context.Context, amount float64) (*models.Budget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	b := models.Budget{ID: uuid.NewString(), Amount: amount, CreatedAt: now, UpdatedAt: now}
	s.budgets = append(s.budgets, b)
	return &b, nil
}

func (s *Store) LatestBudget(_ context.Context) (*models.Budget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.budgets) == 0 {
		return nil, db.ErrNotFound
	}
	b := s.budgets[len(s.budgets)-1]
	return &b, nil
}

func (s *Store) Close() error {
	return nil
}

func (s *Store) indexOf(id string) int {
	for i := range s.expenses {
		if s.expenses[i].ID == id {
			return i
		}
	}
	return -1
}
