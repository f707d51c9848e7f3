package db

import (
	"context"

	"expense-tracker-api/src/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store exposes the query functions in this package through the db.Store
// interface.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

func (s *Store) CreateExpense(ctx context.Context, expense *models.Expense) (*models.Expense, error) {
	return CreateExpense(ctx, s.pool, expense)
}

func (s *Store) ListExpenses(ctx context.Context) ([]models.Expense, error) {
	return GetAllExpenses(ctx, s.pool)
}

func (s *Store) UpdateExpense(ctx context.Context, expense *models.Expense) (*models.Expense, error) {
	return UpdateExpense(ctx, s.pool, expense)
}

func (s *Store) DeleteExpense(ctx context.Context, id string) error {
	return DeleteExpense(ctx, s.pool, id)
}

func (s *Store) AppendBudget(ctx context.Context, amount float64) (*models.Budget, error) {
	return CreateBudget(ctx, s.pool, amount)
}

func (s *Store) LatestBudget(ctx context.Context) (*models.Budget, error) {
	return GetLatestBudget(ctx, s.pool)
}

func (s *Store) Close() error {
	s.pool.Close()
	return nil
}
