package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"expense-tracker-api/src/db"
	"expense-tracker-api/src/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CreateBudget appends a row to the budget log. Existing rows are never
// touched.
func CreateBudget(ctx context.Context, pool *pgxpool.Pool, amount float64) (*models.Budget, error) {
	query := `
		INSERT INTO budgets (id, amount, created_at, updated_at)
		VALUES ($1, $2, $3, $3)
		RETURNING id, amount, created_at, updated_at
	`
	var b models.Budget
	err := pool.QueryRow(ctx, query, uuid.NewString(), amount, time.Now().UTC()).
		Scan(&b.ID, &b.Amount, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert budget: %w", err)
	}
	return &b, nil
}

func GetLatestBudget(ctx context.Context, pool *pgxpool.Pool) (*models.Budget, error) {
	query := `
		SELECT id, amount, created_at, updated_at
		FROM budgets
		ORDER BY created_at DESC, seq DESC
		LIMIT 1
	`
	var b models.Budget
	err := pool.QueryRow(ctx, query).Scan(&b.ID, &b.Amount, &b.CreatedAt, &b.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, db.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query latest budget: %w", err)
	}
	return &b, nil
}
