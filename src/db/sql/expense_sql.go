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

const expenseColumns = `id, amount, category, note, date, created_at, updated_at`

func scanExpense(row pgx.Row) (*models.Expense, error) {
	var e models.Expense
	if err := row.Scan(&e.ID, &e.Amount, &e.Category, &e.Note, &e.Date, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}

func CreateExpense(ctx context.Context, pool *pgxpool.Pool, expense *models.Expense) (*models.Expense, error) {
	query := `
		INSERT INTO expenses (id, amount, category, note, date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		RETURNING ` + expenseColumns
	now := time.Now().UTC()
	created, err := scanExpense(pool.QueryRow(ctx, query,
		uuid.NewString(), expense.Amount, expense.Category, expense.Note, expense.Date, now))
	if err != nil {
		return nil, fmt.Errorf("insert expense: %w", err)
	}
	return created, nil
}

func GetAllExpenses(ctx context.Context, pool *pgxpool.Pool) ([]models.Expense, error) {
	query := `
		SELECT ` + expenseColumns + `
		FROM expenses
		ORDER BY created_at DESC, seq DESC
	`
	rows, err := pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query expenses: %w", err)
	}
	defer rows.Close()

	expenses := []models.Expense{}
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		expenses = append(expenses, *e)
	}
	return expenses, rows.Err()
}

func UpdateExpense(ctx context.Context, pool *pgxpool.Pool, expense *models.Expense) (*models.Expense, error) {
	query := `
		UPDATE expenses
		SET amount = $1, category = $2, note = $3, date = $4, updated_at = $5
		WHERE id = $6
		RETURNING ` + expenseColumns
	updated, err := scanExpense(pool.QueryRow(ctx, query,
		expense.Amount, expense.Category, expense.Note, expense.Date, time.Now().UTC(), expense.ID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("expense %s: %w", expense.ID, db.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("update expense %s: %w", expense.ID, err)
	}
	return updated, nil
}

func DeleteExpense(ctx context.Context, pool *pgxpool.Pool, id string) error {
	query := `DELETE FROM expenses WHERE id = $1`
	cmd, err := pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete expense %s: %w", id, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("expense %s: %w", id, db.ErrNotFound)
	}
	return nil
}
