// Package sqlite is a file-backed db.Store for single-machine deployments.
// Timestamps are stored as Unix nanoseconds so ordering is exact.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"expense-tracker-api/src/db"
	"expense-tracker-api/src/models"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

type Store struct {
	db *sql.DB
}

func New(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	sqlDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	// One writer at a time; avoids SQLITE_BUSY under concurrent requests.
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	log.Printf("INFO: SQLite store ready at %s", dbPath)
	return &Store{db: sqlDB}, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanExpense(row scanner) (*models.Expense, error) {
	var (
		e                    models.Expense
		createdAt, updatedAt int64
	)
	if err := row.Scan(&e.ID, &e.Amount, &e.Category, &e.Note, &e.Date, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	e.CreatedAt = fromUnixNano(createdAt)
	e.UpdatedAt = fromUnixNano(updatedAt)
	return &e, nil
}

func (s *Store) CreateExpense(ctx context.Context, expense *models.Expense) (*models.Expense, error) {
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
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO expenses (id, amount, category, note, date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Amount, e.Category, e.Note, e.Date, now.UnixNano(), now.UnixNano())
	if err != nil {
		return nil, fmt.Errorf("insert expense: %w", err)
	}
	return &e, nil
}

func (s *Store) ListExpenses(ctx context.Context) ([]models.Expense, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, amount, category, note, date, created_at, updated_at
		FROM expenses
		ORDER BY created_at DESC, rowid DESC`)
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

func (s *Store) UpdateExpense(ctx context.Context, expense *models.Expense) (*models.Expense, error) {
	res, err := s.db.ExecContext(ctx, `
		UPDATE expenses
		SET amount = ?, category = ?, note = ?, date = ?, updated_at = ?
		WHERE id = ?`,
		expense.Amount, expense.Category, expense.Note, expense.Date, time.Now().UTC().UnixNano(), expense.ID)
	if err != nil {
		return nil, fmt.Errorf("update expense %s: %w", expense.ID, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, fmt.Errorf("expense %s: %w", expense.ID, db.ErrNotFound)
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, amount, category, note, date, created_at, updated_at
		FROM expenses WHERE id = ?`, expense.ID)
	updated, err := scanExpense(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("expense %s: %w", expense.ID, db.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("reload expense %s: %w", expense.ID, err)
	}
	return updated, nil
}

func (s *Store) DeleteExpense(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete expense %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete expense %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("expense %s: %w", id, db.ErrNotFound)
	}
	return nil
}

func (s *Store) AppendBudget(ctx context.Context, amount float64) (*models.Budget, error) {
	now := time.Now().UTC()
	b := models.Budget{ID: uuid.NewString(), Amount: amount, CreatedAt: now, UpdatedAt: now}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO budgets (id, amount, created_at, updated_at)
		VALUES (?, ?, ?, ?)`,
		b.ID, b.Amount, now.UnixNano(), now.UnixNano())
	if err != nil {
		return nil, fmt.Errorf("insert budget: %w", err)
	}
	return &b, nil
}

func (s *Store) LatestBudget(ctx context.Context) (*models.Budget, error) {
	var (
		b                    models.Budget
		createdAt, updatedAt int64
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT id, amount, created_at, updated_at
		FROM budgets
		ORDER BY created_at DESC, rowid DESC
		LIMIT 1`).Scan(&b.ID, &b.Amount, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, db.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query latest budget: %w", err)
	}
	b.CreatedAt = fromUnixNano(createdAt)
	b.UpdatedAt = fromUnixNano(updatedAt)
	return &b, nil
}

func fromUnixNano(n int64) time.Time {
	return time.Unix(0, n).UTC()
}
