package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMigrateURL(t *testing.T) {
	tests := map[string]string{
		"postgres://u:p@localhost:5432/expenses?sslmode=disable": "pgx5://u:p@localhost:5432/expenses?sslmode=disable",
		"postgresql://localhost/expenses":                        "pgx5://localhost/expenses",
		"pgx5://localhost/expenses":                              "pgx5://localhost/expenses",
	}
	for in, want := range tests {
		assert.Equal(t, want, MigrateURL(in), in)
	}
}
