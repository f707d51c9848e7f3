package db

import (
	"context"
	"os"
	"testing"

	rootdb "expense-tracker-api/src/db"
	"expense-tracker-api/src/db/storetest"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// Runs only against a disposable database: every test truncates both tables.
func TestPostgresStore(t *testing.T) {
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	require.NoError(t, rootdb.Migrate(url))

	suite.Run(t, &storetest.Suite{NewStore: func(t *testing.T) rootdb.Store {
		pool, err := rootdb.Connect(context.Background(), url)
		require.NoError(t, err)
		_, err = pool.Exec(context.Background(), `TRUNCATE expenses, budgets`)
		require.NoError(t, err)
		return NewStore(pool)
	}})
}
