package testhelpers

import (
	"context"
	"os"
	"testing"

	"stockflow/pkg/database"

	"github.com/jackc/pgx/v5/pgxpool"
)

// TestDB holds the database connection for testing
type TestDB struct {
	Pool    *pgxpool.Pool
	Cleanup func() error
}

// SetupTestDB creates a pooled connection for integration testing and
// bootstraps the schema. Skips the test when no database is configured.
func SetupTestDB(t *testing.T, connString string) *TestDB {
	t.Helper()

	if connString == "" {
		connString = os.Getenv("TEST_DATABASE_URL")
		if connString == "" {
			t.Skip("TEST_DATABASE_URL not set, skipping database test")
		}
	}

	ctx := context.Background()

	pool, err := database.NewPool(ctx, connString)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := database.EnsureSchema(ctx, pool); err != nil {
		pool.Close()
		t.Fatalf("Failed to create test schema: %v", err)
	}

	return &TestDB{
		Pool: pool,
		Cleanup: func() error {
			pool.Close()
			return nil
		},
	}
}

// TruncateAll wipes the three record tables between tests.
func (db *TestDB) TruncateAll(t *testing.T) {
	t.Helper()

	for _, table := range []string{"items", "sales", "cash_flows"} {
		if _, err := db.Pool.Exec(context.Background(), "TRUNCATE TABLE "+table); err != nil {
			t.Fatalf("Failed to truncate %s: %v", table, err)
		}
	}
}
