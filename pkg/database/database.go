package database

import (
	"context"
	"log"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewPool builds a pgx connection pool. Every connection registers the
// shopspring decimal codec so NUMERIC columns scan straight into
// decimal.Decimal values.
func NewPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}

	config.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	log.Println("Database connected successfully")

	return pool, nil
}

// EnsureSchema creates the three record tables on startup when they do not
// exist yet. sales.item_id carries no foreign key: a sale keeps referencing
// the item it depleted even if the item is later removed or changed.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS items (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL,
			brand TEXT NOT NULL,
			type TEXT NOT NULL,
			quantity INT NOT NULL DEFAULT 0 CHECK (quantity >= 0),
			low_stock_threshold INT NOT NULL CHECK (low_stock_threshold > 0),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (name, brand, type)
		)`,
		`CREATE TABLE IF NOT EXISTS sales (
			id UUID PRIMARY KEY,
			item_id UUID NOT NULL,
			item_name TEXT NOT NULL,
			quantity INT NOT NULL CHECK (quantity > 0),
			total NUMERIC(12,2) NOT NULL,
			sale_date TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS cash_flows (
			id UUID PRIMARY KEY,
			description TEXT NOT NULL,
			amount NUMERIC(12,2) NOT NULL CHECK (amount > 0),
			is_inflow BOOLEAN NOT NULL,
			date TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_sales_sale_date ON sales (sale_date DESC)`,
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}

	log.Println("Database tables created successfully")

	return nil
}
