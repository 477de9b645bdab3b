package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Star schema for market prices. Items and dates are natural-keyed so loads
// stay idempotent; facts are unique per (item, date).
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS dim_item (
		item_id SERIAL PRIMARY KEY,
		item_name TEXT NOT NULL UNIQUE,
		category TEXT NOT NULL,
		specification TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS dim_date (
		date_id SERIAL PRIMARY KEY,
		date DATE NOT NULL UNIQUE,
		week_num INT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS fact_prices (
		price_id SERIAL PRIMARY KEY,
		item_id INT NOT NULL REFERENCES dim_item(item_id),
		date_id INT NOT NULL REFERENCES dim_date(date_id),
		price NUMERIC(10,2) NOT NULL,
		UNIQUE (item_id, date_id)
	)`,
}

// EnsureSchema creates the warehouse tables if they do not exist yet.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
