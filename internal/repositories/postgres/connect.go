package postgres

import (
	"context"
	"fmt"
	"net/url"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

// Connect resolves a DSN and opens a pgx connection pool. Resolution order:
// the explicit configuration value, then DATABASE_URL, then the PG* variables
// (a .env file is loaded first when present).
func Connect(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	dsn := resolveDSN(databaseURL)
	if dsn == "" {
		return nil, fmt.Errorf("no database configured: set --database-url, DATABASE_URL or the PG* variables")
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("unable to reach database: %w", err)
	}
	return pool, nil
}

func resolveDSN(databaseURL string) string {
	if databaseURL != "" {
		return databaseURL
	}

	_ = godotenv.Load()

	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		return dsn
	}

	host := os.Getenv("PGHOST")
	if host == "" {
		return ""
	}
	user := envOr("PGUSER", "postgres")
	port := envOr("PGPORT", "5432")
	dbname := envOr("PGDATABASE", "postgres")

	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(user, os.Getenv("PGPASSWORD")),
		Host:   fmt.Sprintf("%s:%s", host, port),
		Path:   dbname,
	}
	return u.String()
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
